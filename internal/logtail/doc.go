// Package logtail reads the tail of the fuotui log file for the in-app log pane.
//
// # Reading
//
// Read uses a ring buffer of size maxLines, so memory stays O(maxLines) no
// matter how large the file grows. A missing file is not an error; the log
// pane simply stays empty until something is written.
//
//	lines, err := logtail.Read(cfg.LogFile, 10)
//
// # Parsing
//
// Parse understands the key=value layout produced by logrus' TextFormatter
// and returns the level, message and remaining fields so the UI can color
// each line by severity. Anything else is returned with Parsed false and the
// unmodified line in Raw.
package logtail

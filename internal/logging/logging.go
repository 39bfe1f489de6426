// Package logging routes logrus output to the fuotui log file.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Setup points the standard logrus logger at path with the given level and
// returns a closer for the file. The terminal belongs to the UI, so when the
// file cannot be opened output is discarded and the error is returned.
func Setup(path, level string) (io.Closer, error) {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	logrus.SetLevel(ParseLevel(level))

	if path == "" {
		logrus.SetOutput(io.Discard)
		return nopCloser{}, errors.New("log file path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logrus.SetOutput(io.Discard)
		return nopCloser{}, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		logrus.SetOutput(io.Discard)
		return nopCloser{}, fmt.Errorf("open log file: %w", err)
	}
	logrus.SetOutput(f)
	return f, nil
}

// ParseLevel returns the logrus level for s, or info when s is not a level.
func ParseLevel(s string) logrus.Level {
	lvl, err := logrus.ParseLevel(s)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

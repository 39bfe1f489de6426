package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Read returns at most maxLines from the end of the file at path.
func Read(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Entry is one line written by logrus' TextFormatter.
type Entry struct {
	Time    string
	Level   logrus.Level
	Message string
	Fields  []Field
	Parsed  bool
	Raw     string
}

// Field is a key=value pair following msg.
type Field struct {
	Key   string
	Value string
}

// Parse splits a logrus text line (time="..." level=info msg="..." k=v).
// Lines in any other shape come back with Parsed false and Raw set.
func Parse(line string) Entry {
	entry := Entry{Raw: line, Level: logrus.InfoLevel}
	pairs, ok := splitPairs(line)
	if !ok {
		return entry
	}
	sawLevel := false
	for _, kv := range pairs {
		switch kv.Key {
		case "time":
			entry.Time = kv.Value
		case "level":
			lvl, err := logrus.ParseLevel(kv.Value)
			if err != nil {
				return Entry{Raw: line, Level: logrus.InfoLevel}
			}
			entry.Level = lvl
			sawLevel = true
		case "msg":
			entry.Message = kv.Value
		default:
			entry.Fields = append(entry.Fields, kv)
		}
	}
	entry.Parsed = sawLevel
	return entry
}

func splitPairs(line string) ([]Field, bool) {
	var pairs []Field
	rest := strings.TrimSpace(line)
	for rest != "" {
		eq := strings.IndexByte(rest, '=')
		if eq <= 0 || strings.ContainsAny(rest[:eq], " \t\"") {
			return nil, false
		}
		key := rest[:eq]
		rest = rest[eq+1:]

		var value string
		if strings.HasPrefix(rest, `"`) {
			quoted, err := strconv.QuotedPrefix(rest)
			if err != nil {
				return nil, false
			}
			value, err = strconv.Unquote(quoted)
			if err != nil {
				return nil, false
			}
			rest = rest[len(quoted):]
		} else {
			end := strings.IndexAny(rest, " \t")
			if end < 0 {
				end = len(rest)
			}
			value = rest[:end]
			rest = rest[end:]
		}
		pairs = append(pairs, Field{Key: key, Value: value})
		rest = strings.TrimLeft(rest, " \t")
	}
	return pairs, len(pairs) > 0
}

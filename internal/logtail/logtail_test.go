package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestRead(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}
	if err := os.WriteFile(logPath, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{name: "none (0)", maxLines: 0, expected: nil},
		{name: "none (negative)", maxLines: -1, expected: nil},
		{name: "read partial (5)", maxLines: 5, expected: expectedAll[5:]},
		{name: "read exactly all (10)", maxLines: 10, expected: expectedAll},
		{name: "read more than exists (20)", maxLines: 20, expected: expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "missing.log"), 10)
	if err != nil || got != nil {
		t.Fatalf("Read(missing) = %v, %v, want nil, nil", got, err)
	}
}

func TestParse(t *testing.T) {
	line := `time="2024-05-01T10:00:00+02:00" level=warning msg="drop malformed event" component=subscriber topic=player.seeked error="decode player.seeked payload: bad"`
	got := Parse(line)
	if !got.Parsed {
		t.Fatalf("Parse(%q).Parsed = false", line)
	}
	if got.Level != logrus.WarnLevel {
		t.Fatalf("Level = %v, want warning", got.Level)
	}
	if got.Time != "2024-05-01T10:00:00+02:00" || got.Message != "drop malformed event" {
		t.Fatalf("Time = %q Message = %q", got.Time, got.Message)
	}
	want := []Field{
		{Key: "component", Value: "subscriber"},
		{Key: "topic", Value: "player.seeked"},
		{Key: "error", Value: "decode player.seeked payload: bad"},
	}
	if !reflect.DeepEqual(got.Fields, want) {
		t.Fatalf("Fields = %v, want %v", got.Fields, want)
	}
}

func TestParse_Unstructured(t *testing.T) {
	tests := []string{
		"",
		"plain text line",
		`level=loud msg="x"`,
		`msg="unterminated`,
		`key="ok" trailing words`,
	}
	for _, line := range tests {
		got := Parse(line)
		if got.Parsed {
			t.Fatalf("Parse(%q).Parsed = true, want false", line)
		}
		if got.Raw != line {
			t.Fatalf("Parse(%q).Raw = %q", line, got.Raw)
		}
	}
}

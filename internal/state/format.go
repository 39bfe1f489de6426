package state

import (
	"fmt"
	"time"
)

// FormatClock renders d as mm:ss, or hh:mm:ss from one hour up. Negative
// durations render as 00:00.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// ProgressLabel renders "[position/duration]". Both halves switch to
// hh:mm:ss together when the duration reaches an hour.
func (s Snapshot) ProgressLabel() string {
	if s.Duration >= time.Hour && s.Position < time.Hour {
		total := int64(s.Position / time.Second)
		return fmt.Sprintf("[00:%02d:%02d/%s]", total/60, total%60, FormatClock(s.Duration))
	}
	return fmt.Sprintf("[%s/%s]", FormatClock(s.Position), FormatClock(s.Duration))
}

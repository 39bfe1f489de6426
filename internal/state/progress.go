package state

import "time"

// Progress reconstructs the playback position from an anchor instead of
// being ticked. The zero value is paused at position 0.
type Progress struct {
	now            func() time.Time
	anchorTime     time.Time
	anchorPosition time.Duration
	running        bool
}

// NewProgress returns a paused Progress at 0 that reads time from now.
// A nil now uses time.Now.
func NewProgress(now func() time.Time) Progress {
	return Progress{now: now}
}

func (p *Progress) clock() time.Time {
	if p.now == nil {
		return time.Now()
	}
	return p.now()
}

// OnSeeked re-anchors at position without changing the paused/playing mode.
func (p *Progress) OnSeeked(position time.Duration) {
	if position < 0 {
		position = 0
	}
	p.anchorTime = p.clock()
	p.anchorPosition = position
}

// Pause freezes the position at its current value.
func (p *Progress) Pause() {
	p.anchorPosition = p.Current()
	p.anchorTime = p.clock()
	p.running = false
}

// Resume continues advancing from the current value.
func (p *Progress) Resume() {
	p.anchorPosition = p.Current()
	p.anchorTime = p.clock()
	p.running = true
}

// Current returns the position at this instant. Elapsed time never counts
// negative, so a wall clock step backwards holds the position still.
func (p *Progress) Current() time.Duration {
	if !p.running {
		return p.anchorPosition
	}
	elapsed := p.clock().Sub(p.anchorTime)
	if elapsed < 0 {
		elapsed = 0
	}
	return p.anchorPosition + elapsed
}

// Paused reports whether the position is frozen.
func (p *Progress) Paused() bool {
	return !p.running
}

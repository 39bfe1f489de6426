package state

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestProgress_ZeroValueIsPausedAtZero(t *testing.T) {
	var p Progress
	if !p.Paused() {
		t.Fatalf("zero Progress Paused = false, want true")
	}
	if got := p.Current(); got != 0 {
		t.Fatalf("zero Progress Current = %v, want 0", got)
	}
}

func TestProgress_PlayingAdvancesWithClock(t *testing.T) {
	clock := newFakeClock()
	p := NewProgress(clock.Now)

	p.OnSeeked(30 * time.Second)
	p.Resume()
	clock.Advance(5 * time.Second)

	if got, want := p.Current(), 35*time.Second; got != want {
		t.Fatalf("Current = %v, want %v", got, want)
	}
}

func TestProgress_PauseFreezesAndIsIdempotent(t *testing.T) {
	clock := newFakeClock()
	p := NewProgress(clock.Now)

	p.Resume()
	clock.Advance(10 * time.Second)
	p.Pause()
	clock.Advance(time.Minute)
	p.Pause()

	if got, want := p.Current(), 10*time.Second; got != want {
		t.Fatalf("Current after pause = %v, want %v", got, want)
	}

	p.Resume()
	clock.Advance(2 * time.Second)
	if got, want := p.Current(), 12*time.Second; got != want {
		t.Fatalf("Current after resume = %v, want %v", got, want)
	}
}

func TestProgress_SeekKeepsMode(t *testing.T) {
	clock := newFakeClock()
	p := NewProgress(clock.Now)

	p.OnSeeked(90 * time.Second)
	clock.Advance(5 * time.Second)
	if !p.Paused() || p.Current() != 90*time.Second {
		t.Fatalf("seek while paused: Paused=%v Current=%v, want true 1m30s", p.Paused(), p.Current())
	}

	p.Resume()
	p.OnSeeked(10 * time.Second)
	clock.Advance(time.Second)
	if p.Paused() || p.Current() != 11*time.Second {
		t.Fatalf("seek while playing: Paused=%v Current=%v, want false 11s", p.Paused(), p.Current())
	}
}

func TestProgress_NeverNegative(t *testing.T) {
	clock := newFakeClock()
	p := NewProgress(clock.Now)

	p.OnSeeked(-3 * time.Second)
	if got := p.Current(); got != 0 {
		t.Fatalf("Current after negative seek = %v, want 0", got)
	}

	p.OnSeeked(20 * time.Second)
	p.Resume()
	clock.Advance(-10 * time.Second)
	if got := p.Current(); got != 20*time.Second {
		t.Fatalf("Current after clock step back = %v, want 20s", got)
	}
}

func TestProgress_MonotonicWhilePlaying(t *testing.T) {
	clock := newFakeClock()
	p := NewProgress(clock.Now)
	p.Resume()

	var last time.Duration
	for i := 0; i < 20; i++ {
		clock.Advance(250 * time.Millisecond)
		got := p.Current()
		if got < last {
			t.Fatalf("Current went backwards: %v after %v", got, last)
		}
		last = got
	}
}

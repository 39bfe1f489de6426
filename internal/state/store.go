package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/samber/mo"

	"github.com/five82/fuotui/internal/fuo"
)

// PlaybackState is the reconciled view of the daemon's player.
type PlaybackState struct {
	Metadata  fuo.TrackMetadata
	LyricLine string
	Progress  Progress
	Duration  time.Duration
	State     fuo.PlayerState
	Playlist  []fuo.BriefSong
}

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Metadata  fuo.TrackMetadata
	LyricLine string
	Position  time.Duration
	Paused    bool
	Duration  time.Duration
	State     fuo.PlayerState
	Playlist  []fuo.BriefSong

	HasStatus           bool
	LastSynced          time.Time
	LastEvent           time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive sync failures
	SubscriberDown      bool
	SubscriberError     error
}

// IsOffline returns true when the control endpoint has been unreachable for multiple syncs.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Ratio returns Position/Duration clamped to [0, 1]; 0 when the duration is unknown.
func (s Snapshot) Ratio() float64 {
	if s.Duration <= 0 {
		return 0
	}
	ratio := float64(s.Position) / float64(s.Duration)
	if ratio >= 1 {
		return 1
	}
	if ratio < 0 {
		return 0
	}
	return ratio
}

// Store coordinates the two writers (full sync and push events) and the UI reader.
// The zero value is ready to use and reads time from time.Now.
type Store struct {
	mu       sync.Mutex
	now      func() time.Time
	playback PlaybackState

	hasStatus       bool
	lastSynced      time.Time
	lastEvent       time.Time
	lastError       error
	failures        int
	subscriberDown  bool
	subscriberError error
}

// NewStore returns a Store whose progress clock reads time from now. A nil now uses time.Now.
func NewStore(now func() time.Time) *Store {
	s := &Store{now: now}
	s.playback.Progress = NewProgress(now)
	s.playback.Metadata.Album = mo.None[string]()
	return s
}

func (s *Store) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

// ApplyStatus reconciles a full status poll. The clock is re-anchored at the
// reported position before it is frozen or released.
func (s *Store) ApplyStatus(status *fuo.StatusResponse) {
	if status == nil {
		return
	}
	metadata := status.Metadata()

	s.mu.Lock()
	defer s.mu.Unlock()

	p := &s.playback
	p.Metadata = metadata
	p.Progress.OnSeeked(status.PositionValue())
	p.Duration = status.DurationValue()
	switch status.State {
	case "paused":
		p.State = fuo.StatePaused
		p.Progress.Pause()
	case "playing":
		p.State = fuo.StatePlaying
		p.Progress.Resume()
	default:
		// "stopped" and anything unrecognised freeze the clock.
		p.State = fuo.StateStopped
		p.Progress.Pause()
	}

	s.hasStatus = true
	s.lastSynced = s.clock()
	s.lastError = nil
	s.failures = 0
}

// RecordSyncError keeps the previous playback data but records err for visibility.
func (s *Store) RecordSyncError(err error) {
	if err == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastError = err
	s.failures++
}

// SetPlaylist replaces the current playlist.
func (s *Store) SetPlaylist(songs []fuo.BriefSong) {
	dup := clonePlaylist(songs)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.playback.Playlist = dup
}

// ApplyMessage decodes a push message and applies it. Decode failures leave
// the state untouched and are returned to the caller.
func (s *Store) ApplyMessage(msg *fuo.Message) error {
	ev, err := fuo.DecodeEvent(msg)
	if err != nil {
		return err
	}
	s.ApplyEvent(ev)
	return nil
}

// ApplyEvent applies one decoded push event. A nil event is ignored.
func (s *Store) ApplyEvent(ev fuo.Event) {
	if ev == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := &s.playback
	switch e := ev.(type) {
	case fuo.StateChanged:
		p.State = e.State
		switch e.State {
		case fuo.StatePaused:
			p.Progress.Pause()
		case fuo.StateStopped:
			p.Progress.OnSeeked(0)
		case fuo.StatePlaying:
			p.Progress.Resume()
		}
	case fuo.MetadataChanged:
		p.Metadata = e.Metadata.Clone()
		p.Progress.OnSeeked(0)
	case fuo.DurationChanged:
		p.Duration = e.Duration
	case fuo.Seeked:
		p.Progress.OnSeeked(e.Position)
	case fuo.LyricChanged:
		p.LyricLine = e.Line
	default:
		return
	}
	s.lastEvent = s.clock()
}

// SetSubscriberDown records that the push connection ended with err.
func (s *Store) SetSubscriberDown(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subscriberDown = true
	s.subscriberError = err
}

// Snapshot returns a copy of the current state with the position evaluated now.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &s.playback
	snap := Snapshot{
		Metadata:            p.Metadata.Clone(),
		LyricLine:           p.LyricLine,
		Position:            p.Progress.Current(),
		Paused:              p.Progress.Paused(),
		Duration:            p.Duration,
		State:               p.State,
		Playlist:            clonePlaylist(p.Playlist),
		HasStatus:           s.hasStatus,
		LastSynced:          s.lastSynced,
		LastEvent:           s.lastEvent,
		ConsecutiveFailures: s.failures,
		SubscriberDown:      s.subscriberDown,
	}
	if s.lastError != nil {
		snap.LastError = fmt.Errorf("%w", s.lastError)
	}
	if s.subscriberError != nil {
		snap.SubscriberError = fmt.Errorf("%w", s.subscriberError)
	}
	return snap
}

func clonePlaylist(songs []fuo.BriefSong) []fuo.BriefSong {
	if len(songs) == 0 {
		return nil
	}
	dup := make([]fuo.BriefSong, len(songs))
	copy(dup, songs)
	return dup
}

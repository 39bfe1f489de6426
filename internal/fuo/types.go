package fuo

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// PlayerState is the daemon's playback mode.
type PlayerState int

const (
	StateStopped PlayerState = iota
	StatePaused
	StatePlaying
)

// String returns the state name.
func (s PlayerState) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StatePaused:
		return "Paused"
	case StatePlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}

// PlayerStateFromCode maps the numeric code used by player.state_changed.
func PlayerStateFromCode(code int64) (PlayerState, error) {
	switch code {
	case 0:
		return StateStopped, nil
	case 1:
		return StatePaused, nil
	case 2:
		return StatePlaying, nil
	default:
		return StateStopped, &UnknownStateError{Code: code}
	}
}

// TrackMetadata describes the current track as announced by the daemon.
type TrackMetadata struct {
	Title   string
	Artists []string
	Album   mo.Option[string]
}

type wireMetadata struct {
	Title   *string   `json:"title"`
	Artists *[]string `json:"artists"`
	Album   *string   `json:"album"`
}

// UnmarshalJSON decodes {"title", "artists", "album"}. Title and artists are
// required and may not be null; a missing or null album is None.
func (m *TrackMetadata) UnmarshalJSON(data []byte) error {
	var raw wireMetadata
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Title == nil {
		return fmt.Errorf("metadata: missing title")
	}
	if raw.Artists == nil {
		return fmt.Errorf("metadata: missing artists")
	}
	m.Title = *raw.Title
	m.Artists = *raw.Artists
	m.Album = mo.None[string]()
	if raw.Album != nil {
		m.Album = mo.Some(*raw.Album)
	}
	return nil
}

// MarshalJSON encodes the wire shape accepted by UnmarshalJSON.
func (m TrackMetadata) MarshalJSON() ([]byte, error) {
	artists := m.Artists
	if artists == nil {
		artists = []string{}
	}
	raw := wireMetadata{Title: &m.Title, Artists: &artists}
	if album, ok := m.Album.Get(); ok {
		raw.Album = &album
	}
	return json.Marshal(raw)
}

// ArtistLine joins the non-empty artist names with commas.
func (m TrackMetadata) ArtistLine() string {
	return strings.Join(lo.Compact(m.Artists), ",")
}

// Clone returns a copy that shares no slices with m.
func (m TrackMetadata) Clone() TrackMetadata {
	dup := m
	if m.Artists != nil {
		dup.Artists = append([]string(nil), m.Artists...)
	}
	return dup
}

// StatusResponse mirrors the body of "status --format=json".
type StatusResponse struct {
	Song     *StatusSong `json:"song"`
	Duration float64     `json:"duration"`
	Position float64     `json:"position"`
	State    string      `json:"state"`
}

// StatusSong is the song summary embedded in StatusResponse.
type StatusSong struct {
	Title       string `json:"title"`
	AlbumName   string `json:"album_name"`
	ArtistsName string `json:"artists_name"`
}

// Metadata converts the status song into TrackMetadata. The daemon reports
// artists as one pre-joined string, so the result carries a single entry.
func (s StatusResponse) Metadata() TrackMetadata {
	if s.Song == nil {
		return TrackMetadata{Album: mo.None[string]()}
	}
	return TrackMetadata{
		Title:   s.Song.Title,
		Artists: []string{s.Song.ArtistsName},
		Album:   mo.Some(s.Song.AlbumName),
	}
}

// DurationValue returns the reported duration.
func (s StatusResponse) DurationValue() time.Duration {
	return Seconds(s.Duration)
}

// PositionValue returns the reported position.
func (s StatusResponse) PositionValue() time.Duration {
	return Seconds(s.Position)
}

// BriefSong is one entry of "list --format=json".
type BriefSong struct {
	Provider    string `json:"provider"`
	Identifier  string `json:"identifier"`
	Title       string `json:"title"`
	AlbumName   string `json:"album_name"`
	ArtistsName string `json:"artists_name"`
	DurationMS  string `json:"duration_ms"`
}

// PlayerCommand is a playback control command accepted by the control endpoint.
type PlayerCommand string

const (
	CommandToggle   PlayerCommand = "toggle"
	CommandNext     PlayerCommand = "next"
	CommandPrevious PlayerCommand = "previous"
	CommandStop     PlayerCommand = "stop"
)

// Seconds converts float seconds to a duration, treating negative and NaN values
// as zero and saturating at the largest duration.
func Seconds(v float64) time.Duration {
	if !(v > 0) {
		return 0
	}
	ns := v * float64(time.Second)
	if ns >= math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(ns)
}

package fuo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Push topics understood by DecodeEvent.
const (
	TopicStateChanged    = "player.state_changed"
	TopicMetadataChanged = "player.metadata_changed"
	TopicDurationChanged = "player.duration_changed"
	TopicSeeked          = "player.seeked"
	TopicLyricChanged    = "live_lyric.sentence_changed"
)

// DefaultTopics is the subscription set used when none is configured.
var DefaultTopics = []string{"player.*", "live_lyric.*"}

// Event is a typed push notification.
type Event interface {
	Topic() string
}

// StateChanged reports a new player state.
type StateChanged struct{ State PlayerState }

// MetadataChanged reports a new current track.
type MetadataChanged struct{ Metadata TrackMetadata }

// DurationChanged reports the duration of the current track.
type DurationChanged struct{ Duration time.Duration }

// Seeked reports a jump to a new playback position.
type Seeked struct{ Position time.Duration }

// LyricChanged reports the lyric line currently being sung.
type LyricChanged struct{ Line string }

func (StateChanged) Topic() string    { return TopicStateChanged }
func (MetadataChanged) Topic() string { return TopicMetadataChanged }
func (DurationChanged) Topic() string { return TopicDurationChanged }
func (Seeked) Topic() string          { return TopicSeeked }
func (LyricChanged) Topic() string    { return TopicLyricChanged }

// DecodeEvent converts a push message into an Event.
//
// Payloads are one-element JSON arrays such as [12.5]; a bare value is also
// accepted. It returns (nil, nil) for topics that carry nothing of interest
// and for an empty lyric body.
func DecodeEvent(msg *Message) (Event, error) {
	if msg == nil {
		return nil, nil
	}
	switch msg.Topic {
	case TopicStateChanged:
		var code int64
		if err := decodeSingle(msg, &code); err != nil {
			return nil, err
		}
		state, err := PlayerStateFromCode(code)
		if err != nil {
			return nil, err
		}
		return StateChanged{State: state}, nil

	case TopicMetadataChanged:
		var md TrackMetadata
		if err := decodeSingle(msg, &md); err != nil {
			return nil, err
		}
		return MetadataChanged{Metadata: md}, nil

	case TopicDurationChanged:
		var secs float64
		if err := decodeSingle(msg, &secs); err != nil {
			return nil, err
		}
		return DurationChanged{Duration: Seconds(secs)}, nil

	case TopicSeeked:
		var secs float64
		if err := decodeSingle(msg, &secs); err != nil {
			return nil, err
		}
		return Seeked{Position: Seconds(secs)}, nil

	case TopicLyricChanged:
		if len(msg.Body) == 0 {
			return nil, nil
		}
		var line string
		if err := decodeSingle(msg, &line); err != nil {
			return nil, err
		}
		return LyricChanged{Line: line}, nil
	}
	return nil, nil
}

func decodeSingle(msg *Message, dest any) error {
	body := bytes.TrimSpace(msg.Body)
	if len(body) == 0 {
		return &DecodeError{Topic: msg.Topic, Err: fmt.Errorf("empty payload")}
	}
	if body[0] == '[' {
		var args []json.RawMessage
		if err := json.Unmarshal(body, &args); err != nil {
			return &DecodeError{Topic: msg.Topic, Err: err}
		}
		if len(args) != 1 {
			return &DecodeError{Topic: msg.Topic, Err: fmt.Errorf("want 1 argument, got %d", len(args))}
		}
		body = bytes.TrimSpace(args[0])
	}
	if bytes.Equal(body, []byte("null")) {
		return &DecodeError{Topic: msg.Topic, Err: fmt.Errorf("null argument")}
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return &DecodeError{Topic: msg.Topic, Err: err}
	}
	return nil
}

package fuo

import (
	"errors"
	"fmt"
)

// ErrDisconnected reports that the peer closed the stream where a frame was expected.
var ErrDisconnected = errors.New("disconnected")

// ProtocolErrorKind classifies a ProtocolError.
type ProtocolErrorKind int

const (
	// Disconnected means the stream ended before a complete frame was read.
	Disconnected ProtocolErrorKind = iota
	// Malformed means the frame header could not be parsed.
	Malformed
	// UnexpectedPush means a MSG frame arrived on the request path.
	UnexpectedPush
)

func (k ProtocolErrorKind) String() string {
	switch k {
	case Disconnected:
		return "disconnected"
	case Malformed:
		return "malformed frame"
	case UnexpectedPush:
		return "unexpected push message"
	default:
		return "unknown"
	}
}

// ProtocolError is returned when the wire protocol is violated.
type ProtocolError struct {
	Kind   ProtocolErrorKind
	Detail string
	Err    error
}

func (e *ProtocolError) Error() string {
	msg := "protocol: " + e.Kind.String()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil && e.Err != ErrDisconnected {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ProtocolError) Unwrap() error { return e.Err }

// ConnectionError is returned when an endpoint cannot be reached.
type ConnectionError struct {
	Addr string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connect %s: %v", e.Addr, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// DecodeError is returned when a payload does not match the shape expected for its topic.
type DecodeError struct {
	Topic string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s payload: %v", e.Topic, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// UnknownStateError is returned for a player state code outside 0..2.
type UnknownStateError struct {
	Code int64
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("unknown player state %d", e.Code)
}

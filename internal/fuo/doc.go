// Package fuo implements the client side of the FeelUOwn daemon's TCP protocol.
//
// # Overview
//
// The daemon exposes two plain TCP endpoints that share one frame format:
//
//   - Control endpoint (default 127.0.0.1:23333): one command per connection,
//     one response frame back.
//   - Pub/sub endpoint (default 127.0.0.1:23334): long-lived connection that
//     subscribes to topic patterns and receives unsolicited MSG frames.
//
// Both endpoints send a single greeting line right after connect, which is
// read and discarded.
//
// # Frame Format
//
//	<TAG> <arg...> <bodyLength>\r\n
//	<bodyLength bytes of body>\r\n
//
// TAG is ACK (response to a command; arg is the status, "OK" on success) or
// MSG (push; arg is the topic). Only the first, second and last header tokens
// are significant. The two bytes after the body are read but never checked.
//
// # Components
//
//   - frame.go: ReadFrame / WriteResponse / WriteMessage
//   - client.go: Client, the request channel (Call, FetchStatus, FetchPlaylist, Control)
//   - subscriber.go: Subscriber, the push connection loop
//   - events.go: DecodeEvent, topic payloads to typed events
//   - types.go: PlayerState, TrackMetadata, StatusResponse, BriefSong
//   - errors.go: ConnectionError, ProtocolError, DecodeError, UnknownStateError
//
// # Subscription Handshake
//
// On connect the subscriber writes, then flushes once:
//
//	set --pubsub-version 2.0
//	sub player.*
//	sub live_lyric.*
//
// and then reads one ACK per command without checking its status.
//
// # Error Handling
//
// Nothing in this package panics on network input. Header problems are
// *ProtocolError with Kind Malformed; a closed stream is Kind Disconnected and
// matches ErrDisconnected via errors.Is. Payload problems surface from
// DecodeEvent as *DecodeError or *UnknownStateError so callers can drop a
// single event and keep the subscription alive.
//
// # Timeouts
//
// Client.Call honours a context deadline. The subscriber has none: a peer
// that goes silent stalls it until the context is cancelled.
package fuo

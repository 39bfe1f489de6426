// Package state holds the reconciled playback view shared by the sync poller,
// the push subscriber and the UI.
//
// # Overview
//
// Two writers feed one Store:
//
//	Sync poller:                 Push subscriber:
//	┌──────────────────┐         ┌──────────────────┐
//	│ FetchStatus()    │         │ Subscriber.Run() │
//	│ ApplyStatus()    │         │ ApplyMessage()   │
//	└────────┬─────────┘         └────────┬─────────┘
//	         └──────────┐      ┌──────────┘
//	                    ↓      ↓
//	                 ┌────────────┐
//	                 │   Store    │──→ Snapshot() ──→ UI
//	                 └────────────┘
//
// A single sync.Mutex serialises both writers and the reader. Snapshot
// returns a copy, so rendering never holds the lock.
//
// # Progress Clock
//
// Progress is never ticked. It keeps an anchor (wall time plus position) and a
// paused flag, and evaluates the current position on demand:
//
//	paused:  position = anchorPosition
//	playing: position = anchorPosition + max(0, now - anchorTime)
//
// Pause and Resume compute the current position before re-anchoring, so
// toggling never jumps. OnSeeked re-anchors without changing the mode.
// The zero value is paused at 0, which matches the initial Stopped state.
//
// # Event Rules
//
//	player.state_changed     paused → Pause, stopped → seek to 0, playing → Resume
//	player.metadata_changed  replace metadata, seek to 0
//	player.duration_changed  replace duration
//	player.seeked            seek to position
//	live_lyric.sentence_changed  replace lyric line
//
// A full status sync replaces metadata and duration, seeks to the reported
// position and then freezes or releases the clock. An unrecognised state string
// is treated as stopped.
//
// # Error Handling
//
// ApplyMessage returns decode errors and leaves the state untouched; the caller
// logs and drops them. RecordSyncError keeps the last good data and counts
// consecutive failures for Snapshot.IsOffline.
//
// # Testing
//
// NewStore accepts a clock function so tests can advance time by hand:
//
//	now := time.Unix(0, 0)
//	s := state.NewStore(func() time.Time { return now })
//	s.ApplyStatus(status)
//	now = now.Add(5 * time.Second)
//	s.Snapshot().Position // status.Position + 5s when playing
package state

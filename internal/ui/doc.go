// Package ui renders the now-playing screen with Bubble Tea.
//
// # Layout
//
//	fuotui ▶ Playing                          synced 12:01:02
//	╭──────────────────────────────────────────────────────╮
//	│ Title · Artist                                       │
//	│ Album                                                │
//	│ ♪ current lyric line                                 │
//	│                                                      │
//	│ ████████████░░░░░░░░░░░░░░░░░░░░░░░░ [01:02/03:20]   │
//	╰──────────────────────────────────────────────────────╯
//	 #  Title      Artist     Album      Length
//	 ▶  Title      Artist     Album      03:20
//	[log pane, toggled with l]
//	[status line: sync or push channel errors]
//	space play/pause • n next • p previous • r sync • ? help • q quit
//
// # Refresh Model
//
// The model never talks to the network on its own schedule. A 500ms tick
// copies a state.Snapshot out of the store; the position shown is computed by
// the store's progress clock at that instant, so the bar advances smoothly
// between daemon events. Control keys run the matching daemon command in a
// tea.Cmd and then trigger a full sync.
//
// # Themes
//
// Nightfox, Kanagawa and Mocha are built in. T cycles them and the choice is
// written back to prefs.toml together with the log pane toggle.
package ui

// Package config loads the fuotui configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/fuotui/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing or empty, use defaults
//
// # Default Values
//
//   - Control endpoint: 127.0.0.1:23333
//   - Pub/sub endpoint: 127.0.0.1:23334
//   - Sync interval: 30s
//   - Log file: ~/.local/state/fuotui/fuotui.log
//   - Log level: info
//   - Topics: player.*, live_lyric.*
//
// # TOML Format
//
//	control_addr = "127.0.0.1:23333"
//	pubsub_addr = "127.0.0.1:23334"
//	sync_interval = 30 # seconds
//	log_file = "~/.local/state/fuotui/fuotui.log"
//	log_level = "info"
//	topics = ["player.*", "live_lyric.*"]
//
// Every field is optional. Strings are trimmed, tilde paths are expanded and
// duplicate topics are dropped.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors and a negative sync_interval
//
// Address syntax is validated later by fuo.NewClient and fuo.NewSubscriber.
package config

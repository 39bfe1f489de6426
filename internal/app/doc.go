// Package app wires configuration, logging, the daemon clients, the state
// store and the UI together.
//
// # Goroutines
//
//	Run()
//	 ├── SyncNow()            initial full sync before the first frame
//	 ├── StartSyncPoller()    periodic SyncNow with backoff while offline
//	 ├── StartSubscriber()    Subscriber.Run → channel → Store.ApplyMessage
//	 └── ui.Run()             blocks until quit or cancellation
//
// SyncNow never holds the store lock across network calls. The subscriber
// consumer logs malformed push messages with logrus and drops them. When the
// push connection ends for any reason other than cancellation the store is
// marked SubscriberDown; playback data stays as last seen and the progress
// clock keeps extrapolating.
//
// # Backoff
//
// While status fetches fail, the poller doubles the wait per consecutive
// failure up to five minutes, and returns to the configured interval after
// the next success.
//
// # Status Command
//
// PrintStatus runs a single sync and prints a plain-text summary, for use
// from scripts without the TUI.
package app

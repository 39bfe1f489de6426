package app

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/five82/fuotui/internal/fuo"
	"github.com/five82/fuotui/internal/state"
)

const (
	defaultSyncInterval = 30 * time.Second
	maxBackoff          = 5 * time.Minute
	syncTimeout         = 5 * time.Second
)

// SyncNow fetches the full player status and playlist and reconciles the
// store. Network calls happen outside the store lock. A failed status fetch
// keeps the previous state and is recorded; a failed playlist fetch is only
// logged.
func SyncNow(ctx context.Context, client fuo.Requester, store *state.Store) error {
	ctx, cancel := context.WithTimeout(ctx, syncTimeout)
	defer cancel()

	status, err := client.FetchStatus(ctx)
	if err != nil {
		err = fmt.Errorf("sync status: %w", err)
		store.RecordSyncError(err)
		return err
	}
	store.ApplyStatus(status)

	songs, err := client.FetchPlaylist(ctx)
	if err != nil {
		log.WithError(err).WithField("component", "sync").Warn("playlist fetch failed")
		return nil
	}
	store.SetPlaylist(songs)
	return nil
}

// StartSyncPoller launches a background goroutine that re-syncs the store at
// interval, backing off while the daemon is unreachable. It returns immediately.
func StartSyncPoller(ctx context.Context, store *state.Store, client fuo.Requester, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}
	logger := log.WithField("component", "sync")
	go func() {
		timer := time.NewTimer(interval)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}

			if err := SyncNow(ctx, client, store); err != nil && ctx.Err() == nil {
				logger.WithError(err).Warn("sync failed")
			}
			failures := store.Snapshot().ConsecutiveFailures
			timer.Reset(calculateBackoff(failures, interval))
		}
	}()
}

// calculateBackoff doubles base for every consecutive failure, capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	backoff := base
	for i := 0; i < failures; i++ {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}

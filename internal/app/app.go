package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/five82/fuotui/internal/config"
	"github.com/five82/fuotui/internal/fuo"
	"github.com/five82/fuotui/internal/logging"
	"github.com/five82/fuotui/internal/prefs"
	"github.com/five82/fuotui/internal/state"
	"github.com/five82/fuotui/internal/ui"
)

var stderr io.Writer = os.Stderr

// Options configure the fuotui application.
type Options struct {
	ConfigPath string
	PrefsPath  string        // empty uses default ~/.config/fuotui/prefs.toml
	SyncEvery  time.Duration // zero uses the configured interval
	LogLevel   string        // empty uses the configured level
}

// Run boots the fuotui TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	closer, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		// Setup leaves logrus writing to io.Discard on failure.
		fmt.Fprintf(stderr, "fuotui: logging disabled: %v\n", err)
	}
	defer closer.Close()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		log.WithError(err).Warn("load prefs")
	}

	client, err := fuo.NewClient(cfg.ControlAddr)
	if err != nil {
		return fmt.Errorf("init control client: %w", err)
	}
	sub, err := fuo.NewSubscriber(cfg.PubsubAddr, cfg.Topics)
	if err != nil {
		return fmt.Errorf("init subscriber: %w", err)
	}

	log.WithFields(log.Fields{
		"control": client.Addr(),
		"pubsub":  sub.Addr(),
		"topics":  sub.Topics(),
		"sync":    cfg.SyncInterval,
	}).Info("fuotui starting")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	store := state.NewStore(nil)

	// Populate the store before the first frame
	if err := SyncNow(ctx, client, store); err != nil {
		log.WithError(err).Warn("initial sync failed")
	}

	StartSyncPoller(ctx, store, client, cfg.SyncInterval)
	subDone := StartSubscriber(ctx, store, sub)

	uiOpts := ui.Options{
		Context: ctx,
		Client:  client,
		Store:   store,
		Sync: func(ctx context.Context) error {
			return SyncNow(ctx, client, store)
		},
		LogFile:   cfg.LogFile,
		ThemeName: userPrefs.Theme,
		ShowLogs:  userPrefs.ShowLogs,
		PrefsPath: opts.PrefsPath,
	}
	err = ui.Run(uiOpts)

	cancel()
	<-subDone
	log.Info("fuotui stopped")

	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func loadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if opts.SyncEvery > 0 {
		cfg.SyncInterval = opts.SyncEvery
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	return cfg, nil
}

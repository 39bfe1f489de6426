package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/five82/fuotui/internal/app"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd := newRootCmd(app.Run, app.PrintStatus)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fuotui: %v\n", err)
		return 1
	}
	return 0
}

type (
	runFunc    func(context.Context, app.Options) error
	statusFunc func(context.Context, app.Options, io.Writer) error
)

func newRootCmd(runTUI runFunc, printStatus statusFunc) *cobra.Command {
	var (
		configPath  string
		syncSeconds int
		logLevel    string
	)
	options := func() (app.Options, error) {
		if syncSeconds < 0 {
			return app.Options{}, fmt.Errorf("--sync must not be negative")
		}
		return app.Options{
			ConfigPath: configPath,
			SyncEvery:  time.Duration(syncSeconds) * time.Second,
			LogLevel:   logLevel,
		}, nil
	}

	root := &cobra.Command{
		Use:           "fuotui",
		Short:         "Terminal now-playing view for the FeelUOwn music daemon",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := options()
			if err != nil {
				return err
			}
			return runTUI(cmd.Context(), opts)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default ~/.config/fuotui/config.toml)")
	root.PersistentFlags().IntVar(&syncSeconds, "sync", 0, "full sync interval in seconds (default from config, 30s)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")

	root.AddCommand(
		&cobra.Command{
			Use:   "status",
			Short: "Print the current player status once and exit",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				opts, err := options()
				if err != nil {
					return err
				}
				return printStatus(cmd.Context(), opts, cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the fuotui version",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "fuotui %s\n", version)
			},
		},
	)
	return root
}

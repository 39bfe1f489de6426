package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/samber/lo"
)

// Config captures the daemon endpoints and local client settings.
type Config struct {
	ControlAddr  string
	PubsubAddr   string
	SyncInterval time.Duration
	LogFile      string
	LogLevel     string
	Topics       []string
}

const (
	defaultConfigPath   = "~/.config/fuotui/config.toml"
	defaultLogFile      = "~/.local/state/fuotui/fuotui.log"
	defaultControlAddr  = "127.0.0.1:23333"
	defaultPubsubAddr   = "127.0.0.1:23334"
	defaultLogLevel     = "info"
	defaultSyncInterval = 30 * time.Second
)

var defaultTopics = []string{"player.*", "live_lyric.*"}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		ControlAddr:  defaultControlAddr,
		PubsubAddr:   defaultPubsubAddr,
		SyncInterval: defaultSyncInterval,
		LogFile:      mustExpand(defaultLogFile),
		LogLevel:     defaultLogLevel,
		Topics:       append([]string(nil), defaultTopics...),
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		ControlAddr  string   `toml:"control_addr"`
		PubsubAddr   string   `toml:"pubsub_addr"`
		SyncInterval int      `toml:"sync_interval"`
		LogFile      string   `toml:"log_file"`
		LogLevel     string   `toml:"log_level"`
		Topics       []string `toml:"topics"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.ControlAddr); v != "" {
		cfg.ControlAddr = v
	}
	if v := strings.TrimSpace(raw.PubsubAddr); v != "" {
		cfg.PubsubAddr = v
	}
	if raw.SyncInterval < 0 {
		return Config{}, fmt.Errorf("parse config: sync_interval must not be negative, got %d", raw.SyncInterval)
	}
	if raw.SyncInterval > 0 {
		cfg.SyncInterval = time.Duration(raw.SyncInterval) * time.Second
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	topics := lo.Compact(lo.Map(raw.Topics, func(s string, _ int) string {
		return strings.TrimSpace(s)
	}))
	if len(topics) > 0 {
		cfg.Topics = lo.Uniq(topics)
	}

	return cfg, nil
}

// DefaultPath returns the expanded default config location.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

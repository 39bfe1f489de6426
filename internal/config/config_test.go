package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ControlAddr != defaultControlAddr {
		t.Fatalf("ControlAddr = %q, want %q", cfg.ControlAddr, defaultControlAddr)
	}
	if cfg.PubsubAddr != defaultPubsubAddr {
		t.Fatalf("PubsubAddr = %q, want %q", cfg.PubsubAddr, defaultPubsubAddr)
	}
	if cfg.SyncInterval != defaultSyncInterval {
		t.Fatalf("SyncInterval = %v, want %v", cfg.SyncInterval, defaultSyncInterval)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q, want info", cfg.LogLevel)
	}

	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
	if len(cfg.Topics) != 2 || cfg.Topics[0] != "player.*" || cfg.Topics[1] != "live_lyric.*" {
		t.Fatalf("Topics = %v, want defaults", cfg.Topics)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
control_addr = "  10.0.0.5:23333  "
pubsub_addr = "10.0.0.5:23334"
sync_interval = 5
log_file = "  ~/logs/fuotui.log  "
log_level = " DEBUG "
topics = [" player.* ", "", "player.*"]
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ControlAddr != "10.0.0.5:23333" {
		t.Fatalf("ControlAddr = %q, want %q", cfg.ControlAddr, "10.0.0.5:23333")
	}
	if cfg.PubsubAddr != "10.0.0.5:23334" {
		t.Fatalf("PubsubAddr = %q, want %q", cfg.PubsubAddr, "10.0.0.5:23334")
	}
	if cfg.SyncInterval != 5*time.Second {
		t.Fatalf("SyncInterval = %v, want 5s", cfg.SyncInterval)
	}
	if cfg.LogFile != filepath.Join(home, "logs", "fuotui.log") {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if len(cfg.Topics) != 1 || cfg.Topics[0] != "player.*" {
		t.Fatalf("Topics = %v, want [player.*]", cfg.Topics)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
control_addr = "   "
sync_interval = 0
log_file = ""
topics = []
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ControlAddr != defaultControlAddr {
		t.Fatalf("ControlAddr = %q, want %q", cfg.ControlAddr, defaultControlAddr)
	}
	if cfg.SyncInterval != defaultSyncInterval {
		t.Fatalf("SyncInterval = %v, want %v", cfg.SyncInterval, defaultSyncInterval)
	}
	if len(cfg.Topics) != 2 {
		t.Fatalf("Topics = %v, want defaults", cfg.Topics)
	}
}

func TestLoad_InvalidValuesFail(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", `control_addr = [`},
		{"negative interval", `sync_interval = -1`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.body), 0o600); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatalf("Load returned nil error, want parse error")
			}
			if !strings.Contains(err.Error(), "parse config") {
				t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
			}
		})
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

func TestDefaultPath_UnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got := DefaultPath()
	if got != filepath.Join(home, ".config", "fuotui", "config.toml") {
		t.Fatalf("DefaultPath = %q, want it under HOME %q", got, home)
	}
}

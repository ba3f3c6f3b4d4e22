package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeGlobal(t *testing.T, homeDir, content string) {
	t.Helper()
	dir := filepath.Join(homeDir, GlobalConfigDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create %s directory: %v", GlobalConfigDir, err)
	}
	if err := os.WriteFile(filepath.Join(dir, GlobalConfigFileName), []byte(content), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
}

func TestGlobal_FileExists(t *testing.T) {
	tmpDir := t.TempDir()
	writeGlobal(t, tmpDir, `
[server]
url = "https://tasks.example.com"
timeout = "5s"

[serve]
addr = "0.0.0.0:8080"
database = "/var/lib/taskboard.db"
`)

	cfg, err := LoadGlobalConfigFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ServerURL != "https://tasks.example.com" {
		t.Errorf("expected url 'https://tasks.example.com', got '%s'", cfg.ServerURL)
	}
	if time.Duration(cfg.Timeout) != 5*time.Second {
		t.Errorf("expected timeout 5s, got %v", time.Duration(cfg.Timeout))
	}
	if cfg.Serve.Addr != "0.0.0.0:8080" || cfg.Serve.Database != "/var/lib/taskboard.db" {
		t.Errorf("unexpected serve config %+v", cfg.Serve)
	}
}

func TestGlobal_FileNotExists(t *testing.T) {
	cfg, err := LoadGlobalConfigFromDir(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerURL != "" || cfg.Timeout != 0 {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestGlobal_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"invalid toml", `[server`, "parse"},
		{"relative url", "[server]\nurl = \"tasks.example.com\"", "invalid server url"},
		{"bad timeout", "[server]\ntimeout = \"soon\"", "invalid duration"},
		{"negative timeout", "[server]\ntimeout = \"-1s\"", "must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			writeGlobal(t, tmpDir, tt.content)

			_, err := LoadGlobalConfigFromDir(tmpDir)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestGlobal_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	writeGlobal(t, tmpDir, "")

	cfg, err := LoadGlobalConfigFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerURL != "" {
		t.Errorf("expected empty url, got %q", cfg.ServerURL)
	}
}

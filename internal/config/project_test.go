package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeProject(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	return path
}

func TestDiscovery_CurrentDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	writeProject(t, tmpDir, `project = "65a1f0c2e4b0a1b2c3d4e5f6"`)

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	defer os.Chdir(originalWd)

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}

	cfg, err := DiscoverProjectConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Project != "65a1f0c2e4b0a1b2c3d4e5f6" {
		t.Errorf("expected project id, got '%s'", cfg.Project)
	}
}

func TestDiscovery_DeeplyNested(t *testing.T) {
	tmpDir := t.TempDir()
	nested := filepath.Join(tmpDir, "a", "b", "c")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("failed to create nested directory: %v", err)
	}
	path := writeProject(t, tmpDir, `project = "root-project"`)

	cfg, err := DiscoverProjectConfigFrom(nested)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Project != "root-project" {
		t.Errorf("expected project 'root-project', got '%s'", cfg.Project)
	}
	if cfg.Path != path {
		t.Errorf("expected path %s, got %s", path, cfg.Path)
	}
}

func TestDiscovery_NearestWins(t *testing.T) {
	tmpDir := t.TempDir()
	child := filepath.Join(tmpDir, "child")
	if err := os.Mkdir(child, 0755); err != nil {
		t.Fatalf("failed to create child directory: %v", err)
	}
	writeProject(t, tmpDir, `project = "parent"`)
	writeProject(t, child, `project = "child"`)

	cfg, err := DiscoverProjectConfigFrom(child)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Project != "child" {
		t.Errorf("expected project 'child', got '%s'", cfg.Project)
	}
}

func TestDiscovery_NotFound(t *testing.T) {
	_, err := DiscoverProjectConfigFrom(t.TempDir())
	if !errors.Is(err, ErrNoProjectConfig) {
		t.Errorf("expected ErrNoProjectConfig, got %v", err)
	}
}

func TestParse_FullConfig(t *testing.T) {
	path := writeProject(t, t.TempDir(), `
project = "p1"

[server]
url = "http://localhost:4000"
`)

	cfg, err := ParseProjectConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Project != "p1" || cfg.ServerURL != "http://localhost:4000" {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestParse_ServerOnly(t *testing.T) {
	path := writeProject(t, t.TempDir(), "[server]\nurl = \"https://tasks.example.com\"")

	cfg, err := ParseProjectConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Project != "" {
		t.Errorf("expected no default project, got %q", cfg.Project)
	}
}

func TestParse_InvalidURL(t *testing.T) {
	tests := []string{"ftp://tasks.example.com", "tasks.example.com", "http://"}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			path := writeProject(t, t.TempDir(), "[server]\nurl = \""+raw+"\"")
			_, err := ParseProjectConfig(path)
			if err == nil || !strings.Contains(err.Error(), "invalid server url") {
				t.Errorf("expected invalid url error, got %v", err)
			}
		})
	}
}

func TestParse_InvalidTOML(t *testing.T) {
	path := writeProject(t, t.TempDir(), `project = `)
	if _, err := ParseProjectConfig(path); err == nil {
		t.Error("expected error for invalid TOML")
	}
}

func TestParse_FileNotFound(t *testing.T) {
	if _, err := ParseProjectConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

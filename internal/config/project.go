package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	// ConfigFileName is the name of the project configuration file
	ConfigFileName = "taskboard.toml"

	// DefaultServerURL is the default API base address
	DefaultServerURL = "http://localhost:3000"

	// DefaultTimeout is the default per-request timeout
	DefaultTimeout = 30 * time.Second
)

// ErrNoProjectConfig is returned when no taskboard.toml exists in the
// working directory or any parent.
var ErrNoProjectConfig = errors.New("no taskboard.toml found")

// ProjectConfig represents the project-level configuration from taskboard.toml
type ProjectConfig struct {
	// Project is the default project id for commands that take one.
	Project   string
	ServerURL string
	Path      string
}

// projectConfigFile represents the raw TOML structure
type projectConfigFile struct {
	Project string       `toml:"project"`
	Server  serverConfig `toml:"server"`
}

// serverConfig represents the [server] section in TOML
type serverConfig struct {
	URL     string   `toml:"url"`
	Timeout Duration `toml:"timeout"`
}

// Duration is a time.Duration written as a string such as "30s" in TOML.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	if v <= 0 {
		return fmt.Errorf("invalid duration %q: must be positive", text)
	}
	*d = Duration(v)
	return nil
}

// DiscoverProjectConfig finds and parses the taskboard.toml file by traversing
// up the directory tree from the current working directory.
func DiscoverProjectConfig() (*ProjectConfig, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	return DiscoverProjectConfigFrom(cwd)
}

// DiscoverProjectConfigFrom searches for taskboard.toml starting from the given directory
func DiscoverProjectConfigFrom(startDir string) (*ProjectConfig, error) {
	dir := startDir

	for {
		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return ParseProjectConfig(configPath)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, ErrNoProjectConfig
		}
		dir = parent
	}
}

// ParseProjectConfig parses the taskboard.toml file at the given path
func ParseProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var rawConfig projectConfigFile
	if _, err := toml.Decode(string(data), &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	if rawConfig.Server.URL != "" {
		if err := validateURL(rawConfig.Server.URL); err != nil {
			return nil, err
		}
	}

	return &ProjectConfig{
		Project:   rawConfig.Project,
		ServerURL: rawConfig.Server.URL,
		Path:      path,
	}, nil
}

// validateURL checks that raw is an absolute http or https address
func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid server url %q: must be an absolute http(s) address", raw)
	}
	return nil
}

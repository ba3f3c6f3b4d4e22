package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// GlobalConfigDir is the name of the global config directory in home
	GlobalConfigDir = ".taskboard"

	// GlobalConfigFileName is the name of the global config file
	GlobalConfigFileName = "config.toml"
)

// GlobalConfig represents the user-level configuration from ~/.taskboard/config.toml
type GlobalConfig struct {
	ServerURL string
	Timeout   Duration
	Serve     ServeConfig
}

// ServeConfig configures `taskboard serve`.
type ServeConfig struct {
	Addr     string `toml:"addr"`
	Database string `toml:"database"`
	Secret   string `toml:"secret"`
}

// globalConfigFile represents the raw TOML structure for global config
type globalConfigFile struct {
	Server serverConfig `toml:"server"`
	Serve  ServeConfig  `toml:"serve"`
}

// LoadGlobalConfig loads the global configuration from ~/.taskboard/config.toml.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	return LoadGlobalConfigFromDir(homeDir)
}

// LoadGlobalConfigFromDir loads global config using the specified directory as home.
func LoadGlobalConfigFromDir(homeDir string) (*GlobalConfig, error) {
	configPath := filepath.Join(homeDir, GlobalConfigDir, GlobalConfigFileName)

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return &GlobalConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read global config: %w", err)
	}

	var rawConfig globalConfigFile
	if _, err := toml.Decode(string(data), &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to parse global config TOML: %w", err)
	}

	if rawConfig.Server.URL != "" {
		if err := validateURL(rawConfig.Server.URL); err != nil {
			return nil, err
		}
	}

	return &GlobalConfig{
		ServerURL: rawConfig.Server.URL,
		Timeout:   rawConfig.Server.Timeout,
		Serve:     rawConfig.Serve,
	}, nil
}

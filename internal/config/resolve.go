package config

import (
	"errors"
	"os"
	"time"
)

// ResolvedConfig represents the final merged configuration with all
// precedence rules applied. Precedence order (highest to lowest):
// 1. Command-line flags (applied by the caller)
// 2. Project config (taskboard.toml)
// 3. Global config (~/.taskboard/config.toml)
// 4. Built-in defaults (http://localhost:3000, 30s)
type ResolvedConfig struct {
	Project   string
	ServerURL string
	Timeout   time.Duration
	Serve     ServeConfig
	// Session is the stored login, or nil.
	Session *Session
	HomeDir string
}

// ResolveConfig discovers the project config, loads the global config and
// session, and merges them according to precedence rules.
func ResolveConfig() (*ResolvedConfig, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return ResolveConfigWith(homeDir, cwd)
}

// ResolveConfigWith resolves config using the given home and working
// directories.
func ResolveConfigWith(homeDir, cwd string) (*ResolvedConfig, error) {
	// Project config is optional
	projectCfg, err := DiscoverProjectConfigFrom(cwd)
	if errors.Is(err, ErrNoProjectConfig) {
		projectCfg, err = &ProjectConfig{}, nil
	}
	if err != nil {
		return nil, err
	}

	globalCfg, err := LoadGlobalConfigFromDir(homeDir)
	if err != nil {
		return nil, err
	}

	session, err := LoadSession(homeDir)
	if err != nil {
		return nil, err
	}

	resolved := &ResolvedConfig{
		Project:   projectCfg.Project,
		ServerURL: DefaultServerURL,
		Timeout:   DefaultTimeout,
		Serve:     globalCfg.Serve,
		Session:   session,
		HomeDir:   homeDir,
	}

	if globalCfg.ServerURL != "" {
		resolved.ServerURL = globalCfg.ServerURL
	}
	if globalCfg.Timeout != 0 {
		resolved.Timeout = time.Duration(globalCfg.Timeout)
	}

	if projectCfg.ServerURL != "" {
		resolved.ServerURL = projectCfg.ServerURL
	}

	return resolved, nil
}

// SessionFor returns the stored session cookie if it was issued by serverURL.
func (c *ResolvedConfig) SessionFor(serverURL string) (string, bool) {
	if c.Session == nil || c.Session.Server != serverURL {
		return "", false
	}
	return c.Session.Cookie, true
}

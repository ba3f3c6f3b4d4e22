package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// SessionFileName is the name of the stored session file in the global
// config directory.
const SessionFileName = "session.toml"

// Session is a login persisted between CLI invocations.
type Session struct {
	Cookie   string `toml:"cookie"`
	UserID   string `toml:"user_id"`
	Username string `toml:"username"`
	Server   string `toml:"server"`
}

// SessionPath returns the session file location for homeDir.
func SessionPath(homeDir string) string {
	return filepath.Join(homeDir, GlobalConfigDir, SessionFileName)
}

// LoadSession reads the stored session. It returns nil, nil when there is
// none.
func LoadSession(homeDir string) (*Session, error) {
	data, err := os.ReadFile(SessionPath(homeDir))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var s Session
	if _, err := toml.Decode(string(data), &s); err != nil {
		return nil, fmt.Errorf("failed to parse session TOML: %w", err)
	}
	if s.Cookie == "" {
		return nil, nil
	}
	return &s, nil
}

// SaveSession writes the session readable only by the current user.
func SaveSession(homeDir string, s *Session) error {
	path := SessionPath(homeDir)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(s); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return f.Close()
}

// ClearSession removes the stored session. A missing file is not an error.
func ClearSession(homeDir string) error {
	if err := os.Remove(SessionPath(homeDir)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	return nil
}

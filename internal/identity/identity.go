// Package identity builds the caller identity the taskboard CLI reports to
// the server as its User-Agent.
package identity

import (
	"fmt"
	"os"
	"os/user"
)

const (
	// Product is the client name at the start of the User-Agent.
	Product = "taskboard-cli"
	// FallbackUser is used when the user cannot be determined
	FallbackUser = "unknown"
	// FallbackHostname is used when the hostname cannot be determined
	FallbackHostname = "localhost"
)

// UserAgent returns the User-Agent string in the format
// taskboard-cli (user@hostname), e.g. taskboard-cli (alice@macbook).
func UserAgent() string {
	return UserAgentWithOverrides(getUser(), getHostname())
}

// UserAgentWithOverrides returns the User-Agent string using the provided
// values, applying fallbacks for any empty values.
func UserAgentWithOverrides(usr, hostname string) string {
	if usr == "" {
		usr = FallbackUser
	}
	if hostname == "" {
		hostname = FallbackHostname
	}

	return fmt.Sprintf("%s (%s@%s)", Product, usr, hostname)
}

// getUser returns the current user's username.
// It first checks the USER environment variable, then falls back to user.Current().
func getUser() string {
	if usr := os.Getenv("USER"); usr != "" {
		return usr
	}

	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}

	return ""
}

// getHostname returns the system hostname.
func getHostname() string {
	if hostname, err := os.Hostname(); err == nil && hostname != "" {
		return hostname
	}
	return ""
}

package identity

import (
	"os"
	"strings"
	"testing"
)

func TestUserAgentWithOverrides(t *testing.T) {
	tests := []struct {
		name     string
		usr      string
		hostname string
		want     string
	}{
		{"all values", "alice", "macbook", "taskboard-cli (alice@macbook)"},
		{"empty user", "", "macbook", "taskboard-cli (unknown@macbook)"},
		{"empty hostname", "alice", "", "taskboard-cli (alice@localhost)"},
		{"all empty", "", "", "taskboard-cli (unknown@localhost)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserAgentWithOverrides(tt.usr, tt.hostname); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestUserAgent_UsesUSER(t *testing.T) {
	t.Setenv("USER", "testuser")

	got := UserAgent()
	if !strings.HasPrefix(got, "taskboard-cli (testuser@") {
		t.Errorf("expected USER in user agent, got %q", got)
	}

	hostname, err := os.Hostname()
	if err == nil && hostname != "" && !strings.HasSuffix(got, "@"+hostname+")") {
		t.Errorf("expected hostname %q in user agent, got %q", hostname, got)
	}
}

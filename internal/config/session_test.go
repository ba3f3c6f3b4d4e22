package config

import (
	"os"
	"testing"
)

func TestSession_SaveLoadClear(t *testing.T) {
	homeDir := t.TempDir()

	s, err := LoadSession(homeDir)
	if err != nil || s != nil {
		t.Fatalf("expected no session, got %+v, %v", s, err)
	}

	want := &Session{Cookie: "jwt-token", UserID: "u1", Username: "alice", Server: "http://localhost:3000"}
	if err := SaveSession(homeDir, want); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	info, err := os.Stat(SessionPath(homeDir))
	if err != nil {
		t.Fatalf("stat session: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("expected mode 0600, got %o", perm)
	}

	got, err := LoadSession(homeDir)
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if got == nil || *got != *want {
		t.Errorf("expected %+v, got %+v", want, got)
	}

	if err := ClearSession(homeDir); err != nil {
		t.Fatalf("ClearSession: %v", err)
	}
	if err := ClearSession(homeDir); err != nil {
		t.Errorf("expected clearing twice to succeed, got %v", err)
	}
	if got, _ := LoadSession(homeDir); got != nil {
		t.Errorf("expected session to be gone, got %+v", got)
	}
}

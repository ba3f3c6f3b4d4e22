package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/taskboard/taskboard/internal/api"
	"github.com/taskboard/taskboard/internal/server"
	"github.com/taskboard/taskboard/internal/service"
	"github.com/taskboard/taskboard/internal/store"
	"github.com/taskboard/taskboard/pkg/taskboard"
)

func newServer(t *testing.T, addr string) *server.Server {
	t.Helper()

	st, err := store.Open(store.MemoryPath)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}

	srv, err := server.New(addr, st, api.Options{
		Auth: service.AuthConfig{Secret: []byte("server-test"), BcryptCost: bcrypt.MinCost},
	})
	if err != nil {
		st.Close()
		t.Fatalf("failed to create server: %v", err)
	}
	return srv
}

func waitForAddr(t *testing.T, srv *server.Server) string {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if addr := srv.Addr(); addr != "" {
			return addr
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("server address not available")
	return ""
}

func TestServer_StartAndShutdown(t *testing.T) {
	srv := newServer(t, "localhost:0")

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()
	waitForAddr(t, srv)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		t.Errorf("shutdown error: %v", err)
	}

	select {
	case err := <-errChan:
		if err != nil && err != http.ErrServerClosed {
			t.Errorf("unexpected error from Start: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Error("server did not stop after shutdown")
	}
}

func TestServer_ServesHealthAndClient(t *testing.T) {
	srv := newServer(t, "localhost:0")
	go srv.Start()
	addr := waitForAddr(t, srv)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(ctx)
	}()

	resp, err := http.Get("http://" + addr + "/health")
	if err != nil {
		t.Fatalf("failed to make request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}

	var health map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if health["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", health["status"])
	}

	client, err := taskboard.NewClient("http://" + addr)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	if _, err := client.Signup(context.Background(), "alice", "password123", "alice@example.com"); err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if _, err := client.ListProjects(context.Background()); err != nil {
		t.Errorf("ListProjects: %v", err)
	}
}

func TestServer_ShutdownBeforeStart(t *testing.T) {
	srv := newServer(t, "localhost:0")
	if err := srv.Shutdown(context.Background()); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestServer_DefaultAddress(t *testing.T) {
	srv := newServer(t, "")
	if srv.ConfiguredAddr() != "localhost:3000" {
		t.Errorf("expected default address 'localhost:3000', got %q", srv.ConfiguredAddr())
	}
	if srv.Addr() != "" {
		t.Errorf("expected empty address before start, got %q", srv.Addr())
	}
}

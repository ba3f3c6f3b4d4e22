package taskboard

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResultOf_Success(t *testing.T) {
	r := ResultOf(&Project{ID: "p1"}, nil)
	if r.Kind() != ResultSuccess {
		t.Fatalf("expected success, got %s", r.Kind())
	}

	s, ok := r.(Success[*Project])
	if !ok {
		t.Fatalf("expected Success[*Project], got %T", r)
	}
	if s.Value.ID != "p1" {
		t.Errorf("expected p1, got %s", s.Value.ID)
	}
}

func TestResultOf_Failure(t *testing.T) {
	r := ResultOf[*Project](nil, newApplicationError(http.StatusNotFound, []byte(`{"error":{"message":"not found"}}`)))
	if r.Kind() != ResultError {
		t.Fatalf("expected error, got %s", r.Kind())
	}

	f, ok := r.(Failure[*Project])
	if !ok {
		t.Fatalf("expected Failure[*Project], got %T", r)
	}
	if f.Message() != "not found" {
		t.Errorf("expected not found, got %q", f.Message())
	}
}

func TestResultOf_ForeignErrorIsNormalized(t *testing.T) {
	r := ResultOf(0, errors.New("boom"))
	f, ok := r.(Failure[int])
	if !ok {
		t.Fatalf("expected Failure[int], got %T", r)
	}
	if f.Err.Kind != KindTransport || f.Message() != DefaultErrorMessage {
		t.Errorf("expected normalized transport error, got %+v", f.Err)
	}
}

func TestResultOf_LoginScenario(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"user":{"id":"u1","username":"alice","email":"a@x.com"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	r := ResultOf(client.Login(context.Background(), "alice", "pw"))

	switch v := r.(type) {
	case Success[*User]:
		want := User{ID: "u1", Username: "alice", Email: "a@x.com"}
		if *v.Value != want {
			t.Errorf("expected %+v, got %+v", want, *v.Value)
		}
	case Failure[*User]:
		t.Fatalf("expected success, got error %q", v.Message())
	}
}

func TestResultOf_GetTaskNotFoundScenario(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"message":"not found"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	r := ResultOf(client.GetTask(context.Background(), "t1"))

	f, ok := r.(Failure[*Task])
	if !ok {
		t.Fatalf("expected failure, got %T", r)
	}
	if f.Message() != "not found" {
		t.Errorf("expected message not found, got %q", f.Message())
	}
}

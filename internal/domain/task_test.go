package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestTaskDetail_EmbedsFullObjects(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	task := &Task{
		ID:       "t1",
		Name:     "Ship",
		Created:  now,
		Updated:  now,
		Watchers: []string{"u1"},
		Comments: []string{"c1"},
		Tags:     []string{"g1"},
	}
	detail := TaskDetail{
		Task:           task,
		ChecklistItems: []ChecklistItem{},
		Comments:       []Comment{{ID: "c1", TaskID: "t1", Text: "hi"}},
		HistoryItems:   []HistoryItem{{ID: "h1", Type: HistoryCreate, Datetime: now}},
		Tags:           []Tag{{ID: "g1", Name: "bug"}},
	}

	data, err := json.Marshal(detail)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !strings.HasPrefix(string(decoded["comments"]), `[{"id":"c1"`) {
		t.Errorf("expected embedded comment objects, got %s", decoded["comments"])
	}
	if !strings.Contains(string(decoded["historyItems"]), `"type":"CREATE"`) {
		t.Errorf("expected embedded history objects, got %s", decoded["historyItems"])
	}
	if string(decoded["watchers"]) != `["u1"]` {
		t.Errorf("expected watcher ids, got %s", decoded["watchers"])
	}
	if string(decoded["id"]) != `"t1"` {
		t.Errorf("expected id t1, got %s", decoded["id"])
	}
}

func TestTask_SubCollectionsAsIDs(t *testing.T) {
	data, err := json.Marshal(Task{ID: "t1", Comments: []string{"c1", "c2"}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"comments":["c1","c2"]`) {
		t.Errorf("expected comment ids, got %s", data)
	}
	if !strings.Contains(string(data), `"assignee":null`) {
		t.Errorf("expected null assignee, got %s", data)
	}
}

func TestField(t *testing.T) {
	var absent Field[string]
	if absent.Present {
		t.Error("zero Field should be absent")
	}

	set := Set("x")
	if !set.Present || set.Null || set.Value != "x" {
		t.Errorf("unexpected Set result %+v", set)
	}

	cleared := Cleared[string]()
	if !cleared.Present || !cleared.Null {
		t.Errorf("unexpected Cleared result %+v", cleared)
	}
}

func TestValidColour(t *testing.T) {
	tests := []struct {
		colour string
		want   bool
	}{
		{"", true},
		{"#fff", true},
		{"#1D3557", true},
		{"fff", false},
		{"#ffff", false},
		{"#ggg", false},
	}

	for _, tt := range tests {
		if got := ValidColour(tt.colour); got != tt.want {
			t.Errorf("ValidColour(%q) = %v, want %v", tt.colour, got, tt.want)
		}
	}
}

func TestValidateSignup(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		email    string
		wantErrs int
	}{
		{"valid", "alice", "correct-horse", "a@x.com", 0},
		{"short username", "al", "correct-horse", "a@x.com", 1},
		{"short password", "alice", "pw", "a@x.com", 1},
		{"bad email", "alice", "correct-horse", "alice", 1},
		{"everything wrong", "a b", "", "@", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateSignup(tt.username, tt.password, tt.email); len(got) != tt.wantErrs {
				t.Errorf("ValidateSignup() = %v, want %d errors", got, tt.wantErrs)
			}
		})
	}
}

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/taskboard/taskboard/pkg/taskboard"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"a much longer name", 10, "a much ..."},
		{"ünïcödé strings", 8, "ünïcö..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, expected %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestPrintTaskList_Empty(t *testing.T) {
	var buf bytes.Buffer
	printTaskList(&buf, nil, false)
	if !strings.Contains(buf.String(), "No tasks found") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestPrintTask_ResolvedAndBareRefs(t *testing.T) {
	assignee := "u1"
	task := &taskboard.Task{
		ID:       "t1",
		Name:     "Write docs",
		Assignee: &assignee,
		Created:  time.Now(),
		Updated:  time.Now(),
		Tags: []taskboard.Ref[taskboard.Tag]{
			{ID: "g1", Value: &taskboard.Tag{ID: "g1", Name: "docs"}},
			{ID: "g2"},
		},
		HistoryItems: []taskboard.Ref[taskboard.HistoryItem]{
			{ID: "h1", Value: &taskboard.HistoryItem{ID: "h1", Type: taskboard.HistoryCreate, Detail: "alice created the task"}},
		},
		ChecklistItems: []taskboard.Ref[taskboard.ChecklistItem]{
			{ID: "c1", Value: &taskboard.ChecklistItem{ID: "c1", Text: "outline", Completed: true}},
		},
	}

	var buf bytes.Buffer
	printTask(&buf, task, false)
	out := buf.String()

	for _, want := range []string{"Write docs", "docs, g2", "Assignee:", "CREATE", "alice created the task", "[x] outline"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, errors.New("bad thing"), false)
	if buf.String() != "Error: bad thing\n" {
		t.Errorf("unexpected output %q", buf.String())
	}

	buf.Reset()
	apiErr := &taskboard.Error{Kind: taskboard.KindApplication, Message: "Task not found", Code: "TASK_NOT_FOUND", StatusCode: 404}
	printError(&buf, apiErr, true)

	var resp struct {
		Error struct {
			Message string `json:"message"`
			Code    string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(buf.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if resp.Error.Message != "Task not found" || resp.Error.Code != "TASK_NOT_FOUND" {
		t.Errorf("unexpected error body %+v", resp.Error)
	}

	buf.Reset()
	transport := &taskboard.Error{Kind: taskboard.KindTransport, Message: taskboard.DefaultErrorMessage, Err: errors.New("connection refused")}
	printError(&buf, transport, false)
	if !strings.Contains(buf.String(), "cannot reach server: connection refused") {
		t.Errorf("unexpected transport output %q", buf.String())
	}
}

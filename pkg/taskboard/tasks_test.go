package taskboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCreateTask(t *testing.T) {
	due := time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sections/s1/tasks" {
			t.Errorf("expected path /sections/s1/tasks, got %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("expected Content-Type application/json, got %s", r.Header.Get("Content-Type"))
		}

		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		if body["name"] != "Write docs" {
			t.Errorf("expected name 'Write docs', got %v", body["name"])
		}
		if body["assignee"] != "u2" {
			t.Errorf("expected assignee u2, got %v", body["assignee"])
		}
		if _, misspelled := body["assigne"]; misspelled {
			t.Error("request must not carry the assigne key")
		}
		if body["dueDate"] != "2026-05-04T09:30:00Z" {
			t.Errorf("expected dueDate 2026-05-04T09:30:00Z, got %v", body["dueDate"])
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"task":{"id":"t1","name":"Write docs","assignee":"u2","dueDate":"2026-05-04T09:30:00Z","created":"2026-05-01T00:00:00Z","updated":"2026-05-01T00:00:00Z","watchers":[],"checklistItems":[],"comments":[],"historyItems":["h1"],"tags":[]}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	task, err := client.CreateTask(context.Background(), "s1", "Write docs", WithAssignee("u2"), WithDueDate(due))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if task.ID != "t1" {
		t.Errorf("expected ID t1, got %s", task.ID)
	}
	if task.Assignee == nil || *task.Assignee != "u2" {
		t.Errorf("expected assignee u2, got %v", task.Assignee)
	}
	if task.DueDate == nil || !task.DueDate.Equal(due) {
		t.Errorf("expected due date %v, got %v", due, task.DueDate)
	}
	if len(task.HistoryItems) != 1 || task.HistoryItems[0].ID != "h1" || task.HistoryItems[0].Resolved() {
		t.Errorf("expected one unresolved history ref h1, got %+v", task.HistoryItems)
	}
}

func TestCreateTask_OmitsUnsetOptions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		json.NewDecoder(r.Body).Decode(&body)
		if len(body) != 1 || body["name"] != "Bare" {
			t.Errorf("expected only name, got %v", body)
		}
		writeJSON(w, http.StatusCreated, map[string]interface{}{"task": map[string]string{"id": "t2", "name": "Bare"}})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	if _, err := client.CreateTask(context.Background(), "s1", "Bare"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetTask_EmbeddedSubCollections(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tasks/t1" {
			t.Errorf("expected path /tasks/t1, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"task":{
			"_id":"t1","name":"Ship","description":"","dueDate":null,"assignee":null,
			"created":"2026-05-01T00:00:00Z","updated":"2026-05-02T00:00:00Z",
			"watchers":["u1"],
			"checklistItems":[{"_id":"k1","text":"draft","completed":true}],
			"comments":[{"_id":"c1","task":"t1","text":"looks good"}],
			"historyItems":[{"_id":"h1","detail":"created","datetime":"2026-05-01T00:00:00Z","type":"CREATE"}],
			"tags":[{"_id":"g1","project":"p1","name":"bug","colour":"#f00"}]
		}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	task, err := client.GetTask(context.Background(), "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if task.ID != "t1" {
		t.Errorf("expected ID t1, got %q", task.ID)
	}
	if task.Assignee != nil || task.DueDate != nil {
		t.Errorf("expected null assignee and due date, got %v %v", task.Assignee, task.DueDate)
	}
	if len(task.ChecklistItems) != 1 || !task.ChecklistItems[0].Value.Completed {
		t.Errorf("expected completed checklist item, got %+v", task.ChecklistItems)
	}
	if len(task.Comments) != 1 || task.Comments[0].ID != "c1" || task.Comments[0].Value.Text != "looks good" {
		t.Errorf("unexpected comments %+v", task.Comments)
	}
	if len(task.HistoryItems) != 1 || task.HistoryItems[0].Value.Type != HistoryCreate {
		t.Errorf("unexpected history %+v", task.HistoryItems)
	}
	if len(task.Tags) != 1 || task.Tags[0].Value.Name != "bug" || task.Tags[0].ID != "g1" {
		t.Errorf("unexpected tags %+v", task.Tags)
	}
}

func TestGetTask_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"message":"not found"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	task, err := client.GetTask(context.Background(), "t1")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if task != nil {
		t.Errorf("expected nil task, got %+v", task)
	}
	if !IsNotFound(err) {
		t.Errorf("expected not found error, got %v", err)
	}
	if err.Error() != "not found" {
		t.Errorf("expected message 'not found', got %q", err.Error())
	}
}

func TestListTasks(t *testing.T) {
	tests := []struct {
		name      string
		sectionID string
		wantPath  string
	}{
		{name: "section scoped", sectionID: "s1", wantPath: "/sections/s1/tasks"},
		{name: "all visible tasks", sectionID: "", wantPath: "/tasks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != tt.wantPath {
					t.Errorf("expected path %s, got %s", tt.wantPath, r.URL.Path)
				}
				if r.Method != http.MethodGet {
					t.Errorf("expected GET, got %s", r.Method)
				}
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"tasks":[{"id":"t1","comments":["c1","c2"]},{"id":"t2"}]}`))
			}))
			defer server.Close()

			client := newTestClient(t, server)
			tasks, err := client.ListTasks(context.Background(), tt.sectionID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(tasks) != 2 {
				t.Fatalf("expected 2 tasks, got %d", len(tasks))
			}
			if ids := RefIDs(tasks[0].Comments); len(ids) != 2 || ids[1] != "c2" {
				t.Errorf("expected comment ids [c1 c2], got %v", ids)
			}
		})
	}
}

func TestUpdateTask_SendsOnlyProvidedFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("expected PATCH, got %s", r.Method)
		}
		if r.URL.Path != "/tasks/t1" {
			t.Errorf("expected path /tasks/t1, got %s", r.URL.Path)
		}

		var body map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		if len(body) != 2 {
			t.Errorf("expected 2 keys, got %v", body)
		}
		if string(body["name"]) != `"Renamed"` {
			t.Errorf("expected name Renamed, got %s", body["name"])
		}
		if string(body["assignee"]) != "null" {
			t.Errorf("expected assignee null, got %s", body["assignee"])
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{"task": map[string]interface{}{"id": "t1", "name": "Renamed", "assignee": nil}})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	task, err := client.UpdateTask(context.Background(), "t1", TaskUpdate{
		Name:     Some("Renamed"),
		Assignee: Null[string](),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Name != "Renamed" || task.Assignee != nil {
		t.Errorf("unexpected task %+v", task)
	}
}

func TestCreateSections(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/projects/p1/sections" {
			t.Errorf("expected path /projects/p1/sections, got %s", r.URL.Path)
		}

		raw, _ := json.Marshal(decodeBody(t, r))
		want := `{"sections":[{"colour":"#fff","icon":"star","name":"Todo"}]}`
		if string(raw) != want {
			t.Errorf("expected body %s, got %s", want, raw)
		}

		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"sections": []Section{{ID: "s1", Name: "Todo", Colour: "#fff", Icon: "star"}},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	sections, err := client.CreateSections(context.Background(), "p1", []NewSection{
		{Name: "Todo", Colour: "#fff", Icon: "star"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sections) != 1 || sections[0].ID != "s1" {
		t.Errorf("unexpected sections %+v", sections)
	}
}

func TestGetComments_RepeatedQueryKeys(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/comments" {
			t.Errorf("expected path /comments, got %s", r.URL.Path)
		}
		ids := r.URL.Query()["commentId"]
		if len(ids) != 2 || ids[0] != "c1" || ids[1] != "c2" {
			t.Errorf("expected commentId=c1&commentId=c2, got %s", r.URL.RawQuery)
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"comments": []Comment{{ID: "c1", Task: "t1", Text: "a"}, {ID: "c2", Task: "t1", Text: "b"}},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server)
	comments, err := client.GetComments(context.Background(), []string{"c1", "c2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(comments) != 2 {
		t.Errorf("expected 2 comments, got %d", len(comments))
	}
}

func decodeBody(t *testing.T, r *http.Request) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		t.Errorf("failed to decode request body: %v", err)
	}
	return body
}

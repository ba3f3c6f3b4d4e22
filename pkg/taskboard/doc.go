// Package taskboard provides a Go SDK for the taskboard project and task
// management API.
//
// # Getting Started
//
// Create a client for the server's base address. Pass a session cookie you
// already hold, or log in:
//
//	client, err := taskboard.NewClient("https://tasks.example.com")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	user, err := client.Login(ctx, "alice", "secret")
//
// The session cookie issued by the server is kept by the client and sent with
// every later request. Read it back with SessionCookie to reuse it:
//
//	token, _ := client.SessionCookie()
//	later, _ := taskboard.NewClient(baseURL, taskboard.WithAuthorizationCookie(token))
//
// # Projects, Sections and Tasks
//
//	project, err := client.CreateProject(ctx, "Launch", "#1d3557")
//	sections, err := client.CreateSections(ctx, project.ID, []taskboard.NewSection{
//	    {Name: "Todo", Colour: "#ffffff", Icon: "star"},
//	})
//	task, err := client.CreateTask(ctx, sections[0].ID, "Write docs",
//	    taskboard.WithAssignee(user.ID),
//	)
//
// # Partial Updates
//
// Update structs hold Optional fields. Absent fields are not sent, Some sends
// a value and Null clears the server value:
//
//	task, err := client.UpdateTask(ctx, task.ID, taskboard.TaskUpdate{
//	    Name:     taskboard.Some("Write better docs"),
//	    Assignee: taskboard.Null[string](),
//	})
//
// # Task Sub-collections
//
// Checklist items, comments, history items and tags arrive either as full
// objects or as bare ids depending on the endpoint. Each element is a Ref:
//
//	for _, ref := range task.Comments {
//	    if ref.Resolved() {
//	        fmt.Println(ref.Value.Text)
//	    }
//	}
//
// # Error Handling
//
// Every method returns a *taskboard.Error on failure and never panics:
//
//	task, err := client.GetTask(ctx, id)
//	if err != nil {
//	    if taskboard.IsNotFound(err) {
//	        // Task doesn't exist
//	    } else if taskboard.IsTransport(err) {
//	        // Server is not reachable
//	    }
//	    fmt.Println(taskboard.Message(err))
//	}
//
// ResultOf folds a method's return values into the two-variant Result type
// for callers that prefer a discriminated value.
//
// # Configuration Options
//
//	taskboard.WithAuthorizationCookie(token)  // Pre-seeded session cookie
//	taskboard.WithTimeout(duration)           // Per-request timeout (default: 30s)
//	taskboard.WithHTTPClient(hc)              // Underlying HTTP client
//	taskboard.WithUserAgent(ua)               // User-Agent header
//	taskboard.WithObserver(o)                 // Diagnostics hook
//	taskboard.WithCookieName(name)            // Session cookie name (default: Authorization)
package taskboard

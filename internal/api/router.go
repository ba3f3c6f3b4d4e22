package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/taskboard/taskboard/internal/api/handler"
	"github.com/taskboard/taskboard/internal/api/middleware"
	"github.com/taskboard/taskboard/internal/api/response"
	"github.com/taskboard/taskboard/internal/service"
	"github.com/taskboard/taskboard/internal/store"
)

// Options configures the router.
type Options struct {
	Auth service.AuthConfig
	// AuthRateLimit limits signup and login requests per client IP.
	AuthRateLimit middleware.RateLimitConfig
	// SecureCookie marks the session cookie Secure.
	SecureCookie bool
}

// NewRouter creates and configures the HTTP router.
func NewRouter(st *store.Store, opts Options) (*chi.Mux, error) {
	authService, err := service.NewAuthService(st, opts.Auth)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	// Global middleware chain
	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.StripSlashes)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusNotFound, response.ErrorResponse{
			Error: response.ErrorBody{Code: "NOT_FOUND", Message: "not found"},
		})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusMethodNotAllowed, response.ErrorResponse{
			Error: response.ErrorBody{Code: "METHOD_NOT_ALLOWED", Message: "method not allowed"},
		})
	})

	// Initialize handlers
	systemHandler := handler.NewSystemHandler(st)
	authHandler := handler.NewAuthHandler(authService, opts.SecureCookie)
	projectHandler := handler.NewProjectHandler(service.NewProjectService(st))
	sectionHandler := handler.NewSectionHandler(service.NewSectionService(st))
	taskHandler := handler.NewTaskHandler(service.NewTaskService(st))
	commentHandler := handler.NewCommentHandler(service.NewCommentService(st))
	tagHandler := handler.NewTagHandler(service.NewTagService(st))

	// Public routes
	r.Get("/health", systemHandler.Health)
	r.Group(func(r chi.Router) {
		r.Use(middleware.NewRateLimiter(opts.AuthRateLimit).Handler)
		r.Post("/users/signup", authHandler.Signup)
		r.Post("/users/login", authHandler.Login)
	})

	// Session-scoped routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.Session(authService))

		r.Post("/users", authHandler.GetUsers)

		// Projects
		r.Get("/projects", projectHandler.ListProjects)
		r.Post("/projects", projectHandler.CreateProject)
		r.Get("/projects/{id}", projectHandler.GetProject)

		// Sections
		r.Get("/projects/{id}/sections", sectionHandler.ListSections)
		r.Post("/projects/{id}/sections", sectionHandler.CreateSections)
		r.Patch("/sections/{id}", sectionHandler.UpdateSection)
		r.Delete("/sections/{id}", sectionHandler.DeleteSection)

		// Tasks
		r.Get("/sections/{id}/tasks", taskHandler.ListSectionTasks)
		r.Post("/sections/{id}/tasks", taskHandler.CreateTask)
		r.Get("/tasks", taskHandler.ListTasks)
		r.Get("/tasks/{id}", taskHandler.GetTask)
		r.Patch("/tasks/{id}", taskHandler.UpdateTask)

		// Comments
		r.Post("/tasks/{id}/comments", commentHandler.AddComment)
		r.Get("/comments", commentHandler.GetComments)

		// Tags
		r.Get("/tags", tagHandler.GetTags)
		r.Post("/projects/{id}/tags", tagHandler.CreateTag)
		r.Patch("/tags/{id}", tagHandler.UpdateTag)
		r.Delete("/tags/{id}", tagHandler.DeleteTag)
	})

	return r, nil
}


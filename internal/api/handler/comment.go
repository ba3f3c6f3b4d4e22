package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskboard/taskboard/internal/api/middleware"
	"github.com/taskboard/taskboard/internal/api/request"
	"github.com/taskboard/taskboard/internal/api/response"
	"github.com/taskboard/taskboard/internal/domain"
	"github.com/taskboard/taskboard/internal/service"
)

// CommentHandler handles task comments.
type CommentHandler struct {
	svc *service.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(svc *service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// AddComment handles POST /tasks/{id}/comments.
func (h *CommentHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	var req request.AddCommentRequest
	if !decode(w, r, &req) {
		return
	}

	comment, err := h.svc.Add(r.Context(), middleware.GetUser(r.Context()), chi.URLParam(r, "id"), req.Text)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Created(w, response.Envelope{"comment": comment})
}

// GetComments handles GET /comments?commentId=...
func (h *CommentHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.svc.Get(r.Context(), middleware.GetUser(r.Context()), request.QueryIDs(r, "commentId"))
	if err != nil {
		response.Error(w, err)
		return
	}
	if comments == nil {
		comments = []domain.Comment{}
	}

	response.OK(w, response.Envelope{"comments": comments})
}

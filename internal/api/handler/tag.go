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

// TagHandler handles project tags.
type TagHandler struct {
	svc *service.TagService
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(svc *service.TagService) *TagHandler {
	return &TagHandler{svc: svc}
}

// GetTags handles GET /tags?tagId=...
func (h *TagHandler) GetTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.svc.Get(r.Context(), middleware.GetUser(r.Context()), request.QueryIDs(r, "tagId"))
	if err != nil {
		response.Error(w, err)
		return
	}
	if tags == nil {
		tags = []domain.Tag{}
	}

	response.OK(w, response.Envelope{"tags": tags})
}

// CreateTag handles POST /projects/{id}/tags.
func (h *TagHandler) CreateTag(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTagRequest
	if !decode(w, r, &req) {
		return
	}

	tag, err := h.svc.Create(r.Context(), middleware.GetUser(r.Context()), chi.URLParam(r, "id"), req.Name)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Created(w, response.Envelope{"tag": tag})
}

// UpdateTag handles PATCH /tags/{id}.
func (h *TagHandler) UpdateTag(w http.ResponseWriter, r *http.Request) {
	input, ok := decodePatch(w, r, request.TagUpdate)
	if !ok {
		return
	}

	tag, err := h.svc.Update(r.Context(), middleware.GetUser(r.Context()), chi.URLParam(r, "id"), input)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, response.Envelope{"tag": tag})
}

// DeleteTag handles DELETE /tags/{id}.
func (h *TagHandler) DeleteTag(w http.ResponseWriter, r *http.Request) {
	tag, err := h.svc.Delete(r.Context(), middleware.GetUser(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, response.Envelope{"tag": tag})
}

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

// SectionHandler handles section operations.
type SectionHandler struct {
	svc *service.SectionService
}

// NewSectionHandler creates a new SectionHandler.
func NewSectionHandler(svc *service.SectionService) *SectionHandler {
	return &SectionHandler{svc: svc}
}

// ListSections handles GET /projects/{id}/sections.
func (h *SectionHandler) ListSections(w http.ResponseWriter, r *http.Request) {
	sections, err := h.svc.List(r.Context(), middleware.GetUser(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, err)
		return
	}
	if sections == nil {
		sections = []*domain.Section{}
	}

	response.OK(w, response.Envelope{"sections": sections})
}

// CreateSections handles POST /projects/{id}/sections.
func (h *SectionHandler) CreateSections(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSectionsRequest
	if !decode(w, r, &req) {
		return
	}
	if errors := req.Validate(); len(errors) > 0 {
		response.Error(w, domain.NewValidationError(errors))
		return
	}

	sections, err := h.svc.Create(r.Context(), middleware.GetUser(r.Context()), chi.URLParam(r, "id"), req.Inputs())
	if err != nil {
		response.Error(w, err)
		return
	}
	if sections == nil {
		sections = []*domain.Section{}
	}

	response.Created(w, response.Envelope{"sections": sections})
}

// UpdateSection handles PATCH /sections/{id}.
func (h *SectionHandler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	input, ok := decodePatch(w, r, request.SectionUpdate)
	if !ok {
		return
	}

	section, err := h.svc.Update(r.Context(), middleware.GetUser(r.Context()), chi.URLParam(r, "id"), input)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, response.Envelope{"section": section})
}

// DeleteSection handles DELETE /sections/{id}.
func (h *SectionHandler) DeleteSection(w http.ResponseWriter, r *http.Request) {
	section, err := h.svc.Delete(r.Context(), middleware.GetUser(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, response.Envelope{"section": section})
}

// Package handler implements the HTTP handlers of the taskboard API.
package handler

import (
	"net/http"

	"github.com/taskboard/taskboard/internal/api/request"
	"github.com/taskboard/taskboard/internal/api/response"
	"github.com/taskboard/taskboard/internal/domain"
)

// decode reads a JSON body, writing a validation error on failure.
func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := request.DecodeJSON(r, v); err != nil {
		response.Error(w, domain.NewValidationError([]string{"Invalid JSON body"}))
		return false
	}
	return true
}

// decodePatch reads a partial-update body and converts it with build.
func decodePatch[T any](w http.ResponseWriter, r *http.Request, build func(request.Patch) (T, []string)) (T, bool) {
	var zero T
	patch, err := request.DecodePatch(r)
	if err != nil {
		response.Error(w, domain.NewValidationError([]string{"Invalid JSON body"}))
		return zero, false
	}
	input, errs := build(patch)
	if len(errs) > 0 {
		response.Error(w, domain.NewValidationError(errs))
		return zero, false
	}
	return input, true
}

// Package request decodes HTTP request bodies and query strings.
package request

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/taskboard/taskboard/internal/domain"
)

// MaxBodyBytes caps the size of a request body.
const MaxBodyBytes = 1 << 20

// DecodeJSON decodes JSON from request body into the given value.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(http.MaxBytesReader(nil, r.Body, MaxBodyBytes)).Decode(v)
}

// Patch is a decoded partial-update body. Keys absent from the body stay
// absent; a JSON null is kept distinct from a value.
type Patch map[string]json.RawMessage

// DecodePatch decodes a JSON object body into a Patch.
func DecodePatch(r *http.Request) (Patch, error) {
	var p Patch
	if err := DecodeJSON(r, &p); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("body must be a JSON object")
	}
	return p, nil
}

// String decodes key as a string field.
func (p Patch) String(key string) (domain.Field[string], error) {
	return field[string](p, key)
}

// Strings decodes key as a string-array field.
func (p Patch) Strings(key string) (domain.Field[[]string], error) {
	return field[[]string](p, key)
}

// Time decodes key as an RFC 3339 timestamp field.
func (p Patch) Time(key string) (domain.Field[time.Time], error) {
	return field[time.Time](p, key)
}

func field[T any](p Patch, key string) (domain.Field[T], error) {
	raw, ok := p[key]
	if !ok {
		return domain.Field[T]{}, nil
	}
	if strings.TrimSpace(string(raw)) == "null" {
		return domain.Cleared[T](), nil
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return domain.Field[T]{}, fmt.Errorf("%s has the wrong type", key)
	}
	return domain.Set(v), nil
}

// QueryIDs returns the values of a repeated query key. Both key=a&key=b and
// the bracketed key[]=a&key[]=b forms are accepted, as is a comma-separated
// single value.
func QueryIDs(r *http.Request, key string) []string {
	query := r.URL.Query()
	values := append(query[key], query[key+"[]"]...)

	ids := make([]string, 0, len(values))
	for _, v := range values {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

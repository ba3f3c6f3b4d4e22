package taskboard

import (
	"bytes"
	"encoding/json"
)

// Optional is a field of a partial update. The zero value is absent and is
// left out of the request body; Some sends a value and Null sends an explicit
// JSON null, which clears the field on the server.
type Optional[T any] struct {
	set   bool
	null  bool
	value T
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{set: true, value: v}
}

// Null returns a present Optional that encodes as JSON null.
func Null[T any]() Optional[T] {
	return Optional[T]{set: true, null: true}
}

// IsZero reports whether the field is absent. It drives the omitzero tag.
func (o Optional[T]) IsZero() bool {
	return !o.set
}

// IsNull reports whether the field is present and explicitly null.
func (o Optional[T]) IsNull() bool {
	return o.set && o.null
}

// Get returns the value and whether a non-null value is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set && !o.null
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.null {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Null[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

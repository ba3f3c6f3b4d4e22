package taskboard

import (
	"bytes"
	"encoding/json"
)

// Ref is an element of a task sub-collection. Depending on the endpoint the
// server sends either a bare id string or the full object; Ref accepts both.
// ID is always populated, Value only when the full object arrived.
type Ref[T any] struct {
	ID    string
	Value *T
}

// Resolved reports whether the full object was embedded in the response.
func (r Ref[T]) Resolved() bool {
	return r.Value != nil
}

func (r Ref[T]) MarshalJSON() ([]byte, error) {
	if r.Value != nil {
		return json.Marshal(r.Value)
	}
	return json.Marshal(r.ID)
}

func (r *Ref[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		*r = Ref[T]{}
		return json.Unmarshal(data, &r.ID)
	}

	var probe struct {
		ID      string `json:"id"`
		MongoID string `json:"_id"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	r.ID = probe.ID
	if r.ID == "" {
		r.ID = probe.MongoID
	}
	r.Value = &v
	return nil
}

// RefIDs returns the ids of refs in order.
func RefIDs[T any](refs []Ref[T]) []string {
	ids := make([]string, 0, len(refs))
	for _, r := range refs {
		ids = append(ids, r.ID)
	}
	return ids
}

// normalizeIDs rewrites Mongo-style "_id" keys to "id" throughout a JSON
// document, leaving objects that already carry "id" untouched.
func normalizeIDs(raw json.RawMessage) (json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return json.Marshal(renameIDKeys(doc))
}

func renameIDKeys(v interface{}) interface{} {
	switch node := v.(type) {
	case map[string]interface{}:
		for k, child := range node {
			node[k] = renameIDKeys(child)
		}
		if mongoID, ok := node["_id"]; ok {
			if _, exists := node["id"]; !exists {
				node["id"] = mongoID
			}
			delete(node, "_id")
		}
		return node
	case []interface{}:
		for i, child := range node {
			node[i] = renameIDKeys(child)
		}
		return node
	default:
		return v
	}
}

package parser

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/lumina-sync/models"
)

type object = map[string]any

// shape describes where an entity kind may hide inside a response.
type shape struct {
	kind models.EntityKind
	// fields are keys whose presence marks an object as the entity itself.
	fields []string
	// wrappers are keys a single entity may be nested under.
	wrappers []string
	// listKeys are keys a list of entities may be nested under.
	listKeys []string
}

var (
	noteShape = shape{
		kind:     models.KindNote,
		fields:   []string{"id", "title", "content", "subject", "categoryId"},
		wrappers: []string{"note", "data", "result"},
		listKeys: []string{"notes", "data", "results", "items"},
	}
	postShape = shape{
		kind:     models.KindPost,
		fields:   []string{"id", "postId", "title", "postTitle", "content", "postContent"},
		wrappers: []string{"post", "data", "result"},
		listKeys: []string{"posts", "data", "results", "items"},
	}
)

// decode reads body keeping numbers as json.Number. A body that is itself a
// JSON string holding JSON (double encoded) is decoded once more.
func decode(body []byte) (any, error) {
	v, err := decodeOnce(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	if s, ok := v.(string); ok {
		inner, innerErr := decodeOnce([]byte(s))
		if innerErr != nil {
			return nil, fmt.Errorf("%w: body is a plain string", ErrParse)
		}
		return inner, nil
	}

	return v, nil
}

func decodeOnce(body []byte) (any, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty body")
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// looksLike reports whether obj carries at least one of the shape's fields.
func (s shape) looksLike(obj object) bool {
	for _, f := range s.fields {
		if v, ok := obj[f]; ok && v != nil {
			return true
		}
	}
	return false
}

// findEntity applies the single-entity strategy: flat object, then an
// object nested under a wrapper key, then the first element of an array.
func (s shape) findEntity(v any) (object, error) {
	switch t := v.(type) {
	case object:
		if s.looksLike(t) {
			return t, nil
		}
		for _, key := range s.wrappers {
			nested, ok := t[key]
			if !ok {
				continue
			}
			if obj, ok := s.firstEntity(nested); ok {
				return obj, nil
			}
		}
	case []any:
		if obj, ok := s.firstEntity(t); ok {
			return obj, nil
		}
	}

	return nil, fmt.Errorf("%w: no %s found in response", ErrParse, s.kind)
}

func (s shape) firstEntity(v any) (object, bool) {
	switch t := v.(type) {
	case object:
		if s.looksLike(t) {
			return t, true
		}
	case []any:
		if len(t) == 0 {
			return nil, false
		}
		if obj, ok := t[0].(object); ok && s.looksLike(obj) {
			return obj, true
		}
	}
	return nil, false
}

// findList locates the array of entities: a bare array, an array under a
// list key, or an array under a list key of a "data" object.
func (s shape) findList(v any) ([]any, error) {
	switch t := v.(type) {
	case []any:
		return t, nil
	case object:
		for _, key := range s.listKeys {
			if arr, ok := t[key].([]any); ok {
				return arr, nil
			}
		}
		if data, ok := t["data"].(object); ok {
			for _, key := range s.listKeys {
				if arr, ok := data[key].([]any); ok {
					return arr, nil
				}
			}
		}
	}

	return nil, fmt.Errorf("%w: no %s list found in response", ErrParse, s.kind)
}

package parser

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// first returns the value of the first key present with a non-null value.
func first(obj object, keys ...string) (any, string, bool) {
	for _, k := range keys {
		if v, ok := obj[k]; ok && v != nil {
			return v, k, true
		}
	}
	return nil, "", false
}

// stringField reads a text field. Numbers are accepted and kept as their
// literal text.
func stringField(obj object, keys ...string) (*string, error) {
	v, key, ok := first(obj, keys...)
	if !ok {
		return nil, nil
	}

	switch t := v.(type) {
	case string:
		return &t, nil
	case json.Number:
		s := t.String()
		return &s, nil
	default:
		return nil, fmt.Errorf("%w: %q is %T", ErrFieldType, key, v)
	}
}

// idField reads an identifier that may be text, a number, or an object
// carrying "id".
func idField(obj object, keys ...string) (*string, error) {
	v, key, ok := first(obj, keys...)
	if !ok {
		return nil, nil
	}

	id, ok := idValue(v)
	if !ok {
		return nil, fmt.Errorf("%w: %q is %T", ErrFieldType, key, v)
	}
	return &id, nil
}

func idValue(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case object:
		for _, k := range []string{"id", "userId", "user_id"} {
			if inner, ok := t[k]; ok && inner != nil {
				return idValue(inner)
			}
		}
	}
	return "", false
}

func intField(obj object, keys ...string) (*int, error) {
	v, key, ok := first(obj, keys...)
	if !ok {
		return nil, nil
	}

	var raw string
	switch t := v.(type) {
	case json.Number:
		raw = t.String()
	case string:
		raw = strings.TrimSpace(t)
	default:
		return nil, fmt.Errorf("%w: %q is %T", ErrFieldType, key, v)
	}

	if n, err := strconv.Atoi(raw); err == nil {
		return &n, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", ErrFieldType, key)
	}
	n := int(f)
	return &n, nil
}

func boolField(obj object, keys ...string) (*bool, error) {
	v, key, ok := first(obj, keys...)
	if !ok {
		return nil, nil
	}

	switch t := v.(type) {
	case bool:
		return &t, nil
	case string:
		b, err := strconv.ParseBool(t)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a boolean", ErrFieldType, key)
		}
		return &b, nil
	default:
		return nil, fmt.Errorf("%w: %q is %T", ErrFieldType, key, v)
	}
}

// stringsField reads an array of text values.
func stringsField(obj object, keys ...string) ([]string, error) {
	v, key, ok := first(obj, keys...)
	if !ok {
		return nil, nil
	}

	arr, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q is %T", ErrFieldType, key, v)
	}

	out := make([]string, 0, len(arr))
	for _, item := range arr {
		switch t := item.(type) {
		case string:
			out = append(out, t)
		case json.Number:
			out = append(out, t.String())
		}
	}
	return out, nil
}

// idsField reads an array of user references, which the server sends as
// ids or as objects carrying an id.
func idsField(obj object, keys ...string) ([]string, error) {
	v, key, ok := first(obj, keys...)
	if !ok {
		return nil, nil
	}

	arr, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q is %T", ErrFieldType, key, v)
	}

	out := make([]string, 0, len(arr))
	for _, item := range arr {
		if id, ok := idValue(item); ok && id != "" {
			out = append(out, id)
		}
	}
	return out, nil
}

// timeField reads a timestamp sent as formatted text or epoch milliseconds.
func timeField(obj object, keys ...string) (*time.Time, error) {
	v, key, ok := first(obj, keys...)
	if !ok {
		return nil, nil
	}

	switch t := v.(type) {
	case json.Number:
		ms, err := t.Int64()
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not epoch millis", ErrFieldType, key)
		}
		ts := time.UnixMilli(ms).UTC()
		return &ts, nil
	case string:
		ts, err := parseTime(t)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrFieldType, key, err)
		}
		return &ts, nil
	default:
		return nil, fmt.Errorf("%w: %q is %T", ErrFieldType, key, v)
	}
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.UTC(), nil
		}
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(ms).UTC(), nil
	}
	return time.Time{}, fmt.Errorf("unknown time format %q", s)
}

// nestedObject returns obj[key] when it is an object.
func nestedObject(obj object, key string) object {
	if nested, ok := obj[key].(object); ok {
		return nested
	}
	return nil
}

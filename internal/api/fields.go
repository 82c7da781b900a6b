package api

import (
	"encoding/json"
	"strconv"
)

// Fields is a decoded JSON request body. Every endpoint carries its
// parameters in the body, identifiers included.
type Fields map[string]any

func decodeFields(body []byte) (Fields, error) {
	if len(body) == 0 {
		return Fields{}, nil
	}
	var f Fields
	if err := json.Unmarshal(body, &f); err != nil {
		return nil, err
	}
	if f == nil {
		f = Fields{}
	}
	return f, nil
}

// Str returns the field as a string. JSON numbers render in their canonical
// form so numeric identifiers can be spliced into URL paths.
func (f Fields) Str(key string) string {
	switch v := f[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// Int64 returns the field as an int64, 0 when absent or non-numeric.
func (f Fields) Int64(key string) int64 {
	switch v := f[key].(type) {
	case float64:
		return int64(v)
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	default:
		return 0
	}
}

// Bool returns the field as a bool.
func (f Fields) Bool(key string) bool {
	v, _ := f[key].(bool)
	return v
}

// Any returns the raw field value.
func (f Fields) Any(key string) any {
	return f[key]
}

// Map returns the field as an object, nil when absent or not an object.
func (f Fields) Map(key string) map[string]any {
	v, _ := f[key].(map[string]any)
	return v
}

// Maps returns the field as a slice of objects, skipping non-object elements.
func (f Fields) Maps(key string) []map[string]any {
	raw, _ := f[key].([]any)
	if raw == nil {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, el := range raw {
		if m, ok := el.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// Rest returns a copy of the body with the listed routing keys removed,
// for categories whose fields pass through to MISP verbatim.
func (f Fields) Rest(exclude ...string) map[string]any {
	out := make(map[string]any, len(f))
	for k, v := range f {
		out[k] = v
	}
	for _, k := range exclude {
		delete(out, k)
	}
	return out
}

// Empty reports whether the field is absent or falsy: nil, "", 0, false, or
// an empty object/array.
func (f Fields) Empty(key string) bool {
	switch v := f[key].(type) {
	case nil:
		return true
	case string:
		return v == ""
	case float64:
		return v == 0
	case bool:
		return !v
	case map[string]any:
		return len(v) == 0
	case []any:
		return len(v) == 0
	default:
		return false
	}
}

// AllEmpty reports whether every listed field is absent or falsy.
func (f Fields) AllEmpty(keys ...string) bool {
	for _, key := range keys {
		if !f.Empty(key) {
			return false
		}
	}
	return true
}

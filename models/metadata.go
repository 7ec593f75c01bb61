package models

import "maps"

// Metadata is an opaque JSON object attached to endpoints, profiles and the
// configuration as a whole.
//
// Values are the generic encoding/json variants: string, float64, bool, nil,
// []any and map[string]any.
type Metadata map[string]any

// Clone returns a deep copy of m. A nil Metadata clones to an empty one.
func (m Metadata) Clone() Metadata {
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = cloneJSONValue(v)
	}
	return out
}

// Merge returns a new Metadata holding the keys of m overlaid with the keys of
// overlay. The merge is shallow: a top-level key present in overlay replaces
// the whole value stored under that key in m. Neither input is modified.
func (m Metadata) Merge(overlay Metadata) Metadata {
	out := m.Clone()
	maps.Copy(out, overlay.Clone())
	return out
}

// Get returns the raw value stored under key.
func (m Metadata) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m[key]
	return v, ok
}

func cloneJSONValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(value))
		for k, item := range value {
			out[k] = cloneJSONValue(item)
		}
		return out
	case Metadata:
		return value.Clone()
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = cloneJSONValue(item)
		}
		return out
	default:
		return value
	}
}

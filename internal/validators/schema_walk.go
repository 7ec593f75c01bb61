package validators

import (
	"fmt"

	"github.com/MKhiriev/go-mesc/models"
)

// walker checks JSON types while building typed values. It never stops at
// the first problem.
type walker struct {
	violations []Violation
	paths      map[string]struct{}
}

func (w *walker) add(path, message string) {
	if w.paths == nil {
		w.paths = make(map[string]struct{})
	}
	w.paths[path] = struct{}{}
	w.violations = append(w.violations, Violation{Path: path, Message: message})
}

func (w *walker) reported(path string) bool {
	_, ok := w.paths[path]
	return ok
}

func (w *walker) err() error {
	if len(w.violations) == 0 {
		return nil
	}
	sortViolations(w.violations)
	return &SchemaValidationError{Violations: w.violations}
}

func (w *walker) requiredString(object map[string]any, key, prefix string) string {
	path := joinPath(prefix, key)
	raw, ok := object[key]
	if !ok {
		w.add(path, "is required")
		return ""
	}

	s, ok := raw.(string)
	if !ok {
		w.add(path, typeMessage("a string", raw))
		return ""
	}
	return s
}

func (w *walker) optionalString(object map[string]any, key, prefix string) *string {
	raw, ok := object[key]
	if !ok || raw == nil {
		return nil
	}

	s, ok := raw.(string)
	if !ok {
		w.add(joinPath(prefix, key), typeMessage("a string or null", raw))
		return nil
	}
	return &s
}

func (w *walker) optionalBool(object map[string]any, key, prefix string) *bool {
	raw, ok := object[key]
	if !ok || raw == nil {
		return nil
	}

	b, ok := raw.(bool)
	if !ok {
		w.add(joinPath(prefix, key), typeMessage("a boolean", raw))
		return nil
	}
	return &b
}

// object returns the JSON object stored under key. Absent or null values
// yield nil and are reported only when required is set.
func (w *walker) object(parent map[string]any, key, prefix string, required bool) map[string]any {
	path := joinPath(prefix, key)
	raw, ok := parent[key]
	if !ok || raw == nil {
		if required {
			w.add(path, "is required")
		}
		return nil
	}

	object, ok := raw.(map[string]any)
	if !ok {
		w.add(path, typeMessage("an object", raw))
		return nil
	}
	return object
}

func (w *walker) metadata(parent map[string]any, key, prefix string, required bool) models.Metadata {
	object := w.object(parent, key, prefix, required)
	return models.Metadata(object).Clone()
}

func (w *walker) stringMap(parent map[string]any, key, prefix string, required bool) map[string]string {
	path := joinPath(prefix, key)
	object := w.object(parent, key, prefix, required)

	out := make(map[string]string, len(object))
	for k, raw := range object {
		s, ok := raw.(string)
		if !ok {
			w.add(joinPath(path, k), typeMessage("a string", raw))
			continue
		}
		out[k] = s
	}
	return out
}

func (w *walker) networkDefaults(parent map[string]any, key, prefix string, required bool) map[models.ChainID]string {
	pairs := w.stringMap(parent, key, prefix, required)

	out := make(map[models.ChainID]string, len(pairs))
	for chainID, endpoint := range pairs {
		out[models.ChainID(chainID)] = endpoint
	}
	return out
}

func (w *walker) networkNames(root map[string]any) map[string]models.ChainID {
	pairs := w.stringMap(root, KeyNetworkNames, "", true)

	out := make(map[string]models.ChainID, len(pairs))
	for name, chainID := range pairs {
		out[name] = models.ChainID(chainID)
	}
	return out
}

func (w *walker) endpoints(root map[string]any) map[string]models.Endpoint {
	object := w.object(root, KeyEndpoints, "", true)

	out := make(map[string]models.Endpoint, len(object))
	for key, raw := range object {
		path := joinPath(KeyEndpoints, key)

		fields, ok := raw.(map[string]any)
		if !ok {
			w.add(path, typeMessage("an object", raw))
			continue
		}

		endpoint := models.Endpoint{
			Name:             key,
			URL:              w.requiredString(fields, "url", path),
			EndpointMetadata: w.metadata(fields, "endpoint_metadata", path, false),
		}
		if name := w.optionalString(fields, "name", path); name != nil {
			endpoint.Name = *name
		}
		if chainID := w.optionalString(fields, "chain_id", path); chainID != nil {
			c := models.ChainID(*chainID)
			endpoint.ChainID = &c
		}

		out[key] = endpoint
	}
	return out
}

func (w *walker) profiles(root map[string]any) map[string]models.Profile {
	object := w.object(root, KeyProfiles, "", true)

	out := make(map[string]models.Profile, len(object))
	for key, raw := range object {
		path := joinPath(KeyProfiles, key)

		fields, ok := raw.(map[string]any)
		if !ok {
			w.add(path, typeMessage("an object", raw))
			continue
		}

		profile := models.Profile{
			Name:            key,
			DefaultEndpoint: w.optionalString(fields, "default_endpoint", path),
			NetworkDefaults: w.networkDefaults(fields, "network_defaults", path, false),
			ProfileMetadata: w.metadata(fields, "profile_metadata", path, false),
			UseMESC:         w.optionalBool(fields, "use_mesc", path),
		}
		if name := w.optionalString(fields, "name", path); name != nil {
			profile.Name = *name
		}

		out[key] = profile
	}
	return out
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func typeMessage(want string, got any) string {
	return fmt.Sprintf("must be %s, got %s", want, jsonTypeName(got))
}

func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

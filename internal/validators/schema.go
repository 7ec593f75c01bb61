// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-mesc/models"
)

// Top-level configuration keys.
const (
	KeyMESCVersion     = "mesc_version"
	KeyDefaultEndpoint = "default_endpoint"
	KeyEndpoints       = "endpoints"
	KeyNetworkDefaults = "network_defaults"
	KeyNetworkNames    = "network_names"
	KeyProfiles        = "profiles"
	KeyGlobalMetadata  = "global_metadata"
)

// SchemaValidator converts generic JSON documents into typed configuration
// values. It is safe for concurrent use.
type SchemaValidator struct {
	validate *validator.Validate
}

// NewSchemaValidator returns a SchemaValidator with the chainid rule
// registered and JSON field names used in violation paths.
func NewSchemaValidator() *SchemaValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// registration only fails for an empty tag or a nil func
	_ = v.RegisterValidation("chainid", isChainID)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &SchemaValidator{validate: v}
}

// ValidateConfig checks raw, the output of parser.ParseJSON, against the
// MESC 1.0 schema and returns the typed configuration.
//
// All violations are reported at once in a *SchemaValidationError. Unknown
// keys are ignored.
func (s *SchemaValidator) ValidateConfig(raw any) (*models.RPCConfig, error) {
	w := &walker{}

	root, ok := raw.(map[string]any)
	if !ok {
		w.add("", "configuration must be a JSON object")
		return nil, w.err()
	}

	cfg := &models.RPCConfig{
		MESCVersion:     w.requiredString(root, KeyMESCVersion, ""),
		DefaultEndpoint: w.optionalString(root, KeyDefaultEndpoint, ""),
		Endpoints:       w.endpoints(root),
		NetworkDefaults: w.networkDefaults(root, KeyNetworkDefaults, "", true),
		NetworkNames:    w.networkNames(root),
		Profiles:        w.profiles(root),
		GlobalMetadata:  w.metadata(root, KeyGlobalMetadata, "", true),
	}

	s.checkStruct(w, cfg)

	if err := w.err(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ValidateGlobalMetadata checks that raw is a JSON object.
func (s *SchemaValidator) ValidateGlobalMetadata(raw any) (models.Metadata, error) {
	w := &walker{}

	object, ok := raw.(map[string]any)
	if !ok {
		w.add(KeyGlobalMetadata, "must be a JSON object")
		return nil, w.err()
	}

	return models.Metadata(object).Clone(), nil
}

// ValidateEndpointMetadata checks that raw is a JSON object whose values are
// JSON objects, keyed by endpoint name.
func (s *SchemaValidator) ValidateEndpointMetadata(raw any) (map[string]models.Metadata, error) {
	w := &walker{}

	object, ok := raw.(map[string]any)
	if !ok {
		w.add("endpoint_metadata", "must be a JSON object")
		return nil, w.err()
	}

	out := make(map[string]models.Metadata, len(object))
	for name, value := range object {
		metadata, ok := value.(map[string]any)
		if !ok {
			w.add(joinPath("endpoint_metadata", name), "must be a JSON object")
			continue
		}
		out[name] = models.Metadata(metadata).Clone()
	}

	if err := w.err(); err != nil {
		return nil, err
	}
	return out, nil
}

// checkStruct runs the struct tag rules and records violations at paths the
// type walk has not already reported.
func (s *SchemaValidator) checkStruct(w *walker, cfg *models.RPCConfig) {
	err := s.validate.Struct(cfg)
	if err == nil {
		return
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		w.add("", err.Error())
		return
	}

	for _, fe := range validationErrors {
		path := namespaceToPath(fe.Namespace())
		if w.reported(path) {
			continue
		}
		w.add(path, formatFieldError(fe))
	}
}

func isChainID(fl validator.FieldLevel) bool {
	return models.ChainID(fl.Field().String()).Valid()
}

// namespaceToPath turns "RPCConfig.endpoints[mainnet].url" into
// "endpoints.mainnet.url".
func namespaceToPath(namespace string) string {
	if _, rest, found := strings.Cut(namespace, "."); found {
		namespace = rest
	}
	namespace = strings.ReplaceAll(namespace, "[", ".")
	return strings.ReplaceAll(namespace, "]", "")
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "eq":
		return "must be " + `"` + fe.Param() + `"`
	case "chainid":
		return "must be a decimal or 0x-prefixed hex chain id"
	default:
		return "failed " + fe.Tag() + " rule"
	}
}

func sortViolations(violations []Violation) {
	sort.SliceStable(violations, func(i, j int) bool {
		return violations[i].Path < violations[j].Path
	})
}

package validators

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-mesc/models"
)

// Field name constants select the checks run by [IntegrityValidator].
const (
	// FieldDefaultEndpoint checks that the global default endpoint exists.
	FieldDefaultEndpoint = "default_endpoint"

	// FieldNetworkDefaults checks that every global network default exists.
	FieldNetworkDefaults = "network_defaults"

	// FieldNetworkDefaultChains checks that network defaults point to
	// endpoints serving the same chain.
	FieldNetworkDefaultChains = "network_default_chains"

	// FieldEndpointNames checks that endpoint map keys equal endpoint names.
	FieldEndpointNames = "endpoint_names"

	// FieldEndpointURLs checks that no two endpoints share a URL.
	FieldEndpointURLs = "endpoint_urls"

	// FieldProfiles runs the reference checks for every profile.
	FieldProfiles = "profiles"
)

var defaultIntegrityFields = []string{
	FieldDefaultEndpoint,
	FieldNetworkDefaults,
	FieldNetworkDefaultChains,
	FieldEndpointNames,
	FieldEndpointURLs,
	FieldProfiles,
}

// IntegrityValidator reports referential problems of a typed configuration.
// Resolution never runs it: dangling references are legal until queried.
type IntegrityValidator struct {
}

// NewIntegrityValidator constructs a new IntegrityValidator and returns it
// as the Validator interface.
func NewIntegrityValidator() Validator {
	return &IntegrityValidator{}
}

// Validate accepts models.RPCConfig or *models.RPCConfig. With no fields all
// checks run. Every issue found is returned in one *IntegrityError.
func (v *IntegrityValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RPCConfig:
		return v.validateConfig(ctx, &value, fields...)
	case *models.RPCConfig:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateConfig(ctx, value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *IntegrityValidator) validateConfig(_ context.Context, cfg *models.RPCConfig, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultIntegrityFields
	}

	var issues []Violation
	for _, f := range fields {
		switch f {
		case FieldDefaultEndpoint:
			issues = append(issues, danglingDefault(cfg, KeyDefaultEndpoint, cfg.DefaultEndpoint)...)
		case FieldNetworkDefaults:
			issues = append(issues, danglingNetworkDefaults(cfg, KeyNetworkDefaults, cfg.NetworkDefaults)...)
		case FieldNetworkDefaultChains:
			issues = append(issues, chainMismatches(cfg, KeyNetworkDefaults, cfg.NetworkDefaults)...)
		case FieldEndpointNames:
			issues = append(issues, endpointNameMismatches(cfg)...)
		case FieldEndpointURLs:
			issues = append(issues, duplicateURLs(cfg)...)
		case FieldProfiles:
			issues = append(issues, profileIssues(cfg)...)
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, f)
		}
	}

	if len(issues) == 0 {
		return nil
	}
	sortViolations(issues)
	return &IntegrityError{Issues: issues}
}

func danglingDefault(cfg *models.RPCConfig, path string, name *string) []Violation {
	if name == nil {
		return nil
	}
	if _, ok := cfg.Endpoints[*name]; ok {
		return nil
	}
	return []Violation{{Path: path, Message: fmt.Sprintf("references unknown endpoint %q", *name)}}
}

func danglingNetworkDefaults(cfg *models.RPCConfig, prefix string, defaults map[models.ChainID]string) []Violation {
	var issues []Violation
	for chainID, name := range defaults {
		if _, ok := cfg.Endpoints[name]; ok {
			continue
		}
		issues = append(issues, Violation{
			Path:    joinPath(prefix, chainID.String()),
			Message: fmt.Sprintf("references unknown endpoint %q", name),
		})
	}
	return issues
}

func chainMismatches(cfg *models.RPCConfig, prefix string, defaults map[models.ChainID]string) []Violation {
	var issues []Violation
	for chainID, name := range defaults {
		endpoint, ok := cfg.Endpoints[name]
		if !ok || endpoint.ChainID == nil {
			continue
		}
		if chainID.Equivalent(*endpoint.ChainID) {
			continue
		}
		issues = append(issues, Violation{
			Path: joinPath(prefix, chainID.String()),
			Message: fmt.Sprintf("endpoint %q serves chain %s, not %s",
				name, endpoint.ChainID.String(), chainID.String()),
		})
	}
	return issues
}

func endpointNameMismatches(cfg *models.RPCConfig) []Violation {
	var issues []Violation
	for key, endpoint := range cfg.Endpoints {
		if key == endpoint.Name {
			continue
		}
		issues = append(issues, Violation{
			Path:    joinPath(joinPath(KeyEndpoints, key), "name"),
			Message: fmt.Sprintf("name %q does not match key %q", endpoint.Name, key),
		})
	}
	return issues
}

func duplicateURLs(cfg *models.RPCConfig) []Violation {
	byURL := make(map[string][]string)
	for name, endpoint := range cfg.Endpoints {
		byURL[endpoint.URL] = append(byURL[endpoint.URL], name)
	}

	var issues []Violation
	for _, names := range byURL {
		if len(names) < 2 {
			continue
		}
		slices.Sort(names)
		for _, name := range names[1:] {
			issues = append(issues, Violation{
				Path:    joinPath(joinPath(KeyEndpoints, name), "url"),
				Message: fmt.Sprintf("duplicates url of endpoint %q", names[0]),
			})
		}
	}
	return issues
}

func profileIssues(cfg *models.RPCConfig) []Violation {
	var issues []Violation
	for key, profile := range cfg.Profiles {
		path := joinPath(KeyProfiles, key)

		if profile.Name != key {
			issues = append(issues, Violation{
				Path:    joinPath(path, "name"),
				Message: fmt.Sprintf("name %q does not match key %q", profile.Name, key),
			})
		}

		issues = append(issues, danglingDefault(cfg, joinPath(path, KeyDefaultEndpoint), profile.DefaultEndpoint)...)
		issues = append(issues, danglingNetworkDefaults(cfg, joinPath(path, KeyNetworkDefaults), profile.NetworkDefaults)...)
		issues = append(issues, chainMismatches(cfg, joinPath(path, KeyNetworkDefaults), profile.NetworkDefaults)...)
	}
	return issues
}

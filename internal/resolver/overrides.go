package resolver

import (
	"fmt"
	"maps"
	"strings"

	"github.com/MKhiriev/go-mesc/internal/config"
	"github.com/MKhiriev/go-mesc/internal/logger"
	"github.com/MKhiriev/go-mesc/internal/parser"
	"github.com/MKhiriev/go-mesc/internal/validators"
	"github.com/MKhiriev/go-mesc/models"
)

// Override variable names in application order.
const (
	VarDefaultEndpoint  = "MESC_DEFAULT_ENDPOINT"
	VarNetworkDefaults  = "MESC_NETWORK_DEFAULTS"
	VarNetworkNames     = "MESC_NETWORK_NAMES"
	VarEndpoints        = "MESC_ENDPOINTS"
	VarProfiles         = "MESC_PROFILES"
	VarGlobalMetadata   = "MESC_GLOBAL_METADATA"
	VarEndpointMetadata = "MESC_ENDPOINT_METADATA"
)

// Policy decides how MESC_NETWORK_DEFAULTS meets the base mapping.
type Policy string

const (
	// PolicyReplace swaps the whole network_defaults mapping.
	PolicyReplace Policy = config.PolicyReplace
	// PolicyMerge keeps base entries and lets override entries win.
	PolicyMerge Policy = config.PolicyMerge
)

// ParsePolicy validates a policy name. Empty means PolicyReplace.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case "":
		return PolicyReplace, nil
	case PolicyReplace, PolicyMerge:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
	}
}

// Options tunes ApplyOverrides. The zero value is usable.
type Options struct {
	NetworkDefaultsPolicy Policy
	Schema                *validators.SchemaValidator
	Logger                *logger.Logger
}

// ApplyOverrides returns a copy of base with every present override applied
// in order:
//
//  1. MESC_DEFAULT_ENDPOINT replaces default_endpoint
//  2. MESC_NETWORK_DEFAULTS replaces or merges network_defaults
//  3. MESC_NETWORK_NAMES replaces network_names
//  4. MESC_ENDPOINTS replaces endpoints
//  5. MESC_PROFILES replaces profiles
//  6. MESC_GLOBAL_METADATA is shallow-merged into global_metadata
//  7. MESC_ENDPOINT_METADATA is shallow-merged into the metadata of the
//     endpoints it names; names missing from endpoints are skipped
//
// Later steps see the result of earlier ones. base is never modified and a
// nil base yields nil.
func ApplyOverrides(base *models.RPCConfig, o config.Overrides, opts Options) (*models.RPCConfig, error) {
	if base == nil {
		return nil, nil
	}

	policy, err := ParsePolicy(string(opts.NetworkDefaultsPolicy))
	if err != nil {
		return nil, err
	}
	log := logger.OrNop(opts.Logger)
	schema := opts.Schema
	if schema == nil {
		schema = validators.NewSchemaValidator()
	}

	cfg := base.Clone()

	if present(o.DefaultEndpoint) {
		name := strings.TrimSpace(o.DefaultEndpoint)
		cfg.DefaultEndpoint = &name
		log.Debug().Str("var", VarDefaultEndpoint).Str("default_endpoint", name).Msg("override applied")
	}

	if present(o.NetworkDefaults) {
		defaults, err := parser.ParseNetworkDefaults(o.NetworkDefaults)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", VarNetworkDefaults, err)
		}
		if policy == PolicyMerge {
			maps.Copy(cfg.NetworkDefaults, defaults)
		} else {
			cfg.NetworkDefaults = defaults
		}
		log.Debug().Str("var", VarNetworkDefaults).Str("policy", string(policy)).Int("entries", len(defaults)).Msg("override applied")
	}

	if present(o.NetworkNames) {
		names, err := parser.ParseNetworkNames(o.NetworkNames)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", VarNetworkNames, err)
		}
		cfg.NetworkNames = names
		log.Debug().Str("var", VarNetworkNames).Int("entries", len(names)).Msg("override applied")
	}

	if present(o.Endpoints) {
		endpoints, err := parser.ParseEndpoints(o.Endpoints)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", VarEndpoints, err)
		}
		cfg.Endpoints = endpoints
		log.Debug().Str("var", VarEndpoints).Int("entries", len(endpoints)).Msg("override applied")
	}

	if present(o.Profiles) {
		profiles, err := parser.ParseProfiles(o.Profiles)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", VarProfiles, err)
		}
		cfg.Profiles = profiles
		log.Debug().Str("var", VarProfiles).Int("entries", len(profiles)).Msg("override applied")
	}

	if present(o.GlobalMetadata) {
		doc, err := parser.ParseJSON(o.GlobalMetadata)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", VarGlobalMetadata, err)
		}
		metadata, err := schema.ValidateGlobalMetadata(doc)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", VarGlobalMetadata, err)
		}
		cfg.GlobalMetadata = cfg.GlobalMetadata.Merge(metadata)
		log.Debug().Str("var", VarGlobalMetadata).Int("keys", len(metadata)).Msg("override applied")
	}

	if present(o.EndpointMetadata) {
		doc, err := parser.ParseJSON(o.EndpointMetadata)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", VarEndpointMetadata, err)
		}
		perEndpoint, err := schema.ValidateEndpointMetadata(doc)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", VarEndpointMetadata, err)
		}
		for name, metadata := range perEndpoint {
			endpoint, ok := cfg.Endpoints[name]
			if !ok {
				log.Debug().Str("var", VarEndpointMetadata).Str("endpoint", name).Msg("skipping metadata for unknown endpoint")
				continue
			}
			endpoint.EndpointMetadata = endpoint.EndpointMetadata.Merge(metadata)
			cfg.Endpoints[name] = endpoint
		}
		log.Debug().Str("var", VarEndpointMetadata).Int("entries", len(perEndpoint)).Msg("override applied")
	}

	return cfg, nil
}

// ActiveOverrides lists the names of the override variables that are set,
// in application order.
func ActiveOverrides(o config.Overrides) []string {
	vars := []struct {
		name  string
		value string
	}{
		{VarDefaultEndpoint, o.DefaultEndpoint},
		{VarNetworkDefaults, o.NetworkDefaults},
		{VarNetworkNames, o.NetworkNames},
		{VarEndpoints, o.Endpoints},
		{VarProfiles, o.Profiles},
		{VarGlobalMetadata, o.GlobalMetadata},
		{VarEndpointMetadata, o.EndpointMetadata},
	}

	active := make([]string, 0, len(vars))
	for _, v := range vars {
		if present(v.value) {
			active = append(active, v.name)
		}
	}
	return active
}

// present reports whether an override carries a value. Blank counts as
// absent.
func present(s string) bool {
	return strings.TrimSpace(s) != ""
}

package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-mesc/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func validDocument() map[string]any {
	return map[string]any{
		"mesc_version":     "MESC 1.0",
		"default_endpoint": "local",
		"endpoints": map[string]any{
			"local": map[string]any{
				"url":      "http://localhost:8545",
				"chain_id": "1",
				"endpoint_metadata": map[string]any{
					"rate_limit_rps": float64(10),
				},
			},
			"llamanodes_goerli": map[string]any{
				"name":     "llamanodes_goerli",
				"url":      "https://eth.llamarpc.com/goerli",
				"chain_id": "5",
				"extra":    "ignored",
			},
		},
		"network_defaults": map[string]any{"1": "local", "5": "llamanodes_goerli"},
		"network_names":    map[string]any{"dev": "31337"},
		"profiles": map[string]any{
			"xyz": map[string]any{
				"name":             "xyz",
				"default_endpoint": nil,
				"network_defaults": map[string]any{"1": "local"},
				"profile_metadata": map[string]any{},
				"use_mesc":         true,
			},
		},
		"global_metadata": map[string]any{"api_keys": map[string]any{}},
	}
}

func violationPaths(t *testing.T, err error) []string {
	t.Helper()

	var schemaErr *SchemaValidationError
	require.ErrorAs(t, err, &schemaErr)

	paths := make([]string, len(schemaErr.Violations))
	for i, v := range schemaErr.Violations {
		paths[i] = v.Path
	}
	return paths
}

func strPtr(s string) *string { return &s }

// ── ValidateConfig ────────────────────────────────────────────────────────────

// TestValidateConfig_Valid verifies typed output for a well-formed document.
func TestValidateConfig_Valid(t *testing.T) {
	cfg, err := NewSchemaValidator().ValidateConfig(validDocument())
	require.NoError(t, err)

	assert.Equal(t, models.MESCVersion, cfg.MESCVersion)
	assert.Equal(t, strPtr("local"), cfg.DefaultEndpoint)
	require.Len(t, cfg.Endpoints, 2)

	local := cfg.Endpoints["local"]
	assert.Equal(t, "local", local.Name, "name defaults to the map key")
	assert.Equal(t, models.ChainID("1"), *local.ChainID)
	assert.Equal(t, models.Metadata{"rate_limit_rps": float64(10)}, local.EndpointMetadata)
	assert.NotNil(t, cfg.Endpoints["llamanodes_goerli"].EndpointMetadata)

	assert.Equal(t, map[models.ChainID]string{"1": "local", "5": "llamanodes_goerli"}, cfg.NetworkDefaults)
	assert.Equal(t, map[string]models.ChainID{"dev": "31337"}, cfg.NetworkNames)

	xyz := cfg.Profiles["xyz"]
	assert.Nil(t, xyz.DefaultEndpoint)
	assert.True(t, xyz.Enabled())
	assert.Equal(t, map[models.ChainID]string{"1": "local"}, xyz.NetworkDefaults)
}

// TestValidateConfig_NullDefaultEndpoint verifies that default_endpoint may
// be null or absent.
func TestValidateConfig_NullDefaultEndpoint(t *testing.T) {
	doc := validDocument()
	doc["default_endpoint"] = nil
	cfg, err := NewSchemaValidator().ValidateConfig(doc)
	require.NoError(t, err)
	assert.Nil(t, cfg.DefaultEndpoint)

	delete(doc, "default_endpoint")
	_, err = NewSchemaValidator().ValidateConfig(doc)
	require.NoError(t, err)
}

// TestValidateConfig_NotObject verifies the root type check.
func TestValidateConfig_NotObject(t *testing.T) {
	cfg, err := NewSchemaValidator().ValidateConfig([]any{})
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrSchemaValidation)
}

// TestValidateConfig_MissingFields verifies that every missing required
// top-level field is reported.
func TestValidateConfig_MissingFields(t *testing.T) {
	cfg, err := NewSchemaValidator().ValidateConfig(map[string]any{})
	assert.Nil(t, cfg)

	assert.Equal(t, []string{
		"endpoints",
		"global_metadata",
		"mesc_version",
		"network_defaults",
		"network_names",
		"profiles",
	}, violationPaths(t, err))
}

// TestValidateConfig_CollectsAllViolations verifies that type and value
// problems across the document are reported together.
func TestValidateConfig_CollectsAllViolations(t *testing.T) {
	doc := validDocument()
	doc["mesc_version"] = "MESC 2.0"
	doc["default_endpoint"] = float64(1)
	doc["endpoints"].(map[string]any)["local"].(map[string]any)["chain_id"] = "mainnet"
	doc["endpoints"].(map[string]any)["broken"] = map[string]any{"chain_id": float64(1)}
	doc["network_defaults"] = map[string]any{"one": "local"}
	doc["network_names"] = map[string]any{"dev": "x"}
	doc["profiles"].(map[string]any)["xyz"].(map[string]any)["use_mesc"] = "yes"

	_, err := NewSchemaValidator().ValidateConfig(doc)
	require.ErrorIs(t, err, ErrSchemaValidation)

	assert.ElementsMatch(t, []string{
		"default_endpoint",
		"endpoints.broken.chain_id",
		"endpoints.broken.url",
		"endpoints.local.chain_id",
		"mesc_version",
		"network_defaults.one",
		"network_names.dev",
		"profiles.xyz.use_mesc",
	}, violationPaths(t, err))
}

// TestValidateConfig_NoDuplicateViolations verifies that a path reported by
// the type walk is not reported again by the struct rules.
func TestValidateConfig_NoDuplicateViolations(t *testing.T) {
	doc := validDocument()
	doc["endpoints"].(map[string]any)["local"].(map[string]any)["url"] = float64(3)

	_, err := NewSchemaValidator().ValidateConfig(doc)
	assert.Equal(t, []string{"endpoints.local.url"}, violationPaths(t, err))
}

// TestValidateConfig_ErrorMessage verifies the aggregated message format.
func TestValidateConfig_ErrorMessage(t *testing.T) {
	doc := validDocument()
	doc["mesc_version"] = "MESC 2.0"

	_, err := NewSchemaValidator().ValidateConfig(doc)
	require.Error(t, err)
	assert.Equal(t, `schema validation failed: mesc_version: must be "MESC 1.0"`, err.Error())
}

// ── metadata shape checks ─────────────────────────────────────────────────────

// TestValidateGlobalMetadata verifies the object requirement.
func TestValidateGlobalMetadata(t *testing.T) {
	v := NewSchemaValidator()

	m, err := v.ValidateGlobalMetadata(map[string]any{"a": "b"})
	require.NoError(t, err)
	assert.Equal(t, models.Metadata{"a": "b"}, m)

	_, err = v.ValidateGlobalMetadata([]any{"a"})
	assert.ErrorIs(t, err, ErrSchemaValidation)
}

// TestValidateEndpointMetadata verifies the object of objects requirement.
func TestValidateEndpointMetadata(t *testing.T) {
	v := NewSchemaValidator()

	m, err := v.ValidateEndpointMetadata(map[string]any{"local": map[string]any{"a": "b"}})
	require.NoError(t, err)
	assert.Equal(t, map[string]models.Metadata{"local": {"a": "b"}}, m)

	_, err = v.ValidateEndpointMetadata(map[string]any{"local": "b", "other": float64(1)})
	assert.Equal(t, []string{"endpoint_metadata.local", "endpoint_metadata.other"}, violationPaths(t, err))

	_, err = v.ValidateEndpointMetadata("x")
	assert.ErrorIs(t, err, ErrSchemaValidation)
}

// ── helpers under test ────────────────────────────────────────────────────────

// TestNamespaceToPath verifies validator namespace conversion.
func TestNamespaceToPath(t *testing.T) {
	assert.Equal(t, "endpoints.mainnet.url", namespaceToPath("RPCConfig.endpoints[mainnet].url"))
	assert.Equal(t, "network_defaults.x", namespaceToPath("RPCConfig.network_defaults[x]"))
	assert.Equal(t, "mesc_version", namespaceToPath("RPCConfig.mesc_version"))
}

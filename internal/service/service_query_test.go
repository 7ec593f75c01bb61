package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-mesc/internal/logger"
	"github.com/MKhiriev/go-mesc/internal/store"
	"github.com/MKhiriev/go-mesc/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func strPtr(s string) *string { return &s }

func chainPtr(c models.ChainID) *models.ChainID { return &c }

func testConfig() *models.RPCConfig {
	cfg := models.NewRPCConfig()
	cfg.DefaultEndpoint = strPtr("local")
	cfg.Endpoints = map[string]models.Endpoint{
		"local": {
			Name:             "local",
			URL:              "http://127.0.0.1:8545",
			ChainID:          chainPtr("31337"),
			EndpointMetadata: models.Metadata{"labels": []any{"dev"}},
		},
		"mainnet": {
			Name:             "mainnet",
			URL:              "https://rpc.example",
			ChainID:          chainPtr("1"),
			EndpointMetadata: models.Metadata{"host": "example", "rate_limit_rps": float64(50)},
		},
		"goerli": {
			Name:             "goerli",
			URL:              "https://goerli.example",
			ChainID:          chainPtr("0x5"),
			EndpointMetadata: models.Metadata{},
		},
	}
	cfg.NetworkDefaults = map[models.ChainID]string{"1": "mainnet", "5": "goerli", "10": "optimism"}
	cfg.NetworkNames = map[string]models.ChainID{"dev": "31337", "op": "10"}
	cfg.Profiles = map[string]models.Profile{
		"foundry": {
			Name:            "foundry",
			NetworkDefaults: map[models.ChainID]string{"5": "local"},
			ProfileMetadata: models.Metadata{"owner": "foundry"},
		},
		"xyz": {
			Name:            "xyz",
			DefaultEndpoint: strPtr("mainnet"),
			NetworkDefaults: map[models.ChainID]string{},
		},
		"broken": {
			Name:            "broken",
			DefaultEndpoint: strPtr("ghost"),
			NetworkDefaults: map[models.ChainID]string{},
		},
		"off": {
			Name:            "off",
			DefaultEndpoint: strPtr("mainnet"),
			NetworkDefaults: map[models.ChainID]string{"1": "mainnet"},
			UseMESC:         new(bool),
		},
	}
	cfg.GlobalMetadata = models.Metadata{"owner": "ops", "team": "infra"}
	return cfg
}

func newTestService(cfg *models.RPCConfig) QueryService {
	return NewQueryService(store.New(cfg, store.Info{Mode: models.ModeEnv, Source: "MESC_ENV"}), logger.Nop())
}

func disabledService() QueryService {
	return NewQueryService(store.NewDisabled(store.Info{}), logger.Nop())
}

// ── disabled ──────────────────────────────────────────────────────────────────

// TestQueryService_Disabled verifies that every query reports the disabled
// condition.
func TestQueryService_Disabled(t *testing.T) {
	svc := disabledService()

	_, err := svc.GetDefaultEndpoint()
	assert.ErrorIs(t, err, ErrMescDisabled)
	_, err = svc.GetEndpointByName("local")
	assert.ErrorIs(t, err, ErrMescDisabled)
	_, err = svc.GetEndpointByNetwork("1")
	assert.ErrorIs(t, err, ErrMescDisabled)
	_, err = svc.GetEndpointByQuery("local")
	assert.ErrorIs(t, err, ErrMescDisabled)
	_, err = svc.FindEndpoints()
	assert.ErrorIs(t, err, ErrMescDisabled)
	_, err = svc.GetGlobalMetadata()
	assert.ErrorIs(t, err, ErrMescDisabled)
	_, err = svc.GetDefaults()
	assert.ErrorIs(t, err, ErrMescDisabled)
	_, err = svc.Snapshot()
	assert.ErrorIs(t, err, ErrMescDisabled)

	status := svc.Status()
	assert.False(t, status.Enabled)
	assert.Equal(t, models.ModeDisabled, status.Mode)
}

// ── GetDefaultEndpoint ────────────────────────────────────────────────────────

// TestGetDefaultEndpoint_Global verifies the global default.
func TestGetDefaultEndpoint_Global(t *testing.T) {
	endpoint, err := newTestService(testConfig()).GetDefaultEndpoint()
	require.NoError(t, err)
	require.NotNil(t, endpoint)
	assert.Equal(t, "local", endpoint.Name)
}

// TestGetDefaultEndpoint_None verifies that no configured default is not an
// error.
func TestGetDefaultEndpoint_None(t *testing.T) {
	cfg := testConfig()
	cfg.DefaultEndpoint = nil

	endpoint, err := newTestService(cfg).GetDefaultEndpoint()
	assert.NoError(t, err)
	assert.Nil(t, endpoint)
}

// TestGetDefaultEndpoint_ProfileScopeIsExclusive verifies that a profile
// without a default does not fall back to the global default.
func TestGetDefaultEndpoint_ProfileScopeIsExclusive(t *testing.T) {
	svc := newTestService(testConfig())

	endpoint, err := svc.GetDefaultEndpoint(WithProfile("foundry"))
	assert.NoError(t, err)
	assert.Nil(t, endpoint)

	endpoint, err = svc.GetDefaultEndpoint(WithProfile("unknown"))
	assert.NoError(t, err)
	assert.Nil(t, endpoint)

	endpoint, err = svc.GetDefaultEndpoint(WithProfile("xyz"))
	require.NoError(t, err)
	assert.Equal(t, "mainnet", endpoint.Name)
}

// TestGetDefaultEndpoint_Dangling verifies the missing endpoint error.
func TestGetDefaultEndpoint_Dangling(t *testing.T) {
	svc := newTestService(testConfig())

	_, err := svc.GetDefaultEndpoint(WithProfile("broken"))
	require.ErrorIs(t, err, ErrMissingEndpoint)

	var missing *MissingEndpointError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "ghost", missing.Name)
	assert.Equal(t, "profiles.broken.default_endpoint", missing.Reference)

	cfg := testConfig()
	cfg.DefaultEndpoint = strPtr("ghost")
	_, err = newTestService(cfg).GetDefaultEndpoint()
	assert.ErrorIs(t, err, ErrMissingEndpoint)
}

// TestGetDefaultEndpoint_DisabledProfile verifies use_mesc=false.
func TestGetDefaultEndpoint_DisabledProfile(t *testing.T) {
	endpoint, err := newTestService(testConfig()).GetDefaultEndpoint(WithProfile("off"))
	assert.NoError(t, err)
	assert.Nil(t, endpoint)
}

// ── GetEndpointByName ─────────────────────────────────────────────────────────

// TestGetEndpointByName verifies exact, case-sensitive lookup.
func TestGetEndpointByName(t *testing.T) {
	svc := newTestService(testConfig())

	endpoint, err := svc.GetEndpointByName("mainnet")
	require.NoError(t, err)
	assert.Equal(t, "https://rpc.example", endpoint.URL)

	_, err = svc.GetEndpointByName("Mainnet")
	assert.ErrorIs(t, err, ErrMissingEndpoint)
}

// TestGetEndpointByName_ReturnsCopy verifies that callers cannot modify the
// store through results.
func TestGetEndpointByName_ReturnsCopy(t *testing.T) {
	svc := newTestService(testConfig())

	endpoint, err := svc.GetEndpointByName("mainnet")
	require.NoError(t, err)
	endpoint.URL = "changed"
	endpoint.EndpointMetadata["host"] = "changed"
	*endpoint.ChainID = "2"

	again, err := svc.GetEndpointByName("mainnet")
	require.NoError(t, err)
	assert.Equal(t, testConfig().Endpoints["mainnet"], *again)
}

// ── GetEndpointByNetwork ──────────────────────────────────────────────────────

// TestGetEndpointByNetwork covers global and profile network defaults.
func TestGetEndpointByNetwork(t *testing.T) {
	svc := newTestService(testConfig())

	endpoint, err := svc.GetEndpointByNetwork("1")
	require.NoError(t, err)
	assert.Equal(t, "mainnet", endpoint.Name)

	endpoint, err = svc.GetEndpointByNetwork("5", WithProfile("foundry"))
	require.NoError(t, err)
	assert.Equal(t, "local", endpoint.Name, "profile entry wins")

	endpoint, err = svc.GetEndpointByNetwork("1", WithProfile("foundry"))
	require.NoError(t, err)
	assert.Equal(t, "mainnet", endpoint.Name, "falls back to global network defaults")

	endpoint, err = svc.GetEndpointByNetwork("0x1")
	assert.NoError(t, err)
	assert.Nil(t, endpoint, "chain ids compare literally")

	_, err = svc.GetEndpointByNetwork("10")
	assert.ErrorIs(t, err, ErrMissingEndpoint)

	endpoint, err = svc.GetEndpointByNetwork("1", WithProfile("off"))
	assert.NoError(t, err)
	assert.Nil(t, endpoint)
}

// TestGetEndpointByNetwork_Scenario verifies lookup after a network defaults
// override naming an absent endpoint.
func TestGetEndpointByNetwork_Scenario(t *testing.T) {
	cfg := testConfig()
	cfg.NetworkDefaults = map[models.ChainID]string{"1": "mainnet", "5": "goerli-missing"}
	svc := newTestService(cfg)

	endpoint, err := svc.GetEndpointByNetwork("1")
	require.NoError(t, err)
	assert.Equal(t, "mainnet", endpoint.Name)

	_, err = svc.GetEndpointByNetwork("5")
	assert.ErrorIs(t, err, ErrMissingEndpoint)
}

// ── GetEndpointByQuery ────────────────────────────────────────────────────────

// TestGetEndpointByQuery covers every interpretation of a query.
func TestGetEndpointByQuery(t *testing.T) {
	svc := newTestService(testConfig())

	tests := []struct {
		name    string
		query   string
		opts    []QueryOption
		want    string
		wantErr error
	}{
		{name: "endpoint name", query: "goerli", want: "goerli"},
		{name: "network name", query: "dev", want: ""},
		{name: "built-in network name", query: "Ethereum", want: "mainnet"},
		{name: "chain id", query: "1", want: "mainnet"},
		{name: "profile chain id", query: "5", opts: []QueryOption{WithProfile("foundry")}, want: "local"},
		{name: "built-in network in profile", query: "goerli-net", want: ""},
		{name: "nothing matches", query: "nope", want: ""},
		{name: "dangling only", query: "op", wantErr: ErrMissingEndpoint},
		{name: "dangling chain id", query: "10", wantErr: ErrMissingEndpoint},
		{name: "disabled profile", query: "goerli", opts: []QueryOption{WithProfile("off")}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			endpoint, err := svc.GetEndpointByQuery(tt.query, tt.opts...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, endpoint)
				return
			}

			require.NoError(t, err)
			if tt.want == "" {
				assert.Nil(t, endpoint)
				return
			}
			require.NotNil(t, endpoint)
			assert.Equal(t, tt.want, endpoint.Name)
		})
	}
}

// TestGetEndpointByQuery_DanglingFallsThrough verifies that a dangling
// network name reference does not hide a later successful interpretation.
func TestGetEndpointByQuery_DanglingFallsThrough(t *testing.T) {
	cfg := testConfig()
	cfg.NetworkNames["1"] = "10"
	svc := newTestService(cfg)

	endpoint, err := svc.GetEndpointByQuery("1")
	require.NoError(t, err)
	assert.Equal(t, "mainnet", endpoint.Name)
}

// ── FindEndpoints ─────────────────────────────────────────────────────────────

// TestFindEndpoints_SortedAndStable verifies ordering.
func TestFindEndpoints_SortedAndStable(t *testing.T) {
	svc := newTestService(testConfig())

	first, err := svc.FindEndpoints()
	require.NoError(t, err)
	second, err := svc.FindEndpoints()
	require.NoError(t, err)

	names := make([]string, len(first))
	for i, e := range first {
		names[i] = e.Name
	}
	assert.Equal(t, []string{"goerli", "local", "mainnet"}, names)
	assert.Equal(t, first, second)
}

// TestFindEndpoints_Filters verifies each filter and their combination.
func TestFindEndpoints_Filters(t *testing.T) {
	svc := newTestService(testConfig())

	find := func(filters ...Filter) []string {
		t.Helper()
		endpoints, err := svc.FindEndpoints(filters...)
		require.NoError(t, err)
		names := make([]string, len(endpoints))
		for i, e := range endpoints {
			names[i] = e.Name
		}
		return names
	}

	assert.Equal(t, []string{"mainnet"}, find(ChainIDIs("1")))
	assert.Empty(t, find(ChainIDIs("5")))
	assert.Equal(t, []string{"goerli"}, find(ChainIDEquivalent("5")))
	assert.Equal(t, []string{"goerli", "mainnet"}, find(URLContains("https://")))
	assert.Equal(t, []string{"local"}, find(NameContains("oca")))
	assert.Equal(t, []string{"mainnet"}, find(MetadataEquals("host", "example")))
	assert.Equal(t, []string{"mainnet"}, find(MetadataEquals("rate_limit_rps", float64(50))))
	assert.Equal(t, []string{"mainnet"}, find(URLContains("https://"), NameContains("main")))
	assert.Empty(t, find(URLContains("https://"), NameContains("local")))
}

// ── metadata & defaults ───────────────────────────────────────────────────────

// TestGetGlobalMetadata verifies profile overlay and copies.
func TestGetGlobalMetadata(t *testing.T) {
	svc := newTestService(testConfig())

	metadata, err := svc.GetGlobalMetadata()
	require.NoError(t, err)
	assert.Equal(t, models.Metadata{"owner": "ops", "team": "infra"}, metadata)
	metadata["owner"] = "changed"

	metadata, err = svc.GetGlobalMetadata(WithProfile("foundry"))
	require.NoError(t, err)
	assert.Equal(t, models.Metadata{"owner": "foundry", "team": "infra"}, metadata)

	metadata, err = svc.GetGlobalMetadata(WithProfile("off"))
	assert.NoError(t, err)
	assert.Nil(t, metadata)
}

// TestGetDefaults verifies global and profile defaults.
func TestGetDefaults(t *testing.T) {
	svc := newTestService(testConfig())

	global, err := svc.GetDefaults()
	require.NoError(t, err)
	assert.Equal(t, "local", *global.DefaultEndpoint)
	assert.Equal(t, testConfig().NetworkDefaults, global.NetworkDefaults)

	foundry, err := svc.GetDefaults(WithProfile("foundry"))
	require.NoError(t, err)
	assert.Nil(t, foundry.DefaultEndpoint)
	assert.Equal(t, "local", foundry.NetworkDefaults["5"])
	assert.Equal(t, "mainnet", foundry.NetworkDefaults["1"])

	off, err := svc.GetDefaults(WithProfile("off"))
	require.NoError(t, err)
	assert.Nil(t, off.DefaultEndpoint)
	assert.Empty(t, off.NetworkDefaults)
}

// TestStatus verifies counts and resolution details.
func TestStatus(t *testing.T) {
	status := newTestService(testConfig()).Status()

	assert.True(t, status.Enabled)
	assert.Equal(t, models.ModeEnv, status.Mode)
	assert.Equal(t, "MESC_ENV", status.Source)
	assert.NotEmpty(t, status.ResolutionID)
	assert.Equal(t, "local", status.DefaultEndpoint)
	assert.Equal(t, 3, status.Endpoints)
	assert.Equal(t, 3, status.NetworkDefaults)
	assert.Equal(t, 2, status.NetworkNames)
	assert.Equal(t, 4, status.Profiles)
}

// TestSnapshot verifies that snapshots are independent.
func TestSnapshot(t *testing.T) {
	svc := newTestService(testConfig())

	snap, err := svc.Snapshot()
	require.NoError(t, err)
	delete(snap.Endpoints, "local")

	again, err := svc.Snapshot()
	require.NoError(t, err)
	assert.Len(t, again.Endpoints, 3)
}

package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-mesc/models"
)

func sampleConfig() *models.RPCConfig {
	cfg := models.NewRPCConfig()
	cfg.Endpoints["local"] = models.Endpoint{
		Name:             "local",
		URL:              "http://localhost:8545",
		EndpointMetadata: models.Metadata{},
	}
	return cfg
}

// TestNew_CopiesInput verifies that later changes to the input do not reach
// the store.
func TestNew_CopiesInput(t *testing.T) {
	cfg := sampleConfig()
	overrides := []string{"MESC_ENDPOINTS"}
	s := New(cfg, Info{Mode: models.ModePath, ActiveOverrides: overrides})

	cfg.Endpoints["other"] = models.Endpoint{Name: "other"}
	overrides[0] = "changed"

	require.True(t, s.Enabled())
	assert.Len(t, s.Config().Endpoints, 1)
	assert.Equal(t, []string{"MESC_ENDPOINTS"}, s.Info().ActiveOverrides)
}

// TestNew_FillsInfo verifies generated id and timestamp.
func TestNew_FillsInfo(t *testing.T) {
	s := New(sampleConfig(), Info{Mode: models.ModeEnv, Source: "MESC_ENV"})

	info := s.Info()
	assert.NotEqual(t, uuid.Nil, info.ID)
	assert.False(t, info.ResolvedAt.IsZero())
	assert.Equal(t, models.ModeEnv, info.Mode)
	assert.Equal(t, "MESC_ENV", info.Source)
}

// TestNew_KeepsGivenInfo verifies that explicit id and time are kept.
func TestNew_KeepsGivenInfo(t *testing.T) {
	id := uuid.New()
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	info := New(sampleConfig(), Info{ID: id, ResolvedAt: at}).Info()
	assert.Equal(t, id, info.ID)
	assert.Equal(t, at, info.ResolvedAt)
}

// TestSnapshot_Independent verifies that snapshots can be modified freely.
func TestSnapshot_Independent(t *testing.T) {
	s := New(sampleConfig(), Info{})

	snap := s.Snapshot()
	snap.Endpoints["local"].EndpointMetadata["x"] = "y"
	delete(snap.Endpoints, "local")

	assert.Equal(t, sampleConfig(), s.Config())
}

// TestNewDisabled verifies the disabled store.
func TestNewDisabled(t *testing.T) {
	s := NewDisabled(Info{Mode: models.ModePath})

	assert.False(t, s.Enabled())
	assert.Nil(t, s.Config())
	assert.Nil(t, s.Snapshot())
	assert.Equal(t, models.ModeDisabled, s.Info().Mode)
}

// TestNilStore verifies nil receiver safety.
func TestNilStore(t *testing.T) {
	var s *Store
	assert.False(t, s.Enabled())
	assert.Nil(t, s.Config())
	assert.Equal(t, models.ModeDisabled, s.Info().Mode)
}

// TestNewID verifies that resolution ids are version 7 and increase.
func TestNewID(t *testing.T) {
	first, second := NewID(), NewID()
	assert.Equal(t, uuid.Version(7), first.Version())
	assert.NotEqual(t, first, second)
	assert.LessOrEqual(t, first.Time(), second.Time())
}

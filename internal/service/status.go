package service

import (
	"time"

	"github.com/MKhiriev/go-mesc/models"
)

// Status summarises a store for diagnostics.
type Status struct {
	Enabled         bool        `json:"enabled"`
	Mode            models.Mode `json:"mode"`
	Source          string      `json:"source,omitempty"`
	ResolutionID    string      `json:"resolution_id"`
	ResolvedAt      time.Time   `json:"resolved_at"`
	ActiveOverrides []string    `json:"active_overrides"`

	DefaultEndpoint string `json:"default_endpoint,omitempty"`
	Endpoints       int    `json:"endpoints"`
	NetworkDefaults int    `json:"network_defaults"`
	NetworkNames    int    `json:"network_names"`
	Profiles        int    `json:"profiles"`
}

// Defaults is the default endpoint and network defaults of one scope.
type Defaults struct {
	Profile         string                    `json:"profile,omitempty"`
	DefaultEndpoint *string                   `json:"default_endpoint"`
	NetworkDefaults map[models.ChainID]string `json:"network_defaults"`
}

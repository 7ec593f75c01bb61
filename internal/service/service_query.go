// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"maps"
	"slices"

	"github.com/MKhiriev/go-mesc/internal/logger"
	"github.com/MKhiriev/go-mesc/internal/store"
	"github.com/MKhiriev/go-mesc/models"
)

type queryService struct {
	store *store.Store

	logger *logger.Logger
}

// NewQueryService returns a QueryService reading from s.
func NewQueryService(s *store.Store, l *logger.Logger) QueryService {
	return &queryService{
		store:  s,
		logger: logger.OrNop(l),
	}
}

// scope is the view of the configuration a lookup runs in.
type scope struct {
	cfg *models.RPCConfig

	// profile is set when a profile option named an existing profile.
	profile     *models.Profile
	profileName string
}

// disabledProfile reports whether the lookup names a profile with
// use_mesc set to false.
func (s scope) disabledProfile() bool {
	return s.profile != nil && !s.profile.Enabled()
}

func (q *queryService) scope(opts []QueryOption) (scope, error) {
	cfg := q.store.Config()
	if cfg == nil {
		return scope{}, ErrMescDisabled
	}

	o := applyOptions(opts)
	sc := scope{cfg: cfg, profileName: o.profile}
	if o.profile != "" {
		if profile, ok := cfg.Profiles[o.profile]; ok {
			sc.profile = &profile
		}
	}
	return sc, nil
}

// GetDefaultEndpoint returns the default endpoint of the global scope, or of
// the profile when WithProfile is given. A profile never falls back to the
// global default.
func (q *queryService) GetDefaultEndpoint(opts ...QueryOption) (*models.Endpoint, error) {
	sc, err := q.scope(opts)
	if err != nil {
		return nil, err
	}

	name, reference := sc.cfg.DefaultEndpoint, "default_endpoint"
	if sc.profileName != "" {
		if sc.profile == nil || sc.disabledProfile() {
			return nil, nil
		}
		name, reference = sc.profile.DefaultEndpoint, "profiles."+sc.profileName+".default_endpoint"
	}

	if name == nil {
		return nil, nil
	}
	return sc.endpoint(*name, reference)
}

// GetEndpointByName returns the endpoint stored under name.
func (q *queryService) GetEndpointByName(name string) (*models.Endpoint, error) {
	sc, err := q.scope(nil)
	if err != nil {
		return nil, err
	}
	return sc.endpoint(name, "")
}

// GetEndpointByNetwork returns the default endpoint for chainID. The profile's
// network_defaults entry wins over the global one.
func (q *queryService) GetEndpointByNetwork(chainID models.ChainID, opts ...QueryOption) (*models.Endpoint, error) {
	sc, err := q.scope(opts)
	if err != nil {
		return nil, err
	}
	if sc.disabledProfile() {
		return nil, nil
	}
	return sc.network(chainID)
}

// GetEndpointByQuery interprets query as, in order, an endpoint name, a
// network name and a chain id. The first interpretation that yields an
// endpoint wins. A dangling reference met on the way is reported only when
// no interpretation succeeds.
func (q *queryService) GetEndpointByQuery(query string, opts ...QueryOption) (*models.Endpoint, error) {
	sc, err := q.scope(opts)
	if err != nil {
		return nil, err
	}
	if sc.disabledProfile() {
		return nil, nil
	}

	if endpoint, ok := sc.cfg.Endpoints[query]; ok {
		return clonePtr(endpoint), nil
	}

	var dangling error

	chainID, ok := sc.cfg.NetworkNames[query]
	if !ok {
		chainID, ok = KnownNetworkChainID(query)
	}
	if ok {
		endpoint, err := sc.network(chainID)
		if endpoint != nil {
			return endpoint, nil
		}
		if err != nil {
			q.logger.Debug().Err(err).Str("query", query).Msg("network name lookup failed, trying chain id")
		}
		dangling = err
	}

	endpoint, err := sc.network(models.ChainID(query))
	if endpoint != nil {
		return endpoint, nil
	}
	if dangling == nil {
		dangling = err
	}

	return nil, dangling
}

// FindEndpoints returns the endpoints accepted by every filter, sorted by
// name.
func (q *queryService) FindEndpoints(filters ...Filter) ([]models.Endpoint, error) {
	sc, err := q.scope(nil)
	if err != nil {
		return nil, err
	}

	names := slices.Sorted(maps.Keys(sc.cfg.Endpoints))

	result := make([]models.Endpoint, 0, len(names))
	for _, name := range names {
		endpoint := sc.cfg.Endpoints[name]
		if matchesAll(endpoint, filters) {
			result = append(result, endpoint.Clone())
		}
	}
	return result, nil
}

// GetGlobalMetadata returns global_metadata, overlaid with the profile's
// profile_metadata when WithProfile names an existing profile.
func (q *queryService) GetGlobalMetadata(opts ...QueryOption) (models.Metadata, error) {
	sc, err := q.scope(opts)
	if err != nil {
		return nil, err
	}
	if sc.disabledProfile() {
		return nil, nil
	}

	if sc.profile == nil {
		return sc.cfg.GlobalMetadata.Clone(), nil
	}
	return sc.cfg.GlobalMetadata.Merge(sc.profile.ProfileMetadata), nil
}

// GetDefaults returns the default endpoint name and the effective network
// defaults of the requested scope.
func (q *queryService) GetDefaults(opts ...QueryOption) (*Defaults, error) {
	sc, err := q.scope(opts)
	if err != nil {
		return nil, err
	}

	defaults := &Defaults{
		Profile:         sc.profileName,
		NetworkDefaults: maps.Clone(sc.cfg.NetworkDefaults),
	}
	if defaults.NetworkDefaults == nil {
		defaults.NetworkDefaults = map[models.ChainID]string{}
	}

	switch {
	case sc.profileName == "":
		defaults.DefaultEndpoint = cloneString(sc.cfg.DefaultEndpoint)
	case sc.disabledProfile():
		defaults.NetworkDefaults = map[models.ChainID]string{}
	case sc.profile != nil:
		defaults.DefaultEndpoint = cloneString(sc.profile.DefaultEndpoint)
		maps.Copy(defaults.NetworkDefaults, sc.profile.NetworkDefaults)
	}

	return defaults, nil
}

// Snapshot returns a deep copy of the whole configuration.
func (q *queryService) Snapshot() (*models.RPCConfig, error) {
	if !q.store.Enabled() {
		return nil, ErrMescDisabled
	}
	return q.store.Snapshot(), nil
}

// Status never fails. A disabled store yields Enabled == false.
func (q *queryService) Status() Status {
	info := q.store.Info()
	status := Status{
		Enabled:         q.store.Enabled(),
		Mode:            info.Mode,
		Source:          info.Source,
		ResolutionID:    info.ID.String(),
		ResolvedAt:      info.ResolvedAt,
		ActiveOverrides: info.ActiveOverrides,
	}

	cfg := q.store.Config()
	if cfg == nil {
		return status
	}

	if cfg.DefaultEndpoint != nil {
		status.DefaultEndpoint = *cfg.DefaultEndpoint
	}
	status.Endpoints = len(cfg.Endpoints)
	status.NetworkDefaults = len(cfg.NetworkDefaults)
	status.NetworkNames = len(cfg.NetworkNames)
	status.Profiles = len(cfg.Profiles)
	return status
}

// endpoint resolves a name against endpoints.
func (s scope) endpoint(name, reference string) (*models.Endpoint, error) {
	endpoint, ok := s.cfg.Endpoints[name]
	if !ok {
		return nil, &MissingEndpointError{Name: name, Reference: reference}
	}
	return clonePtr(endpoint), nil
}

// network resolves chainID through the profile and then the global
// network_defaults. Chain ids are compared literally.
func (s scope) network(chainID models.ChainID) (*models.Endpoint, error) {
	if s.profile != nil {
		if name, ok := s.profile.NetworkDefaults[chainID]; ok {
			return s.endpoint(name, "profiles."+s.profileName+".network_defaults."+chainID.String())
		}
	}

	if name, ok := s.cfg.NetworkDefaults[chainID]; ok {
		return s.endpoint(name, "network_defaults."+chainID.String())
	}

	return nil, nil
}

func matchesAll(endpoint models.Endpoint, filters []Filter) bool {
	for _, filter := range filters {
		if filter != nil && !filter(endpoint) {
			return false
		}
	}
	return true
}

func clonePtr(endpoint models.Endpoint) *models.Endpoint {
	c := endpoint.Clone()
	return &c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

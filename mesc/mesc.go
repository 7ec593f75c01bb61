// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mesc resolves the MESC RPC endpoint configuration and answers
// endpoint queries.
//
// The configuration is read once from MESC_PATH or MESC_ENV, the MESC_*
// override variables are applied on top and the result is frozen. Queries
// never touch the environment again:
//
//	q, err := mesc.FromEnvironment()
//	if err != nil {
//		return err
//	}
//	endpoint, err := q.GetEndpointByQuery("ethereum", mesc.WithProfile("xyz"))
//
// A query with no matching configuration returns (nil, nil).
package mesc

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-mesc/internal/config"
	"github.com/MKhiriev/go-mesc/internal/logger"
	"github.com/MKhiriev/go-mesc/internal/resolver"
	"github.com/MKhiriev/go-mesc/internal/service"
	"github.com/MKhiriev/go-mesc/models"
)

type (
	Endpoint     = models.Endpoint
	Profile      = models.Profile
	RPCConfig    = models.RPCConfig
	ChainID      = models.ChainID
	Metadata     = models.Metadata
	QueryService = service.QueryService
	QueryOption  = service.QueryOption
	Filter       = service.Filter
	Status       = service.Status
	Defaults     = service.Defaults
)

var (
	WithProfile       = service.WithProfile
	ChainIDIs         = service.ChainIDIs
	ChainIDEquivalent = service.ChainIDEquivalent
	NameContains      = service.NameContains
	URLContains       = service.URLContains
	MetadataEquals    = service.MetadataEquals

	ErrMescDisabled    = service.ErrMescDisabled
	ErrMissingEndpoint = service.ErrMissingEndpoint
)

// Option configures resolution.
type Option func(*options)

type options struct {
	logger *logger.Logger
	flags  config.Flags
}

// WithLogger routes resolution and query logs to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = &logger.Logger{Logger: l}
	}
}

// WithNetworkDefaultsPolicy selects how MESC_NETWORK_DEFAULTS is applied:
// "replace" (default) or "merge".
func WithNetworkDefaultsPolicy(policy string) Option {
	return func(o *options) {
		o.flags.NetworkDefaultsPolicy = policy
	}
}

// WithEnvFile reads MESC_* variables from a dotenv file before environ.
func WithEnvFile(path string) Option {
	return func(o *options) {
		o.flags.EnvFile = path
	}
}

// Resolve builds a QueryService from the MESC_* entries of environ.
func Resolve(environ map[string]string, opts ...Option) (QueryService, error) {
	o := options{logger: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	sources, err := config.Load(environ, o.flags)
	if err != nil {
		return nil, fmt.Errorf("error loading configuration sources: %w", err)
	}

	st, err := resolver.New(resolver.WithLogger(o.logger)).Resolve(sources)
	if err != nil {
		return nil, err
	}

	return service.NewQueryLoggingService(o.logger).Wrap(service.NewQueryService(st, o.logger)), nil
}

// FromEnvironment resolves from the process environment.
func FromEnvironment(opts ...Option) (QueryService, error) {
	return Resolve(env.ToMap(os.Environ()), opts...)
}

// MustFromEnvironment is like FromEnvironment but panics on error.
func MustFromEnvironment(opts ...Option) QueryService {
	q, err := FromEnvironment(opts...)
	if err != nil {
		panic(err)
	}
	return q
}

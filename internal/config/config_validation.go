// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Defaults applied after all sources are merged.
const (
	DefaultLogLevel              = "warn"
	PolicyReplace                = "replace"
	PolicyMerge                  = "merge"
	DefaultNetworkDefaultsPolicy = PolicyReplace
)

func (cfg *Sources) applyDefaults() {
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.NetworkDefaultsPolicy == "" {
		cfg.NetworkDefaultsPolicy = DefaultNetworkDefaultsPolicy
	}
}

// validate checks the settings that belong to this package. The mode and
// the override values are checked by the resolver.
func (cfg *Sources) validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.LogLevel)
	}

	switch cfg.NetworkDefaultsPolicy {
	case PolicyReplace, PolicyMerge:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidNetworkDefaultsPolicy, cfg.NetworkDefaultsPolicy)
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"

	"github.com/caarlos0/env/v11"
)

// envPrefix is prepended to every env tag below.
const envPrefix = "MESC_"

// Sources is everything the resolver needs to build a configuration.
//
// Struct tags:
//   - env: environment variable name without the MESC_ prefix (caarlos0/env).
type Sources struct {
	// Mode selects the base source: PATH, ENV or DISABLED. Empty means the
	// mode is inferred from Path and Env.
	// Env: MESC_MODE
	Mode string `env:"MODE"`

	// Path is the location of the JSON configuration file used in PATH mode.
	// Env: MESC_PATH
	Path string `env:"PATH"`

	// Env is the inline JSON configuration used in ENV mode.
	// Env: MESC_ENV
	Env string `env:"ENV"`

	// Overrides holds the compact overlay variables.
	Overrides Overrides

	// LogLevel is the zerolog level name used by the CLI.
	// Env: MESC_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// NetworkDefaultsPolicy controls how MESC_NETWORK_DEFAULTS is applied:
	// "replace" (default) or "merge". Only settable by flag.
	NetworkDefaultsPolicy string
}

// Overrides holds the raw values of the override variables. An empty value
// means the override is absent.
type Overrides struct {
	// Env: MESC_DEFAULT_ENDPOINT
	DefaultEndpoint string `env:"DEFAULT_ENDPOINT"`

	// Env: MESC_NETWORK_DEFAULTS
	NetworkDefaults string `env:"NETWORK_DEFAULTS"`

	// Env: MESC_NETWORK_NAMES
	NetworkNames string `env:"NETWORK_NAMES"`

	// Env: MESC_ENDPOINTS
	Endpoints string `env:"ENDPOINTS"`

	// Env: MESC_PROFILES
	Profiles string `env:"PROFILES"`

	// Env: MESC_GLOBAL_METADATA
	GlobalMetadata string `env:"GLOBAL_METADATA"`

	// Env: MESC_ENDPOINT_METADATA
	EndpointMetadata string `env:"ENDPOINT_METADATA"`
}

// Flags carries command-line values that take part in source resolution.
// Empty fields leave lower-priority values untouched.
type Flags struct {
	EnvFile               string
	Mode                  string
	Path                  string
	LogLevel              string
	NetworkDefaultsPolicy string
}

// Load assembles Sources from an explicit environment map and flags.
func Load(environ map[string]string, flags Flags) (*Sources, error) {
	return newConfigBuilder().
		withDotenv(flags.EnvFile).
		withEnv(environ).
		withFlags(flags).
		build()
}

// FromOS assembles Sources from the process environment and flags.
func FromOS(flags Flags) (*Sources, error) {
	return Load(env.ToMap(os.Environ()), flags)
}

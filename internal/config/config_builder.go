package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*Sources
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*Sources, 0, 3),
	}
}

func (b *configBuilder) build() (*Sources, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	sources := new(Sources)
	for _, cfg := range b.configs {
		if err := mergo.Merge(sources, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	sources.applyDefaults()
	if err := sources.validate(); err != nil {
		return nil, err
	}

	return sources, nil
}

func (b *configBuilder) withDotenv(path string) *configBuilder {
	if path == "" {
		return b
	}

	dotenvCfg, err := parseDotenv(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, dotenvCfg)
	return b
}

func (b *configBuilder) withEnv(environ map[string]string) *configBuilder {
	envCfg := &Sources{}
	if err := parseEnv(envCfg, environ); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(flags Flags) *configBuilder {
	b.configs = append(b.configs, flags.toSources())
	return b
}

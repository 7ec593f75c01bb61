// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-mesc/internal/parser"
	"github.com/MKhiriev/go-mesc/models"
)

// readFileFunc is swapped in tests.
type readFileFunc func(name string) ([]byte, error)

// loadFromPath reads and validates the configuration file at path.
func (r *Resolver) loadFromPath(path string) (*models.RPCConfig, string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, "", &MissingSourceError{Mode: models.ModePath.String(), Err: fs.ErrNotExist}
	}

	expanded, err := expandHome(path)
	if err != nil {
		return nil, path, fmt.Errorf("error expanding config path: %w", err)
	}

	data, err := r.readFile(expanded)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, expanded, &MissingSourceError{Mode: models.ModePath.String(), Source: expanded, Err: err}
	}
	if err != nil {
		return nil, expanded, fmt.Errorf("error reading config file: %w", err)
	}

	cfg, err := r.decode(string(data))
	if err != nil {
		return nil, expanded, fmt.Errorf("config file %s: %w", expanded, err)
	}

	return cfg, expanded, nil
}

// loadFromEnv validates an inline configuration.
func (r *Resolver) loadFromEnv(inline string) (*models.RPCConfig, error) {
	if strings.TrimSpace(inline) == "" {
		return nil, &MissingSourceError{Mode: models.ModeEnv.String(), Source: "MESC_ENV"}
	}

	cfg, err := r.decode(inline)
	if err != nil {
		return nil, fmt.Errorf("MESC_ENV: %w", err)
	}

	return cfg, nil
}

func (r *Resolver) decode(s string) (*models.RPCConfig, error) {
	doc, err := parser.ParseJSON(s)
	if err != nil {
		return nil, err
	}

	return r.schema.ValidateConfig(doc)
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

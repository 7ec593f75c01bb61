// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-mesc/models"
)

// Info describes how a Store was resolved.
type Info struct {
	// ID identifies the resolution pass in logs.
	ID uuid.UUID
	// Mode is the mode that produced the base configuration.
	Mode models.Mode
	// Source is the file path (PATH mode), "MESC_ENV" (ENV mode) or empty.
	Source string
	// ActiveOverrides lists the override variables that were applied.
	ActiveOverrides []string
	// ResolvedAt is the time the resolution pass finished.
	ResolvedAt time.Time
}

// NewID returns a time-ordered resolution id.
func NewID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}

// Store is an immutable resolved configuration.
type Store struct {
	cfg  *models.RPCConfig
	info Info
}

// New returns a Store holding a private copy of cfg. A nil cfg yields a
// disabled Store.
func New(cfg *models.RPCConfig, info Info) *Store {
	if info.ID == uuid.Nil {
		info.ID = NewID()
	}
	if info.ResolvedAt.IsZero() {
		info.ResolvedAt = time.Now()
	}
	info.ActiveOverrides = slices.Clone(info.ActiveOverrides)

	return &Store{cfg: cfg.Clone(), info: info}
}

// NewDisabled returns a Store for DISABLED mode.
func NewDisabled(info Info) *Store {
	info.Mode = models.ModeDisabled
	return New(nil, info)
}

// Enabled reports whether the Store holds a configuration.
func (s *Store) Enabled() bool {
	return s != nil && s.cfg != nil
}

// Config returns the stored configuration, or nil when disabled.
// The returned value is shared and must be treated as read-only; use
// Snapshot for a private copy.
func (s *Store) Config() *models.RPCConfig {
	if s == nil {
		return nil
	}
	return s.cfg
}

// Snapshot returns a deep copy of the stored configuration, or nil when
// disabled.
func (s *Store) Snapshot() *models.RPCConfig {
	return s.Config().Clone()
}

// Info returns a copy of the resolution details.
func (s *Store) Info() Info {
	if s == nil {
		return Info{Mode: models.ModeDisabled}
	}
	info := s.info
	info.ActiveOverrides = slices.Clone(info.ActiveOverrides)
	return info
}

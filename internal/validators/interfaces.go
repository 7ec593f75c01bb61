// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks MESC configuration documents.
//
// Core concepts:
//   - SchemaValidator: turns a generic JSON tree into a typed
//     models.RPCConfig, collecting every shape and value violation into a
//     single *SchemaValidationError.
//   - Validator: generic interface for rule sets that inspect an already
//     typed value. IntegrityValidator implements it to report dangling
//     references and other cross-field problems.
//
// Usage patterns:
//  1. Resolution runs SchemaValidator on every parsed document.
//  2. Tooling (the CLI validate and status commands) runs IntegrityValidator
//     on the resolved configuration, optionally scoped to named checks.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

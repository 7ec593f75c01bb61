// Package parser decodes the compact override formats carried by the
// MESC_* environment variables.
//
// Every parser is a pure function over a single string. Tokens are separated
// by runs of whitespace and empty input yields an empty, non-nil map. A single
// malformed token fails the whole call with an [*InvalidOverrideError]; no
// partial result is returned.
package parser

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"math/big"
	"strings"
)

// ErrInvalidChainID is returned when a string is neither a decimal integer
// nor a 0x-prefixed hexadecimal integer.
var ErrInvalidChainID = errors.New("invalid chain id")

// ChainID identifies a blockchain network.
//
// The value is kept exactly as written in the configuration: "1" and "0x1"
// are different map keys. Lookups compare chain ids literally; use
// [ChainID.Normalize] or [ChainID.Equivalent] when a numeric comparison is
// wanted.
type ChainID string

// String returns the literal chain id.
func (c ChainID) String() string {
	return string(c)
}

// Valid reports whether c is a non-empty decimal integer or a 0x-prefixed
// hexadecimal integer.
func (c ChainID) Valid() bool {
	_, err := c.ToInt()
	return err == nil
}

// ToInt parses the chain id into an arbitrary precision integer.
// Chain ids may use the full 256 bits, so int64 is not enough.
func (c ChainID) ToInt() (*big.Int, error) {
	s := string(c)
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
	}

	if s == "" {
		return nil, ErrInvalidChainID
	}

	for _, r := range s {
		if !isDigit(r, base) {
			return nil, ErrInvalidChainID
		}
	}

	n, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, ErrInvalidChainID
	}

	return n, nil
}

// Normalize returns the canonical lower-case hex form of the chain id
// ("1", "0x01" and "0X1" all become "0x1"). Invalid chain ids are returned
// unchanged.
func (c ChainID) Normalize() ChainID {
	n, err := c.ToInt()
	if err != nil {
		return c
	}

	return ChainID("0x" + n.Text(16))
}

// Equivalent reports whether c and other denote the same integer.
// Two invalid chain ids are equivalent only if they are literally equal.
func (c ChainID) Equivalent(other ChainID) bool {
	if c == other {
		return true
	}

	lhs, err := c.ToInt()
	if err != nil {
		return false
	}
	rhs, err := other.ToInt()
	if err != nil {
		return false
	}

	return lhs.Cmp(rhs) == 0
}

func isDigit(r rune, base int) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case base == 16 && r >= 'a' && r <= 'f':
		return true
	case base == 16 && r >= 'A' && r <= 'F':
		return true
	default:
		return false
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Endpoint is a named RPC connection target.
type Endpoint struct {
	// Name is the unique key of the endpoint inside RPCConfig.Endpoints.
	Name string `json:"name" validate:"required"`

	// URL is the location of the RPC endpoint.
	URL string `json:"url" validate:"required"`

	// ChainID is the network served by the endpoint, if known.
	ChainID *ChainID `json:"chain_id" validate:"omitempty,chainid"`

	// EndpointMetadata holds well-known and custom endpoint attributes
	// (rate limits, api keys, labels, ...).
	EndpointMetadata Metadata `json:"endpoint_metadata"`
}

// Clone returns a deep copy of e.
func (e Endpoint) Clone() Endpoint {
	out := Endpoint{
		Name:             e.Name,
		URL:              e.URL,
		EndpointMetadata: e.EndpointMetadata.Clone(),
	}
	if e.ChainID != nil {
		chainID := *e.ChainID
		out.ChainID = &chainID
	}
	return out
}

// ChainIDString returns the chain id or "-" when the endpoint has none.
func (e Endpoint) ChainIDString() string {
	if e.ChainID == nil {
		return "-"
	}
	return string(*e.ChainID)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MESCVersion is the only configuration format version understood by this
// module.
const MESCVersion = "MESC 1.0"

// RPCConfig is the canonical resolved configuration.
//
// A value reachable from a store is never mutated. Every override step works
// on a Clone and returns the new value.
type RPCConfig struct {
	MESCVersion     string              `json:"mesc_version" validate:"eq=MESC 1.0"`
	DefaultEndpoint *string             `json:"default_endpoint"`
	Endpoints       map[string]Endpoint `json:"endpoints" validate:"dive"`
	NetworkDefaults map[ChainID]string  `json:"network_defaults" validate:"dive,keys,chainid,endkeys,required"`
	NetworkNames    map[string]ChainID  `json:"network_names" validate:"dive,keys,required,endkeys,chainid"`
	Profiles        map[string]Profile  `json:"profiles" validate:"dive"`
	GlobalMetadata  Metadata            `json:"global_metadata"`
}

// NewRPCConfig returns an empty configuration with every map initialised.
func NewRPCConfig() *RPCConfig {
	return &RPCConfig{
		MESCVersion:     MESCVersion,
		Endpoints:       map[string]Endpoint{},
		NetworkDefaults: map[ChainID]string{},
		NetworkNames:    map[string]ChainID{},
		Profiles:        map[string]Profile{},
		GlobalMetadata:  Metadata{},
	}
}

// Clone returns a deep copy of c. Nil maps clone to empty maps.
func (c *RPCConfig) Clone() *RPCConfig {
	if c == nil {
		return nil
	}

	out := &RPCConfig{
		MESCVersion:     c.MESCVersion,
		DefaultEndpoint: cloneStringPtr(c.DefaultEndpoint),
		Endpoints:       make(map[string]Endpoint, len(c.Endpoints)),
		NetworkDefaults: cloneNetworkDefaults(c.NetworkDefaults),
		NetworkNames:    make(map[string]ChainID, len(c.NetworkNames)),
		Profiles:        make(map[string]Profile, len(c.Profiles)),
		GlobalMetadata:  c.GlobalMetadata.Clone(),
	}

	for name, endpoint := range c.Endpoints {
		out.Endpoints[name] = endpoint.Clone()
	}
	for name, chainID := range c.NetworkNames {
		out.NetworkNames[name] = chainID
	}
	for name, profile := range c.Profiles {
		out.Profiles[name] = profile.Clone()
	}

	return out
}

func cloneStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneNetworkDefaults(m map[ChainID]string) map[ChainID]string {
	out := make(map[ChainID]string, len(m))
	for chainID, name := range m {
		out[chainID] = name
	}
	return out
}

package models

// Profile is a named overlay of defaults. Its endpoint references resolve
// against the global RPCConfig.Endpoints map.
type Profile struct {
	Name            string             `json:"name" validate:"required"`
	DefaultEndpoint *string            `json:"default_endpoint"`
	NetworkDefaults map[ChainID]string `json:"network_defaults" validate:"dive,keys,chainid,endkeys,required"`
	ProfileMetadata Metadata           `json:"profile_metadata"`

	// UseMESC disables MESC for consumers of this profile when set to false.
	UseMESC *bool `json:"use_mesc"`
}

// Enabled reports whether the profile allows MESC lookups.
// An absent use_mesc flag means enabled.
func (p Profile) Enabled() bool {
	return p.UseMESC == nil || *p.UseMESC
}

// Clone returns a deep copy of p.
func (p Profile) Clone() Profile {
	out := Profile{
		Name:            p.Name,
		DefaultEndpoint: cloneStringPtr(p.DefaultEndpoint),
		NetworkDefaults: cloneNetworkDefaults(p.NetworkDefaults),
		ProfileMetadata: p.ProfileMetadata.Clone(),
	}
	if p.UseMESC != nil {
		useMESC := *p.UseMESC
		out.UseMESC = &useMESC
	}
	return out
}

package models

// Well-known metadata keys.
const (
	MetadataAPIKey             = "api_key"
	MetadataAPIKeys            = "api_keys"
	MetadataCloudRegion        = "cloud_region"
	MetadataConceal            = "conceal"
	MetadataEcosystem          = "ecosystem"
	MetadataExplorer           = "explorer"
	MetadataGroups             = "groups"
	MetadataHost               = "host"
	MetadataLabels             = "labels"
	MetadataLocation           = "location"
	MetadataNamespaces         = "namespaces"
	MetadataNodeClient         = "node_client"
	MetadataRateLimitCUPS      = "rate_limit_cups"
	MetadataRateLimitPerMethod = "rate_limit_per_method"
	MetadataRateLimitRPS       = "rate_limit_rps"
)

// RateLimitRPS returns the allowed requests per second.
func (e Endpoint) RateLimitRPS() (float64, bool) {
	return metadataFloat(e.EndpointMetadata, MetadataRateLimitRPS)
}

// RateLimitCUPS returns the allowed compute units per second.
func (e Endpoint) RateLimitCUPS() (float64, bool) {
	return metadataFloat(e.EndpointMetadata, MetadataRateLimitCUPS)
}

// RateLimitPerMethod returns the per-method requests per second limits.
func (e Endpoint) RateLimitPerMethod() (map[string]float64, bool) {
	raw, ok := e.EndpointMetadata.Get(MetadataRateLimitPerMethod)
	if !ok {
		return nil, false
	}

	object, ok := raw.(map[string]any)
	if !ok {
		return nil, false
	}

	out := make(map[string]float64, len(object))
	for method, v := range object {
		limit, ok := v.(float64)
		if !ok {
			return nil, false
		}
		out[method] = limit
	}
	return out, true
}

// APIKey returns the api key of the endpoint.
func (e Endpoint) APIKey() (string, bool) {
	return metadataString(e.EndpointMetadata, MetadataAPIKey)
}

// Host returns the name of the entity hosting the endpoint.
func (e Endpoint) Host() (string, bool) {
	return metadataString(e.EndpointMetadata, MetadataHost)
}

// Ecosystem returns the ecosystem of the served chain (e.g. "EVM").
func (e Endpoint) Ecosystem() (string, bool) {
	return metadataString(e.EndpointMetadata, MetadataEcosystem)
}

// NodeClient returns the client version string of the node.
func (e Endpoint) NodeClient() (string, bool) {
	return metadataString(e.EndpointMetadata, MetadataNodeClient)
}

// Explorer returns the block explorer url for the endpoint's chain.
func (e Endpoint) Explorer() (string, bool) {
	return metadataString(e.EndpointMetadata, MetadataExplorer)
}

// Location returns the geographic location of the endpoint.
func (e Endpoint) Location() (string, bool) {
	return metadataString(e.EndpointMetadata, MetadataLocation)
}

// CloudRegion returns the cloud region the endpoint runs in.
func (e Endpoint) CloudRegion() (string, bool) {
	return metadataString(e.EndpointMetadata, MetadataCloudRegion)
}

// Labels returns the labels attached to the endpoint.
func (e Endpoint) Labels() ([]string, bool) {
	return metadataStrings(e.EndpointMetadata, MetadataLabels)
}

// Groups returns the groups the endpoint belongs to.
func (e Endpoint) Groups() ([]string, bool) {
	return metadataStrings(e.EndpointMetadata, MetadataGroups)
}

// Namespaces returns the RPC namespaces supported by the endpoint.
func (e Endpoint) Namespaces() ([]string, bool) {
	return metadataStrings(e.EndpointMetadata, MetadataNamespaces)
}

// Concealed reports whether the endpoint url should be hidden in output.
func (e Endpoint) Concealed() bool {
	raw, ok := e.EndpointMetadata.Get(MetadataConceal)
	if !ok {
		return false
	}
	conceal, ok := raw.(bool)
	return ok && conceal
}

func metadataFloat(m Metadata, key string) (float64, bool) {
	raw, ok := m.Get(key)
	if !ok {
		return 0, false
	}
	f, ok := raw.(float64)
	return f, ok
}

func metadataString(m Metadata, key string) (string, bool) {
	raw, ok := m.Get(key)
	if !ok {
		return "", false
	}
	s, ok := raw.(string)
	return s, ok
}

func metadataStrings(m Metadata, key string) ([]string, bool) {
	raw, ok := m.Get(key)
	if !ok {
		return nil, false
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, false
	}

	out := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out[i] = s
	}
	return out, true
}

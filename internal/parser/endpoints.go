// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package parser

import (
	"strings"

	"github.com/MKhiriev/go-mesc/models"
)

// ParseEndpoints parses MESC_ENDPOINTS tokens of the form
// [name[:chain_id]=]url.
//
// The token is split on the first '=' so URLs may carry query strings. A
// token without a name is named after its URL host (see DefaultEndpointName).
// When the same name appears twice the last token wins.
func ParseEndpoints(s string) (map[string]models.Endpoint, error) {
	endpoints := make(map[string]models.Endpoint)

	for _, token := range strings.Fields(s) {
		left, url, found := strings.Cut(token, "=")
		if !found {
			left, url = "", token
		}
		if url == "" {
			return nil, invalidToken(token, "empty url")
		}

		name, rawChainID, hasChainID := strings.Cut(left, ":")
		if name == "" {
			name = DefaultEndpointName(url)
		}
		if name == "" {
			return nil, invalidToken(token, "cannot derive endpoint name from url")
		}

		endpoint := models.Endpoint{
			Name:             name,
			URL:              url,
			EndpointMetadata: models.Metadata{},
		}

		if hasChainID {
			chainID := models.ChainID(rawChainID)
			if !chainID.Valid() {
				return nil, invalidToken(token, "invalid chain id")
			}
			endpoint.ChainID = &chainID
		}

		endpoints[name] = endpoint
	}

	return endpoints, nil
}

// DefaultEndpointName derives an endpoint name from url: the host without
// scheme and path, minus its top-level domain, keeping only the label left
// of it. "https://eth.llamarpc.com/v1" becomes "llamarpc" and
// "http://localhost:8545" stays "localhost:8545".
func DefaultEndpointName(url string) string {
	if _, rest, found := strings.Cut(url, "://"); found {
		url = rest
	}
	host, _, _ := strings.Cut(url, "/")

	if i := strings.LastIndex(host, "."); i >= 0 {
		host = host[:i]
	}
	if i := strings.LastIndex(host, "."); i >= 0 {
		host = host[i+1:]
	}
	return host
}

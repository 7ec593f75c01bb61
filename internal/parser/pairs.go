package parser

import (
	"strings"

	"github.com/MKhiriev/go-mesc/models"
)

// ParsePairs parses whitespace-separated key=value tokens. The last
// duplicate key wins.
func ParsePairs(s string) (map[string]string, error) {
	pairs := make(map[string]string)

	for _, token := range strings.Fields(s) {
		key, value, err := splitPair(token)
		if err != nil {
			return nil, err
		}
		pairs[key] = value
	}

	return pairs, nil
}

// ParseNetworkNames parses MESC_NETWORK_NAMES: name=chain_id pairs, or a
// JSON object mapping names to chain ids when the input starts with '{'.
func ParseNetworkNames(s string) (map[string]models.ChainID, error) {
	trimmed := strings.TrimSpace(s)
	if strings.HasPrefix(trimmed, "{") {
		return parseNetworkNamesJSON(trimmed)
	}

	pairs, err := ParsePairs(trimmed)
	if err != nil {
		return nil, err
	}

	names := make(map[string]models.ChainID, len(pairs))
	for name, value := range pairs {
		chainID := models.ChainID(value)
		if !chainID.Valid() {
			return nil, invalidToken(name+"="+value, "invalid chain id")
		}
		names[name] = chainID
	}

	return names, nil
}

// ParseNetworkDefaults parses MESC_NETWORK_DEFAULTS: chain_id=endpoint_name
// pairs.
func ParseNetworkDefaults(s string) (map[models.ChainID]string, error) {
	pairs, err := ParsePairs(s)
	if err != nil {
		return nil, err
	}

	defaults := make(map[models.ChainID]string, len(pairs))
	for key, endpoint := range pairs {
		chainID := models.ChainID(key)
		if !chainID.Valid() {
			return nil, invalidToken(key+"="+endpoint, "invalid chain id")
		}
		defaults[chainID] = endpoint
	}

	return defaults, nil
}

func parseNetworkNamesJSON(s string) (map[string]models.ChainID, error) {
	doc, err := ParseJSON(s)
	if err != nil {
		return nil, err
	}

	object, ok := doc.(map[string]any)
	if !ok {
		return nil, invalidToken(s, "network names must be a JSON object")
	}

	names := make(map[string]models.ChainID, len(object))
	for name, raw := range object {
		value, ok := raw.(string)
		if !ok {
			return nil, invalidToken(name, "chain id must be a string")
		}
		chainID := models.ChainID(value)
		if name == "" || !chainID.Valid() {
			return nil, invalidToken(name+"="+value, "invalid network name entry")
		}
		names[name] = chainID
	}

	return names, nil
}

func splitPair(token string) (string, string, error) {
	key, value, found := strings.Cut(token, "=")
	switch {
	case !found:
		return "", "", invalidToken(token, "missing '='")
	case key == "":
		return "", "", invalidToken(token, "empty key")
	case value == "":
		return "", "", invalidToken(token, "empty value")
	}
	return key, value, nil
}

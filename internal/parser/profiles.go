package parser

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-mesc/models"
)

// Keys accepted after the profile name in MESC_PROFILES tokens.
const (
	profileKeyDefaultEndpoint = "default_endpoint"
	profileKeyNetworkDefaults = "network_defaults"
	profileKeyMetadata        = "profile_metadata"
	profileKeyUseMESC         = "use_mesc"
)

// ParseProfiles parses MESC_PROFILES tokens of the form
// profile.key[.sub]=value. Tokens for the same profile accumulate into one
// [models.Profile].
func ParseProfiles(s string) (map[string]models.Profile, error) {
	profiles := make(map[string]models.Profile)

	for _, token := range strings.Fields(s) {
		path, value, err := splitPair(token)
		if err != nil {
			return nil, err
		}

		parts := strings.SplitN(path, ".", 3)
		if len(parts) < 2 || parts[0] == "" {
			return nil, invalidToken(token, "expected profile.key[.sub]")
		}

		name := parts[0]
		profile, ok := profiles[name]
		if !ok {
			profile = models.Profile{
				Name:            name,
				NetworkDefaults: map[models.ChainID]string{},
				ProfileMetadata: models.Metadata{},
			}
		}

		if err = applyProfileToken(&profile, token, parts[1:], value); err != nil {
			return nil, err
		}
		profiles[name] = profile
	}

	return profiles, nil
}

func applyProfileToken(profile *models.Profile, token string, keys []string, value string) error {
	key := keys[0]
	sub := ""
	if len(keys) == 2 {
		sub = keys[1]
	}

	switch key {
	case profileKeyDefaultEndpoint:
		if len(keys) != 1 {
			return invalidToken(token, "default_endpoint takes no sub key")
		}
		profile.DefaultEndpoint = &value
	case profileKeyNetworkDefaults:
		chainID := models.ChainID(sub)
		if !chainID.Valid() {
			return invalidToken(token, "network_defaults needs a valid chain id")
		}
		profile.NetworkDefaults[chainID] = value
	case profileKeyMetadata:
		if sub == "" {
			return invalidToken(token, "profile_metadata needs a key")
		}
		profile.ProfileMetadata[sub] = value
	case profileKeyUseMESC:
		if len(keys) != 1 {
			return invalidToken(token, "use_mesc takes no sub key")
		}
		useMESC, err := strconv.ParseBool(value)
		if err != nil {
			return invalidToken(token, "use_mesc must be a boolean")
		}
		profile.UseMESC = &useMESC
	default:
		return invalidToken(token, "unknown profile key "+strconv.Quote(key))
	}

	return nil
}

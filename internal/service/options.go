package service

import (
	"reflect"
	"strings"

	"github.com/MKhiriev/go-mesc/models"
)

// QueryOption scopes a lookup.
type QueryOption func(*queryOptions)

type queryOptions struct {
	profile string
}

// WithProfile scopes a lookup to the named profile. An empty name means the
// global scope.
func WithProfile(name string) QueryOption {
	return func(o *queryOptions) {
		o.profile = name
	}
}

func applyOptions(opts []QueryOption) queryOptions {
	var o queryOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Filter selects endpoints in FindEndpoints. Filters are AND-combined.
type Filter func(models.Endpoint) bool

// ChainIDIs matches endpoints whose chain id is literally chainID.
func ChainIDIs(chainID models.ChainID) Filter {
	return func(e models.Endpoint) bool {
		return e.ChainID != nil && *e.ChainID == chainID
	}
}

// ChainIDEquivalent matches endpoints whose chain id denotes the same
// integer as chainID ("1" matches "0x1").
func ChainIDEquivalent(chainID models.ChainID) Filter {
	return func(e models.Endpoint) bool {
		return e.ChainID != nil && e.ChainID.Equivalent(chainID)
	}
}

// NameContains matches endpoints whose name contains substr.
func NameContains(substr string) Filter {
	return func(e models.Endpoint) bool {
		return strings.Contains(e.Name, substr)
	}
}

// URLContains matches endpoints whose URL contains substr.
func URLContains(substr string) Filter {
	return func(e models.Endpoint) bool {
		return strings.Contains(e.URL, substr)
	}
}

// MetadataEquals matches endpoints whose metadata holds value under key.
// Values are compared as decoded JSON, so numbers must be float64.
func MetadataEquals(key string, value any) Filter {
	return func(e models.Endpoint) bool {
		got, ok := e.EndpointMetadata.Get(key)
		return ok && reflect.DeepEqual(got, value)
	}
}

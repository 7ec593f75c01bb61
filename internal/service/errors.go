package service

import (
	"errors"
	"fmt"
)

var (
	// ErrMescDisabled is returned by every query on a disabled store.
	ErrMescDisabled = errors.New("mesc is disabled")
	// ErrMissingEndpoint is matched by every [*MissingEndpointError].
	ErrMissingEndpoint = errors.New("missing endpoint")
)

// MissingEndpointError reports a reference to an endpoint name that is not
// present in endpoints.
type MissingEndpointError struct {
	// Name is the endpoint name that could not be found.
	Name string
	// Reference is the configuration path holding the name, e.g.
	// "network_defaults.1". Empty for direct lookups.
	Reference string
}

func (e *MissingEndpointError) Error() string {
	if e.Reference == "" {
		return fmt.Sprintf("%s: %q", ErrMissingEndpoint, e.Name)
	}
	return fmt.Sprintf("%s: %q referenced by %s", ErrMissingEndpoint, e.Name, e.Reference)
}

// Is reports whether target is [ErrMissingEndpoint].
func (e *MissingEndpointError) Is(target error) bool {
	return target == ErrMissingEndpoint
}

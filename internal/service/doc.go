// Package service implements read-only queries over a resolved MESC store.
//
// All methods report ErrMescDisabled when the store is disabled. A lookup
// with nothing configured at the requested scope returns (nil, nil); a
// configured name that is missing from endpoints returns a
// *MissingEndpointError. Returned values are deep copies.
package service

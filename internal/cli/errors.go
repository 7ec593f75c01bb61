package cli

import "errors"

// ErrNoEndpoint is returned by "url" and "endpoint" when the query has no
// value.
var ErrNoEndpoint = errors.New("no endpoint found")

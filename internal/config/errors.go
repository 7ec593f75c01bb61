package config

import "errors"

// Validation errors returned by [Sources.validate].
var (
	// ErrInvalidLogLevel indicates a MESC_LOG_LEVEL or --log-level value
	// that zerolog does not recognise.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidNetworkDefaultsPolicy indicates a policy other than
	// "replace" or "merge".
	ErrInvalidNetworkDefaultsPolicy = errors.New("invalid network defaults policy")
)

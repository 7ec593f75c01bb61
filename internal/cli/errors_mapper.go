package cli

import (
	"errors"

	"github.com/MKhiriev/go-mesc/internal/config"
	"github.com/MKhiriev/go-mesc/internal/parser"
	"github.com/MKhiriev/go-mesc/internal/resolver"
	"github.com/MKhiriev/go-mesc/internal/service"
	"github.com/MKhiriev/go-mesc/internal/validators"
)

// Process exit codes.
const (
	ExitOK              = 0
	ExitFailure         = 1
	ExitInvalidConfig   = 2
	ExitDisabled        = 3
	ExitMissingEndpoint = 4
)

var errorExitCodeMap = map[error]int{
	service.ErrMescDisabled:    ExitDisabled,
	service.ErrMissingEndpoint: ExitMissingEndpoint,
	ErrNoEndpoint:              ExitMissingEndpoint,

	validators.ErrSchemaValidation: ExitInvalidConfig,
	validators.ErrIntegrity:        ExitInvalidConfig,
	parser.ErrInvalidOverride:      ExitInvalidConfig,
	parser.ErrMalformedJSON:        ExitInvalidConfig,
	resolver.ErrMissingSource:      ExitInvalidConfig,
	resolver.ErrInvalidMode:        ExitInvalidConfig,
	resolver.ErrInvalidPolicy:      ExitInvalidConfig,

	config.ErrInvalidLogLevel:              ExitInvalidConfig,
	config.ErrInvalidNetworkDefaultsPolicy: ExitInvalidConfig,
}

func exitCodeFromError(err error) int {
	if err == nil {
		return ExitOK
	}
	for target, code := range errorExitCodeMap {
		if errors.Is(err, target) {
			return code
		}
	}
	return ExitFailure
}

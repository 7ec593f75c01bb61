package service

import (
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-mesc/internal/logger"
	"github.com/MKhiriev/go-mesc/models"
)

// QueryLoggingService logs every query at debug level and failed queries at
// warn level.
type QueryLoggingService struct {
	inner  QueryService
	logger *logger.Logger
}

// NewQueryLoggingService returns a wrapper that logs through l.
func NewQueryLoggingService(l *logger.Logger) QueryServiceWrapper {
	return &QueryLoggingService{logger: logger.OrNop(l)}
}

func (s *QueryLoggingService) Wrap(inner QueryService) QueryService {
	s.inner = inner
	return s
}

func (s *QueryLoggingService) GetDefaultEndpoint(opts ...QueryOption) (*models.Endpoint, error) {
	endpoint, err := s.inner.GetDefaultEndpoint(opts...)
	s.logEndpoint("GetDefaultEndpoint", opts, endpoint, err, nil)
	return endpoint, err
}

func (s *QueryLoggingService) GetEndpointByName(name string) (*models.Endpoint, error) {
	endpoint, err := s.inner.GetEndpointByName(name)
	s.logEndpoint("GetEndpointByName", nil, endpoint, err, func(e *zerolog.Event) {
		e.Str("name", name)
	})
	return endpoint, err
}

func (s *QueryLoggingService) GetEndpointByNetwork(chainID models.ChainID, opts ...QueryOption) (*models.Endpoint, error) {
	endpoint, err := s.inner.GetEndpointByNetwork(chainID, opts...)
	s.logEndpoint("GetEndpointByNetwork", opts, endpoint, err, func(e *zerolog.Event) {
		e.Str("chain_id", chainID.String())
	})
	return endpoint, err
}

func (s *QueryLoggingService) GetEndpointByQuery(query string, opts ...QueryOption) (*models.Endpoint, error) {
	endpoint, err := s.inner.GetEndpointByQuery(query, opts...)
	s.logEndpoint("GetEndpointByQuery", opts, endpoint, err, func(e *zerolog.Event) {
		e.Str("query", query)
	})
	return endpoint, err
}

func (s *QueryLoggingService) FindEndpoints(filters ...Filter) ([]models.Endpoint, error) {
	endpoints, err := s.inner.FindEndpoints(filters...)
	if err != nil {
		s.logger.Warn().Err(err).Str("method", "FindEndpoints").Msg("query failed")
		return endpoints, err
	}

	s.logger.Debug().
		Str("method", "FindEndpoints").
		Int("filters", len(filters)).
		Int("results", len(endpoints)).
		Msg("query served")
	return endpoints, nil
}

func (s *QueryLoggingService) GetGlobalMetadata(opts ...QueryOption) (models.Metadata, error) {
	metadata, err := s.inner.GetGlobalMetadata(opts...)
	if err != nil {
		s.logger.Warn().Err(err).Str("method", "GetGlobalMetadata").Msg("query failed")
		return metadata, err
	}

	s.logger.Debug().
		Str("method", "GetGlobalMetadata").
		Str("profile", applyOptions(opts).profile).
		Int("keys", len(metadata)).
		Msg("query served")
	return metadata, nil
}

func (s *QueryLoggingService) GetDefaults(opts ...QueryOption) (*Defaults, error) {
	defaults, err := s.inner.GetDefaults(opts...)
	if err != nil {
		s.logger.Warn().Err(err).Str("method", "GetDefaults").Msg("query failed")
		return defaults, err
	}

	s.logger.Debug().
		Str("method", "GetDefaults").
		Str("profile", applyOptions(opts).profile).
		Msg("query served")
	return defaults, nil
}

func (s *QueryLoggingService) Snapshot() (*models.RPCConfig, error) {
	cfg, err := s.inner.Snapshot()
	if err != nil {
		s.logger.Warn().Err(err).Str("method", "Snapshot").Msg("query failed")
	}
	return cfg, err
}

func (s *QueryLoggingService) Status() Status {
	status := s.inner.Status()
	s.logger.Debug().
		Str("method", "Status").
		Str("resolution_id", status.ResolutionID).
		Bool("enabled", status.Enabled).
		Msg("query served")
	return status
}

func (s *QueryLoggingService) logEndpoint(method string, opts []QueryOption, endpoint *models.Endpoint, err error, fields func(*zerolog.Event)) {
	var event *zerolog.Event
	if err != nil {
		event = s.logger.Warn().Err(err)
	} else {
		event = s.logger.Debug()
	}

	event = event.Str("method", method)
	if profile := applyOptions(opts).profile; profile != "" {
		event = event.Str("profile", profile)
	}
	if fields != nil {
		fields(event)
	}

	switch {
	case err != nil:
		event.Msg("query failed")
	case endpoint == nil:
		event.Msg("query returned no value")
	default:
		event.Str("endpoint", endpoint.Name).Msg("query served")
	}
}

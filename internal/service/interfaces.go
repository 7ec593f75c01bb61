package service

import "github.com/MKhiriev/go-mesc/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// QueryService answers endpoint lookups over one store.
type QueryService interface {
	GetDefaultEndpoint(opts ...QueryOption) (*models.Endpoint, error)
	GetEndpointByName(name string) (*models.Endpoint, error)
	GetEndpointByNetwork(chainID models.ChainID, opts ...QueryOption) (*models.Endpoint, error)
	GetEndpointByQuery(query string, opts ...QueryOption) (*models.Endpoint, error)
	FindEndpoints(filters ...Filter) ([]models.Endpoint, error)

	GetGlobalMetadata(opts ...QueryOption) (models.Metadata, error)
	GetDefaults(opts ...QueryOption) (*Defaults, error)
	Snapshot() (*models.RPCConfig, error)
	Status() Status
}

// QueryServiceWrapper defines middleware composition for QueryService.
// Implementations wrap an existing QueryService to add behavior such as
// logging.
type QueryServiceWrapper interface {
	Wrap(QueryService) QueryService // returns a decorated QueryService applying additional behavior
}

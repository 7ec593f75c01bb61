package service

import (
	"strings"

	"github.com/MKhiriev/go-mesc/models"
)

// knownNetworks resolves common network names that are not listed in
// network_names.
var knownNetworks = map[string]models.ChainID{
	"ethereum": "1",
	"goerli":   "5",
	"optimism": "10",
	"polygon":  "137",
	"base":     "8453",
	"holesky":  "17000",
	"arbitrum": "42161",
	"sepolia":  "11155111",
}

// KnownNetworkChainID returns the chain id of a well-known network name.
// Matching ignores case.
func KnownNetworkChainID(name string) (models.ChainID, bool) {
	chainID, ok := knownNetworks[strings.ToLower(name)]
	return chainID, ok
}

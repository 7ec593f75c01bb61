package cli

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-mesc/internal/parser"
	"github.com/MKhiriev/go-mesc/internal/service"
	"github.com/MKhiriev/go-mesc/models"
)

type findFlags struct {
	chainID  string
	name     string
	url      string
	metadata []string
	reveal   bool
}

func newFindCommand(a *App) *cobra.Command {
	var f findFlags

	cmd := &cobra.Command{
		Use:   "find",
		Short: "List endpoints matching all given filters",
		Long: `List endpoints sorted by name. Filters are combined with AND.

--chain-id matches numerically, so 1 also finds endpoints configured with 0x1.
--metadata values are decoded as JSON when possible, so rate_limit_rps=50
matches the number 50.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := f.filters()
			if err != nil {
				return err
			}

			endpoints, err := a.service.FindEndpoints(filters...)
			if err != nil {
				return err
			}

			if a.flags.json {
				return writeJSON(a.stdout, endpoints)
			}
			writeTable(a.stdout, endpointHeaders, endpointRows(endpoints, f.reveal))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.chainID, "chain-id", "", "Match the chain id")
	flags.StringVar(&f.name, "name", "", "Match names containing this text")
	flags.StringVar(&f.url, "url", "", "Match URLs containing this text")
	flags.StringArrayVar(&f.metadata, "metadata", nil, "Match a metadata value (key=value, repeatable)")
	flags.BoolVar(&f.reveal, "reveal", false, "Print full URLs")
	return cmd
}

func (f findFlags) filters() ([]service.Filter, error) {
	var filters []service.Filter

	if f.chainID != "" {
		filters = append(filters, service.ChainIDEquivalent(models.ChainID(f.chainID)))
	}
	if f.name != "" {
		filters = append(filters, service.NameContains(f.name))
	}
	if f.url != "" {
		filters = append(filters, service.URLContains(f.url))
	}

	if len(f.metadata) > 0 {
		pairs, err := parser.ParsePairs(strings.Join(f.metadata, " "))
		if err != nil {
			return nil, err
		}
		for key, raw := range pairs {
			filters = append(filters, service.MetadataEquals(key, metadataValue(raw)))
		}
	}

	return filters, nil
}

// metadataValue decodes raw as a JSON scalar, falling back to the string
// itself.
func metadataValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}

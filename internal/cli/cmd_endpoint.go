package cli

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-mesc/models"
)

func newEndpointCommand(a *App) *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "endpoint [query]",
		Short: "Show one endpoint with its metadata",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var query string
			if len(args) == 1 {
				query = args[0]
			}

			endpoint, err := a.lookup(query)
			if err != nil {
				return err
			}

			if a.flags.json {
				return writeJSON(a.stdout, endpoint)
			}
			return writeEndpoint(a, *endpoint, reveal)
		},
	}

	cmd.Flags().BoolVar(&reveal, "reveal", false, "Print the full URL")
	return cmd
}

func writeEndpoint(a *App, e models.Endpoint, reveal bool) error {
	fmt.Fprintln(a.stdout, titleStyle.Render(e.Name))
	writeField(a.stdout, "url", displayURL(e, reveal))
	writeField(a.stdout, "chain id", e.ChainIDString())

	if len(e.EndpointMetadata) == 0 {
		return nil
	}

	rows := make([][]string, 0, len(e.EndpointMetadata))
	for _, key := range slices.Sorted(maps.Keys(e.EndpointMetadata)) {
		value, err := json.Marshal(e.EndpointMetadata[key])
		if err != nil {
			return fmt.Errorf("error encoding metadata %q: %w", key, err)
		}
		if key == models.MetadataAPIKey && !reveal {
			value = []byte(`"` + maskedURL + `"`)
		}
		rows = append(rows, []string{key, string(value)})
	}
	writeTable(a.stdout, []string{"KEY", "VALUE"}, rows)
	return nil
}

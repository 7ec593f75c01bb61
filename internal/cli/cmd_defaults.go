package cli

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"
)

func newDefaultsCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Show the default endpoint and network defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults, err := a.service.GetDefaults(a.queryOptions()...)
			if err != nil {
				return err
			}

			if a.flags.json {
				return writeJSON(a.stdout, defaults)
			}

			if defaults.Profile != "" {
				writeField(a.stdout, "profile", defaults.Profile)
			}
			defaultEndpoint := "-"
			if defaults.DefaultEndpoint != nil {
				defaultEndpoint = *defaults.DefaultEndpoint
			}
			writeField(a.stdout, "default endpoint", defaultEndpoint)

			if len(defaults.NetworkDefaults) == 0 {
				fmt.Fprintln(a.stdout, labelStyle.Render("no network defaults"))
				return nil
			}

			rows := make([][]string, 0, len(defaults.NetworkDefaults))
			for _, chainID := range slices.Sorted(maps.Keys(defaults.NetworkDefaults)) {
				rows = append(rows, []string{chainID.String(), defaults.NetworkDefaults[chainID]})
			}
			writeTable(a.stdout, []string{"CHAIN ID", "ENDPOINT"}, rows)
			return nil
		},
	}
}

package cli

import (
	"github.com/spf13/cobra"
)

func newMetadataCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "metadata",
		Short: "Print global metadata as JSON",
		Long: `Print global_metadata as JSON. With --profile the profile's
profile_metadata is merged on top.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			metadata, err := a.service.GetGlobalMetadata(a.queryOptions()...)
			if err != nil {
				return err
			}
			if metadata == nil {
				return writeJSON(a.stdout, map[string]any{})
			}
			return writeJSON(a.stdout, metadata)
		},
	}
}

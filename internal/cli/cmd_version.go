package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Show build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationSkipResolve: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			info := a.buildInfo
			if a.flags.json {
				return writeJSON(a.stdout, map[string]string{
					"version": info.BuildVersion(),
					"date":    info.BuildDate(),
					"commit":  info.BuildCommit(),
				})
			}

			fmt.Fprintf(a.stdout, "Build version: %s\n", info.BuildVersion())
			fmt.Fprintf(a.stdout, "Build date: %s\n", info.BuildDate())
			fmt.Fprintf(a.stdout, "Build commit: %s\n", info.BuildCommit())
			return nil
		},
	}
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-mesc/internal/validators"
)

func newValidateCommand(a *App) *cobra.Command {
	var checks []string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the resolved configuration for dangling references",
		Long: `Check the resolved configuration for references to missing endpoints,
network defaults pointing at endpoints of another chain, endpoint names that
differ from their keys and duplicate URLs.

Resolution itself accepts all of these; validate exits with status 2 when any
is found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.service.Snapshot()
			if err != nil {
				return err
			}

			issues, err := a.integrityIssues(cmd.Context(), cfg, checks...)
			if err != nil {
				return err
			}

			if a.flags.json {
				if issues == nil {
					issues = []validators.Violation{}
				}
				if err = writeJSON(a.stdout, map[string]any{"valid": len(issues) == 0, "issues": issues}); err != nil {
					return err
				}
			} else if len(issues) == 0 {
				fmt.Fprintln(a.stdout, "configuration is valid")
			} else {
				for _, issue := range issues {
					fmt.Fprintln(a.stdout, issue)
				}
			}

			if len(issues) > 0 {
				return &validators.IntegrityError{Issues: issues}
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&checks, "check", nil,
		"Run only the named checks (default_endpoint, network_defaults, network_default_chains, endpoint_names, endpoint_urls, profiles)")
	return cmd
}

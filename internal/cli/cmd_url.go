package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newURLCommand(a *App) *cobra.Command {
	var copyURL bool

	cmd := &cobra.Command{
		Use:   "url [query]",
		Short: "Print the URL of an endpoint",
		Long: `Print the URL of the endpoint matching query, or of the default endpoint
when no query is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var query string
			if len(args) == 1 {
				query = args[0]
			}

			endpoint, err := a.lookup(query)
			if err != nil {
				return err
			}

			if copyURL {
				if err = a.copyText(endpoint.URL); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
			}

			if a.flags.json {
				return writeJSON(a.stdout, map[string]string{"name": endpoint.Name, "url": endpoint.URL})
			}
			fmt.Fprintln(a.stdout, endpoint.URL)
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyURL, "copy", false, "Copy the URL to the clipboard")
	return cmd
}

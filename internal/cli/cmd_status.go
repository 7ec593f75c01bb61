package cli

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-mesc/internal/service"
	"github.com/MKhiriev/go-mesc/internal/validators"
	"github.com/MKhiriev/go-mesc/models"
)

type statusReport struct {
	Status    service.Status         `json:"status"`
	Endpoints []endpointView         `json:"endpoints"`
	Issues    []validators.Violation `json:"issues"`
}

type endpointView struct {
	Name    string          `json:"name"`
	ChainID *models.ChainID `json:"chain_id"`
	URL     string          `json:"url"`
}

func newStatusCommand(a *App) *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show how the configuration was resolved",
		Long: `Show the mode, the source, the active override variables, the endpoints
and any integrity issues of the resolved configuration.

Endpoint URLs are masked unless --reveal is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := a.statusReport(cmd.Context(), reveal)
			if err != nil {
				return err
			}

			if a.flags.json {
				return writeJSON(a.stdout, report)
			}
			writeStatus(a, report, reveal)
			return nil
		},
	}

	cmd.Flags().BoolVar(&reveal, "reveal", false, "Print full endpoint URLs")
	return cmd
}

func (a *App) statusReport(ctx context.Context, reveal bool) (statusReport, error) {
	report := statusReport{
		Status:    a.service.Status(),
		Endpoints: []endpointView{},
		Issues:    []validators.Violation{},
	}
	if !report.Status.Enabled {
		return report, nil
	}

	cfg, err := a.service.Snapshot()
	if err != nil {
		return report, err
	}

	for _, name := range slices.Sorted(maps.Keys(cfg.Endpoints)) {
		e := cfg.Endpoints[name]
		report.Endpoints = append(report.Endpoints, endpointView{
			Name:    e.Name,
			ChainID: e.ChainID,
			URL:     displayURL(e, reveal),
		})
	}

	issues, err := a.integrityIssues(ctx, cfg)
	if err != nil {
		return report, err
	}
	report.Issues = append(report.Issues, issues...)

	return report, nil
}

// integrityIssues runs the named integrity checks, or all of them. Issues are
// returned as data, not as an error.
func (a *App) integrityIssues(ctx context.Context, cfg *models.RPCConfig, checks ...string) ([]validators.Violation, error) {
	err := a.integrity.Validate(ctx, cfg, checks...)
	if err == nil {
		return nil, nil
	}

	var integrityErr *validators.IntegrityError
	if errors.As(err, &integrityErr) {
		return integrityErr.Issues, nil
	}
	return nil, fmt.Errorf("error checking integrity: %w", err)
}

func writeStatus(a *App, report statusReport, reveal bool) {
	status := report.Status

	fmt.Fprintln(a.stdout, titleStyle.Render("MESC status"))
	writeField(a.stdout, "enabled", fmt.Sprint(status.Enabled))
	writeField(a.stdout, "mode", status.Mode.String())
	if status.Source != "" {
		writeField(a.stdout, "source", status.Source)
	}
	writeField(a.stdout, "resolution", status.ResolutionID)
	if !status.ResolvedAt.IsZero() {
		writeField(a.stdout, "resolved at", status.ResolvedAt.Format(time.RFC3339))
	}
	if len(status.ActiveOverrides) > 0 {
		writeField(a.stdout, "overrides", strings.Join(status.ActiveOverrides, ", "))
	}

	if !status.Enabled {
		return
	}

	defaultEndpoint := status.DefaultEndpoint
	if defaultEndpoint == "" {
		defaultEndpoint = "-"
	}
	writeField(a.stdout, "default endpoint", defaultEndpoint)
	writeField(a.stdout, "profiles", fmt.Sprint(status.Profiles))

	rows := make([][]string, len(report.Endpoints))
	for i, e := range report.Endpoints {
		chainID := "-"
		if e.ChainID != nil {
			chainID = e.ChainID.String()
		}
		rows[i] = []string{e.Name, chainID, e.URL}
	}
	writeTable(a.stdout, endpointHeaders[:3], rows)

	if len(report.Issues) == 0 {
		fmt.Fprintln(a.stdout, labelStyle.Render("no integrity issues"))
		return
	}
	fmt.Fprintln(a.stdout, titleStyle.Render("Integrity issues"))
	for _, issue := range report.Issues {
		fmt.Fprintf(a.stdout, "  - %s\n", issue)
	}
}

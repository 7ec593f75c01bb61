// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-mesc/internal/config"
	"github.com/MKhiriev/go-mesc/internal/logger"
	"github.com/MKhiriev/go-mesc/internal/resolver"
	"github.com/MKhiriev/go-mesc/internal/service"
	"github.com/MKhiriev/go-mesc/internal/validators"
	"github.com/MKhiriev/go-mesc/models"
)

// annotationSkipResolve marks commands that run without a configuration.
const annotationSkipResolve = "mesc/skip-resolve"

// App holds the dependencies shared by all commands.
type App struct {
	stdout io.Writer
	stderr io.Writer

	environ   map[string]string
	buildInfo models.AppBuildInfo
	copyText  func(string) error
	integrity validators.Validator

	flags   rootFlags
	logger  *logger.Logger
	service service.QueryService
}

type rootFlags struct {
	profile string
	json    bool
	sources config.Flags
}

// Option configures an App.
type Option func(*App)

// WithOutput redirects command output and diagnostics.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(a *App) {
		a.stdout = stdout
		a.stderr = stderr
	}
}

// WithEnviron replaces the process environment used for resolution.
func WithEnviron(environ map[string]string) Option {
	return func(a *App) {
		a.environ = environ
	}
}

// WithService skips resolution and serves every query from svc.
func WithService(svc service.QueryService) Option {
	return func(a *App) {
		a.service = svc
	}
}

// WithClipboard replaces the function used by "url --copy".
func WithClipboard(copyText func(string) error) Option {
	return func(a *App) {
		a.copyText = copyText
	}
}

// New constructs an App reading the process environment and writing to the
// standard streams.
func New(buildInfo models.AppBuildInfo, opts ...Option) *App {
	a := &App{
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		buildInfo: buildInfo,
		copyText:  clipboard.WriteAll,
		integrity: validators.NewIntegrityValidator(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.environ == nil {
		a.environ = env.ToMap(os.Environ())
	}
	return a
}

// Run executes the command line args and returns the process exit code.
func (a *App) Run(args []string) int {
	root := a.Command()
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(a.stderr, errorStyle.Render("Error:"), err)
		return exitCodeFromError(err)
	}
	return ExitOK
}

// Command builds a fresh command tree bound to a.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:   "mesc",
		Short: "Resolve and inspect MESC RPC endpoint configuration",
		Long: `mesc reads the MESC configuration from MESC_PATH or MESC_ENV, applies the
MESC_* override variables and answers endpoint queries.

A query is tried as an endpoint name, then as a network name, then as a
chain id.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.prepare,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.flags.profile, "profile", "p", "", "Scope queries to a profile")
	pf.BoolVar(&a.flags.json, "json", false, "Output in JSON format")
	pf.StringVar(&a.flags.sources.EnvFile, "env-file", "", "Read MESC_* variables from a dotenv file")
	pf.StringVar(&a.flags.sources.Mode, "mode", "", "Override MESC_MODE (PATH, ENV or DISABLED)")
	pf.StringVar(&a.flags.sources.Path, "path", "", "Override MESC_PATH")
	pf.StringVar(&a.flags.sources.LogLevel, "log-level", "", "Override MESC_LOG_LEVEL")
	pf.StringVar(&a.flags.sources.NetworkDefaultsPolicy, "network-defaults-policy", "",
		"How MESC_NETWORK_DEFAULTS is applied: replace or merge")

	root.AddCommand(
		newStatusCommand(a),
		newURLCommand(a),
		newEndpointCommand(a),
		newFindCommand(a),
		newDefaultsCommand(a),
		newMetadataCommand(a),
		newValidateCommand(a),
		newVersionCommand(a),
	)

	return root
}

// prepare loads the sources and builds the query service.
func (a *App) prepare(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations[annotationSkipResolve] == "true" {
		return nil
	}

	sources, err := config.Load(a.environ, a.flags.sources)
	if err != nil {
		return fmt.Errorf("error loading configuration sources: %w", err)
	}
	a.logger = logger.NewCLILogger(a.stderr, "mesc", sources.LogLevel)

	if a.service != nil {
		return nil
	}

	st, err := resolver.New(resolver.WithLogger(a.logger)).Resolve(sources)
	if err != nil {
		return fmt.Errorf("error resolving configuration: %w", err)
	}

	a.service = service.NewQueryLoggingService(a.logger).Wrap(service.NewQueryService(st, a.logger))
	return nil
}

// queryOptions returns the scope selected by --profile.
func (a *App) queryOptions() []service.QueryOption {
	if a.flags.profile == "" {
		return nil
	}
	return []service.QueryOption{service.WithProfile(a.flags.profile)}
}

// lookup returns the endpoint for query, or the default endpoint when query
// is empty. No value is reported as ErrNoEndpoint.
func (a *App) lookup(query string) (*models.Endpoint, error) {
	var (
		endpoint *models.Endpoint
		err      error
	)
	if query == "" {
		endpoint, err = a.service.GetDefaultEndpoint(a.queryOptions()...)
	} else {
		endpoint, err = a.service.GetEndpointByQuery(query, a.queryOptions()...)
	}
	if err != nil {
		return nil, err
	}
	if endpoint == nil {
		if query == "" {
			return nil, fmt.Errorf("%w: no default endpoint configured", ErrNoEndpoint)
		}
		return nil, fmt.Errorf("%w for %q", ErrNoEndpoint, query)
	}
	return endpoint, nil
}

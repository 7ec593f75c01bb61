package resolver

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-mesc/internal/config"
	"github.com/MKhiriev/go-mesc/internal/logger"
	"github.com/MKhiriev/go-mesc/internal/store"
	"github.com/MKhiriev/go-mesc/internal/validators"
	"github.com/MKhiriev/go-mesc/models"
)

// Resolver builds stores from sources. It keeps no state between calls.
type Resolver struct {
	schema   *validators.SchemaValidator
	logger   *logger.Logger
	readFile readFileFunc
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for mode and override decisions.
func WithLogger(l *logger.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger.OrNop(l)
	}
}

// New constructs a Resolver.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		schema:   validators.NewSchemaValidator(),
		logger:   logger.Nop(),
		readFile: os.ReadFile,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve runs one full resolution pass. In DISABLED mode the returned store
// is disabled and the overrides are ignored.
func (r *Resolver) Resolve(sources *config.Sources) (*store.Store, error) {
	if sources == nil {
		sources = &config.Sources{}
	}

	id := store.NewID()
	log := &logger.Logger{Logger: r.logger.With().Str("resolution_id", id.String()).Logger()}

	base, mode, source, err := r.ResolveBase(sources)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("mode", mode.String()).Str("source", source).Msg("mode selected")

	info := store.Info{ID: id, Mode: mode, Source: source}
	if base == nil {
		if active := ActiveOverrides(sources.Overrides); len(active) > 0 {
			log.Debug().Strs("ignored", active).Msg("mesc disabled, overrides ignored")
		}
		return store.NewDisabled(info), nil
	}

	policy, err := ParsePolicy(sources.NetworkDefaultsPolicy)
	if err != nil {
		return nil, err
	}

	cfg, err := ApplyOverrides(base, sources.Overrides, Options{
		NetworkDefaultsPolicy: policy,
		Schema:                r.schema,
		Logger:                log,
	})
	if err != nil {
		return nil, fmt.Errorf("error applying overrides: %w", err)
	}

	info.ActiveOverrides = ActiveOverrides(sources.Overrides)
	log.Debug().
		Int("endpoints", len(cfg.Endpoints)).
		Int("profiles", len(cfg.Profiles)).
		Msg("configuration resolved")

	return store.New(cfg, info), nil
}

// ResolveBase selects the mode and loads the base configuration. The
// configuration is nil in DISABLED mode.
func (r *Resolver) ResolveBase(sources *config.Sources) (*models.RPCConfig, models.Mode, string, error) {
	mode, err := SelectMode(sources)
	if err != nil {
		return nil, "", "", err
	}

	switch mode {
	case models.ModePath:
		cfg, path, err := r.loadFromPath(sources.Path)
		if err != nil {
			return nil, mode, path, err
		}
		return cfg, mode, path, nil
	case models.ModeEnv:
		cfg, err := r.loadFromEnv(sources.Env)
		if err != nil {
			return nil, mode, "MESC_ENV", err
		}
		return cfg, mode, "MESC_ENV", nil
	default:
		return nil, models.ModeDisabled, "", nil
	}
}

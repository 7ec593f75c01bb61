package resolver

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-mesc/internal/config"
	"github.com/MKhiriev/go-mesc/models"
)

// ParseMode validates a MESC_MODE value. The empty string means unset and is
// returned as is.
func ParseMode(s string) (models.Mode, error) {
	switch mode := models.Mode(s); mode {
	case models.ModePath, models.ModeEnv, models.ModeDisabled, "":
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// SelectMode returns the explicit mode when set. Otherwise PATH wins when a
// path is configured, then ENV when an inline value is configured, else
// DISABLED.
func SelectMode(sources *config.Sources) (models.Mode, error) {
	mode, err := ParseMode(sources.Mode)
	if err != nil {
		return "", err
	}

	switch {
	case mode != "":
		return mode, nil
	case strings.TrimSpace(sources.Path) != "":
		return models.ModePath, nil
	case strings.TrimSpace(sources.Env) != "":
		return models.ModeEnv, nil
	default:
		return models.ModeDisabled, nil
	}
}

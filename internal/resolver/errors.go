package resolver

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMode is returned for a MESC_MODE value other than PATH, ENV
	// or DISABLED.
	ErrInvalidMode = errors.New("invalid mesc mode")
	// ErrMissingSource is matched by every [*MissingSourceError].
	ErrMissingSource = errors.New("missing configuration source")
	// ErrInvalidPolicy is returned for an unknown network defaults policy.
	ErrInvalidPolicy = errors.New("invalid network defaults policy")
)

// MissingSourceError reports that the selected mode has nothing to read:
// the file of PATH mode does not exist, or the inline value of ENV mode is
// empty.
type MissingSourceError struct {
	Mode   string
	Source string
	Err    error
}

func (e *MissingSourceError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("mode %s: %s", e.Mode, ErrMissingSource)
	}
	return fmt.Sprintf("mode %s: %s %q", e.Mode, ErrMissingSource, e.Source)
}

// Is reports whether target is [ErrMissingSource].
func (e *MissingSourceError) Is(target error) bool {
	return target == ErrMissingSource
}

// Unwrap exposes the underlying cause, typically fs.ErrNotExist.
func (e *MissingSourceError) Unwrap() error {
	return e.Err
}

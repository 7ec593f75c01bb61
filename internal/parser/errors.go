package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOverride is matched by every [*InvalidOverrideError].
	ErrInvalidOverride = errors.New("invalid override")
	// ErrMalformedJSON is returned by [ParseJSON] for input that is not a
	// single well-formed JSON document.
	ErrMalformedJSON = errors.New("malformed json")
)

// InvalidOverrideError describes a token that does not follow its micro-format.
type InvalidOverrideError struct {
	Token  string
	Reason string
}

func (e *InvalidOverrideError) Error() string {
	return fmt.Sprintf("invalid override token %q: %s", e.Token, e.Reason)
}

// Is reports whether target is [ErrInvalidOverride].
func (e *InvalidOverrideError) Is(target error) bool {
	return target == ErrInvalidOverride
}

func invalidToken(token, reason string) error {
	return &InvalidOverrideError{Token: token, Reason: reason}
}

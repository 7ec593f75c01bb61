package validators

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrSchemaValidation is matched by every [*SchemaValidationError].
	ErrSchemaValidation = errors.New("schema validation failed")
	// ErrIntegrity is matched by every [*IntegrityError].
	ErrIntegrity = errors.New("configuration integrity check failed")
)

// Violation is a single problem found at a dotted path inside the document,
// e.g. "endpoints.mainnet.chain_id".
type Violation struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	if v.Path == "" {
		return v.Message
	}
	return v.Path + ": " + v.Message
}

// SchemaValidationError lists every schema violation of a document.
type SchemaValidationError struct {
	Violations []Violation
}

func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrSchemaValidation, joinViolations(e.Violations))
}

// Is reports whether target is [ErrSchemaValidation].
func (e *SchemaValidationError) Is(target error) bool {
	return target == ErrSchemaValidation
}

// IntegrityError lists every referential problem of a resolved configuration.
type IntegrityError struct {
	Issues []Violation
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s: %s", ErrIntegrity, joinViolations(e.Issues))
}

// Is reports whether target is [ErrIntegrity].
func (e *IntegrityError) Is(target error) bool {
	return target == ErrIntegrity
}

func joinViolations(violations []Violation) string {
	parts := make([]string, len(violations))
	for i, v := range violations {
		parts[i] = v.String()
	}
	return strings.Join(parts, "; ")
}

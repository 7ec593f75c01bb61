package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ParseJSON decodes s into the generic encoding/json representation.
// Anything other than exactly one JSON document yields [ErrMalformedJSON].
func ParseJSON(s string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(s))

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}

	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after document", ErrMalformedJSON)
	}

	return doc, nil
}

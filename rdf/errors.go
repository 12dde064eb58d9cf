package rdf

import (
	"errors"
	"fmt"
)

// ParseError represents malformed RDF or desise input for one vocabulary.
type ParseError struct {
	URI    string
	Format string
	err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s as %s: %v", e.URI, e.Format, e.err)
}

func (e *ParseError) Unwrap() error {
	return e.err
}

// NewParseError wraps a decoder error for one vocabulary representation.
func NewParseError(uri, format string, err error) error {
	return &ParseError{URI: uri, Format: format, err: err}
}

// IsParseError returns true when err is (or wraps) a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

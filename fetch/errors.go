package fetch

import (
	"errors"
	"fmt"
)

// Error types for classifying retrieval failures.

// FetchError represents a network or HTTP level failure while retrieving a
// vocabulary representation.
type FetchError struct {
	URI    string
	Status int
	err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: HTTP %d", e.URI, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URI, e.err)
}

func (e *FetchError) Unwrap() error {
	return e.err
}

// NewFetchError wraps a transport error for a vocabulary URI.
func NewFetchError(uri string, err error) error {
	return &FetchError{URI: uri, err: err}
}

// NewHTTPError records a non-success HTTP status for a vocabulary URI.
func NewHTTPError(uri string, status int) error {
	return &FetchError{URI: uri, Status: status}
}

// UnsupportedFormatError means the remote end could not negotiate the
// requested RDF serialization.
type UnsupportedFormatError struct {
	URI     string
	Format  Format
	GotType string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("fetch %s: no %s representation negotiable (got %q)",
		e.URI, e.Format, e.GotType)
}

// IsFetchError returns true when err is (or wraps) a FetchError.
func IsFetchError(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}

// IsUnsupportedFormat returns true when err is (or wraps) an
// UnsupportedFormatError.
func IsUnsupportedFormat(err error) bool {
	var ue *UnsupportedFormatError
	return errors.As(err, &ue)
}

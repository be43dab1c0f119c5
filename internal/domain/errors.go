// Package domain declares the error kinds shared across the service.
//
// Handlers map kinds to HTTP statuses; everything else wraps with context
// and lets the kind travel up via errors.Is.
package domain

import "github.com/cockroachdb/errors"

var (
	// ErrParserUnavailable marks transport or service failure of the
	// language backend. Retryable; the request cannot proceed without
	// parsed filters.
	ErrParserUnavailable = errors.New("query parsing service unavailable")

	// ErrEmbeddingUnavailable marks transport or service failure of the
	// embedding backend. Retryable.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrStore marks a persistent-store failure during a query. Retryable.
	ErrStore = errors.New("property store error")

	// ErrNotFound marks a missing record.
	ErrNotFound = errors.New("property not found")

	// ErrInvalidInput marks a malformed caller request.
	ErrInvalidInput = errors.New("invalid input")
)

// Wrap attaches an error kind and operation context to err.
// Returns nil when err is nil.
func Wrap(kind error, op string, err error) error {
	if err == nil {
		return nil
	}
	return errors.Mark(errors.Wrap(err, op), kind)
}

// IsKind reports whether err carries the given kind.
func IsKind(err, kind error) bool {
	return errors.Is(err, kind)
}

package domain

import "errors"

// Sentinel errors shared between the service, repository, and transport
// layers. Wrap with fmt.Errorf("...: %w", err) so errors.Is keeps working
// across layer boundaries.
var (
	// ErrInvalidInput indicates an empty or malformed URL was supplied.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates no live record exists for the short code.
	ErrNotFound = errors.New("short code not found")

	// ErrCodeConflict indicates a candidate short code is already assigned.
	ErrCodeConflict = errors.New("short code already exists")

	// ErrCodeExhausted indicates creation gave up after the retry bound.
	ErrCodeExhausted = errors.New("exhausted short code generation attempts")

	// ErrStorageUnavailable indicates the persistence layer failed.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// IsNotFound reports whether err is a not-found condition.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsConflict reports whether err indicates a short code collision.
func IsConflict(err error) bool { return errors.Is(err, ErrCodeConflict) }

package shortener

import (
	"context"
)

// Generator defines the interface for generating short codes
type Generator interface {
	// GenerateShortCode produces a candidate short code. Candidates are not
	// guaranteed unique; collisions are detected and retried by the caller.
	GenerateShortCode(ctx context.Context) (string, error)

	// Type returns the type identifier of the generator
	Type() string

	// Close performs cleanup when the generator is no longer needed
	Close() error
}

// Config holds configuration for shortener generators
type Config struct {
	CodeLength int `json:"code_length"` // Length of generated short codes
}

// GeneratorType constants
const (
	TypeRandom = "random"
)

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		CodeLength: DefaultCodeLength,
	}
}

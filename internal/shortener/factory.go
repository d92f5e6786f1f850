package shortener

import (
	"fmt"
)

// maxCodeLength bounds configurable code length; anything longer than 16
// base62 characters overflows the useful code space by many orders of
// magnitude and is almost certainly a flag typo.
const maxCodeLength = 16

// NewGenerator creates a generator from the given configuration
func NewGenerator(config Config) (Generator, error) {
	if config.CodeLength <= 0 {
		return nil, fmt.Errorf("code length must be positive, got %d", config.CodeLength)
	}
	if config.CodeLength > maxCodeLength {
		return nil, fmt.Errorf("code length must be at most %d, got %d", maxCodeLength, config.CodeLength)
	}

	return NewRandomGenerator(config.CodeLength), nil
}

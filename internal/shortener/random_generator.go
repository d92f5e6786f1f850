package shortener

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

const (
	// Base62 characters: 0-9, a-z, A-Z (case sensitive)
	base62Chars = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// DefaultCodeLength is the length of generated short codes
	DefaultCodeLength = 6
)

// RandomGenerator generates short codes by sampling base62 characters
// uniformly at random. Statistical uniformity is the only requirement;
// collisions are handled by the service's retry loop, not avoided here.
type RandomGenerator struct {
	mu         sync.Mutex // rand.Rand is not safe for concurrent use
	rng        *rand.Rand
	codeLength int
}

// NewRandomGenerator creates a random generator seeded from the clock
func NewRandomGenerator(codeLength int) *RandomGenerator {
	return NewRandomGeneratorWithSource(codeLength, rand.NewSource(time.Now().UnixNano()))
}

// NewRandomGeneratorWithSource creates a random generator backed by the
// given source, so tests can supply a deterministic sequence
func NewRandomGeneratorWithSource(codeLength int, src rand.Source) *RandomGenerator {
	if codeLength <= 0 {
		codeLength = DefaultCodeLength
	}
	return &RandomGenerator{
		rng:        rand.New(src),
		codeLength: codeLength,
	}
}

// GenerateShortCode produces a fixed-length code over the base62 alphabet
func (g *RandomGenerator) GenerateShortCode(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	code := make([]byte, g.codeLength)
	for i := range code {
		code[i] = base62Chars[g.rng.Intn(len(base62Chars))]
	}

	return string(code), nil
}

// Type returns the generator type
func (g *RandomGenerator) Type() string {
	return TypeRandom
}

// Close performs cleanup
func (g *RandomGenerator) Close() error {
	return nil
}

// Ensure RandomGenerator implements Generator interface
var _ Generator = (*RandomGenerator)(nil)

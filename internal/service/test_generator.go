package service

import (
	"context"
	"fmt"
)

// TestGenerator is a deterministic generator for testing purposes. With no
// scripted codes it yields test0001, test0002, ...; scripted codes are
// returned first, in order, to drive the collision-retry path.
type TestGenerator struct {
	counter  int
	scripted []string
}

// NewTestGenerator creates a new test generator
func NewTestGenerator() *TestGenerator {
	return &TestGenerator{}
}

// NewScriptedGenerator creates a test generator that returns the given
// codes in order before falling back to counter-based codes
func NewScriptedGenerator(codes ...string) *TestGenerator {
	return &TestGenerator{scripted: codes}
}

// GenerateShortCode returns the next scripted or counter-based code
func (g *TestGenerator) GenerateShortCode(ctx context.Context) (string, error) {
	if len(g.scripted) > 0 {
		code := g.scripted[0]
		g.scripted = g.scripted[1:]
		return code, nil
	}

	g.counter++
	return fmt.Sprintf("test%04d", g.counter), nil
}

// Type returns the generator type
func (g *TestGenerator) Type() string {
	return "test"
}

// Close performs cleanup
func (g *TestGenerator) Close() error {
	return nil
}

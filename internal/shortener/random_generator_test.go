package shortener

import (
	"context"
	"math/rand"
	"strings"
	"testing"
)

func TestRandomGenerator_GenerateShortCode(t *testing.T) {
	generator := NewRandomGenerator(DefaultCodeLength)
	defer generator.Close()

	ctx := context.Background()

	// Generate a batch of codes and verify length and alphabet
	codes := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := generator.GenerateShortCode(ctx)
		if err != nil {
			t.Fatalf("GenerateShortCode failed: %v", err)
		}

		if len(code) != DefaultCodeLength {
			t.Errorf("Expected code length %d, got %d for code %s", DefaultCodeLength, len(code), code)
		}

		for _, char := range code {
			if !strings.ContainsRune(base62Chars, char) {
				t.Errorf("Code %s contains invalid character %c", code, char)
			}
		}

		codes[code] = true
	}

	// With 62^6 possible codes, 100 draws colliding would indicate a broken source
	if len(codes) < 95 {
		t.Errorf("Expected nearly all of 100 generated codes to be distinct, got %d", len(codes))
	}
}

func TestRandomGenerator_DeterministicWithSource(t *testing.T) {
	ctx := context.Background()

	first := NewRandomGeneratorWithSource(DefaultCodeLength, rand.NewSource(42))
	second := NewRandomGeneratorWithSource(DefaultCodeLength, rand.NewSource(42))
	defer first.Close()
	defer second.Close()

	// Identical seeds must yield identical code sequences
	for i := 0; i < 10; i++ {
		a, err := first.GenerateShortCode(ctx)
		if err != nil {
			t.Fatalf("GenerateShortCode failed: %v", err)
		}
		b, err := second.GenerateShortCode(ctx)
		if err != nil {
			t.Fatalf("GenerateShortCode failed: %v", err)
		}
		if a != b {
			t.Errorf("Expected identical sequences from identical seeds, got %s and %s", a, b)
		}
	}
}

func TestRandomGenerator_ConfigurableLength(t *testing.T) {
	ctx := context.Background()

	for _, length := range []int{1, 6, 10, 16} {
		generator := NewRandomGenerator(length)

		code, err := generator.GenerateShortCode(ctx)
		if err != nil {
			t.Fatalf("GenerateShortCode failed: %v", err)
		}
		if len(code) != length {
			t.Errorf("Expected code length %d, got %d", length, len(code))
		}

		generator.Close()
	}
}

func TestRandomGenerator_Type(t *testing.T) {
	generator := NewRandomGenerator(DefaultCodeLength)
	defer generator.Close()

	if generator.Type() != TypeRandom {
		t.Errorf("Expected type %s, got %s", TypeRandom, generator.Type())
	}
}

func TestRandomGenerator_Concurrent(t *testing.T) {
	generator := NewRandomGenerator(DefaultCodeLength)
	defer generator.Close()

	ctx := context.Background()
	done := make(chan error, 20)

	for i := 0; i < 20; i++ {
		go func() {
			for j := 0; j < 50; j++ {
				code, err := generator.GenerateShortCode(ctx)
				if err != nil {
					done <- err
					return
				}
				if len(code) != DefaultCodeLength {
					done <- nil
					return
				}
			}
			done <- nil
		}()
	}

	for i := 0; i < 20; i++ {
		if err := <-done; err != nil {
			t.Fatalf("Concurrent GenerateShortCode failed: %v", err)
		}
	}
}

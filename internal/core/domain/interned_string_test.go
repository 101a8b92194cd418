package domain_test

import (
	"testing"

	"github.com/mosaickit/mosaic/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	is1 := domain.NewInternedString("mosaic://backend/auth")
	is2 := domain.NewInternedString("mosaic://backend/auth")

	// Identical strings must intern to equal values, usable as map keys.
	if is1 != is2 {
		t.Errorf("expected equal interned values for identical strings")
	}

	if is1.String() != "mosaic://backend/auth" {
		t.Errorf("expected String() to return the original value, got %q", is1.String())
	}
}

func TestInternedString_Zero(t *testing.T) {
	var zero domain.InternedString
	if zero.String() != "" {
		t.Errorf("expected empty string for zero value, got %q", zero.String())
	}
}

func TestNewInternedStrings(t *testing.T) {
	values := []string{"mosaic://a", "mosaic://b", "mosaic://a"}

	interned := domain.NewInternedStrings(values)
	if len(interned) != len(values) {
		t.Fatalf("expected %d elements, got %d", len(values), len(interned))
	}
	for i, want := range values {
		if interned[i].String() != want {
			t.Errorf("index %d: expected %q, got %q", i, want, interned[i].String())
		}
	}
	if interned[0] != interned[2] {
		t.Errorf("expected duplicates to intern to equal values")
	}
}

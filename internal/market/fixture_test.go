package market

import (
	"context"
	"reflect"
	"testing"
)

// TestFixtureSource tests the offline market table.
func TestFixtureSource(t *testing.T) {
	t.Parallel()

	s := NewFixtureSource()

	first, err := s.FetchMarkets(context.Background(), "Mobility equipment")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != 5 {
		t.Fatalf("len(rows) = %d, want 5", len(first))
	}

	// Output does not vary with the term.
	second, err := s.FetchMarkets(context.Background(), "completely different")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("fixture rows vary with term: %+v vs %+v", first, second)
	}

	// Callers get a copy, not the shared fixture.
	first[0].Country = "mutated"
	third, err := s.FetchMarkets(context.Background(), "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if third[0].Country != "USA" {
		t.Errorf("fixture table was mutated by a caller: %+v", third[0])
	}
}

package quotes

import (
	"strings"
	"testing"

	"litclock/internal/clock"
	"litclock/internal/quote"
)

func TestStackIsValid(t *testing.T) {
	if err := Stack.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestCorpusLookups(t *testing.T) {
	s := quote.MustNew(Stack)
	if s.Len() != int(Stack.Quantity) {
		t.Fatalf("Len() = %d, want %d", s.Len(), Stack.Quantity)
	}
	dt := clock.Default()
	dt.Hour, dt.Min = 23, 57
	got, ok := s.QuoteFor(dt)
	if !ok || !strings.Contains(got, "three minutes to midnight") {
		t.Fatalf("QuoteFor(23:57) = %q, %v", got, ok)
	}
	dt.Hour, dt.Min = 0, 1
	if _, ok := s.QuoteFor(dt); ok {
		t.Fatalf("QuoteFor(00:01) found a quote")
	}
}

package quote

import (
	"errors"
	"strings"
	"testing"

	"litclock/internal/clock"
	"litclock/internal/geometry"
)

const (
	midnight = "Midnight, and the house held its breath."
	lateOne  = "At three minutes to midnight the last train left without him."
)

func fixture() AssetStack {
	return Pack([]Entry{
		{Key: 1437, Text: lateOne},
		{Key: 0, Text: midnight},
		{Key: 720, Text: "\r\n  Noon.\nThe bells again."},
	})
}

func at(h, m int8) clock.DateTime {
	dt := clock.Default()
	dt.Hour, dt.Min = h, m
	return dt
}

func TestQuoteFor(t *testing.T) {
	s := MustNew(fixture())
	tests := []struct {
		dt   clock.DateTime
		want string
		ok   bool
	}{
		{at(0, 0), midnight, true},
		{at(23, 57), lateOne, true},
		{at(12, 0), "\r\n  Noon.\nThe bells again.", true},
		{at(12, 1), "", false},
		{at(23, 59), "", false},
	}
	for _, tt := range tests {
		got, ok := s.QuoteFor(tt.dt)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("QuoteFor(%s) = %q, %v, want %q, %v", tt.dt.ClockFace(), got, ok, tt.want, tt.ok)
		}
	}
}

func TestKeyFrom(t *testing.T) {
	if got := KeyFrom(at(23, 57)); got != 1437 {
		t.Fatalf("KeyFrom(23:57) = %d, want 1437", got)
	}
	if got := KeyFrom(at(0, 0)); got != 0 {
		t.Fatalf("KeyFrom(00:00) = %d, want 0", got)
	}
}

func TestValidate(t *testing.T) {
	good := fixture()
	if err := good.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	tests := []struct {
		name string
		mod  func(*AssetStack)
	}{
		{"truncated", func(s *AssetStack) { s.Text = s.Text[:len(s.Text)-1] }},
		{"size mismatch", func(s *AssetStack) { s.MaxIndex++ }},
		{"not terminated", func(s *AssetStack) {
			s.Text = append(append([]byte(nil), s.Text[:len(s.Text)-1]...), 'x')
		}},
		{"empty", func(s *AssetStack) { s.Text, s.MaxIndex = nil, 0 }},
		{"quantity", func(s *AssetStack) { s.Quantity++ }},
	}
	for _, tt := range tests {
		s := fixture()
		tt.mod(&s)
		if _, err := New(s); !errors.Is(err, ErrInvalidStack) {
			t.Fatalf("%s: New() error = %v, want ErrInvalidStack", tt.name, err)
		}
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustNew() did not panic")
		}
	}()
	s := fixture()
	s.MaxIndex--
	MustNew(s)
}

func TestLookupRejectsBadAssets(t *testing.T) {
	s := fixture()
	s.Assets = append(s.Assets, Asset{Key: 5, Index: s.MaxIndex + 10})
	s.Quantity++
	srv := MustNew(s)
	if _, ok := srv.Lookup(5); ok {
		t.Fatalf("Lookup() found text outside the blob")
	}

	long := strings.Repeat("a", geometry.MaxTextLen+1)
	srv = MustNew(Pack([]Entry{{Key: 1, Text: long}, {Key: 2, Text: long[:geometry.MaxTextLen]}}))
	if _, ok := srv.Lookup(1); ok {
		t.Fatalf("Lookup() served a %d byte text", len(long))
	}
	if got, ok := srv.Lookup(2); !ok || len(got) != geometry.MaxTextLen {
		t.Fatalf("Lookup() of a %d byte text = %d, %v", geometry.MaxTextLen, len(got), ok)
	}
}

func TestClassification(t *testing.T) {
	for c := 0; c < 256; c++ {
		b := byte(c)
		if got, want := IsDelimiter(b), b == ' ' || b == 0; got != want {
			t.Fatalf("IsDelimiter(%q) = %v", b, got)
		}
		if got, want := IsLineBreak(b), b == '\r' || b == '\n'; got != want {
			t.Fatalf("IsLineBreak(%q) = %v", b, got)
		}
		if got, want := IsEndOfText(b), b == 0; got != want {
			t.Fatalf("IsEndOfText(%q) = %v", b, got)
		}
	}
}

func TestRemoveLeading(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"abc", "abc"},
		{"  abc ", "abc "},
		{"\r\n\x00 abc", "abc"},
		{" \r\n", " \r\n"},
		{"\tabc", "\tabc"},
	}
	for _, tt := range tests {
		if got := RemoveLeading(tt.in); got != tt.want {
			t.Fatalf("RemoveLeading(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

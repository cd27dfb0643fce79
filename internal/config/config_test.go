package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"litclock/internal/fonts"
)

func TestDefault(t *testing.T) {
	c := Default()
	if c.Time.Zone != "Europe/London" || c.Time.SyncAttempts != 3 || c.Time.NTPTimeout != 5*time.Second {
		t.Fatalf("Default().Time = %+v", c.Time)
	}
	if c.Display.Scale != 3 {
		t.Fatalf("Default().Display.Scale = %d, want 3", c.Display.Scale)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
	q, err := c.Styles.Quote.Resolve()
	if err != nil {
		t.Fatalf("quote Resolve() error = %v", err)
	}
	if q.Font != fonts.Basic7x13 || q.Bold != fonts.Basic7x13x2 || q.RowMargin != 1 || q.HomeY != 2 {
		t.Fatalf("quote style = %+v", q)
	}
	cl, err := c.Styles.Clock.Resolve()
	if err != nil {
		t.Fatalf("clock Resolve() error = %v", err)
	}
	if cl.Font != fonts.Basic7x13x8 || cl.Bold != fonts.Basic7x13x8 || cl.HomeX != 8 {
		t.Fatalf("clock style = %+v", cl)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	c, err := Parse(strings.NewReader("time:\n  zone: UTC\n  ntp_server: \"\"\nstyles:\n  clock:\n    home_y: 20\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if c.Time.Zone != "UTC" || c.Time.NTPServer != "" {
		t.Fatalf("Time = %+v", c.Time)
	}
	if c.Time.NTPTimeout != 5*time.Second {
		t.Fatalf("NTPTimeout = %v, default lost", c.Time.NTPTimeout)
	}
	if c.Styles.Clock.HomeY != 20 || c.Styles.Clock.HomeX != 8 || c.Styles.Clock.Font != "basic7x13x8" {
		t.Fatalf("Styles.Clock = %+v", c.Styles.Clock)
	}
}

func TestParseEmpty(t *testing.T) {
	c, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse(\"\") error = %v", err)
	}
	if c != Default() {
		t.Fatalf("Parse(\"\") = %+v, want defaults", c)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
	}{
		{"styles:\n  quote:\n    font: helvetica\n", ErrUnknownFont},
		{"styles:\n  clock:\n    bold: nope\n", ErrUnknownFont},
		{"display:\n  colour: red\n", nil},
		{"time:\n  zone: Nowhere/Special\n", nil},
		{"time:\n  ntp_timeout: soon\n", nil},
		{"display:\n  scale: 0\n", nil},
	}
	for _, tt := range tests {
		_, err := Parse(strings.NewReader(tt.in))
		if err == nil {
			t.Fatalf("Parse(%q) succeeded", tt.in)
		}
		if tt.err != nil && !errors.Is(err, tt.err) {
			t.Fatalf("Parse(%q) error = %v, want %v", tt.in, err, tt.err)
		}
	}
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	if err != nil || c != Default() {
		t.Fatalf("Load(\"\") = %+v, %v", c, err)
	}

	path := filepath.Join(t.TempDir(), "litclock.yaml")
	if err := os.WriteFile(path, []byte("display:\n  scale: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err = Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Display.Scale != 5 {
		t.Fatalf("Display.Scale = %d, want 5", c.Display.Scale)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load(missing) error = %v, want ErrNotExist", err)
	}
}

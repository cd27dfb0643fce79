// Package config loads the clock configuration from YAML.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"litclock/internal/fonts"
	"litclock/internal/layout"
)

// ErrUnknownFont is returned for a style naming a font that is not compiled in.
var ErrUnknownFont = errors.New("config: unknown font")

//go:embed default.yaml
var defaultYAML []byte

type Config struct {
	Display Display `yaml:"display"`
	Time    Time    `yaml:"time"`
	Styles  Styles  `yaml:"styles"`
}

type Display struct {
	Scale int `yaml:"scale"`
}

type Time struct {
	Zone         string        `yaml:"zone"`
	NTPServer    string        `yaml:"ntp_server"`
	NTPTimeout   time.Duration `yaml:"ntp_timeout"`
	SyncAttempts int           `yaml:"sync_attempts"`
}

type Styles struct {
	Quote Style `yaml:"quote"`
	Clock Style `yaml:"clock"`
}

// Style is a layout.Style with fonts given by name.
type Style struct {
	Font       string `yaml:"font"`
	Bold       string `yaml:"bold"`
	HomeX      int    `yaml:"home_x"`
	HomeY      int    `yaml:"home_y"`
	TopMargin  int    `yaml:"top_margin"`
	LeftMargin int    `yaml:"left_margin"`
	OriginX    int    `yaml:"origin_x"`
	OriginY    int    `yaml:"origin_y"`
	RowMargin  int    `yaml:"row_margin"`
}

// Default returns the built-in configuration.
func Default() Config {
	var c Config
	if err := decode(bytes.NewReader(defaultYAML), &c); err != nil {
		panic(fmt.Sprintf("config: default.yaml: %v", err))
	}
	return c
}

// Parse reads YAML from r over the defaults. Unknown keys are an error.
func Parse(r io.Reader) (Config, error) {
	c := Default()
	if err := decode(r, &c); err != nil {
		return Config{}, err
	}
	return c, c.Validate()
}

// Load parses the file at path. An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	c, err := Parse(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func decode(r io.Reader, c *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Validate checks values a YAML decoder cannot.
func (c Config) Validate() error {
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.Display.Scale < 1 {
		return fmt.Errorf("config: display.scale %d < 1", c.Display.Scale)
	}
	if c.Time.SyncAttempts < 0 {
		return fmt.Errorf("config: time.sync_attempts %d < 0", c.Time.SyncAttempts)
	}
	if _, err := c.Styles.Quote.Resolve(); err != nil {
		return fmt.Errorf("styles.quote: %w", err)
	}
	if _, err := c.Styles.Clock.Resolve(); err != nil {
		return fmt.Errorf("styles.clock: %w", err)
	}
	return nil
}

// Location loads the configured time zone; an empty zone is UTC.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Time.Zone)
	if err != nil {
		return nil, fmt.Errorf("config: time.zone: %w", err)
	}
	return loc, nil
}

// Resolve looks up the style's fonts. An empty bold font falls back to the
// regular one.
func (s Style) Resolve() (layout.Style, error) {
	f, ok := fonts.ByName(s.Font)
	if !ok {
		return layout.Style{}, fmt.Errorf("%w %q (have %v)", ErrUnknownFont, s.Font, fonts.Names())
	}
	bold := f
	if s.Bold != "" {
		if bold, ok = fonts.ByName(s.Bold); !ok {
			return layout.Style{}, fmt.Errorf("%w %q (have %v)", ErrUnknownFont, s.Bold, fonts.Names())
		}
	}
	return layout.Style{
		Font:       f,
		Bold:       bold,
		HomeX:      s.HomeX,
		HomeY:      s.HomeY,
		TopMargin:  s.TopMargin,
		LeftMargin: s.LeftMargin,
		OriginX:    s.OriginX,
		OriginY:    s.OriginY,
		RowMargin:  s.RowMargin,
	}, nil
}

//go:build !tinygo

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/pflag"

	"litclock/app"
	"litclock/hal"
	"litclock/internal/config"
	"litclock/internal/quote"
)

func main() {
	var (
		configPath string
		quotesPath string
		at         string
		scale      int
		noNTP      bool
		useStdin   bool
		cfg        hal.HeadlessConfig
	)
	pflag.StringVarP(&configPath, "config", "c", "", "YAML config file (defaults are built in).")
	pflag.StringVarP(&quotesPath, "quotes", "q", "", "Load quotes from a TSV file instead of the built-in corpus.")
	pflag.StringVar(&at, "at", "", "Start the clock at HH:MM today instead of the current time.")
	pflag.IntVar(&scale, "scale", 0, "Window scale factor (overrides display.scale).")
	pflag.BoolVar(&noNTP, "no-ntp", false, "Never query network time.")
	pflag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	pflag.IntVar(&cfg.Hz, "hz", 10, "Tick rate in headless mode.")
	pflag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	pflag.DurationVar(&cfg.Step, "step", 0, "Advance the clock by this much every headless tick.")
	pflag.StringVar(&cfg.SnapshotDir, "snapshots", "", "Write every displayed frame as a BMP into this directory.")
	pflag.BoolVar(&cfg.ASCII, "ascii", false, "Log every displayed frame as text.")
	pflag.BoolVar(&useStdin, "stdin", false, "Read a, b and c button presses from stdin in headless mode.")
	pflag.Parse()

	settings := config.Default()
	if configPath != "" {
		var err error
		if settings, err = config.Load(configPath); err != nil {
			fatal(err)
		}
	}
	if scale > 0 {
		settings.Display.Scale = scale
	}

	appCfg := app.Config{Settings: settings, NoNTP: noNTP}
	if quotesPath != "" {
		stack, err := loadQuotes(quotesPath)
		if err != nil {
			fatal(err)
		}
		appCfg.Quotes = stack
	}

	host := hal.HostConfig{
		NTPServer:  settings.Time.NTPServer,
		NTPTimeout: settings.Time.NTPTimeout,
	}
	if noNTP {
		host.NTPServer = ""
	}
	if at != "" {
		start, err := startAt(at, settings)
		if err != nil {
			fatal(err)
		}
		host.Start = start
	}

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, appCfg)
	}

	if cfg.Enabled {
		cfg.Host = host
		if useStdin {
			cfg.Input = os.Stdin
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fatal(err)
		}
		return
	}

	if err := hal.RunWindow(hal.WindowConfig{Host: host, Scale: settings.Display.Scale}, newApp); err != nil {
		fatal(err)
	}
}

func loadQuotes(path string) (quote.AssetStack, error) {
	f, err := os.Open(path)
	if err != nil {
		return quote.AssetStack{}, err
	}
	defer f.Close()
	entries, warnings, err := quote.ParseTSV(f)
	if err != nil {
		return quote.AssetStack{}, fmt.Errorf("%s: %w", path, err)
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "%s: %s\n", path, w)
	}
	stack := quote.Pack(entries)
	if err := stack.Validate(); err != nil {
		return quote.AssetStack{}, fmt.Errorf("%s: %w", path, err)
	}
	return stack, nil
}

// startAt returns today's date at HH:MM in the configured zone.
func startAt(hhmm string, settings config.Config) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("--at: %w", err)
	}
	loc, err := settings.Location()
	if err != nil {
		loc = time.UTC
	}
	now := time.Now().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

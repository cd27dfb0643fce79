//go:build !tinygo

package hal

import (
	"bufio"
	"context"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Host    HostConfig
	Enabled bool
	Hz      int
	Ticks   uint64
	// Step, when non-zero, advances the clock by this much on every tick so
	// hours of rendering can be replayed quickly.
	Step time.Duration
	// SnapshotDir receives one BMP file per displayed frame.
	SnapshotDir string
	// ASCII logs every displayed frame as text.
	ASCII bool
	// Input, when set, is read line by line; "a", "b" and "c" press buttons.
	Input io.Reader
}

// RunHeadless runs the clock without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	h := newHost(cfg.Host)
	return runHeadless(ctx, h, newApp(h), cfg)
}

func runHeadless(ctx context.Context, h *hostHAL, step func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	if cfg.SnapshotDir != "" {
		if err := os.MkdirAll(cfg.SnapshotDir, 0o755); err != nil {
			return err
		}
	}
	if cfg.Input != nil {
		go readButtons(cfg.Input, h.buttons)
	}

	t := time.NewTicker(d)
	defer t.Stop()

	var (
		tick uint64
		seen uint64
	)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			if n := h.panel.Updates(); n != seen {
				seen = n
				if err := emitFrame(h, n, cfg); err != nil {
					return err
				}
			}
			if cfg.Step > 0 {
				h.clock.advance(cfg.Step)
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

func emitFrame(h *hostHAL, n uint64, cfg HeadlessConfig) error {
	if cfg.ASCII {
		h.logger.WriteLineString(fmt.Sprintf("frame %d at %s", n, h.clock.Now().Format(time.TimeOnly)))
		h.logger.WriteLineString(strings.TrimRight(h.panel.ASCII(), "\n"))
	}
	if cfg.SnapshotDir == "" {
		return nil
	}
	path := filepath.Join(cfg.SnapshotDir, fmt.Sprintf("frame-%04d.bmp", n))
	if err := writeBMP(path, h.panel); err != nil {
		return fmt.Errorf("snapshot %s: %w", path, err)
	}
	return nil
}

var monoPalette = color.Palette{color.White, color.Black}

// snapshot returns the visible frame as a two colour image.
func snapshot(p *memPanel) *image.Paletted {
	w, h := p.Size()
	img := image.NewPaletted(image.Rect(0, 0, w, h), monoPalette)
	p.each(func(x, y int, inked bool) {
		if inked {
			img.SetColorIndex(x, y, 1)
		}
	})
	return img
}

func writeBMP(path string, p *memPanel) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := bmp.Encode(f, snapshot(p)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func readButtons(r io.Reader, b *hostButtons) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		switch strings.ToLower(strings.TrimSpace(sc.Text())) {
		case "a", "1":
			b.press(ButtonA)
		case "b", "2":
			b.press(ButtonB)
		case "c", "3":
			b.press(ButtonC)
		}
	}
}

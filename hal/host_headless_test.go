//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/image/bmp"
)

func TestRunHeadlessSnapshots(t *testing.T) {
	dir := t.TempDir()
	start := time.Date(2023, 1, 1, 23, 57, 0, 0, time.UTC)
	h := newHost(HostConfig{Start: start})

	var minutes []int
	step := func() error {
		now := h.Clock().Now()
		minutes = append(minutes, now.Minute())
		d := h.Display()
		d.Clear()
		d.Set(now.Minute(), 0)
		return d.Update()
	}
	cfg := HeadlessConfig{Hz: 1000, Ticks: 3, Step: time.Minute, SnapshotDir: dir}
	if err := runHeadless(context.Background(), h, step, cfg); err != nil {
		t.Fatalf("runHeadless() error = %v", err)
	}
	if len(minutes) != 3 || minutes[0] != 57 || minutes[2] != 59 {
		t.Fatalf("minutes = %v, want [57 58 59]", minutes)
	}

	files, _ := filepath.Glob(filepath.Join(dir, "frame-*.bmp"))
	if len(files) != 3 {
		t.Fatalf("snapshots = %v, want 3 files", files)
	}
	f, err := os.Open(filepath.Join(dir, "frame-0003.bmp"))
	if err != nil {
		t.Fatalf("open snapshot: %v", err)
	}
	defer f.Close()
	img, err := bmp.Decode(f)
	if err != nil {
		t.Fatalf("bmp.Decode() error = %v", err)
	}
	if r, _, _, _ := img.At(59, 0).RGBA(); r != 0 {
		t.Fatalf("pixel (59,0) is not ink")
	}
	if r, _, _, _ := img.At(58, 0).RGBA(); r == 0 {
		t.Fatalf("pixel (58,0) is ink")
	}
}

func TestRunHeadlessStepError(t *testing.T) {
	h := newHost(HostConfig{})
	boom := errors.New("boom")
	err := runHeadless(context.Background(), h, func() error { return boom }, HeadlessConfig{Hz: 1000})
	if !errors.Is(err, boom) {
		t.Fatalf("runHeadless() error = %v, want %v", err, boom)
	}
}

func TestRunHeadlessCancel(t *testing.T) {
	h := newHost(HostConfig{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := runHeadless(ctx, h, nil, HeadlessConfig{Hz: 1}); !errors.Is(err, context.Canceled) {
		t.Fatalf("runHeadless() error = %v, want context.Canceled", err)
	}
}

func TestReadButtons(t *testing.T) {
	b := newHostButtons()
	readButtons(strings.NewReader("a\nx\n B \n3\n"), b)
	want := []Button{ButtonA, ButtonB, ButtonC}
	for _, w := range want {
		select {
		case got := <-b.Events():
			if got != w {
				t.Fatalf("event = %v, want %v", got, w)
			}
		default:
			t.Fatalf("missing event %v", w)
		}
	}
}

func TestNullNetworkTime(t *testing.T) {
	if _, err := New().NetworkTime().Query(context.Background()); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("Query() error = %v, want ErrNotImplemented", err)
	}
}

package hal

import (
	"strings"
	"testing"
	"time"
)

func TestMemPanelUpdatePublishesFrame(t *testing.T) {
	p := newMemPanel(16, 8)
	p.Set(3, 2)
	if p.Inked(3, 2) {
		t.Fatalf("Inked(3, 2) before Update = true")
	}
	if err := p.Update(); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if !p.Inked(3, 2) {
		t.Fatalf("Inked(3, 2) after Update = false")
	}
	if p.Inked(2, 3) {
		t.Fatalf("Inked(2, 3) = true, want false")
	}

	p.Clear()
	if !p.Inked(3, 2) {
		t.Fatalf("Clear() changed the visible frame")
	}
	_ = p.Update()
	if p.Inked(3, 2) {
		t.Fatalf("Inked(3, 2) after Clear+Update = true")
	}
	if got := p.Updates(); got != 2 {
		t.Fatalf("Updates() = %d, want 2", got)
	}
}

func TestMemPanelIgnoresOutOfRange(t *testing.T) {
	p := newMemPanel(16, 8)
	for _, xy := range [][2]int{{-1, 0}, {0, -1}, {16, 0}, {0, 8}, {1000, 1000}} {
		p.Set(xy[0], xy[1])
	}
	_ = p.Update()
	if strings.Contains(p.ASCII(), "#") {
		t.Fatalf("out of range Set drew a pixel:\n%s", p.ASCII())
	}
}

func TestMemPanelASCII(t *testing.T) {
	p := newMemPanel(8, 2)
	p.Set(0, 0)
	p.Set(7, 1)
	_ = p.Update()
	want := "#.......\n.......#\n"
	if got := p.ASCII(); got != want {
		t.Fatalf("ASCII() = %q, want %q", got, want)
	}
}

func TestOffsetClock(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	src := base
	c := &offsetClock{now: func() time.Time { return src }}

	want := time.Date(2023, 1, 1, 23, 57, 0, 0, time.UTC)
	c.Set(want)
	if got := c.Now(); !got.Equal(want) {
		t.Fatalf("Now() = %v, want %v", got, want)
	}
	src = src.Add(90 * time.Second)
	if got := c.Now(); !got.Equal(want.Add(90 * time.Second)) {
		t.Fatalf("Now() after 90s = %v", got)
	}
	c.advance(time.Minute)
	if got := c.Now(); !got.Equal(want.Add(150 * time.Second)) {
		t.Fatalf("Now() after advance = %v", got)
	}
}

func TestButtonString(t *testing.T) {
	tests := map[Button]string{ButtonA: "A", ButtonB: "B", ButtonC: "C", Button(0): "?"}
	for b, want := range tests {
		if got := b.String(); got != want {
			t.Fatalf("Button(%d).String() = %q, want %q", b, got, want)
		}
	}
}

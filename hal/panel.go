package hal

import (
	"strings"
	"sync"

	"tinygo.org/x/drivers/pixel"
)

var (
	paper = pixel.NewMonochrome(0xff, 0xff, 0xff)
	ink   = pixel.NewMonochrome(0, 0, 0)
)

// memPanel is an in-memory 1-bit panel. Set draws into a pending image and
// Update copies it to the visible one, so readers only ever see whole frames.
type memPanel struct {
	mu      sync.Mutex
	pending pixel.Image[pixel.Monochrome]
	visible pixel.Image[pixel.Monochrome]
	updates uint64
}

func newMemPanel(width, height int) *memPanel {
	p := &memPanel{
		pending: pixel.NewImage[pixel.Monochrome](width, height),
		visible: pixel.NewImage[pixel.Monochrome](width, height),
	}
	p.pending.FillSolidColor(paper)
	p.visible.FillSolidColor(paper)
	return p
}

func (p *memPanel) Size() (int, int) { return p.pending.Size() }

func (p *memPanel) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pending.FillSolidColor(paper)
}

func (p *memPanel) Set(x, y int) {
	w, h := p.pending.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pending.Set(x, y, ink)
}

func (p *memPanel) Update() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	copy(p.visible.RawBuffer(), p.pending.RawBuffer())
	p.updates++
	return nil
}

// Updates returns the number of frames made visible so far.
func (p *memPanel) Updates() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.updates
}

// Inked reports whether the visible pixel at (x, y) is ink.
func (p *memPanel) Inked(x, y int) bool {
	w, h := p.visible.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visible.Get(x, y) == ink
}

// each calls fn for every pixel of the visible frame, row by row.
func (p *memPanel) each(fn func(x, y int, inked bool)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	w, h := p.visible.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			fn(x, y, p.visible.Get(x, y) == ink)
		}
	}
}

// ASCII renders the visible frame with '#' for ink and '.' for paper.
func (p *memPanel) ASCII() string {
	w, _ := p.Size()
	var sb strings.Builder
	p.each(func(x, y int, inked bool) {
		if inked {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('.')
		}
		if x == w-1 {
			sb.WriteByte('\n')
		}
	})
	return sb.String()
}

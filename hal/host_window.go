//go:build !tinygo && cgo

package hal

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"litclock/internal/buildinfo"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Host  HostConfig
	Scale int
}

// RunWindow starts a desktop window that shows the panel and maps the A, B
// and C keys (or 1, 2, 3) to the panel buttons. It blocks until the window
// closes.
func RunWindow(cfg WindowConfig, newApp func(HAL) func() error) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 3
	}
	h := newHost(cfg.Host)
	step := newApp(h)

	w, ht := h.panel.Size()
	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("litclock (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(w*cfg.Scale, ht*cfg.Scale)
	ebiten.SetTPS(30)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *hostHAL
	img   *image.RGBA
	fbImg *ebiten.Image
	seen  uint64
	step  func() error
}

var buttonKeys = []struct {
	btn  Button
	keys []ebiten.Key
}{
	{ButtonA, []ebiten.Key{ebiten.KeyA, ebiten.Key1}},
	{ButtonB, []ebiten.Key{ebiten.KeyB, ebiten.Key2}},
	{ButtonC, []ebiten.Key{ebiten.KeyC, ebiten.Key3}},
}

func (g *hostGame) pollButtons() {
	for _, bk := range buttonKeys {
		for _, k := range bk.keys {
			if inpututil.IsKeyJustPressed(k) {
				g.h.buttons.press(bk.btn)
			}
		}
	}
}

func (g *hostGame) Update() error {
	g.pollButtons()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	p := g.h.panel
	w, h := p.Size()
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, w, h))
		g.fbImg = ebiten.NewImage(w, h)
	}

	if n := p.Updates(); n != g.seen || g.seen == 0 {
		g.seen = n
		dst := g.img.Pix
		p.each(func(x, y int, inked bool) {
			v := byte(0xFF)
			if inked {
				v = 0x10
			}
			j := (y*w + x) * 4
			dst[j+0] = v
			dst[j+1] = v
			dst[j+2] = v
			dst[j+3] = 0xFF
		})
		g.fbImg.WritePixels(g.img.Pix)
	}
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.panel.Size()
}

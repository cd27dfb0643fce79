//go:build tinygo && baremetal

package hal

import (
	"image/color"
	"machine"
	"time"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/uc8151"

	"litclock/internal/geometry"
)

type tinyGoHAL struct {
	logger  *uartLogger
	panel   *inkyPanel
	buttons *pinButtons
	clock   *offsetClock
	ntp     NetworkTime
}

// New returns a Pico + Pico Inky Pack HAL implementation.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// Panel: UC8151 on SPI0, CS GP17, DC GP20, SCK GP18, MOSI GP19, RST GP21, BUSY GP26.
// Buttons: A GP12, B GP13, C GP14, active low.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 12000000,
		SCK:       machine.GP18,
		SDO:       machine.GP19,
	})
	dev := uc8151.New(machine.SPI0, machine.GP17, machine.GP20, machine.GP21, machine.GP26)
	dev.Configure(uc8151.Config{
		Width:    int16(geometry.Height),
		Height:   int16(geometry.Width),
		Rotation: drivers.Rotation270,
		Speed:    uc8151.MEDIUM,
		Blocking: true,
	})
	dev.ClearBuffer()
	dev.ClearDisplay()

	return &tinyGoHAL{
		logger:  &uartLogger{uart: uart},
		panel:   &inkyPanel{dev: &dev},
		buttons: newPinButtons(map[machine.Pin]Button{machine.GP12: ButtonA, machine.GP13: ButtonB, machine.GP14: ButtonC}),
		clock:   &offsetClock{now: time.Now},
		ntp:     nullNetworkTime{},
	}
}

func (h *tinyGoHAL) Logger() Logger           { return h.logger }
func (h *tinyGoHAL) Display() DisplayDriver   { return h.panel }
func (h *tinyGoHAL) Buttons() Buttons         { return h.buttons }
func (h *tinyGoHAL) Clock() Clock             { return h.clock }
func (h *tinyGoHAL) NetworkTime() NetworkTime { return h.ntp }

var inkRGBA = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// inkyPanel drives the UC8151. The driver treats any non-black colour as ink.
type inkyPanel struct {
	dev *uc8151.Device
}

func (p *inkyPanel) Clear() { p.dev.ClearBuffer() }

func (p *inkyPanel) Set(x, y int) {
	if x < 0 || y < 0 || x > int(geometry.MaxX) || y > int(geometry.MaxYBits) {
		return
	}
	p.dev.SetPixel(int16(x), int16(y), inkRGBA)
}

func (p *inkyPanel) Update() error { return p.dev.Display() }

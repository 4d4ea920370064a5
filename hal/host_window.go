//go:build !tinygo

package hal

import (
	"image"
	"image/color"
	"lumen/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ledStripHeight is the overlay row under the framebuffer showing the
// PCA9635 PWM channels and the jack LED states.
const ledStripHeight = 16

// RunWindow starts a desktop window that displays the framebuffer,
// forwards keyboard and mouse-wheel input to the simulated encoder,
// and overlays the LED states. It blocks until the window closes.
func RunWindow(newApp func(HAL) func() error) error {
	h := New().(*hostHAL)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("lumen (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width, h.fb.height+ledStripHeight)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	wheel   float64
	step    func() error
}

func (g *hostGame) Update() error {
	g.pollEncoder()
	g.h.t.step()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

// pollEncoder maps desktop input onto the encoder peripheral: arrow
// keys and the mouse wheel rotate, Enter or a left click presses.
func (g *hostGame) pollEncoder() {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.h.enc.Turn(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.h.enc.Turn(-1)
	}

	_, dy := ebiten.Wheel()
	g.wheel += dy
	for g.wheel >= 1 {
		g.h.enc.Turn(1)
		g.wheel--
	}
	for g.wheel <= -1 {
		g.h.enc.Turn(-1)
		g.wheel++
	}

	down := ebiten.IsKeyPressed(ebiten.KeyEnter) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	g.h.enc.Press(down)
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.buf))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshotRGB565(g.scratch)

	src := g.scratch
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, gg, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)

	g.drawLEDStrip(screen)
}

// drawLEDStrip renders the 16 PCA9635 PWM channels on the left and the
// 8 jack LEDs on the right of the overlay row.
func (g *hostGame) drawLEDStrip(screen *ebiten.Image) {
	y := float32(g.h.fb.height) + 2
	cell := float32(12)

	pwm := g.h.pca.snapshot()
	for n, v := range pwm {
		x := 2 + float32(n)*(cell+2)
		vector.DrawFilledRect(screen, x, y, cell, cell,
			color.RGBA{R: v, G: v / 2, A: 0xFF}, false)
	}

	manual, auto := g.h.jacks.snapshot()
	base := 2 + 16*(cell+2) + 8
	for n := range manual {
		x := base + float32(n)*(cell+2)
		c := color.RGBA{B: 0x30, A: 0xFF}
		if !auto[n] {
			v := int(manual[n])
			bright := v * 2
			if bright < 0 {
				bright = -bright
			}
			if bright > 255 {
				bright = 255
			}
			if v >= 0 {
				c = color.RGBA{R: uint8(bright), A: 0xFF}
			} else {
				c = color.RGBA{G: uint8(bright), A: 0xFF}
			}
		}
		vector.DrawFilledRect(screen, x, y, cell, cell, c, false)
	}
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height + ledStripHeight
}

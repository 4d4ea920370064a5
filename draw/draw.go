// Package draw renders the menu onto the framebuffer.
package draw

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"lumen/palette"
	"lumen/ui/opt"
)

var font = &proggy.TinySZ8pt7b

const (
	rowPitch = 18
	valueCol = 150
)

// Options draws the page's menu at (posX, posY): the screen label in
// the header column, then one name/value row per option of the active
// view. The highlighted row tracks the selection; while modifying, a
// marker points at the edited level.
func Options(d drivers.Displayer, p opt.Page, posX, posY int16, hue uint8, pal palette.Palette) {
	bright := rgba(palette.Compute(15, int(hue), pal))
	dim := rgba(palette.Compute(10, int(hue), pal))

	options := p.View().Options()
	sel, haveSel := p.View().Selected()

	// Screen label, highlighted while at screen-selection level.
	screenColor := dim
	if !haveSel {
		screenColor = bright
	}
	writeRight(d, posX-12, posY, p.ScreenOption().Value(), screenColor)
	if !haveSel && p.Modify() {
		writeRight(d, posX-12, posY+rowPitch, "^", bright)
	}

	x := posX - 2
	for n, o := range options {
		rowColor := dim
		y := posY + rowPitch*int16(n)
		if haveSel && sel == n {
			rowColor = bright
			if p.Modify() {
				tinyfont.WriteLine(d, font, x+valueCol+2, y, "<", rowColor)
			}
		}
		tinyfont.WriteLine(d, font, x+5, y, o.Name(), rowColor)
		writeRight(d, x+valueCol, y, o.Value(), rowColor)
	}

	// Separator between the header column and the option rows.
	vline(d, x-3, posY-10, posY-13+rowPitch*int16(len(options)), dim)
}

func writeRight(d drivers.Displayer, x, y int16, s string, c color.RGBA) {
	_, w := tinyfont.LineWidth(font, s)
	tinyfont.WriteLine(d, font, x-int16(w), y, s, c)
}

func vline(d drivers.Displayer, x, y0, y1 int16, c color.RGBA) {
	for y := y0; y <= y1; y++ {
		d.SetPixel(x, y, c)
	}
}

func rgba(c palette.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

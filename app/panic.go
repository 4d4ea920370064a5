package app

import (
	"fmt"
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"lumen/draw"
	"lumen/hal"
)

// haltOnPanic converts a panic on the calling goroutine into the fault
// screen. Deferred at the top of the timer handler and the mainline.
func haltOnPanic(h hal.HAL) {
	if r := recover(); r != nil {
		halt(h, r)
	}
}

// halt logs the fault, paints it on the framebuffer and stops forever.
// There is no recovery path; the module needs a power cycle.
func halt(h hal.HAL, v any) {
	msg := fmt.Sprintf("fault: %v", v)
	if l := h.Logger(); l != nil {
		l.WriteLineString(msg)
	}

	disp := h.Display()
	if disp == nil {
		select {}
	}
	fb := disp.Framebuffer()
	if fb == nil {
		select {}
	}

	fb.ClearRGB(168, 8, 8)
	d := draw.NewFBDisplay(fb)
	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	tinyfont.WriteLine(d, &proggy.TinySZ8pt7b, 8, 16, "lumen halted", white)
	tinyfont.WriteLine(d, &proggy.TinySZ8pt7b, 8, 30, msg, white)
	_ = fb.Present()

	select {}
}

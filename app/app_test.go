//go:build !tinygo

package app

import (
	"testing"

	"lumen/hal"
)

func TestTickAndRenderOnce(t *testing.T) {
	a := newApp(hal.New(), Config{})

	for i := 0; i < 10; i++ {
		a.Tick()
	}
	if got := a.ui.UptimeMS(); got != 10*TickPeriodMS {
		t.Fatalf("UptimeMS() = %d, want %d", got, 10*TickPeriodMS)
	}

	a.RenderOnce()
	if !a.paletteSet {
		t.Fatal("palette not uploaded on first render")
	}

	// Power-on state draws the menu.
	lit := false
	for _, b := range a.fb.Buffer() {
		if b != 0 {
			lit = true
			break
		}
	}
	if !lit {
		t.Fatal("framebuffer empty after first render")
	}
}

func TestRenderSkipsMenuWhenIdle(t *testing.T) {
	a := newApp(hal.New(), Config{})

	// Leave modify mode, then idle past the fade window.
	a.cs.With(func() { a.opts.ToggleModify() })
	for i := 0; i < 250; i++ {
		a.Tick()
	}
	a.RenderOnce()

	for _, b := range a.fb.Buffer() {
		if b != 0 {
			t.Fatal("framebuffer not blank after fade window")
		}
	}
}

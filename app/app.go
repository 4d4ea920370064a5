// Package app wires the HAL, drivers and menu model into the two-rate
// control loop: a timer handler consuming input at a fixed period, and
// a mainline loop rendering from cloned snapshots.
package app

import (
	"fmt"

	"lumen/draw"
	"lumen/driver/encoder"
	"lumen/driver/eeprom"
	"lumen/driver/i2c"
	"lumen/driver/pca9635"
	"lumen/hal"
	"lumen/internal/buildinfo"
	"lumen/kernel"
	"lumen/palette"
	"lumen/ui"

	"lumen/app/opts"
)

// TickPeriodMS is the timer handler period. The HAL tick stream runs
// at 1 ms; the handler fires every fifth tick.
const TickPeriodMS = 5

// Config holds the tunable startup knobs.
type Config struct {
	// StrictClicks requires the encoder press edge to be observed
	// before a release reports a click.
	StrictClicks bool
}

// App owns the shared menu state and everything needed to update and
// render it. The timer handler and the mainline both go through cs.
type App struct {
	cs   kernel.Critical
	opts *opts.Options
	ui   *ui.Updater

	video   hal.Video
	beam    hal.Beam
	fb      hal.Framebuffer
	display *draw.FBDisplay
	log     hal.Logger

	lastPalette palette.Palette
	paletteSet  bool
}

// New initializes the firmware with default config and returns the
// mainline step function.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// NewWithConfig initializes the firmware: boot banner, EEPROM probe,
// driver construction and the timer goroutine. The returned step
// renders one frame from a snapshot of the shared state.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	a := newApp(h, cfg)

	go func() {
		defer haltOnPanic(h)
		kernel.NewTimer(TickPeriodMS).Run(h.Time().Ticks(), a.Tick)
	}()

	return func() error {
		defer haltOnPanic(h)
		a.RenderOnce()
		return nil
	}
}

// Run starts the firmware and drives the mainline forever (bare-metal
// entrypoint).
func Run(h hal.HAL) {
	step := New(h)
	for {
		if err := step(); err != nil {
			halt(h, err)
		}
	}
}

func newApp(h hal.HAL, cfg Config) *App {
	log := h.Logger()
	log.WriteLineString("lumen " + buildinfo.Short())

	bus := i2c.New(h.I2C())
	if serial, err := eeprom.ReadSerial(bus); err != nil {
		log.WriteLineString("eeprom: serial read failed: " + err.Error())
	} else {
		log.WriteLineString(fmt.Sprintf("eeprom: serial %x", serial))
	}

	enc := encoder.New(h.Encoder())
	enc.Strict = cfg.StrictClicks

	a := &App{
		opts:  opts.New(),
		ui:    ui.NewUpdater(TickPeriodMS, enc, pca9635.New(bus), h.JackLEDs(), log),
		video: h.Video(),
		beam:  h.Beam(),
		fb:    h.Display().Framebuffer(),
		log:   log,
	}
	a.display = draw.NewFBDisplay(a.fb)
	return a
}

// Tick runs one timer-handler cycle: encoder decode, menu navigation
// and LED feedback, all under the critical section.
func (a *App) Tick() {
	a.cs.With(func() {
		a.ui.Update(a.opts)
	})
}

// RenderOnce clones the shared state and renders one frame from the
// clone. The critical section is held only for the clone.
func (a *App) RenderOnce() {
	var snap *opts.Options
	a.cs.With(func() {
		snap = a.opts.Clone()
	})

	pal := snap.Xbeam.Palette.Val
	hue := snap.Xbeam.Hue.Val
	if !a.paletteSet || pal != a.lastPalette {
		a.uploadPalette(pal)
		a.lastPalette = pal
		a.paletteSet = true
	}

	a.fb.ClearRGB(0, 0, 0)
	if snap.Draw {
		posX := int16(a.fb.Width()) - 200
		posY := int16(a.fb.Height()) - 100
		draw.Options(a.display, snap, posX, posY, hue, pal)
	}

	a.video.SetPersist(snap.Xbeam.Persist.Val)
	a.beam.SetHue(hue)
	a.beam.SetIntensity(snap.Xbeam.Intensity.Val)

	if err := a.fb.Present(); err != nil {
		a.log.WriteLineString("render: present failed: " + err.Error())
	}
}

// uploadPalette writes all 16x16 palette entries to the video core.
func (a *App) uploadPalette(pal palette.Palette) {
	for i := 0; i < palette.NumIntensity; i++ {
		for h := 0; h < palette.NumHue; h++ {
			c := palette.Compute(i, h, pal)
			a.video.SetPaletteRGB(uint8(i), uint8(h), c.R, c.G, c.B)
		}
	}
}

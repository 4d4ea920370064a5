// Package ui runs the per-tick interactive update: it consumes encoder
// events into the menu page and recomputes LED feedback.
package ui

import (
	"lumen/driver/encoder"
	"lumen/driver/pca9635"
	"lumen/hal"
	"lumen/ui/opt"
)

const (
	// blinkPeriods is the number of update periods between blink
	// toggles (50 ms at the 5 ms tick).
	blinkPeriods = 10
	// fadeMS is the LED fade-out window after the last interaction.
	fadeMS = 1000
)

// Updater owns the encoder decoder and LED drivers and applies one
// update cycle per timer tick. It runs inside the control loop's
// critical section.
type Updater struct {
	enc   *encoder.Decoder
	pca   *pca9635.Driver
	jacks hal.JackLEDs
	log   hal.Logger

	periodMS     uint32
	uptimeMS     uint32
	sinceTouchMS uint32
	toggleLeds   bool

	pushErrs uint32
	pushDown bool
}

// NewUpdater returns an updater ticking every periodMS milliseconds.
func NewUpdater(periodMS uint32, enc *encoder.Decoder, pca *pca9635.Driver, jacks hal.JackLEDs, log hal.Logger) *Updater {
	return &Updater{
		enc:      enc,
		pca:      pca,
		jacks:    jacks,
		log:      log,
		periodMS: periodMS,
	}
}

// Update polls the encoder, routes pending events into the page, and
// recomputes LED feedback. LED pushes are best-effort: failures are
// counted and logged on state change, never propagated.
func (u *Updater) Update(p opt.Page) {
	u.enc.Update()

	u.sinceTouchMS += u.periodMS
	u.uptimeMS += u.periodMS

	if ticks := u.enc.PokeTicks(); ticks != 0 {
		opt.ConsumeTicks(p, ticks)
		u.sinceTouchMS = 0
	}
	if u.enc.PokeButton() {
		p.ToggleModify()
		u.sinceTouchMS = 0
	}

	if u.uptimeMS%(blinkPeriods*u.periodMS) == 0 {
		u.toggleLeds = !u.toggleLeds
	}

	u.pca.Clear()
	SetBargraph(p, &u.pca.Leds, u.toggleLeds)

	if p.Modify() {
		// Flashing while modifying something.
		if u.toggleLeds {
			if n, ok := p.View().Selected(); ok {
				// Red marks the selected option.
				if n < 8 {
					u.jacks.SetManual(n, 127)
				}
			} else {
				// Green marks the selected screen.
				n := int(p.ScreenOption().Percent() * float32(p.NumScreens()))
				if n < 8 {
					u.jacks.SetManual(n, -128)
				}
			}
		} else {
			u.jacks.AllAuto()
		}
	} else {
		// Steady with fade-out once modification stops.
		if u.sinceTouchMS < fadeMS {
			for n := 0; n < 8; n++ {
				u.jacks.SetManual(n, 0)
			}
			fade := int8((fadeMS - u.sinceTouchMS) * 120 / fadeMS)
			if n, ok := p.View().Selected(); ok {
				if n < 8 {
					u.jacks.SetManual(n, fade)
				}
			} else {
				u.jacks.SetManual(0, -fade)
			}
		} else {
			u.jacks.AllAuto()
		}
	}

	if err := u.pca.Push(); err != nil {
		u.pushErrs++
		if !u.pushDown {
			u.pushDown = true
			if u.log != nil {
				u.log.WriteLineString("ui: led push failed: " + err.Error())
			}
		}
	} else if u.pushDown {
		u.pushDown = false
		if u.log != nil {
			u.log.WriteLineString("ui: led push recovered")
		}
	}

	p.SetDraw(u.sinceTouchMS < fadeMS || p.Modify())
}

// PushErrors returns the count of failed LED pushes.
func (u *Updater) PushErrors() uint32 { return u.pushErrs }

// UptimeMS returns milliseconds of accumulated update time.
func (u *Updater) UptimeMS() uint32 { return u.uptimeMS }

// Package encoder decodes the raw rotary-encoder peripheral into
// discrete detent ticks and button clicks.
package encoder

import "lumen/hal"

// Decoder accumulates raw rotation counts and button levels polled
// from the encoder port. The physical detent produces two raw counts
// per logical tick; Update consumes the accumulated delta two counts
// at a time and carries any odd remainder to the next poll, so counts
// are never dropped.
type Decoder struct {
	port hal.EncoderPort

	// Strict requires a press edge to have been observed before a
	// release edge reports a click; the pair is consumed together.
	// The default reports a click on any release edge.
	Strict bool

	rot  int16
	lrot int16
	lbtn bool

	armed        bool
	pendingTicks int8
	pendingPress bool
}

// New returns a decoder over the given port. The current button level
// is sampled so a button held at boot does not count as a press edge.
func New(port hal.EncoderPort) *Decoder {
	return &Decoder{port: port, lbtn: port.Button()}
}

// Update polls the hardware once. Called from the timer tick handler.
func (d *Decoder) Update() {
	d.rot += int16(d.port.Step())
	btn := d.port.Button()

	delta := d.rot - d.lrot
	for delta > 1 {
		d.pendingTicks++
		delta -= 2
	}
	for delta < -1 {
		d.pendingTicks--
		delta += 2
	}

	if d.lbtn != btn {
		if btn {
			d.armed = true
		} else {
			if !d.Strict || d.armed {
				d.pendingPress = true
			}
			d.armed = false
		}
	}

	// Advance only by the consumed, even portion; the odd remainder
	// stays on the sampling boundary.
	d.lrot = d.rot - delta
	d.lbtn = btn
}

// PokeTicks returns the pending tick count and clears it.
func (d *Decoder) PokeTicks() int {
	t := int(d.pendingTicks)
	d.pendingTicks = 0
	return t
}

// PokeButton returns whether a click is pending and clears it.
func (d *Decoder) PokeButton() bool {
	b := d.pendingPress
	d.pendingPress = false
	return b
}

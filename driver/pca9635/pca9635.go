// Package pca9635 drives the 16-channel PWM LED expander on the
// module's front panel.
package pca9635

import "lumen/driver/i2c"

// Addr is the expander's fixed 7-bit bus address.
const Addr = 0x05

// Driver holds the desired PWM state for all 16 channels. Callers
// mutate Leds and then Push the whole block.
type Driver struct {
	bus  *i2c.Controller
	Leds [16]uint8
}

// New returns a driver with all channels off.
func New(bus *i2c.Controller) *Driver {
	return &Driver{bus: bus}
}

// Clear zeroes all channels (does not push).
func (d *Driver) Clear() {
	for n := range d.Leds {
		d.Leds[n] = 0
	}
}

// Push writes the fixed 25-byte control block: auto-increment command,
// MODE1/MODE2, 16 PWM channels, group settings and the 4 LEDOUT
// registers.
func (d *Driver) Push() error {
	block := []byte{
		0x80, // Auto-increment starting from MODE1
		0x81, // MODE1
		0x01, // MODE2
		d.Leds[0x0],
		d.Leds[0x1],
		d.Leds[0x2],
		d.Leds[0x3],
		d.Leds[0x4],
		d.Leds[0x5],
		d.Leds[0x6],
		d.Leds[0x7],
		d.Leds[0x8],
		d.Leds[0x9],
		d.Leds[0xA],
		d.Leds[0xB],
		d.Leds[0xC],
		d.Leds[0xD],
		d.Leds[0xE],
		d.Leds[0xF],
		0xFF, // GRPPWM
		0x00, // GRPFREQ
		0xAA, // LEDOUT0
		0xAA, // LEDOUT1
		0xAA, // LEDOUT2
		0xAA, // LEDOUT3
	}
	return d.bus.Transaction(Addr, []i2c.Op{i2c.Write(block)})
}

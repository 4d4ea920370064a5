//go:build !tinygo

package hal

import "sync/atomic"

// hostEncoder models the rotary-encoder peripheral: an accumulating
// raw count register cleared on read, and a button level. The window
// and headless runners feed it from desktop input.
type hostEncoder struct {
	accum atomic.Int32
	btn   atomic.Bool
}

func newHostEncoder() *hostEncoder {
	return &hostEncoder{}
}

func (e *hostEncoder) Step() int8 {
	v := e.accum.Swap(0)
	if v > 127 {
		v = 127
	}
	if v < -128 {
		v = -128
	}
	return int8(v)
}

func (e *hostEncoder) Button() bool { return e.btn.Load() }

// Turn adds whole detents: two raw counts each, matching the physical
// encoder.
func (e *hostEncoder) Turn(detents int) {
	e.accum.Add(int32(detents) * 2)
}

// Press sets the button level.
func (e *hostEncoder) Press(down bool) {
	e.btn.Store(down)
}

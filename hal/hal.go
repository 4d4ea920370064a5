package hal

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// EncoderPort is the raw rotary-encoder peripheral: a per-poll signed
// rotation delta and the current button level. Decoding deltas into
// logical detents happens in driver/encoder.
type EncoderPort interface {
	// Step returns the raw rotation count accumulated since the last
	// call and clears it. Two raw counts correspond to one detent.
	Step() int8
	// Button returns the current button level (true = pressed).
	Button() bool
}

// I2CRegisters is the register surface of the I2C controller core:
// an address latch, a transaction FIFO tagged with read/write and
// last-byte markers, a start strobe, and completion/error status.
//
// Start must clear any latched error flag from a previous transaction.
type I2CRegisters interface {
	SetAddress(addr uint8)
	// PushOp enqueues one FIFO slot. For reads the data byte is
	// ignored by the hardware.
	PushOp(data uint8, read bool, last bool)
	// Full reports whether the transaction FIFO has no free slot.
	Full() bool
	Start()
	Busy() bool
	// Err reports the undifferentiated transaction error flag
	// (device NAK or bus fault).
	Err() bool
	// PopRx returns the next received byte from the RX FIFO.
	PopRx() uint8
}

// Video is the framebuffer/scanout peripheral register surface.
type Video interface {
	SetPersist(v uint16)
	SetDecay(v uint8)
	SetPaletteRGB(intensity, hue, r, g, b uint8)
}

// Beam is the vector-beam peripheral register surface.
type Beam interface {
	SetHue(v uint8)
	SetIntensity(v uint8)
}

// JackLEDs drives the bipolar LEDs on the audio jacks. Positive values
// light red, negative light green; AllAuto hands the channels back to
// the gateware's signal-level display.
type JackLEDs interface {
	SetManual(n int, v int8)
	AllAuto()
}

// Time provides a base tick stream.
//
// The tick duration is 1 ms on every platform; the firmware's timer
// cadence is derived from it in the kernel package.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the firmware and the
// outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Encoder() EncoderPort
	I2C() I2CRegisters
	Video() Video
	Beam() Beam
	JackLEDs() JackLEDs
	Time() Time
}

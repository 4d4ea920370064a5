//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	t      *hostTime
	enc    *hostEncoder
	i2c    *hostI2C
	pca    *hostPCA9635
	video  *hostVideo
	beam   *hostBeam
	jacks  *hostJackLEDs
}

// New returns a host HAL implementation: a simulated register surface
// over an in-memory framebuffer, with PCA9635 and ID-EEPROM models on
// the I2C bus.
func New() HAL {
	pca := newHostPCA9635()
	bus := newHostI2C()
	bus.attach(0x05, pca)
	bus.attach(0x52, newHostEEPROM([]uint8{0xA5, 0x01, 0x7C, 0x33, 0x0E, 0x51, 0x90, 0x42}))

	return &hostHAL{
		logger: &hostLogger{w: os.Stdout},
		fb:     newHostFramebuffer(640, 480),
		t:      newHostTime(),
		enc:    newHostEncoder(),
		i2c:    bus,
		pca:    pca,
		video:  newHostVideo(),
		beam:   newHostBeam(),
		jacks:  newHostJackLEDs(),
	}
}

func (h *hostHAL) Logger() Logger       { return h.logger }
func (h *hostHAL) Display() Display     { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Encoder() EncoderPort { return h.enc }
func (h *hostHAL) I2C() I2CRegisters    { return h.i2c }
func (h *hostHAL) Video() Video         { return h.video }
func (h *hostHAL) Beam() Beam           { return h.beam }
func (h *hostHAL) JackLEDs() JackLEDs   { return h.jacks }
func (h *hostHAL) Time() Time           { return h.t }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

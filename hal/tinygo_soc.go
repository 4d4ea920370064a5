//go:build tinygo

package hal

import (
	"runtime/volatile"
	"time"
	"unsafe"
)

// CSR base addresses of the SoC peripherals. The layout mirrors the
// generated register map of the gateware build.
const (
	uartBase    = 0xf0000000
	encoderBase = 0xf0000800
	i2cBase     = 0xf0001000
	videoBase   = 0xf0001800
	beamBase    = 0xf0002000
	jackBase    = 0xf0002800

	fbBase   = 0x20100000
	fbWidth  = 720
	fbHeight = 720
)

type uartRegs struct {
	Data volatile.Register32 // 0x00, write: tx byte
	Rdy  volatile.Register32 // 0x04, read: tx space available
}

type encoderRegs struct {
	Step   volatile.Register32 // 0x00, read clears: signed rotation count
	Button volatile.Register32 // 0x04, read: button level
}

type i2cRegs struct {
	Address volatile.Register32 // 0x00
	// Transaction data FIFO slot: data[7:0], read flag bit 8, last
	// flag bit 9.
	TransactionData volatile.Register32 // 0x04
	TransactionRdy  volatile.Register32 // 0x08, read: FIFO space available
	Start           volatile.Register32 // 0x0c, write 1: start strobe
	Status          volatile.Register32 // 0x10, read: busy bit 0, error bit 1
	RxData          volatile.Register32 // 0x14, read: pop RX FIFO
}

type videoRegs struct {
	Persist    volatile.Register32 // 0x00
	Decay      volatile.Register32 // 0x04
	PaletteRdy volatile.Register32 // 0x08, read: palette port free
	// Palette write port: rgb[23:0], hue[27:24], intensity[31:28].
	Palette volatile.Register32 // 0x0c
}

type beamRegs struct {
	Hue       volatile.Register32 // 0x00
	Intensity volatile.Register32 // 0x04
}

type jackRegs struct {
	// AutoMask bit n: channel n follows the gateware's signal display.
	AutoMask volatile.Register32    // 0x00
	Manual   [8]volatile.Register32 // 0x04.., sign-extended int8
}

type tinygoHAL struct {
	logger *socLogger
	fb     *socFramebuffer
	t      *tinygoTime
	enc    *socEncoder
	i2c    *socI2C
	video  *socVideo
	beam   *socBeam
	jacks  *socJackLEDs
}

// New returns the bare-metal HAL over the SoC's memory-mapped
// peripherals.
func New() HAL {
	return &tinygoHAL{
		logger: &socLogger{regs: (*uartRegs)(unsafe.Pointer(uintptr(uartBase)))},
		fb:     newSOCFramebuffer(),
		t:      newTinygoTime(),
		enc:    &socEncoder{regs: (*encoderRegs)(unsafe.Pointer(uintptr(encoderBase)))},
		i2c:    &socI2C{regs: (*i2cRegs)(unsafe.Pointer(uintptr(i2cBase)))},
		video:  &socVideo{regs: (*videoRegs)(unsafe.Pointer(uintptr(videoBase)))},
		beam:   &socBeam{regs: (*beamRegs)(unsafe.Pointer(uintptr(beamBase)))},
		jacks:  &socJackLEDs{regs: (*jackRegs)(unsafe.Pointer(uintptr(jackBase)))},
	}
}

func (h *tinygoHAL) Logger() Logger       { return h.logger }
func (h *tinygoHAL) Display() Display     { return socDisplay{fb: h.fb} }
func (h *tinygoHAL) Encoder() EncoderPort { return h.enc }
func (h *tinygoHAL) I2C() I2CRegisters    { return h.i2c }
func (h *tinygoHAL) Video() Video         { return h.video }
func (h *tinygoHAL) Beam() Beam           { return h.beam }
func (h *tinygoHAL) JackLEDs() JackLEDs   { return h.jacks }
func (h *tinygoHAL) Time() Time           { return h.t }

type socLogger struct {
	regs *uartRegs
}

func (l *socLogger) writeByte(b byte) {
	for l.regs.Rdy.Get() == 0 {
	}
	l.regs.Data.Set(uint32(b))
}

func (l *socLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.writeByte(s[i])
	}
	l.writeByte('\r')
	l.writeByte('\n')
}

func (l *socLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.writeByte(b[i])
	}
	l.writeByte('\r')
	l.writeByte('\n')
}

type socDisplay struct {
	fb *socFramebuffer
}

func (d socDisplay) Framebuffer() Framebuffer { return d.fb }

// socFramebuffer exposes the PSRAM scanout region directly. The video
// core reads it continuously; Present is a no-op.
type socFramebuffer struct {
	buf []byte
}

func newSOCFramebuffer() *socFramebuffer {
	buf := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(fbBase))), fbWidth*fbHeight*2)
	return &socFramebuffer{buf: buf}
}

func (f *socFramebuffer) Width() int          { return fbWidth }
func (f *socFramebuffer) Height() int         { return fbHeight }
func (f *socFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *socFramebuffer) StrideBytes() int    { return fbWidth * 2 }
func (f *socFramebuffer) Buffer() []byte      { return f.buf }
func (f *socFramebuffer) Present() error      { return nil }

func (f *socFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

type socEncoder struct {
	regs *encoderRegs
}

func (e *socEncoder) Step() int8   { return int8(e.regs.Step.Get()) }
func (e *socEncoder) Button() bool { return e.regs.Button.Get()&1 != 0 }

type socI2C struct {
	regs *i2cRegs
}

func (c *socI2C) SetAddress(addr uint8) {
	c.regs.Address.Set(uint32(addr))
}

func (c *socI2C) PushOp(data uint8, read bool, last bool) {
	w := uint32(data)
	if read {
		w |= 1 << 8
	}
	if last {
		w |= 1 << 9
	}
	c.regs.TransactionData.Set(w)
}

func (c *socI2C) Full() bool   { return c.regs.TransactionRdy.Get() == 0 }
func (c *socI2C) Start()       { c.regs.Start.Set(1) }
func (c *socI2C) Busy() bool   { return c.regs.Status.Get()&1 != 0 }
func (c *socI2C) Err() bool    { return c.regs.Status.Get()&2 != 0 }
func (c *socI2C) PopRx() uint8 { return uint8(c.regs.RxData.Get()) }

type socVideo struct {
	regs *videoRegs
}

func (v *socVideo) SetPersist(p uint16) { v.regs.Persist.Set(uint32(p)) }
func (v *socVideo) SetDecay(d uint8)    { v.regs.Decay.Set(uint32(d)) }

func (v *socVideo) SetPaletteRGB(intensity, hue, r, g, b uint8) {
	for v.regs.PaletteRdy.Get() == 0 {
	}
	w := uint32(intensity&0xF)<<28 | uint32(hue&0xF)<<24 |
		uint32(r)<<16 | uint32(g)<<8 | uint32(b)
	v.regs.Palette.Set(w)
}

type socBeam struct {
	regs *beamRegs
}

func (b *socBeam) SetHue(v uint8)       { b.regs.Hue.Set(uint32(v)) }
func (b *socBeam) SetIntensity(v uint8) { b.regs.Intensity.Set(uint32(v)) }

type socJackLEDs struct {
	regs *jackRegs
}

func (j *socJackLEDs) SetManual(n int, v int8) {
	if n < 0 || n >= len(j.regs.Manual) {
		return
	}
	mask := j.regs.AutoMask.Get()
	j.regs.AutoMask.Set(mask &^ (1 << uint(n)))
	j.regs.Manual[n].Set(uint32(uint8(v)))
}

func (j *socJackLEDs) AllAuto() {
	j.regs.AutoMask.Set(0xFF)
}

type tinygoTime struct {
	ch  chan uint64
	seq uint64
}

func newTinygoTime() *tinygoTime {
	t := &tinygoTime{ch: make(chan uint64, 16)}
	go func() {
		ticker := time.NewTicker(1 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			t.seq++
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}()
	return t
}

func (t *tinygoTime) Ticks() <-chan uint64 { return t.ch }

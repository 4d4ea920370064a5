//go:build !tinygo

package hal

import "testing"

func drainBusy(t *testing.T, c *hostI2C) {
	t.Helper()
	for n := 0; c.Busy(); n++ {
		if n > 100 {
			t.Fatal("busy never deasserted")
		}
	}
}

func TestHostI2CMissingDeviceLatchesError(t *testing.T) {
	c := newHostI2C()

	c.SetAddress(0x21)
	c.PushOp(0x00, false, true)
	c.Start()
	drainBusy(t, c)
	if !c.Err() {
		t.Fatal("Err() = false for missing device, want true")
	}

	// The next Start clears the latched flag.
	c.attach(0x21, newHostEEPROM(nil))
	c.PushOp(0x00, false, true)
	c.Start()
	drainBusy(t, c)
	if c.Err() {
		t.Fatal("Err() = true after successful transaction, want false")
	}
}

func TestHostI2CEEPROMRoundTrip(t *testing.T) {
	c := newHostI2C()
	c.attach(0x52, newHostEEPROM([]uint8{0xDE, 0xAD, 0xBE, 0xEF, 1, 2, 3, 4}))

	c.SetAddress(0x52)
	c.PushOp(0xFA, false, false)
	for i := 0; i < 8; i++ {
		c.PushOp(0, true, i == 7)
	}
	c.Start()
	drainBusy(t, c)
	if c.Err() {
		t.Fatal("Err() = true, want false")
	}

	want := []uint8{0xDE, 0xAD, 0xBE, 0xEF, 1, 2, 3, 4}
	for i, w := range want {
		if got := c.PopRx(); got != w {
			t.Fatalf("rx[%d] = %#x, want %#x", i, got, w)
		}
	}
}

func TestHostEEPROMSerialTail(t *testing.T) {
	d := newHostEEPROM([]uint8{0xDE, 0xAD, 0xBE, 0xEF, 1, 2, 3, 4})

	// Sequential reads from inside the serial must walk through its
	// tail bytes, and reads past the end float high.
	d.WriteByte(0xFE)
	want := []uint8{1, 2, 3, 4, 0xFF}
	for i, w := range want {
		if got := d.ReadByte(); got != w {
			t.Fatalf("read %d = %#x, want %#x", i, got, w)
		}
	}
}

func TestHostPCA9635ParsesBlock(t *testing.T) {
	c := newHostI2C()
	pca := newHostPCA9635()
	c.attach(0x05, pca)

	block := make([]uint8, 25)
	block[0] = 0x80
	block[1] = 0x81
	block[2] = 0x01
	block[3] = 42  // PWM0
	block[18] = 99 // PWM15

	c.SetAddress(0x05)
	for i, b := range block {
		c.PushOp(b, false, i == len(block)-1)
	}
	c.Start()
	drainBusy(t, c)

	pwm := pca.snapshot()
	if pwm[0] != 42 || pwm[15] != 99 {
		t.Fatalf("pwm = %v, want pwm[0]=42 pwm[15]=99", pwm)
	}
}

func TestHostEncoderClampsAndClears(t *testing.T) {
	e := newHostEncoder()

	e.Turn(3)
	if got := e.Step(); got != 6 {
		t.Fatalf("Step() = %d, want 6", got)
	}
	if got := e.Step(); got != 0 {
		t.Fatalf("Step() after clear = %d, want 0", got)
	}

	e.Turn(200)
	if got := e.Step(); got != 127 {
		t.Fatalf("Step() = %d, want clamp to 127", got)
	}

	e.Press(true)
	if !e.Button() {
		t.Fatal("Button() = false, want true")
	}
}

func TestHostHALSurface(t *testing.T) {
	h := New()

	fb := h.Display().Framebuffer()
	if fb.Width() <= 0 || fb.Height() <= 0 {
		t.Fatalf("framebuffer %dx%d", fb.Width(), fb.Height())
	}
	if fb.Format() != PixelFormatRGB565 {
		t.Fatalf("format = %v, want RGB565", fb.Format())
	}
	if len(fb.Buffer()) != fb.StrideBytes()*fb.Height() {
		t.Fatalf("buffer len = %d, want %d", len(fb.Buffer()), fb.StrideBytes()*fb.Height())
	}

	// The ID EEPROM answers on the standard address.
	c := h.I2C()
	c.SetAddress(0x52)
	c.PushOp(0xFA, false, true)
	c.Start()
	for c.Busy() {
	}
	if c.Err() {
		t.Fatal("EEPROM probe failed")
	}
}

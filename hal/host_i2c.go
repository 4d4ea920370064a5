//go:build !tinygo

package hal

import "sync"

const hostI2CFIFOSlots = 64

// busyDrainPolls makes Busy read true for a few polls after Start so
// the engine's completion wait is actually exercised on host.
const busyDrainPolls = 2

type hostI2COp struct {
	data uint8
	read bool
	last bool
}

// hostI2C models the I2C controller core's register surface and a tiny
// bus of attached device models. Start executes the queued ops against
// the addressed device; a missing device latches the error flag, as a
// NAK would.
type hostI2C struct {
	mu sync.Mutex

	addr uint8
	fifo []hostI2COp
	rx   []uint8
	busy int
	err  bool

	devices map[uint8]hostI2CDevice
}

// hostI2CDevice is one simulated bus peripheral.
type hostI2CDevice interface {
	// WriteByte receives one written byte.
	WriteByte(b uint8)
	// ReadByte produces one byte for a read slot.
	ReadByte() uint8
	// Stop marks the end of a transaction.
	Stop()
}

func newHostI2C() *hostI2C {
	return &hostI2C{devices: make(map[uint8]hostI2CDevice)}
}

func (c *hostI2C) attach(addr uint8, dev hostI2CDevice) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.devices[addr] = dev
}

func (c *hostI2C) SetAddress(addr uint8) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.addr = addr
}

func (c *hostI2C) PushOp(data uint8, read bool, last bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.fifo) >= hostI2CFIFOSlots {
		// Overflowing pushes are dropped, as the gateware does.
		return
	}
	c.fifo = append(c.fifo, hostI2COp{data: data, read: read, last: last})
}

func (c *hostI2C) Full() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.fifo) >= hostI2CFIFOSlots
}

func (c *hostI2C) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Starting a transaction clears the previous error flag.
	c.err = false
	c.busy = busyDrainPolls
	c.rx = c.rx[:0]

	dev, ok := c.devices[c.addr]
	if !ok {
		c.err = true
		c.fifo = c.fifo[:0]
		return
	}

	for _, op := range c.fifo {
		if op.read {
			c.rx = append(c.rx, dev.ReadByte())
		} else {
			dev.WriteByte(op.data)
		}
	}
	dev.Stop()
	c.fifo = c.fifo[:0]
}

func (c *hostI2C) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy > 0 {
		c.busy--
		return true
	}
	return false
}

func (c *hostI2C) Err() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *hostI2C) PopRx() uint8 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.rx) == 0 {
		return 0
	}
	b := c.rx[0]
	c.rx = c.rx[1:]
	return b
}

// hostPCA9635 models the LED expander: it parses the auto-increment
// control block and keeps the 16 PWM channels for the window overlay.
type hostPCA9635 struct {
	mu    sync.Mutex
	frame []uint8
	pwm   [16]uint8
}

func newHostPCA9635() *hostPCA9635 { return &hostPCA9635{} }

func (d *hostPCA9635) WriteByte(b uint8) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.frame = append(d.frame, b)
}

func (d *hostPCA9635) ReadByte() uint8 { return 0 }

func (d *hostPCA9635) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	// Auto-increment block starting at MODE1: PWM0..15 at offset 3.
	if len(d.frame) == 25 && d.frame[0] == 0x80 {
		copy(d.pwm[:], d.frame[3:19])
	}
	d.frame = d.frame[:0]
}

func (d *hostPCA9635) snapshot() [16]uint8 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pwm
}

// hostEEPROM models the identification EEPROM: a register-pointer
// write followed by sequential reads. The memory extends past the
// 0xFA serial offset so all eight serial bytes are addressable.
type hostEEPROM struct {
	mu  sync.Mutex
	ptr int
	mem [0xFA + 8]uint8
}

func newHostEEPROM(serial []uint8) *hostEEPROM {
	d := &hostEEPROM{}
	copy(d.mem[0xFA:], serial)
	return d
}

func (d *hostEEPROM) WriteByte(b uint8) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ptr = int(b)
}

func (d *hostEEPROM) ReadByte() uint8 {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.ptr >= len(d.mem) {
		// Reads past the end float high, as the real part does.
		return 0xFF
	}
	b := d.mem[d.ptr]
	d.ptr++
	return b
}

func (d *hostEEPROM) Stop() {}

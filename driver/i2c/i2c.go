// Package i2c implements the batched blocking transaction protocol of
// the I2C controller core, over any register surface implementing
// hal.I2CRegisters.
package i2c

import (
	"errors"

	"lumen/hal"
)

var (
	// ErrTransaction covers both transaction-FIFO overflow and the
	// hardware's undifferentiated error flag (device NAK, bus fault).
	ErrTransaction = errors.New("i2c: transaction failed")
	// ErrTimeout means the controller never deasserted busy within
	// the poll budget.
	ErrTimeout = errors.New("i2c: busy poll timeout")
)

// Op is one step of a combined transaction: a write of a byte slice,
// or a read filling the caller's buffer.
type Op struct {
	w []byte
	r []byte
}

// Write returns a write op over b.
func Write(b []byte) Op { return Op{w: b} }

// Read returns a read op filling buf.
func Read(buf []byte) Op { return Op{r: buf} }

// defaultBusyPolls bounds the completion wait. At bus speed a full
// 64-slot FIFO completes in well under a millisecond; anything beyond
// this budget is a wedged peripheral, not a slow one.
const defaultBusyPolls = 1 << 20

// Controller drives one I2C controller core.
type Controller struct {
	regs hal.I2CRegisters

	// BusyPolls bounds the completion busy-poll.
	BusyPolls int

	errs uint32
}

// New returns a controller over the given register surface.
func New(regs hal.I2CRegisters) *Controller {
	return &Controller{regs: regs, BusyPolls: defaultBusyPolls}
}

// Transaction writes the target address once, pushes every byte of
// every op into the transaction FIFO in declared order (tagged with
// the read/write bit and a last marker on the final byte), starts the
// transaction, waits for completion, and then drains one received
// byte per read position in the same declared order.
//
// On any error the read buffers are left untouched.
func (c *Controller) Transaction(addr uint8, ops []Op) error {
	total := 0
	for _, op := range ops {
		total += len(op.w) + len(op.r)
	}

	c.regs.SetAddress(addr)

	enospace := false
	sent := 0
	for _, op := range ops {
		for _, b := range op.w {
			if c.regs.Full() {
				enospace = true
			}
			c.regs.PushOp(b, false, sent == total-1)
			sent++
		}
		for range op.r {
			if c.regs.Full() {
				enospace = true
			}
			c.regs.PushOp(0, true, sent == total-1)
			sent++
		}
	}

	c.regs.Start()

	for n := 0; c.regs.Busy(); n++ {
		if n >= c.BusyPolls {
			c.errs++
			return ErrTimeout
		}
	}

	if enospace {
		// The FIFO ran out of space; the hardware ran and drained
		// what it accepted anyway.
		c.errs++
		return ErrTransaction
	}

	if c.regs.Err() {
		c.errs++
		return ErrTransaction
	}

	for _, op := range ops {
		for i := range op.r {
			op.r[i] = c.regs.PopRx()
		}
	}

	return nil
}

// Errors returns the count of failed transactions since construction.
func (c *Controller) Errors() uint32 { return c.errs }

package eeprom

import (
	"testing"

	"lumen/driver/i2c"
)

type fakeRegs struct {
	addr  uint8
	data  []uint8
	reads int
	err   bool
	rx    []uint8
}

func (r *fakeRegs) SetAddress(addr uint8) { r.addr = addr }
func (r *fakeRegs) PushOp(data uint8, read bool, last bool) {
	if read {
		r.reads++
		return
	}
	r.data = append(r.data, data)
}
func (r *fakeRegs) Full() bool { return false }
func (r *fakeRegs) Start()     {}
func (r *fakeRegs) Busy() bool { return false }
func (r *fakeRegs) Err() bool  { return r.err }
func (r *fakeRegs) PopRx() uint8 {
	if len(r.rx) == 0 {
		return 0
	}
	b := r.rx[0]
	r.rx = r.rx[1:]
	return b
}

func TestReadSerial(t *testing.T) {
	want := [SerialLen]byte{1, 2, 3, 4, 5, 6, 7, 8}
	regs := &fakeRegs{rx: want[:]}
	bus := i2c.New(regs)

	serial, err := ReadSerial(bus)
	if err != nil {
		t.Fatalf("ReadSerial: %v", err)
	}
	if serial != want {
		t.Fatalf("serial = %x, want %x", serial, want)
	}

	if regs.addr != Addr {
		t.Fatalf("addr = %#x, want %#x", regs.addr, Addr)
	}
	if len(regs.data) != 1 || regs.data[0] != 0xFA {
		t.Fatalf("register write = % x, want fa", regs.data)
	}
	if regs.reads != SerialLen {
		t.Fatalf("read slots = %d, want %d", regs.reads, SerialLen)
	}
}

func TestReadSerialError(t *testing.T) {
	regs := &fakeRegs{err: true, rx: []uint8{1, 2, 3, 4, 5, 6, 7, 8}}
	bus := i2c.New(regs)

	serial, err := ReadSerial(bus)
	if err != i2c.ErrTransaction {
		t.Fatalf("ReadSerial err = %v, want ErrTransaction", err)
	}
	if serial != ([SerialLen]byte{}) {
		t.Fatalf("serial = %x, want zeroes on error", serial)
	}
}

package i2c

import "testing"

type fakeOp struct {
	data uint8
	read bool
	last bool
}

// fakeRegs records the register traffic of one transaction and serves
// a scripted RX queue.
type fakeRegs struct {
	addr    uint8
	ops     []fakeOp
	started int

	full      bool
	busyPolls int
	busyStuck bool
	err       bool

	rx []uint8
}

func (r *fakeRegs) SetAddress(addr uint8) { r.addr = addr }

func (r *fakeRegs) PushOp(data uint8, read bool, last bool) {
	r.ops = append(r.ops, fakeOp{data: data, read: read, last: last})
}

func (r *fakeRegs) Full() bool { return r.full }

func (r *fakeRegs) Start() { r.started++ }

func (r *fakeRegs) Busy() bool {
	if r.busyStuck {
		return true
	}
	if r.busyPolls > 0 {
		r.busyPolls--
		return true
	}
	return false
}

func (r *fakeRegs) Err() bool { return r.err }

func (r *fakeRegs) PopRx() uint8 {
	if len(r.rx) == 0 {
		return 0
	}
	b := r.rx[0]
	r.rx = r.rx[1:]
	return b
}

func TestTransactionPushOrder(t *testing.T) {
	regs := &fakeRegs{rx: []uint8{0xAA, 0xBB, 0xCC}}
	c := New(regs)

	var buf [3]byte
	err := c.Transaction(0x05, []Op{
		Write([]byte{0x10, 0x20}),
		Read(buf[:]),
	})
	if err != nil {
		t.Fatalf("Transaction: %v", err)
	}

	if regs.addr != 0x05 {
		t.Fatalf("addr = %#x, want 0x05", regs.addr)
	}
	if regs.started != 1 {
		t.Fatalf("started = %d, want 1", regs.started)
	}

	want := []fakeOp{
		{data: 0x10, read: false, last: false},
		{data: 0x20, read: false, last: false},
		{data: 0, read: true, last: false},
		{data: 0, read: true, last: false},
		{data: 0, read: true, last: true},
	}
	if len(regs.ops) != len(want) {
		t.Fatalf("pushed %d ops, want %d", len(regs.ops), len(want))
	}
	for i, op := range regs.ops {
		if op != want[i] {
			t.Fatalf("op[%d] = %+v, want %+v", i, op, want[i])
		}
	}

	if buf != [3]byte{0xAA, 0xBB, 0xCC} {
		t.Fatalf("buf = %x, want aabbcc", buf)
	}
}

func TestTransactionWriteOnlyLastMarker(t *testing.T) {
	regs := &fakeRegs{}
	c := New(regs)

	if err := c.Transaction(0x05, []Op{Write([]byte{1, 2, 3})}); err != nil {
		t.Fatalf("Transaction: %v", err)
	}
	for i, op := range regs.ops {
		wantLast := i == 2
		if op.last != wantLast {
			t.Fatalf("op[%d].last = %v, want %v", i, op.last, wantLast)
		}
	}
}

func TestTransactionWaitsOutBusy(t *testing.T) {
	regs := &fakeRegs{busyPolls: 100}
	c := New(regs)

	if err := c.Transaction(0x05, []Op{Write([]byte{1})}); err != nil {
		t.Fatalf("Transaction: %v", err)
	}
	if regs.busyPolls != 0 {
		t.Fatalf("busyPolls = %d, want 0", regs.busyPolls)
	}
}

func TestTransactionTimeout(t *testing.T) {
	regs := &fakeRegs{busyStuck: true}
	c := New(regs)
	c.BusyPolls = 16

	if err := c.Transaction(0x05, []Op{Write([]byte{1})}); err != ErrTimeout {
		t.Fatalf("Transaction err = %v, want ErrTimeout", err)
	}
	if got := c.Errors(); got != 1 {
		t.Fatalf("Errors() = %d, want 1", got)
	}
}

func TestTransactionFIFOOverflow(t *testing.T) {
	regs := &fakeRegs{full: true, rx: []uint8{0xAA}}
	c := New(regs)

	var buf [1]byte
	err := c.Transaction(0x05, []Op{Read(buf[:])})
	if err != ErrTransaction {
		t.Fatalf("Transaction err = %v, want ErrTransaction", err)
	}
	if buf[0] != 0 {
		t.Fatalf("buf = %x, want untouched zero", buf)
	}
	// The transaction is still started so the hardware drains.
	if regs.started != 1 {
		t.Fatalf("started = %d, want 1", regs.started)
	}
}

func TestTransactionErrorFlag(t *testing.T) {
	regs := &fakeRegs{err: true, rx: []uint8{0xAA}}
	c := New(regs)

	var buf [1]byte
	if err := c.Transaction(0x05, []Op{Read(buf[:])}); err != ErrTransaction {
		t.Fatalf("Transaction err = %v, want ErrTransaction", err)
	}
	if buf[0] != 0 {
		t.Fatalf("buf = %x, want untouched zero", buf)
	}
}

func TestErrorsAccumulate(t *testing.T) {
	regs := &fakeRegs{err: true}
	c := New(regs)

	c.Transaction(0x05, []Op{Write([]byte{1})})
	c.Transaction(0x05, []Op{Write([]byte{1})})
	if got := c.Errors(); got != 2 {
		t.Fatalf("Errors() = %d, want 2", got)
	}

	regs.err = false
	if err := c.Transaction(0x05, []Op{Write([]byte{1})}); err != nil {
		t.Fatalf("Transaction: %v", err)
	}
	if got := c.Errors(); got != 2 {
		t.Fatalf("Errors() = %d, want 2 after success", got)
	}
}

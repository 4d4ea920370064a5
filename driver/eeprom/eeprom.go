// Package eeprom reads the module's identification EEPROM.
package eeprom

import "lumen/driver/i2c"

// Addr is the EEPROM's fixed 7-bit bus address.
const Addr = 0x52

// serialReg is the register offset of the serial bytes.
const serialReg = 0xFA

// SerialLen is the length of the serial number in bytes.
const SerialLen = 8

// ReadSerial issues a one-byte register-pointer write followed by an
// 8-byte read in a single transaction.
func ReadSerial(bus *i2c.Controller) ([SerialLen]byte, error) {
	var buf [SerialLen]byte
	err := bus.Transaction(Addr, []i2c.Op{
		i2c.Write([]byte{serialReg}),
		i2c.Read(buf[:]),
	})
	return buf, err
}

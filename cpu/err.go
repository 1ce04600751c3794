package cpu

import (
	"errors"

	"github.com/ezrec/gbcore/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrPcOverflow = errors.New(f("pc advanced past end of memory"))
)

// ErrOpcode identifies the instruction that failed.
type ErrOpcode struct {
	Pc       uint16 // Address of the opcode.
	Opcode   uint8  // Opcode byte, after the prefix if Extended.
	Extended bool   // Set for 0xCB-prefixed opcodes.
}

func (eo ErrOpcode) Error() string {
	if eo.Extended {
		return f("opcode 0xcb 0x%02x at 0x%04x", eo.Opcode, eo.Pc)
	}
	return f("opcode 0x%02x at 0x%04x", eo.Opcode, eo.Pc)
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

package cpu

import (
	"fmt"
)

// RegPair names a 16-bit register. SP is held by the Cpu, not the
// Registers.
type RegPair int

//go:generate go tool stringer -linecomment -type=RegPair
const (
	REG_PAIR_BC = RegPair(0) // BC
	REG_PAIR_DE = RegPair(1) // DE
	REG_PAIR_HL = RegPair(2) // HL
	REG_PAIR_SP = RegPair(3) // SP
	REG_PAIR_AF = RegPair(4) // AF
)

// Registers is the register file.
type Registers struct {
	A uint8
	F Flags
	B uint8
	C uint8
	D uint8
	E uint8
	H uint8
	L uint8
}

// Pair returns the value of a register pair. REG_PAIR_SP is not part of the
// register file and reads as zero.
func (r *Registers) Pair(rp RegPair) (value uint16) {
	switch rp {
	case REG_PAIR_AF:
		value = uint16(r.A)<<8 | uint16(r.F)
	case REG_PAIR_BC:
		value = uint16(r.B)<<8 | uint16(r.C)
	case REG_PAIR_DE:
		value = uint16(r.D)<<8 | uint16(r.E)
	case REG_PAIR_HL:
		value = uint16(r.H)<<8 | uint16(r.L)
	}
	return
}

// SetPair stores a 16-bit value into a register pair. Writing AF discards
// the lower nibble of F.
func (r *Registers) SetPair(rp RegPair, value uint16) {
	hi := uint8(value >> 8)
	lo := uint8(value)
	switch rp {
	case REG_PAIR_AF:
		r.A, r.F = hi, Flags(lo)&FLAG_MASK
	case REG_PAIR_BC:
		r.B, r.C = hi, lo
	case REG_PAIR_DE:
		r.D, r.E = hi, lo
	case REG_PAIR_HL:
		r.H, r.L = hi, lo
	}
}

func (r *Registers) String() string {
	return fmt.Sprintf("AF=%04X BC=%04X DE=%04X HL=%04X F=%v",
		r.Pair(REG_PAIR_AF), r.Pair(REG_PAIR_BC), r.Pair(REG_PAIR_DE), r.Pair(REG_PAIR_HL), r.F)
}

package cpu

import (
	"fmt"
)

// ExtClass is the operation group of a 0xCB-prefixed opcode.
type ExtClass int

//go:generate go tool stringer -linecomment -type=ExtClass
const (
	EXT_CLASS_SHIFT = ExtClass(0) // SHIFT
	EXT_CLASS_BIT   = ExtClass(1) // BIT
	EXT_CLASS_RES   = ExtClass(2) // RES
	EXT_CLASS_SET   = ExtClass(3) // SET
)

// DecodeExtended splits a 0xCB-prefixed opcode into its class, the bit
// number (or ShiftOp for EXT_CLASS_SHIFT) and the operand.
//
//	7 6 | 5 4 3 | 2 1 0
//	cls |  bit  |  loc
func DecodeExtended(opcode uint8) (class ExtClass, bit uint8, loc Location) {
	class = ExtClass(opcode >> 6)
	bit = (opcode >> 3) & 7
	loc = Location(opcode & 7)
	return
}

func buildExtended() (table [256]Opcode) {
	for n := range table {
		opcode := uint8(n)
		class, bit, loc := DecodeExtended(opcode)

		var desc Opcode
		switch class {
		case EXT_CLASS_SHIFT:
			shift := ShiftOp(bit)
			desc = op(fmt.Sprintf("%v %v", shift, loc), 2, func(cpu *Cpu) {
				loc.Set(cpu, cpu.shift(shift, loc.Get(cpu)))
			})
		case EXT_CLASS_BIT:
			desc = op(fmt.Sprintf("BIT %d,%v", bit, loc), 2, func(cpu *Cpu) {
				cpu.bit(bit, loc.Get(cpu))
			})
		case EXT_CLASS_RES:
			desc = op(fmt.Sprintf("RES %d,%v", bit, loc), 2, func(cpu *Cpu) {
				loc.Set(cpu, loc.Get(cpu)&^(1<<bit))
			})
		case EXT_CLASS_SET:
			desc = op(fmt.Sprintf("SET %d,%v", bit, loc), 2, func(cpu *Cpu) {
				loc.Set(cpu, loc.Get(cpu)|1<<bit)
			})
		}
		table[n] = desc
	}

	return
}

package cpu

import (
	"fmt"
)

// AluOp is an accumulator operation. The numbering matches bits 5..3 of the
// 0x80..0xBF and 0xC6..0xFE opcodes.
type AluOp int

const (
	ALU_OP_ADD = AluOp(0)
	ALU_OP_ADC = AluOp(1)
	ALU_OP_SUB = AluOp(2)
	ALU_OP_SBC = AluOp(3)
	ALU_OP_AND = AluOp(4)
	ALU_OP_XOR = AluOp(5)
	ALU_OP_OR  = AluOp(6)
	ALU_OP_CP  = AluOp(7)
)

var _alu_op_names = [...]string{"ADD A,", "ADC A,", "SUB ", "SBC A,", "AND ", "XOR ", "OR ", "CP "}

// String returns the mnemonic prefix, including the separator before the
// operand.
func (op AluOp) String() string {
	if op < 0 || int(op) >= len(_alu_op_names) {
		return fmt.Sprintf("AluOp(%d) ", int(op))
	}
	return _alu_op_names[op]
}

// ShiftOp is a rotate or shift. The numbering matches the 0xCB class for
// opcodes 0x00..0x3F.
type ShiftOp int

//go:generate go tool stringer -linecomment -type=ShiftOp
const (
	SHIFT_OP_RLC  = ShiftOp(0) // RLC
	SHIFT_OP_RRC  = ShiftOp(1) // RRC
	SHIFT_OP_RL   = ShiftOp(2) // RL
	SHIFT_OP_RR   = ShiftOp(3) // RR
	SHIFT_OP_SLA  = ShiftOp(4) // SLA
	SHIFT_OP_SRA  = ShiftOp(5) // SRA
	SHIFT_OP_SWAP = ShiftOp(6) // SWAP
	SHIFT_OP_SRL  = ShiftOp(7) // SRL
)

func b2u(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// add8 returns a+value+carry.
// Flags: Z 0 H C
func (cpu *Cpu) add8(a, value uint8, carry bool) uint8 {
	c := b2u(carry)
	sum := uint16(a) + uint16(value) + uint16(c)
	cpu.F = makeFlags(uint8(sum) == 0, false, (a&0xf)+(value&0xf)+c > 0xf, sum > 0xff)
	return uint8(sum)
}

// sub8 returns a-value-carry.
// Flags: Z 1 H C
func (cpu *Cpu) sub8(a, value uint8, carry bool) uint8 {
	c := int(b2u(carry))
	diff := int(a) - int(value) - c
	cpu.F = makeFlags(uint8(diff) == 0, true, int(a&0xf)-int(value&0xf)-c < 0, diff < 0)
	return uint8(diff)
}

// alu applies op to the accumulator and value.
func (cpu *Cpu) alu(op AluOp, value uint8) {
	switch op {
	case ALU_OP_ADD:
		cpu.A = cpu.add8(cpu.A, value, false)
	case ALU_OP_ADC:
		cpu.A = cpu.add8(cpu.A, value, cpu.F.Carry())
	case ALU_OP_SUB:
		cpu.A = cpu.sub8(cpu.A, value, false)
	case ALU_OP_SBC:
		cpu.A = cpu.sub8(cpu.A, value, cpu.F.Carry())
	case ALU_OP_AND:
		cpu.A &= value
		cpu.F = makeFlags(cpu.A == 0, false, true, false)
	case ALU_OP_XOR:
		cpu.A ^= value
		cpu.F = makeFlags(cpu.A == 0, false, false, false)
	case ALU_OP_OR:
		cpu.A |= value
		cpu.F = makeFlags(cpu.A == 0, false, false, false)
	case ALU_OP_CP:
		cpu.sub8(cpu.A, value, false)
	default:
		panic("unknown alu op")
	}
}

// inc8 returns value+1.
// Flags: Z 0 H -
func (cpu *Cpu) inc8(value uint8) (result uint8) {
	result = value + 1
	cpu.F.SetZero(result == 0)
	cpu.F.SetSubtract(false)
	cpu.F.SetHalfCarry(value&0xf == 0xf)
	return
}

// dec8 returns value-1.
// Flags: Z 1 H -
func (cpu *Cpu) dec8(value uint8) (result uint8) {
	result = value - 1
	cpu.F.SetZero(result == 0)
	cpu.F.SetSubtract(true)
	cpu.F.SetHalfCarry(value&0xf == 0)
	return
}

// addHL adds value to HL.
// Flags: - 0 H C
func (cpu *Cpu) addHL(value uint16) {
	hl := cpu.Pair(REG_PAIR_HL)
	sum := uint32(hl) + uint32(value)
	cpu.F.SetSubtract(false)
	cpu.F.SetHalfCarry((hl&0xfff)+(value&0xfff) > 0xfff)
	cpu.F.SetCarry(sum > 0xffff)
	cpu.SetPair(REG_PAIR_HL, uint16(sum))
}

// addSP returns SP plus the signed displacement e. Carries are computed on
// the low byte as an unsigned addition.
// Flags: 0 0 H C
func (cpu *Cpu) addSP(e uint8) uint16 {
	sp := cpu.SP
	cpu.F = makeFlags(false, false, (sp&0xf)+uint16(e&0xf) > 0xf, (sp&0xff)+uint16(e) > 0xff)
	return uint16(int32(sp) + int32(int8(e)))
}

// daa adjusts A to packed BCD after an addition or subtraction.
// Flags: Z - 0 C
func (cpu *Cpu) daa() {
	a := cpu.A
	carry := cpu.F.Carry()
	var adjust uint8
	if cpu.F.HalfCarry() || (!cpu.F.Subtract() && a&0xf > 0x9) {
		adjust |= 0x06
	}
	if carry || (!cpu.F.Subtract() && a > 0x99) {
		adjust |= 0x60
		carry = true
	}
	if cpu.F.Subtract() {
		a -= adjust
	} else {
		a += adjust
	}
	cpu.A = a
	cpu.F.SetZero(a == 0)
	cpu.F.SetHalfCarry(false)
	cpu.F.SetCarry(carry)
}

// shift performs a rotate or shift on value.
// Flags: Z 0 0 C
func (cpu *Cpu) shift(op ShiftOp, value uint8) (result uint8) {
	carry := b2u(cpu.F.Carry())
	var out uint8
	switch op {
	case SHIFT_OP_RLC:
		out = value >> 7
		result = value<<1 | out
	case SHIFT_OP_RRC:
		out = value & 1
		result = value>>1 | out<<7
	case SHIFT_OP_RL:
		out = value >> 7
		result = value<<1 | carry
	case SHIFT_OP_RR:
		out = value & 1
		result = value>>1 | carry<<7
	case SHIFT_OP_SLA:
		out = value >> 7
		result = value << 1
	case SHIFT_OP_SRA:
		out = value & 1
		result = value>>1 | value&0x80
	case SHIFT_OP_SWAP:
		result = value<<4 | value>>4
	case SHIFT_OP_SRL:
		out = value & 1
		result = value >> 1
	default:
		panic("unknown shift op")
	}
	cpu.F = makeFlags(result == 0, false, false, out != 0)
	return
}

// rotateA is the accumulator form of RLC/RRC/RL/RR; Z is always cleared.
// Flags: 0 0 0 C
func (cpu *Cpu) rotateA(op ShiftOp) {
	cpu.A = cpu.shift(op, cpu.A)
	cpu.F.SetZero(false)
}

// bit tests bit n of value.
// Flags: Z 0 1 -
func (cpu *Cpu) bit(n uint8, value uint8) {
	cpu.F.SetZero(value&(1<<n) == 0)
	cpu.F.SetSubtract(false)
	cpu.F.SetHalfCarry(true)
}

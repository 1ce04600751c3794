package cpu

// Location is an 8-bit operand: a register, or the memory cell addressed by
// HL. The numbering matches the low three bits of the opcode encoding.
type Location uint8

//go:generate go tool stringer -linecomment -type=Location
const (
	LOC_B  = Location(0) // B
	LOC_C  = Location(1) // C
	LOC_D  = Location(2) // D
	LOC_E  = Location(3) // E
	LOC_H  = Location(4) // H
	LOC_L  = Location(5) // L
	LOC_HL = Location(6) // (HL)
	LOC_A  = Location(7) // A
)

// IsMemory returns true for the (HL) operand.
func (loc Location) IsMemory() bool {
	return loc == LOC_HL
}

// Get the operand value.
func (loc Location) Get(cpu *Cpu) (value uint8) {
	switch loc {
	case LOC_B:
		value = cpu.B
	case LOC_C:
		value = cpu.C
	case LOC_D:
		value = cpu.D
	case LOC_E:
		value = cpu.E
	case LOC_H:
		value = cpu.H
	case LOC_L:
		value = cpu.L
	case LOC_HL:
		value = cpu.Memory.Read(cpu.Pair(REG_PAIR_HL))
	case LOC_A:
		value = cpu.A
	default:
		panic("unknown location")
	}
	return
}

// Set the operand value.
func (loc Location) Set(cpu *Cpu, value uint8) {
	switch loc {
	case LOC_B:
		cpu.B = value
	case LOC_C:
		cpu.C = value
	case LOC_D:
		cpu.D = value
	case LOC_E:
		cpu.E = value
	case LOC_H:
		cpu.H = value
	case LOC_L:
		cpu.L = value
	case LOC_HL:
		cpu.Memory.Write(cpu.Pair(REG_PAIR_HL), value)
	case LOC_A:
		cpu.A = value
	default:
		panic("unknown location")
	}
}

package cpu

import (
	"fmt"
	"strings"

	"github.com/ezrec/gbcore/logger"
)

// Cond is a branch condition.
type Cond int

//go:generate go tool stringer -linecomment -type=Cond
const (
	COND_NZ = Cond(0) // NZ
	COND_Z  = Cond(1) // Z
	COND_NC = Cond(2) // NC
	COND_C  = Cond(3) // C
)

// Test the condition against the flags.
func (cond Cond) Test(fl Flags) bool {
	switch cond {
	case COND_NZ:
		return !fl.Zero()
	case COND_Z:
		return fl.Zero()
	case COND_NC:
		return !fl.Carry()
	case COND_C:
		return fl.Carry()
	}
	panic("unknown condition")
}

// Opcode describes one dispatch table entry.
//
// Mnemonics use the operand placeholders d8 (immediate byte), a8 (high page
// offset), r8 (signed displacement), d16 (immediate word) and a16 (absolute
// address); Disassemble substitutes them.
type Opcode struct {
	Mnemonic string
	Length   int  // Bytes including the opcode (and the 0xCB prefix).
	Known    bool // False for unassigned opcodes.

	exec func(cpu *Cpu)
}

var (
	_primary  = buildPrimary()
	_extended = buildExtended()
)

// Primary returns the descriptor of a primary opcode.
func Primary(opcode uint8) Opcode {
	return _primary[opcode]
}

// Extended returns the descriptor of a 0xCB-prefixed opcode.
func Extended(opcode uint8) Opcode {
	return _extended[opcode]
}

func op(mnemonic string, length int, exec func(cpu *Cpu)) Opcode {
	return Opcode{Mnemonic: mnemonic, Length: length, Known: true, exec: exec}
}

// unknownOpcode logs and otherwise behaves as NOP.
func unknownOpcode(opcode uint8) Opcode {
	return Opcode{
		Mnemonic: fmt.Sprintf("DB $%02X", opcode),
		Length:   1,
		exec: func(cpu *Cpu) {
			logger.Logf(cpu.Log, logger.LEVEL_WARN, "cpu", "unknown opcode 0x%02x at 0x%04x", opcode, cpu.PC)
		},
	}
}

// Pair operands of the 0x01..0x3B column groups, and of PUSH/POP.
var (
	_pairs_sp = [4]RegPair{REG_PAIR_BC, REG_PAIR_DE, REG_PAIR_HL, REG_PAIR_SP}
	_pairs_af = [4]RegPair{REG_PAIR_BC, REG_PAIR_DE, REG_PAIR_HL, REG_PAIR_AF}
)

func buildPrimary() (table [256]Opcode) {
	for n := range table {
		table[n] = unknownOpcode(uint8(n))
	}

	table[0x00] = op("NOP", 1, func(cpu *Cpu) {})

	// 16-bit loads and arithmetic
	for n, rp := range _pairs_sp {
		row := uint8(n) << 4
		table[row|0x01] = op(fmt.Sprintf("LD %v,d16", rp), 3, func(cpu *Cpu) {
			cpu.setWord(rp, cpu.fetch16())
		})
		table[row|0x03] = op(fmt.Sprintf("INC %v", rp), 1, func(cpu *Cpu) {
			cpu.setWord(rp, cpu.word(rp)+1)
		})
		table[row|0x09] = op(fmt.Sprintf("ADD HL,%v", rp), 1, func(cpu *Cpu) {
			cpu.addHL(cpu.word(rp))
		})
		table[row|0x0B] = op(fmt.Sprintf("DEC %v", rp), 1, func(cpu *Cpu) {
			cpu.setWord(rp, cpu.word(rp)-1)
		})
	}

	// Accumulator through BC, DE, HL+ and HL-
	for n, mode := range []string{"(BC)", "(DE)", "(HL+)", "(HL-)"} {
		row := uint8(n) << 4
		step := []int{0, 0, 1, -1}[n]
		rp := _pairs_sp[min(n, 2)]
		table[row|0x02] = op(fmt.Sprintf("LD %v,A", mode), 1, func(cpu *Cpu) {
			addr := cpu.word(rp)
			cpu.Memory.Write(addr, cpu.A)
			cpu.setWord(rp, addr+uint16(step))
		})
		table[row|0x0A] = op(fmt.Sprintf("LD A,%v", mode), 1, func(cpu *Cpu) {
			addr := cpu.word(rp)
			cpu.A = cpu.Memory.Read(addr)
			cpu.setWord(rp, addr+uint16(step))
		})
	}

	// 8-bit INC, DEC and immediate loads
	for loc := LOC_B; loc <= LOC_A; loc++ {
		col := uint8(loc) << 3
		table[0x04|col] = op(fmt.Sprintf("INC %v", loc), 1, func(cpu *Cpu) {
			loc.Set(cpu, cpu.inc8(loc.Get(cpu)))
		})
		table[0x05|col] = op(fmt.Sprintf("DEC %v", loc), 1, func(cpu *Cpu) {
			loc.Set(cpu, cpu.dec8(loc.Get(cpu)))
		})
		table[0x06|col] = op(fmt.Sprintf("LD %v,d8", loc), 2, func(cpu *Cpu) {
			loc.Set(cpu, cpu.fetch8())
		})
	}

	// Accumulator rotates and flag operations
	table[0x07] = op("RLCA", 1, func(cpu *Cpu) { cpu.rotateA(SHIFT_OP_RLC) })
	table[0x0F] = op("RRCA", 1, func(cpu *Cpu) { cpu.rotateA(SHIFT_OP_RRC) })
	table[0x17] = op("RLA", 1, func(cpu *Cpu) { cpu.rotateA(SHIFT_OP_RL) })
	table[0x1F] = op("RRA", 1, func(cpu *Cpu) { cpu.rotateA(SHIFT_OP_RR) })
	table[0x27] = op("DAA", 1, (*Cpu).daa)
	table[0x2F] = op("CPL", 1, func(cpu *Cpu) {
		cpu.A = ^cpu.A
		cpu.F.Set(FLAG_N | FLAG_H)
	})
	table[0x37] = op("SCF", 1, func(cpu *Cpu) {
		cpu.F.Clear(FLAG_N | FLAG_H)
		cpu.F.Set(FLAG_C)
	})
	table[0x3F] = op("CCF", 1, func(cpu *Cpu) {
		cpu.F.Clear(FLAG_N | FLAG_H)
		cpu.F.SetCarry(!cpu.F.Carry())
	})

	table[0x08] = op("LD (a16),SP", 3, func(cpu *Cpu) {
		cpu.Memory.Write16(cpu.fetch16(), cpu.SP)
	})

	table[0x10] = op("STOP", 2, func(cpu *Cpu) {
		cpu.fetch8()
		cpu.running = false
		logger.Logf(cpu.Log, logger.LEVEL_INFO, "cpu", "stop at 0x%04x", cpu.PC-1)
	})

	// Relative jumps
	table[0x18] = op("JR r8", 2, func(cpu *Cpu) {
		cpu.jr(true)
	})
	for cond := COND_NZ; cond <= COND_C; cond++ {
		col := uint8(cond) << 3
		table[0x20|col] = op(fmt.Sprintf("JR %v,r8", cond), 2, func(cpu *Cpu) {
			cpu.jr(cond.Test(cpu.F))
		})
	}

	// Register to register loads
	for dst := LOC_B; dst <= LOC_A; dst++ {
		for src := LOC_B; src <= LOC_A; src++ {
			opcode := 0x40 | uint8(dst)<<3 | uint8(src)
			if opcode == 0x76 {
				continue
			}
			table[opcode] = op(fmt.Sprintf("LD %v,%v", dst, src), 1, func(cpu *Cpu) {
				dst.Set(cpu, src.Get(cpu))
			})
		}
	}
	table[0x76] = op("HALT", 1, func(cpu *Cpu) {
		cpu.Halted = true
	})

	// Accumulator arithmetic and logic
	for aluop := ALU_OP_ADD; aluop <= ALU_OP_CP; aluop++ {
		col := uint8(aluop) << 3
		for src := LOC_B; src <= LOC_A; src++ {
			table[0x80|col|uint8(src)] = op(fmt.Sprintf("%v%v", aluop, src), 1, func(cpu *Cpu) {
				cpu.alu(aluop, src.Get(cpu))
			})
		}
		table[0xC6|col] = op(fmt.Sprintf("%vd8", aluop), 2, func(cpu *Cpu) {
			cpu.alu(aluop, cpu.fetch8())
		})
	}

	// Conditional control transfer
	for cond := COND_NZ; cond <= COND_C; cond++ {
		col := uint8(cond) << 3
		table[0xC0|col] = op(fmt.Sprintf("RET %v", cond), 1, func(cpu *Cpu) {
			if cond.Test(cpu.F) {
				cpu.ret()
			}
		})
		table[0xC2|col] = op(fmt.Sprintf("JP %v,a16", cond), 3, func(cpu *Cpu) {
			target := cpu.fetch16()
			if cond.Test(cpu.F) {
				cpu.jump(target)
			}
		})
		table[0xC4|col] = op(fmt.Sprintf("CALL %v,a16", cond), 3, func(cpu *Cpu) {
			target := cpu.fetch16()
			if cond.Test(cpu.F) {
				cpu.call(target)
			}
		})
	}
	table[0xC3] = op("JP a16", 3, func(cpu *Cpu) {
		cpu.jump(cpu.fetch16())
	})
	table[0xCD] = op("CALL a16", 3, func(cpu *Cpu) {
		cpu.call(cpu.fetch16())
	})
	table[0xC9] = op("RET", 1, (*Cpu).ret)
	table[0xD9] = op("RETI", 1, func(cpu *Cpu) {
		cpu.ret()
		cpu.IME = true
		cpu.eiDelay = 0
	})
	table[0xE9] = op("JP (HL)", 1, func(cpu *Cpu) {
		cpu.jump(cpu.Pair(REG_PAIR_HL))
	})

	// Restarts
	for n := range 8 {
		vector := uint16(n) << 3
		table[0xC7|uint8(vector)] = op(fmt.Sprintf("RST $%02X", vector), 1, func(cpu *Cpu) {
			cpu.rst(vector)
		})
	}

	// Stack
	for n, rp := range _pairs_af {
		row := uint8(n) << 4
		table[0xC1|row] = op(fmt.Sprintf("POP %v", rp), 1, func(cpu *Cpu) {
			cpu.setWord(rp, cpu.Pop())
		})
		table[0xC5|row] = op(fmt.Sprintf("PUSH %v", rp), 1, func(cpu *Cpu) {
			cpu.Push(cpu.word(rp))
		})
	}

	table[0xCB] = op("PREFIX CB", 2, func(cpu *Cpu) {
		opcode := cpu.fetch8()
		if cpu.fault != nil {
			return
		}
		_extended[opcode].exec(cpu)
	})

	// High page and absolute accumulator loads
	table[0xE0] = op("LDH (a8),A", 2, func(cpu *Cpu) {
		cpu.Memory.Write(0xFF00|uint16(cpu.fetch8()), cpu.A)
	})
	table[0xF0] = op("LDH A,(a8)", 2, func(cpu *Cpu) {
		cpu.A = cpu.Memory.Read(0xFF00 | uint16(cpu.fetch8()))
	})
	table[0xE2] = op("LD (C),A", 1, func(cpu *Cpu) {
		cpu.Memory.Write(0xFF00|uint16(cpu.C), cpu.A)
	})
	table[0xF2] = op("LD A,(C)", 1, func(cpu *Cpu) {
		cpu.A = cpu.Memory.Read(0xFF00 | uint16(cpu.C))
	})
	table[0xEA] = op("LD (a16),A", 3, func(cpu *Cpu) {
		cpu.Memory.Write(cpu.fetch16(), cpu.A)
	})
	table[0xFA] = op("LD A,(a16)", 3, func(cpu *Cpu) {
		cpu.A = cpu.Memory.Read(cpu.fetch16())
	})

	// Stack pointer arithmetic
	table[0xE8] = op("ADD SP,r8", 2, func(cpu *Cpu) {
		cpu.SP = cpu.addSP(cpu.fetch8())
	})
	table[0xF8] = op("LD HL,SP+r8", 2, func(cpu *Cpu) {
		cpu.SetPair(REG_PAIR_HL, cpu.addSP(cpu.fetch8()))
	})
	table[0xF9] = op("LD SP,HL", 1, func(cpu *Cpu) {
		cpu.SP = cpu.Pair(REG_PAIR_HL)
	})

	// Interrupt master enable
	table[0xF3] = op("DI", 1, func(cpu *Cpu) {
		cpu.IME = false
		cpu.eiDelay = 0
	})
	table[0xFB] = op("EI", 1, func(cpu *Cpu) {
		if cpu.DelayedEI {
			// Counted down after this instruction and the next.
			cpu.eiDelay = 2
		} else {
			cpu.IME = true
		}
	})

	return
}

// jr reads a signed displacement and branches relative to the following
// instruction when taken.
func (cpu *Cpu) jr(taken bool) {
	e := cpu.fetch8()
	if !taken || cpu.fault != nil {
		return
	}
	target := int32(cpu.PC) + 1 + int32(int8(e))
	if target < 0 || target > 0xFFFF {
		cpu.fault = ErrPcOverflow
		return
	}
	cpu.jump(uint16(target))
}

// Disassemble returns the instruction text at addr and its length in bytes.
func (cpu *Cpu) Disassemble(addr uint16) (text string, length int) {
	desc := _primary[cpu.Memory.Read(addr)]
	if cpu.Memory.Read(addr) == 0xCB {
		desc = _extended[cpu.Memory.Read(addr+1)]
	}

	text = desc.Mnemonic
	length = desc.Length

	d8 := cpu.Memory.Read(addr + 1)
	d16 := cpu.Memory.Read16(addr + 1)

	switch {
	case strings.Contains(text, "d16"):
		text = strings.Replace(text, "d16", fmt.Sprintf("$%04X", d16), 1)
	case strings.Contains(text, "a16"):
		text = strings.Replace(text, "a16", fmt.Sprintf("$%04X", d16), 1)
	case strings.Contains(text, "d8"):
		text = strings.Replace(text, "d8", fmt.Sprintf("$%02X", d8), 1)
	case strings.Contains(text, "a8"):
		text = strings.Replace(text, "a8", fmt.Sprintf("$FF%02X", d8), 1)
	case strings.Contains(text, "+r8"):
		text = strings.Replace(text, "+r8", fmt.Sprintf("%+d", int8(d8)), 1)
	case strings.Contains(text, "r8"):
		text = strings.Replace(text, "r8", fmt.Sprintf("%+d", int8(d8)), 1)
	}

	return
}

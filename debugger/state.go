package debugger

import (
	"fmt"

	"github.com/ezrec/gbcore/cpu"
)

// State is a read-only snapshot of the CPU, taken before the next
// instruction executes.
type State struct {
	cpu.Registers
	PC       uint16
	SP       uint16
	IME      bool
	Halted   bool
	Ticks    int
	Opcode   uint8  // Opcode byte at PC.
	Mnemonic string // Disassembly of the instruction at PC.
}

// Capture the current state of the CPU.
func Capture(c *cpu.Cpu) (state State) {
	state = State{
		Registers: c.Registers,
		PC:        c.PC,
		SP:        c.SP,
		IME:       c.IME,
		Halted:    c.Halted,
		Ticks:     c.Ticks,
		Opcode:    c.NextOpcode(),
	}
	state.Mnemonic, _ = c.Disassemble(c.PC)
	return
}

// String returns the register dump shown by the inspector.
func (state *State) String() (text string) {
	for _, rp := range []cpu.RegPair{cpu.REG_PAIR_AF, cpu.REG_PAIR_BC, cpu.REG_PAIR_DE, cpu.REG_PAIR_HL} {
		text += fmt.Sprintf("%v: 0x%04x\n", rp, state.Pair(rp))
	}
	text += fmt.Sprintf("PC: 0x%04x\n", state.PC)
	text += fmt.Sprintf("SP: 0x%04x\n", state.SP)
	text += fmt.Sprintf("Z: %d N: %d H: %d C: %d\n",
		b2i(state.F.Zero()), b2i(state.F.Subtract()), b2i(state.F.HalfCarry()), b2i(state.F.Carry()))
	return
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

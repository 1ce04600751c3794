package cpu

import (
	"errors"
	"fmt"
	"iter"
	"maps"

	"github.com/ezrec/gbcore/logger"
)

var _cpu_defines = map[string]int{
	"ADDR_ENTRY":     ADDR_ENTRY,
	"ADDR_STACK_TOP": ADDR_STACK_TOP,
	"ADDR_JOYPAD":    ADDR_JOYPAD,
	"ADDR_IF":        ADDR_IF,
	"ADDR_IE":        ADDR_IE,
	"ROM_LIMIT":      ROM_LIMIT,
	"INT_VBLANK":     int(INT_VBLANK.Vector()),
	"INT_LCD_STAT":   int(INT_LCD_STAT.Vector()),
	"INT_TIMER":      int(INT_TIMER.Vector()),
	"INT_SERIAL":     int(INT_SERIAL.Vector()),
	"INT_JOYPAD":     int(INT_JOYPAD.Vector()),
}

// Cpu is the complete architectural state of one SM83 processor and its
// 64 KiB address space.
type Cpu struct {
	Config
	Registers

	Log logger.Sink // Destination of diagnostics.

	PC     uint16 // Program counter.
	SP     uint16 // Stack pointer.
	Memory Memory // Flat address space.

	IME    bool // Interrupt master enable.
	Halted bool // Dispatch suspended until an enabled interrupt is pending.

	Ticks int // Instructions executed since reset.

	running bool
	jumped  bool  // Set by control transfers; skips the sequential advance.
	fault   error // Fatal condition raised during the current step.
	eiDelay int   // Instructions left before a delayed EI sets IME.
}

// NewCpu creates a new CPU, reset and ready to run, reporting to sink.
func NewCpu(sink logger.Sink) (cpu *Cpu) {
	if sink == nil {
		sink = logger.Discard
	}

	cpu = &Cpu{
		Log: sink,
	}
	cpu.Reset()

	return
}

// Defines returns the symbolic addresses of the machine.
func Defines() iter.Seq2[string, int] {
	return maps.All(_cpu_defines)
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, int] {
	return Defines()
}

// Reset the CPU state.
//   - Clears (or sets the post-boot values of) the registers.
//   - PC to the entry point, SP to the initial stack top.
//   - Clears halted, IME and any pending delayed EI.
//   - Zeroes memory.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		logger.Logf(cpu.Log, logger.LEVEL_DEBUG, "cpu", "reset")
	}

	cpu.Registers = Registers{}
	if cpu.PostBootState {
		cpu.SetPair(REG_PAIR_AF, 0x01B0)
		cpu.SetPair(REG_PAIR_BC, 0x0013)
		cpu.SetPair(REG_PAIR_DE, 0x00D8)
		cpu.SetPair(REG_PAIR_HL, 0x014D)
	}

	cpu.PC = ADDR_ENTRY
	cpu.SP = ADDR_STACK_TOP
	cpu.IME = false
	cpu.Halted = false
	cpu.Ticks = 0

	cpu.running = true
	cpu.jumped = false
	cpu.fault = nil
	cpu.eiDelay = 0

	cpu.Memory.Clear()
}

// LoadRom resets the CPU and copies the image into low memory. Bytes past
// the ROM area are ignored; n is the number of bytes copied.
func (cpu *Cpu) LoadRom(data []byte) (n int) {
	cpu.Reset()

	n = copy(cpu.Memory[:ROM_LIMIT], data)

	logger.Logf(cpu.Log, logger.LEVEL_INFO, "cpu", "loaded %v byte image", n)
	if n < len(data) {
		logger.Logf(cpu.Log, logger.LEVEL_WARN, "cpu", "image truncated, %v bytes ignored", len(data)-n)
	}

	return
}

// Running is cleared by STOP or Shutdown. The CPU itself never checks it.
func (cpu *Cpu) Running() bool {
	return cpu.running
}

// Shutdown clears the running flag.
func (cpu *Cpu) Shutdown() {
	cpu.running = false
}

// NextOpcode returns the primary opcode byte at PC.
func (cpu *Cpu) NextOpcode() uint8 {
	return cpu.Memory.Read(cpu.PC)
}

// Joypad returns the joypad register.
func (cpu *Cpu) Joypad() uint8 {
	return cpu.Memory.Read(ADDR_JOYPAD)
}

// SetJoypad sets the joypad register.
func (cpu *Cpu) SetJoypad(value uint8) {
	cpu.Memory.Write(ADDR_JOYPAD, value)
}

// Step executes one instruction, unless halted, then services at most one
// pending interrupt.
//
// A halted CPU with IME clear leaves HALT, without servicing, as soon as an
// enabled interrupt is pending.
func (cpu *Cpu) Step() (err error) {
	if cpu.fault != nil {
		err = cpu.fault
		return
	}

	if cpu.Halted {
		if !cpu.IME && cpu.Pending() != 0 {
			cpu.Halted = false
		}
	} else {
		err = cpu.execute()
		if err != nil {
			return
		}
	}

	cpu.ServiceInterrupt()

	return
}

// execute fetches, dispatches and retires the instruction at PC. On a
// fault, PC is left on the faulting instruction.
func (cpu *Cpu) execute() (err error) {
	pc := cpu.PC
	opcode := cpu.Memory.Read(pc)

	if cpu.Verbose {
		text, _ := cpu.Disassemble(pc)
		logger.Logf(cpu.Log, logger.LEVEL_DEBUG, "cpu", "%04x: %v", pc, text)
	}

	cpu.jumped = false
	if int(pc)+_primary[opcode].Length-1 > 0xFFFF {
		// Operands would run past the top of memory.
		cpu.fault = ErrPcOverflow
	} else {
		_primary[opcode].exec(cpu)
		if !cpu.jumped && cpu.fault == nil {
			cpu.advance()
		}
	}

	if cpu.fault != nil {
		cpu.PC = pc
		op := ErrOpcode{Pc: pc, Opcode: opcode}
		if opcode == 0xCB && pc != 0xFFFF {
			op.Opcode = cpu.Memory.Read(pc + 1)
			op.Extended = true
		}
		cpu.fault = errors.Join(op, cpu.fault)
		logger.Logf(cpu.Log, logger.LEVEL_ERROR, "cpu", "%v", cpu.fault)
		err = cpu.fault
		return
	}

	cpu.Ticks++

	if cpu.eiDelay > 0 {
		cpu.eiDelay--
		if cpu.eiDelay == 0 {
			cpu.IME = true
		}
	}

	return
}

// advance moves PC forward one byte. PC cannot move past the end of memory.
func (cpu *Cpu) advance() {
	if cpu.PC == 0xFFFF {
		cpu.fault = ErrPcOverflow
		return
	}
	cpu.PC++
}

// fetch8 advances PC and reads the operand byte there.
func (cpu *Cpu) fetch8() (value uint8) {
	cpu.advance()
	if cpu.fault != nil {
		return
	}
	return cpu.Memory.Read(cpu.PC)
}

// fetch16 reads a little-endian operand word.
func (cpu *Cpu) fetch16() (value uint16) {
	lo := cpu.fetch8()
	hi := cpu.fetch8()
	return uint16(hi)<<8 | uint16(lo)
}

// word reads a register pair, including SP.
func (cpu *Cpu) word(rp RegPair) uint16 {
	if rp == REG_PAIR_SP {
		return cpu.SP
	}
	return cpu.Pair(rp)
}

// setWord writes a register pair, including SP.
func (cpu *Cpu) setWord(rp RegPair, value uint16) {
	if rp == REG_PAIR_SP {
		cpu.SP = value
		return
	}
	cpu.SetPair(rp, value)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text = cpu.Registers.String() + "\n"
	text += fmt.Sprintf("   PC: %04X\n", cpu.PC)
	text += fmt.Sprintf("   SP: %04X (%04X)\n", cpu.SP, cpu.Peek())

	ime := "di"
	if cpu.IME {
		ime = "ei"
	}
	state := "run"
	if cpu.Halted {
		state = "halt"
	} else if !cpu.running {
		state = "stop"
	}
	text += fmt.Sprintf("  IME: %v %v\n", ime, state)

	return
}

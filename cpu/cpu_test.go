package cpu

import (
	"errors"
	"testing"

	"github.com/ezrec/gbcore/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCpu returns a CPU with program placed at the entry point.
func newTestCpu(program ...uint8) (cpu *Cpu) {
	cpu = NewCpu(nil)
	cpu.LoadRom(append(make([]uint8, ADDR_ENTRY), program...))
	return
}

// steps runs count instructions, failing the test on any error.
func steps(t *testing.T, cpu *Cpu, count int) {
	t.Helper()
	for range count {
		require.NoError(t, cpu.Step())
	}
}

func TestReset(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(nil)
	cpu.A = 0x12
	cpu.IME = true
	cpu.Halted = true
	cpu.Memory[0xC000] = 0x55
	cpu.Shutdown()

	cpu.Reset()
	assert.Equal(Registers{}, cpu.Registers)
	assert.Equal(uint16(ADDR_ENTRY), cpu.PC)
	assert.Equal(uint16(ADDR_STACK_TOP), cpu.SP)
	assert.False(cpu.IME)
	assert.False(cpu.Halted)
	assert.True(cpu.Running())
	assert.Equal(uint8(0), cpu.Memory[0xC000])
}

func TestResetPostBoot(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(nil)
	cpu.PostBootState = true
	cpu.Reset()

	assert.Equal(uint16(0x01B0), cpu.Pair(REG_PAIR_AF))
	assert.Equal(uint16(0x0013), cpu.Pair(REG_PAIR_BC))
	assert.Equal(uint16(0x00D8), cpu.Pair(REG_PAIR_DE))
	assert.Equal(uint16(0x014D), cpu.Pair(REG_PAIR_HL))
	assert.Equal("ZnHC", cpu.F.String())
}

func TestLoadRom(t *testing.T) {
	assert := assert.New(t)

	central := logger.NewCentral(16)
	cpu := NewCpu(central)

	short := make([]uint8, 0x200)
	for n := range short {
		short[n] = 0xAA
	}
	n := cpu.LoadRom(short)
	assert.Equal(0x200, n)
	assert.Equal(uint8(0xAA), cpu.Memory[0x1FF])
	assert.Equal(uint8(0x00), cpu.Memory[0x200])
	assert.Equal(1, central.Len())

	central.Clear()
	long := make([]uint8, ROM_LIMIT+0x1000)
	for n := range long {
		long[n] = 0x55
	}
	n = cpu.LoadRom(long)
	assert.Equal(ROM_LIMIT, n)
	assert.Equal(uint8(0x55), cpu.Memory[ROM_LIMIT-1])
	assert.Equal(uint8(0x00), cpu.Memory[ROM_LIMIT])

	entries := central.Entries()
	require.Len(t, entries, 2)
	assert.Equal(logger.LEVEL_INFO, entries[0].Level)
	assert.Equal(logger.LEVEL_WARN, entries[1].Level)

	n = cpu.LoadRom(nil)
	assert.Equal(0, n)
	assert.Equal(uint8(0x00), cpu.Memory[0])
}

func TestLoadImmediate(t *testing.T) {
	assert := assert.New(t)

	cpu := newTestCpu(
		0x01, 0x34, 0x12, // LD BC,$1234
		0x3E, 0x42, // LD A,$42
		0x31, 0x00, 0xD0, // LD SP,$D000
		0x26, 0x99, // LD H,$99
	)
	steps(t, cpu, 4)

	assert.Equal(uint16(0x1234), cpu.Pair(REG_PAIR_BC))
	assert.Equal(uint8(0x42), cpu.A)
	assert.Equal(uint16(0xD000), cpu.SP)
	assert.Equal(uint8(0x99), cpu.H)
	assert.Equal(uint16(0x10A), cpu.PC)
	assert.Equal(4, cpu.Ticks)
}

func TestLoadIndirect(t *testing.T) {
	assert := assert.New(t)

	cpu := newTestCpu(
		0x21, 0x00, 0xC0, // LD HL,$C000
		0x3E, 0x5A, // LD A,$5A
		0x22,       // LD (HL+),A
		0x32,       // LD (HL-),A
		0x36, 0x77, // LD (HL),$77
		0x46,             // LD B,(HL)
		0xEA, 0x10, 0xC0, // LD ($C010),A
		0xFA, 0x01, 0xC0, // LD A,($C001)
		0x08, 0x20, 0xC0, // LD ($C020),SP
	)
	steps(t, cpu, 3)
	assert.Equal(uint8(0x5A), cpu.Memory[0xC000])
	assert.Equal(uint16(0xC001), cpu.Pair(REG_PAIR_HL))

	steps(t, cpu, 1)
	assert.Equal(uint8(0x5A), cpu.Memory[0xC001])
	assert.Equal(uint16(0xC000), cpu.Pair(REG_PAIR_HL))

	steps(t, cpu, 2)
	assert.Equal(uint8(0x77), cpu.Memory[0xC000])
	assert.Equal(uint8(0x77), cpu.B)

	steps(t, cpu, 3)
	assert.Equal(uint8(0x5A), cpu.Memory[0xC010])
	assert.Equal(uint8(0x5A), cpu.A)
	assert.Equal(uint16(ADDR_STACK_TOP), cpu.Memory.Read16(0xC020))
}

func TestLoadHighPage(t *testing.T) {
	assert := assert.New(t)

	cpu := newTestCpu(
		0x3E, 0x1F, // LD A,$1F
		0xE0, 0x0F, // LDH ($FF0F),A
		0x0E, 0x80, // LD C,$80
		0xE2,       // LD (C),A
		0xF0, 0x44, // LDH A,($FF44)
		0xF2, // LD A,(C)
	)
	cpu.Memory[0xFF44] = 0x90

	steps(t, cpu, 4)
	assert.Equal(uint8(0x1F), cpu.Memory[ADDR_IF])
	assert.Equal(uint8(0x1F), cpu.Memory[0xFF80])

	steps(t, cpu, 1)
	assert.Equal(uint8(0x90), cpu.A)

	steps(t, cpu, 1)
	assert.Equal(uint8(0x1F), cpu.A)
}

func TestStackPointerLoads(t *testing.T) {
	assert := assert.New(t)

	cpu := newTestCpu(
		0x31, 0x00, 0xD0, // LD SP,$D000
		0xF8, 0xFE, // LD HL,SP-2
		0xF9,       // LD SP,HL
		0xE8, 0x04, // ADD SP,4
	)
	steps(t, cpu, 2)
	assert.Equal(uint16(0xCFFE), cpu.Pair(REG_PAIR_HL))
	assert.Equal("znhc", cpu.F.String())

	steps(t, cpu, 2)
	assert.Equal(uint16(0xD002), cpu.SP)
}

func TestPopAF(t *testing.T) {
	assert := assert.New(t)

	cpu := newTestCpu(
		0x01, 0xFF, 0x12, // LD BC,$12FF
		0xC5, // PUSH BC
		0xF1, // POP AF
		0xF5, // PUSH AF
		0xD1, // POP DE
	)
	steps(t, cpu, 3)
	assert.Equal(uint8(0x12), cpu.A)
	assert.Equal(Flags(0xF0), cpu.F)
	assert.Equal(uint16(ADDR_STACK_TOP), cpu.SP)

	steps(t, cpu, 2)
	assert.Equal(uint16(0x12F0), cpu.Pair(REG_PAIR_DE))
}

func TestUnknownOpcode(t *testing.T) {
	assert := assert.New(t)

	for _, opcode := range []uint8{0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD} {
		central := logger.NewCentral(4)
		cpu := newTestCpu(opcode)
		cpu.Log = central
		before := cpu.Registers

		err := cpu.Step()
		assert.NoError(err, "%02x", opcode)
		assert.Equal(uint16(0x101), cpu.PC, "%02x", opcode)
		assert.Equal(before, cpu.Registers, "%02x", opcode)

		entries := central.Entries()
		if assert.Len(entries, 1, "%02x", opcode) {
			assert.Equal(logger.LEVEL_WARN, entries[0].Level)
			assert.Equal("cpu", entries[0].Tag)
		}
	}
}

func TestStop(t *testing.T) {
	assert := assert.New(t)

	cpu := newTestCpu(0x10, 0x00, 0x00)
	assert.True(cpu.Running())

	steps(t, cpu, 1)
	assert.False(cpu.Running())
	assert.Equal(uint16(0x102), cpu.PC)
}

func TestPcOverflow(t *testing.T) {
	assert := assert.New(t)

	// Sequential advance past the top of memory.
	central := logger.NewCentral(4)
	cpu := NewCpu(central)
	cpu.PC = 0xFFFF

	err := cpu.Step()
	assert.ErrorIs(err, ErrPcOverflow)
	assert.ErrorIs(err, ErrOpcode{})
	assert.ErrorIs(cpu.Step(), ErrPcOverflow)
	entries := central.Entries()
	require.NotEmpty(t, entries)
	assert.Equal(logger.LEVEL_ERROR, entries[0].Level)

	// Operand fetch past the top of memory.
	cpu.Reset()
	cpu.PC = 0xFFFF
	cpu.Memory[0xFFFF] = 0x01 // LD BC,d16
	err = cpu.Step()
	var eo ErrOpcode
	assert.ErrorIs(err, ErrPcOverflow)
	if assert.True(errors.As(err, &eo)) {
		assert.Equal(uint16(0xFFFF), eo.Pc)
		assert.Equal(uint8(0x01), eo.Opcode)
	}

	// A jump whose operand ends at the top of memory is fine.
	cpu.Reset()
	cpu.PC = 0xFFFD
	cpu.Memory[0xFFFD] = 0xC3 // JP a16
	cpu.Memory[0xFFFE] = 0x00
	cpu.Memory[0xFFFF] = 0x02
	assert.NoError(cpu.Step())
	assert.Equal(uint16(0x0200), cpu.PC)

	// Relative jumps past either end of memory.
	table := [](struct {
		pc   uint16
		disp uint8
	}){
		{pc: 0xFFF0, disp: 0x7F},
		{pc: 0xFFFE, disp: 0x01},
		{pc: 0x0000, disp: 0xFD},
		{pc: 0x0010, disp: 0x80},
	}
	for _, entry := range table {
		cpu.Reset()
		cpu.PC = entry.pc
		cpu.Memory[entry.pc] = 0x18 // JR r8
		cpu.Memory[entry.pc+1] = entry.disp
		err = cpu.Step()
		assert.ErrorIs(err, ErrPcOverflow, "%04x", entry.pc)
		assert.Equal(entry.pc, cpu.PC, "%04x", entry.pc)
	}

	// Relative jumps that land on the last byte, or on the first.
	cpu.Reset()
	cpu.PC = 0xFFF0
	cpu.Memory[0xFFF0] = 0x18
	cpu.Memory[0xFFF1] = 0x0D
	assert.NoError(cpu.Step())
	assert.Equal(uint16(0xFFFF), cpu.PC)

	cpu.Reset()
	cpu.PC = 0x0010
	cpu.Memory[0x0010] = 0x18
	cpu.Memory[0x0011] = 0xEE
	assert.NoError(cpu.Step())
	assert.Equal(uint16(0x0000), cpu.PC)
}

func TestPcOverflowNoSideEffects(t *testing.T) {
	assert := assert.New(t)

	// CALL a16 with its operand cut off at the top of memory.
	cpu := NewCpu(nil)
	cpu.PC = 0xFFFE
	cpu.Memory[0xFFFE] = 0xCD
	cpu.Memory[0xFFFF] = 0x34
	before := cpu.Memory
	err := cpu.Step()
	assert.ErrorIs(err, ErrPcOverflow)
	assert.Equal(uint16(0xFFFE), cpu.PC)
	assert.Equal(uint16(ADDR_STACK_TOP), cpu.SP)
	assert.Equal(before, cpu.Memory)

	// CALL a16 whose return address would be past the top of memory.
	cpu.Reset()
	cpu.PC = 0xFFFD
	cpu.Memory[0xFFFD] = 0xCD
	cpu.Memory[0xFFFE] = 0x34
	cpu.Memory[0xFFFF] = 0x12
	before = cpu.Memory
	assert.ErrorIs(cpu.Step(), ErrPcOverflow)
	assert.Equal(uint16(0xFFFD), cpu.PC)
	assert.Equal(uint16(ADDR_STACK_TOP), cpu.SP)
	assert.Equal(before, cpu.Memory)

	// RST from the last byte of memory.
	cpu.Reset()
	cpu.PC = 0xFFFF
	cpu.Memory[0xFFFF] = 0xFF // RST $38
	before = cpu.Memory
	assert.ErrorIs(cpu.Step(), ErrPcOverflow)
	assert.Equal(uint16(0xFFFF), cpu.PC)
	assert.Equal(uint16(ADDR_STACK_TOP), cpu.SP)
	assert.Equal(before, cpu.Memory)

	// LD (a16),A with its operand cut off.
	cpu.Reset()
	cpu.A = 0x99
	cpu.PC = 0xFFFE
	cpu.Memory[0xFFFE] = 0xEA
	cpu.Memory[0xFFFF] = 0x34
	err = cpu.Step()
	assert.ErrorIs(err, ErrPcOverflow)
	assert.Equal(uint8(0x00), cpu.Memory[0x0034])
	assert.Equal(uint16(0xFFFE), cpu.PC)
}

func TestVerboseTrace(t *testing.T) {
	assert := assert.New(t)

	central := logger.NewCentral(8)
	cpu := NewCpu(central)
	cpu.Verbose = true
	cpu.LoadRom(append(make([]uint8, ADDR_ENTRY), 0x3E, 0x42))
	central.Clear()

	steps(t, cpu, 1)
	entries := central.Entries()
	require.Len(t, entries, 1)
	assert.Equal(logger.LEVEL_DEBUG, entries[0].Level)
	assert.Contains(entries[0].Detail, "LD A,$42")
}

func TestCpuString(t *testing.T) {
	assert := assert.New(t)

	cpu := newTestCpu(0x76)
	steps(t, cpu, 1)

	text := cpu.String()
	assert.Contains(text, "AF=0000")
	assert.Contains(text, "PC: 0101")
	assert.Contains(text, "SP: FFFE")
	assert.Contains(text, "di halt")
}

func TestDefines(t *testing.T) {
	assert := assert.New(t)

	defines := map[string]int{}
	for name, value := range NewCpu(nil).Defines() {
		defines[name] = value
	}

	assert.Equal(0x0100, defines["ADDR_ENTRY"])
	assert.Equal(0x0040, defines["INT_VBLANK"])
	assert.Equal(0x0060, defines["INT_JOYPAD"])
}

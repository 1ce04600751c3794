package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlags(t *testing.T) {
	assert := assert.New(t)

	var fl Flags
	fl.Set(0xFF)
	assert.Equal(FLAG_MASK, fl)
	assert.Equal("ZNHC", fl.String())

	fl.Clear(FLAG_N | FLAG_C)
	assert.Equal("ZnHc", fl.String())
	assert.True(fl.Test(FLAG_Z | FLAG_H))
	assert.False(fl.Test(FLAG_Z | FLAG_C))

	fl.SetCarry(true)
	fl.SetZero(false)
	assert.True(fl.Carry())
	assert.False(fl.Zero())
	assert.Equal(Flags(0x30), fl)
}

func TestRegisters_Pair(t *testing.T) {
	assert := assert.New(t)

	var regs Registers
	regs.SetPair(REG_PAIR_BC, 0x1234)
	regs.SetPair(REG_PAIR_DE, 0x5678)
	regs.SetPair(REG_PAIR_HL, 0x9ABC)
	regs.SetPair(REG_PAIR_AF, 0xDEFF)

	assert.Equal(uint8(0x12), regs.B)
	assert.Equal(uint8(0x34), regs.C)
	assert.Equal(uint8(0x9A), regs.H)
	assert.Equal(uint8(0xBC), regs.L)
	assert.Equal(uint8(0xDE), regs.A)
	assert.Equal(Flags(0xF0), regs.F)
	assert.Equal(uint16(0x5678), regs.Pair(REG_PAIR_DE))
	assert.Equal(uint16(0xDEF0), regs.Pair(REG_PAIR_AF))
	assert.Equal(uint16(0), regs.Pair(REG_PAIR_SP))
	assert.Equal("AF=DEF0 BC=1234 DE=5678 HL=9ABC F=ZNHC", regs.String())
}

func TestLocation(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(nil)
	cpu.SetPair(REG_PAIR_HL, 0xC123)

	for loc := LOC_B; loc <= LOC_A; loc++ {
		loc.Set(cpu, 0x40+uint8(loc))
	}

	// H and L are written before (HL), so the store lands at the new HL.
	assert.Equal(uint8(0x40), cpu.B)
	assert.Equal(uint8(0x47), cpu.A)
	assert.Equal(uint16(0x4445), cpu.Pair(REG_PAIR_HL))
	assert.Equal(uint8(0x46), cpu.Memory[0x4445])
	assert.True(LOC_HL.IsMemory())
	assert.Equal("(HL)", LOC_HL.String())
	assert.Equal(uint8(0x46), LOC_HL.Get(cpu))
}

func TestMemory(t *testing.T) {
	assert := assert.New(t)

	var mem Memory
	mem.Write16(0xFFFF, 0xABCD)
	assert.Equal(uint8(0xCD), mem[0xFFFF])
	assert.Equal(uint8(0xAB), mem[0x0000])
	assert.Equal(uint16(0xABCD), mem.Read16(0xFFFF))

	mem.Clear()
	assert.Equal(uint8(0), mem.Read(0xFFFF))
}

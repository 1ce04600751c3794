package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterrupt_Vector(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint16(0x40), INT_VBLANK.Vector())
	assert.Equal(uint16(0x48), INT_LCD_STAT.Vector())
	assert.Equal(uint16(0x50), INT_TIMER.Vector())
	assert.Equal(uint16(0x58), INT_SERIAL.Vector())
	assert.Equal(uint16(0x60), INT_JOYPAD.Vector())
	assert.Equal(uint8(0x10), INT_JOYPAD.Bit())
	assert.Equal("joypad", INT_JOYPAD.String())
}

func TestInterrupt_WakeFromHalt(t *testing.T) {
	assert := assert.New(t)

	const H = uint16(0x1234)

	cpu := NewCpu(nil)
	cpu.PC = H
	cpu.Halted = true
	cpu.IME = true
	cpu.Memory[ADDR_IE] = 0x01
	cpu.Memory[ADDR_IF] = 0x01

	irq, ok := cpu.ServiceInterrupt()
	assert.True(ok)
	assert.Equal(INT_VBLANK, irq)
	assert.Equal(uint16(0x0040), cpu.PC)
	assert.Equal(H, cpu.Memory.Read16(cpu.SP))
	assert.Equal(uint8(0), cpu.Memory[ADDR_IF]&0x01)
	assert.False(cpu.IME)
	assert.False(cpu.Halted)
}

func TestInterrupt_HaltStep(t *testing.T) {
	assert := assert.New(t)

	cpu := newTestCpu(0x76) // HALT
	cpu.IME = true

	steps(t, cpu, 1)
	assert.True(cpu.Halted)
	assert.Equal(uint16(0x0101), cpu.PC)

	// Idle while nothing is pending.
	steps(t, cpu, 3)
	assert.True(cpu.Halted)
	assert.Equal(uint16(0x0101), cpu.PC)
	assert.Equal(1, cpu.Ticks)

	cpu.Memory[ADDR_IE] = 0x04
	cpu.RequestInterrupt(INT_TIMER)
	steps(t, cpu, 1)
	assert.False(cpu.Halted)
	assert.Equal(uint16(0x0050), cpu.PC)
	assert.Equal(uint16(0x0101), cpu.Peek())
	assert.Equal(uint8(0), cpu.Memory[ADDR_IF])
}

func TestInterrupt_HaltWithoutIME(t *testing.T) {
	assert := assert.New(t)

	cpu := newTestCpu(0x76, 0x00) // HALT; NOP
	steps(t, cpu, 1)
	assert.True(cpu.Halted)

	// Requested but not enabled: stays halted.
	cpu.RequestInterrupt(INT_VBLANK)
	steps(t, cpu, 1)
	assert.True(cpu.Halted)

	// Enabled: wakes without servicing.
	cpu.Memory[ADDR_IE] = 0x01
	steps(t, cpu, 1)
	assert.False(cpu.Halted)
	assert.Equal(uint16(0x0101), cpu.PC)
	assert.Equal(uint16(ADDR_STACK_TOP), cpu.SP)
	assert.Equal(uint8(0x01), cpu.Memory[ADDR_IF])

	steps(t, cpu, 1)
	assert.Equal(uint16(0x0102), cpu.PC)
}

func TestInterrupt_Priority(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(nil)
	cpu.IME = true
	cpu.Memory[ADDR_IE] = 0x1F
	cpu.Memory[ADDR_IF] = 0x1E

	irq, ok := cpu.ServiceInterrupt()
	assert.True(ok)
	assert.Equal(INT_LCD_STAT, irq)
	assert.Equal(uint16(0x0048), cpu.PC)
	assert.Equal(uint8(0x1C), cpu.Memory[ADDR_IF])

	// IME is now clear.
	_, ok = cpu.ServiceInterrupt()
	assert.False(ok)
}

func TestInterrupt_Disabled(t *testing.T) {
	assert := assert.New(t)

	cpu := newTestCpu(0x00)
	cpu.Memory[ADDR_IE] = 0x01
	cpu.RequestInterrupt(INT_VBLANK)

	steps(t, cpu, 1)
	assert.Equal(uint16(0x0101), cpu.PC)
	assert.Equal(uint8(0x01), cpu.Pending())

	// Enabled by IE, but not requested.
	cpu.Memory[ADDR_IF] = 0
	cpu.IME = true
	_, ok := cpu.ServiceInterrupt()
	assert.False(ok)
	assert.True(cpu.IME)
}

func TestInterrupt_EI(t *testing.T) {
	assert := assert.New(t)

	cpu := newTestCpu(
		0xFB, // EI
		0xF3, // DI
	)
	steps(t, cpu, 1)
	assert.True(cpu.IME)
	steps(t, cpu, 1)
	assert.False(cpu.IME)
}

func TestInterrupt_DelayedEI(t *testing.T) {
	assert := assert.New(t)

	cpu := newTestCpu(
		0xFB, // EI
		0x00, // NOP
		0x00, // NOP
	)
	cpu.DelayedEI = true
	cpu.Memory[ADDR_IE] = 0x01
	cpu.RequestInterrupt(INT_VBLANK)

	steps(t, cpu, 1)
	assert.False(cpu.IME)
	assert.Equal(uint16(0x0101), cpu.PC)

	// Serviced once the instruction after EI retires.
	steps(t, cpu, 1)
	assert.Equal(uint16(0x0040), cpu.PC)
	assert.Equal(uint16(0x0102), cpu.Peek())
	assert.False(cpu.IME)
}

func TestInterrupt_DelayedEICancelled(t *testing.T) {
	assert := assert.New(t)

	cpu := newTestCpu(
		0xFB, // EI
		0xF3, // DI
		0x00, // NOP
	)
	cpu.DelayedEI = true

	steps(t, cpu, 3)
	assert.False(cpu.IME)
}

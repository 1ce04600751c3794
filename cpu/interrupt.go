package cpu

import (
	"github.com/ezrec/gbcore/logger"
)

// Interrupt is an interrupt source. Lower numbers have higher priority.
type Interrupt int

//go:generate go tool stringer -linecomment -type=Interrupt
const (
	INT_VBLANK   = Interrupt(0) // vblank
	INT_LCD_STAT = Interrupt(1) // lcd-stat
	INT_TIMER    = Interrupt(2) // timer
	INT_SERIAL   = Interrupt(3) // serial
	INT_JOYPAD   = Interrupt(4) // joypad

	INT_COUNT = 5
	INT_MASK  = uint8(1<<INT_COUNT - 1) // Bits of IF/IE that name a source.
)

// Bit returns the IF/IE bit of the source.
func (irq Interrupt) Bit() uint8 {
	return 1 << uint(irq)
}

// Vector returns the handler address of the source: 0x40, 0x48 .. 0x60.
func (irq Interrupt) Vector() uint16 {
	return 0x40 + 8*uint16(irq)
}

// RequestInterrupt raises the source's bit in the interrupt flag register.
func (cpu *Cpu) RequestInterrupt(irq Interrupt) {
	cpu.Memory[ADDR_IF] |= irq.Bit()
}

// Pending returns the sources that are both requested and enabled.
func (cpu *Cpu) Pending() uint8 {
	return cpu.Memory[ADDR_IF] & cpu.Memory[ADDR_IE] & INT_MASK
}

// ServiceInterrupt dispatches the highest priority pending interrupt, if IME
// is set. The source's flag bit and IME are cleared, a halted CPU resumes,
// and the current PC is pushed before jumping to the vector.
func (cpu *Cpu) ServiceInterrupt() (irq Interrupt, ok bool) {
	if !cpu.IME {
		return
	}

	pending := cpu.Pending()
	if pending == 0 {
		return
	}

	for irq = INT_VBLANK; irq <= INT_JOYPAD; irq++ {
		if pending&irq.Bit() != 0 {
			break
		}
	}

	cpu.Memory[ADDR_IF] &^= irq.Bit()
	cpu.IME = false
	cpu.eiDelay = 0
	if cpu.Halted {
		// PC already addresses the instruction after HALT.
		cpu.Halted = false
	}
	cpu.Push(cpu.PC)
	cpu.PC = irq.Vector()

	if cpu.Verbose {
		logger.Logf(cpu.Log, logger.LEVEL_DEBUG, "cpu", "interrupt %v -> 0x%04x", irq, irq.Vector())
	}

	ok = true
	return
}

package cpu

// Push a word: SP is pre-decremented before the high byte, then again
// before the low byte.
func (cpu *Cpu) Push(value uint16) {
	cpu.SP--
	cpu.Memory.Write(cpu.SP, uint8(value>>8))
	cpu.SP--
	cpu.Memory.Write(cpu.SP, uint8(value))
}

// Pop a word: the low byte is read first, SP is post-incremented after each
// read.
func (cpu *Cpu) Pop() (value uint16) {
	lo := cpu.Memory.Read(cpu.SP)
	cpu.SP++
	hi := cpu.Memory.Read(cpu.SP)
	cpu.SP++
	return uint16(hi)<<8 | uint16(lo)
}

// Peek returns the word at the top of the stack without popping it.
func (cpu *Cpu) Peek() uint16 {
	return cpu.Memory.Read16(cpu.SP)
}

// jump transfers control. The post-dispatch PC advance is skipped for the
// current instruction.
func (cpu *Cpu) jump(target uint16) {
	cpu.PC = target
	cpu.jumped = true
}

// call pushes the address of the next instruction and jumps to target. PC
// must be on the last byte of the calling instruction.
func (cpu *Cpu) call(target uint16) {
	if cpu.PC == 0xFFFF {
		// No return address past the top of memory.
		cpu.fault = ErrPcOverflow
		return
	}
	cpu.Push(cpu.PC + 1)
	cpu.jump(target)
}

// ret pops the return address and jumps to it.
func (cpu *Cpu) ret() {
	cpu.jump(cpu.Pop())
}

// rst calls one of the eight restart vectors at 0x00, 0x08 .. 0x38.
func (cpu *Cpu) rst(vector uint16) {
	cpu.call(vector & 0x38)
}

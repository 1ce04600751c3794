package cpu

// Address space layout.
const (
	MEMORY_SIZE    = 0x10000 // Flat 16-bit address space.
	ROM_LIMIT      = 0x8000  // Bytes of program image copied by LoadRom.
	ADDR_ENTRY     = 0x0100  // Program entry point.
	ADDR_STACK_TOP = 0xFFFE  // Initial stack pointer.
	ADDR_JOYPAD    = 0xFF00  // Joypad input register.
	ADDR_IF        = 0xFF0F  // Interrupt flag register.
	ADDR_IE        = 0xFFFF  // Interrupt enable register.
)

// Memory is the flat address space. Every 16-bit address is backed, so reads
// and writes never fail.
type Memory [MEMORY_SIZE]uint8

// Read a byte.
func (m *Memory) Read(addr uint16) uint8 {
	return m[addr]
}

// Write a byte.
func (m *Memory) Write(addr uint16, value uint8) {
	m[addr] = value
}

// Read16 reads a little-endian word.
func (m *Memory) Read16(addr uint16) uint16 {
	return uint16(m[addr]) | uint16(m[addr+1])<<8
}

// Write16 writes a little-endian word.
func (m *Memory) Write16(addr uint16, value uint16) {
	m[addr] = uint8(value)
	m[addr+1] = uint8(value >> 8)
}

// Clear zeroes the address space.
func (m *Memory) Clear() {
	clear(m[:])
}

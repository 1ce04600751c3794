// Package cpu implements an instruction-level interpreter for the SM83, the
// 8-bit processor of the DMG handheld console.
//
// The CPU consists of four 16-bit register pairs (AF, BC, DE, HL) addressable
// as 8-bit halves, a program counter, a downward growing stack pointer and a
// flat 64 KiB address space. Each call to Step executes one instruction
// through a 256-entry primary dispatch table (plus a generated 256-entry
// table behind the 0xCB prefix) and then services at most one pending
// interrupt.
//
// There is no internal clock. The host loop decides how often to call Step,
// and reacts to the error it returns.
package cpu

package cpu

// Config selects optional behaviour. The zero value is the default.
type Config struct {
	Verbose       bool // Trace every instruction at DEBUG level.
	DelayedEI     bool // EI sets IME after the following instruction.
	PostBootState bool // Reset loads the register values left by the boot ROM.
}

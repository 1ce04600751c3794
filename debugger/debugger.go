// Package debugger decides when control returns to an interactive
// inspector: on every instruction in step mode, or on a breakpoint in run
// mode.
//
// Breakpoints match the address or opcode of the next instruction, or a
// Starlark expression over the CPU state such as
//
//	pc == 0x150 and a > 3
//	mem(ADDR_IF) & 1
package debugger

import (
	"slices"

	"github.com/ezrec/gbcore/cpu"
	"github.com/ezrec/gbcore/internal"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Mode is the scheduling mode.
type Mode int

const (
	MODE_RUN  = Mode(0) // Run until a breakpoint.
	MODE_STEP = Mode(1) // Stop before every instruction.
)

func (mode Mode) String() string {
	if mode == MODE_STEP {
		return "step"
	}
	return "run"
}

// Inspector is the interactive collaborator. It is handed the state when
// the debugger stops, and may change the debugger's mode or breakpoints.
// Returning ErrQuit ends the session.
type Inspector interface {
	Inspect(dbg *Debugger, state State) (err error)
}

// Debugger holds the breakpoint set and mode.
type Debugger struct {
	Mode Mode

	addresses  map[uint16]bool
	opcodes    map[uint8]bool
	conditions []string
}

// NewDebugger creates a debugger in run mode with no breakpoints.
func NewDebugger() (dbg *Debugger) {
	dbg = &Debugger{
		addresses: map[uint16]bool{},
		opcodes:   map[uint8]bool{},
	}
	return
}

// AddAddress breaks before the instruction at pc.
func (dbg *Debugger) AddAddress(pc uint16) {
	dbg.addresses[pc] = true
}

// RemoveAddress removes an address breakpoint.
func (dbg *Debugger) RemoveAddress(pc uint16) {
	delete(dbg.addresses, pc)
}

// Addresses returns the address breakpoints in ascending order.
func (dbg *Debugger) Addresses() []uint16 {
	return slices.Collect(internal.SortedKeys(dbg.addresses))
}

// AddOpcode breaks before any instruction with the primary opcode.
func (dbg *Debugger) AddOpcode(opcode uint8) {
	dbg.opcodes[opcode] = true
}

// RemoveOpcode removes an opcode breakpoint.
func (dbg *Debugger) RemoveOpcode(opcode uint8) {
	delete(dbg.opcodes, opcode)
}

// Opcodes returns the opcode breakpoints in ascending order.
func (dbg *Debugger) Opcodes() []uint8 {
	return slices.Collect(internal.SortedKeys(dbg.opcodes))
}

// AddCondition breaks whenever expr is true. The expression is checked
// against a zeroed state before it is accepted.
func (dbg *Debugger) AddCondition(expr string) (err error) {
	_, err = eval(expr, State{}, nil)
	if err != nil {
		return
	}

	dbg.conditions = append(dbg.conditions, expr)
	return
}

// Conditions returns the condition breakpoints.
func (dbg *Debugger) Conditions() []string {
	return slices.Clone(dbg.conditions)
}

// Clear removes every breakpoint.
func (dbg *Debugger) Clear() {
	clear(dbg.addresses)
	clear(dbg.opcodes)
	dbg.conditions = nil
}

// Check returns true if control should go to the inspector before the
// next instruction of c executes.
func (dbg *Debugger) Check(c *cpu.Cpu) (brk bool, err error) {
	if dbg.Mode == MODE_STEP {
		brk = true
		return
	}

	if dbg.addresses[c.PC] || dbg.opcodes[c.NextOpcode()] {
		brk = true
		return
	}

	if len(dbg.conditions) == 0 {
		return
	}

	state := Capture(c)
	for _, expr := range dbg.conditions {
		brk, err = eval(expr, state, c)
		if err != nil || brk {
			return
		}
	}

	return
}

// predeclared builds the Starlark environment for a state.
func predeclared(state State, c *cpu.Cpu) (pred starlark.StringDict) {
	pred = starlark.StringDict{
		"a":      starlark.MakeInt(int(state.A)),
		"f":      starlark.MakeInt(int(state.F)),
		"b":      starlark.MakeInt(int(state.B)),
		"c":      starlark.MakeInt(int(state.C)),
		"d":      starlark.MakeInt(int(state.D)),
		"e":      starlark.MakeInt(int(state.E)),
		"h":      starlark.MakeInt(int(state.H)),
		"l":      starlark.MakeInt(int(state.L)),
		"af":     starlark.MakeInt(int(state.Pair(cpu.REG_PAIR_AF))),
		"bc":     starlark.MakeInt(int(state.Pair(cpu.REG_PAIR_BC))),
		"de":     starlark.MakeInt(int(state.Pair(cpu.REG_PAIR_DE))),
		"hl":     starlark.MakeInt(int(state.Pair(cpu.REG_PAIR_HL))),
		"pc":     starlark.MakeInt(int(state.PC)),
		"sp":     starlark.MakeInt(int(state.SP)),
		"opcode": starlark.MakeInt(int(state.Opcode)),
		"ticks":  starlark.MakeInt(state.Ticks),
		"ime":    starlark.Bool(state.IME),
		"halted": starlark.Bool(state.Halted),
		"zero":   starlark.Bool(state.F.Zero()),
		"carry":  starlark.Bool(state.F.Carry()),
	}

	for name, value := range cpu.Defines() {
		pred[name] = starlark.MakeInt(value)
	}

	pred["mem"] = starlark.NewBuiltin("mem", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var addr int
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &addr); err != nil {
			return nil, err
		}
		if c == nil {
			return starlark.MakeInt(0), nil
		}
		return starlark.MakeInt(int(c.Memory.Read(uint16(addr)))), nil
	})

	return
}

// eval evaluates a breakpoint expression.
func eval(expr string, state State, c *cpu.Cpu) (ok bool, err error) {
	defer func() {
		if err != nil {
			err = ErrCondition{Expr: expr, Err: err}
		}
	}()

	thread := starlark.Thread{Name: "breakpoint"}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, predeclared(state, c))
	if err != nil {
		return
	}
	rc, found := dict["rc"]
	if !found {
		err = ErrConditionResult
		return
	}

	ok = bool(rc.Truth())
	return
}

// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"iter"
	"maps"

	"github.com/ezrec/gbcore/cpu"
	"github.com/ezrec/gbcore/debugger"
	"github.com/ezrec/gbcore/internal"
	"github.com/ezrec/gbcore/logger"
	"github.com/ezrec/gbcore/rom"
)

var _emulator_defines = map[string]int{
	"JOYPAD_SELECT_DPAD":   int(JOYPAD_SELECT_DPAD),
	"JOYPAD_SELECT_BUTTON": int(JOYPAD_SELECT_BUTTON),
}

// Emulator state. CPU + debugger + keypad.
type Emulator struct {
	*cpu.Cpu                     // Reference to the CPU simulation.
	Debugger  *debugger.Debugger // Breakpoints and scheduling mode.
	Inspector debugger.Inspector // Called on breakpoints, if set.
	Keypad    Keypad             // Button state.
	Header    rom.Header         // Header of the loaded image.
}

// NewEmulator creates a new emulator reporting to sink.
func NewEmulator(sink logger.Sink, config cpu.Config) (emu *Emulator) {
	c := cpu.NewCpu(sink)
	c.Config = config
	c.Reset()

	emu = &Emulator{
		Cpu:      c,
		Debugger: debugger.NewDebugger(),
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, int] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// LoadImage resets the CPU and loads the image. Header problems, including
// an image too short to hold a header, are logged as warnings.
func (emu *Emulator) LoadImage(img *rom.Image) (err error) {
	hdr, hdr_err := img.Header()
	emu.Header = hdr
	if hdr_err != nil {
		logger.Logf(emu.Cpu.Log, logger.LEVEL_WARN, "rom", "%v: %v", img.Name, hdr_err)
	} else {
		logger.Logf(emu.Cpu.Log, logger.LEVEL_INFO, "rom", "%v", &hdr)
	}

	emu.Cpu.LoadRom(img.Data)

	return
}

// Tick performs a single tick of the emulator: keypad refresh, breakpoint
// check and one CPU step. done is set once the CPU stops running.
// Breakpoints are not checked while the CPU is halted.
func (emu *Emulator) Tick() (done bool, err error) {
	pc := emu.Cpu.PC
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, Err: err}
		}
	}()

	if !emu.Cpu.Running() {
		done = true
		return
	}

	emu.Keypad.Update(emu.Cpu)

	if emu.Inspector != nil && !emu.Cpu.Halted {
		var brk bool
		brk, err = emu.Debugger.Check(emu.Cpu)
		if err != nil {
			return
		}
		if brk {
			err = emu.Inspector.Inspect(emu.Debugger, debugger.Capture(emu.Cpu))
			if errors.Is(err, debugger.ErrQuit) {
				emu.Cpu.Shutdown()
				err = nil
				done = true
				return
			}
			if err != nil {
				return
			}
		}
	}

	err = emu.Cpu.Step()
	if err != nil {
		return
	}

	done = !emu.Cpu.Running()
	return
}

// Run ticks until the CPU stops, an error occurs, or limit ticks have run.
// A limit of zero or less runs without limit.
func (emu *Emulator) Run(limit int) (ticks int, err error) {
	for limit <= 0 || ticks < limit {
		if !emu.Cpu.Running() {
			return
		}
		var done bool
		done, err = emu.Tick()
		if err != nil {
			return
		}
		ticks++
		if done {
			return
		}
	}

	return
}

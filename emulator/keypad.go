package emulator

import (
	"github.com/ezrec/gbcore/cpu"
)

// Button is a keypad button.
type Button int

//go:generate go tool stringer -linecomment -type=Button
const (
	BUTTON_RIGHT  = Button(0) // right
	BUTTON_LEFT   = Button(1) // left
	BUTTON_UP     = Button(2) // up
	BUTTON_DOWN   = Button(3) // down
	BUTTON_A      = Button(4) // a
	BUTTON_B      = Button(5) // b
	BUTTON_SELECT = Button(6) // select
	BUTTON_START  = Button(7) // start
)

// Joypad register select lines, active low.
const (
	JOYPAD_SELECT_DPAD   = uint8(1 << 4)
	JOYPAD_SELECT_BUTTON = uint8(1 << 5)
	JOYPAD_LINES         = uint8(0x0F)
)

// Keypad is the button state presented through the joypad register.
type Keypad struct {
	pressed uint8 // Bit per Button.
}

// Press a button.
func (kp *Keypad) Press(btn Button) {
	kp.pressed |= 1 << uint(btn)
}

// Release a button.
func (kp *Keypad) Release(btn Button) {
	kp.pressed &^= 1 << uint(btn)
}

// Pressed returns true if the button is down.
func (kp *Keypad) Pressed(btn Button) bool {
	return kp.pressed&(1<<uint(btn)) != 0
}

// lines returns the active-low input lines for the selected groups.
func (kp *Keypad) lines(sel uint8) (lines uint8) {
	lines = JOYPAD_LINES
	if sel&JOYPAD_SELECT_DPAD == 0 {
		lines &^= kp.pressed & 0x0F
	}
	if sel&JOYPAD_SELECT_BUTTON == 0 {
		lines &^= kp.pressed >> 4
	}
	return
}

// Update refreshes the input lines of the joypad register from the select
// lines the program wrote. A line falling from high to low requests the
// joypad interrupt.
func (kp *Keypad) Update(c *cpu.Cpu) {
	old := c.Joypad()
	lines := kp.lines(old)

	c.SetJoypad(old&^JOYPAD_LINES | lines)

	if old&JOYPAD_LINES&^lines != 0 {
		c.RequestInterrupt(cpu.INT_JOYPAD)
	}
}

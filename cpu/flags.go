package cpu

// Flags is the F register. Only the upper nibble is architectural; the lower
// nibble always reads as zero.
type Flags uint8

const (
	FLAG_Z    = Flags(1 << 7) // Zero
	FLAG_N    = Flags(1 << 6) // Subtract
	FLAG_H    = Flags(1 << 5) // Half carry
	FLAG_C    = Flags(1 << 4) // Carry
	FLAG_MASK = FLAG_Z | FLAG_N | FLAG_H | FLAG_C
)

// makeFlags builds a complete flag byte.
func makeFlags(z, n, h, c bool) (fl Flags) {
	fl.Put(FLAG_Z, z)
	fl.Put(FLAG_N, n)
	fl.Put(FLAG_H, h)
	fl.Put(FLAG_C, c)
	return
}

// Test returns true if every bit of flag is set.
func (fl Flags) Test(flag Flags) bool {
	return fl&flag == flag
}

// Set the flag bits.
func (fl *Flags) Set(flag Flags) {
	*fl |= flag & FLAG_MASK
}

// Clear the flag bits.
func (fl *Flags) Clear(flag Flags) {
	*fl &^= flag
}

// Put sets or clears the flag bits.
func (fl *Flags) Put(flag Flags, on bool) {
	if on {
		fl.Set(flag)
	} else {
		fl.Clear(flag)
	}
}

func (fl Flags) Zero() bool      { return fl.Test(FLAG_Z) }
func (fl Flags) Subtract() bool  { return fl.Test(FLAG_N) }
func (fl Flags) HalfCarry() bool { return fl.Test(FLAG_H) }
func (fl Flags) Carry() bool     { return fl.Test(FLAG_C) }

func (fl *Flags) SetZero(on bool)      { fl.Put(FLAG_Z, on) }
func (fl *Flags) SetSubtract(on bool)  { fl.Put(FLAG_N, on) }
func (fl *Flags) SetHalfCarry(on bool) { fl.Put(FLAG_H, on) }
func (fl *Flags) SetCarry(on bool)     { fl.Put(FLAG_C, on) }

// String returns the flags as a labelled bit pattern, upper case when set,
// e.g. "ZnHc".
func (fl Flags) String() string {
	label := []byte("znhc")
	for n, flag := range []Flags{FLAG_Z, FLAG_N, FLAG_H, FLAG_C} {
		if fl.Test(flag) {
			label[n] -= 'a' - 'A'
		}
	}
	return string(label)
}

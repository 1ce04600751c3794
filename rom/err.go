package rom

import (
	"errors"

	"github.com/ezrec/gbcore/translate"
)

var f = translate.From

var (
	// Image errors
	ErrShort    = errors.New(f("image too short for a cartridge header"))
	ErrLogo     = errors.New(f("cartridge logo mismatch"))
	ErrChecksum = errors.New(f("cartridge header checksum mismatch"))
	ErrRomSize  = errors.New(f("cartridge rom size code invalid"))
)

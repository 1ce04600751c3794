package rom

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// Cartridge header layout.
const (
	HEADER_ENTRY           = 0x0100
	HEADER_LOGO            = 0x0104
	HEADER_TITLE           = 0x0134
	HEADER_CGB_FLAG        = 0x0143
	HEADER_CART_TYPE       = 0x0147
	HEADER_ROM_SIZE        = 0x0148
	HEADER_RAM_SIZE        = 0x0149
	HEADER_VERSION         = 0x014C
	HEADER_CHECKSUM        = 0x014D
	HEADER_GLOBAL_CHECKSUM = 0x014E
	HEADER_END             = 0x0150

	TITLE_SIZE = 16
	BANK_SIZE  = 0x4000
)

// Logo is the bitmap every licensed cartridge carries at 0x0104.
var Logo = [48]byte{
	0xCE, 0xED, 0x66, 0x66, 0xCC, 0x0D, 0x00, 0x0B, 0x03, 0x73, 0x00, 0x83, 0x00, 0x0C, 0x00, 0x0D,
	0x00, 0x08, 0x11, 0x1F, 0x88, 0x89, 0x00, 0x0E, 0xDC, 0xCC, 0x6E, 0xE6, 0xDD, 0xDD, 0xD9, 0x99,
	0xBB, 0xBB, 0x67, 0x63, 0x6E, 0x0E, 0xEC, 0xCC, 0xDD, 0xDC, 0x99, 0x9F, 0xBB, 0xB9, 0x33, 0x3E,
}

var _cart_type_names = map[uint8]string{
	0x00: "ROM ONLY",
	0x01: "MBC1",
	0x02: "MBC1+RAM",
	0x03: "MBC1+RAM+BATTERY",
	0x05: "MBC2",
	0x06: "MBC2+BATTERY",
	0x08: "ROM+RAM",
	0x09: "ROM+RAM+BATTERY",
	0x0F: "MBC3+TIMER+BATTERY",
	0x10: "MBC3+TIMER+RAM+BATTERY",
	0x11: "MBC3",
	0x12: "MBC3+RAM",
	0x13: "MBC3+RAM+BATTERY",
	0x19: "MBC5",
	0x1A: "MBC5+RAM",
	0x1B: "MBC5+RAM+BATTERY",
	0x1C: "MBC5+RUMBLE",
	0x1D: "MBC5+RUMBLE+RAM",
	0x1E: "MBC5+RUMBLE+RAM+BATTERY",
}

// CartType is the memory bank controller code.
type CartType uint8

func (ct CartType) String() string {
	name, ok := _cart_type_names[uint8(ct)]
	if !ok {
		return fmt.Sprintf("CartType(0x%02x)", uint8(ct))
	}
	return name
}

// Kilobytes of external RAM, by size code.
var _ram_sizes = [...]int{0, 2, 8, 32, 128, 64}

// Header is the decoded cartridge header.
type Header struct {
	Entry          [4]byte
	LogoOk         bool
	Title          string
	CgbFlag        uint8
	CartType       CartType
	RomSizeCode    uint8
	RamSizeCode    uint8
	Version        uint8
	Checksum       uint8 // Stored header checksum.
	GlobalChecksum uint16
}

// RomSize returns the ROM size in bytes, or zero for an invalid code.
func (hdr *Header) RomSize() int {
	if hdr.RomSizeCode > 8 {
		return 0
	}
	return 2 * BANK_SIZE << hdr.RomSizeCode
}

// RamSize returns the external RAM size in bytes.
func (hdr *Header) RamSize() int {
	if int(hdr.RamSizeCode) >= len(_ram_sizes) {
		return 0
	}
	return _ram_sizes[hdr.RamSizeCode] * 1024
}

func (hdr *Header) String() string {
	return fmt.Sprintf("%q %v rom=%dK ram=%dK v%d",
		hdr.Title, hdr.CartType, hdr.RomSize()/1024, hdr.RamSize()/1024, hdr.Version)
}

// HeaderChecksum computes the checksum over 0x0134..0x014C.
func HeaderChecksum(data []byte) (sum uint8) {
	for _, b := range data[HEADER_TITLE:HEADER_CHECKSUM] {
		sum = sum - b - 1
	}
	return
}

// Header decodes the cartridge header. The header is returned even when it
// fails validation; err then joins every problem found.
func (img *Image) Header() (hdr Header, err error) {
	data := img.Data
	if len(data) < HEADER_END {
		err = ErrShort
		return
	}

	copy(hdr.Entry[:], data[HEADER_ENTRY:])
	hdr.LogoOk = bytes.Equal(Logo[:], data[HEADER_LOGO:HEADER_LOGO+len(Logo)])

	title := data[HEADER_TITLE : HEADER_TITLE+TITLE_SIZE]
	hdr.CgbFlag = data[HEADER_CGB_FLAG]
	if hdr.CgbFlag&0x80 != 0 {
		title = title[:TITLE_SIZE-1]
	}
	hdr.Title = strings.TrimRight(string(title), "\x00 ")

	hdr.CartType = CartType(data[HEADER_CART_TYPE])
	hdr.RomSizeCode = data[HEADER_ROM_SIZE]
	hdr.RamSizeCode = data[HEADER_RAM_SIZE]
	hdr.Version = data[HEADER_VERSION]
	hdr.Checksum = data[HEADER_CHECKSUM]
	hdr.GlobalChecksum = uint16(data[HEADER_GLOBAL_CHECKSUM])<<8 | uint16(data[HEADER_GLOBAL_CHECKSUM+1])

	var errs []error
	if !hdr.LogoOk {
		errs = append(errs, ErrLogo)
	}
	if HeaderChecksum(data) != hdr.Checksum {
		errs = append(errs, ErrChecksum)
	}
	if hdr.RomSize() == 0 {
		errs = append(errs, ErrRomSize)
	}
	err = errors.Join(errs...)

	return
}

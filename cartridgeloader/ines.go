// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

package cartridgeloader

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
)

// Sentinal errors returned by ParseINES().
var (
	NotINES           = errors.New("not an iNES image")
	UnsupportedFormat = errors.New("unsupported format")
	Truncated         = errors.New("image is truncated")
)

const (
	headerSize  = 16
	trainerSize = 512
)

var magic = []byte{'N', 'E', 'S', 0x1a}

// flags in byte 6 of the header
const (
	flag6Vertical   = 0x01
	flag6Battery    = 0x02
	flag6Trainer    = 0x04
	flag6FourScreen = 0x08
)

// bits 2 and 3 of byte 7 identify a NES 2.0 header
const (
	flag7FormatMask = 0x0c
	flag7NES2       = 0x08
)

// ParseINES parses an iNES image. The trainer, if present, is skipped. The
// four-screen layout and NES 2.0 images are not supported.
func ParseINES(data []byte) (cartridge.Data, error) {
	var cart cartridge.Data

	if len(data) < headerSize || !bytes.Equal(data[:len(magic)], magic) {
		return cart, fmt.Errorf("ines: %w", NotINES)
	}

	header := data[:headerSize]
	flags6 := header[6]
	flags7 := header[7]

	if flags7&flag7FormatMask == flag7NES2 {
		return cart, fmt.Errorf("ines: %w: NES 2.0", UnsupportedFormat)
	}

	if flags6&flag6FourScreen == flag6FourScreen {
		return cart, fmt.Errorf("ines: %w: four-screen layout", UnsupportedFormat)
	}

	cart.PRGPages = int(header[4])
	cart.CHRPages = int(header[5])

	if cart.PRGPages == 0 {
		return cart, fmt.Errorf("ines: %w: no PRG pages", UnsupportedFormat)
	}

	// the upper nybble of the mapper ID is only used if the end of the header
	// is clear. older tools wrote text into the padding
	cart.MapperID = int(flags6 >> 4)
	if bytes.Count(header[12:], []byte{0}) == len(header[12:]) {
		cart.MapperID |= int(flags7 & 0xf0)
	}

	if flags6&flag6Vertical == flag6Vertical {
		cart.Mirroring = mapper.Vertical
	} else {
		cart.Mirroring = mapper.Horizontal
	}
	cart.Battery = flags6&flag6Battery == flag6Battery

	offset := headerSize
	if flags6&flag6Trainer == flag6Trainer {
		offset += trainerSize
	}

	prgSize := cart.PRGPages * mapper.PageSize
	chrSize := cart.CHRPages * mapper.CHRPageSize

	if len(data) < offset+prgSize+chrSize {
		return cart, fmt.Errorf("ines: %w: %d bytes; expected %d", Truncated, len(data), offset+prgSize+chrSize)
	}

	cart.PRG = make([]uint8, prgSize)
	copy(cart.PRG, data[offset:])
	offset += prgSize

	cart.CHR = make([]uint8, chrSize)
	copy(cart.CHR, data[offset:])

	return cart, nil
}

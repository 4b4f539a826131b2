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

package cartridgeloader_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/test"
)

// build an iNES image. the first byte of each PRG page is the page number and
// the first byte of each CHR page is the page number with the top bit set
func newImage(prg int, chr int, flags6 uint8, flags7 uint8, trainer bool) []byte {
	img := []byte{'N', 'E', 'S', 0x1a, uint8(prg), uint8(chr), flags6, flags7}
	img = append(img, make([]byte, 8)...)
	if trainer {
		img[6] |= 0x04
		img = append(img, make([]byte, 512)...)
		img[len(img)-1] = 0xff
	}
	for p := range prg {
		page := make([]byte, mapper.PageSize)
		page[0] = uint8(p)
		img = append(img, page...)
	}
	for p := range chr {
		page := make([]byte, mapper.CHRPageSize)
		page[0] = uint8(0x80 | p)
		img = append(img, page...)
	}
	return img
}

func TestHeader(t *testing.T) {
	data, err := cartridgeloader.ParseINES(newImage(8, 2, 0x13, 0x00, false))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, data.PRGPages, 8)
	test.ExpectEquality(t, data.CHRPages, 2)
	test.ExpectEquality(t, data.MapperID, 1)
	test.ExpectEquality(t, data.Mirroring, mapper.Vertical)
	test.ExpectEquality(t, data.Battery, true)
	test.ExpectEquality(t, len(data.PRG), 8*mapper.PageSize)
	test.ExpectEquality(t, len(data.CHR), 2*mapper.CHRPageSize)
	test.ExpectEquality(t, data.PRG[mapper.PageSize*7], 7)
	test.ExpectEquality(t, data.CHR[mapper.CHRPageSize], 0x81)

	data, err = cartridgeloader.ParseINES(newImage(1, 0, 0x00, 0x00, false))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, data.MapperID, 0)
	test.ExpectEquality(t, data.Mirroring, mapper.Horizontal)
	test.ExpectEquality(t, data.Battery, false)
	test.ExpectEquality(t, len(data.CHR), 0)
}

func TestMapperID(t *testing.T) {
	img := newImage(1, 1, 0x40, 0x10, false)
	data, err := cartridgeloader.ParseINES(img)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, data.MapperID, 0x14)

	// text in the padding means the upper nybble can't be trusted
	copy(img[12:], "Dude")
	data, err = cartridgeloader.ParseINES(img)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, data.MapperID, 0x04)
}

func TestTrainer(t *testing.T) {
	data, err := cartridgeloader.ParseINES(newImage(2, 1, 0x10, 0x00, true))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, data.PRG[0], 0x00)
	test.ExpectEquality(t, data.PRG[mapper.PageSize], 0x01)
	test.ExpectEquality(t, data.CHR[0], 0x80)
}

func TestBadImages(t *testing.T) {
	_, err := cartridgeloader.ParseINES([]byte("NES"))
	test.ExpectEquality(t, errors.Is(err, cartridgeloader.NotINES), true)

	img := newImage(1, 1, 0x10, 0x00, false)
	img[0] = 'X'
	_, err = cartridgeloader.ParseINES(img)
	test.ExpectEquality(t, errors.Is(err, cartridgeloader.NotINES), true)

	_, err = cartridgeloader.ParseINES(newImage(1, 1, 0x10, 0x08, false))
	test.ExpectEquality(t, errors.Is(err, cartridgeloader.UnsupportedFormat), true)

	_, err = cartridgeloader.ParseINES(newImage(1, 1, 0x18, 0x00, false))
	test.ExpectEquality(t, errors.Is(err, cartridgeloader.UnsupportedFormat), true)

	_, err = cartridgeloader.ParseINES(newImage(0, 1, 0x10, 0x00, false))
	test.ExpectEquality(t, errors.Is(err, cartridgeloader.UnsupportedFormat), true)

	img = newImage(2, 1, 0x10, 0x00, false)
	_, err = cartridgeloader.ParseINES(img[:len(img)-1])
	test.ExpectEquality(t, errors.Is(err, cartridgeloader.Truncated), true)
}

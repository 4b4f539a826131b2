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

package cartridge

import (
	"errors"

	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
)

const ejectedName = "ejected"
const ejectedHash = "nohash"

// Ejected is returned when an attempt is made to patch an ejected cartridge.
var Ejected = errors.New("cartridge: ejected")

// ejected implements the mapper.CartMapper interface. Reads return zero and
// writes are ignored.
type ejected struct {
	chr []uint8
}

func newEjected() *ejected {
	return &ejected{
		chr: make([]uint8, mapper.CHRPageSize),
	}
}

func (cart *ejected) String() string {
	return ejectedName
}

// ID implements the mapper.CartMapper interface.
func (cart *ejected) ID() string {
	return "-"
}

// Snapshot implements the mapper.CartMapper interface.
func (cart *ejected) Snapshot() mapper.CartMapper {
	n := newEjected()
	copy(n.chr, cart.chr)
	return n
}

// Reset implements the mapper.CartMapper interface.
func (cart *ejected) Reset() {
}

// Read implements the mapper.CartMapper interface.
func (cart *ejected) Read(_ uint16) (uint8, error) {
	return 0, nil
}

// Write implements the mapper.CartMapper interface.
func (cart *ejected) Write(_ uint16, _ uint8) error {
	return nil
}

// Patch implements the mapper.CartMapper interface.
func (cart *ejected) Patch(_ uint16, _ uint8) error {
	return Ejected
}

// ReadCHR implements the mapper.CartMapper interface.
func (cart *ejected) ReadCHR(addr uint16) uint8 {
	return cart.chr[addr]
}

// WriteCHR implements the mapper.CartMapper interface.
func (cart *ejected) WriteCHR(addr uint16, data uint8) {
	cart.chr[addr] = data
}

// Mirroring implements the mapper.CartMapper interface.
func (cart *ejected) Mirroring() mapper.Mirroring {
	return mapper.Horizontal
}

// LoadedPages implements the mapper.CartMapper interface.
func (cart *ejected) LoadedPages() (int, int) {
	return 0, 0
}

// CopyBanks implements the mapper.CartMapper interface.
func (cart *ejected) CopyBanks() []mapper.BankContent {
	return nil
}

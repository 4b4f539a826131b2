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

package mapper

import "errors"

// ConfigurationError is returned when the bank registers of a mapper select
// a page that is not present in the cartridge image. The error is fatal.
var ConfigurationError = errors.New("configuration error")

// CartMapper implementations hold the actual data from the loaded ROM and
// keep track of which pages are mapped to individual addresses. For
// convenience, the PRG functions receive the address normalised to a range of
// 0x0000 to 0x7fff and the CHR functions receive a PPU address in the range
// 0x0000 to 0x1fff.
type CartMapper interface {
	ID() string
	String() string

	Snapshot() CartMapper

	// reset the mapper registers to their power-on state
	Reset()

	// read a byte from the PRG image using the current page selection. a
	// read does not change the state of the mapper
	Read(addr uint16) (uint8, error)

	// write a value to the mapper registers. the PRG image is not affected
	Write(addr uint16, data uint8) error

	// change the byte in the PRG image that is currently mapped to the
	// address
	Patch(addr uint16, data uint8) error

	// access to the pattern tables. writes to CHR ROM are ignored
	ReadCHR(addr uint16) uint8
	WriteCHR(addr uint16, data uint8)

	// the nametable arrangement currently selected by the mapper
	Mirroring() Mirroring

	// the indices of the 16KB pages visible at 0x8000 and 0xc000
	LoadedPages() (lo int, hi int)

	// return copies of all PRG pages in the cartridge. the disassembly
	// process uses this to access cartridge data freely and without affecting
	// the state of the cartridge.
	CopyBanks() []BankContent
}

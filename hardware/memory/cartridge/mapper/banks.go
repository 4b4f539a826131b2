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

import (
	"fmt"
)

// PageSize is the size of a PRG page in bytes.
const PageSize = 0x4000

// CHRPageSize is the size of a CHR page in bytes.
const CHRPageSize = 0x2000

// BankContent contains data and ID of a cartridge bank. Used by CopyBanks()
// and helps the disassembly process.
type BankContent struct {
	Number int

	// copy of the bank data
	Data []uint8

	// the CPU address the first byte of Data is mapped to. MMC1 can map most
	// pages to either 0x8000 or 0xc000 so the origin reflects the current
	// mapping if the page is mapped and 0x8000 if it is not
	Origin uint16

	// whether the page is currently visible to the CPU
	Mapped bool
}

func (b BankContent) String() string {
	if b.Mapped {
		return fmt.Sprintf("%d @ %04x", b.Number, b.Origin)
	}
	return fmt.Sprintf("%d", b.Number)
}

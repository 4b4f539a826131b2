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
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
)

// Data is the content of a cartridge image, as extracted by the
// cartridgeloader package. The data is assumed to be valid.
type Data struct {
	// PRG is PRGPages*16KB and CHR is CHRPages*8KB. CHR will be empty if the
	// cartridge uses CHR RAM
	PRG      []uint8
	CHR      []uint8
	PRGPages int
	CHRPages int

	MapperID int

	// the mirroring selected by the wiring of the cartridge. mappers that
	// can change mirroring ignore this
	Mirroring mapper.Mirroring

	// whether the SRAM is battery backed
	Battery bool
}

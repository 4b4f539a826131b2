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

// Package cartridge implements the cartridge side of the NES memory map: the
// PRG area at 0x8000 to 0xffff, the SRAM area at 0x6000 to 0x7fff and the
// pattern tables seen by the PPU.
//
// The PRG image is larger than the space available to it and so the mapper
// chip on the cartridge switches pages of the image in and out of the address
// space. Currently supported mappers:
//
//	MMC1		mapper 1
//
// Cartridge data is created by the cartridgeloader package and attached with
// the Attach() function.
package cartridge

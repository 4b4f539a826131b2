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

package ppu

// palette addresses 0x3f10, 0x3f14, 0x3f18 and 0x3f1c are mirrors of 0x3f00,
// 0x3f04, 0x3f08 and 0x3f0c
func paletteIndex(addr uint16) uint16 {
	idx := addr & 0x1f
	if idx&0x13 == 0x10 {
		idx &^= 0x10
	}
	return idx
}

// read from PPU memory. the address must be in the range 0x0000 to 0x3fff.
// the PPU must be locked.
func (ppu *PPU) read(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return ppu.cart.ReadCHR(addr)
	case addr < 0x3f00:
		return ppu.vram[ppu.cart.Mirroring().Nametable(addr)]
	}
	return ppu.palette[paletteIndex(addr)]
}

// write to PPU memory. the address must be in the range 0x0000 to 0x3fff.
// the PPU must be locked.
func (ppu *PPU) write(addr uint16, data uint8) {
	switch {
	case addr < 0x2000:
		ppu.cart.WriteCHR(addr, data)
	case addr < 0x3f00:
		ppu.vram[ppu.cart.Mirroring().Nametable(addr)] = data
	default:
		ppu.palette[paletteIndex(addr)] = data
	}
}

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

// Mirroring describes how the four logical nametables seen by the PPU are
// arranged in the 2KB of VRAM in the console.
type Mirroring int

// List of valid Mirroring values. The values match the encoding of the lower
// two bits of the MMC1 control register.
const (
	OneScreenLower Mirroring = iota
	OneScreenUpper
	Vertical
	Horizontal
)

func (m Mirroring) String() string {
	switch m {
	case OneScreenLower:
		return "one screen (lower)"
	case OneScreenUpper:
		return "one screen (upper)"
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	}
	return "unknown mirroring"
}

// Nametable converts a PPU address in the nametable area (0x2000 to 0x3eff)
// to an index into the 2KB of VRAM.
func (m Mirroring) Nametable(addr uint16) uint16 {
	addr = (addr - 0x2000) & 0x0fff
	table := addr / 0x0400
	offset := addr & 0x03ff

	switch m {
	case OneScreenLower:
		return offset
	case OneScreenUpper:
		return 0x0400 | offset
	case Vertical:
		return (table&0x01)*0x0400 | offset
	case Horizontal:
		return (table>>1)*0x0400 | offset
	}
	return offset
}

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

// The PPU registers as seen by the CPU. The value is the offset from 0x2000
// after the address has been normalised.
const (
	Control1 = iota
	Control2
	Status
	OAMAddress
	OAMData
	Scroll
	VRAMAddress
	VRAMData
)

// RegisterNames are the names of the PPU registers indexed by register
// number.
var RegisterNames = [...]string{"PPUCTRL", "PPUMASK", "PPUSTATUS", "OAMADDR", "OAMDATA", "PPUSCROLL", "PPUADDR", "PPUDATA"}

// Bits in the Control1 register.
const (
	Control1Nametable   = 0x03
	Control1Increment   = 0x04
	Control1SpriteTable = 0x08
	Control1BGTable     = 0x10
	Control1SpriteSize  = 0x20
	Control1NMI         = 0x80
)

// Bits in the Status register.
const (
	StatusOverflow = 0x20
	StatusSprite0  = 0x40
	StatusVBlank   = 0x80
)

// Registers is a copy of the PPU register state.
type Registers struct {
	Control1 uint8
	Control2 uint8
	Status   uint8

	OAMAddress uint8

	// the current VRAM address and the temporary VRAM address loaded by
	// writes to the scroll and address registers
	VRAMAddress uint16
	TempAddress uint16
	FineX       uint8

	// the first/second write toggle shared by Scroll and VRAMAddress
	Toggle bool
}

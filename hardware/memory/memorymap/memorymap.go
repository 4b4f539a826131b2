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

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case PPU:
		return "PPU"
	case Peripheral:
		return "Peripheral"
	case SRAM:
		return "SRAM"
	case PRG:
		return "PRG"
	}

	return "undefined"
}

// The different memory areas in the NES.
const (
	Undefined Area = iota
	RAM
	PPU
	Peripheral
	SRAM
	PRG
)

// The origin and memory top for each area of memory. Checking which area an
// address falls within and forcing the address into the normalised range is
// all handled by the MapAddress() function.
const (
	OriginRAM        = uint16(0x0000)
	MemtopRAM        = uint16(0x1fff)
	OriginPPU        = uint16(0x2000)
	MemtopPPU        = uint16(0x3fff)
	OriginPeripheral = uint16(0x4000)
	MemtopPeripheral = uint16(0x4017)
	OriginSRAM       = uint16(0x6000)
	MemtopSRAM       = uint16(0x7fff)
	OriginPRG        = uint16(0x8000)
	MemtopPRG        = uint16(0xffff)
)

// Memtop is the top most address of memory.
const Memtop = uint16(0xffff)

// The masks used to normalise an address in the mirrored areas. The result is
// an offset from the origin of the area.
const (
	MaskRAM  = uint16(0x07ff)
	MaskPPU  = uint16(0x0007)
	MaskSRAM = uint16(0x1fff)
	MaskPRG  = uint16(0x7fff)
)

// Sizes of the memory areas that are backed by real memory.
const (
	SizeRAM  = int(MaskRAM) + 1
	SizeSRAM = int(MemtopSRAM-OriginSRAM) + 1
)

// MapAddress translates the address argument from mirror space to primary
// space. The returned address is an offset into the area, except for the PRG
// area where the address is returned unchanged because the mapper decides how
// to interpret it.
func MapAddress(address uint16) (uint16, Area) {
	// note that the order of these filters is important

	switch {
	case address <= MemtopRAM:
		return address & MaskRAM, RAM
	case address <= MemtopPPU:
		return (address - OriginPPU) & MaskPPU, PPU
	case address <= MemtopPeripheral:
		return address, Peripheral
	case address < OriginSRAM:
		// APU test registers and the expansion area
		return address, Undefined
	case address <= MemtopSRAM:
		return address - OriginSRAM, SRAM
	}

	return address, PRG
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}

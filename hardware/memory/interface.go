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

package memory

// PPURegisters defines the operations for the PPU when accessed from the
// memory bus. The register argument is normalised to the range 0 to 7.
type PPURegisters interface {
	ReadRegister(reg uint16) (uint8, error)
	WriteRegister(reg uint16, data uint8) error

	// the value of the register without side effects
	PeekRegister(reg uint16) uint8

	// copy 256 bytes to sprite RAM
	DMA(data []uint8)
}

// Port defines the operations for a device connected to one of the two
// controller ports.
type Port interface {
	// while the strobe is on the device continuously reloads its shift
	// register
	Strobe(on bool)

	// returns the next bit from the device's shift register in bit 0
	Read() uint8
}

// DebuggerBus defines the meta-operations for all memory areas. Think of
// these functions as "debugging" functions, that is operations outside of the
// normal operation of the machine.
type DebuggerBus interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, value uint8) error
}

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

// Package memorymap facilitates the translation of addresses to primary
// address equivalents.
//
// The CPU in the NES can address the full 16bit range but large parts of it
// are mirrors. The 2KB of internal RAM is repeated four times and the eight
// PPU registers are repeated every eight bytes up to 0x3fff. The MapAddress()
// function should be used whenever an address is being used from the
// viewport of the CPU.
//
//	ma, area := memorymap.MapAddress(address)
//
// Every address maps to exactly one area. Addresses in the Undefined area are
// not connected to anything.
package memorymap

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

// Package memory implements the NES memory bus. The CPU sees the memory
// through the cpubus.Memory interface, implemented by the Memory type.
//
//	                    ---- RAM
//	                   |
//	                   |---- PPU ---- PPURegisters
//	CPU ---- cpubus ---*
//	                   |---- Peripherals ---- Port (x2)
//	                   |
//	                   |---- SRAM
//	                   |
//	                    ---- PRG ---- cartridge mapper
//
// The asterisk indicates that addresses used by the CPU are first mapped to
// the primary address. The memorymap package contains more detail on this.
//
// The debugger sees memory through the DebuggerBus interface, which has no
// side effects.
package memory

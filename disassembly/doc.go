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

// Package disassembly produces a linear disassembly of 6502 program memory.
//
// For disassembly of an unattached cartridge the FromCartridge() function can
// be used. Every PRG page is disassembled as a separate bank. Debuggers can
// use FromMemory() to disassemble an area of memory of an already
// instantiated NES, through the side-effect free Peek() function of the
// memory bus.
//
// Linear disassembly starts at the first address of the memory and decodes
// one instruction after another. Data mixed in with the program will be
// disassembled as though it were an instruction. Bytes that are not valid
// opcodes are disassembled as ".byte" entries.
//
// Instructions are decoded by the CPU itself, using a sandboxed copy of the
// memory. Writes made by the decoded instructions are discarded.
package disassembly

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

// Package instructions defines the instruction set of the 6502 core found in
// the NES. Only the 151 documented opcodes are defined. The remaining opcodes
// have no definition and attempting to execute one is an error.
//
// Instructions are indexed by opcode in a fixed table. The Operator field of
// the Definition is what the CPU uses to decide what the instruction does,
// the Mnemonic is for presentation only.
package instructions

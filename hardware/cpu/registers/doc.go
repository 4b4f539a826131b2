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

// Package registers implements the three types of registers found in the 6502
// core of the NES. The 8 bit Register type is used for the A, X and Y
// registers. The StackPointer is a Register that knows it lives in page one
// of memory. The 16 bit ProgramCounter and the StatusRegister are special
// purpose registers.
//
// All registers wrap around at the edge of their width. This is how the
// hardware behaves and is never an error.
//
// Arithmetic is done in place. The Add() and Subtract() functions return the
// carry and overflow states of the operation, the decimal equivalents
// AddDecimal() and SubtractDecimal() also return the zero and sign bits
// because the NMOS 6502 does not derive them from the final result in decimal
// mode.
package registers

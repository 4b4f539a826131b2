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

// Package timing coordinates the CPU and the PPU. The two units run in
// separate goroutines and meet at the boundaries defined in this package.
//
// The CPU cycle counter is the master clock. Only the boundaries that matter
// to the CPU are modelled: the start of VBLANK, where the PPU may raise an
// NMI, and the end of VBLANK, which is also the end of the frame.
//
// The Interrupt slot is also kept here because it is written by the PPU and
// read by the CPU.
package timing

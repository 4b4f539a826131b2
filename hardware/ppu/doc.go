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

// Package ppu implements the timing and the memory of the NES picture
// processing unit. The PPU runs in its own goroutine and meets the CPU at the
// VBLANK boundaries managed by the timing package. On entry to VBLANK the
// status register is updated and, if enabled, an NMI is posted to the CPU.
//
// PPU memory is arranged as follows:
//
//	0000-1fff	pattern tables (cartridge CHR)
//	2000-2fff	nametables (2KB VRAM arranged by the cartridge mirroring)
//	3000-3eff	mirror of 2000-2eff
//	3f00-3f1f	palettes
//	3f20-3fff	mirrors of 3f00-3f1f
//
// No pixels are produced. Rendering is left to an Observer, which can read
// PPU memory with PeekVRAM().
package ppu

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

import (
	"github.com/jetsetilly/gophernes/hardware/timing"
)

// Run handles the frame boundaries reached by the CPU until the Sync is
// closed. It should be run in its own goroutine.
func (ppu *PPU) Run(s *timing.Sync) {
	for {
		var boundary timing.Boundary
		var frame int

		ok := s.AwaitBoundary(func(b timing.Boundary, f int) timing.Interrupt {
			boundary = b
			frame = f
			return ppu.handle(b)
		})
		if !ok {
			return
		}

		ppu.lock.Lock()
		o := ppu.observer
		ppu.lock.Unlock()

		if o != nil {
			switch boundary {
			case timing.VBlankEnter:
				o.VBlankEnter(frame)
			case timing.VBlankExit:
				o.VBlankExit(frame)
			}
		}
	}
}

// handle the boundary. called by AwaitBoundary() with the lock held. returns
// the NMI if it is enabled and the PPU is entering VBLANK.
func (ppu *PPU) handle(b timing.Boundary) timing.Interrupt {
	switch b {
	case timing.VBlankEnter:
		ppu.status |= StatusVBlank
		if ppu.control1&Control1NMI == Control1NMI {
			return timing.NMI
		}
	case timing.VBlankExit:
		ppu.status &^= StatusVBlank | StatusSprite0 | StatusOverflow
	}
	return timing.None
}

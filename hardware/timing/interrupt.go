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

package timing

// Interrupt is a request for the CPU to stop what it's doing and jump to one
// of the interrupt vectors. The values are ordered by priority, a higher
// value takes precedence over a lower value.
type Interrupt int

// List of valid Interrupt values.
const (
	None Interrupt = iota
	IRQ
	NMI
	Reset
)

func (i Interrupt) String() string {
	switch i {
	case None:
		return "none"
	case IRQ:
		return "IRQ"
	case NMI:
		return "NMI"
	case Reset:
		return "reset"
	}
	return "unknown interrupt"
}

// Boundary is a point in the frame at which the PPU must act.
type Boundary int

// List of valid Boundary values.
const (
	VBlankEnter Boundary = iota
	VBlankExit
)

func (b Boundary) String() string {
	switch b {
	case VBlankEnter:
		return "vblank enter"
	case VBlankExit:
		return "vblank exit"
	}
	return "unknown boundary"
}

// The CPU cycle, relative to the start of the frame, at which each boundary
// occurs. The exit from VBLANK is also the end of the frame.
const (
	VBlankEnterCycle = 27425
	VBlankExitCycle  = 29691
	FrameCycles      = VBlankExitCycle
)

// Cycle returns the CPU cycle, relative to the start of the frame, at which
// the boundary occurs.
func (b Boundary) Cycle() uint64 {
	if b == VBlankExit {
		return VBlankExitCycle
	}
	return VBlankEnterCycle
}

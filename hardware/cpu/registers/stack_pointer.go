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

package registers

import "fmt"

// StackBase is the address of the first byte of the stack page.
const StackBase = uint16(0x0100)

// StackPointer is an 8bit register that is an offset from StackBase. Pushing
// past 0x00 or pulling past 0xff wraps around inside the stack page. This is
// how the hardware behaves and is not an error.
type StackPointer struct {
	Register
}

// NewStackPointer is the preferred method of initialisation for StackPointer
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{Register: NewRegister(val, "SP")}
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%02x", sp.value)
}

// Address returns the full address in the stack page the stack pointer is
// pointing to.
func (sp StackPointer) Address() uint16 {
	return StackBase | uint16(sp.value)
}

// Push moves the stack pointer down by one. It returns the address that should
// be written to before the move.
func (sp *StackPointer) Push() uint16 {
	a := sp.Address()
	sp.value--
	return a
}

// Pull moves the stack pointer up by one. It returns the address that should
// be read from after the move.
func (sp *StackPointer) Pull() uint16 {
	sp.value++
	return sp.Address()
}

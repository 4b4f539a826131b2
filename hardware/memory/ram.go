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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gophernes/hardware/memory/memorymap"
)

// RAM is the 2KB of internal RAM. It is mirrored four times in the first 8KB
// of the address space.
type RAM struct {
	memory [memorymap.SizeRAM]uint8
}

// newRAM is the preferred method of initialisation for the RAM memory area.
func newRAM() *RAM {
	return &RAM{}
}

// String returns a hex dump of the zero page.
func (ram *RAM) String() string {
	s := strings.Builder{}
	s.WriteString("      -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("    ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := 0; y < 16; y++ {
		s.WriteString(fmt.Sprintf("%X- | ", y))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", ram.memory[(y*16)+x]))
		}
		s.WriteString("\n")
	}
	return strings.Trim(s.String(), "\n")
}

// Clear sets all bytes in RAM to zero.
func (ram *RAM) Clear() {
	clear(ram.memory[:])
}

// Peek is an implementation of the DebuggerBus interface.
func (ram *RAM) Peek(address uint16) (uint8, error) {
	return ram.memory[address&memorymap.MaskRAM], nil
}

// Poke is an implementation of the DebuggerBus interface.
func (ram *RAM) Poke(address uint16, value uint8) error {
	ram.memory[address&memorymap.MaskRAM] = value
	return nil
}

// Read is an implementation of cpubus.Memory.
func (ram *RAM) Read(address uint16) (uint8, error) {
	return ram.memory[address&memorymap.MaskRAM], nil
}

// Write is an implementation of cpubus.Memory.
func (ram *RAM) Write(address uint16, data uint8) error {
	ram.memory[address&memorymap.MaskRAM] = data
	return nil
}

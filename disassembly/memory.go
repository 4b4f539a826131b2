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

package disassembly

// Peeker is the subset of the memory bus required by FromMemory().
type Peeker interface {
	Peek(address uint16) (uint8, error)
}

// bankMemory presents a single bank of data at the origin address. Reads
// outside of the bank return zero and all writes are ignored.
type bankMemory struct {
	data   []uint8
	origin uint16
}

func (mem *bankMemory) Read(address uint16) (uint8, error) {
	if address < mem.origin {
		return 0, nil
	}
	idx := int(address - mem.origin)
	if idx >= len(mem.data) {
		return 0, nil
	}
	return mem.data[idx], nil
}

func (mem *bankMemory) Write(_ uint16, _ uint8) error {
	return nil
}

// peekMemory turns a Peeker into a cpubus.Memory. Peek errors are ignored
// because unmapped addresses are common in disassembly.
type peekMemory struct {
	mem Peeker
}

func (mem *peekMemory) Read(address uint16) (uint8, error) {
	v, _ := mem.mem.Peek(address)
	return v, nil
}

func (mem *peekMemory) Write(_ uint16, _ uint8) error {
	return nil
}

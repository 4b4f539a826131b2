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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/hardware/memory/cpubus"
)

type mockMem struct {
	internal []uint8

	// number of cycles to stall the CPU after a write to 0x4014
	stall int
}

func newMockMem() *mockMem {
	mem := new(mockMem)
	mem.internal = make([]uint8, 0x10000)
	return mem
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	d := mem.internal[address]
	if d != value {
		t.Errorf("memory assertion failed (%#02x - wanted %#02x at address %04x)", d, value, address)
	}
}

// Clear sets all bytes in memory to zero
func (mem *mockMem) Clear() {
	clear(mem.internal)
	mem.stall = 0
}

// the area between the peripheral window and the cartridge SRAM is not
// connected in the NES. the mock uses the same area to test error handling
func unmapped(address uint16) bool {
	return address >= 0x4018 && address < 0x6000
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	if unmapped(address) {
		return 0, cpubus.UnmappedAddress
	}
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	if unmapped(address) {
		return cpubus.UnmappedAddress
	}
	if address == 0x4014 {
		mem.stall = 513
	}
	mem.internal[address] = data
	return nil
}

func (mem *mockMem) Peek(address uint16) (uint8, error) {
	return mem.internal[address], nil
}

func (mem *mockMem) TakeStall() int {
	s := mem.stall
	mem.stall = 0
	return s
}

// step executes a single instruction and checks the result for consistency
func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	err := mc.ExecuteInstruction()
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
}

// the origin of test programs. the zero page and the stack are used for data
const origin = uint16(0x0600)

func newTestCPU() (*cpu.CPU, *mockMem) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.LoadPC(origin)
	return mc, mem
}

func reset(mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mc.Reset()
	mc.LoadPC(origin)
}

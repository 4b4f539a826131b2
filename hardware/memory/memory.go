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

	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/hardware/memory/cpubus"
	"github.com/jetsetilly/gophernes/hardware/memory/memorymap"
)

// Memory is the NES memory bus as seen by the CPU. It implements the
// cpubus.Memory interface and maps each address to the correct memory area.
type Memory struct {
	RAM         *RAM
	PPU         PPURegisters
	Peripherals *Peripherals
	Cart        *cartridge.Cartridge

	// number of cycles the CPU should be stalled for. collected by the CPU
	// with TakeStall()
	stall int
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(ppu PPURegisters, cart *cartridge.Cartridge) *Memory {
	return &Memory{
		RAM:         newRAM(),
		PPU:         ppu,
		Peripherals: newPeripherals(),
		Cart:        cart,
	}
}

func (mem *Memory) String() string {
	return memorymap.Summary()
}

// Reset the peripheral area and any outstanding stall. RAM is not changed.
func (mem *Memory) Reset() {
	mem.Peripherals.Reset()
	mem.stall = 0
}

// TakeStall returns the number of cycles the CPU should be stalled for and
// resets the value.
func (mem *Memory) TakeStall() int {
	s := mem.stall
	mem.stall = 0
	return s
}

// Read is an implementation of cpubus.Memory.
func (mem *Memory) Read(address uint16) (uint8, error) {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		return mem.RAM.Read(ma)
	case memorymap.PPU:
		return mem.PPU.ReadRegister(ma)
	case memorymap.Peripheral:
		return mem.Peripherals.Read(ma)
	case memorymap.SRAM:
		return mem.Cart.ReadSRAM(ma), nil
	case memorymap.PRG:
		return mem.Cart.Read(ma)
	}

	return 0, fmt.Errorf("bus: %w: read of %04x", cpubus.UnmappedAddress, address)
}

// Write is an implementation of cpubus.Memory.
func (mem *Memory) Write(address uint16, data uint8) error {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		return mem.RAM.Write(ma, data)
	case memorymap.PPU:
		return mem.PPU.WriteRegister(ma, data)
	case memorymap.Peripheral:
		if ma == OAMDMA {
			return mem.dma(data)
		}
		return mem.Peripherals.Write(ma, data)
	case memorymap.SRAM:
		mem.Cart.WriteSRAM(ma, data)
		return nil
	case memorymap.PRG:
		return mem.Cart.Write(ma, data)
	}

	return fmt.Errorf("bus: %w: write to %04x", cpubus.UnmappedAddress, address)
}

// dma copies the 256 bytes of the page to the PPU sprite RAM and stalls the
// CPU.
func (mem *Memory) dma(page uint8) error {
	var data [0x100]uint8

	origin := uint16(page) << 8
	for i := range data {
		var err error
		data[i], err = mem.Read(origin + uint16(i))
		if err != nil {
			return fmt.Errorf("bus: OAM DMA: %w", err)
		}
	}

	mem.PPU.DMA(data[:])
	mem.stall += dmaStall

	return nil
}

// Peek is an implementation of the DebuggerBus interface.
func (mem *Memory) Peek(address uint16) (uint8, error) {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		return mem.RAM.Peek(ma)
	case memorymap.PPU:
		return mem.PPU.PeekRegister(ma), nil
	case memorymap.Peripheral:
		return mem.Peripherals.Peek(ma)
	case memorymap.SRAM:
		return mem.Cart.ReadSRAM(ma), nil
	case memorymap.PRG:
		return mem.Cart.Peek(ma)
	}

	return 0, fmt.Errorf("bus: %w: peek of %04x", cpubus.UnmappedAddress, address)
}

// Poke is an implementation of the DebuggerBus interface. Only the RAM, SRAM
// and PRG areas can be poked.
func (mem *Memory) Poke(address uint16, value uint8) error {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		return mem.RAM.Poke(ma, value)
	case memorymap.SRAM:
		mem.Cart.WriteSRAM(ma, value)
		return nil
	case memorymap.PRG:
		return mem.Cart.Poke(ma, value)
	case memorymap.PPU, memorymap.Peripheral:
		return fmt.Errorf("bus: %w: poke of %04x", cpubus.UnhandledIoAccess, address)
	}

	return fmt.Errorf("bus: %w: poke of %04x", cpubus.UnmappedAddress, address)
}

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
	"fmt"
	"sync"

	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/hardware/memory/cpubus"
)

// Cartridge is the part of the cartridge visible to the PPU.
type Cartridge interface {
	ReadCHR(addr uint16) uint8
	WriteCHR(addr uint16, data uint8)
	Mirroring() mapper.Mirroring
}

// Observer is notified of the VBLANK boundaries. The functions are called from
// the PPU goroutine after the boundary has been handled and without the PPU
// being locked.
type Observer interface {
	VBlankEnter(frame int)
	VBlankExit(frame int)
}

// PPU is the picture processing unit. Only the timing and the memory of the
// PPU are emulated. No pixels are produced.
//
// The functions used by the CPU bus lock the PPU with the Locker passed to
// NewPPU(). When used in a running NES the Locker is the timing.Sync shared
// with the CPU.
type PPU struct {
	lock sync.Locker
	cart Cartridge

	observer Observer

	control1 uint8
	control2 uint8
	status   uint8

	oamAddress uint8

	// the "loopy" registers. the current address, the temporary address,
	// fine X scroll and the write toggle
	v      uint16
	t      uint16
	fineX  uint8
	toggle bool

	// reads of the VRAM data register are delayed by one read, except for
	// palette reads
	readBuffer uint8

	// 2KB of nametable memory in the console
	vram [0x0800]uint8

	palette [0x20]uint8

	// sprite RAM
	oam [0x0100]uint8
}

// NewPPU is the preferred method of initialisation for the PPU type.
func NewPPU(lock sync.Locker, cart Cartridge) *PPU {
	ppu := &PPU{
		lock: lock,
		cart: cart,
	}
	ppu.Reset()
	return ppu
}

func (ppu *PPU) String() string {
	ppu.lock.Lock()
	defer ppu.lock.Unlock()
	return fmt.Sprintf("CTRL=%02x MASK=%02x STATUS=%02x OAM=%02x V=%04x T=%04x",
		ppu.control1, ppu.control2, ppu.status, ppu.oamAddress, ppu.v, ppu.t)
}

// Plumb a new cartridge into the PPU.
func (ppu *PPU) Plumb(cart Cartridge) {
	ppu.lock.Lock()
	defer ppu.lock.Unlock()
	ppu.cart = cart
}

// AttachObserver sets the observer for VBLANK boundaries. A nil value removes
// the observer.
func (ppu *PPU) AttachObserver(o Observer) {
	ppu.lock.Lock()
	defer ppu.lock.Unlock()
	ppu.observer = o
}

// Reset the PPU registers. Memory is cleared.
func (ppu *PPU) Reset() {
	ppu.lock.Lock()
	defer ppu.lock.Unlock()
	ppu.control1 = 0
	ppu.control2 = 0
	ppu.status = 0
	ppu.oamAddress = 0
	ppu.v = 0
	ppu.t = 0
	ppu.fineX = 0
	ppu.toggle = false
	ppu.readBuffer = 0
	clear(ppu.vram[:])
	clear(ppu.palette[:])
	clear(ppu.oam[:])
}

// Registers returns a copy of the PPU registers.
func (ppu *PPU) Registers() Registers {
	ppu.lock.Lock()
	defer ppu.lock.Unlock()
	return Registers{
		Control1:    ppu.control1,
		Control2:    ppu.control2,
		Status:      ppu.status,
		OAMAddress:  ppu.oamAddress,
		VRAMAddress: ppu.v,
		TempAddress: ppu.t,
		FineX:       ppu.fineX,
		Toggle:      ppu.toggle,
	}
}

// ReadRegister implements the memory.PPURegisters interface. The register
// argument should be normalised to the range 0 to 7. Only the Status,
// OAMData and VRAMData registers can be read.
func (ppu *PPU) ReadRegister(reg uint16) (uint8, error) {
	ppu.lock.Lock()
	defer ppu.lock.Unlock()

	switch reg {
	case Status:
		v := ppu.status
		ppu.status &^= StatusVBlank
		ppu.toggle = false
		return v, nil

	case OAMData:
		return ppu.oam[ppu.oamAddress], nil

	case VRAMData:
		addr := ppu.v & 0x3fff
		v := ppu.readBuffer
		ppu.readBuffer = ppu.read(addr)

		// palette reads are not buffered. the buffer is filled with the
		// nametable byte underneath the palette
		if addr >= 0x3f00 {
			v = ppu.readBuffer
			ppu.readBuffer = ppu.read(addr - 0x1000)
		}

		ppu.increment()
		return v, nil
	}

	return 0, fmt.Errorf("ppu: %w: read of %s", cpubus.UnhandledIoAccess, registerName(reg))
}

// PeekRegister returns the value that would be returned by ReadRegister()
// without any side effects. Write-only registers return the last value
// written where that is meaningful and zero otherwise.
func (ppu *PPU) PeekRegister(reg uint16) uint8 {
	ppu.lock.Lock()
	defer ppu.lock.Unlock()

	switch reg {
	case Control1:
		return ppu.control1
	case Control2:
		return ppu.control2
	case Status:
		return ppu.status
	case OAMAddress:
		return ppu.oamAddress
	case OAMData:
		return ppu.oam[ppu.oamAddress]
	case VRAMData:
		if ppu.v&0x3fff >= 0x3f00 {
			return ppu.read(ppu.v & 0x3fff)
		}
		return ppu.readBuffer
	}
	return 0
}

// WriteRegister implements the memory.PPURegisters interface. The register
// argument should be normalised to the range 0 to 7. The Status register
// cannot be written to.
func (ppu *PPU) WriteRegister(reg uint16, data uint8) error {
	ppu.lock.Lock()
	defer ppu.lock.Unlock()

	switch reg {
	case Control1:
		ppu.control1 = data
		ppu.t = (ppu.t & 0xf3ff) | (uint16(data&Control1Nametable) << 10)

	case Control2:
		ppu.control2 = data

	case OAMAddress:
		ppu.oamAddress = data

	case OAMData:
		ppu.oam[ppu.oamAddress] = data
		ppu.oamAddress++

	case Scroll:
		if !ppu.toggle {
			ppu.t = (ppu.t & 0xffe0) | uint16(data>>3)
			ppu.fineX = data & 0x07
		} else {
			ppu.t = (ppu.t & 0x8c1f) | (uint16(data>>3) << 5) | (uint16(data&0x07) << 12)
		}
		ppu.toggle = !ppu.toggle

	case VRAMAddress:
		if !ppu.toggle {
			ppu.t = (ppu.t & 0x00ff) | (uint16(data&0x3f) << 8)
		} else {
			ppu.t = (ppu.t & 0xff00) | uint16(data)
			ppu.v = ppu.t
		}
		ppu.toggle = !ppu.toggle

	case VRAMData:
		ppu.write(ppu.v&0x3fff, data)
		ppu.increment()

	default:
		return fmt.Errorf("ppu: %w: write to %s", cpubus.UnhandledIoAccess, registerName(reg))
	}

	return nil
}

// DMA copies 256 bytes to sprite RAM, starting at the current OAM address
// and wrapping around.
func (ppu *PPU) DMA(data []uint8) {
	ppu.lock.Lock()
	defer ppu.lock.Unlock()
	a := ppu.oamAddress
	for _, d := range data {
		ppu.oam[a] = d
		a++
	}
}

// PeekOAM returns a copy of sprite RAM.
func (ppu *PPU) PeekOAM() [0x0100]uint8 {
	ppu.lock.Lock()
	defer ppu.lock.Unlock()
	return ppu.oam
}

// PeekVRAM returns the byte at the PPU address without side effects. Pattern
// tables are read from the cartridge.
func (ppu *PPU) PeekVRAM(addr uint16) uint8 {
	ppu.lock.Lock()
	defer ppu.lock.Unlock()
	return ppu.read(addr & 0x3fff)
}

// PokeVRAM writes to the PPU address without changing the PPU registers.
func (ppu *PPU) PokeVRAM(addr uint16, data uint8) {
	ppu.lock.Lock()
	defer ppu.lock.Unlock()
	ppu.write(addr&0x3fff, data)
}

// increment the VRAM address by 1 or 32 depending on the Control1 register.
func (ppu *PPU) increment() {
	if ppu.control1&Control1Increment == Control1Increment {
		ppu.v += 32
	} else {
		ppu.v++
	}
	ppu.v &= 0x7fff
}

func registerName(reg uint16) string {
	if int(reg) < len(RegisterNames) {
		return RegisterNames[reg]
	}
	return fmt.Sprintf("register %d", reg)
}

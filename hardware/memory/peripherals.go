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

	"github.com/jetsetilly/gophernes/hardware/memory/cpubus"
)

// Addresses in the peripheral area with special meaning.
const (
	APUStatus = uint16(0x4015)
	OAMDMA    = uint16(0x4014)
	Joypad1   = uint16(0x4016)
	Joypad2   = uint16(0x4017)
)

// the number of cycles the CPU is stalled by an OAM DMA transfer
const dmaStall = 513

// Peripherals is the area of memory between 0x4000 and 0x4017. Audio is not
// emulated so writes to the APU registers are latched and otherwise ignored.
// The APU registers are write-only except for the status register at 0x4015.
type Peripherals struct {
	// values written to 0x4000 to 0x4017
	latch [0x18]uint8

	ports  [2]Port
	strobe bool
}

func newPeripherals() *Peripherals {
	return &Peripherals{}
}

func (per *Peripherals) String() string {
	return fmt.Sprintf("APU=%02x strobe=%v", per.latch[APUStatus&0xff], per.strobe)
}

// Reset the latched values.
func (per *Peripherals) Reset() {
	clear(per.latch[:])
	per.strobe = false
}

// AttachPort connects a device to one of the two controller ports. The port
// argument should be 0 or 1. A nil device disconnects the port.
func (per *Peripherals) AttachPort(port int, p Port) {
	per.ports[port] = p
}

// Latch returns the value last written to the address.
func (per *Peripherals) Latch(address uint16) uint8 {
	return per.latch[address&0xff]
}

// Peek reads from the peripheral area without side effects. Reads of the
// controller ports return zero.
func (per *Peripherals) Peek(address uint16) (uint8, error) {
	switch address {
	case APUStatus:
		return per.latch[address&0xff], nil
	case Joypad1, Joypad2:
		return 0, nil
	}
	return 0, fmt.Errorf("bus: %w: peek of %04x", cpubus.UnhandledIoAccess, address)
}

// Read is an implementation of cpubus.Memory.
func (per *Peripherals) Read(address uint16) (uint8, error) {
	switch address {
	case APUStatus:
		return per.latch[address&0xff], nil
	case Joypad1, Joypad2:
		// the upper bits are open bus. 0x40 is the value usually seen
		p := per.ports[address-Joypad1]
		if p == nil {
			return 0x40, nil
		}
		return 0x40 | (p.Read() & 0x01), nil
	}
	return 0, fmt.Errorf("bus: %w: read of %04x", cpubus.UnhandledIoAccess, address)
}

// Write is an implementation of cpubus.Memory. Writes to OAMDMA are handled
// by the Memory type.
func (per *Peripherals) Write(address uint16, data uint8) error {
	per.latch[address&0xff] = data

	// 0x4017 is the APU frame counter when written to. only 0x4016 strobes
	// the controller ports
	if address == Joypad1 {
		per.strobe = data&0x01 == 0x01
		for _, p := range per.ports {
			if p != nil {
				p.Strobe(per.strobe)
			}
		}
	}

	return nil
}

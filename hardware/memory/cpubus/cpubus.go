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

package cpubus

import "errors"

// Memory defines the operations for the memory system when accessed from the
// CPU. The memory bus implements this interface and maps the address to the
// correct memory area, meaning that CPU access need not care which part of
// memory it is writing to.
//
// Returned errors should be of type cpubus.UnmappedAddress or
// cpubus.UnhandledIoAccess, or wrap one of those types.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// Sentinal errors returned by memory package functions.
var (
	// the address is not connected to anything.
	UnmappedAddress = errors.New("unmapped address")

	// the address is connected to a register but the register does not
	// support the access being made. reading a write-only register for
	// example.
	UnhandledIoAccess = errors.New("unhandled io access")
)

// The interrupt vectors. Each is the address of the low byte of a 16bit
// address.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)

	// BRK uses the IRQ vector
	BRK = IRQ
)

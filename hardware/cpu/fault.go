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

package cpu

import (
	"fmt"
)

// Fault is returned by Tick() when the CPU could not continue. It records the
// state of the CPU at the time of the error. Use errors.Is() or errors.As() to
// examine the underlying error.
type Fault struct {
	Err error

	// address and opcode of the instruction that caused the fault
	Address uint16
	OpCode  uint8

	// register values at the time of the fault
	PC     uint16
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	Status uint8
}

func newFault(mc *CPU, err error) *Fault {
	return &Fault{
		Err:     err,
		Address: mc.LastResult.Address,
		OpCode:  mc.LastResult.OpCode,
		PC:      mc.PC.Address(),
		A:       mc.A.Value(),
		X:       mc.X.Value(),
		Y:       mc.Y.Value(),
		SP:      mc.SP.Value(),
		Status:  mc.Status.Value(),
	}
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%v [op=%02x at %04x; PC=%04x A=%02x X=%02x Y=%02x SP=%02x SR=%02x]",
		f.Err, f.OpCode, f.Address, f.PC, f.A, f.X, f.Y, f.SP, f.Status)
}

// Unwrap returns the error that caused the fault.
func (f *Fault) Unwrap() error {
	return f.Err
}

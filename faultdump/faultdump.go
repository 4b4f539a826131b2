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

// Package faultdump writes a description of a CPU fault, and the state of the
// machine at the time of the fault, as a graphviz graph. The graph can be
// rendered with the dot tool:
//
//	dot -Tpng fault.dot > fault.png
package faultdump

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/hardware/cpu/execution"
	"github.com/jetsetilly/gophernes/hardware/cpu/registers"
	"github.com/jetsetilly/gophernes/hardware/ppu"
)

// NoFault is returned by WriteFile() if the error does not contain a
// cpu.Fault.
var NoFault = errors.New("faultdump: no fault")

// Report is the information included in the graph.
type Report struct {
	Fault  *cpu.Fault
	Result execution.Result
	PPU    ppu.Registers
	Mapper string
	Frame  int
	Cycle  uint64

	// the used part of the stack. top of the stack first
	Stack []uint8
}

// NewReport creates a report for the fault. The emulation should not be
// running.
func NewReport(fault *cpu.Fault, nes *hardware.NES) Report {
	r := Report{
		Fault:  fault,
		Result: nes.CPU.LastResult,
		PPU:    nes.PPU.Registers(),
		Mapper: nes.Cart.String(),
		Frame:  nes.Sync.Frame(),
		Cycle:  nes.Sync.FrameCycle(),
	}

	for sp := uint16(fault.SP) + 1; sp <= 0xff; sp++ {
		v, err := nes.Mem.Peek(registers.StackBase | sp)
		if err != nil {
			break
		}
		r.Stack = append(r.Stack, v)
	}

	return r
}

// Write the graph for the fault.
func Write(w io.Writer, fault *cpu.Fault, nes *hardware.NES) {
	r := NewReport(fault, nes)
	memviz.Map(w, &r)
}

// WriteFile writes the graph to the named file. Returns NoFault if the error
// does not contain a cpu.Fault.
func WriteFile(filename string, err error, nes *hardware.NES) error {
	var fault *cpu.Fault
	if !errors.As(err, &fault) {
		return NoFault
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("faultdump: %w", err)
	}
	defer f.Close()

	Write(f, fault, nes)

	return nil
}

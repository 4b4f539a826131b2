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

	"github.com/jetsetilly/gophernes/hardware/cpu/registers"
	"github.com/jetsetilly/gophernes/hardware/memory/cpubus"
	"github.com/jetsetilly/gophernes/hardware/timing"
)

// InterruptLine is the source of interrupt requests for the CPU. The
// timing.Sync type implements this interface.
type InterruptLine interface {
	// Acknowledge returns the waiting interrupt, if any, and removes it. An
	// IRQ should not be returned if disabled is true
	Acknowledge(disabled bool) timing.Interrupt
}

// adhoc interface for memory busses that can stall the CPU. the OAM DMA for
// example
type stallingBus interface {
	TakeStall() int
}

// the number of cycles taken to dispatch an interrupt
const interruptCycles = 7

// AttachInterruptLine connects the CPU to a source of interrupt requests.
func (mc *CPU) AttachInterruptLine(line InterruptLine) {
	mc.line = line
}

// Remaining returns the number of cycles remaining before the CPU can begin
// the next instruction.
func (mc *CPU) Remaining() int {
	return mc.remaining
}

// Tick advances the CPU by one cycle. If the previous instruction has
// finished, the interrupt line is checked and either an interrupt is
// dispatched or the next instruction is executed. In both cases the whole of
// the work is done on the first tick and the remaining cycles are consumed by
// subsequent calls to Tick().
//
// Interrupts are only ever dispatched between instructions.
//
// Any error is returned as a *Fault.
func (mc *CPU) Tick() error {
	if mc.remaining == 0 {
		var err error

		irq := timing.None
		if mc.line != nil {
			irq = mc.line.Acknowledge(mc.Status.InterruptDisable)
		}

		if irq != timing.None {
			err = mc.Interrupt(irq)
		} else {
			err = mc.ExecuteInstruction()
		}
		if err != nil {
			return newFault(mc, err)
		}

		mc.remaining = mc.LastResult.Cycles

		// some writes (the OAM DMA) stall the CPU
		if b, ok := mc.mem.(stallingBus); ok {
			mc.remaining += b.TakeStall()
		}
	}

	mc.remaining--

	return nil
}

// Interrupt dispatches the interrupt immediately. The PC and the status
// register are pushed to the stack and the PC is loaded from the vector for
// the interrupt.
//
// A reset does not write to the stack but the stack pointer is still moved
// as though it had.
func (mc *CPU) Interrupt(irq timing.Interrupt) error {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()
	mc.LastResult.Interrupt = irq.String()

	var vector uint16

	switch irq {
	case timing.Reset:
		vector = cpubus.Reset
		mc.SP.Push()
		mc.SP.Push()
		mc.SP.Push()

	case timing.NMI, timing.IRQ:
		vector = cpubus.NMI
		if irq == timing.IRQ {
			vector = cpubus.IRQ
		}

		err := mc.pushPC(mc.PC.Address())
		if err != nil {
			return err
		}

		// the copy of the status register pushed by a hardware interrupt
		// always has the break flag clear
		err = mc.push(mc.Status.Value() &^ registers.BreakFlag)
		if err != nil {
			return err
		}

	default:
		return fmt.Errorf("cpu: cannot dispatch interrupt (%s)", irq)
	}

	mc.Status.InterruptDisable = true

	err := mc.LoadPCIndirect(vector)
	if err != nil {
		return err
	}

	mc.LastResult.Cycles = interruptCycles
	mc.LastResult.Final = true

	return nil
}

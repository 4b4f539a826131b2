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

// Package cpu emulates the 6502 core of the 2A03 found in the NES. Like all
// 8-bit processors of the era, the 6502 executes instructions according to the
// single byte value read from an address pointed to by the program counter.
// This single byte is the opcode and is looked up in the instruction table.
// The instruction definition for that opcode is then used to move execution
// of the program forward.
//
// The instance of the CPU type requires an implementation of the
// cpubus.Memory interface as the sole argument.
//
// The CPU can be driven in one of two ways. ExecuteInstruction() performs an
// entire instruction at once and records the result, including the number of
// cycles the instruction would take, in the LastResult field. Tick() advances
// the CPU by a single cycle. It executes an instruction (or dispatches an
// interrupt) when the previous instruction has used up all its cycles.
//
//	mc := cpu.NewCPU(mem)
//	err := mc.LoadPCIndirect(cpubus.Reset)
//
//	for {
//		err = mc.Tick()
//		if err != nil {
//			return err
//		}
//	}
//
// Interrupt requests come from an InterruptLine. The timing.Sync type is the
// InterruptLine used in the NES and is shared with the PPU.
//
// Undocumented opcodes are not emulated. Executing one will result in an
// IllegalOpcode error. Errors from Tick() are returned as a Fault, which
// records the state of the CPU at the time of the error.
package cpu

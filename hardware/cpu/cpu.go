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
	"errors"
	"fmt"

	"github.com/jetsetilly/gophernes/hardware/cpu/execution"
	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
	"github.com/jetsetilly/gophernes/hardware/cpu/registers"
	"github.com/jetsetilly/gophernes/hardware/memory/cpubus"
)

// IllegalOpcode is returned by ExecuteInstruction() when the opcode has no
// instruction definition.
var IllegalOpcode = errors.New("cpu: illegal opcode")

// CPU implements the 6502 core of the 2A03 found in the NES. Register logic is
// implemented by the Register type in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// some operations only need an accumulator
	acc8 registers.Register

	mem          cpubus.Memory
	instructions [256]*instructions.Definition

	// the source of interrupt requests. can be nil
	line InterruptLine

	// the number of cycles remaining before the next instruction can begin
	remaining int

	// last result. the address field is guaranteed to be always valid except
	// when the CPU has just been reset
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// CPU will be in its power-on state except for the PC, which will be zero.
func NewCPU(mem cpubus.Memory) *CPU {
	mc := &CPU{
		mem:          mem,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewStackPointer(0),
		Status:       registers.NewStatusRegister(),
		acc8:         registers.NewRegister(0, "accumulator"),
		instructions: instructions.GetDefinitions(),
	}
	mc.Reset()
	return mc
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new memory bus into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers to their power-on state. Does not load PC
// with RESET vector. Use cpu.LoadPCIndirect(cpubus.Reset) when appropriate.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.PC.Load(0)
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xfd)
	mc.Status.Reset()
	mc.remaining = 0
}

// HasReset checks whether the CPU has recently been reset.
func (mc *CPU) HasReset() bool {
	return mc.LastResult.Address == 0 && mc.LastResult.Defn == nil && mc.LastResult.Interrupt == ""
}

// LoadPCIndirect loads the contents of indirectAddress into the PC.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) error {
	address, err := mc.read16Bit(indirectAddress)
	if err != nil {
		return err
	}
	mc.PC.Load(address)
	return nil
}

// LoadPC loads the contents of directAddress into the PC.
func (mc *CPU) LoadPC(directAddress uint16) {
	mc.PC.Load(directAddress)
}

// read8Bit returns 8bit value from the specified address
func (mc *CPU) read8Bit(address uint16) (uint8, error) {
	return mc.mem.Read(address)
}

// write8Bit writes 8 bits to the specified address
func (mc *CPU) write8Bit(address uint16, value uint8) error {
	return mc.mem.Write(address, value)
}

// read16Bit returns 16bit value from the specified address
func (mc *CPU) read16Bit(address uint16) (uint16, error) {
	lo, err := mc.mem.Read(address)
	if err != nil {
		return 0, err
	}

	hi, err := mc.mem.Read(address + 1)
	if err != nil {
		return 0, err
	}

	return (uint16(hi) << 8) | uint16(lo), nil
}

// read16BitZeroPage returns a 16bit value from the zero page. the high byte
// is read from the start of the zero page if the low byte is at 0xff
func (mc *CPU) read16BitZeroPage(address uint8) (uint16, error) {
	lo, err := mc.mem.Read(uint16(address))
	if err != nil {
		return 0, err
	}

	hi, err := mc.mem.Read(uint16(address + 1))
	if err != nil {
		return 0, err
	}

	return (uint16(hi) << 8) | uint16(lo), nil
}

// read 8bits from the PC location has a variety of additional side-effects
// depending on context.
type read8BitPCeffect int

const (
	newOpcode read8BitPCeffect = iota
	loNibble
	hiNibble
)

// read8BitPC reads 8 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - updates LastResult.ByteCount
//   - additional side effect updates LastResult as appropriate
func (mc *CPU) read8BitPC(effect read8BitPCeffect) error {
	v, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return err
	}

	// ignoring if program counter cycling
	mc.PC.Add(1)

	// bump the number of bytes read during instruction decode
	mc.LastResult.ByteCount++

	switch effect {
	case newOpcode:
		mc.LastResult.OpCode = v
		mc.LastResult.Defn = mc.instructions[v]
		if mc.LastResult.Defn == nil {
			return fmt.Errorf("%w (%#02x) at (%#04x)", IllegalOpcode, v, mc.LastResult.Address)
		}

	case loNibble:
		mc.LastResult.InstructionData = uint16(v)

	case hiNibble:
		mc.LastResult.InstructionData = (uint16(v) << 8) | mc.LastResult.InstructionData
	}

	return nil
}

// read16BitPC reads 16 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - updates LastResult.ByteCount
//   - updates InstructionData field
func (mc *CPU) read16BitPC() error {
	err := mc.read8BitPC(loNibble)
	if err != nil {
		return err
	}
	return mc.read8BitPC(hiNibble)
}

// push a value onto the stack. the stack pointer wraps around inside the
// stack page
func (mc *CPU) push(value uint8) error {
	return mc.write8Bit(mc.SP.Push(), value)
}

// pull a value from the stack
func (mc *CPU) pull() (uint8, error) {
	return mc.read8Bit(mc.SP.Pull())
}

// pushPC pushes the high byte of the PC and then the low byte
func (mc *CPU) pushPC(pc uint16) error {
	err := mc.push(uint8(pc >> 8))
	if err != nil {
		return err
	}
	return mc.push(uint8(pc))
}

// pullPC is the reverse of pushPC
func (mc *CPU) pullPC() (uint16, error) {
	lo, err := mc.pull()
	if err != nil {
		return 0, err
	}
	hi, err := mc.pull()
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

func (mc *CPU) branch(flag bool, offset uint16) {
	// note branching result
	mc.LastResult.BranchSuccess = flag
	if !flag {
		return
	}

	// the offset is an 8bit signed value. make sure the sign bit has been
	// propagated into the most-significant bits of the 16bit value
	if offset&0x0080 == 0x0080 {
		offset |= 0xff00
	}

	// the PC is already pointing at the next instruction. a page fault is
	// when the branch target is on a different page to that instruction
	oldPC := mc.PC.Address()
	mc.PC.Add(offset)
	mc.LastResult.PageFault = oldPC&0xff00 != mc.PC.Address()&0xff00
}

// ExecuteInstruction steps CPU forward one instruction. The basic process when
// executing an instruction is this:
//
//  1. read opcode and look up instruction definition
//  2. read operands (if any) according to the addressing mode of the instruction
//  3. using the operator as a guide, perform the instruction on the data
//
// The instruction happens all at once. The number of cycles the instruction
// takes is recorded in LastResult.Cycles and it is up to the caller to account
// for it. The Tick() function does this.
func (mc *CPU) ExecuteInstruction() error {
	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	err := mc.read8BitPC(newOpcode)
	if err != nil {
		// the calling function might still want to make use of LastResult even
		// when an error has occurred. the number of bytes read is by
		// definition one
		mc.LastResult.ByteCount = 1
		mc.LastResult.Final = true
		return err
	}

	defn := mc.LastResult.Defn

	// address is the actual address to use to access memory (after any indexing
	// has taken place)
	var address uint16

	// value is read from the program for immediate/relative mode, and from
	// non-program memory for all other modes. note that for instructions which
	// are read-modify-write, the value will change during execution and be used
	// to write back to memory
	var value uint8

	// get address to use when reading/writing from/to memory (note that in the
	// case of immediate addressing, we are actually getting the value to use
	// in the instruction, not the address).
	switch defn.AddressingMode {
	case instructions.Implied:
		// BRK is unusual in that it increases the PC by two bytes despite
		// being an implied addressing instruction. the second byte is padding
		// and is never read
		if defn.Operator == instructions.Brk {
			mc.PC.Add(1)
		}

	case instructions.Accumulator:
		value = mc.A.Value()

	case instructions.Immediate:
		// for immediate mode, the value is the next byte in the program
		// therefore, we don't set the address and we read the value through the PC
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}
		value = uint8(mc.LastResult.InstructionData)

	case instructions.Relative:
		// relative addressing is only used for branch instructions, the address
		// is an offset value from the current PC position
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}
		address = mc.LastResult.InstructionData

	case instructions.Absolute:
		err = mc.read16BitPC()
		if err != nil {
			return err
		}
		address = mc.LastResult.InstructionData

	case instructions.ZeroPage:
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}
		address = mc.LastResult.InstructionData

	case instructions.Indirect:
		// indirect addressing (without indexing) is only used for the JMP command
		err = mc.read16BitPC()
		if err != nil {
			return err
		}
		indirectAddress := mc.LastResult.InstructionData

		// handle indirect addressing JMP bug
		if indirectAddress&0x00ff == 0x00ff {
			mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug

			var lo, hi uint8

			lo, err = mc.read8Bit(indirectAddress)
			if err != nil {
				return err
			}

			// in this bug path, the lower byte of the indirect address is on a
			// page boundary. because of the bug we must read high byte of JMP
			// address from the zero byte of the same page (rather than the
			// zero byte of the next page)
			hi, err = mc.read8Bit(indirectAddress & 0xff00)
			if err != nil {
				return err
			}
			address = uint16(hi) << 8
			address |= uint16(lo)
		} else {
			address, err = mc.read16Bit(indirectAddress)
			if err != nil {
				return err
			}
		}

	case instructions.IndexedIndirect: // x indexing
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}
		indirectAddress := uint8(mc.LastResult.InstructionData)

		// using 8bit addition because of the indirect addressing bug. we don't
		// want the indexed address to extend past the first page
		mc.acc8.Load(mc.X.Value())
		mc.acc8.Add(indirectAddress, false)

		// make a note of indirect addressig bug
		if uint16(indirectAddress)+mc.X.Address() > 0xfe {
			mc.LastResult.CPUBug = execution.IndexedIndirectAddressingBug
		}

		address, err = mc.read16BitZeroPage(mc.acc8.Value())
		if err != nil {
			return err
		}

		// never a page fault wth pre-index indirect addressing

	case instructions.IndirectIndexed: // y indexing
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}

		var indexedAddress uint16
		indexedAddress, err = mc.read16BitZeroPage(uint8(mc.LastResult.InstructionData))
		if err != nil {
			return err
		}

		address = indexedAddress + mc.Y.Address()
		mc.LastResult.PageFault = defn.PageSensitive && indexedAddress&0xff00 != address&0xff00

	case instructions.AbsoluteIndexedX:
		err = mc.read16BitPC()
		if err != nil {
			return err
		}
		indirectAddress := mc.LastResult.InstructionData

		address = indirectAddress + mc.X.Address()
		mc.LastResult.PageFault = defn.PageSensitive && indirectAddress&0xff00 != address&0xff00

	case instructions.AbsoluteIndexedY:
		err = mc.read16BitPC()
		if err != nil {
			return err
		}
		indirectAddress := mc.LastResult.InstructionData

		address = indirectAddress + mc.Y.Address()
		mc.LastResult.PageFault = defn.PageSensitive && indirectAddress&0xff00 != address&0xff00

	case instructions.ZeroPageIndexedX:
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}

		indirectAddress := uint8(mc.LastResult.InstructionData)
		mc.acc8.Load(indirectAddress)
		mc.acc8.Add(mc.X.Value(), false)
		address = mc.acc8.Address()

		// make a note of zero page index bug
		if uint16(indirectAddress)+mc.X.Address() > 0xff {
			mc.LastResult.CPUBug = execution.ZeroPageIndexBug
		}

	case instructions.ZeroPageIndexedY:
		// used exclusively for LDX ZeroPage,y and STX ZeroPage,y
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}

		indirectAddress := uint8(mc.LastResult.InstructionData)
		mc.acc8.Load(indirectAddress)
		mc.acc8.Add(mc.Y.Value(), false)
		address = mc.acc8.Address()

		// make a note of zero page index bug
		if uint16(indirectAddress)+mc.Y.Address() > 0xff {
			mc.LastResult.CPUBug = execution.ZeroPageIndexBug
		}

	default:
		return fmt.Errorf("cpu: unknown addressing mode for %s", defn.Operator)
	}

	// read value from memory using address found in AddressingMode switch
	// above only when the instruction is 'Read' or 'RMW' and the addressing
	// mode has an address (implied, accumulator, immediate and relative modes
	// do not)
	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator, instructions.Immediate, instructions.Relative:
	default:
		if defn.Effect == instructions.Read || defn.Effect == instructions.RMW {
			value, err = mc.read8Bit(address)
			if err != nil {
				return err
			}
		}
	}

	// actually perform instruction based on operator group
	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Pha:
		err = mc.push(mc.A.Value())
		if err != nil {
			return err
		}

	case instructions.Pla:
		value, err = mc.pull()
		if err != nil {
			return err
		}
		mc.A.Load(value)
		mc.Status.SetZN(value)

	case instructions.Php:
		// the copy of the status register pushed by PHP always has the break
		// flag set
		err = mc.push(mc.Status.Value() | registers.BreakFlag)
		if err != nil {
			return err
		}

	case instructions.Plp:
		value, err = mc.pull()
		if err != nil {
			return err
		}
		mc.Status.Load(value)

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.Status.SetZN(mc.A.Value())

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.Status.SetZN(mc.X.Value())

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.Status.SetZN(mc.Y.Value())

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.Status.SetZN(mc.A.Value())

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.Status.SetZN(mc.X.Value())

	case instructions.Txs:
		mc.SP.Load(mc.X.Value())
		// does not affect status register

	case instructions.Eor:
		mc.A.EOR(value)
		mc.Status.SetZN(mc.A.Value())

	case instructions.Ora:
		mc.A.ORA(value)
		mc.Status.SetZN(mc.A.Value())

	case instructions.And:
		mc.A.AND(value)
		mc.Status.SetZN(mc.A.Value())

	case instructions.Lda:
		mc.A.Load(value)
		mc.Status.SetZN(mc.A.Value())

	case instructions.Ldx:
		mc.X.Load(value)
		mc.Status.SetZN(mc.X.Value())

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.Status.SetZN(mc.Y.Value())

	case instructions.Sta:
		err = mc.write8Bit(address, mc.A.Value())
		if err != nil {
			return err
		}

	case instructions.Stx:
		err = mc.write8Bit(address, mc.X.Value())
		if err != nil {
			return err
		}

	case instructions.Sty:
		err = mc.write8Bit(address, mc.Y.Value())
		if err != nil {
			return err
		}

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.Status.SetZN(mc.X.Value())

	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.Status.SetZN(mc.Y.Value())

	case instructions.Dex:
		mc.X.Add(0xff, false)
		mc.Status.SetZN(mc.X.Value())

	case instructions.Dey:
		mc.Y.Add(0xff, false)
		mc.Status.SetZN(mc.Y.Value())

	case instructions.Asl:
		r := mc.acc8
		r.Load(value)
		mc.Status.Carry = r.ASL()
		mc.Status.SetZN(r.Value())
		value = r.Value()

	case instructions.Lsr:
		r := mc.acc8
		r.Load(value)
		mc.Status.Carry = r.LSR()
		mc.Status.SetZN(r.Value())
		value = r.Value()

	case instructions.Ror:
		r := mc.acc8
		r.Load(value)
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		mc.Status.SetZN(r.Value())
		value = r.Value()

	case instructions.Rol:
		r := mc.acc8
		r.Load(value)
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		mc.Status.SetZN(r.Value())
		value = r.Value()

	case instructions.Adc:
		if mc.Status.DecimalMode {
			mc.Status.Carry,
				mc.Status.Zero,
				mc.Status.Overflow,
				mc.Status.Sign = mc.A.AddDecimal(value, mc.Status.Carry)
		} else {
			mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
			mc.Status.SetZN(mc.A.Value())
		}

	case instructions.Sbc:
		if mc.Status.DecimalMode {
			mc.Status.Carry,
				mc.Status.Zero,
				mc.Status.Overflow,
				mc.Status.Sign = mc.A.SubtractDecimal(value, mc.Status.Carry)
		} else {
			mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
			mc.Status.SetZN(mc.A.Value())
		}

	case instructions.Inc:
		r := mc.acc8
		r.Load(value)
		r.Add(1, false)
		mc.Status.SetZN(r.Value())
		value = r.Value()

	case instructions.Dec:
		r := mc.acc8
		r.Load(value)
		r.Add(0xff, false)
		mc.Status.SetZN(r.Value())
		value = r.Value()

	case instructions.Cmp:
		r := mc.acc8
		r.Load(mc.A.Value())

		// maybe surprisingly, CMP can be implemented with binary subtract even
		// if decimal mode is active (the meaning is the same)
		mc.Status.Carry, _ = r.Subtract(value, true)
		mc.Status.SetZN(r.Value())

	case instructions.Cpx:
		r := mc.acc8
		r.Load(mc.X.Value())
		mc.Status.Carry, _ = r.Subtract(value, true)
		mc.Status.SetZN(r.Value())

	case instructions.Cpy:
		r := mc.acc8
		r.Load(mc.Y.Value())
		mc.Status.Carry, _ = r.Subtract(value, true)
		mc.Status.SetZN(r.Value())

	case instructions.Bit:
		r := mc.acc8
		r.Load(value)
		mc.Status.Sign = r.IsNegative()
		mc.Status.Overflow = r.IsBitV()
		r.AND(mc.A.Value())
		mc.Status.Zero = r.IsZero()

	case instructions.Jmp:
		mc.PC.Load(address)

	case instructions.Bcc:
		mc.branch(!mc.Status.Carry, address)

	case instructions.Bcs:
		mc.branch(mc.Status.Carry, address)

	case instructions.Beq:
		mc.branch(mc.Status.Zero, address)

	case instructions.Bmi:
		mc.branch(mc.Status.Sign, address)

	case instructions.Bne:
		mc.branch(!mc.Status.Zero, address)

	case instructions.Bpl:
		mc.branch(!mc.Status.Sign, address)

	case instructions.Bvc:
		mc.branch(!mc.Status.Overflow, address)

	case instructions.Bvs:
		mc.branch(mc.Status.Overflow, address)

	case instructions.Jsr:
		// the address pushed to the stack is the address of the last byte of
		// the JSR instruction. RTS adds one to the address when it is pulled
		err = mc.pushPC(mc.PC.Address() - 1)
		if err != nil {
			return err
		}
		mc.PC.Load(address)

	case instructions.Rts:
		var rtsAddress uint16
		rtsAddress, err = mc.pullPC()
		if err != nil {
			return err
		}

		// load and correct PC
		mc.PC.Load(rtsAddress)
		mc.PC.Add(1)

	case instructions.Brk:
		// push PC onto register (same effect as JSR). the PC has been
		// advanced past the padding byte
		err = mc.pushPC(mc.PC.Address())
		if err != nil {
			return err
		}

		// push status register with the break flag set (same effect as PHP)
		err = mc.push(mc.Status.Value() | registers.BreakFlag)
		if err != nil {
			return err
		}

		mc.Status.InterruptDisable = true

		// perform jump
		var brkAddress uint16
		brkAddress, err = mc.read16Bit(cpubus.BRK)
		if err != nil {
			return err
		}
		mc.PC.Load(brkAddress)

	case instructions.Rti:
		// pull status register (same effect as PLP)
		value, err = mc.pull()
		if err != nil {
			return err
		}
		mc.Status.Load(value)

		// pull program counter (same effect as RTS)
		var rtiAddress uint16
		rtiAddress, err = mc.pullPC()
		if err != nil {
			return err
		}

		// unlike RTS there is no need to add one to return address
		mc.PC.Load(rtiAddress)

	default:
		return fmt.Errorf("cpu: unknown operator (%s)", defn.Operator)
	}

	// write altered value back to the accumulator or to memory
	switch defn.Operator {
	case instructions.Asl, instructions.Lsr, instructions.Rol, instructions.Ror:
		if defn.AddressingMode == instructions.Accumulator {
			mc.A.Load(value)
		}
	}
	if defn.Effect == instructions.RMW {
		err = mc.write8Bit(address, value)
		if err != nil {
			return err
		}
	}

	// cycle count including any penalty for crossing a page
	mc.LastResult.Cycles = defn.Cycles
	if mc.LastResult.PageFault {
		mc.LastResult.Cycles++
	}

	// finalise result
	mc.LastResult.Final = true

	return nil
}

// adhoc interface exposing the Peek() function to the CPU
type predictRTS interface {
	Peek(address uint16) (uint8, error)
}

// PredictRTS returns the PC address that would result if RTS was run at the
// current moment. The stack is not changed. Returns false if the memory bus
// does not support side-effect free access.
func (mc *CPU) PredictRTS() (uint16, bool) {
	mem, ok := mc.mem.(predictRTS)
	if !ok {
		return 0, false
	}

	sp := mc.SP
	lo, err := mem.Peek(sp.Pull())
	if err != nil {
		return 0, false
	}
	hi, err := mem.Peek(sp.Pull())
	if err != nil {
		return 0, false
	}

	return ((uint16(hi) << 8) | uint16(lo)) + 1, true
}

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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gophernes/hardware/cpu/instructions"
)

// Result records the state/result of the most recent CPU instruction.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// a reference to the instruction definition. nil if the result is an
	// interrupt dispatch or the opcode was illegal
	Defn *instructions.Definition

	// the opcode that was read from Address
	OpCode uint8

	// the actual operand for the instruction. in the case of relative
	// addressing this is the unsigned offset
	InstructionData uint16

	// the number of bytes read during instruction decode
	ByteCount int

	// the actual number of cycles taken by the instruction. usually the same
	// as Defn.Cycles but in the case of PageFaults and branches, this value
	// may be different
	Cycles int

	// whether an extra cycle was required because of 8 bit adder overflow
	PageFault bool

	// whether branch instruction test passed (ie. a branch was taken)
	BranchSuccess bool

	// description of a known CPU quirk that was triggered by the instruction
	CPUBug Bug

	// the interrupt dispatched instead of an instruction. empty if an
	// instruction was executed
	Interrupt string

	// whether this result is complete
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Interrupt != "" {
		return fmt.Sprintf("%04x %s interrupt (%d cycles)", r.Address, r.Interrupt, r.Cycles)
	}
	if r.Defn == nil {
		return fmt.Sprintf("%04x ?? %02x", r.Address, r.OpCode)
	}
	return fmt.Sprintf("%04x %s %s (%d cycles)", r.Address, r.Defn.Mnemonic, r.operand(), r.Cycles)
}

func (r Result) operand() string {
	switch r.Defn.AddressingMode {
	case instructions.Implied:
		return ""
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return fmt.Sprintf("#$%02x", r.InstructionData)
	case instructions.Relative:
		// the target address of the branch
		target := r.Address + 2 + uint16(int8(uint8(r.InstructionData)))
		return fmt.Sprintf("$%04x", target)
	case instructions.Absolute:
		return fmt.Sprintf("$%04x", r.InstructionData)
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02x", r.InstructionData)
	case instructions.Indirect:
		return fmt.Sprintf("($%04x)", r.InstructionData)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02x,X)", r.InstructionData)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02x),Y", r.InstructionData)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04x,X", r.InstructionData)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04x,Y", r.InstructionData)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02x,X", r.InstructionData)
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02x,Y", r.InstructionData)
	}
	return ""
}

// Operand returns the operand of the instruction formatted in the standard
// assembler notation for the addressing mode.
func (r Result) Operand() string {
	if r.Defn == nil {
		return ""
	}
	return r.operand()
}

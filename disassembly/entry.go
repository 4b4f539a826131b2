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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gophernes/hardware/cpu/execution"
)

// Entry is a disassembled instruction. It is a representation of
// execution.Result.
type Entry struct {
	// the bank this entry belongs to
	Bank int

	// copy of the CPU execution
	Result execution.Result

	// string representations of information in execution.Result
	Address  string
	Bytecode string
	Operator string
	Operand  string
}

// FormatResult creates an Entry for the supplied result. The bank can be -1 if
// the bank is not known.
func FormatResult(bank int, result execution.Result) *Entry {
	e := &Entry{
		Bank:    bank,
		Result:  result,
		Address: fmt.Sprintf("$%04x", result.Address),
	}

	// interrupts aren't instructions but are still worth a line in the
	// debugger
	if result.Interrupt != "" {
		e.Operator = "***"
		e.Operand = result.Interrupt
		return e
	}

	// the opcode is not a valid instruction
	if result.Defn == nil {
		e.Operator = ".byte"
		e.Operand = fmt.Sprintf("$%02x", result.OpCode)
		e.Bytecode = fmt.Sprintf("%02x", result.OpCode)
		return e
	}

	e.Operator = result.Defn.Mnemonic
	e.Operand = result.Operand()

	switch result.ByteCount {
	case 3:
		e.Bytecode = fmt.Sprintf("%02x %02x %02x", result.OpCode, result.InstructionData&0x00ff, result.InstructionData>>8)
	case 2:
		e.Bytecode = fmt.Sprintf("%02x %02x", result.OpCode, result.InstructionData&0x00ff)
	default:
		e.Bytecode = fmt.Sprintf("%02x", result.OpCode)
	}

	return e
}

func (e *Entry) String() string {
	if e.Operand == "" {
		return fmt.Sprintf("%s %s", e.Address, e.Operator)
	}
	return fmt.Sprintf("%s %s %s", e.Address, e.Operator, e.Operand)
}

// Size returns the number of bytes used by the entry.
func (e *Entry) Size() int {
	if e.Result.Defn == nil {
		return 1
	}
	return e.Result.Defn.Bytes
}

// Cycles returns the number of cycles for the instruction. Branches and page
// sensitive instructions are marked with an asterisk. For executed instructions the
// actual number of cycles is returned.
func (e *Entry) Cycles() string {
	if e.Result.Interrupt != "" {
		return fmt.Sprintf("%d", e.Result.Cycles)
	}

	if e.Result.Defn == nil {
		return "?"
	}

	if e.Result.Final {
		return fmt.Sprintf("%d", e.Result.Cycles)
	}

	if e.Result.Defn.PageSensitive || e.Result.Defn.IsBranch() {
		return fmt.Sprintf("%d*", e.Result.Defn.Cycles)
	}
	return fmt.Sprintf("%d", e.Result.Defn.Cycles)
}

// Notes returns a string returning notes about an executed instruction. The
// information is made up of the BranchSuccess, PageFault and CPUBug fields.
func (e *Entry) Notes() string {
	if !e.Result.Final || e.Result.Defn == nil {
		return ""
	}

	s := strings.Builder{}

	if e.Result.Defn.IsBranch() {
		if e.Result.BranchSuccess {
			s.WriteString("branch succeeded ")
		} else {
			s.WriteString("branch failed ")
		}

		if e.Result.PageFault {
			s.WriteString("with page-fault ")
		}
	} else if e.Result.PageFault {
		s.WriteString("page-fault ")
	}

	if e.Result.CPUBug != "" {
		s.WriteString(string(e.Result.CPUBug))
	}

	return strings.TrimSpace(s.String())
}

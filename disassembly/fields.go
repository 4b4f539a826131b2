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

import "fmt"

type widths struct {
	bytecode int
	address  int
	operator int
	operand  int
	cycles   int
}

type format struct {
	bytecode string
	address  string
	operator string
	operand  string
	cycles   string
}

type fields struct {
	widths widths
	fmt    format
}

// update width and formatting information for entry fields.
func (fld *fields) update(e *Entry) {
	fld.widths.bytecode = max(fld.widths.bytecode, len(e.Bytecode))
	fld.widths.address = max(fld.widths.address, len(e.Address))
	fld.widths.operator = max(fld.widths.operator, len(e.Operator))
	fld.widths.operand = max(fld.widths.operand, len(e.Operand))
	fld.widths.cycles = max(fld.widths.cycles, len(e.Cycles()))

	fld.fmt.bytecode = fmt.Sprintf("%%-%ds", fld.widths.bytecode)
	fld.fmt.address = fmt.Sprintf("%%-%ds", fld.widths.address)
	fld.fmt.operator = fmt.Sprintf("%%-%ds", fld.widths.operator)
	fld.fmt.operand = fmt.Sprintf("%%-%ds", fld.widths.operand)
	fld.fmt.cycles = fmt.Sprintf("%%-%ds", fld.widths.cycles)
}

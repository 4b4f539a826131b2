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
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
	Cycles   bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for bank := range dsm.Banks {
		err := dsm.WriteBank(output, attr, bank)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteBank writes the disassembly of the selected bank to io.Writer.
func (dsm *Disassembly) WriteBank(output io.Writer, attr WriteAttr, bank int) error {
	if bank < 0 || bank >= len(dsm.Banks) {
		return fmt.Errorf("disassembly: no such bank (%d)", bank)
	}

	_, err := fmt.Fprintf(output, "--- bank %d ---\n", bank)
	if err != nil {
		return err
	}

	for _, e := range dsm.Banks[bank] {
		err = dsm.WriteEntry(output, attr, e)
		if err != nil {
			return err
		}
	}

	return nil
}

// WriteEntry writes a single entry to io.Writer. Fields are padded according
// to the widest field in the disassembly.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e *Entry) error {
	s := strings.Builder{}

	if attr.ByteCode {
		s.WriteString(fmt.Sprintf(dsm.fields.fmt.bytecode, e.Bytecode))
		s.WriteString(" ")
	}

	s.WriteString(fmt.Sprintf(dsm.fields.fmt.address, e.Address))
	s.WriteString(" ")
	s.WriteString(fmt.Sprintf(dsm.fields.fmt.operator, e.Operator))
	s.WriteString(" ")
	s.WriteString(fmt.Sprintf(dsm.fields.fmt.operand, e.Operand))

	if attr.Cycles {
		s.WriteString(" ")
		s.WriteString(fmt.Sprintf(dsm.fields.fmt.cycles, e.Cycles()))
	}

	_, err := io.WriteString(output, strings.TrimRight(s.String(), " ")+"\n")
	return err
}

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
	"errors"
	"fmt"

	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/hardware/memory/cpubus"
)

// Disassembly represents the annotated disassembly of a 6502 binary.
type Disassembly struct {
	// the disassembled entries for each bank, in address order
	Banks [][]*Entry

	fields fields
}

// FromCartridge disassembles every PRG page of the cartridge data. The last
// page is disassembled at 0xc000 and all other pages at 0x8000, which is
// where they will be found after a reset.
func FromCartridge(data cartridge.Data) (*Disassembly, error) {
	if len(data.PRG) == 0 || len(data.PRG)%mapper.PageSize != 0 {
		return nil, fmt.Errorf("disassembly: %w: PRG is %d bytes", mapper.ConfigurationError, len(data.PRG))
	}

	dsm := &Disassembly{}

	numPages := len(data.PRG) / mapper.PageSize
	for p := range numPages {
		origin := uint16(0x8000)
		if p == numPages-1 {
			origin = 0xc000
		}

		mem := &bankMemory{
			data:   data.PRG[p*mapper.PageSize : (p+1)*mapper.PageSize],
			origin: origin,
		}

		entries, err := dsm.decode(mem, p, origin, origin+mapper.PageSize-1)
		if err != nil {
			return nil, err
		}
		dsm.Banks = append(dsm.Banks, entries)
	}

	return dsm, nil
}

// FromMemory disassembles the area of memory between origin and memtop
// (inclusive). The memory is accessed with Peek() and so there are no side
// effects. The disassembly has a single bank.
func FromMemory(mem Peeker, origin uint16, memtop uint16) (*Disassembly, error) {
	if memtop < origin {
		return nil, fmt.Errorf("disassembly: memtop (%04x) is before origin (%04x)", memtop, origin)
	}

	dsm := &Disassembly{}

	entries, err := dsm.decode(&peekMemory{mem: mem}, 0, origin, memtop)
	if err != nil {
		return nil, err
	}
	dsm.Banks = append(dsm.Banks, entries)

	return dsm, nil
}

// decode instructions one after the other from origin to memtop. an
// instruction that starts before memtop but finishes after it is still
// decoded.
func (dsm *Disassembly) decode(mem cpubus.Memory, bank int, origin uint16, memtop uint16) ([]*Entry, error) {
	mc := cpu.NewCPU(mem)

	var entries []*Entry

	address := int(origin)
	for address <= int(memtop) {
		mc.PC.Load(uint16(address))

		err := mc.ExecuteInstruction()
		if err != nil && !errors.Is(err, cpu.IllegalOpcode) {
			return nil, fmt.Errorf("disassembly: %w", err)
		}

		// the result is a decoding and not an execution
		r := mc.LastResult
		r.Final = false

		e := FormatResult(bank, r)
		dsm.fields.update(e)
		entries = append(entries, e)

		address += e.Size()
	}

	return entries, nil
}

// Get the entry for the address in the bank. Returns nil if there is no entry
// that starts at the address.
func (dsm *Disassembly) Get(bank int, address uint16) *Entry {
	if bank < 0 || bank >= len(dsm.Banks) {
		return nil
	}
	for _, e := range dsm.Banks[bank] {
		if e.Result.Address == address {
			return e
		}
	}
	return nil
}

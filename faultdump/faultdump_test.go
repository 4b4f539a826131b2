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

package faultdump_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gophernes/faultdump"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/test"
)

// run a program that calls a subroutine containing an illegal opcode
func newFault(t *testing.T) (*hardware.NES, error) {
	t.Helper()

	data := cartridge.Data{
		PRG:      make([]uint8, 2*mapper.PageSize),
		PRGPages: 2,
		MapperID: 1,
	}
	copy(data.PRG, []uint8{
		0x20, 0x10, 0x80, // JSR $8010
	})
	data.PRG[0x10] = 0x02
	data.PRG[0x7ffc] = 0x00
	data.PRG[0x7ffd] = 0x80

	nes := hardware.NewNES(nil)
	test.DemandSuccess(t, nes.AttachCartridge("test", data))

	return nes, nes.RunFrames(1)
}

func TestReport(t *testing.T) {
	nes, err := newFault(t)

	var fault *cpu.Fault
	if !errors.As(err, &fault) {
		t.Fatalf("expected a *cpu.Fault: %v", err)
	}

	r := faultdump.NewReport(fault, nes)
	test.ExpectEquality(t, r.Fault.Address, 0x8010)

	// the return address pushed by JSR followed by the two bytes below the
	// power-on stack pointer
	test.DemandEquality(t, len(r.Stack), 4)
	test.ExpectEquality(t, r.Stack[0], 0x02)
	test.ExpectEquality(t, r.Stack[1], 0x80)
}

func TestWriteFile(t *testing.T) {
	nes, err := newFault(t)
	test.DemandFailure(t, err)

	fn := filepath.Join(t.TempDir(), "fault.dot")
	test.DemandSuccess(t, faultdump.WriteFile(fn, err, nes))

	b, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.Contains(string(b), "digraph"), true)

	err = faultdump.WriteFile(fn, errors.New("not a fault"), nes)
	test.ExpectEquality(t, errors.Is(err, faultdump.NoFault), true)
}

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

package mapper_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/test"
)

func TestNametable(t *testing.T) {
	// the four logical nametables and the expected VRAM offset for each
	// arrangement
	expected := map[mapper.Mirroring][4]uint16{
		mapper.OneScreenLower: {0x0000, 0x0000, 0x0000, 0x0000},
		mapper.OneScreenUpper: {0x0400, 0x0400, 0x0400, 0x0400},
		mapper.Vertical:       {0x0000, 0x0400, 0x0000, 0x0400},
		mapper.Horizontal:     {0x0000, 0x0000, 0x0400, 0x0400},
	}

	for m, e := range expected {
		for table := uint16(0); table < 4; table++ {
			addr := 0x2000 + table*0x0400 + 0x0123
			test.ExpectEquality(t, m.Nametable(addr), e[table]+0x0123, m, table)

			// 0x3000 to 0x3eff mirrors 0x2000 to 0x2eff
			if table < 3 {
				test.ExpectEquality(t, m.Nametable(addr+0x1000), e[table]+0x0123, m, table)
			}
		}
	}
}

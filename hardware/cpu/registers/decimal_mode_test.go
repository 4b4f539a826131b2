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

package registers_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gophernes/hardware/cpu/registers"
	"github.com/jetsetilly/gophernes/test"
)

func TestDecimalModeCarry(t *testing.T) {
	r8 := registers.NewRegister(9, "test")

	rcarry, _, _, _ := r8.AddDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), 0x10)
	test.ExpectEquality(t, rcarry, false)

	r8.Load(0x99)
	rcarry, zero, _, _ := r8.AddDecimal(1, false)
	test.ExpectEquality(t, r8.Value(), 0x00)
	test.ExpectEquality(t, rcarry, true)

	// zero flag is taken from the binary result. 0x99 + 0x01 == 0x9a
	test.ExpectEquality(t, zero, false)

	r8.Load(0x58)
	rcarry, _, _, _ = r8.AddDecimal(0x46, true)
	test.ExpectEquality(t, r8.Value(), 0x05)
	test.ExpectEquality(t, rcarry, true)

	r8.Load(0x12)
	rcarry, _, _, _ = r8.AddDecimal(0x34, false)
	test.ExpectEquality(t, r8.Value(), 0x46)
	test.ExpectEquality(t, rcarry, false)

	r8.Load(0x81)
	rcarry, _, overflow, _ := r8.AddDecimal(0x92, false)
	test.ExpectEquality(t, r8.Value(), 0x73)
	test.ExpectEquality(t, rcarry, true)
	test.ExpectEquality(t, overflow, true)
}

func TestDecimalModeSubtract(t *testing.T) {
	r8 := registers.NewRegister(0x46, "test")

	rcarry, _, _, _ := r8.SubtractDecimal(0x12, true)
	test.ExpectEquality(t, r8.Value(), 0x34)
	test.ExpectEquality(t, rcarry, true)

	r8.Load(0x40)
	rcarry, _, _, _ = r8.SubtractDecimal(0x13, true)
	test.ExpectEquality(t, r8.Value(), 0x27)
	test.ExpectEquality(t, rcarry, true)

	r8.Load(0x32)
	rcarry, _, _, _ = r8.SubtractDecimal(0x02, false)
	test.ExpectEquality(t, r8.Value(), 0x29)
	test.ExpectEquality(t, rcarry, true)

	r8.Load(0x12)
	rcarry, _, _, sign := r8.SubtractDecimal(0x21, true)
	test.ExpectEquality(t, r8.Value(), 0x91)
	test.ExpectEquality(t, rcarry, false)
	test.ExpectEquality(t, sign, true)

	r8.Load(0x00)
	rcarry, zero, _, _ := r8.SubtractDecimal(0x00, true)
	test.ExpectEquality(t, r8.Value(), 0x00)
	test.ExpectEquality(t, rcarry, true)
	test.ExpectEquality(t, zero, true)
}

// all valid BCD pairs must produce the arithmetically correct BCD result
func TestDecimalModeValidInputs(t *testing.T) {
	bcd := func(n int) uint8 {
		return uint8((n/10)<<4 | (n % 10))
	}

	for a := 0; a < 100; a++ {
		for b := 0; b < 100; b++ {
			for c := 0; c < 2; c++ {
				tag := fmt.Sprintf("%02d %02d %d", a, b, c)

				r8 := registers.NewRegister(bcd(a), "A")
				rcarry, _, _, _ := r8.AddDecimal(bcd(b), c == 1)
				sum := a + b + c
				if !test.ExpectEquality(t, r8.Value(), bcd(sum%100), "add", tag) ||
					!test.ExpectEquality(t, rcarry, sum > 99, "add carry", tag) {
					return
				}

				r8 = registers.NewRegister(bcd(a), "A")
				rcarry, _, _, _ = r8.SubtractDecimal(bcd(b), c == 1)
				diff := a - b - (1 - c)
				if !test.ExpectEquality(t, r8.Value(), bcd((diff+100)%100), "subtract", tag) ||
					!test.ExpectEquality(t, rcarry, diff >= 0, "subtract carry", tag) {
					return
				}
			}
		}
	}
}

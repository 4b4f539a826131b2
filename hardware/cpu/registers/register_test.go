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
	"testing"

	"github.com/jetsetilly/gophernes/hardware/cpu/registers"
	"github.com/jetsetilly/gophernes/test"
)

func TestRegister(t *testing.T) {
	var carry, overflow bool

	// initialisation
	r8 := registers.NewRegister(0, "test")
	test.ExpectEquality(t, r8.IsZero(), true)
	test.ExpectEquality(t, r8.Value(), 0)
	test.ExpectEquality(t, r8.Label(), "test")

	// loading & addition
	r8.Load(127)
	test.ExpectEquality(t, r8.Value(), 127)
	r8.Add(2, false)
	test.ExpectEquality(t, r8.Value(), 129)

	// addtion boundary
	r8.Load(255)
	test.ExpectEquality(t, r8.IsNegative(), true)
	carry, overflow = r8.Add(1, false)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, overflow, false)
	test.ExpectEquality(t, r8.IsZero(), true)
	test.ExpectEquality(t, r8.Value(), 0)

	// addition boundary with carry
	r8.Load(254)
	carry, overflow = r8.Add(1, true)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, overflow, false)
	test.ExpectEquality(t, r8.IsZero(), true)

	// addition boundary with carry
	r8.Load(255)
	carry, overflow = r8.Add(1, true)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, overflow, false)
	test.ExpectEquality(t, r8.Value(), 1)

	// signed overflow
	r8.Load(0x7f)
	carry, overflow = r8.Add(1, false)
	test.ExpectEquality(t, carry, false)
	test.ExpectEquality(t, overflow, true)
	test.ExpectEquality(t, r8.Value(), 0x80)

	r8.Load(0x80)
	carry, overflow = r8.Add(0xff, false)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, overflow, true)
	test.ExpectEquality(t, r8.Value(), 0x7f)

	// subtraction
	r8.Load(11)
	r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), 10)

	r8.Load(12)
	r8.Subtract(1, false)
	test.ExpectEquality(t, r8.Value(), 10)

	r8.Load(0x01)
	r8.Subtract(0x06, false)
	test.ExpectEquality(t, r8.Value(), 0xfa)

	// subtract on boundary
	r8.Load(0)
	carry, _ = r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), 255)
	test.ExpectEquality(t, carry, false)
	r8.Load(1)
	carry, _ = r8.Subtract(1, false)
	test.ExpectEquality(t, r8.Value(), 255)
	test.ExpectEquality(t, carry, false)
	r8.Load(1)
	carry, _ = r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), 0)
	test.ExpectEquality(t, carry, true)

	// logical operators
	r8.Load(0x21)
	r8.AND(0x01)
	test.ExpectEquality(t, r8.Value(), 0x01)
	r8.EOR(0xff)
	test.ExpectEquality(t, r8.Value(), 0xfe)
	r8.ORA(0x01)
	test.ExpectEquality(t, r8.Value(), 0xff)

	// shifts
	carry = r8.ASL()
	test.ExpectEquality(t, r8.Value(), 0xfe)
	test.ExpectEquality(t, carry, true)
	r8.Load(0x01)
	carry = r8.LSR()
	test.ExpectEquality(t, r8.Value(), 0x00)
	test.ExpectEquality(t, carry, true)

	// rotation
	r8.Load(0xff)
	carry = r8.ROL(false)
	test.ExpectEquality(t, r8.Value(), 0xfe)
	test.ExpectEquality(t, carry, true)
	carry = r8.ROR(carry)
	test.ExpectEquality(t, r8.Value(), 0xff)
	test.ExpectEquality(t, carry, false)

	// bit tests
	r8.Load(0x40)
	test.ExpectEquality(t, r8.IsBitV(), true)
	test.ExpectEquality(t, r8.IsNegative(), false)
	test.ExpectEquality(t, r8.Address(), uint16(0x0040))
	test.ExpectEquality(t, r8.String(), "40")
}

// every combination of accumulator, operand and carry against independently
// computed predicates
func TestBinaryArithmeticFlags(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			for c := 0; c < 2; c++ {
				r := registers.NewRegister(uint8(a), "A")
				carry, overflow := r.Add(uint8(b), c == 1)

				sum := a + b + c
				sa := int(int8(uint8(a)))
				sb := int(int8(uint8(b)))
				ssum := sa + sb + c
				if !test.ExpectEquality(t, r.Value(), uint8(sum), "ADC", a, b, c) ||
					!test.ExpectEquality(t, carry, sum > 0xff, "ADC carry", a, b, c) ||
					!test.ExpectEquality(t, overflow, ssum < -128 || ssum > 127, "ADC overflow", a, b, c) {
					return
				}

				r = registers.NewRegister(uint8(a), "A")
				carry, overflow = r.Subtract(uint8(b), c == 1)

				diff := a - b - (1 - c)
				sdiff := sa - sb - (1 - c)
				if !test.ExpectEquality(t, r.Value(), uint8(diff), "SBC", a, b, c) ||
					!test.ExpectEquality(t, carry, diff >= 0, "SBC carry", a, b, c) ||
					!test.ExpectEquality(t, overflow, sdiff < -128 || sdiff > 127, "SBC overflow", a, b, c) {
					return
				}
			}
		}
	}
}

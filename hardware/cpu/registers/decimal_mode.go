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

package registers

// decimal mode arithmetic follows the NMOS 6502 behaviour described in Bruce
// Clark's "Decimal Mode" tutorial (appendix A), including the results for
// invalid BCD inputs.
//
// on the NMOS part the zero flag is taken from the binary result, the sign and
// overflow flags from the intermediate result after the low nibble has been
// adjusted but before the high nibble is adjusted.

// AddDecimal adds value to register as though both registers are decimal
// representations. Returns new carry state, zero, overflow and sign bits.
func (r *Register) AddDecimal(val uint8, carry bool) (rcarry bool, zero bool, overflow bool, sign bool) {
	var c int
	if carry {
		c = 1
	}

	a := int(r.value)
	b := int(val)

	// zero is always from binary addition
	zero = uint8(a+b+c) == 0

	al := (a & 0x0f) + (b & 0x0f) + c
	if al >= 0x0a {
		al = ((al + 0x06) & 0x0f) + 0x10
	}

	// sign and overflow from the signed intermediate
	s := int(int8(uint8(a&0xf0))) + int(int8(uint8(b&0xf0))) + al
	sign = s&0x80 == 0x80
	overflow = s < -128 || s > 127

	// unsigned result with high nibble adjustment
	u := (a & 0xf0) + (b & 0xf0) + al
	if u >= 0xa0 {
		u += 0x60
	}

	r.value = uint8(u)
	rcarry = u >= 0x100

	return rcarry, zero, overflow, sign
}

// SubtractDecimal subtracts value from register as though both registers are
// decimal representations. Returns new carry state, zero, overflow and sign
// bits.
//
// all flags on the NMOS part are the flags of the binary subtraction. only
// the value left in the register is decimal adjusted.
func (r *Register) SubtractDecimal(val uint8, carry bool) (rcarry bool, zero bool, overflow bool, sign bool) {
	var c int
	if carry {
		c = 1
	}

	a := int(r.value)
	b := int(val)

	// binary flags
	bin := NewRegister(r.value, "")
	rcarry, overflow = bin.Subtract(val, carry)
	zero = bin.IsZero()
	sign = bin.IsNegative()

	al := (a & 0x0f) - (b & 0x0f) + c - 1
	if al < 0 {
		al = ((al - 0x06) & 0x0f) - 0x10
	}

	u := (a & 0xf0) - (b & 0xf0) + al
	if u < 0 {
		u -= 0x60
	}

	r.value = uint8(u)

	return rcarry, zero, overflow, sign
}

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

import (
	"strings"
)

// StatusRegister is the special purpose register that stores the flags of
// the CPU. The unused bit (0x20) is not stored and is always set when the
// register is packed into a byte.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// Bit masks of the packed status register.
const (
	CarryFlag            = uint8(0x01)
	ZeroFlag             = uint8(0x02)
	InterruptDisableFlag = uint8(0x04)
	DecimalModeFlag      = uint8(0x08)
	BreakFlag            = uint8(0x10)
	UnusedFlag           = uint8(0x20)
	OverflowFlag         = uint8(0x40)
	SignFlag             = uint8(0x80)
)

// NewStatusRegister is the preferred method of initialisation for the status
// register. The register is in its power-on state.
func NewStatusRegister() StatusRegister {
	sr := StatusRegister{}
	sr.Reset()
	return sr
}

// Label returns the canonical name for the status register
func (sr StatusRegister) Label() string {
	return "SR"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	if sr.Sign {
		s.WriteRune('N')
	} else {
		s.WriteRune('n')
	}
	if sr.Overflow {
		s.WriteRune('V')
	} else {
		s.WriteRune('v')
	}

	s.WriteRune('-')

	if sr.Break {
		s.WriteRune('B')
	} else {
		s.WriteRune('b')
	}
	if sr.DecimalMode {
		s.WriteRune('D')
	} else {
		s.WriteRune('d')
	}
	if sr.InterruptDisable {
		s.WriteRune('I')
	} else {
		s.WriteRune('i')
	}
	if sr.Zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}
	if sr.Carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}

	return s.String()
}

// Reset puts the status register into its power-on state. Only the interrupt
// disable flag is set.
func (sr *StatusRegister) Reset() {
	*sr = StatusRegister{InterruptDisable: true}
}

// SetZN sets the zero and sign flags from the result of an operation.
func (sr *StatusRegister) SetZN(v uint8) {
	sr.Zero = v == 0
	sr.Sign = v&SignFlag == SignFlag
}

// Value converts the StatusRegister struct into a value suitable for pushing
// onto the stack.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Sign {
		v |= SignFlag
	}
	if sr.Overflow {
		v |= OverflowFlag
	}
	if sr.Break {
		v |= BreakFlag
	}
	if sr.DecimalMode {
		v |= DecimalModeFlag
	}
	if sr.InterruptDisable {
		v |= InterruptDisableFlag
	}
	if sr.Zero {
		v |= ZeroFlag
	}
	if sr.Carry {
		v |= CarryFlag
	}

	// unused bit in the status register is always 1. this doesn't matter when
	// we're in normal form but it does matter in uint8 context
	v |= UnusedFlag

	return v
}

// Load converts an 8 bit value (taken from the stack for example) to the
// StatusRegister struct. The break flag is not a real flip-flop in the CPU and
// only exists in copies of the register pushed to the stack, so the live
// Break field is left untouched.
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&SignFlag == SignFlag
	sr.Overflow = v&OverflowFlag == OverflowFlag
	sr.DecimalMode = v&DecimalModeFlag == DecimalModeFlag
	sr.InterruptDisable = v&InterruptDisableFlag == InterruptDisableFlag
	sr.Zero = v&ZeroFlag == ZeroFlag
	sr.Carry = v&CarryFlag == CarryFlag
}

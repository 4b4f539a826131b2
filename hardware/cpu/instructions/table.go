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

package instructions

// definitions is indexed by opcode. opcodes not documented by MOS are nil.
var definitions = [256]*Definition{
	0x00: {OpCode: 0x00, Operator: Brk, Mnemonic: "BRK", Bytes: 1, Cycles: 7, AddressingMode: Implied, PageSensitive: false, Effect: Interrupt},
	0x01: {OpCode: 0x01, Operator: Ora, Mnemonic: "ORA", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read},
	0x05: {OpCode: 0x05, Operator: Ora, Mnemonic: "ORA", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	0x06: {OpCode: 0x06, Operator: Asl, Mnemonic: "ASL", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	0x08: {OpCode: 0x08, Operator: Php, Mnemonic: "PHP", Bytes: 1, Cycles: 3, AddressingMode: Implied, PageSensitive: false, Effect: Write},
	0x09: {OpCode: 0x09, Operator: Ora, Mnemonic: "ORA", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	0x0a: {OpCode: 0x0a, Operator: Asl, Mnemonic: "ASL", Bytes: 1, Cycles: 2, AddressingMode: Accumulator, PageSensitive: false, Effect: Read},
	0x0d: {OpCode: 0x0d, Operator: Ora, Mnemonic: "ORA", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	0x0e: {OpCode: 0x0e, Operator: Asl, Mnemonic: "ASL", Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW},
	0x10: {OpCode: 0x10, Operator: Bpl, Mnemonic: "BPL", Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: false, Effect: Flow},
	0x11: {OpCode: 0x11, Operator: Ora, Mnemonic: "ORA", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	0x15: {OpCode: 0x15, Operator: Ora, Mnemonic: "ORA", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	0x16: {OpCode: 0x16, Operator: Asl, Mnemonic: "ASL", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW},
	0x18: {OpCode: 0x18, Operator: Clc, Mnemonic: "CLC", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0x19: {OpCode: 0x19, Operator: Ora, Mnemonic: "ORA", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	0x1d: {OpCode: 0x1d, Operator: Ora, Mnemonic: "ORA", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0x1e: {OpCode: 0x1e, Operator: Asl, Mnemonic: "ASL", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW},
	0x20: {OpCode: 0x20, Operator: Jsr, Mnemonic: "JSR", Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: Subroutine},
	0x21: {OpCode: 0x21, Operator: And, Mnemonic: "AND", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read},
	0x24: {OpCode: 0x24, Operator: Bit, Mnemonic: "BIT", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	0x25: {OpCode: 0x25, Operator: And, Mnemonic: "AND", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	0x26: {OpCode: 0x26, Operator: Rol, Mnemonic: "ROL", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	0x28: {OpCode: 0x28, Operator: Plp, Mnemonic: "PLP", Bytes: 1, Cycles: 4, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0x29: {OpCode: 0x29, Operator: And, Mnemonic: "AND", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	0x2a: {OpCode: 0x2a, Operator: Rol, Mnemonic: "ROL", Bytes: 1, Cycles: 2, AddressingMode: Accumulator, PageSensitive: false, Effect: Read},
	0x2c: {OpCode: 0x2c, Operator: Bit, Mnemonic: "BIT", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	0x2d: {OpCode: 0x2d, Operator: And, Mnemonic: "AND", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	0x2e: {OpCode: 0x2e, Operator: Rol, Mnemonic: "ROL", Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW},
	0x30: {OpCode: 0x30, Operator: Bmi, Mnemonic: "BMI", Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: false, Effect: Flow},
	0x31: {OpCode: 0x31, Operator: And, Mnemonic: "AND", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	0x35: {OpCode: 0x35, Operator: And, Mnemonic: "AND", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	0x36: {OpCode: 0x36, Operator: Rol, Mnemonic: "ROL", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW},
	0x38: {OpCode: 0x38, Operator: Sec, Mnemonic: "SEC", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0x39: {OpCode: 0x39, Operator: And, Mnemonic: "AND", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	0x3d: {OpCode: 0x3d, Operator: And, Mnemonic: "AND", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0x3e: {OpCode: 0x3e, Operator: Rol, Mnemonic: "ROL", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW},
	0x40: {OpCode: 0x40, Operator: Rti, Mnemonic: "RTI", Bytes: 1, Cycles: 6, AddressingMode: Implied, PageSensitive: false, Effect: Interrupt},
	0x41: {OpCode: 0x41, Operator: Eor, Mnemonic: "EOR", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read},
	0x45: {OpCode: 0x45, Operator: Eor, Mnemonic: "EOR", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	0x46: {OpCode: 0x46, Operator: Lsr, Mnemonic: "LSR", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	0x48: {OpCode: 0x48, Operator: Pha, Mnemonic: "PHA", Bytes: 1, Cycles: 3, AddressingMode: Implied, PageSensitive: false, Effect: Write},
	0x49: {OpCode: 0x49, Operator: Eor, Mnemonic: "EOR", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	0x4a: {OpCode: 0x4a, Operator: Lsr, Mnemonic: "LSR", Bytes: 1, Cycles: 2, AddressingMode: Accumulator, PageSensitive: false, Effect: Read},
	0x4c: {OpCode: 0x4c, Operator: Jmp, Mnemonic: "JMP", Bytes: 3, Cycles: 3, AddressingMode: Absolute, PageSensitive: false, Effect: Flow},
	0x4d: {OpCode: 0x4d, Operator: Eor, Mnemonic: "EOR", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	0x4e: {OpCode: 0x4e, Operator: Lsr, Mnemonic: "LSR", Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW},
	0x50: {OpCode: 0x50, Operator: Bvc, Mnemonic: "BVC", Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: false, Effect: Flow},
	0x51: {OpCode: 0x51, Operator: Eor, Mnemonic: "EOR", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	0x55: {OpCode: 0x55, Operator: Eor, Mnemonic: "EOR", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	0x56: {OpCode: 0x56, Operator: Lsr, Mnemonic: "LSR", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW},
	0x58: {OpCode: 0x58, Operator: Cli, Mnemonic: "CLI", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0x59: {OpCode: 0x59, Operator: Eor, Mnemonic: "EOR", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	0x5d: {OpCode: 0x5d, Operator: Eor, Mnemonic: "EOR", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0x5e: {OpCode: 0x5e, Operator: Lsr, Mnemonic: "LSR", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW},
	0x60: {OpCode: 0x60, Operator: Rts, Mnemonic: "RTS", Bytes: 1, Cycles: 6, AddressingMode: Implied, PageSensitive: false, Effect: Subroutine},
	0x61: {OpCode: 0x61, Operator: Adc, Mnemonic: "ADC", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read},
	0x65: {OpCode: 0x65, Operator: Adc, Mnemonic: "ADC", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	0x66: {OpCode: 0x66, Operator: Ror, Mnemonic: "ROR", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	0x68: {OpCode: 0x68, Operator: Pla, Mnemonic: "PLA", Bytes: 1, Cycles: 4, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0x69: {OpCode: 0x69, Operator: Adc, Mnemonic: "ADC", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	0x6a: {OpCode: 0x6a, Operator: Ror, Mnemonic: "ROR", Bytes: 1, Cycles: 2, AddressingMode: Accumulator, PageSensitive: false, Effect: Read},
	0x6c: {OpCode: 0x6c, Operator: Jmp, Mnemonic: "JMP", Bytes: 3, Cycles: 5, AddressingMode: Indirect, PageSensitive: false, Effect: Flow},
	0x6d: {OpCode: 0x6d, Operator: Adc, Mnemonic: "ADC", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	0x6e: {OpCode: 0x6e, Operator: Ror, Mnemonic: "ROR", Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW},
	0x70: {OpCode: 0x70, Operator: Bvs, Mnemonic: "BVS", Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: false, Effect: Flow},
	0x71: {OpCode: 0x71, Operator: Adc, Mnemonic: "ADC", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	0x75: {OpCode: 0x75, Operator: Adc, Mnemonic: "ADC", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	0x76: {OpCode: 0x76, Operator: Ror, Mnemonic: "ROR", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW},
	0x78: {OpCode: 0x78, Operator: Sei, Mnemonic: "SEI", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0x79: {OpCode: 0x79, Operator: Adc, Mnemonic: "ADC", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	0x7d: {OpCode: 0x7d, Operator: Adc, Mnemonic: "ADC", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0x7e: {OpCode: 0x7e, Operator: Ror, Mnemonic: "ROR", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW},
	0x81: {OpCode: 0x81, Operator: Sta, Mnemonic: "STA", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Write},
	0x84: {OpCode: 0x84, Operator: Sty, Mnemonic: "STY", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Write},
	0x85: {OpCode: 0x85, Operator: Sta, Mnemonic: "STA", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Write},
	0x86: {OpCode: 0x86, Operator: Stx, Mnemonic: "STX", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Write},
	0x88: {OpCode: 0x88, Operator: Dey, Mnemonic: "DEY", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0x8a: {OpCode: 0x8a, Operator: Txa, Mnemonic: "TXA", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0x8c: {OpCode: 0x8c, Operator: Sty, Mnemonic: "STY", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Write},
	0x8d: {OpCode: 0x8d, Operator: Sta, Mnemonic: "STA", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Write},
	0x8e: {OpCode: 0x8e, Operator: Stx, Mnemonic: "STX", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Write},
	0x90: {OpCode: 0x90, Operator: Bcc, Mnemonic: "BCC", Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: false, Effect: Flow},
	0x91: {OpCode: 0x91, Operator: Sta, Mnemonic: "STA", Bytes: 2, Cycles: 6, AddressingMode: IndirectIndexed, PageSensitive: false, Effect: Write},
	0x94: {OpCode: 0x94, Operator: Sty, Mnemonic: "STY", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Write},
	0x95: {OpCode: 0x95, Operator: Sta, Mnemonic: "STA", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Write},
	0x96: {OpCode: 0x96, Operator: Stx, Mnemonic: "STX", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, PageSensitive: false, Effect: Write},
	0x98: {OpCode: 0x98, Operator: Tya, Mnemonic: "TYA", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0x99: {OpCode: 0x99, Operator: Sta, Mnemonic: "STA", Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedY, PageSensitive: false, Effect: Write},
	0x9a: {OpCode: 0x9a, Operator: Txs, Mnemonic: "TXS", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0x9d: {OpCode: 0x9d, Operator: Sta, Mnemonic: "STA", Bytes: 3, Cycles: 5, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: Write},
	0xa0: {OpCode: 0xa0, Operator: Ldy, Mnemonic: "LDY", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	0xa1: {OpCode: 0xa1, Operator: Lda, Mnemonic: "LDA", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read},
	0xa2: {OpCode: 0xa2, Operator: Ldx, Mnemonic: "LDX", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	0xa4: {OpCode: 0xa4, Operator: Ldy, Mnemonic: "LDY", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	0xa5: {OpCode: 0xa5, Operator: Lda, Mnemonic: "LDA", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	0xa6: {OpCode: 0xa6, Operator: Ldx, Mnemonic: "LDX", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	0xa8: {OpCode: 0xa8, Operator: Tay, Mnemonic: "TAY", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0xa9: {OpCode: 0xa9, Operator: Lda, Mnemonic: "LDA", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	0xaa: {OpCode: 0xaa, Operator: Tax, Mnemonic: "TAX", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0xac: {OpCode: 0xac, Operator: Ldy, Mnemonic: "LDY", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	0xad: {OpCode: 0xad, Operator: Lda, Mnemonic: "LDA", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	0xae: {OpCode: 0xae, Operator: Ldx, Mnemonic: "LDX", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	0xb0: {OpCode: 0xb0, Operator: Bcs, Mnemonic: "BCS", Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: false, Effect: Flow},
	0xb1: {OpCode: 0xb1, Operator: Lda, Mnemonic: "LDA", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	0xb4: {OpCode: 0xb4, Operator: Ldy, Mnemonic: "LDY", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	0xb5: {OpCode: 0xb5, Operator: Lda, Mnemonic: "LDA", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	0xb6: {OpCode: 0xb6, Operator: Ldx, Mnemonic: "LDX", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedY, PageSensitive: false, Effect: Read},
	0xb8: {OpCode: 0xb8, Operator: Clv, Mnemonic: "CLV", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0xb9: {OpCode: 0xb9, Operator: Lda, Mnemonic: "LDA", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	0xba: {OpCode: 0xba, Operator: Tsx, Mnemonic: "TSX", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0xbc: {OpCode: 0xbc, Operator: Ldy, Mnemonic: "LDY", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0xbd: {OpCode: 0xbd, Operator: Lda, Mnemonic: "LDA", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0xbe: {OpCode: 0xbe, Operator: Ldx, Mnemonic: "LDX", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	0xc0: {OpCode: 0xc0, Operator: Cpy, Mnemonic: "CPY", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	0xc1: {OpCode: 0xc1, Operator: Cmp, Mnemonic: "CMP", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read},
	0xc4: {OpCode: 0xc4, Operator: Cpy, Mnemonic: "CPY", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	0xc5: {OpCode: 0xc5, Operator: Cmp, Mnemonic: "CMP", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	0xc6: {OpCode: 0xc6, Operator: Dec, Mnemonic: "DEC", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	0xc8: {OpCode: 0xc8, Operator: Iny, Mnemonic: "INY", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0xc9: {OpCode: 0xc9, Operator: Cmp, Mnemonic: "CMP", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	0xca: {OpCode: 0xca, Operator: Dex, Mnemonic: "DEX", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0xcc: {OpCode: 0xcc, Operator: Cpy, Mnemonic: "CPY", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	0xcd: {OpCode: 0xcd, Operator: Cmp, Mnemonic: "CMP", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	0xce: {OpCode: 0xce, Operator: Dec, Mnemonic: "DEC", Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW},
	0xd0: {OpCode: 0xd0, Operator: Bne, Mnemonic: "BNE", Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: false, Effect: Flow},
	0xd1: {OpCode: 0xd1, Operator: Cmp, Mnemonic: "CMP", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	0xd5: {OpCode: 0xd5, Operator: Cmp, Mnemonic: "CMP", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	0xd6: {OpCode: 0xd6, Operator: Dec, Mnemonic: "DEC", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW},
	0xd8: {OpCode: 0xd8, Operator: Cld, Mnemonic: "CLD", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0xd9: {OpCode: 0xd9, Operator: Cmp, Mnemonic: "CMP", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	0xdd: {OpCode: 0xdd, Operator: Cmp, Mnemonic: "CMP", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0xde: {OpCode: 0xde, Operator: Dec, Mnemonic: "DEC", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW},
	0xe0: {OpCode: 0xe0, Operator: Cpx, Mnemonic: "CPX", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	0xe1: {OpCode: 0xe1, Operator: Sbc, Mnemonic: "SBC", Bytes: 2, Cycles: 6, AddressingMode: IndexedIndirect, PageSensitive: false, Effect: Read},
	0xe4: {OpCode: 0xe4, Operator: Cpx, Mnemonic: "CPX", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	0xe5: {OpCode: 0xe5, Operator: Sbc, Mnemonic: "SBC", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage, PageSensitive: false, Effect: Read},
	0xe6: {OpCode: 0xe6, Operator: Inc, Mnemonic: "INC", Bytes: 2, Cycles: 5, AddressingMode: ZeroPage, PageSensitive: false, Effect: RMW},
	0xe8: {OpCode: 0xe8, Operator: Inx, Mnemonic: "INX", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0xe9: {OpCode: 0xe9, Operator: Sbc, Mnemonic: "SBC", Bytes: 2, Cycles: 2, AddressingMode: Immediate, PageSensitive: false, Effect: Read},
	0xea: {OpCode: 0xea, Operator: Nop, Mnemonic: "NOP", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0xec: {OpCode: 0xec, Operator: Cpx, Mnemonic: "CPX", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	0xed: {OpCode: 0xed, Operator: Sbc, Mnemonic: "SBC", Bytes: 3, Cycles: 4, AddressingMode: Absolute, PageSensitive: false, Effect: Read},
	0xee: {OpCode: 0xee, Operator: Inc, Mnemonic: "INC", Bytes: 3, Cycles: 6, AddressingMode: Absolute, PageSensitive: false, Effect: RMW},
	0xf0: {OpCode: 0xf0, Operator: Beq, Mnemonic: "BEQ", Bytes: 2, Cycles: 2, AddressingMode: Relative, PageSensitive: false, Effect: Flow},
	0xf1: {OpCode: 0xf1, Operator: Sbc, Mnemonic: "SBC", Bytes: 2, Cycles: 5, AddressingMode: IndirectIndexed, PageSensitive: true, Effect: Read},
	0xf5: {OpCode: 0xf5, Operator: Sbc, Mnemonic: "SBC", Bytes: 2, Cycles: 4, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: Read},
	0xf6: {OpCode: 0xf6, Operator: Inc, Mnemonic: "INC", Bytes: 2, Cycles: 6, AddressingMode: ZeroPageIndexedX, PageSensitive: false, Effect: RMW},
	0xf8: {OpCode: 0xf8, Operator: Sed, Mnemonic: "SED", Bytes: 1, Cycles: 2, AddressingMode: Implied, PageSensitive: false, Effect: Read},
	0xf9: {OpCode: 0xf9, Operator: Sbc, Mnemonic: "SBC", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedY, PageSensitive: true, Effect: Read},
	0xfd: {OpCode: 0xfd, Operator: Sbc, Mnemonic: "SBC", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteIndexedX, PageSensitive: true, Effect: Read},
	0xfe: {OpCode: 0xfe, Operator: Inc, Mnemonic: "INC", Bytes: 3, Cycles: 7, AddressingMode: AbsoluteIndexedX, PageSensitive: false, Effect: RMW},
}

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

package cpu_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/hardware/cpu/execution"
	"github.com/jetsetilly/gophernes/hardware/memory/cpubus"
	"github.com/jetsetilly/gophernes/test"
)

func testPowerOn(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mem.putInstructions(cpubus.Reset, 0x00, 0x80)
	mc.Reset()

	test.ExpectEquality(t, mc.A.Value(), 0)
	test.ExpectEquality(t, mc.X.Value(), 0)
	test.ExpectEquality(t, mc.Y.Value(), 0)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
	test.ExpectEquality(t, mc.Status.Value(), 0x24)
	test.ExpectEquality(t, mc.HasReset(), true)

	err := mc.LoadPCIndirect(cpubus.Reset)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mc.PC.Address(), 0x8000)
}

func testStatusInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(mc, mem)

	// SEC; CLC; CLI; SEI; SED; CLD; CLV
	pc := mem.putInstructions(origin, 0x38, 0x18, 0x58, 0x78, 0xf8, 0xd8, 0xb8)
	step(t, mc) // SEC
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzC")
	step(t, mc) // CLC
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")
	step(t, mc) // CLI
	test.ExpectEquality(t, mc.Status.String(), "nv-bdizc")
	step(t, mc) // SEI
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")
	step(t, mc) // SED
	test.ExpectEquality(t, mc.Status.String(), "nv-bDIzc")
	step(t, mc) // CLD
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")
	mc.Status.Overflow = true
	step(t, mc) // CLV
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")

	// PHP; PLP
	mem.putInstructions(pc, 0x08, 0x28)
	step(t, mc) // PHP
	test.ExpectEquality(t, mc.SP.Value(), 0xfc)

	// the pushed copy has the break flag set
	mem.assert(t, 0x01fd, 0x34)

	// mangle status register
	mc.Status.Sign = true
	mc.Status.Overflow = true

	// restore status register
	step(t, mc) // PLP
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")
}

func testRegisterArithmetic(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(mc, mem)

	// LDA immediate; ADC immediate
	pc := mem.putInstructions(origin, 0xa9, 1, 0x69, 10)
	step(t, mc) // LDA #1
	step(t, mc) // ADC #10
	test.ExpectEquality(t, mc.A.Value(), 11)

	// SEC; SBC immediate
	mem.putInstructions(pc, 0x38, 0xe9, 8)
	step(t, mc) // SEC
	step(t, mc) // SBC #8
	test.ExpectEquality(t, mc.A.Value(), 3)
	test.ExpectEquality(t, mc.Status.Carry, true)
}

func testRegisterBitwiseInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(mc, mem)

	// ORA immediate; EOR immediate; AND immediate
	pc := mem.putInstructions(origin, 0x09, 0xff, 0x49, 0xf0, 0x29, 0x01)
	test.ExpectEquality(t, mc.A.Value(), 0)
	step(t, mc) // ORA #$FF
	test.ExpectEquality(t, mc.A.Value(), 0xff)
	test.ExpectEquality(t, mc.Status.Sign, true)
	step(t, mc) // EOR #$F0
	test.ExpectEquality(t, mc.A.Value(), 0x0f)
	test.ExpectEquality(t, mc.Status.Sign, false)
	step(t, mc) // AND #$01
	test.ExpectEquality(t, mc.A.Value(), 0x01)

	// ASL implied; LSR implied; LSR implied
	pc = mem.putInstructions(pc, 0x0a, 0x4a, 0x4a)
	step(t, mc) // ASL
	test.ExpectEquality(t, mc.A.Value(), 0x02)
	test.ExpectEquality(t, mc.Status.Carry, false)
	step(t, mc) // LSR
	test.ExpectEquality(t, mc.A.Value(), 0x01)
	step(t, mc) // LSR
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectEquality(t, mc.Status.Carry, true)
	test.ExpectEquality(t, mc.Status.Zero, true)

	// ROR implied; ROR implied; ROL implied; ROL implied
	mem.putInstructions(pc, 0x6a, 0x6a, 0x2a, 0x2a)
	step(t, mc) // ROR
	test.ExpectEquality(t, mc.A.Value(), 0x80)
	test.ExpectEquality(t, mc.Status.Carry, false)
	test.ExpectEquality(t, mc.Status.Sign, true)
	step(t, mc) // ROR
	test.ExpectEquality(t, mc.A.Value(), 0x40)
	step(t, mc) // ROL
	test.ExpectEquality(t, mc.A.Value(), 0x80)
	step(t, mc) // ROL
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectEquality(t, mc.Status.Carry, true)
	test.ExpectEquality(t, mc.Status.Zero, true)
}

func testImmediateImplied(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(mc, mem)

	// LDX immediate; INX; DEX
	pc := mem.putInstructions(origin, 0xa2, 5, 0xe8, 0xca)
	step(t, mc) // LDX #5
	test.ExpectEquality(t, mc.X.Value(), 5)
	step(t, mc) // INX
	test.ExpectEquality(t, mc.X.Value(), 6)
	step(t, mc) // DEX
	test.ExpectEquality(t, mc.X.Value(), 5)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")

	// PHA; LDA immediate; PLA
	pc = mem.putInstructions(pc, 0xa9, 5, 0x48, 0xa9, 0, 0x68)
	step(t, mc) // LDA #5
	step(t, mc) // PHA
	test.ExpectEquality(t, mc.SP.Value(), 0xfc)
	step(t, mc) // LDA #0
	test.ExpectEquality(t, mc.A.Value(), 0)
	test.ExpectEquality(t, mc.Status.Zero, true)
	step(t, mc) // PLA
	test.ExpectEquality(t, mc.A.Value(), 5)
	test.ExpectEquality(t, mc.Status.Zero, false)

	// TAX; TAY; LDX immediate; TXA; LDY immediate; TYA; INY; DEY
	pc = mem.putInstructions(pc, 0xaa, 0xa8, 0xa2, 1, 0x8a, 0xa0, 2, 0x98, 0xc8, 0x88)
	step(t, mc) // TAX
	test.ExpectEquality(t, mc.X.Value(), 5)
	step(t, mc) // TAY
	test.ExpectEquality(t, mc.Y.Value(), 5)
	step(t, mc) // LDX #1
	step(t, mc) // TXA
	test.ExpectEquality(t, mc.A.Value(), 1)
	step(t, mc) // LDY #2
	step(t, mc) // TYA
	test.ExpectEquality(t, mc.A.Value(), 2)
	step(t, mc) // INY
	test.ExpectEquality(t, mc.Y.Value(), 3)
	step(t, mc) // DEY
	test.ExpectEquality(t, mc.Y.Value(), 2)

	// TSX; LDX immediate; TXS
	mem.putInstructions(pc, 0xba, 0xa2, 100, 0x9a)
	step(t, mc) // TSX
	test.ExpectEquality(t, mc.X.Value(), 0xfd)
	step(t, mc) // LDX #100
	step(t, mc) // TXS
	test.ExpectEquality(t, mc.SP.Value(), 100)
}

func testAddressingModes(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(mc, mem)

	// zero page data
	mem.putInstructions(0x10, 0x11, 0x22, 0x33)

	// absolute data
	mem.putInstructions(0x0300, 123, 43)

	// pointers
	mem.putInstructions(0x20, 0x00, 0x03)
	mem.putInstructions(0x30, 0xff, 0x02)
	mem.putInstructions(0xff, 0x01)
	mem.putInstructions(0x00, 0x03)

	// LDA zero page
	pc := mem.putInstructions(origin, 0xa5, 0x10)
	step(t, mc) // LDA $10
	test.ExpectEquality(t, mc.A.Value(), 0x11)
	test.ExpectEquality(t, mc.LastResult.Cycles, 3)

	// LDX immediate; LDA zero page,X
	pc = mem.putInstructions(pc, 0xa2, 1, 0xb5, 0x10)
	step(t, mc) // LDX #1
	step(t, mc) // LDA $10,X
	test.ExpectEquality(t, mc.A.Value(), 0x22)

	// LDY immediate; LDX zero page,Y
	pc = mem.putInstructions(pc, 0xa0, 2, 0xb6, 0x10)
	step(t, mc) // LDY #2
	step(t, mc) // LDX $10,Y
	test.ExpectEquality(t, mc.X.Value(), 0x33)

	// zero page indexing wraps around inside the zero page
	pc = mem.putInstructions(pc, 0xa2, 0xff, 0xb5, 0x12)
	step(t, mc) // LDX #$ff
	step(t, mc) // LDA $12,X
	test.ExpectEquality(t, mc.A.Value(), 0x22)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.ZeroPageIndexBug)

	// LDA absolute
	pc = mem.putInstructions(pc, 0xad, 0x00, 0x03)
	step(t, mc) // LDA $0300
	test.ExpectEquality(t, mc.A.Value(), 123)
	test.ExpectEquality(t, mc.LastResult.Cycles, 4)

	// LDX immediate; LDA absolute,X (page fault)
	pc = mem.putInstructions(pc, 0xa2, 1, 0xbd, 0xff, 0x02)
	step(t, mc) // LDX #1
	step(t, mc) // LDA $02ff,X
	test.ExpectEquality(t, mc.A.Value(), 123)
	test.ExpectEquality(t, mc.LastResult.PageFault, true)
	test.ExpectEquality(t, mc.LastResult.Cycles, 5)

	// LDY immediate; LDA absolute,Y
	pc = mem.putInstructions(pc, 0xa0, 1, 0xb9, 0x00, 0x03)
	step(t, mc) // LDY #1
	step(t, mc) // LDA $0300,Y
	test.ExpectEquality(t, mc.A.Value(), 43)
	test.ExpectEquality(t, mc.LastResult.PageFault, false)
	test.ExpectEquality(t, mc.LastResult.Cycles, 4)

	// LDX immediate; LDA (Indirect, X)
	pc = mem.putInstructions(pc, 0xa2, 0x10, 0xa1, 0x10)
	step(t, mc) // LDX #$10
	step(t, mc) // LDA ($10,X)
	test.ExpectEquality(t, mc.A.Value(), 123)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.NoBug)
	test.ExpectEquality(t, mc.LastResult.Cycles, 6)

	// pre-indexed indirect (with wraparound)
	pc = mem.putInstructions(pc, 0xa2, 0xff, 0xa1, 0x00)
	step(t, mc) // LDX #$ff
	step(t, mc) // LDA ($00,X)
	test.ExpectEquality(t, mc.A.Value(), 43)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.IndexedIndirectAddressingBug)

	// post-indexed indirect (with page-fault)
	pc = mem.putInstructions(pc, 0xa0, 0x01, 0xb1, 0x30)
	step(t, mc) // LDY #1
	step(t, mc) // LDA ($30),Y
	test.ExpectEquality(t, mc.A.Value(), 123)
	test.ExpectEquality(t, mc.LastResult.PageFault, true)
	test.ExpectEquality(t, mc.LastResult.Cycles, 6)

	// post-indexed indirect (without page-fault)
	mem.putInstructions(pc, 0xa0, 0x01, 0xb1, 0x20)
	step(t, mc) // LDY #1
	step(t, mc) // LDA ($20),Y
	test.ExpectEquality(t, mc.A.Value(), 43)
	test.ExpectEquality(t, mc.LastResult.PageFault, false)
	test.ExpectEquality(t, mc.LastResult.Cycles, 5)
}

func testStorageInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(mc, mem)

	// LDA immediate; STA absolute
	pc := mem.putInstructions(origin, 0xa9, 0x54, 0x8d, 0x00, 0x03)
	step(t, mc) // LDA 0x54
	step(t, mc) // STA 0x0300
	mem.assert(t, 0x0300, 0x54)

	// LDX immediate; STX absolute
	pc = mem.putInstructions(pc, 0xa2, 0x63, 0x8e, 0x01, 0x03)
	step(t, mc) // LDX 0x63
	step(t, mc) // STX 0x0301
	mem.assert(t, 0x0301, 0x63)

	// LDY immediate; STY absolute
	pc = mem.putInstructions(pc, 0xa0, 0x72, 0x8c, 0x02, 0x03)
	step(t, mc) // LDY 0x72
	step(t, mc) // STY 0x0302
	mem.assert(t, 0x0302, 0x72)

	// INC zero page
	pc = mem.putInstructions(pc, 0xe6, 0x01)
	step(t, mc) // INC $01
	mem.assert(t, 0x01, 0x01)
	test.ExpectEquality(t, mc.LastResult.Cycles, 5)

	// DEC absolute
	pc = mem.putInstructions(pc, 0xce, 0x00, 0x03)
	step(t, mc) // DEC 0x0300
	mem.assert(t, 0x0300, 0x53)
	test.ExpectEquality(t, mc.LastResult.Cycles, 6)

	// ASL absolute,X
	pc = mem.putInstructions(pc, 0xa2, 0x02, 0x1e, 0x00, 0x03)
	step(t, mc) // LDX #2
	step(t, mc) // ASL $0300,X
	mem.assert(t, 0x0302, 0xe4)
	test.ExpectEquality(t, mc.Status.Carry, false)
	test.ExpectEquality(t, mc.Status.Sign, true)
	test.ExpectEquality(t, mc.LastResult.Cycles, 7)

	// STA (Indirect),Y never has a page fault
	mem.putInstructions(0x40, 0xff, 0x02)
	mem.putInstructions(pc, 0xa0, 0x04, 0x91, 0x40)
	step(t, mc) // LDY #4
	step(t, mc) // STA ($40),Y
	mem.assert(t, 0x0303, 0x54)
	test.ExpectEquality(t, mc.LastResult.PageFault, false)
	test.ExpectEquality(t, mc.LastResult.Cycles, 6)
}

func testBranching(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(mc, mem)

	// branch taken on the same page costs no additional cycles
	mem.putInstructions(origin, 0x10, 0x10)
	step(t, mc) // BPL $10
	test.ExpectEquality(t, mc.PC.Address(), origin+0x12)
	test.ExpectEquality(t, mc.LastResult.BranchSuccess, true)
	test.ExpectEquality(t, mc.LastResult.Cycles, 2)

	// branch not taken
	mem.putInstructions(mc.PC.Address(), 0x30, 0x10)
	step(t, mc) // BMI $10
	test.ExpectEquality(t, mc.PC.Address(), origin+0x14)
	test.ExpectEquality(t, mc.LastResult.BranchSuccess, false)
	test.ExpectEquality(t, mc.LastResult.Cycles, 2)

	// branch forward onto the next page
	reset(mc, mem)
	mc.LoadPC(0x06f0)
	mem.putInstructions(0x06f0, 0xa9, 0x00, 0xf0, 0x20)
	step(t, mc) // LDA #0
	step(t, mc) // BEQ $20
	test.ExpectEquality(t, mc.PC.Address(), 0x0714)
	test.ExpectEquality(t, mc.LastResult.PageFault, true)
	test.ExpectEquality(t, mc.LastResult.Cycles, 3)

	// branch backwards onto the previous page
	reset(mc, mem)
	mc.LoadPC(0x0700)
	mem.putInstructions(0x0700, 0xd0, 0xfc)
	step(t, mc) // BNE -4
	test.ExpectEquality(t, mc.PC.Address(), 0x06fe)
	test.ExpectEquality(t, mc.LastResult.PageFault, true)
	test.ExpectEquality(t, mc.LastResult.Cycles, 3)

	// branch backwards on the same page
	reset(mc, mem)
	mc.LoadPC(0x0710)
	mem.putInstructions(0x0710, 0x38, 0xb0, 0xfd)
	step(t, mc) // SEC
	step(t, mc) // BCS -3
	test.ExpectEquality(t, mc.PC.Address(), 0x0710)
	test.ExpectEquality(t, mc.LastResult.PageFault, false)
	test.ExpectEquality(t, mc.LastResult.Cycles, 2)

	// remaining branch instructions
	type branch struct {
		opcode uint8
		setup  func()
		taken  bool
	}
	branches := []branch{
		{opcode: 0x90, setup: func() { mc.Status.Carry = false }, taken: true},     // BCC
		{opcode: 0x90, setup: func() { mc.Status.Carry = true }, taken: false},     // BCC
		{opcode: 0xb0, setup: func() { mc.Status.Carry = false }, taken: false},    // BCS
		{opcode: 0xf0, setup: func() { mc.Status.Zero = false }, taken: false},     // BEQ
		{opcode: 0xd0, setup: func() { mc.Status.Zero = true }, taken: false},      // BNE
		{opcode: 0x30, setup: func() { mc.Status.Sign = true }, taken: true},       // BMI
		{opcode: 0x10, setup: func() { mc.Status.Sign = true }, taken: false},      // BPL
		{opcode: 0x50, setup: func() { mc.Status.Overflow = false }, taken: true},  // BVC
		{opcode: 0x50, setup: func() { mc.Status.Overflow = true }, taken: false},  // BVC
		{opcode: 0x70, setup: func() { mc.Status.Overflow = true }, taken: true},   // BVS
		{opcode: 0x70, setup: func() { mc.Status.Overflow = false }, taken: false}, // BVS
	}
	for _, b := range branches {
		reset(mc, mem)
		b.setup()
		mem.putInstructions(origin, b.opcode, 0x10)
		step(t, mc)
		test.ExpectEquality(t, mc.LastResult.BranchSuccess, b.taken, b.opcode)
		if b.taken {
			test.ExpectEquality(t, mc.PC.Address(), origin+0x12, b.opcode)
		} else {
			test.ExpectEquality(t, mc.PC.Address(), origin+0x02, b.opcode)
		}
	}
}

func testJumps(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(mc, mem)

	// JMP absolute
	mem.putInstructions(origin, 0x4c, 0x00, 0x01)
	step(t, mc) // JMP $100
	test.ExpectEquality(t, mc.PC.Address(), 0x0100)
	test.ExpectEquality(t, mc.LastResult.Cycles, 3)

	// JMP indirect
	reset(mc, mem)
	mem.putInstructions(0x0050, 0x49, 0x01)
	mem.putInstructions(origin, 0x6c, 0x50, 0x00)
	step(t, mc) // JMP ($50)
	test.ExpectEquality(t, mc.PC.Address(), 0x0149)
	test.ExpectEquality(t, mc.LastResult.Cycles, 5)

	// JMP indirect (bug). the high byte of the address is read from the
	// start of the same page
	reset(mc, mem)
	mem.putInstructions(0x02ff, 0x03)
	mem.putInstructions(0x0200, 0x07)
	mem.putInstructions(0x0300, 0x99)
	mem.putInstructions(origin, 0x6c, 0xff, 0x02)
	step(t, mc) // JMP ($02ff)
	test.ExpectEquality(t, mc.PC.Address(), 0x0703)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.JmpIndirectAddressingBug)
}

func testComparisonInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(mc, mem)

	// CMP immediate (equality)
	pc := mem.putInstructions(origin, 0xc9, 0x00)
	step(t, mc) // CMP $00
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIZC")

	// LDA immediate; CMP immediate
	pc = mem.putInstructions(pc, 0xa9, 0xf6, 0xc9, 0x18)
	step(t, mc) // LDA $F6
	step(t, mc) // CMP $18
	test.ExpectEquality(t, mc.Status.String(), "Nv-bdIzC")
	test.ExpectEquality(t, mc.A.Value(), 0xf6)

	// LDX immediate; CPX immediate
	pc = mem.putInstructions(pc, 0xa2, 0xf6, 0xe0, 0x18)
	step(t, mc) // LDX $F6
	step(t, mc) // CPX $18
	test.ExpectEquality(t, mc.Status.String(), "Nv-bdIzC")

	// LDY immediate; CPY immediate
	pc = mem.putInstructions(pc, 0xa0, 0xf6, 0xc0, 0x18)
	step(t, mc) // LDY $F6
	step(t, mc) // CPY $18
	test.ExpectEquality(t, mc.Status.String(), "Nv-bdIzC")

	// LDA immediate; CMP immediate
	pc = mem.putInstructions(pc, 0xa9, 0x18, 0xc9, 0xf6)
	step(t, mc) // LDA $18
	step(t, mc) // CMP $F6
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")

	// BIT zero page
	mem.putInstructions(0x40, 0xc0)
	mem.putInstructions(pc, 0xa9, 0x01, 0x24, 0x40)
	step(t, mc) // LDA #1
	step(t, mc) // BIT $40
	test.ExpectEquality(t, mc.Status.String(), "NV-bdIZc")
	test.ExpectEquality(t, mc.A.Value(), 0x01)
}

func testSubroutineInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(mc, mem)

	// JSR absolute
	mem.putInstructions(origin, 0x20, 0x00, 0x07)
	step(t, mc) // JSR $0700
	test.ExpectEquality(t, mc.PC.Address(), 0x0700)
	test.ExpectEquality(t, mc.LastResult.Cycles, 6)

	// the address of the last byte of the JSR instruction is on the stack
	mem.assert(t, 0x01fd, 0x06)
	mem.assert(t, 0x01fc, 0x02)
	test.ExpectEquality(t, mc.SP.Value(), 0xfb)

	rts, ok := mc.PredictRTS()
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, rts, origin+3)

	mem.putInstructions(0x0700, 0x60)
	step(t, mc) // RTS
	test.ExpectEquality(t, mc.PC.Address(), origin+3)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
	test.ExpectEquality(t, mc.LastResult.Cycles, 6)
}

func testBreakInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(mc, mem)

	// BRK vector
	mem.putInstructions(cpubus.BRK, 0x00, 0x08)

	// CLI; SEC; BRK; padding
	mem.putInstructions(origin, 0x58, 0x38, 0x00, 0xff)
	step(t, mc) // CLI
	step(t, mc) // SEC
	before := mc.Status.Value()
	test.ExpectEquality(t, before, 0x21)

	step(t, mc) // BRK
	test.ExpectEquality(t, mc.PC.Address(), 0x0800)
	test.ExpectEquality(t, mc.LastResult.Cycles, 7)
	test.ExpectEquality(t, mc.Status.InterruptDisable, true)
	test.ExpectEquality(t, mc.Status.Break, false)
	test.ExpectEquality(t, mc.SP.Value(), 0xfa)

	// return address skips the padding byte. status has the break flag set
	mem.assert(t, 0x01fd, 0x06)
	mem.assert(t, 0x01fc, 0x04)
	mem.assert(t, 0x01fb, 0x31)

	mem.putInstructions(0x0800, 0x40)
	step(t, mc) // RTI
	test.ExpectEquality(t, mc.PC.Address(), origin+4)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
	test.ExpectEquality(t, mc.Status.Value(), before)
	test.ExpectEquality(t, mc.LastResult.Cycles, 6)
}

func testDecimalMode(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(mc, mem)

	pc := mem.putInstructions(origin, 0xf8, 0xa9, 0x20, 0x38, 0xe9, 0x01)
	step(t, mc) // SED
	step(t, mc) // LDA #$20
	step(t, mc) // SEC
	step(t, mc) // SBC #$01
	test.ExpectEquality(t, mc.A.Value(), 0x19)

	mem.putInstructions(pc, 0x18, 0x69, 0x01)
	step(t, mc) // CLC
	step(t, mc) // ADC #$01
	test.ExpectEquality(t, mc.A.Value(), 0x20)

	// decimal correction only applies when the decimal flag is set
	reset(mc, mem)
	mem.putInstructions(origin, 0xa9, 0x19, 0x69, 0x01)
	step(t, mc) // LDA #$19
	step(t, mc) // ADC #$01
	test.ExpectEquality(t, mc.A.Value(), 0x1a)
}

func testIllegalOpcode(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(mc, mem)

	mem.putInstructions(origin, 0x02)
	err := mc.ExecuteInstruction()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, errors.Is(err, cpu.IllegalOpcode), true)
	test.ExpectEquality(t, mc.LastResult.OpCode, 0x02)
	test.ExpectEquality(t, mc.LastResult.Address, origin)
}

func testBusErrors(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	reset(mc, mem)

	mem.putInstructions(origin, 0xad, 0x00, 0x50)
	err := mc.ExecuteInstruction()
	test.ExpectEquality(t, errors.Is(err, cpubus.UnmappedAddress), true)

	reset(mc, mem)
	mem.putInstructions(origin, 0x8d, 0x00, 0x50)
	err = mc.ExecuteInstruction()
	test.ExpectEquality(t, errors.Is(err, cpubus.UnmappedAddress), true)
}

func TestCPU(t *testing.T) {
	mc, mem := newTestCPU()

	testPowerOn(t, mc, mem)
	testStatusInstructions(t, mc, mem)
	testRegisterArithmetic(t, mc, mem)
	testRegisterBitwiseInstructions(t, mc, mem)
	testImmediateImplied(t, mc, mem)
	testAddressingModes(t, mc, mem)
	testStorageInstructions(t, mc, mem)
	testBranching(t, mc, mem)
	testJumps(t, mc, mem)
	testComparisonInstructions(t, mc, mem)
	testSubroutineInstructions(t, mc, mem)
	testBreakInstructions(t, mc, mem)
	testDecimalMode(t, mc, mem)
	testIllegalOpcode(t, mc, mem)
	testBusErrors(t, mc, mem)
}

// ADC and SBC flags for every combination of accumulator, operand and carry
func TestArithmeticFlags(t *testing.T) {
	mc, mem := newTestCPU()

	for _, opcode := range []uint8{0x69, 0xe9} {
		for a := 0; a < 256; a++ {
			for b := 0; b < 256; b++ {
				for c := 0; c < 2; c++ {
					mc.LoadPC(origin)
					mem.putInstructions(origin, opcode, uint8(b))
					mc.A.Load(uint8(a))
					mc.Status.Carry = c == 1
					mc.Status.DecimalMode = false

					err := mc.ExecuteInstruction()
					test.DemandSuccess(t, err)

					var r, sr int
					sa := int(int8(uint8(a)))
					sb := int(int8(uint8(b)))
					var carry bool
					if opcode == 0x69 {
						r = a + b + c
						sr = sa + sb + c
						carry = r > 0xff
					} else {
						r = a - b - (1 - c)
						sr = sa - sb - (1 - c)
						carry = r >= 0
					}
					overflow := sr < -128 || sr > 127
					result := uint8(r)

					if !test.ExpectEquality(t, mc.A.Value(), result, opcode, a, b, c) ||
						!test.ExpectEquality(t, mc.Status.Carry, carry, opcode, a, b, c) ||
						!test.ExpectEquality(t, mc.Status.Overflow, overflow, opcode, a, b, c) ||
						!test.ExpectEquality(t, mc.Status.Zero, result == 0, opcode, a, b, c) ||
						!test.ExpectEquality(t, mc.Status.Sign, result&0x80 == 0x80, opcode, a, b, c) {
						return
					}
				}
			}
		}
	}
}

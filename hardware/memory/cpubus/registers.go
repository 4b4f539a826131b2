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

package cpubus

// Register is used to identify the memory mapped registers of the PPU and
// the peripheral window.
type Register string

// List of PPU and peripheral registers.
const (
	PPUCTRL   Register = "PPUCTRL"
	PPUMASK   Register = "PPUMASK"
	PPUSTATUS Register = "PPUSTATUS"
	OAMADDR   Register = "OAMADDR"
	OAMDATA   Register = "OAMDATA"
	PPUSCROLL Register = "PPUSCROLL"
	PPUADDR   Register = "PPUADDR"
	PPUDATA   Register = "PPUDATA"

	SQ1_VOL    Register = "SQ1_VOL"
	SQ1_SWEEP  Register = "SQ1_SWEEP"
	SQ1_LO     Register = "SQ1_LO"
	SQ1_HI     Register = "SQ1_HI"
	SQ2_VOL    Register = "SQ2_VOL"
	SQ2_SWEEP  Register = "SQ2_SWEEP"
	SQ2_LO     Register = "SQ2_LO"
	SQ2_HI     Register = "SQ2_HI"
	TRI_LINEAR Register = "TRI_LINEAR"
	TRI_LO     Register = "TRI_LO"
	TRI_HI     Register = "TRI_HI"
	NOISE_VOL  Register = "NOISE_VOL"
	NOISE_LO   Register = "NOISE_LO"
	NOISE_HI   Register = "NOISE_HI"
	DMC_FREQ   Register = "DMC_FREQ"
	DMC_RAW    Register = "DMC_RAW"
	DMC_START  Register = "DMC_START"
	DMC_LEN    Register = "DMC_LEN"
	OAMDMA     Register = "OAMDMA"
	SND_CHN    Register = "SND_CHN"
	JOY1       Register = "JOY1"
	JOY2       Register = "JOY2"
)

// PPUReadSymbols indexes the readable PPU registers by register number (the
// address after mirroring has been removed).
var PPUReadSymbols = map[uint16]Register{
	0x02: PPUSTATUS,
	0x04: OAMDATA,
	0x07: PPUDATA,
}

// PPUWriteSymbols indexes the writable PPU registers by register number.
var PPUWriteSymbols = map[uint16]Register{
	0x00: PPUCTRL,
	0x01: PPUMASK,
	0x03: OAMADDR,
	0x04: OAMDATA,
	0x05: PPUSCROLL,
	0x06: PPUADDR,
	0x07: PPUDATA,
}

// PeripheralReadSymbols indexes the readable registers of the peripheral
// window by address.
var PeripheralReadSymbols = map[uint16]Register{
	0x4015: SND_CHN,
	0x4016: JOY1,
	0x4017: JOY2,
}

// PeripheralWriteSymbols indexes the writable registers of the peripheral
// window by address.
var PeripheralWriteSymbols = map[uint16]Register{
	0x4000: SQ1_VOL,
	0x4001: SQ1_SWEEP,
	0x4002: SQ1_LO,
	0x4003: SQ1_HI,
	0x4004: SQ2_VOL,
	0x4005: SQ2_SWEEP,
	0x4006: SQ2_LO,
	0x4007: SQ2_HI,
	0x4008: TRI_LINEAR,
	0x400a: TRI_LO,
	0x400b: TRI_HI,
	0x400c: NOISE_VOL,
	0x400e: NOISE_LO,
	0x400f: NOISE_HI,
	0x4010: DMC_FREQ,
	0x4011: DMC_RAW,
	0x4012: DMC_START,
	0x4013: DMC_LEN,
	0x4014: OAMDMA,
	0x4015: SND_CHN,
	0x4016: JOY1,
	0x4017: JOY2,
}

// Symbol returns the canonical name of the register at the CPU address.
// Mirrors of the PPU registers are resolved. Returns the empty string if the
// address is not a register, or the register does not support the type of
// access.
func Symbol(address uint16, read bool) Register {
	if address >= 0x2000 && address <= 0x3fff {
		if read {
			return PPUReadSymbols[(address-0x2000)&0x07]
		}
		return PPUWriteSymbols[(address-0x2000)&0x07]
	}
	if read {
		return PeripheralReadSymbols[address]
	}
	return PeripheralWriteSymbols[address]
}

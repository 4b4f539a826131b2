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

package monitor

import (
	"github.com/jetsetilly/gophernes/disassembly"
	"github.com/jetsetilly/gophernes/hardware"
)

// CPU registers in the Snapshot.
type CPU struct {
	PC     uint16 `json:"pc"`
	A      uint8  `json:"a"`
	X      uint8  `json:"x"`
	Y      uint8  `json:"y"`
	SP     uint8  `json:"sp"`
	Status uint8  `json:"status"`
}

// PPU registers in the Snapshot.
type PPU struct {
	Control1    uint8  `json:"control1"`
	Control2    uint8  `json:"control2"`
	Status      uint8  `json:"status"`
	VRAMAddress uint16 `json:"vramAddress"`
}

// Snapshot is the state of the machine sent to clients once per frame.
type Snapshot struct {
	Frame  int    `json:"frame"`
	Cycles uint64 `json:"cycles"`
	CPU    CPU    `json:"cpu"`
	PPU    PPU    `json:"ppu"`
	Mapper string `json:"mapper"`

	// the most recent instruction (or interrupt)
	Last string `json:"last"`
}

// snapshot should only be called from the CPU goroutine or when the emulation
// is not running.
func snapshot(nes *hardware.NES, frame int) Snapshot {
	ppu := nes.PPU.Registers()

	return Snapshot{
		Frame:  frame,
		Cycles: nes.Sync.Cycles(),
		CPU: CPU{
			PC:     nes.CPU.PC.Address(),
			A:      nes.CPU.A.Value(),
			X:      nes.CPU.X.Value(),
			Y:      nes.CPU.Y.Value(),
			SP:     nes.CPU.SP.Value(),
			Status: nes.CPU.Status.Value(),
		},
		PPU: PPU{
			Control1:    ppu.Control1,
			Control2:    ppu.Control2,
			Status:      ppu.Status,
			VRAMAddress: ppu.VRAMAddress,
		},
		Mapper: nes.Cart.ID(),
		Last:   disassembly.FormatResult(-1, nes.CPU.LastResult).String(),
	}
}

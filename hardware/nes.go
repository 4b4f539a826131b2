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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/hardware/memory"
	"github.com/jetsetilly/gophernes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophernes/hardware/memory/cpubus"
	"github.com/jetsetilly/gophernes/hardware/peripherals/controller"
	"github.com/jetsetilly/gophernes/hardware/ppu"
	"github.com/jetsetilly/gophernes/hardware/timing"
	"github.com/jetsetilly/gophernes/logger"
)

// NES is the top-level emulation component. It owns the CPU, the memory bus,
// the PPU and the cartridge. The CPU and PPU share the Sync instance.
type NES struct {
	log *logger.Logger

	Sync *timing.Sync
	CPU  *cpu.CPU
	Mem  *memory.Memory
	PPU  *ppu.PPU
	Cart *cartridge.Cartridge

	// controllers attached to the two ports
	Pads [2]*controller.Pad

	// functions called at the start of every frame. see OnFrame()
	frameHooks []func(frame int) error
	lastFrame  int
}

// NewNES creates a new NES and everything associated with the hardware. The
// logger can be nil.
func NewNES(log *logger.Logger) *NES {
	nes := &NES{
		log:  log,
		Sync: timing.NewSync(),
		Cart: cartridge.NewCartridge(),
	}

	nes.PPU = ppu.NewPPU(nes.Sync, nes.Cart)
	nes.Mem = memory.NewMemory(nes.PPU, nes.Cart)
	nes.CPU = cpu.NewCPU(nes.Mem)
	nes.CPU.AttachInterruptLine(nes.Sync)

	for i := range nes.Pads {
		nes.Pads[i] = controller.NewPad()
		nes.Mem.Peripherals.AttachPort(i, nes.Pads[i])
	}

	return nes
}

func (nes *NES) String() string {
	return fmt.Sprintf("frame=%d cycle=%d %s", nes.Sync.Frame(), nes.Sync.FrameCycle(), nes.CPU)
}

// AttachCartridge attaches the cartridge data and resets the NES.
func (nes *NES) AttachCartridge(filename string, data cartridge.Data) error {
	err := nes.Cart.Attach(filename, data)
	if err != nil {
		return fmt.Errorf("nes: %w", err)
	}
	nes.log.Logf(logger.Allow, "nes", "attached %s (%s)", filename, nes.Cart.ID())
	return nes.Reset()
}

// Reset the NES to its power-on state and load the PC from the reset vector.
// Should not be called while the emulation is running.
func (nes *NES) Reset() error {
	nes.Sync.Reset()
	nes.CPU.Reset()
	nes.Mem.Reset()
	nes.PPU.Reset()
	nes.Cart.Reset()
	nes.lastFrame = 0

	err := nes.CPU.LoadPCIndirect(cpubus.Reset)
	if err != nil {
		return fmt.Errorf("nes: %w", err)
	}

	nes.log.Logf(logger.Allow, "nes", "reset vector %04x", nes.CPU.PC.Address())

	return nil
}

// OnFrame adds a function to be called at the first instruction boundary of
// every new frame. The function is called from the CPU goroutine so the
// machine is not changing while the function runs. Returning an error stops
// the emulation.
func (nes *NES) OnFrame(hook func(frame int) error) {
	nes.frameHooks = append(nes.frameHooks, hook)
}

// AttachObserver sets the observer for the VBLANK boundaries. The observer is
// called from the PPU goroutine.
func (nes *NES) AttachObserver(o ppu.Observer) {
	nes.PPU.AttachObserver(o)
}

// call the frame hooks if the frame has changed since the last call.
func (nes *NES) frameBoundary() error {
	frame := nes.Sync.Frame()
	if frame == nes.lastFrame {
		return nil
	}
	nes.lastFrame = frame

	for _, hook := range nes.frameHooks {
		if err := hook(frame); err != nil {
			return err
		}
	}
	return nil
}

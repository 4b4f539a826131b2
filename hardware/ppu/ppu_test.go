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

package ppu_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/hardware/memory/cpubus"
	"github.com/jetsetilly/gophernes/hardware/ppu"
	"github.com/jetsetilly/gophernes/hardware/timing"
	"github.com/jetsetilly/gophernes/test"
)

type mockCart struct {
	chr       [0x2000]uint8
	mirroring mapper.Mirroring
}

func (cart *mockCart) ReadCHR(addr uint16) uint8 {
	return cart.chr[addr]
}

func (cart *mockCart) WriteCHR(addr uint16, data uint8) {
	cart.chr[addr] = data
}

func (cart *mockCart) Mirroring() mapper.Mirroring {
	return cart.mirroring
}

func newTestPPU() (*ppu.PPU, *mockCart) {
	cart := &mockCart{mirroring: mapper.Vertical}
	return ppu.NewPPU(&sync.Mutex{}, cart), cart
}

func write(t *testing.T, p *ppu.PPU, reg uint16, data ...uint8) {
	t.Helper()
	for _, d := range data {
		err := p.WriteRegister(reg, d)
		test.DemandSuccess(t, err)
	}
}

func read(t *testing.T, p *ppu.PPU, reg uint16) uint8 {
	t.Helper()
	v, err := p.ReadRegister(reg)
	test.DemandSuccess(t, err)
	return v
}

func TestRegisterLegality(t *testing.T) {
	p, _ := newTestPPU()

	for reg := uint16(0); reg < 8; reg++ {
		_, err := p.ReadRegister(reg)
		switch reg {
		case ppu.Status, ppu.OAMData, ppu.VRAMData:
			test.ExpectSuccess(t, err, ppu.RegisterNames[reg])
		default:
			test.ExpectEquality(t, errors.Is(err, cpubus.UnhandledIoAccess), true, ppu.RegisterNames[reg])
		}

		err = p.WriteRegister(reg, 0)
		switch reg {
		case ppu.Status:
			test.ExpectEquality(t, errors.Is(err, cpubus.UnhandledIoAccess), true, ppu.RegisterNames[reg])
		default:
			test.ExpectSuccess(t, err, ppu.RegisterNames[reg])
		}
	}
}

func TestVRAMAddress(t *testing.T) {
	p, _ := newTestPPU()

	write(t, p, ppu.VRAMAddress, 0x21, 0x08)
	test.ExpectEquality(t, p.Registers().VRAMAddress, 0x2108)
	test.ExpectEquality(t, p.Registers().Toggle, false)

	// increment by one
	write(t, p, ppu.VRAMData, 0x11, 0x22)
	test.ExpectEquality(t, p.Registers().VRAMAddress, 0x210a)
	test.ExpectEquality(t, p.PeekVRAM(0x2108), 0x11)
	test.ExpectEquality(t, p.PeekVRAM(0x2109), 0x22)

	// increment by 32
	write(t, p, ppu.Control1, ppu.Control1Increment)
	write(t, p, ppu.VRAMData, 0x33, 0x44)
	test.ExpectEquality(t, p.Registers().VRAMAddress, 0x214a)
	test.ExpectEquality(t, p.PeekVRAM(0x210a), 0x33)
	test.ExpectEquality(t, p.PeekVRAM(0x212a), 0x44)

	// the status register resets the write toggle
	write(t, p, ppu.VRAMAddress, 0x3f)
	test.ExpectEquality(t, p.Registers().Toggle, true)
	read(t, p, ppu.Status)
	test.ExpectEquality(t, p.Registers().Toggle, false)
	write(t, p, ppu.VRAMAddress, 0x23, 0xc0)
	test.ExpectEquality(t, p.Registers().VRAMAddress, 0x23c0)
}

func TestScroll(t *testing.T) {
	p, _ := newTestPPU()

	write(t, p, ppu.Control1, 0x02)
	write(t, p, ppu.Scroll, 0x7d, 0x5e)

	r := p.Registers()
	test.ExpectEquality(t, r.FineX, 0x05)
	test.ExpectEquality(t, r.TempAddress, 0x696f)
	test.ExpectEquality(t, r.Toggle, false)

	// scroll and address share the toggle
	write(t, p, ppu.Scroll, 0x00)
	write(t, p, ppu.VRAMAddress, 0x24)
	test.ExpectEquality(t, p.Registers().Toggle, false)
}

func TestBufferedRead(t *testing.T) {
	p, cart := newTestPPU()

	write(t, p, ppu.VRAMAddress, 0x20, 0x00)
	write(t, p, ppu.VRAMData, 0xaa, 0xbb)

	// the first read returns the stale buffer
	write(t, p, ppu.VRAMAddress, 0x20, 0x00)
	test.ExpectEquality(t, read(t, p, ppu.VRAMData), 0x00)
	test.ExpectEquality(t, read(t, p, ppu.VRAMData), 0xaa)
	test.ExpectEquality(t, read(t, p, ppu.VRAMData), 0xbb)

	// pattern tables are read from the cartridge
	cart.chr[0x0010] = 0x5a
	write(t, p, ppu.VRAMAddress, 0x00, 0x10)
	read(t, p, ppu.VRAMData)
	test.ExpectEquality(t, read(t, p, ppu.VRAMData), 0x5a)

	// palette reads are not buffered
	write(t, p, ppu.VRAMAddress, 0x3f, 0x01)
	write(t, p, ppu.VRAMData, 0x2c)
	write(t, p, ppu.VRAMAddress, 0x3f, 0x01)
	test.ExpectEquality(t, read(t, p, ppu.VRAMData), 0x2c)
}

func TestPalette(t *testing.T) {
	p, _ := newTestPPU()

	p.PokeVRAM(0x3f10, 0x0f)
	test.ExpectEquality(t, p.PeekVRAM(0x3f00), 0x0f)
	p.PokeVRAM(0x3f0c, 0x1a)
	test.ExpectEquality(t, p.PeekVRAM(0x3f1c), 0x1a)

	// sprite palette entries other than the first in each group are not
	// mirrored
	p.PokeVRAM(0x3f11, 0x21)
	test.ExpectEquality(t, p.PeekVRAM(0x3f01), 0x00)

	// mirrored every 32 bytes up to 0x3fff
	test.ExpectEquality(t, p.PeekVRAM(0x3fe0), 0x0f)
	test.ExpectEquality(t, p.PeekVRAM(0x3ff1), 0x21)
}

func TestNametableMirroring(t *testing.T) {
	p, cart := newTestPPU()

	p.PokeVRAM(0x2005, 0x01)
	p.PokeVRAM(0x2405, 0x02)
	test.ExpectEquality(t, p.PeekVRAM(0x2805), 0x01)
	test.ExpectEquality(t, p.PeekVRAM(0x2c05), 0x02)
	test.ExpectEquality(t, p.PeekVRAM(0x3005), 0x01)

	// the mirroring is taken from the cartridge each time
	cart.mirroring = mapper.Horizontal
	test.ExpectEquality(t, p.PeekVRAM(0x2405), 0x01)
	test.ExpectEquality(t, p.PeekVRAM(0x2805), 0x02)
}

func TestOAM(t *testing.T) {
	p, _ := newTestPPU()

	write(t, p, ppu.OAMAddress, 0x10)
	write(t, p, ppu.OAMData, 0x01, 0x02)
	oam := p.PeekOAM()
	test.ExpectEquality(t, oam[0x10], 0x01)
	test.ExpectEquality(t, oam[0x11], 0x02)

	// reading does not change the address
	test.ExpectEquality(t, read(t, p, ppu.OAMData), 0x00)
	test.ExpectEquality(t, p.Registers().OAMAddress, 0x12)

	// DMA starts at the OAM address and wraps around
	data := make([]uint8, 256)
	for i := range data {
		data[i] = uint8(i)
	}
	write(t, p, ppu.OAMAddress, 0x80)
	p.DMA(data)
	oam = p.PeekOAM()
	test.ExpectEquality(t, oam[0x80], 0x00)
	test.ExpectEquality(t, oam[0xff], 0x7f)
	test.ExpectEquality(t, oam[0x00], 0x80)
}

type mockObserver struct {
	enter []int
	exit  []int
}

func (o *mockObserver) VBlankEnter(frame int) {
	o.enter = append(o.enter, frame)
}

func (o *mockObserver) VBlankExit(frame int) {
	o.exit = append(o.exit, frame)
}

func TestVBlank(t *testing.T) {
	s := timing.NewSync()
	cart := &mockCart{}
	p := ppu.NewPPU(s, cart)

	obs := &mockObserver{}
	p.AttachObserver(obs)

	write(t, p, ppu.Control1, ppu.Control1NMI)

	s.Reset()
	s.Open()

	done := make(chan bool)
	go func() {
		p.Run(s)
		done <- true
	}()

	const frames = 3

	var nmi int
	var vblankStatus int

	for c := 0; c < timing.FrameCycles*frames; c++ {
		s.Advance()
		if s.Acknowledge(false) == timing.NMI {
			nmi++

			// the status register is only read in the cycle the NMI is
			// seen. reading the register clears the VBLANK flag
			if read(t, p, ppu.Status)&ppu.StatusVBlank == ppu.StatusVBlank {
				vblankStatus++
			}
			test.ExpectEquality(t, p.PeekRegister(ppu.Status)&ppu.StatusVBlank, 0)
		}
	}

	s.Close()
	<-done

	test.ExpectEquality(t, nmi, frames)
	test.ExpectEquality(t, vblankStatus, frames)
	test.ExpectEquality(t, s.Frame(), frames)
	test.DemandEquality(t, len(obs.enter), frames)
	test.DemandEquality(t, len(obs.exit), frames)
	for i := 0; i < frames; i++ {
		test.ExpectEquality(t, obs.enter[i], i)
		test.ExpectEquality(t, obs.exit[i], i)
	}
}

func TestVBlankNMIDisabled(t *testing.T) {
	s := timing.NewSync()
	p := ppu.NewPPU(s, &mockCart{})

	s.Reset()
	s.Open()

	done := make(chan bool)
	go func() {
		p.Run(s)
		done <- true
	}()

	for c := 0; c < timing.VBlankEnterCycle; c++ {
		s.Advance()
	}

	// vblank flag is set but no NMI has been posted
	test.ExpectEquality(t, p.PeekRegister(ppu.Status)&ppu.StatusVBlank, ppu.StatusVBlank)
	test.ExpectEquality(t, s.Pending(), timing.None)

	for c := timing.VBlankEnterCycle; c < timing.FrameCycles; c++ {
		s.Advance()
	}

	// vblank flag is cleared on exit
	test.ExpectEquality(t, p.PeekRegister(ppu.Status)&ppu.StatusVBlank, 0)

	s.Close()
	<-done
}

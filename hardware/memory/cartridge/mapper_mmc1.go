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

package cartridge

import (
	"fmt"

	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
)

// MMC1 (mapper 1) is configured by writing a bit at a time to a serial shift
// register. Writing a value with bit 7 set resets the shift register. The
// fifth write transfers the collected value to one of four internal registers
// chosen by the address of that fifth write:
//
//	8000-9fff	control
//	a000-bfff	CHR bank 0
//	c000-dfff	CHR bank 1
//	e000-ffff	PRG bank
//
// Control register:
//
//	bits 0-1	mirroring (one screen lower, one screen upper, vertical, horizontal)
//	bits 2-3	PRG mode
//	bit 4		CHR mode (0 = one 8KB bank, 1 = two 4KB banks)
//
// PRG modes:
//
//	0, 1	32KB at 8000 (low bit of the PRG bank ignored)
//	2		first page fixed at 8000, PRG bank at c000
//	3		PRG bank at 8000, last page fixed at c000
type mmc1 struct {
	mappingID   string
	description string

	// 16KB pages
	prg [][]uint8

	// CHR ROM or 8KB of CHR RAM if the cartridge has no CHR ROM
	chr    []uint8
	chrRAM bool

	state *mmc1State
}

type mmc1State struct {
	// the serial shift register and the number of bits collected so far
	shift uint8
	count int

	control uint8
	chr0    uint8
	chr1    uint8
	prg     uint8
}

// the control register bits set by a reset of the shift register. selects
// PRG mode 3
const mmc1ControlReset = 0x0c

func newMMC1State() *mmc1State {
	return &mmc1State{
		control: mmc1ControlReset,
	}
}

func newMMC1(data Data) (mapper.CartMapper, error) {
	cart := &mmc1{
		mappingID:   "MMC1",
		description: "mapper 1",
		state:       newMMC1State(),
	}

	if len(data.PRG) == 0 || len(data.PRG)%mapper.PageSize != 0 {
		return nil, fmt.Errorf("mmc1: %w: PRG is %d bytes", mapper.ConfigurationError, len(data.PRG))
	}

	cart.prg = make([][]uint8, len(data.PRG)/mapper.PageSize)
	for k := range cart.prg {
		cart.prg[k] = make([]uint8, mapper.PageSize)
		offset := k * mapper.PageSize
		copy(cart.prg[k], data.PRG[offset:offset+mapper.PageSize])
	}

	if len(data.CHR) == 0 {
		cart.chr = make([]uint8, mapper.CHRPageSize)
		cart.chrRAM = true
	} else {
		cart.chr = make([]uint8, len(data.CHR))
		copy(cart.chr, data.CHR)
	}

	return cart, nil
}

func (cart *mmc1) String() string {
	lo, hi := cart.LoadedPages()
	return fmt.Sprintf("%s [%s] PRG: %d/%d mode %d CHR: %d/%d mode %d (%s)",
		cart.mappingID, cart.description,
		lo, hi, (cart.state.control>>2)&0x03,
		cart.state.chr0, cart.state.chr1, (cart.state.control>>4)&0x01,
		cart.Mirroring())
}

// ID implements the mapper.CartMapper interface.
func (cart *mmc1) ID() string {
	return cart.mappingID
}

// Snapshot implements the mapper.CartMapper interface.
func (cart *mmc1) Snapshot() mapper.CartMapper {
	n := *cart
	s := *cart.state
	n.state = &s

	// CHR RAM is volatile so must be copied. the PRG pages are only changed
	// by Patch() and are shared
	if cart.chrRAM {
		n.chr = make([]uint8, len(cart.chr))
		copy(n.chr, cart.chr)
	}

	return &n
}

// Reset implements the mapper.CartMapper interface.
func (cart *mmc1) Reset() {
	cart.state = newMMC1State()
}

// Write implements the mapper.CartMapper interface.
func (cart *mmc1) Write(addr uint16, data uint8) error {
	if data&0x80 == 0x80 {
		cart.state.shift = 0
		cart.state.count = 0
		cart.state.control |= mmc1ControlReset
		return nil
	}

	cart.state.shift |= (data & 0x01) << cart.state.count
	cart.state.count++
	if cart.state.count < 5 {
		return nil
	}

	v := cart.state.shift
	cart.state.shift = 0
	cart.state.count = 0

	switch addr >> 13 {
	case 0:
		cart.state.control = v
	case 1:
		cart.state.chr0 = v
	case 2:
		cart.state.chr1 = v
	case 3:
		cart.state.prg = v
	}

	return nil
}

// LoadedPages implements the mapper.CartMapper interface.
func (cart *mmc1) LoadedPages() (int, int) {
	// bit 4 of the PRG register is the SRAM enable on later revisions of
	// the chip and does not select a page
	bank := int(cart.state.prg & 0x0f)

	switch (cart.state.control >> 2) & 0x03 {
	case 0, 1:
		lo := bank &^ 0x01
		return lo, lo + 1
	case 2:
		return 0, bank
	}
	return bank, len(cart.prg) - 1
}

// page returns the PRG page mapped to the address.
func (cart *mmc1) page(addr uint16) (int, error) {
	lo, hi := cart.LoadedPages()
	page := lo
	if addr >= mapper.PageSize {
		page = hi
	}
	if page >= len(cart.prg) {
		return 0, fmt.Errorf("mmc1: %w: PRG page %d selected but there are only %d pages", mapper.ConfigurationError, page, len(cart.prg))
	}
	return page, nil
}

// Read implements the mapper.CartMapper interface.
func (cart *mmc1) Read(addr uint16) (uint8, error) {
	page, err := cart.page(addr)
	if err != nil {
		return 0, err
	}
	return cart.prg[page][addr&(mapper.PageSize-1)], nil
}

// Patch implements the mapper.CartMapper interface.
func (cart *mmc1) Patch(addr uint16, data uint8) error {
	page, err := cart.page(addr)
	if err != nil {
		return err
	}
	cart.prg[page][addr&(mapper.PageSize-1)] = data
	return nil
}

// chrAddress converts a PPU pattern table address to an index into the CHR
// data. bank numbers beyond the size of the CHR data wrap around.
func (cart *mmc1) chrAddress(addr uint16) int {
	var idx int
	if cart.state.control&0x10 == 0x10 {
		bank := cart.state.chr0
		if addr >= 0x1000 {
			bank = cart.state.chr1
		}
		idx = int(bank)*0x1000 + int(addr&0x0fff)
	} else {
		idx = int(cart.state.chr0>>1)*mapper.CHRPageSize + int(addr)
	}
	return idx % len(cart.chr)
}

// ReadCHR implements the mapper.CartMapper interface.
func (cart *mmc1) ReadCHR(addr uint16) uint8 {
	return cart.chr[cart.chrAddress(addr)]
}

// WriteCHR implements the mapper.CartMapper interface.
func (cart *mmc1) WriteCHR(addr uint16, data uint8) {
	if !cart.chrRAM {
		return
	}
	cart.chr[cart.chrAddress(addr)] = data
}

// Mirroring implements the mapper.CartMapper interface.
func (cart *mmc1) Mirroring() mapper.Mirroring {
	return mapper.Mirroring(cart.state.control & 0x03)
}

// CopyBanks implements the mapper.CartMapper interface.
func (cart *mmc1) CopyBanks() []mapper.BankContent {
	lo, hi := cart.LoadedPages()
	c := make([]mapper.BankContent, len(cart.prg))
	for k := range cart.prg {
		c[k] = mapper.BankContent{
			Number: k,
			Data:   make([]uint8, len(cart.prg[k])),
			Origin: 0x8000,
		}
		copy(c[k].Data, cart.prg[k])
		switch k {
		case lo:
			c[k].Mapped = true
		case hi:
			c[k].Origin = 0xc000
			c[k].Mapped = true
		}
	}
	return c
}

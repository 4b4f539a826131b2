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
	"crypto/sha1"
	"errors"
	"fmt"

	"github.com/jetsetilly/gophernes/hardware/memory/cartridge/mapper"
	"github.com/jetsetilly/gophernes/hardware/memory/memorymap"
)

// UnsupportedMapper is returned by Attach() if the mapper ID in the cartridge
// data is not one that can be emulated.
var UnsupportedMapper = errors.New("cartridge: unsupported mapper")

// SRAMSize is the size of the cartridge work RAM in bytes.
const SRAMSize = 0x2000

// Cartridge defines the information and operations for a NES cartridge.
type Cartridge struct {
	Filename string
	Hash     string

	// whether the SRAM is battery backed
	Battery bool

	// the specific cartridge data, mapped appropriately to the memory
	// interfaces
	mapper mapper.CartMapper

	// cartridge work RAM at 0x6000 to 0x7fff
	sram []uint8
}

// NewCartridge is the preferred method of initialisation for the cartridge
// type.
func NewCartridge() *Cartridge {
	cart := &Cartridge{
		sram: make([]uint8, SRAMSize),
	}
	cart.Eject()
	return cart
}

func (cart *Cartridge) String() string {
	return fmt.Sprintf("%s\n%s", cart.Filename, cart.mapper)
}

// ID returns the mapper ID.
func (cart *Cartridge) ID() string {
	return cart.mapper.ID()
}

// Snapshot creates a copy of the cartridge in its current state.
func (cart *Cartridge) Snapshot() *Cartridge {
	n := *cart
	n.mapper = cart.mapper.Snapshot()
	n.sram = make([]uint8, len(cart.sram))
	copy(n.sram, cart.sram)
	return &n
}

// Eject removes the cartridge data and attaches an empty mapper.
func (cart *Cartridge) Eject() {
	cart.Filename = ejectedName
	cart.Hash = ejectedHash
	cart.Battery = false
	cart.mapper = newEjected()
	clear(cart.sram)
}

// IsEjected returns true if no cartridge is attached.
func (cart *Cartridge) IsEjected() bool {
	return cart.Hash == ejectedHash
}

// Attach the cartridge data. The mapper is chosen according to the MapperID
// field of the data.
func (cart *Cartridge) Attach(filename string, data Data) error {
	var err error
	var m mapper.CartMapper

	switch data.MapperID {
	case 1:
		m, err = newMMC1(data)
	default:
		return fmt.Errorf("%w: mapper %d", UnsupportedMapper, data.MapperID)
	}
	if err != nil {
		return err
	}

	cart.Filename = filename
	cart.Hash = fmt.Sprintf("%x", sha1.Sum(append(data.PRG, data.CHR...)))
	cart.Battery = data.Battery
	cart.mapper = m
	clear(cart.sram)

	return nil
}

// Reset the mapper registers. The contents of SRAM are kept.
func (cart *Cartridge) Reset() {
	cart.mapper.Reset()
}

// Read is an implementation of the CPU bus for the PRG area. The address
// should be in the range memorymap.OriginPRG to memorymap.MemtopPRG.
func (cart *Cartridge) Read(addr uint16) (uint8, error) {
	return cart.mapper.Read(addr & memorymap.MaskPRG)
}

// Write is an implementation of the CPU bus for the PRG area.
func (cart *Cartridge) Write(addr uint16, data uint8) error {
	return cart.mapper.Write(addr&memorymap.MaskPRG, data)
}

// Peek reads from the PRG area without side effects.
func (cart *Cartridge) Peek(addr uint16) (uint8, error) {
	return cart.mapper.Read(addr & memorymap.MaskPRG)
}

// Poke changes the PRG byte currently mapped to the address. Unlike Write()
// the mapper registers are not affected.
func (cart *Cartridge) Poke(addr uint16, data uint8) error {
	return cart.mapper.Patch(addr&memorymap.MaskPRG, data)
}

// ReadSRAM returns the byte at the address in the SRAM area.
func (cart *Cartridge) ReadSRAM(addr uint16) uint8 {
	return cart.sram[addr&memorymap.MaskSRAM]
}

// WriteSRAM writes to the SRAM area.
func (cart *Cartridge) WriteSRAM(addr uint16, data uint8) {
	cart.sram[addr&memorymap.MaskSRAM] = data
}

// ReadCHR is an implementation of the ppu.Cartridge interface.
func (cart *Cartridge) ReadCHR(addr uint16) uint8 {
	return cart.mapper.ReadCHR(addr & 0x1fff)
}

// WriteCHR is an implementation of the ppu.Cartridge interface.
func (cart *Cartridge) WriteCHR(addr uint16, data uint8) {
	cart.mapper.WriteCHR(addr&0x1fff, data)
}

// Mirroring is an implementation of the ppu.Cartridge interface.
func (cart *Cartridge) Mirroring() mapper.Mirroring {
	return cart.mapper.Mirroring()
}

// LoadedPages returns the indices of the PRG pages visible at 0x8000 and
// 0xc000.
func (cart *Cartridge) LoadedPages() (int, int) {
	return cart.mapper.LoadedPages()
}

// CopyBanks returns copies of every PRG page.
func (cart *Cartridge) CopyBanks() []mapper.BankContent {
	return cart.mapper.CopyBanks()
}

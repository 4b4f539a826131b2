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

package debugger

import (
	"github.com/jetsetilly/gophernes/disassembly"
	"github.com/jetsetilly/gophernes/logger"
)

type command struct {
	key  byte
	help string
	fn   func(dbg *Debugger) error
}

var commands []command

// number of log entries shown by the log command
const logTail = 10

// number of bytes disassembled by the list command
const listSize = 16

func init() {
	commands = []command{
		{key: 's', help: "step one instruction (also space or return)", fn: (*Debugger).step},
		{key: ' ', fn: (*Debugger).step},
		{key: 'f', help: "run until the start of the next frame", fn: (*Debugger).frame},
		{key: 'r', help: "show CPU registers", fn: (*Debugger).registers},
		{key: 'p', help: "show PPU registers", fn: (*Debugger).ppu},
		{key: 'c', help: "show cartridge mapper", fn: (*Debugger).cartridge},
		{key: 'l', help: "list instructions from the PC", fn: (*Debugger).list},
		{key: 'g', help: "show recent log entries", fn: (*Debugger).tailLog},
		{key: 'x', help: "reset the machine", fn: (*Debugger).reset},
		{key: 'h', help: "this help", fn: (*Debugger).help},
		{key: '?', fn: (*Debugger).help},
		{key: 'q', help: "quit", fn: (*Debugger).quit},
	}
}

// execute the command for the key. unknown keys are reported and ignored.
func (dbg *Debugger) execute(key byte) error {
	for _, c := range commands {
		if c.key == key {
			return c.fn(dbg)
		}
	}
	dbg.printLine(styleError, "unknown command (%q). press h for help", key)
	return nil
}

func (dbg *Debugger) step() error {
	err := dbg.nes.Step()
	if err != nil {
		dbg.printLine(styleError, "%v", err)
		return nil
	}

	e := disassembly.FormatResult(-1, dbg.nes.CPU.LastResult)
	if notes := e.Notes(); notes != "" {
		dbg.printLine(styleInstruction, "%s [%s] %s", e, e.Cycles(), notes)
	} else {
		dbg.printLine(styleInstruction, "%s [%s]", e, e.Cycles())
	}

	return nil
}

func (dbg *Debugger) frame() error {
	err := dbg.nes.RunFrames(1)
	if err != nil {
		dbg.printLine(styleError, "%v", err)
		return nil
	}
	dbg.printLine(styleFeedback, "frame %d", dbg.nes.Sync.Frame())
	return dbg.registers()
}

func (dbg *Debugger) registers() error {
	dbg.printLine(styleMachineInfo, dbg.nes.CPU.String())
	return nil
}

func (dbg *Debugger) ppu() error {
	dbg.printLine(styleMachineInfo, dbg.nes.PPU.String())
	return nil
}

func (dbg *Debugger) cartridge() error {
	dbg.printLine(styleMachineInfo, dbg.nes.Cart.String())
	return nil
}

func (dbg *Debugger) list() error {
	pc := dbg.nes.CPU.PC.Address()

	memtop := pc + listSize - 1
	if memtop < pc {
		memtop = 0xffff
	}

	dsm, err := disassembly.FromMemory(dbg.nes.Mem, pc, memtop)
	if err != nil {
		dbg.printLine(styleError, "%v", err)
		return nil
	}

	return dsm.WriteBank(dbg.writerInStyle(styleInstruction), disassembly.WriteAttr{ByteCode: true}, 0)
}

func (dbg *Debugger) tailLog() error {
	if dbg.log == nil {
		dbg.printLine(styleFeedback, "no log")
		return nil
	}
	dbg.log.Tail(dbg.writerInStyle(styleFeedback), logTail)
	return nil
}

func (dbg *Debugger) reset() error {
	err := dbg.nes.Reset()
	if err != nil {
		dbg.printLine(styleError, "%v", err)
		return nil
	}
	dbg.log.Log(logger.Allow, "debugger", "machine reset")
	return dbg.registers()
}

func (dbg *Debugger) help() error {
	for _, c := range commands {
		if c.help == "" {
			continue
		}
		dbg.printLine(styleHelp, "%c  %s", c.key, c.help)
	}
	return nil
}

func (dbg *Debugger) quit() error {
	dbg.running = false
	return nil
}

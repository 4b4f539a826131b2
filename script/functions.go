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

package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/jetsetilly/gophernes/hardware/peripherals/controller"
	"github.com/jetsetilly/gophernes/logger"
)

func (scr *Script) functions() map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"peek":    scr.peek,
		"poke":    scr.poke,
		"cpu":     scr.cpu,
		"frame":   scr.frame,
		"press":   scr.press,
		"release": scr.release,
		"log":     scr.logMessage,
		"stop":    scr.stopEmulation,
	}
}

func checkAddress(L *lua.LState, n int) uint16 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xffff {
		L.ArgError(n, "address out of range")
	}
	return uint16(v)
}

func (scr *Script) peek(L *lua.LState) int {
	address := checkAddress(L, 1)
	v, err := scr.nes.Mem.Peek(address)
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	address := checkAddress(L, 1)
	v := L.CheckInt(2)
	if v < 0 || v > 0xff {
		L.ArgError(2, "value out of range")
		return 0
	}
	err := scr.nes.Mem.Poke(address, uint8(v))
	if err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) cpu(L *lua.LState) int {
	mc := scr.nes.CPU
	t := L.NewTable()
	L.SetField(t, "pc", lua.LNumber(mc.PC.Address()))
	L.SetField(t, "a", lua.LNumber(mc.A.Value()))
	L.SetField(t, "x", lua.LNumber(mc.X.Value()))
	L.SetField(t, "y", lua.LNumber(mc.Y.Value()))
	L.SetField(t, "sp", lua.LNumber(mc.SP.Value()))
	L.SetField(t, "status", lua.LNumber(mc.Status.Value()))
	L.Push(t)
	return 1
}

func (scr *Script) frame(L *lua.LState) int {
	L.Push(lua.LNumber(scr.nes.Sync.Frame()))
	return 1
}

// button event for the press() and release() functions.
func (scr *Script) button(L *lua.LState, event controller.Event) int {
	button, err := controller.ParseButton(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}

	port := L.OptInt(2, 1)
	if port < 1 || port > len(scr.nes.Pads) {
		L.ArgError(2, "no such port")
		return 0
	}

	_, err = scr.nes.Pads[port-1].HandleEvent(event, button)
	if err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) press(L *lua.LState) int {
	return scr.button(L, controller.Press)
}

func (scr *Script) release(L *lua.LState) int {
	return scr.button(L, controller.Release)
}

func (scr *Script) logMessage(L *lua.LState) int {
	scr.log.Log(logger.Allow, "script", L.CheckString(1))
	return 0
}

func (scr *Script) stopEmulation(L *lua.LState) int {
	scr.stop = true
	return 0
}

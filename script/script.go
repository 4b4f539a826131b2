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
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/logger"
)

// Stopped is returned by the frame hook when the script has called
// nes.stop().
var Stopped = errors.New("script: stopped")

// the name of the global function called every frame
const frameHook = "on_frame"

// Script is a running Lua script attached to a NES.
type Script struct {
	L    *lua.LState
	nes  *hardware.NES
	log  *logger.Logger
	name string

	// set by nes.stop()
	stop bool
}

func newScript(nes *hardware.NES, log *logger.Logger, name string) *Script {
	scr := &Script{
		L:    lua.NewState(),
		nes:  nes,
		log:  log,
		name: name,
	}
	scr.L.SetGlobal("nes", scr.L.SetFuncs(scr.L.NewTable(), scr.functions()))
	return scr
}

// Load the script file and attach it to the NES. The logger can be nil.
func Load(nes *hardware.NES, log *logger.Logger, filename string) (*Script, error) {
	scr := newScript(nes, log, filename)
	err := scr.L.DoFile(filename)
	if err != nil {
		scr.Close()
		return nil, fmt.Errorf("script: %w", err)
	}
	scr.attach()
	return scr, nil
}

// LoadString is the same as Load() except that the script is supplied as a
// string. The name is used in log entries.
func LoadString(nes *hardware.NES, log *logger.Logger, name string, source string) (*Script, error) {
	scr := newScript(nes, log, name)
	err := scr.L.DoString(source)
	if err != nil {
		scr.Close()
		return nil, fmt.Errorf("script: %w", err)
	}
	scr.attach()
	return scr, nil
}

// Close the Lua state. The script must not be closed while the emulation is
// running.
func (scr *Script) Close() {
	scr.L.Close()
}

func (scr *Script) attach() {
	scr.log.Logf(logger.Allow, "script", "loaded %s", scr.name)
	scr.nes.OnFrame(scr.onFrame)
}

// onFrame is called from the CPU goroutine.
func (scr *Script) onFrame(frame int) error {
	if scr.stop {
		return Stopped
	}

	fn := scr.L.GetGlobal(frameHook)
	if fn.Type() != lua.LTFunction {
		return nil
	}

	err := scr.L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, lua.LNumber(frame))
	if err != nil {
		scr.log.Log(logger.Allow, "script", err)
		return fmt.Errorf("script: %w", err)
	}

	if scr.stop {
		scr.log.Logf(logger.Allow, "script", "stopped on frame %d", frame)
		return Stopped
	}

	return nil
}

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

// Package script runs Lua scripts alongside the emulation.
//
// A script is loaded before the emulation starts. The top level of the script
// is run immediately. If the script defines a global function called
// on_frame() then it is called at the start of every frame with the frame
// number as the only argument.
//
// The script has access to the machine through the nes table:
//
//	nes.peek(address)          read memory without side effects
//	nes.poke(address, value)   write memory without side effects
//	nes.cpu()                  table of CPU registers (pc, a, x, y, sp, status)
//	nes.frame()                the current frame number
//	nes.press(button, [port])  press a controller button ("A", "Start", etc.)
//	nes.release(button, [port])
//	nes.log(message)           add a message to the log
//	nes.stop()                 stop the emulation at the end of the hook
//
// The port argument is 1 or 2 and defaults to 1. For example, a script to
// press Start on the tenth frame and to stop after the hundredth:
//
//	function on_frame(frame)
//		if frame == 10 then nes.press("Start") end
//		if frame == 11 then nes.release("Start") end
//		if frame >= 100 then nes.stop() end
//	end
package script

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

// Package debugger implements the STEP mode of the emulator. The emulation is
// advanced one instruction (or one frame) for every key press and the state
// of the machine can be inspected between steps.
//
// Initialisation of the debugger is done with the NewDebugger() function
//
//	dbg, err := debugger.NewDebugger(nes, log, os.Stdin, os.Stdout)
//
// If the input is an interactive terminal then the terminal is put into
// cbreak mode and commands are single key presses. Otherwise the input is read
// one line at a time and the first character of each line is the command. An
// empty line steps a single instruction.
//
// Once initialised, the debugger can be started with the Start() function.
// Start() returns when the quit command is given or when the input is
// exhausted.
//
// Faults from the emulation do not stop the debugger. The fault is printed
// and the machine can be inspected or reset.
package debugger

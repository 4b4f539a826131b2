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

// Package monitor streams the state of a running NES to websocket clients.
//
// A Snapshot of the machine is taken at the start of every frame and sent, as
// a JSON text message, to every connected client. Snapshots are taken from
// the CPU goroutine through hardware.NES.OnFrame() and so are consistent.
//
// Slow clients do not slow down the emulation. If a client has too many
// snapshots waiting then new snapshots for that client are dropped.
//
// Clients connect to the "/nes" path:
//
//	mon := monitor.NewMonitor(log)
//	mon.Attach(nes)
//	err := mon.Listen("localhost:8080")
//	defer mon.Close()
package monitor

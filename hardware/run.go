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
	"golang.org/x/sync/errgroup"

	"github.com/jetsetilly/gophernes/logger"
)

// While the continueCheck() function only runs at the end of a CPU
// instruction, it can still be expensive to do a full continue check every
// time.
//
// It depends on context whether it is used or not but the PerformanceBrake is
// a standard value that can be used to filter out expensive code paths within
// a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return false, nil
//		}
//	}
//	return true, nil
const PerformanceBrake = 100

// run the CPU and PPU goroutines until continueCheck() returns false or an
// error occurs. continueCheck() is called from the CPU goroutine at the end
// of every instruction.
func (nes *NES) run(continueCheck func() (bool, error)) error {
	nes.Sync.Open()

	var g errgroup.Group

	g.Go(func() error {
		nes.PPU.Run(nes.Sync)
		return nil
	})

	g.Go(func() error {
		// closing the Sync releases the PPU goroutine
		defer nes.Sync.Close()

		for {
			err := nes.CPU.Tick()
			if err != nil {
				nes.log.Log(logger.Allow, "cpu", err)
				return err
			}

			nes.Sync.Advance()

			if nes.CPU.Remaining() > 0 {
				continue
			}

			err = nes.frameBoundary()
			if err != nil {
				return err
			}

			ok, err := continueCheck()
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}
	})

	return g.Wait()
}

// Run sets the emulation running as quickly as possible. continueCheck()
// should return false when an external event indicates that the emulation
// should stop. A nil continueCheck() runs the emulation until an error
// occurs.
func (nes *NES) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}
	return nes.run(continueCheck)
}

// RunFrames runs the emulation for the number of frames. The emulation stops
// at the end of the first instruction of the new frame.
func (nes *NES) RunFrames(numFrames int) error {
	target := nes.Sync.Frame() + numFrames
	return nes.run(func() (bool, error) {
		return nes.Sync.Frame() < target, nil
	})
}

// Step the emulation forward one CPU instruction. If an interrupt is waiting
// then the interrupt is dispatched instead of an instruction being executed.
// The result is in CPU.LastResult.
func (nes *NES) Step() error {
	return nes.run(func() (bool, error) {
		return false, nil
	})
}

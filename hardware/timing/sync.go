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

package timing

import (
	"sync"
)

// Sync is the shared state between the CPU and the PPU. It is safe to use
// from more than one goroutine.
//
// The CPU goroutine calls Advance() once for every CPU cycle. The PPU
// goroutine calls AwaitBoundary() in a loop. When the cycle counter reaches
// the next boundary the CPU goroutine blocks until the PPU goroutine has
// handled it. Each boundary is handled exactly once.
//
// The same lock guards the PPU registers. Sync implements sync.Locker for that
// purpose.
type Sync struct {
	mu   sync.Mutex
	cond *sync.Cond

	// number of CPU cycles since the last reset. never goes backwards
	cycles uint64

	// the cycle count at the start of the current frame
	frameOrigin uint64
	frame       int

	// the next boundary to be handled by the PPU and whether the cycle
	// counter has reached it
	boundary Boundary
	pending  bool

	// the interrupt slot. only one interrupt can be waiting
	interrupt Interrupt

	// once closed, waiting goroutines are released and no further waiting
	// will happen until Open() is called
	closed bool
}

// NewSync is the preferred method of initialisation for the Sync type. The
// instance is closed.
func NewSync() *Sync {
	s := &Sync{
		closed: true,
	}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Lock the shared state. Implements the sync.Locker interface.
func (s *Sync) Lock() {
	s.mu.Lock()
}

// Unlock the shared state. Implements the sync.Locker interface.
func (s *Sync) Unlock() {
	s.mu.Unlock()
}

// Reset the cycle counter and frame. Any pending interrupt is forgotten.
// Should not be called while the CPU or PPU goroutines are running.
func (s *Sync) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cycles = 0
	s.frameOrigin = 0
	s.frame = 0
	s.boundary = VBlankEnter
	s.pending = false
	s.interrupt = None
}

// Open should be called before the CPU and PPU goroutines are started.
func (s *Sync) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = false
}

// Close releases any goroutine waiting in Advance() or AwaitBoundary().
func (s *Sync) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.cond.Broadcast()
}

// Advance the cycle counter by one. If the counter reaches the next boundary
// the function will not return until the boundary has been handled or the
// Sync has been closed.
func (s *Sync) Advance() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cycles++
	if s.pending || s.cycles-s.frameOrigin < s.boundary.Cycle() {
		return
	}

	s.pending = true
	s.cond.Broadcast()
	for s.pending && !s.closed {
		s.cond.Wait()
	}
}

// AwaitBoundary waits for the cycle counter to reach the next boundary and
// then calls the handler with the lock held. The interrupt returned by the
// handler is posted, in the same way as Post().
//
// Returns false if the Sync has been closed and there are no boundaries left
// to handle.
func (s *Sync) AwaitBoundary(handler func(b Boundary, frame int) Interrupt) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for !s.pending && !s.closed {
		s.cond.Wait()
	}

	if !s.pending {
		return false
	}

	s.post(handler(s.boundary, s.frame))

	switch s.boundary {
	case VBlankEnter:
		s.boundary = VBlankExit
	case VBlankExit:
		s.frameOrigin += FrameCycles
		s.frame++
		s.boundary = VBlankEnter
	}

	s.pending = false
	s.cond.Broadcast()

	return true
}

// Post an interrupt request. The request is dropped if an interrupt of the
// same or higher priority is already waiting.
func (s *Sync) Post(i Interrupt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.post(i)
}

func (s *Sync) post(i Interrupt) {
	if i > s.interrupt {
		s.interrupt = i
	}
}

// Acknowledge returns the waiting interrupt and clears the slot. The disabled
// argument is the state of the CPU's interrupt disable flag. An IRQ will not
// be returned while interrupts are disabled but it remains in the slot.
func (s *Sync) Acknowledge(disabled bool) Interrupt {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.interrupt
	if i == None || (i == IRQ && disabled) {
		return None
	}
	s.interrupt = None
	return i
}

// Pending returns the interrupt waiting in the slot without clearing it.
func (s *Sync) Pending() Interrupt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interrupt
}

// Cycles returns the number of CPU cycles since the last reset.
func (s *Sync) Cycles() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cycles
}

// Frame returns the number of completed frames since the last reset.
func (s *Sync) Frame() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame
}

// FrameCycle returns the number of CPU cycles since the start of the current
// frame.
func (s *Sync) FrameCycle() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cycles - s.frameOrigin
}

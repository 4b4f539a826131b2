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

package controller

import (
	"fmt"
	"strings"
	"sync"
)

// Button is one of the eight buttons on the standard controller. The value
// is the position of the button in the shift register.
type Button int

// List of valid Button values, in the order they are read.
const (
	A Button = iota
	B
	Select
	Start
	Up
	Down
	Left
	Right
)

var buttonNames = [...]string{"A", "B", "Select", "Start", "Up", "Down", "Left", "Right"}

func (b Button) String() string {
	if b < A || b > Right {
		return "unknown button"
	}
	return buttonNames[b]
}

// ParseButton returns the Button with the name. Case is not important.
func ParseButton(name string) (Button, error) {
	for i, n := range buttonNames {
		if strings.EqualFold(n, name) {
			return Button(i), nil
		}
	}
	return A, fmt.Errorf("controller: unrecognised button (%s)", name)
}

// Event is a change to the state of the controller.
type Event int

// List of valid Event values.
const (
	NoEvent Event = iota
	Press
	Release
)

// Pad is the standard NES controller. It implements the memory.Port
// interface. It is safe to call HandleEvent() from a goroutine other than the
// one running the emulation.
type Pad struct {
	crit sync.Mutex

	// the state of each button. bit 0 is A, bit 7 is Right
	buttons uint8

	// the buttons as they were when the strobe was last released
	shift  uint8
	count  int
	strobe bool
}

// NewPad is the preferred method of initialisation for the Pad type.
func NewPad() *Pad {
	return &Pad{}
}

func (pad *Pad) String() string {
	pad.crit.Lock()
	defer pad.crit.Unlock()

	s := strings.Builder{}
	for b := A; b <= Right; b++ {
		if pad.buttons&(1<<b) != 0 {
			if s.Len() > 0 {
				s.WriteString(" ")
			}
			s.WriteString(b.String())
		}
	}
	if s.Len() == 0 {
		return "no buttons"
	}
	return s.String()
}

// HandleEvent changes the state of the button. Returns false if the event
// did not change the state of the controller.
func (pad *Pad) HandleEvent(event Event, button Button) (bool, error) {
	if button < A || button > Right {
		return false, fmt.Errorf("controller: %v: unexpected button (%d)", event, button)
	}

	pad.crit.Lock()
	defer pad.crit.Unlock()

	prev := pad.buttons

	switch event {
	case NoEvent:
		return false, nil
	case Press:
		pad.buttons |= 1 << button
	case Release:
		pad.buttons &^= 1 << button
	default:
		return false, fmt.Errorf("controller: unexpected event (%d)", event)
	}

	return prev != pad.buttons, nil
}

// IsPressed returns true if the button is currently pressed.
func (pad *Pad) IsPressed(button Button) bool {
	pad.crit.Lock()
	defer pad.crit.Unlock()
	return pad.buttons&(1<<button) != 0
}

// Strobe implements the memory.Port interface.
func (pad *Pad) Strobe(on bool) {
	pad.crit.Lock()
	defer pad.crit.Unlock()
	pad.strobe = on
	pad.shift = pad.buttons
	pad.count = 0
}

// Read implements the memory.Port interface. After the eight buttons have
// been read, a value of 1 is returned.
func (pad *Pad) Read() uint8 {
	pad.crit.Lock()
	defer pad.crit.Unlock()

	// the A button is returned continuously while the strobe is on
	if pad.strobe {
		return pad.buttons & 0x01
	}

	if pad.count >= 8 {
		return 1
	}

	v := (pad.shift >> pad.count) & 0x01
	pad.count++
	return v
}

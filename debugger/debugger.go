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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/jetsetilly/gophernes/debugger/easyterm"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/logger"
)

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	nes *hardware.NES
	log *logger.Logger

	output io.Writer

	// term is nil if the input is not an interactive terminal. in which case
	// lines is used to read commands
	term  *easyterm.Terminal
	lines *bufio.Reader

	// colour output is only used if output is a terminal
	colour bool

	// set to false by the quit command
	running bool
}

// NewDebugger creates and initialises everything required for a new debugging
// session. The logger can be nil.
func NewDebugger(nes *hardware.NES, log *logger.Logger, input io.Reader, output io.Writer) (*Debugger, error) {
	dbg := &Debugger{
		nes:    nes,
		log:    log,
		output: output,
	}

	if in, ok := input.(*os.File); ok && term.IsTerminal(int(in.Fd())) {
		out, ok := output.(*os.File)
		if !ok {
			out = os.Stdout
		}

		dbg.term = &easyterm.Terminal{}
		err := dbg.term.Initialise(in, out)
		if err != nil {
			return nil, fmt.Errorf("debugger: %w", err)
		}

		dbg.colour = term.IsTerminal(int(out.Fd()))
	} else {
		dbg.lines = bufio.NewReader(input)
	}

	return dbg, nil
}

// Start the debugger. Returns when the quit command is given or the input has
// been exhausted.
func (dbg *Debugger) Start() error {
	if dbg.term != nil {
		err := dbg.term.CBreakMode()
		if err != nil {
			return fmt.Errorf("debugger: %w", err)
		}
		defer dbg.term.CleanUp()
	}

	dbg.printLine(styleFeedback, "STEP mode. press h for help")
	dbg.printLine(styleMachineInfo, dbg.nes.CPU.String())

	dbg.running = true
	for dbg.running {
		key, err := dbg.readCommand()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("debugger: %w", err)
		}

		err = dbg.execute(key)
		if err != nil {
			return fmt.Errorf("debugger: %w", err)
		}
	}

	return nil
}

// readCommand returns the next command key. an empty line in line mode is
// the same as the step command.
func (dbg *Debugger) readCommand() (byte, error) {
	if dbg.term != nil {
		key, err := dbg.term.ReadKey()
		if err != nil {
			return 0, err
		}

		switch key {
		case easyterm.KeyInterrupt:
			return 'q', nil
		case easyterm.KeySuspend:
			return 0, easyterm.SuspendProcess()
		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			return 's', nil
		}

		return key, nil
	}

	s, err := dbg.lines.ReadString('\n')
	if err != nil && (s == "" || !errors.Is(err, io.EOF)) {
		return 0, err
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return 's', nil
	}
	return s[0], nil
}

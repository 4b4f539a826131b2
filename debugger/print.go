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
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gophernes/debugger/easyterm/ansi"
)

type style int

const (
	styleInstruction style = iota
	styleMachineInfo
	styleFeedback
	styleError
	styleHelp
)

func (sty style) pen() string {
	switch sty {
	case styleInstruction:
		return ansi.Pens["yellow"]
	case styleMachineInfo:
		return ansi.DimPens["cyan"]
	case styleError:
		return ansi.Pens["red"]
	case styleHelp:
		return ansi.DimPens["white"]
	}
	return ""
}

func (dbg *Debugger) printLine(sty style, s string, a ...any) {
	s = strings.TrimRight(fmt.Sprintf(s, a...), "\n")
	if len(s) == 0 {
		return
	}

	if dbg.colour && sty.pen() != "" {
		s = fmt.Sprintf("%s%s%s", sty.pen(), s, ansi.NormalPen)
	}

	// cbreak mode does not translate newlines
	if dbg.term != nil {
		s = strings.ReplaceAll(s, "\n", "\r\n")
		s = fmt.Sprintf("%s\r\n", s)
	} else {
		s = fmt.Sprintf("%s\n", s)
	}

	_, _ = io.WriteString(dbg.output, s)
}

// styleWriter implements the io.Writer interface. it is useful for when an
// io.Writer is required and you want to direct the output to the terminal.
type styleWriter struct {
	dbg   *Debugger
	style style
}

func (dbg *Debugger) writerInStyle(sty style) *styleWriter {
	return &styleWriter{
		dbg:   dbg,
		style: sty,
	}
}

func (wrt styleWriter) Write(p []byte) (n int, err error) {
	wrt.dbg.printLine(wrt.style, "%s", string(p))
	return len(p), nil
}

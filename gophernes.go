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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync/atomic"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/debugger"
	"github.com/jetsetilly/gophernes/disassembly"
	"github.com/jetsetilly/gophernes/faultdump"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/modalflag"
	"github.com/jetsetilly/gophernes/monitor"
	"github.com/jetsetilly/gophernes/script"
	"github.com/jetsetilly/gophernes/statsview"
)

// exit codes returned by launch()
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

// the number of entries kept by the central logger
const logSize = 1000

func main() {
	os.Exit(launch(os.Args[1:], os.Stdin, os.Stdout))
}

func launch(args []string, input io.Reader, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "STEP", "DISASM")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* %s\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "STEP":
		err = step(md, input)
	case "DISASM":
		err = disasm(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitModeError
	}

	return exitOK
}

// loadCartridge fetches and parses the named cartridge file and attaches it
// to the NES.
func loadCartridge(nes *hardware.NES, filename string) error {
	cl := cartridgeloader.NewLoader(filename)
	err := cl.Load()
	if err != nil {
		return err
	}

	data, err := cl.Cartridge()
	if err != nil {
		return err
	}

	return nes.AttachCartridge(cl.Filename, data)
}

// newLogger creates the central logger, optionally echoing new entries to
// the output.
func newLogger(output io.Writer, echo bool) *logger.Logger {
	log := logger.NewLogger(logSize)
	if echo {
		log.SetEcho(logger.NewColorizer(output), false)
	}
	return log
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	frames := md.AddInt("frames", 0, "number of frames to run (0 to run until interrupted)")
	echo := md.AddBool("log", false, "echo log entries to the terminal")
	monitorAddr := md.AddString("monitor", "", "serve machine state over websocket at address")
	scriptFile := md.AddString("script", "", "lua script to attach to the emulation")
	stats := md.AddBool("statsview", false, "launch runtime statistics viewer")
	faultFile := md.AddString("fault", "", "write graph of machine state to file on CPU fault")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("NES cartridge required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	log := newLogger(md.Output, *echo)
	nes := hardware.NewNES(log)

	err = loadCartridge(nes, md.GetArg(0))
	if err != nil {
		return err
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		statsview.Launch(md.Output)
	}

	if *monitorAddr != "" {
		mon := monitor.NewMonitor(log)
		mon.Attach(nes)
		err = mon.Listen(*monitorAddr)
		if err != nil {
			return err
		}
		defer mon.Close()
		fmt.Fprintf(md.Output, "monitor listening at ws://%s%s\n", mon.Addr(), monitor.Path)
	}

	if *scriptFile != "" {
		scr, err := script.Load(nes, log, *scriptFile)
		if err != nil {
			return err
		}
		defer scr.Close()
	}

	// ctrl-c stops the emulation at the next check
	var interrupted atomic.Bool
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)
	go func() {
		if _, ok := <-intChan; ok {
			interrupted.Store(true)
		}
	}()

	target := nes.Sync.Frame() + *frames
	brake := 0

	err = nes.Run(func() (bool, error) {
		brake++
		if brake < hardware.PerformanceBrake {
			return true, nil
		}
		brake = 0

		if interrupted.Load() {
			return false, nil
		}
		return *frames <= 0 || nes.Sync.Frame() < target, nil
	})

	if err != nil {
		if errors.Is(err, script.Stopped) {
			err = nil
		} else if *faultFile != "" {
			if ferr := faultdump.WriteFile(*faultFile, err, nes); ferr == nil {
				fmt.Fprintf(md.Output, "fault written to %s\n", *faultFile)
			}
		}
	}

	fmt.Fprintf(md.Output, "%d frames, %d cycles\n", nes.Sync.Frame(), nes.Sync.Cycles())

	return err
}

func step(md *modalflag.Modes, input io.Reader) error {
	md.NewMode()

	echo := md.AddBool("log", false, "echo log entries to the terminal")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("NES cartridge required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	log := newLogger(md.Output, *echo)
	nes := hardware.NewNES(log)

	err = loadCartridge(nes, md.GetArg(0))
	if err != nil {
		return err
	}

	dbg, err := debugger.NewDebugger(nes, log, input, md.Output)
	if err != nil {
		return err
	}

	return dbg.Start()
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	cycles := md.AddBool("cycles", false, "include cycle counts in disassembly")
	bank := md.AddInt("bank", -1, "show disassembly for a specific bank")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("NES cartridge required for %s mode", md)
	case 1:
		attr := disassembly.WriteAttr{
			ByteCode: *bytecode,
			Cycles:   *cycles,
		}

		cl := cartridgeloader.NewLoader(md.GetArg(0))
		err = cl.Load()
		if err != nil {
			return err
		}

		data, err := cl.Cartridge()
		if err != nil {
			return err
		}

		dsm, err := disassembly.FromCartridge(data)
		if err != nil {
			// print what disassembly output we do have
			if dsm != nil {
				// ignore any further errors
				_ = dsm.Write(md.Output, attr)
			}
			return err
		}

		// output entire disassembly or just a specific bank
		if *bank < 0 {
			err = dsm.Write(md.Output, attr)
		} else {
			err = dsm.WriteBank(md.Output, attr, *bank)
		}

		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

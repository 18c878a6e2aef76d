// This file is part of GopherSNES.
//
// GopherSNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherSNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherSNES.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jetsetilly/gophersnes/cartridgeloader"
	"github.com/jetsetilly/gophersnes/curated"
	"github.com/jetsetilly/gophersnes/hardware/memory/cartridge"
	"github.com/jetsetilly/gophersnes/logger"
	"github.com/jetsetilly/gophersnes/modalflag"
	"github.com/jetsetilly/gophersnes/report"
	"github.com/jetsetilly/gophersnes/statsview"
	"github.com/jetsetilly/gophersnes/version"
)

// exit values
const (
	exitSuccess    = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("INFO", "SCAN", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitSuccess

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "INFO":
		err = info(md, output)

	case "SCAN":
		err = scan(md, output)

	case "VERSION":
		fmt.Fprintln(output, version.Summary())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return exitSuccess
}

var colorChoices = []string{"auto", "on", "off"}

// decide whether output should be styled. auto styles the output only if it
// is a terminal
func styled(output io.Writer, color string) bool {
	switch color {
	case "on":
		return true
	case "off":
		return false
	}
	if f, ok := output.(*os.File); ok {
		return report.IsTerminal(f)
	}
	return false
}

func setLogEcho(output io.Writer, echo bool) {
	if echo {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}
}

func info(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stdout")
	color := md.AddChoice("color", "auto", colorChoices, "styled output")
	memviz := md.AddString("memviz", "", "write graphviz description of cartridge to file")
	hash := md.AddString("hash", "", "expected SHA-1 hash of cartridge")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(output, *log)

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf("cartridge file required for %s mode", md)
	case 1:
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	if *stats {
		if !statsview.Available() {
			return curated.Errorf("stats server not available in this build")
		}
		statsview.Launch(output)
	}

	cl := cartridgeloader.NewLoader(md.GetArg(0), *hash)
	cart, err := cartridge.NewCartridge(&cl)
	if err != nil {
		return err
	}

	report.Summary(output, cart, styled(output, *color))

	if *memviz != "" {
		f, err := os.Create(*memviz)
		if err != nil {
			return curated.Errorf("memviz: %v", err)
		}
		report.Memviz(f, cart)
		if err := f.Close(); err != nil {
			return curated.Errorf("memviz: %v", err)
		}
	}

	// keep the stats server running until interrupted
	if *stats {
		fmt.Fprintln(output, "press ctrl-c to quit")
		intChan := make(chan os.Signal, 1)
		signal.Notify(intChan, os.Interrupt)
		<-intChan
	}

	return nil
}

func scan(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo debugging log to stdout")
	color := md.AddChoice("color", "auto", colorChoices, "styled output")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(output, *log)

	files := md.RemainingArgs()
	if len(files) == 0 {
		return curated.Errorf("at least one cartridge file required for %s mode", md)
	}

	st := styled(output, *color)

	var failed int
	for _, fn := range files {
		cl := cartridgeloader.NewLoader(fn, "")
		cart, err := cartridge.NewCartridge(&cl)
		if err != nil {
			failed++
		}
		report.Line(output, fn, cart, err, st)
	}

	if failed > 0 {
		return curated.Errorf("%d of %d files could not be read", failed, len(files))
	}

	return nil
}

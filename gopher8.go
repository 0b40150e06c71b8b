// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jetsetilly/gopher8/debugger"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/colorterm"
	"github.com/jetsetilly/gopher8/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/quirks"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/playmode"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/statsview"
	"github.com/jetsetilly/gopher8/version"
)

const defaultScale = 10

// #mainthread
//
// SDL window creation and event servicing must happen on the main thread.
// both the playmode and debugger loops run here directly.
func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "PLAY", "DEBUG", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		fallthrough

	case "PLAY":
		err = play(md)

	case "DEBUG":
		err = debug(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		showVersion()
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(20)
	}
}

// addQuirkFlags adds one boolean flag per quirk so that individual quirks
// can be toggled after the platform preset is chosen. Only flags the user
// actually gives on the command line override the preset.
func addQuirkFlags(md *modalflag.Modes) map[string]*bool {
	return map[string]*bool{
		"resetflag": md.AddBool("resetflag", false, "logical instructions reset VF to zero"),
		"loadstore": md.AddBool("loadstore", false, "FX55/FX65 leave the index register unchanged"),
		"shift":     md.AddBool("shift", false, "shift instructions operate on VX in place"),
		"jump":      md.AddBool("jump", false, "BNNN jumps with VX rather than V0"),
		"clipping":  md.AddBool("clipping", false, "sprites clip at the display edge rather than wrap"),
	}
}

func applyQuirkFlags(md *modalflag.Modes, q *quirks.Quirks, overrides map[string]*bool) error {
	for _, n := range quirks.Names {
		if md.FlagWasSet(n) {
			if err := q.Set(n, *overrides[n]); err != nil {
				return err
			}
		}
	}
	return nil
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	platform := md.AddString("platform", quirks.PlatformList[0], fmt.Sprintf("quirks preset: %s", quirks.PlatformList))
	quirkFlags := addQuirkFlags(md)
	cycles := md.AddInt("cycles", hardware.DefaultCyclesPerSecond, "CPU cycles per second")
	scale := md.AddInt("scale", defaultScale, "window scale")
	wav := md.AddString("wav", "", "record audio to wav file")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	q, err := quirks.NewQuirks(*platform)
	if err != nil {
		return err
	}
	if err := applyQuirkFlags(md, &q, quirkFlags); err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required for %s mode", md)
	case 1:
		return playmode.Play(q, *cycles, *scale, *wav, romloader.NewLoader(md.GetArg(0)))
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	platform := md.AddString("platform", quirks.PlatformList[0], fmt.Sprintf("quirks preset: %s", quirks.PlatformList))
	quirkFlags := addQuirkFlags(md)
	cycles := md.AddInt("cycles", hardware.DefaultCyclesPerSecond, "CPU cycles per second")
	scale := md.AddInt("scale", defaultScale, "window scale")
	freezeTimers := md.AddBool("freezetimers", false, "timers advance only in step with the CPU")
	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%t)", statsview.Available()))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	q, err := quirks.NewQuirks(*platform)
	if err != nil {
		return err
	}
	if err := applyQuirkFlags(md, &q, quirkFlags); err != nil {
		return err
	}

	var term terminal.Terminal
	switch strings.ToUpper(*termType) {
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		term = &plainterm.PlainTerminal{}
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required for %s mode", md)
	case 1:
		dbg, err := debugger.NewDebugger(q, *cycles, *scale, *freezeTimers, term, romloader.NewLoader(md.GetArg(0)))
		if err != nil {
			return err
		}
		return dbg.Start()
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	platform := md.AddString("platform", quirks.PlatformList[0], fmt.Sprintf("quirks preset: %s", quirks.PlatformList))
	quirkFlags := addQuirkFlags(md)
	duration := md.AddString("duration", "5s", "run duration")
	profileCPU := md.AddBool("profile", false, "perform CPU profiling")
	profileMem := md.AddBool("memprofile", false, "perform memory profiling")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	q, err := quirks.NewQuirks(*platform)
	if err != nil {
		return err
	}
	if err := applyQuirkFlags(md, &q, quirkFlags); err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required for %s mode", md)
	case 1:
		return performance.Check(os.Stdout, *profileCPU, *profileMem, romloader.NewLoader(md.GetArg(0)), q, *duration)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func showVersion() {
	ver, rev, _ := version.Version()
	fmt.Printf("%s (%s)\n", ver, rev)
}

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

package debugger

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/sdlplay"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/quirks"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/romloader"
)

// Debugger is the basic debugging tool. The machine is stepped one cycle at
// a time from a terminal prompt, with the display window updated after every
// step.
type Debugger struct {
	ch8  *hardware.Chip8
	scr  *sdlplay.SdlPlay
	term terminal.Terminal

	cyclesPerSecond int

	// whether the timers decrement in real time while the machine is halted
	// at the prompt or only in step with the CPU
	freezeTimers bool

	// catch-up bookkeeping for the two freezeTimers strategies
	lastTick time.Time
	tickAcc  int

	// the last command entered. an empty input repeats it
	lastCommand string

	// interrupt signals end a free-running RUN and return to the prompt
	intChan chan os.Signal

	// user has asked to end the session
	quit bool
}

// NewDebugger creates everything required for a debugging session.
func NewDebugger(q quirks.Quirks, cyclesPerSecond int, scale int, freezeTimers bool, term terminal.Terminal, ld romloader.Loader) (*Debugger, error) {
	dbg := &Debugger{
		term:            term,
		cyclesPerSecond: cyclesPerSecond,
		freezeTimers:    freezeTimers,
		intChan:         make(chan os.Signal, 1),
	}

	dbg.ch8 = hardware.NewChip8(q)

	var err error

	dbg.scr, err = sdlplay.NewSdlPlay(dbg.ch8.Keypad, scale)
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}

	dbg.ch8.Video.AddRenderer(dbg.scr)

	err = dbg.ch8.AttachROM(ld)
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}

	signal.Notify(dbg.intChan, os.Interrupt)

	return dbg, nil
}

// Start the main debugging loop. Returns when the user quits the session.
func (dbg *Debugger) Start() error {
	err := dbg.term.Initialise()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()
	defer dbg.scr.Destroy()

	dbg.lastTick = time.Now()

	for !dbg.quit {
		// keep the window responsive and the timers honest while we sit at
		// the prompt
		dbg.serviceTimers(0)
		if err := dbg.service(); err != nil {
			if curated.Is(err, gui.Quit) {
				break
			}
			return curated.Errorf("debugger: %v", err)
		}

		input, err := dbg.term.TermRead(dbg.prompt())
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) || err == io.EOF {
				break
			}
			return curated.Errorf("debugger: %v", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			input = dbg.lastCommand
		} else {
			dbg.lastCommand = input
		}

		if input == "" {
			continue
		}

		err = dbg.parseCommand(input)
		if err != nil {
			dbg.term.TermPrintLine(terminal.StyleError, "%v", err)
		}
	}

	return nil
}

// prompt shows the instruction about to be executed.
func (dbg *Debugger) prompt() string {
	pc := dbg.ch8.CPU.PC.Address()

	opcode, err := dbg.ch8.Mem.ReadInstruction(pc)
	if err != nil {
		return fmt.Sprintf("[%#04x ???? ] >> ", pc)
	}

	ins, err := cpu.Decode(opcode)
	if err != nil {
		return fmt.Sprintf("[%#04x %#04x ] >> ", pc, opcode)
	}

	return fmt.Sprintf("[%#04x %s ] >> ", pc, ins)
}

// step the machine one CPU cycle, echoing the executed instruction.
func (dbg *Debugger) step() error {
	err := dbg.ch8.Step()
	dbg.serviceTimers(1)

	if serr := dbg.service(); serr != nil && !curated.Is(serr, gui.Quit) {
		return serr
	}

	if err != nil {
		return err
	}

	dbg.term.TermPrintLine(terminal.StyleCPUStep, "%s", dbg.ch8.CPU.LastResult)

	return nil
}

// run the machine freely until the user interrupts or the window is closed.
func (dbg *Debugger) run() error {
	dbg.term.TermPrintLine(terminal.StyleFeedback, "running (ctrl-c to halt)")

	// drain any interrupt that arrived while we were at the prompt
	select {
	case <-dbg.intChan:
	default:
	}

	err := dbg.ch8.Run(dbg.cyclesPerSecond, func() (govern.State, error) {
		select {
		case <-dbg.intChan:
			return govern.Ending, nil
		default:
		}

		if err := dbg.service(); err != nil {
			if curated.Is(err, gui.Quit) {
				dbg.quit = true
				return govern.Ending, nil
			}
			return govern.Ending, err
		}

		return govern.Running, nil
	})

	// the free-running loop has been servicing the timers. restart the
	// catch-up clock from now
	dbg.lastTick = time.Now()

	return err
}

// service the GUI. renders any outstanding frame and sounds the buzzer.
func (dbg *Debugger) service() error {
	if err := dbg.scr.Service(); err != nil {
		return err
	}
	if err := dbg.ch8.Video.Render(); err != nil {
		return err
	}
	dbg.scr.SetBuzzer(dbg.ch8.Timers.SoundActive())
	return nil
}

// serviceTimers decrements the delay and sound timers as appropriate for the
// freezeTimers setting. the cycles argument is the number of CPU cycles that
// have just been executed, zero if the machine is sitting at the prompt.
func (dbg *Debugger) serviceTimers(cycles int) {
	if dbg.freezeTimers {
		// frozen timers advance only in step with the CPU, at the correct
		// ratio of ticks to cycles
		for i := 0; i < cycles; i++ {
			dbg.tickAcc += timers.TickHz
			for dbg.tickAcc >= dbg.cyclesPerSecond {
				dbg.tickAcc -= dbg.cyclesPerSecond
				dbg.ch8.Timers.Tick()
			}
		}
		return
	}

	// otherwise the timers track real time, catching up with however long
	// we have been sitting at the prompt. both timers saturate at zero
	// within 256 ticks so there is no need to loop further than that
	const period = time.Second / timers.TickHz
	n := 0
	for time.Since(dbg.lastTick) >= period && n < 256 {
		dbg.ch8.Timers.Tick()
		dbg.lastTick = dbg.lastTick.Add(period)
		n++
	}
	if n == 256 {
		dbg.lastTick = time.Now()
	}
}

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
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal"
)

// list of debugger commands.
const (
	cmdHelp      = "HELP"
	cmdStep      = "STEP"
	cmdRun       = "RUN"
	cmdRegisters = "REGISTERS"
	cmdMemory    = "MEMORY"
	cmdDisasm    = "DISASM"
	cmdDisplay   = "DISPLAY"
	cmdTimers    = "TIMERS"
	cmdQuirks    = "QUIRKS"
	cmdReset     = "RESET"
	cmdQuit      = "QUIT"
)

func (dbg *Debugger) parseCommand(input string) error {
	tokens := strings.Fields(input)
	command := strings.ToUpper(tokens[0])
	args := tokens[1:]

	switch command {
	case cmdHelp:
		dbg.printHelp()

	case cmdStep, "S":
		return dbg.step()

	case cmdRun, "R":
		return dbg.run()

	case cmdRegisters, "REGS":
		dbg.printRegisters()

	case cmdMemory, "MEM":
		address := dbg.ch8.CPU.I.Address()
		if len(args) > 0 {
			a, err := parseAddress(args[0])
			if err != nil {
				return err
			}
			address = a
		}
		dbg.printMemory(address)

	case cmdDisasm:
		address := dbg.ch8.CPU.PC.Address()
		if len(args) > 0 {
			a, err := parseAddress(args[0])
			if err != nil {
				return err
			}
			address = a
		}
		dbg.printDisasm(address)

	case cmdDisplay:
		dbg.printDisplay()

	case cmdTimers:
		dbg.term.TermPrintLine(terminal.StyleMachineInfo, "%s", dbg.ch8.Timers)

	case cmdQuirks:
		dbg.term.TermPrintLine(terminal.StyleMachineInfo, "%s", dbg.ch8.CPU.Quirks())

	case cmdReset:
		dbg.ch8.Reset()
		dbg.term.TermPrintLine(terminal.StyleFeedback, "machine reset")

	case cmdQuit, "Q":
		dbg.quit = true

	default:
		return curated.Errorf("debugger: unrecognised command (%s)", command)
	}

	return nil
}

func parseAddress(s string) (uint16, error) {
	// allow both plain hexadecimal and the 0x prefix
	s = strings.ToLower(s)
	if !strings.HasPrefix(s, "0x") {
		s = "0x" + s
	}

	a, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, curated.Errorf("debugger: cannot parse address (%s)", s)
	}

	return uint16(a), nil
}

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
	"github.com/jetsetilly/gopher8/debugger/terminal"
)

var helpText = []string{
	"STEP       execute one CPU cycle (or press return on an empty line)",
	"RUN        run freely until ctrl-c or the window is closed",
	"REGISTERS  show CPU registers, stack and timers",
	"MEMORY     dump memory from the given address (default: index register)",
	"DISASM     disassemble from the given address (default: program counter)",
	"DISPLAY    show the framebuffer in the terminal",
	"TIMERS     show the delay and sound timers",
	"QUIRKS     show the quirk settings for the session",
	"RESET      reset the machine",
	"QUIT       end the session",
}

func (dbg *Debugger) printHelp() {
	for _, s := range helpText {
		dbg.term.TermPrintLine(terminal.StyleHelp, s)
	}
}

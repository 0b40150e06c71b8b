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

package colorterm

import (
	"fmt"

	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/colorterm/easyterm/ansi"
)

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(sty terminal.Style, s string, a ...interface{}) {
	if sty != terminal.StyleInput {
		ct.TermPrint("\r")
	}

	switch sty {
	case terminal.StyleCPUStep:
		ct.TermPrint(ansi.Pens["yellow"])
	case terminal.StyleMachineInfo:
		ct.TermPrint(ansi.Pens["cyan"])
	case terminal.StyleFeedback:
		ct.TermPrint(ansi.DimPens["white"])
	case terminal.StyleHelp:
		ct.TermPrint(ansi.DimPens["white"])
		ct.TermPrint("  ")
	case terminal.StyleError:
		ct.TermPrint(ansi.Pens["red"])
		ct.TermPrint("* ")
	}

	if len(a) > 0 {
		ct.TermPrint(fmt.Sprintf(s, a...))
	} else {
		ct.TermPrint(s)
	}
	ct.TermPrint(ansi.NormalPen)

	if sty != terminal.StyleInput {
		ct.TermPrint("\n")
	}
}

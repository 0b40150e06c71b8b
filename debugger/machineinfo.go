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
	"strings"

	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/video"
)

// number of bytes shown by the MEMORY command and their grouping.
const (
	memoryDumpLength = 64
	memoryDumpRow    = 16
)

// number of instructions shown by the DISASM command.
const disasmLength = 8

func (dbg *Debugger) printRegisters() {
	dbg.term.TermPrintLine(terminal.StyleMachineInfo, "%s", strings.TrimSuffix(dbg.ch8.CPU.String(), "\n"))
	dbg.term.TermPrintLine(terminal.StyleMachineInfo, "%s", dbg.ch8.Timers)
}

func (dbg *Debugger) printMemory(address uint16) {
	data := dbg.ch8.Mem.Peek(address, memoryDumpLength)

	s := strings.Builder{}
	for i, d := range data {
		if i%memoryDumpRow == 0 {
			if i > 0 {
				dbg.term.TermPrintLine(terminal.StyleMachineInfo, "%s", s.String())
				s.Reset()
			}
			s.WriteString(fmt.Sprintf("%#04x: ", address+uint16(i)))
		}
		s.WriteString(fmt.Sprintf(" %02x", d))
	}
	if s.Len() > 0 {
		dbg.term.TermPrintLine(terminal.StyleMachineInfo, "%s", s.String())
	}
}

func (dbg *Debugger) printDisasm(address uint16) {
	for i := 0; i < disasmLength; i++ {
		opcode, err := dbg.ch8.Mem.ReadInstruction(address)
		if err != nil {
			return
		}

		ins, err := cpu.Decode(opcode)
		if err != nil {
			dbg.term.TermPrintLine(terminal.StyleMachineInfo, "%#04x: %#04x ????", address, opcode)
		} else {
			dbg.term.TermPrintLine(terminal.StyleMachineInfo, "%#04x: %#04x %s", address, opcode, ins)
		}

		address += 2
	}
}

func (dbg *Debugger) printDisplay() {
	for y := 0; y < video.Height; y++ {
		s := strings.Builder{}
		for x := 0; x < video.Width; x++ {
			if dbg.ch8.Video.Pixel(x, y) {
				s.WriteRune('#')
			} else {
				s.WriteRune('.')
			}
		}
		dbg.term.TermPrintLine(terminal.StyleMachineInfo, "%s", s.String())
	}
}

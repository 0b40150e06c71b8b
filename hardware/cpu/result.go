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

package cpu

import "fmt"

// Result records the outcome of the most recent call to Cycle(). Used by the
// debugger to display the instruction just executed.
type Result struct {
	// address the instruction was fetched from
	Address uint16

	// the raw 16 bits of the instruction
	Opcode uint16

	// the decoded instruction. only valid if Decoded is true; decoding may
	// have failed with an InvalidOpcode error
	Instruction Instruction
	Decoded     bool
}

func (res Result) String() string {
	if !res.Decoded {
		return fmt.Sprintf("%#04x: %#04x ???", res.Address, res.Opcode)
	}
	return fmt.Sprintf("%#04x: %#04x %s", res.Address, res.Opcode, res.Instruction.String())
}

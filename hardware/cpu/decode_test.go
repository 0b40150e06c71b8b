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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/test"
)

func TestDecodeOperands(t *testing.T) {
	ins, err := cpu.Decode(0xd12f)
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(ins.Operator), int(cpu.Draw))
	test.Equate(t, ins.X, 0x1)
	test.Equate(t, ins.Y, 0x2)
	test.Equate(t, ins.N, 0xf)

	ins, err = cpu.Decode(0x1abc)
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(ins.Operator), int(cpu.Jump))
	test.Equate(t, ins.NNN, 0x0abc)

	ins, err = cpu.Decode(0x63ff)
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(ins.Operator), int(cpu.LoadValue))
	test.Equate(t, ins.X, 0x3)
	test.Equate(t, ins.NN, 0xff)
}

func TestDecodeAmbiguousFamilies(t *testing.T) {
	// the 0x0, 0x5, 0x8, 0x9, 0xe and 0xf families need the trailing
	// nibble or byte to decode. unmatched patterns are invalid opcodes
	for _, opcode := range []uint16{0x0000, 0x00e1, 0x5001, 0x8008, 0x800f, 0x9005, 0xe000, 0xe09f, 0xf000, 0xf056} {
		_, err := cpu.Decode(opcode)
		test.ExpectedFailure(t, err)
		test.Equate(t, curated.Is(err, cpu.InvalidOpcode), true)
	}

	ins, err := cpu.Decode(0x00ee)
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(ins.Operator), int(cpu.Ret))

	ins, err = cpu.Decode(0x800e)
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(ins.Operator), int(cpu.ShiftLeft))

	ins, err = cpu.Decode(0xf065)
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(ins.Operator), int(cpu.LoadRegisters))
}

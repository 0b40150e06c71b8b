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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8/test"
)

func TestRegister(t *testing.T) {
	r := registers.NewRegister(0, "V0")
	test.Equate(t, r.Value(), 0)
	test.Equate(t, r.Label(), "V0")

	// loading & addition
	r.Load(127)
	test.Equate(t, r.Value(), 127)
	carry := r.Add(2)
	test.Equate(t, carry, false)
	test.Equate(t, r.Value(), 129)

	// addition boundary. 0xff + 0x01 wraps to 0x00 with carry
	r.Load(0xff)
	carry = r.Add(0x01)
	test.Equate(t, carry, true)
	test.Equate(t, r.Value(), 0x00)

	// subtraction
	r.Load(11)
	borrow := r.Subtract(1)
	test.Equate(t, borrow, false)
	test.Equate(t, r.Value(), 10)

	// subtraction boundary
	r.Load(0x01)
	borrow = r.Subtract(0x06)
	test.Equate(t, borrow, true)
	test.Equate(t, r.Value(), 0xfb)

	// logical operators
	r.Load(0x21)
	r.AND(0x01)
	test.Equate(t, r.Value(), 0x01)
	r.EOR(0xff)
	test.Equate(t, r.Value(), 0xfe)
	r.ORA(0x01)
	test.Equate(t, r.Value(), 0xff)

	// shifts return the shifted-out bit
	r.Load(0x81)
	shifted := r.LSR()
	test.Equate(t, shifted, true)
	test.Equate(t, r.Value(), 0x40)
	shifted = r.LSR()
	test.Equate(t, shifted, false)
	test.Equate(t, r.Value(), 0x20)

	r.Load(0x81)
	shifted = r.ASL()
	test.Equate(t, shifted, true)
	test.Equate(t, r.Value(), 0x02)
	shifted = r.ASL()
	test.Equate(t, shifted, false)
	test.Equate(t, r.Value(), 0x04)
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0x200)
	test.Equate(t, pc.Address(), 0x200)

	pc.Add(2)
	test.Equate(t, pc.Address(), 0x202)

	pc.Load(0x123)
	test.Equate(t, pc.Address(), 0x123)
	test.Equate(t, pc.String(), "0x0123")
}

func TestIndex(t *testing.T) {
	idx := registers.NewIndex(0)
	idx.Load(0x300)
	test.Equate(t, idx.Address(), 0x300)
	idx.Add(5)
	test.Equate(t, idx.Address(), 0x305)
}

func TestStack(t *testing.T) {
	stk := registers.NewStack()
	test.Equate(t, stk.Pointer(), 0)

	// popping an empty stack is an underflow
	_, err := stk.Pop()
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, registers.StackUnderflow), true)

	test.ExpectedSuccess(t, stk.Push(0x200))
	test.ExpectedSuccess(t, stk.Push(0x300))
	test.Equate(t, stk.Pointer(), 2)

	address, err := stk.Pop()
	test.ExpectedSuccess(t, err)
	test.Equate(t, address, 0x300)

	address, err = stk.Pop()
	test.ExpectedSuccess(t, err)
	test.Equate(t, address, 0x200)

	// filling the stack is fine. one more push is an overflow
	for i := 0; i < registers.MaxStackDepth; i++ {
		test.ExpectedSuccess(t, stk.Push(uint16(0x200+i)))
	}
	err = stk.Push(0xfff)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, registers.StackOverflow), true)
}

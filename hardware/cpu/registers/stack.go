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

package registers

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Sentinel errors returned by the Stack type.
const (
	StackOverflow  = "stack: overflow on call (max depth %d)"
	StackUnderflow = "stack: underflow on return"
)

// MaxStackDepth is the number of return addresses the stack can hold.
const MaxStackDepth = 16

// Stack is the call stack. It holds the return addresses pushed by the call
// instruction and popped by the return instruction.
type Stack struct {
	addresses [MaxStackDepth]uint16
	sp        int
}

// NewStack initialises a new, empty Stack.
func NewStack() Stack {
	return Stack{}
}

func (stk Stack) String() string {
	if stk.sp == 0 {
		return "SP=0 (empty)"
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("SP=%d [", stk.sp))
	for i := 0; i < stk.sp; i++ {
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("%#04x", stk.addresses[i]))
	}
	s.WriteString("]")
	return s.String()
}

// Label returns an identifying string for the stack pointer.
func (stk Stack) Label() string {
	return "SP"
}

// Pointer returns the current stack pointer.
func (stk Stack) Pointer() int {
	return stk.sp
}

// Contents returns a copy of the in-use portion of the stack, bottom first.
func (stk Stack) Contents() []uint16 {
	c := make([]uint16, stk.sp)
	copy(c, stk.addresses[:stk.sp])
	return c
}

// Push a return address onto the stack.
func (stk *Stack) Push(address uint16) error {
	if stk.sp >= MaxStackDepth {
		return curated.Errorf(StackOverflow, MaxStackDepth)
	}
	stk.addresses[stk.sp] = address
	stk.sp++
	return nil
}

// Pop the most recent return address from the stack.
func (stk *Stack) Pop() (uint16, error) {
	if stk.sp == 0 {
		return 0, curated.Errorf(StackUnderflow)
	}
	stk.sp--
	return stk.addresses[stk.sp], nil
}

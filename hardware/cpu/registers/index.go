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

import "fmt"

// Index is the 16-bit index register, I. Used by the draw instruction and
// the register store/load instructions as a memory pointer.
type Index struct {
	value uint16
}

// NewIndex initialises a new Index register with the given value.
func NewIndex(val uint16) Index {
	return Index{value: val}
}

// Label returns an identifying string for the index register.
func (idx Index) Label() string {
	return "I"
}

func (idx Index) String() string {
	return fmt.Sprintf("%#04x", idx.value)
}

// Address returns the current value of the index register as a value of type
// uint16.
func (idx Index) Address() uint16 {
	return idx.value
}

// Load a value into the index register.
func (idx *Index) Load(val uint16) {
	idx.value = val
}

// Add a value to the index register.
func (idx *Index) Add(val uint16) {
	idx.value += val
}

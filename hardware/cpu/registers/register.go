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

// Register is an 8-bit work register. The CHIP-8 has sixteen of these, V0 to
// VF. VF doubles as the flag register for carry, borrow, shifted-out bits
// and sprite collision.
type Register struct {
	label string
	value uint8
}

// NewRegister initialises a new Register with the given value and label.
func NewRegister(val uint8, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%#02x", r.label, r.value)
}

// Label returns an identifying string for the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add value to register, wrapping around on overflow. Returns the carry
// state.
func (r *Register) Add(val uint8) (carry bool) {
	v := r.value
	r.value += val
	return r.value < v
}

// Subtract value from register, wrapping around on underflow. Returns the
// borrow state.
//
// Note that the CHIP-8 flag convention for subtraction is "no borrow". VF is
// set when borrow is false.
func (r *Register) Subtract(val uint8) (borrow bool) {
	borrow = val > r.value
	r.value -= val
	return borrow
}

// AND value with register.
func (r *Register) AND(val uint8) {
	r.value &= val
}

// ORA (non-exclusive or) value with register.
func (r *Register) ORA(val uint8) {
	r.value |= val
}

// EOR (exclusive or) value with register.
func (r *Register) EOR(val uint8) {
	r.value ^= val
}

// LSR (logical shift right) shifts register one bit to the right. Returns
// the least significant bit as it was before the shift.
func (r *Register) LSR() bool {
	shifted := r.value&0x01 == 0x01
	r.value >>= 1
	return shifted
}

// ASL (arithmetic shift left) shifts register one bit to the left. Returns
// the most significant bit as it was before the shift.
func (r *Register) ASL() bool {
	shifted := r.value&0x80 == 0x80
	r.value <<= 1
	return shifted
}

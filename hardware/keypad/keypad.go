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

// Package keypad implements the sixteen key hexadecimal keypad of the
// CHIP-8. The keypad is written to by the input collaborator (the SDL event
// loop in the case of this emulator) and read by the CPU's key instructions.
// Both happen on the driving loop's goroutine so no locking is required.
package keypad

import "fmt"

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// NoKey is returned by FirstPressed() when no key is pressed.
const NoKey = -1

// Keypad records the most recent known state of the sixteen keys.
//
// The state as it was at the previous latch is also kept, so that the
// key-wait instruction can detect keys that have transitioned from up to
// down rather than keys that happen to be held.
type Keypad struct {
	keys [NumKeys]bool
	prev [NumKeys]bool
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{}
}

func (key Keypad) String() string {
	s := ""
	for k := 0; k < NumKeys; k++ {
		if key.keys[k] {
			s += fmt.Sprintf("%01X", k)
		} else {
			s += "."
		}
	}
	return s
}

// Reset clears all key state.
func (key *Keypad) Reset() {
	key.keys = [NumKeys]bool{}
	key.prev = [NumKeys]bool{}
}

// SetKey records the up/down state of a single key. Key values outside of
// the keypad range are ignored.
func (key *Keypad) SetKey(k int, down bool) {
	if k < 0 || k >= NumKeys {
		return
	}
	key.keys[k] = down
}

// IsPressed returns the current state of the specified key. Only the lower
// nibble of the key value is considered.
func (key *Keypad) IsPressed(k uint8) bool {
	return key.keys[k&0x0f]
}

// FirstPressed returns the lowest numbered key that is currently pressed, or
// NoKey if none are.
func (key *Keypad) FirstPressed() int {
	for k := 0; k < NumKeys; k++ {
		if key.keys[k] {
			return k
		}
	}
	return NoKey
}

// FirstTransition returns the lowest numbered key that was up at the
// previous latch and is down now, or NoKey. Used by the key-wait
// instruction.
func (key *Keypad) FirstTransition() int {
	for k := 0; k < NumKeys; k++ {
		if key.keys[k] && !key.prev[k] {
			return k
		}
	}
	return NoKey
}

// Latch snapshots the current key state for later transition detection.
// Called by the CPU at the end of every cycle.
func (key *Keypad) Latch() {
	key.prev = key.keys
}

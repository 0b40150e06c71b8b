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

// Package govern defines the states the emulation can be in. Used by the
// driving loop's continue check to control whether the machine runs, pauses
// or ends.
package govern

// State of the emulation.
type State int

// List of valid emulation states.
const (
	Running State = iota

	// the CPU is not being cycled. whether the timers continue to
	// decrement while paused is the driving loop's decision
	Paused

	// execute exactly one CPU cycle and then return to the Paused state
	Stepping

	Ending
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Stepping:
		return "stepping"
	case Ending:
		return "ending"
	}
	return "unknown"
}

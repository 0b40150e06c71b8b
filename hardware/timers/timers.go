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

// Package timers implements the delay and sound timers of the CHIP-8. Both
// are 8-bit counters that count down to zero at a fixed 60Hz, regardless of
// how fast the CPU is being cycled. The scheduling of the 60Hz tick is the
// responsibility of the driving loop; it must never be coupled to the CPU
// cycle rate.
package timers

import "fmt"

// TickHz is the fixed rate at which the Tick() function should be called.
const TickHz = 60

// Timers implements the delay and sound timers.
type Timers struct {
	delay uint8
	sound uint8
}

// NewTimers is the preferred method of initialisation for the Timers type.
func NewTimers() *Timers {
	return &Timers{}
}

func (tmr Timers) String() string {
	return fmt.Sprintf("DT=%#02x ST=%#02x", tmr.delay, tmr.sound)
}

// Reset both timers to zero.
func (tmr *Timers) Reset() {
	tmr.delay = 0
	tmr.sound = 0
}

// Tick decrements both timers by one, clamped at zero. Called at a fixed
// 60Hz by the driving loop.
func (tmr *Timers) Tick() {
	if tmr.delay > 0 {
		tmr.delay--
	}
	if tmr.sound > 0 {
		tmr.sound--
	}
}

// Delay returns the current value of the delay timer.
func (tmr *Timers) Delay() uint8 {
	return tmr.delay
}

// SetDelay sets the delay timer.
func (tmr *Timers) SetDelay(val uint8) {
	tmr.delay = val
}

// SetSound sets the sound timer.
func (tmr *Timers) SetSound(val uint8) {
	tmr.sound = val
}

// SoundActive is true while the sound timer is non-zero. The audio
// collaborator should be playing a tone while this is true.
func (tmr *Timers) SoundActive() bool {
	return tmr.sound > 0
}

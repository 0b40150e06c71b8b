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

package hardware

import (
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/performance/limiter"
)

// DefaultCyclesPerSecond is a sensible CPU speed for most ROMs. Roughly
// seven cycles per sixty hertz timer tick.
const DefaultCyclesPerSecond = 420

// Run sets the emulation running at the specified number of CPU cycles per
// second. The timers decrement at their own sixty hertz cadence regardless
// of the CPU speed, including while the emulation is in the Paused state.
//
// The continueCheck() function is called once per CPU cycle and is where the
// caller should service input/output and decide the next emulation state.
func (ch8 *Chip8) Run(cyclesPerSecond int, continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	if cyclesPerSecond <= 0 {
		return curated.Errorf("chip8: invalid cycle rate (%d)", cyclesPerSecond)
	}

	cyc := limiter.NewLimiter(cyclesPerSecond)

	// the timers tick at their own fixed cadence. a catch-up loop rather
	// than a second rate limiter so that cycle rates slower than the tick
	// rate still receive every tick owed to them
	const period = time.Second / timers.TickHz
	tick := time.Now()

	var err error

	state := govern.Running

	for state != govern.Ending {
		switch state {
		case govern.Running:
			if err = ch8.Step(); err != nil {
				return err
			}
		case govern.Paused:
		case govern.Stepping:
			if err = ch8.Step(); err != nil {
				return err
			}
			state = govern.Paused
		default:
			return curated.Errorf("chip8: unsupported emulation state (%s) in Run() function", state)
		}

		// timers are decoupled from the CPU speed. ticks are consumed even
		// while paused so the timers track real time. both timers saturate
		// at zero within 256 ticks so the catch-up never needs to loop
		// further than that
		n := 0
		for time.Since(tick) >= period && n < 256 {
			ch8.Timers.Tick()
			tick = tick.Add(period)
			n++
		}
		if n == 256 {
			tick = time.Now()
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}

		cyc.Wait()
	}

	return nil
}

// RunForCycleCount sets the emulation running for the specified number of
// CPU cycles, as fast as possible and with the timers ticked at the correct
// cycle ratio rather than in real time. Useful for performance measurement
// and regression tests.
func (ch8 *Chip8) RunForCycleCount(numCycles int, cyclesPerSecond int) error {
	if cyclesPerSecond <= 0 {
		return curated.Errorf("chip8: invalid cycle rate (%d)", cyclesPerSecond)
	}

	// fixed point accumulator for the timer cadence
	var acc int

	for i := 0; i < numCycles; i++ {
		if err := ch8.Step(); err != nil {
			return err
		}

		acc += timers.TickHz
		for acc >= cyclesPerSecond {
			acc -= cyclesPerSecond
			ch8.Timers.Tick()
		}
	}

	return nil
}

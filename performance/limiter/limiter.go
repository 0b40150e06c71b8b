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

// Package limiter provides a rough and ready way of limiting events to a
// fixed rate. The emulation uses it to pace the CPU at the configured
// number of cycles per second.
//
// A new Limiter can be created with NewLimiter(). Operations can then be
// stalled with the Wait() function:
//
//	lim := limiter.NewLimiter(60)
//	for {
//		lim.Wait()
//		tickTimers()
//	}
package limiter

import (
	"fmt"
	"time"
)

// this is a rough attempt at rate limiting. probably only any good if base
// performance of the machine is well above the required rate.

// Limiter will trigger at the specified events per second.
type Limiter struct {
	eventsPerSecond int
	secondsPerEvent time.Duration

	tick chan bool
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(eventsPerSecond int) *Limiter {
	lim := &Limiter{}
	lim.SetLimit(eventsPerSecond)

	lim.tick = make(chan bool)

	// run ticker concurrently. the sleep period is adjusted every iteration
	// to account for drift
	go func() {
		adjustedSecondsPerEvent := lim.secondsPerEvent
		t := time.Now()
		for {
			lim.tick <- true
			time.Sleep(adjustedSecondsPerEvent)
			nt := time.Now()
			adjustedSecondsPerEvent -= nt.Sub(t) - lim.secondsPerEvent
			t = nt
		}
	}()

	return lim
}

// SetLimit changes the rate at which the Limiter triggers.
func (lim *Limiter) SetLimit(eventsPerSecond int) {
	lim.eventsPerSecond = eventsPerSecond
	lim.secondsPerEvent, _ = time.ParseDuration(fmt.Sprintf("%fs", float64(1.0)/float64(eventsPerSecond)))
}

// Wait will block until the next trigger.
func (lim *Limiter) Wait() {
	<-lim.tick
}

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

// Package performance measures the emulation performance of the machine.
// The check runs headless and uncapped, which means the results are a
// measure of the raw emulation speed and not of the SDL presentation layer.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/quirks"
	"github.com/jetsetilly/gopher8/romloader"
)

// number of cycles to run between checks of the duration timer. checking a
// channel every cycle is relatively expensive.
const performanceBrake = 100

// Check the performance of the emulator using the supplied ROM. The machine
// is run for the specified duration and the achieved cycle rate reported to
// output. CPU and memory profiles are written if the respective arguments
// are true.
func Check(output io.Writer, profileCPU bool, profileMem bool, ld romloader.Loader, q quirks.Quirks, duration string) error {
	ch8 := hardware.NewChip8(q)

	err := ch8.AttachROM(ld)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	startCycles := ch8.CPU.Cycles()

	runner := func() error {
		timeout := time.After(dur)

		for {
			// run in chunks, keeping the timer tick ratio at the notional
			// cycle rate
			err := ch8.RunForCycleCount(performanceBrake, hardware.DefaultCyclesPerSecond)
			if err != nil {
				return err
			}

			select {
			case <-timeout:
				return nil
			default:
			}
		}
	}

	err = profile(profileCPU, profileMem, runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	numCycles := ch8.CPU.Cycles() - startCycles
	cps := float64(numCycles) / dur.Seconds()

	fmt.Fprintf(output, "%.0f cycles/sec (%.1fx default speed of %d)\n",
		cps, cps/hardware.DefaultCyclesPerSecond, hardware.DefaultCyclesPerSecond)

	return nil
}

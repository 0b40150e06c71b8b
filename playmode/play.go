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

// Package playmode sets the emulation running without any debugging
// features. The machine runs until the user closes the window, presses
// escape or interrupts the program.
package playmode

import (
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/govern"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/sdlplay"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/quirks"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/wavwriter"
)

// Play sets the emulation running.
func Play(q quirks.Quirks, cyclesPerSecond int, scale int, wavFile string, ld romloader.Loader) error {
	ch8 := hardware.NewChip8(q)

	scr, err := sdlplay.NewSdlPlay(ch8.Keypad, scale)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}
	defer scr.Destroy()

	ch8.Video.AddRenderer(scr)

	err = ch8.AttachROM(ld)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	// buzzer audio is optionally recorded to disk
	var wavw *wavwriter.WavWriter
	if wavFile != "" {
		wavw = wavwriter.New(wavFile)
	}

	// we need to end cleanly even when ctrl-c is pressed. redirect interrupt
	// signal to an os.Signal channel
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	err = ch8.Run(cyclesPerSecond, func() (govern.State, error) {
		select {
		case <-intChan:
			return govern.Ending, nil
		default:
		}

		if err := scr.Service(); err != nil {
			if curated.Is(err, gui.Quit) {
				return govern.Ending, nil
			}
			return govern.Ending, err
		}

		if err := ch8.Video.Render(); err != nil {
			return govern.Ending, err
		}

		buzzing := ch8.Timers.SoundActive()
		scr.SetBuzzer(buzzing)
		if wavw != nil {
			wavw.SetBuzzer(buzzing)
		}

		return govern.Running, nil
	})
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	if wavw != nil {
		err = wavw.End()
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}
	}

	return nil
}

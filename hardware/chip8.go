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
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/quirks"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/hardware/video"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/romloader"
)

// Chip8 struct is the main container for the emulated components of the
// machine.
type Chip8 struct {
	CPU    *cpu.CPU
	Mem    *memory.Memory
	Timers *timers.Timers
	Video  *video.Video
	Keypad *keypad.Keypad
}

// NewChip8 creates a new machine and everything associated with the hardware.
// It is used for all aspects of emulation: debugging sessions, and regular
// play.
func NewChip8(q quirks.Quirks) *Chip8 {
	ch8 := &Chip8{
		Mem:    memory.NewMemory(),
		Timers: timers.NewTimers(),
		Video:  video.NewVideo(q.Clipping),
		Keypad: keypad.NewKeypad(),
	}

	ch8.CPU = cpu.NewCPU(ch8.Mem, ch8.Timers, ch8.Video, ch8.Keypad, q)

	return ch8
}

// AttachROM loads a ROM (specified by the Loader) into the emulated memory
// and resets the machine.
func (ch8 *Chip8) AttachROM(ld romloader.Loader) error {
	err := ld.Load()
	if err != nil {
		return err
	}

	ch8.Reset()

	err = ch8.Mem.LoadProgram(ld.Data)
	if err != nil {
		return err
	}

	logger.Log("chip8", ld.ShortName())
	logger.Logf("chip8", "%d bytes (sha1: %s)", len(ld.Data), ld.Hash)

	return nil
}

// Reset the machine to an initial state.
func (ch8 *Chip8) Reset() {
	ch8.Mem.Reset()
	ch8.Timers.Reset()
	ch8.Video.Reset()
	ch8.Keypad.Reset()
	ch8.CPU.Reset()
}

// Step the machine forward one CPU cycle. The timers are not ticked by this
// function, they decrement on their own sixty hertz cadence driven by the
// Run() loop or by the debugger.
func (ch8 *Chip8) Step() error {
	return ch8.CPU.Cycle()
}

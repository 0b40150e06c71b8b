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

// Package hardware is the base package for the emulated machine. The Chip8
// type is the container for all the sub-systems: CPU, memory, timers, video
// and keypad.
//
// The two Run() functions are the best way of driving the emulation. They
// arbitrate the two clocks in the machine, the configurable CPU cycle rate
// and the fixed sixty hertz rate of the delay and sound timers. The timers
// never borrow the CPU clock; slowing the CPU down does not slow the timers
// down.
package hardware

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

// Package debugger implements a terminal debugger for the emulated machine.
// The display window is still opened and updated after every step, so the
// effects of each instruction can be seen as they happen.
//
// By default the delay and sound timers continue to track real time while
// the machine is halted at the prompt, which is how the machine behaves when
// the CPU is merely slow. The freezeTimers option changes this so that the
// timers only advance in step with the CPU, which is often more useful when
// stepping through timer-bound code.
package debugger

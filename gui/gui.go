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

// Package gui defines the operations that can be performed on the visual
// user interface. Implementations live in sub-packages; the only
// implementation currently is sdlplay.
package gui

// GUI defines the operations that can be performed on visual user interfaces.
type GUI interface {
	// Service the user interface. Input events are forwarded to the keypad
	// and the audio queue is kept topped up. Returns an error with the Quit
	// sentinel when the user has asked for the emulation to end.
	Service() error

	// SetBuzzer turns the monotone buzzer on or off. Called with the state
	// of the machine's sound timer.
	SetBuzzer(active bool)

	// Destroy ends the GUI, releasing window and audio resources.
	Destroy()
}

// Sentinel error returned by Service() when the user has closed the window
// or otherwise asked for the emulation to end.
const Quit = "gui: quit requested"

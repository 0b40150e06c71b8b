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

package sdlplay

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui"

	"github.com/veandco/go-sdl2/sdl"
)

// the left hand side of a conventional keyboard, mapped onto the hexadecimal
// keypad of the original machine.
//
//	1 2 3 4        1 2 3 C
//	q w e r   ->   4 5 6 D
//	a s d f        7 8 9 E
//	z x c v        A 0 B F
var keyMap = map[sdl.Keycode]int{
	sdl.K_1: 0x1, sdl.K_2: 0x2, sdl.K_3: 0x3, sdl.K_4: 0xc,
	sdl.K_q: 0x4, sdl.K_w: 0x5, sdl.K_e: 0x6, sdl.K_r: 0xd,
	sdl.K_a: 0x7, sdl.K_s: 0x8, sdl.K_d: 0x9, sdl.K_f: 0xe,
	sdl.K_z: 0xa, sdl.K_x: 0x0, sdl.K_c: 0xb, sdl.K_v: 0xf,
}

func setupService() {
	// MOUSEMOTION events fill up the event queue pretty quickly. these take
	// time to service and for no good reason
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)
}

// Service implements the gui.GUI interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Service() error {
	// loop until there are no more events to retrieve. servicing just one
	// event per call is not enough, queued events would take one call or
	// longer to resolve
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		// close window
		case *sdl.QuitEvent:
			return curated.Errorf(gui.Quit)

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}

			if ev.Keysym.Sym == sdl.K_ESCAPE {
				if ev.Type == sdl.KEYDOWN {
					return curated.Errorf(gui.Quit)
				}
				continue
			}

			if k, ok := keyMap[ev.Keysym.Sym]; ok {
				scr.key.SetKey(k, ev.Type == sdl.KEYDOWN)
			}
		}
	}

	// keep the audio queue topped up while the buzzer is sounding
	scr.snd.service()

	return nil
}

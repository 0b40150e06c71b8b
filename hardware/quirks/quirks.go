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

// Package quirks defines the configurable deviations in instruction
// behaviour that distinguish historical CHIP-8 interpreters. There is no one
// correct setting for any of these; a ROM is written against the behaviour
// of a particular interpreter and will misbehave under another. The Platform
// presets gather the settings of the two families this emulator targets.
package quirks

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// UnknownPlatform is returned by NewQuirks if the platform name is not
// recognised.
const UnknownPlatform = "quirks: unknown platform (%s)"

// Platform names accepted by NewQuirks.
const (
	PlatformCHIP8 = "CHIP8"
	PlatformSCHIP = "SCHIP"
)

// PlatformList is the list of valid platform names.
var PlatformList = []string{PlatformCHIP8, PlatformSCHIP}

// Quirks is the set of instruction behaviour toggles. The zero value is not
// useful; use NewQuirks() to create an instance from a platform preset.
// Values are fixed for the lifetime of a run.
type Quirks struct {
	// 8xy1, 8xy2 and 8xy3 also set VF to zero
	ResetFlag bool

	// Fx55 and Fx65 leave the index register unchanged, rather than
	// incremented by the number of registers stored/loaded
	LoadStore bool

	// 8xy6 and 8xyE shift Vx in place, ignoring Vy
	Shift bool

	// Bnnn jumps to nnn plus Vx (where x is the high nibble of nnn) rather
	// than nnn plus V0
	Jump bool

	// Dxyn clips sprite pixels at the framebuffer edge rather than wrapping
	// them to the opposite edge
	Clipping bool
}

// NewQuirks returns the Quirks preset for the named platform. The name is
// not case-sensitive.
func NewQuirks(platform string) (Quirks, error) {
	switch strings.ToUpper(strings.TrimSpace(platform)) {
	case PlatformCHIP8:
		return Quirks{
			ResetFlag: true,
			LoadStore: false,
			Shift:     false,
			Jump:      false,
			Clipping:  true,
		}, nil
	case PlatformSCHIP:
		return Quirks{
			ResetFlag: false,
			LoadStore: true,
			Shift:     true,
			Jump:      true,
			Clipping:  true,
		}, nil
	}

	return Quirks{}, curated.Errorf(UnknownPlatform, platform)
}

// Names is the list of quirk names accepted by Set(). The same names are
// used for the command line flags that override a platform preset.
var Names = []string{"resetflag", "loadstore", "shift", "jump", "clipping"}

// Set the named quirk, overriding the platform preset. The name is not
// case-sensitive.
func (q *Quirks) Set(name string, on bool) error {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "resetflag":
		q.ResetFlag = on
	case "loadstore":
		q.LoadStore = on
	case "shift":
		q.Shift = on
	case "jump":
		q.Jump = on
	case "clipping":
		q.Clipping = on
	default:
		return curated.Errorf("quirks: unknown quirk (%s)", name)
	}

	return nil
}

func (q Quirks) String() string {
	return fmt.Sprintf("resetflag=%v loadstore=%v shift=%v jump=%v clipping=%v",
		q.ResetFlag, q.LoadStore, q.Shift, q.Jump, q.Clipping)
}

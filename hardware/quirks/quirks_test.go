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

package quirks_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/quirks"
	"github.com/jetsetilly/gopher8/test"
)

func TestPlatformPresets(t *testing.T) {
	q, err := quirks.NewQuirks("CHIP8")
	test.ExpectedSuccess(t, err)
	test.Equate(t, q.ResetFlag, true)
	test.Equate(t, q.LoadStore, false)
	test.Equate(t, q.Shift, false)
	test.Equate(t, q.Jump, false)
	test.Equate(t, q.Clipping, true)

	q, err = quirks.NewQuirks("schip")
	test.ExpectedSuccess(t, err)
	test.Equate(t, q.ResetFlag, false)
	test.Equate(t, q.LoadStore, true)
	test.Equate(t, q.Shift, true)
	test.Equate(t, q.Jump, true)
	test.Equate(t, q.Clipping, true)

	_, err = quirks.NewQuirks("VIP2")
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, quirks.UnknownPlatform), true)
}

func TestOverridePreset(t *testing.T) {
	q, err := quirks.NewQuirks("CHIP8")
	test.ExpectedSuccess(t, err)

	// every named quirk can be flipped individually after the preset
	test.ExpectedSuccess(t, q.Set("resetflag", false))
	test.ExpectedSuccess(t, q.Set("shift", true))
	test.Equate(t, q.ResetFlag, false)
	test.Equate(t, q.Shift, true)

	// the preset's other settings are untouched
	test.Equate(t, q.LoadStore, false)
	test.Equate(t, q.Jump, false)
	test.Equate(t, q.Clipping, true)

	for _, n := range quirks.Names {
		test.ExpectedSuccess(t, q.Set(n, true))
	}

	test.ExpectedFailure(t, q.Set("waitkey", true))
}

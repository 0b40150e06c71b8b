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

package romloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
)

func writeROM(t *testing.T, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(fn, data, 0600)
	test.ExpectedSuccess(t, err)
	return fn
}

func TestLoadFromFile(t *testing.T) {
	data := []byte{0x12, 0x00, 0x60, 0xff}
	fn := writeROM(t, "pong.ch8", data)

	ld := romloader.NewLoader(fn)
	test.Equate(t, ld.HasLoaded(), false)

	err := ld.Load()
	test.ExpectedSuccess(t, err)
	test.Equate(t, ld.HasLoaded(), true)
	test.Equate(t, len(ld.Data), len(data))
	for i := range data {
		test.Equate(t, ld.Data[i], data[i])
	}

	// sha1 of the four bytes above
	test.Equate(t, ld.Hash, "1bd653515c81b81dca6dfb974398c9201ae6e7b1")
	test.Equate(t, ld.ShortName(), "pong")
}

func TestHashValidation(t *testing.T) {
	fn := writeROM(t, "pong.ch8", []byte{0x12, 0x00})

	ld := romloader.NewLoader(fn)
	ld.Hash = "0000000000000000000000000000000000000000"
	err := ld.Load()
	test.ExpectedFailure(t, err)
}

func TestEmptyFile(t *testing.T) {
	fn := writeROM(t, "empty.ch8", []byte{})

	ld := romloader.NewLoader(fn)
	err := ld.Load()
	test.ExpectedFailure(t, err)
}

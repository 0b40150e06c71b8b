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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Basic usage is similar to the flag package, except that NewArgs() is
// called with the argument list and Parse() is then called without
// arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	scale := md.AddInt("scale", 10, "window scale")
//	r, err := md.Parse()
//
// Modes are requested with the AddSubModes() function before parsing. The
// first sub-mode in the list is the default, used when the first non-flag
// argument matches no sub-mode:
//
//	md.AddSubModes("RUN", "PLAY", "DEBUG")
//	r, err := md.Parse()
//	switch md.Mode() {
//	...
//	}
//
// Each mode can then add its own flags, after a call to NewMode(), and call
// Parse() again for the next layer of arguments.
package modalflag

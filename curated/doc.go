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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The pattern string is important. As well as providing the message for the
// error it acts as the error's identity. Sentinel patterns are declared as
// package level constants and compared with the Is() function:
//
//	const SomethingWrong = "machine: something wrong (%#04x)"
//
//	err := curated.Errorf(SomethingWrong, 0x200)
//
//	if curated.Is(err, SomethingWrong) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain; useful when a deeply nested error has been wrapped by an
// intermediate package:
//
//	err := curated.Errorf("debugger: %v", curated.Errorf(SomethingWrong, 0x200))
//
//	curated.Is(err, SomethingWrong)  // false
//	curated.Has(err, SomethingWrong) // true
//
// Error messages in a chain are normalised on output, removing duplicate
// adjacent message parts.
package curated

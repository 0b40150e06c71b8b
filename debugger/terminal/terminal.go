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

// Package terminal defines the operations required by the debugger's command
// line interface. Implementations are in the plainterm and colorterm
// sub-packages.
package terminal

// Style is used to hint to the terminal implementation how a line of output
// should be presented.
type Style int

// List of terminal styles.
const (
	// input from the user being echoed back
	StyleInput Style = iota

	// the result of a single CPU step
	StyleCPUStep

	// information about the machine, registers, memory and similar
	StyleMachineInfo

	// information from the emulator rather than the machine
	StyleFeedback

	// help text
	StyleHelp

	// error messages. terminals must display these even when it would
	// prefer not to display other styles
	StyleError
)

// Sentinel error returned by TermRead() if an interrupt (eg. ctrl-c) is
// caught whilst waiting for input.
const UserInterrupt = "user interrupt"

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next line of input from the user. The prompt
	// should be displayed if the implementation is interactive.
	TermRead(prompt string) (string, error)

	// IsInteractive should return true for implementations that require
	// user interaction.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(sty Style, s string, a ...interface{})
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need
	// to do anything.
	Initialise() error

	// Restore the terminal to its original state, if possible. for example,
	// making sure the terminal is returned to canonical mode.
	CleanUp()
}

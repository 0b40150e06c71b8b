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

// Package cpu implements the CHIP-8 interpreter. The CPU is not a model of
// any physical chip; it implements the abstract fetch-decode-execute machine
// that CHIP-8 programs are written against, with the well known behavioural
// differences between historical interpreters exposed through the quirks
// package.
//
// Decoding and execution are separate steps. Decode() classifies a raw 16
// bit opcode into an Instruction - an operator from a closed set plus its
// decoded operands - and the execution step is an exhaustive switch over
// the operators. The two halves can be tested independently.
//
// The CPU does not decrement the delay and sound timers. That happens at a
// fixed 60Hz, however fast or slow the CPU is being cycled, and is the
// responsibility of the driving loop.
package cpu

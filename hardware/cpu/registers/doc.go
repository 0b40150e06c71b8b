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

// Package registers implements the register file of the CHIP-8: the sixteen
// 8-bit work registers V0 to VF, the 16-bit index register, the 16-bit
// program counter and the call stack.
//
// All arithmetic on the 8-bit Register type wraps around, as it does on the
// CHIP-8. Operations that overflow or shift a bit out return that fact to
// the caller; it is the CPU's responsibility to record it in VF.
package registers

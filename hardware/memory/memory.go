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

package memory

import (
	"github.com/jetsetilly/gopher8/curated"
)

// Sentinel errors returned by the memory package.
const (
	MemoryFault     = "memory: inaccessible address (%#04x)"
	ProgramTooLarge = "memory: program too large (%d bytes, %d available)"
)

// The memory map of the CHIP-8. The area below ProgramOrigin is reserved for
// the interpreter; the only thing of interest in there is the font data.
const (
	Size          = 4096
	FontOrigin    = 0x050
	ProgramOrigin = 0x200
)

// GlyphHeight is the height in bytes (and so in pixels) of a single font
// glyph.
const GlyphHeight = 5

// font sprite data for the sixteen hexadecimal digits. written to memory at
// FontOrigin on creation and on reset.
var fontData = [...]uint8{
	0xf0, 0x90, 0x90, 0x90, 0xf0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xf0, 0x10, 0xf0, 0x80, 0xf0, // 2
	0xf0, 0x10, 0xf0, 0x10, 0xf0, // 3
	0x90, 0x90, 0xf0, 0x10, 0x10, // 4
	0xf0, 0x80, 0xf0, 0x10, 0xf0, // 5
	0xf0, 0x80, 0xf0, 0x90, 0xf0, // 6
	0xf0, 0x10, 0x20, 0x40, 0x40, // 7
	0xf0, 0x90, 0xf0, 0x90, 0xf0, // 8
	0xf0, 0x90, 0xf0, 0x90, 0x10, // 9
	0xf0, 0x90, 0xf0, 0x90, 0x90, // A
	0xe0, 0x90, 0xe0, 0x90, 0xe0, // B
	0xf0, 0x80, 0x80, 0x80, 0xf0, // C
	0xe0, 0x90, 0x90, 0x90, 0xe0, // D
	0xf0, 0x80, 0xf0, 0x80, 0xf0, // E
	0xf0, 0x80, 0xf0, 0x80, 0x80, // F
}

// Memory is the flat 4096 byte address space of the CHIP-8.
type Memory struct {
	ram [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

// Reset zeroes all memory and reinstalls the font data.
func (mem *Memory) Reset() {
	for i := range mem.ram {
		mem.ram[i] = 0
	}
	copy(mem.ram[FontOrigin:], fontData[:])
}

// Read a byte from the specified address.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if int(address) >= Size {
		return 0, curated.Errorf(MemoryFault, address)
	}
	return mem.ram[address], nil
}

// Write a byte to the specified address.
func (mem *Memory) Write(address uint16, data uint8) error {
	if int(address) >= Size {
		return curated.Errorf(MemoryFault, address)
	}
	mem.ram[address] = data
	return nil
}

// ReadInstruction reads the 16-bit big-endian instruction at the specified
// address.
func (mem *Memory) ReadInstruction(address uint16) (uint16, error) {
	if int(address)+1 >= Size {
		return 0, curated.Errorf(MemoryFault, address)
	}
	return uint16(mem.ram[address])<<8 | uint16(mem.ram[address+1]), nil
}

// GlyphAddress returns the address of the font glyph for the specified
// hexadecimal digit. Only the lower nibble of the digit is considered.
func (mem *Memory) GlyphAddress(digit uint8) uint16 {
	return FontOrigin + uint16(digit&0x0f)*GlyphHeight
}

// LoadProgram copies the program into memory starting at ProgramOrigin.
func (mem *Memory) LoadProgram(data []byte) error {
	if len(data) > Size-ProgramOrigin {
		return curated.Errorf(ProgramTooLarge, len(data), Size-ProgramOrigin)
	}
	copy(mem.ram[ProgramOrigin:], data)
	return nil
}

// Peek returns the contents of the specified region of memory without the
// possibility of error. Addresses outside of the memory range are ignored.
// Useful for the debugger's memory display.
func (mem *Memory) Peek(address uint16, length int) []uint8 {
	if int(address) >= Size {
		return []uint8{}
	}
	end := int(address) + length
	if end > Size {
		end = Size
	}
	c := make([]uint8, end-int(address))
	copy(c, mem.ram[address:end])
	return c
}

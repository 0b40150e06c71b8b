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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
)

// Operator classifies a decoded instruction. The set is closed; every raw
// opcode either decodes to exactly one Operator or is an InvalidOpcode
// error.
type Operator int

// List of valid Operator values.
const (
	Cls Operator = iota
	Ret
	Jump
	Call
	SkipEqualValue
	SkipNotEqualValue
	SkipEqualRegister
	LoadValue
	AddValue
	LoadRegister
	Or
	And
	Xor
	AddRegister
	SubRegister
	ShiftRight
	SubRegisterReverse
	ShiftLeft
	SkipNotEqualRegister
	LoadIndex
	JumpOffset
	Random
	Draw
	SkipKeyPressed
	SkipKeyNotPressed
	LoadFromDelay
	WaitKey
	LoadDelay
	LoadSound
	AddIndex
	LoadGlyph
	StoreBCD
	StoreRegisters
	LoadRegisters
)

// Instruction is a decoded opcode: the operator plus every operand field the
// raw 16 bits can carry. Which fields are meaningful depends on the
// operator.
type Instruction struct {
	Operator Operator

	// x and y are register numbers; n, nn and nnn are literal values of 4,
	// 8 and 12 bits respectively
	X   uint8
	Y   uint8
	N   uint8
	NN  uint8
	NNN uint16
}

// Decode classifies a raw 16-bit opcode. Decoding is by the high nibble
// first and, where that is ambiguous, by the trailing nibble or byte.
func Decode(opcode uint16) (Instruction, error) {
	ins := Instruction{
		X:   uint8(opcode >> 8 & 0x0f),
		Y:   uint8(opcode >> 4 & 0x0f),
		N:   uint8(opcode & 0x000f),
		NN:  uint8(opcode & 0x00ff),
		NNN: opcode & 0x0fff,
	}

	switch opcode >> 12 {
	case 0x0:
		switch ins.NN {
		case 0xe0:
			ins.Operator = Cls
		case 0xee:
			ins.Operator = Ret
		default:
			return Instruction{}, curated.Errorf(InvalidOpcode, opcode)
		}
	case 0x1:
		ins.Operator = Jump
	case 0x2:
		ins.Operator = Call
	case 0x3:
		ins.Operator = SkipEqualValue
	case 0x4:
		ins.Operator = SkipNotEqualValue
	case 0x5:
		if ins.N != 0x0 {
			return Instruction{}, curated.Errorf(InvalidOpcode, opcode)
		}
		ins.Operator = SkipEqualRegister
	case 0x6:
		ins.Operator = LoadValue
	case 0x7:
		ins.Operator = AddValue
	case 0x8:
		switch ins.N {
		case 0x0:
			ins.Operator = LoadRegister
		case 0x1:
			ins.Operator = Or
		case 0x2:
			ins.Operator = And
		case 0x3:
			ins.Operator = Xor
		case 0x4:
			ins.Operator = AddRegister
		case 0x5:
			ins.Operator = SubRegister
		case 0x6:
			ins.Operator = ShiftRight
		case 0x7:
			ins.Operator = SubRegisterReverse
		case 0xe:
			ins.Operator = ShiftLeft
		default:
			return Instruction{}, curated.Errorf(InvalidOpcode, opcode)
		}
	case 0x9:
		if ins.N != 0x0 {
			return Instruction{}, curated.Errorf(InvalidOpcode, opcode)
		}
		ins.Operator = SkipNotEqualRegister
	case 0xa:
		ins.Operator = LoadIndex
	case 0xb:
		ins.Operator = JumpOffset
	case 0xc:
		ins.Operator = Random
	case 0xd:
		ins.Operator = Draw
	case 0xe:
		switch ins.NN {
		case 0x9e:
			ins.Operator = SkipKeyPressed
		case 0xa1:
			ins.Operator = SkipKeyNotPressed
		default:
			return Instruction{}, curated.Errorf(InvalidOpcode, opcode)
		}
	case 0xf:
		switch ins.NN {
		case 0x07:
			ins.Operator = LoadFromDelay
		case 0x0a:
			ins.Operator = WaitKey
		case 0x15:
			ins.Operator = LoadDelay
		case 0x18:
			ins.Operator = LoadSound
		case 0x1e:
			ins.Operator = AddIndex
		case 0x29:
			ins.Operator = LoadGlyph
		case 0x33:
			ins.Operator = StoreBCD
		case 0x55:
			ins.Operator = StoreRegisters
		case 0x65:
			ins.Operator = LoadRegisters
		default:
			return Instruction{}, curated.Errorf(InvalidOpcode, opcode)
		}
	}

	return ins, nil
}

// String returns the disassembly of the decoded instruction, using the
// conventional CHIP-8 mnemonics.
func (ins Instruction) String() string {
	switch ins.Operator {
	case Cls:
		return "CLS"
	case Ret:
		return "RET"
	case Jump:
		return fmt.Sprintf("JP %#03x", ins.NNN)
	case Call:
		return fmt.Sprintf("CALL %#03x", ins.NNN)
	case SkipEqualValue:
		return fmt.Sprintf("SE V%01X, %#02x", ins.X, ins.NN)
	case SkipNotEqualValue:
		return fmt.Sprintf("SNE V%01X, %#02x", ins.X, ins.NN)
	case SkipEqualRegister:
		return fmt.Sprintf("SE V%01X, V%01X", ins.X, ins.Y)
	case LoadValue:
		return fmt.Sprintf("LD V%01X, %#02x", ins.X, ins.NN)
	case AddValue:
		return fmt.Sprintf("ADD V%01X, %#02x", ins.X, ins.NN)
	case LoadRegister:
		return fmt.Sprintf("LD V%01X, V%01X", ins.X, ins.Y)
	case Or:
		return fmt.Sprintf("OR V%01X, V%01X", ins.X, ins.Y)
	case And:
		return fmt.Sprintf("AND V%01X, V%01X", ins.X, ins.Y)
	case Xor:
		return fmt.Sprintf("XOR V%01X, V%01X", ins.X, ins.Y)
	case AddRegister:
		return fmt.Sprintf("ADD V%01X, V%01X", ins.X, ins.Y)
	case SubRegister:
		return fmt.Sprintf("SUB V%01X, V%01X", ins.X, ins.Y)
	case ShiftRight:
		return fmt.Sprintf("SHR V%01X {, V%01X}", ins.X, ins.Y)
	case SubRegisterReverse:
		return fmt.Sprintf("SUBN V%01X, V%01X", ins.X, ins.Y)
	case ShiftLeft:
		return fmt.Sprintf("SHL V%01X {, V%01X}", ins.X, ins.Y)
	case SkipNotEqualRegister:
		return fmt.Sprintf("SNE V%01X, V%01X", ins.X, ins.Y)
	case LoadIndex:
		return fmt.Sprintf("LD I, %#03x", ins.NNN)
	case JumpOffset:
		return fmt.Sprintf("JP V0, %#03x", ins.NNN)
	case Random:
		return fmt.Sprintf("RND V%01X, %#02x", ins.X, ins.NN)
	case Draw:
		return fmt.Sprintf("DRW V%01X, V%01X, %#01x", ins.X, ins.Y, ins.N)
	case SkipKeyPressed:
		return fmt.Sprintf("SKP V%01X", ins.X)
	case SkipKeyNotPressed:
		return fmt.Sprintf("SKNP V%01X", ins.X)
	case LoadFromDelay:
		return fmt.Sprintf("LD V%01X, DT", ins.X)
	case WaitKey:
		return fmt.Sprintf("LD V%01X, K", ins.X)
	case LoadDelay:
		return fmt.Sprintf("LD DT, V%01X", ins.X)
	case LoadSound:
		return fmt.Sprintf("LD ST, V%01X", ins.X)
	case AddIndex:
		return fmt.Sprintf("ADD I, V%01X", ins.X)
	case LoadGlyph:
		return fmt.Sprintf("LD F, V%01X", ins.X)
	case StoreBCD:
		return fmt.Sprintf("LD B, V%01X", ins.X)
	case StoreRegisters:
		return fmt.Sprintf("LD [I], V%01X", ins.X)
	case LoadRegisters:
		return fmt.Sprintf("LD V%01X, [I]", ins.X)
	}
	return "unknown"
}

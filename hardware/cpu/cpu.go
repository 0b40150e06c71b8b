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
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/quirks"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/hardware/video"
	"github.com/jetsetilly/gopher8/random"
)

// InvalidOpcode is returned by Cycle() when the fetched bit pattern matches
// no decode rule. The machine state is not corrupted; the program counter
// has advanced past the offending opcode but nothing else has changed.
const InvalidOpcode = "cpu: invalid opcode (%#04x)"

// the register number of the flag register, VF.
const flag = 0xf

// CPU implements the CHIP-8 interpreter state machine. Register logic is
// implemented by the types in the registers sub-package.
type CPU struct {
	V     [16]registers.Register
	I     registers.Index
	PC    registers.ProgramCounter
	Stack registers.Stack

	mem    *memory.Memory
	tmr    *timers.Timers
	vid    *video.Video
	key    *keypad.Keypad
	quirks quirks.Quirks

	// random number source for the RND instruction
	Rand *random.Random

	// an accumulator for operations that must not disturb the operand
	// registers until the result is known
	acc registers.Register

	// number of calls to Cycle() since the last reset
	cycles uint64

	// last result. the Address field is only valid after the first call to
	// Cycle() following a reset
	LastResult Result
}

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(mem *memory.Memory, tmr *timers.Timers, vid *video.Video, key *keypad.Keypad, q quirks.Quirks) *CPU {
	mc := &CPU{
		mem:    mem,
		tmr:    tmr,
		vid:    vid,
		key:    key,
		quirks: q,
		acc:    registers.NewRegister(0, "acc"),
	}

	mc.Rand = random.NewRandom(mc)

	for i := range mc.V {
		mc.V[i] = registers.NewRegister(0, fmt.Sprintf("V%01X", i))
	}
	mc.PC = registers.NewProgramCounter(memory.ProgramOrigin)
	mc.I = registers.NewIndex(0)
	mc.Stack = registers.NewStack()

	return mc
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s=%s %s=%s %s\n", mc.PC.Label(), mc.PC, mc.I.Label(), mc.I, mc.Stack))
	for i := range mc.V {
		s.WriteString(mc.V[i].String())
		if i == 7 {
			s.WriteString("\n")
		} else if i < 15 {
			s.WriteString(" ")
		}
	}
	return s.String()
}

// Reset the CPU. Registers are zeroed and the PC returned to the program
// origin. Memory is not touched.
func (mc *CPU) Reset() {
	for i := range mc.V {
		mc.V[i].Load(0)
	}
	mc.PC.Load(memory.ProgramOrigin)
	mc.I.Load(0)
	mc.Stack = registers.NewStack()
	mc.cycles = 0
	mc.LastResult = Result{}
}

// Cycles implements the random.CycleCounter interface.
func (mc *CPU) Cycles() uint64 {
	return mc.cycles
}

// Quirks returns the quirk settings the CPU was created with.
func (mc *CPU) Quirks() quirks.Quirks {
	return mc.quirks
}

// Cycle executes one fetch-decode-execute cycle: the 16-bit instruction at
// the PC is fetched, the PC advanced by two and the instruction executed.
// The PC is advanced before execution so that the jump and call instructions
// can overwrite it.
//
// Errors are not recoverable. The driving loop should report the error and
// end the run.
func (mc *CPU) Cycle() error {
	mc.cycles++

	mc.LastResult = Result{Address: mc.PC.Address()}

	opcode, err := mc.mem.ReadInstruction(mc.PC.Address())
	if err != nil {
		return err
	}
	mc.LastResult.Opcode = opcode

	mc.PC.Add(2)

	ins, err := Decode(opcode)
	if err != nil {
		return err
	}
	mc.LastResult.Instruction = ins
	mc.LastResult.Decoded = true

	if err := mc.execute(ins); err != nil {
		return err
	}

	// latch key state so that the key-wait instruction can detect
	// transitions on the next cycle
	mc.key.Latch()

	return nil
}

// setFlag loads VF with one or zero.
func (mc *CPU) setFlag(set bool) {
	if set {
		mc.V[flag].Load(1)
	} else {
		mc.V[flag].Load(0)
	}
}

func (mc *CPU) execute(ins Instruction) error {
	switch ins.Operator {
	case Cls:
		mc.vid.Clear()

	case Ret:
		address, err := mc.Stack.Pop()
		if err != nil {
			return err
		}
		mc.PC.Load(address)

	case Jump:
		mc.PC.Load(ins.NNN)

	case Call:
		// the PC has already advanced past this instruction, so it is the
		// return address
		if err := mc.Stack.Push(mc.PC.Address()); err != nil {
			return err
		}
		mc.PC.Load(ins.NNN)

	case SkipEqualValue:
		if mc.V[ins.X].Value() == ins.NN {
			mc.PC.Add(2)
		}

	case SkipNotEqualValue:
		if mc.V[ins.X].Value() != ins.NN {
			mc.PC.Add(2)
		}

	case SkipEqualRegister:
		if mc.V[ins.X].Value() == mc.V[ins.Y].Value() {
			mc.PC.Add(2)
		}

	case LoadValue:
		mc.V[ins.X].Load(ins.NN)

	case AddValue:
		// no carry flag for the add-value instruction
		mc.V[ins.X].Add(ins.NN)

	case LoadRegister:
		mc.V[ins.X].Load(mc.V[ins.Y].Value())

	case Or:
		mc.V[ins.X].ORA(mc.V[ins.Y].Value())
		if mc.quirks.ResetFlag {
			mc.V[flag].Load(0)
		}

	case And:
		mc.V[ins.X].AND(mc.V[ins.Y].Value())
		if mc.quirks.ResetFlag {
			mc.V[flag].Load(0)
		}

	case Xor:
		mc.V[ins.X].EOR(mc.V[ins.Y].Value())
		if mc.quirks.ResetFlag {
			mc.V[flag].Load(0)
		}

	case AddRegister:
		carry := mc.V[ins.X].Add(mc.V[ins.Y].Value())
		mc.setFlag(carry)

	case SubRegister:
		borrow := mc.V[ins.X].Subtract(mc.V[ins.Y].Value())
		mc.setFlag(!borrow)

	case ShiftRight:
		if !mc.quirks.Shift {
			mc.V[ins.X].Load(mc.V[ins.Y].Value())
		}
		shifted := mc.V[ins.X].LSR()
		mc.setFlag(shifted)

	case SubRegisterReverse:
		// Vx = Vy - Vx. the accumulator keeps Vy intact
		mc.acc.Load(mc.V[ins.Y].Value())
		borrow := mc.acc.Subtract(mc.V[ins.X].Value())
		mc.V[ins.X].Load(mc.acc.Value())
		mc.setFlag(!borrow)

	case ShiftLeft:
		if !mc.quirks.Shift {
			mc.V[ins.X].Load(mc.V[ins.Y].Value())
		}
		shifted := mc.V[ins.X].ASL()
		mc.setFlag(shifted)

	case SkipNotEqualRegister:
		if mc.V[ins.X].Value() != mc.V[ins.Y].Value() {
			mc.PC.Add(2)
		}

	case LoadIndex:
		mc.I.Load(ins.NNN)

	case JumpOffset:
		if mc.quirks.Jump {
			mc.PC.Load(ins.NNN + uint16(mc.V[ins.X].Value()))
		} else {
			mc.PC.Load(ins.NNN + uint16(mc.V[0].Value()))
		}

	case Random:
		mc.V[ins.X].Load(mc.Rand.Uint8() & ins.NN)

	case Draw:
		sprite := make([]uint8, ins.N)
		for i := range sprite {
			data, err := mc.mem.Read(mc.I.Address() + uint16(i))
			if err != nil {
				return err
			}
			sprite[i] = data
		}
		collision := mc.vid.DrawSprite(mc.V[ins.X].Value(), mc.V[ins.Y].Value(), sprite)
		mc.setFlag(collision)

	case SkipKeyPressed:
		if mc.key.IsPressed(mc.V[ins.X].Value()) {
			mc.PC.Add(2)
		}

	case SkipKeyNotPressed:
		if !mc.key.IsPressed(mc.V[ins.X].Value()) {
			mc.PC.Add(2)
		}

	case LoadFromDelay:
		mc.V[ins.X].Load(mc.tmr.Delay())

	case WaitKey:
		// cooperative wait. if no key has transitioned to pressed, rewind
		// the PC so that this instruction executes again on the next cycle.
		// the driving loop is unaware and remains responsive
		k := mc.key.FirstTransition()
		if k == keypad.NoKey {
			mc.PC.Load(mc.PC.Address() - 2)
		} else {
			mc.V[ins.X].Load(uint8(k))
		}

	case LoadDelay:
		mc.tmr.SetDelay(mc.V[ins.X].Value())

	case LoadSound:
		mc.tmr.SetSound(mc.V[ins.X].Value())

	case AddIndex:
		mc.I.Add(uint16(mc.V[ins.X].Value()))

	case LoadGlyph:
		mc.I.Load(mc.mem.GlyphAddress(mc.V[ins.X].Value()))

	case StoreBCD:
		v := mc.V[ins.X].Value()
		for i, digit := range []uint8{v / 100, v / 10 % 10, v % 10} {
			if err := mc.mem.Write(mc.I.Address()+uint16(i), digit); err != nil {
				return err
			}
		}

	case StoreRegisters:
		for i := uint8(0); i <= ins.X; i++ {
			if mc.quirks.LoadStore {
				if err := mc.mem.Write(mc.I.Address()+uint16(i), mc.V[i].Value()); err != nil {
					return err
				}
			} else {
				if err := mc.mem.Write(mc.I.Address(), mc.V[i].Value()); err != nil {
					return err
				}
				mc.I.Add(1)
			}
		}

	case LoadRegisters:
		for i := uint8(0); i <= ins.X; i++ {
			var data uint8
			var err error
			if mc.quirks.LoadStore {
				data, err = mc.mem.Read(mc.I.Address() + uint16(i))
			} else {
				data, err = mc.mem.Read(mc.I.Address())
				mc.I.Add(1)
			}
			if err != nil {
				return err
			}
			mc.V[i].Load(data)
		}

	default:
		return curated.Errorf(InvalidOpcode, mc.LastResult.Opcode)
	}

	return nil
}

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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/quirks"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/hardware/video"
	"github.com/jetsetilly/gopher8/test"
)

type machine struct {
	mem *memory.Memory
	tmr *timers.Timers
	vid *video.Video
	key *keypad.Keypad
	mc  *cpu.CPU
}

// newMachine assembles a CPU and its components, using the CHIP8 quirk
// preset unless adjusted, and loads the program.
func newMachine(t *testing.T, adjust func(*quirks.Quirks), program ...uint8) *machine {
	t.Helper()

	q, err := quirks.NewQuirks(quirks.PlatformCHIP8)
	test.ExpectedSuccess(t, err)
	if adjust != nil {
		adjust(&q)
	}

	m := &machine{
		mem: memory.NewMemory(),
		tmr: timers.NewTimers(),
		key: keypad.NewKeypad(),
		vid: video.NewVideo(q.Clipping),
	}
	m.mc = cpu.NewCPU(m.mem, m.tmr, m.vid, m.key, q)

	test.ExpectedSuccess(t, m.mem.LoadProgram(program))

	return m
}

// step the machine through the specified number of cycles, failing the test
// on any error.
func (m *machine) step(t *testing.T, cycles int) {
	t.Helper()
	for i := 0; i < cycles; i++ {
		if err := m.mc.Cycle(); err != nil {
			t.Fatalf("unexpected error in Cycle(): %v", err)
		}
	}
}

func TestProgramCounterAdvance(t *testing.T) {
	// LD V0, 0x10 is not a flow instruction; PC advances by exactly two
	m := newMachine(t, nil, 0x60, 0x10)
	m.step(t, 1)
	test.Equate(t, m.mc.PC.Address(), memory.ProgramOrigin+2)
	test.Equate(t, m.mc.V[0].Value(), 0x10)
}

func TestJumpCallReturn(t *testing.T) {
	// JP 0x206; (unreached); (unreached); CALL 0x20a; (unreached); RET
	m := newMachine(t, nil,
		0x12, 0x06, // 0x200 JP 0x206
		0x00, 0x00, // 0x202
		0x00, 0x00, // 0x204
		0x22, 0x0a, // 0x206 CALL 0x20a
		0x00, 0x00, // 0x208
		0x00, 0xee, // 0x20a RET
	)

	m.step(t, 1)
	test.Equate(t, m.mc.PC.Address(), 0x206)

	m.step(t, 1)
	test.Equate(t, m.mc.PC.Address(), 0x20a)
	test.Equate(t, m.mc.Stack.Pointer(), 1)

	// RET returns to the instruction after the CALL
	m.step(t, 1)
	test.Equate(t, m.mc.PC.Address(), 0x208)
	test.Equate(t, m.mc.Stack.Pointer(), 0)
}

func TestSkips(t *testing.T) {
	// SE V0, 0x00 skips the next instruction when V0 is zero
	m := newMachine(t, nil, 0x30, 0x00)
	m.step(t, 1)
	test.Equate(t, m.mc.PC.Address(), memory.ProgramOrigin+4)

	// SE V0, 0x01 does not skip
	m = newMachine(t, nil, 0x30, 0x01)
	m.step(t, 1)
	test.Equate(t, m.mc.PC.Address(), memory.ProgramOrigin+2)

	// SNE V0, 0x01 skips
	m = newMachine(t, nil, 0x40, 0x01)
	m.step(t, 1)
	test.Equate(t, m.mc.PC.Address(), memory.ProgramOrigin+4)

	// SE V0, V1 skips when registers are equal
	m = newMachine(t, nil, 0x50, 0x10)
	m.step(t, 1)
	test.Equate(t, m.mc.PC.Address(), memory.ProgramOrigin+4)

	// SNE V0, V1 does not skip when registers are equal
	m = newMachine(t, nil, 0x90, 0x10)
	m.step(t, 1)
	test.Equate(t, m.mc.PC.Address(), memory.ProgramOrigin+2)
}

func TestArithmeticCarry(t *testing.T) {
	// V0 = 0xff; V1 = 0x01; V0 += V1 wraps to 0x00 with VF set
	m := newMachine(t, nil,
		0x60, 0xff, // LD V0, 0xff
		0x61, 0x01, // LD V1, 0x01
		0x80, 0x14, // ADD V0, V1
	)
	m.step(t, 3)
	test.Equate(t, m.mc.V[0].Value(), 0x00)
	test.Equate(t, m.mc.V[0xf].Value(), 0x01)

	// no carry leaves VF at zero
	m = newMachine(t, nil,
		0x60, 0x01, // LD V0, 0x01
		0x61, 0x01, // LD V1, 0x01
		0x6f, 0x01, // LD VF, 0x01 (to prove it is reset)
		0x80, 0x14, // ADD V0, V1
	)
	m.step(t, 4)
	test.Equate(t, m.mc.V[0].Value(), 0x02)
	test.Equate(t, m.mc.V[0xf].Value(), 0x00)
}

func TestSubtractionBorrow(t *testing.T) {
	// V0 = 0x02 - 0x03 wraps to 0xff; VF cleared (borrow)
	m := newMachine(t, nil,
		0x60, 0x02, // LD V0, 0x02
		0x61, 0x03, // LD V1, 0x03
		0x80, 0x15, // SUB V0, V1
	)
	m.step(t, 3)
	test.Equate(t, m.mc.V[0].Value(), 0xff)
	test.Equate(t, m.mc.V[0xf].Value(), 0x00)

	// SUBN: V0 = V1 - V0; no borrow so VF set
	m = newMachine(t, nil,
		0x60, 0x02, // LD V0, 0x02
		0x61, 0x03, // LD V1, 0x03
		0x80, 0x17, // SUBN V0, V1
	)
	m.step(t, 3)
	test.Equate(t, m.mc.V[0].Value(), 0x01)
	test.Equate(t, m.mc.V[0xf].Value(), 0x01)
}

func TestShiftQuirk(t *testing.T) {
	// quirk off: SHR V0 {, V1} shifts a copy of V1
	m := newMachine(t, nil,
		0x60, 0x00, // LD V0, 0x00
		0x61, 0x03, // LD V1, 0x03
		0x80, 0x16, // SHR V0 {, V1}
	)
	m.step(t, 3)
	test.Equate(t, m.mc.V[0].Value(), 0x01)
	test.Equate(t, m.mc.V[1].Value(), 0x03)
	test.Equate(t, m.mc.V[0xf].Value(), 0x01)

	// quirk on: V0 is shifted in place and V1 ignored
	m = newMachine(t, func(q *quirks.Quirks) { q.Shift = true },
		0x60, 0x02, // LD V0, 0x02
		0x61, 0x03, // LD V1, 0x03
		0x80, 0x16, // SHR V0 {, V1}
	)
	m.step(t, 3)
	test.Equate(t, m.mc.V[0].Value(), 0x01)
	test.Equate(t, m.mc.V[0xf].Value(), 0x00)
}

func TestResetFlagQuirk(t *testing.T) {
	// quirk on (CHIP8 preset): AND resets VF
	m := newMachine(t, nil,
		0x6f, 0x01, // LD VF, 0x01
		0x60, 0xff, // LD V0, 0xff
		0x80, 0x12, // AND V0, V1
	)
	m.step(t, 3)
	test.Equate(t, m.mc.V[0xf].Value(), 0x00)

	// quirk off: VF untouched
	m = newMachine(t, func(q *quirks.Quirks) { q.ResetFlag = false },
		0x6f, 0x01, // LD VF, 0x01
		0x60, 0xff, // LD V0, 0xff
		0x80, 0x12, // AND V0, V1
	)
	m.step(t, 3)
	test.Equate(t, m.mc.V[0xf].Value(), 0x01)
}

func TestJumpQuirk(t *testing.T) {
	// quirk off: JP V0, 0x300 jumps to 0x300 + V0
	m := newMachine(t, nil,
		0x60, 0x04, // LD V0, 0x04
		0x61, 0x08, // LD V1, 0x08
		0xb3, 0x00, // JP V0, 0x300
	)
	m.step(t, 3)
	test.Equate(t, m.mc.PC.Address(), 0x304)

	// quirk on: the register is taken from the high nibble of the address;
	// 0xb3 means V3
	m = newMachine(t, func(q *quirks.Quirks) { q.Jump = true },
		0x63, 0x08, // LD V3, 0x08
		0xb3, 0x00, // JP V3, 0x300
	)
	m.step(t, 2)
	test.Equate(t, m.mc.PC.Address(), 0x308)
}

func TestLoadStoreQuirk(t *testing.T) {
	// quirk off (CHIP8 preset): Fx55 leaves I incremented by x+1
	m := newMachine(t, nil,
		0x60, 0xaa, // LD V0, 0xaa
		0x61, 0xbb, // LD V1, 0xbb
		0xa3, 0x00, // LD I, 0x300
		0xf1, 0x55, // LD [I], V1
	)
	m.step(t, 4)
	test.Equate(t, m.mc.I.Address(), 0x302)
	v, _ := m.mem.Read(0x300)
	test.Equate(t, v, 0xaa)
	v, _ = m.mem.Read(0x301)
	test.Equate(t, v, 0xbb)

	// quirk on: I unchanged
	m = newMachine(t, func(q *quirks.Quirks) { q.LoadStore = true },
		0x60, 0xaa, // LD V0, 0xaa
		0x61, 0xbb, // LD V1, 0xbb
		0xa3, 0x00, // LD I, 0x300
		0xf1, 0x55, // LD [I], V1
	)
	m.step(t, 4)
	test.Equate(t, m.mc.I.Address(), 0x300)
	v, _ = m.mem.Read(0x301)
	test.Equate(t, v, 0xbb)
}

func TestStoreLoadRoundTrip(t *testing.T) {
	for _, loadStore := range []bool{false, true} {
		m := newMachine(t, func(q *quirks.Quirks) { q.LoadStore = loadStore },
			0x60, 0x11, // LD V0, 0x11
			0x61, 0x22, // LD V1, 0x22
			0x62, 0x33, // LD V2, 0x33
			0xa3, 0x00, // LD I, 0x300
			0xf2, 0x55, // LD [I], V2
			0x60, 0x00, // LD V0, 0x00
			0x61, 0x00, // LD V1, 0x00
			0x62, 0x00, // LD V2, 0x00
			0xa3, 0x00, // LD I, 0x300
			0xf2, 0x65, // LD V2, [I]
		)
		m.step(t, 10)
		test.Equate(t, m.mc.V[0].Value(), 0x11)
		test.Equate(t, m.mc.V[1].Value(), 0x22)
		test.Equate(t, m.mc.V[2].Value(), 0x33)

		if loadStore {
			test.Equate(t, m.mc.I.Address(), 0x300)
		} else {
			test.Equate(t, m.mc.I.Address(), 0x303)
		}
	}
}

func TestDrawCollision(t *testing.T) {
	// draw the glyph for zero twice at the same coordinates. the second
	// draw XORs every pixel off and reports the collision through VF
	m := newMachine(t, nil,
		0x60, 0x00, // LD V0, 0x00
		0xf0, 0x29, // LD F, V0
		0xd0, 0x05, // DRW V0, V0, 0x5
		0xd0, 0x05, // DRW V0, V0, 0x5
	)
	m.step(t, 3)
	test.Equate(t, m.mc.V[0xf].Value(), 0x00)
	test.Equate(t, m.vid.Pixel(0, 0), true)

	m.step(t, 1)
	test.Equate(t, m.mc.V[0xf].Value(), 0x01)
	test.Equate(t, m.vid.Pixel(0, 0), false)
}

func TestTimers(t *testing.T) {
	m := newMachine(t, nil,
		0x60, 0x10, // LD V0, 0x10
		0xf0, 0x15, // LD DT, V0
		0xf0, 0x18, // LD ST, V0
		0xf1, 0x07, // LD V1, DT
	)
	m.step(t, 3)
	test.Equate(t, m.tmr.Delay(), 0x10)
	test.Equate(t, m.tmr.SoundActive(), true)

	// CPU cycles never decrement the timers; any number of cycles in a
	// 60Hz window leaves them untouched
	m.step(t, 1)
	test.Equate(t, m.tmr.Delay(), 0x10)
	test.Equate(t, m.mc.V[1].Value(), 0x10)
}

func TestWaitKey(t *testing.T) {
	m := newMachine(t, nil, 0xf5, 0x0a) // LD V5, K

	// no key pressed. the PC does not advance past the instruction no
	// matter how many cycles run
	m.step(t, 3)
	test.Equate(t, m.mc.PC.Address(), memory.ProgramOrigin)

	// pressing a key is an up-to-down transition. the wait is satisfied
	// and the key recorded in V5
	m.key.SetKey(0x0b, true)
	m.step(t, 1)
	test.Equate(t, m.mc.PC.Address(), memory.ProgramOrigin+2)
	test.Equate(t, m.mc.V[5].Value(), 0x0b)
}

func TestWaitKeyHeld(t *testing.T) {
	// two wait instructions in succession. the key satisfying the first
	// wait is still held during the second; it must not satisfy it
	m := newMachine(t, nil,
		0xf5, 0x0a, // LD V5, K
		0xf6, 0x0a, // LD V6, K
	)

	m.key.SetKey(0x0b, true)
	m.step(t, 1)
	test.Equate(t, m.mc.PC.Address(), memory.ProgramOrigin+2)

	// the held key is latched; no new transition
	m.step(t, 2)
	test.Equate(t, m.mc.PC.Address(), memory.ProgramOrigin+2)

	// release and press a different key
	m.key.SetKey(0x0b, false)
	m.step(t, 1)
	m.key.SetKey(0x03, true)
	m.step(t, 1)
	test.Equate(t, m.mc.PC.Address(), memory.ProgramOrigin+4)
	test.Equate(t, m.mc.V[6].Value(), 0x03)
}

func TestSkipKey(t *testing.T) {
	m := newMachine(t, nil,
		0x60, 0x0c, // LD V0, 0x0c
		0xe0, 0x9e, // SKP V0
	)
	m.key.SetKey(0x0c, true)
	m.step(t, 2)
	test.Equate(t, m.mc.PC.Address(), memory.ProgramOrigin+6)

	m = newMachine(t, nil,
		0x60, 0x0c, // LD V0, 0x0c
		0xe0, 0xa1, // SKNP V0
	)
	m.step(t, 2)
	test.Equate(t, m.mc.PC.Address(), memory.ProgramOrigin+6)
}

func TestBCD(t *testing.T) {
	m := newMachine(t, nil,
		0x60, 0x9f, // LD V0, 0x9f (159)
		0xa3, 0x00, // LD I, 0x300
		0xf0, 0x33, // LD B, V0
	)
	m.step(t, 3)
	v, _ := m.mem.Read(0x300)
	test.Equate(t, v, 1)
	v, _ = m.mem.Read(0x301)
	test.Equate(t, v, 5)
	v, _ = m.mem.Read(0x302)
	test.Equate(t, v, 9)
	test.Equate(t, m.mc.I.Address(), 0x300)
}

func TestGlyphAndIndex(t *testing.T) {
	m := newMachine(t, nil,
		0x60, 0x0a, // LD V0, 0x0a
		0xf0, 0x29, // LD F, V0
		0xf0, 0x1e, // ADD I, V0
	)
	m.step(t, 2)
	test.Equate(t, m.mc.I.Address(), m.mem.GlyphAddress(0x0a))

	m.step(t, 1)
	test.Equate(t, m.mc.I.Address(), m.mem.GlyphAddress(0x0a)+0x0a)
}

func TestRandomInstruction(t *testing.T) {
	m := newMachine(t, nil,
		0xc0, 0x0f, // RND V0, 0x0f
	)
	m.mc.Rand.ZeroSeed = true
	m.step(t, 1)

	// the mask limits the random value to the lower nibble
	test.Equate(t, m.mc.V[0].Value()&0xf0, 0x00)
}

func TestInvalidOpcode(t *testing.T) {
	m := newMachine(t, nil, 0x80, 0x08) // no such 8xy8 instruction

	err := m.mc.Cycle()
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, cpu.InvalidOpcode), true)

	// the failed cycle is still recorded
	test.Equate(t, m.mc.LastResult.Opcode, 0x8008)
	test.Equate(t, m.mc.LastResult.Decoded, false)
}

func TestMemoryFault(t *testing.T) {
	// jump beyond the end of memory
	m := newMachine(t, nil, 0x1f, 0xff) // JP 0xfff

	m.step(t, 1)
	err := m.mc.Cycle()
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Has(err, memory.MemoryFault), true)
}

func TestStackFaults(t *testing.T) {
	// RET with an empty stack
	m := newMachine(t, nil, 0x00, 0xee)
	err := m.mc.Cycle()
	test.ExpectedFailure(t, err)

	// recursive CALL overflows the stack after sixteen pushes
	m = newMachine(t, nil, 0x22, 0x00) // 0x200: CALL 0x200
	for i := 0; i < 16; i++ {
		m.step(t, 1)
	}
	err = m.mc.Cycle()
	test.ExpectedFailure(t, err)
}

func TestDisassembly(t *testing.T) {
	m := newMachine(t, nil, 0x60, 0x10)
	m.step(t, 1)
	test.Equate(t, m.mc.LastResult.String(), "0x0200: 0x6010 LD V0, 0x10")
}

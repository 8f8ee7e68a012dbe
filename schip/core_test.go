package schip

import (
	"bytes"
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"

	"github.com/hexpad/superchip/common"
)

func TestLoadROM(t *testing.T) {
	m := testMachine()
	assert.NoError(t, m.LoadROM([]byte{0x12, 0x00}))
	assert.Equal(t, uint8(0x12), m.mem[ProgramStart])
	assert.Equal(t, uint8(0x00), m.mem[ProgramStart+1])
}

func TestLoadROMTooLarge(t *testing.T) {
	m := testMachine()

	limit := MemorySize - ProgramStart
	assert.NoError(t, m.LoadROM(make([]byte, limit)))

	err := m.LoadROM(make([]byte, limit+1))
	romErr, ok := err.(ROMTooLargeError)
	assert.True(t, ok)
	assert.Equal(t, limit+1, romErr.Size)
}

func TestStackOverflow(t *testing.T) {
	m := testMachine()
	assert.NoError(t, m.LoadROM([]byte{0x22, 0x00})) // call $200

	for n := 0; n < StackDepth; n++ {
		assert.NoError(t, m.StepOp())
	}
	err := m.StepOp()
	faultErr, ok := err.(StackOverflowError)
	assert.True(t, ok)
	assert.Equal(t, uint16(ProgramStart), faultErr.PC)
}

func TestStackUnderflow(t *testing.T) {
	m := testMachine()
	assert.NoError(t, m.LoadROM([]byte{0x00, 0xEE})) // ret

	err := m.StepOp()
	faultErr, ok := err.(StackUnderflowError)
	assert.True(t, ok)
	assert.Equal(t, uint16(ProgramStart), faultErr.PC)
}

func TestUnknownOpcode(t *testing.T) {
	m := testMachine()
	assert.NoError(t, m.LoadROM([]byte{0x51, 0x21})) // 5xy1 is not a thing

	err := m.StepOp()
	opErr, ok := err.(UnknownOpcodeError)
	assert.True(t, ok)
	assert.Equal(t, uint16(0x5121), opErr.Word)
	assert.Equal(t, uint16(ProgramStart), opErr.PC)

	// A failed fetch leaves PC on the faulting instruction.
	assert.Equal(t, uint16(ProgramStart), m.pc)
}

func TestMemoryFaults(t *testing.T) {
	m := testMachine()
	assert.NoError(t, m.LoadROM([]byte{0xF3, 0x33})) // bcd v3
	m.i = MemorySize - 2

	err := m.StepOp()
	memErr, ok := err.(MemoryError)
	assert.True(t, ok)
	assert.Equal(t, uint32(MemorySize), memErr.Addr)
	assert.Equal(t, uint16(ProgramStart), memErr.PC)

	// Fetch past the end of memory faults too.
	m = testMachine()
	m.pc = MemorySize - 1
	_, ok = m.StepOp().(MemoryError)
	assert.True(t, ok)
}

func TestExit(t *testing.T) {
	m := testMachine()
	assert.NoError(t, m.LoadROM([]byte{0x00, 0xFD})) // exit

	err := m.StepOp()
	assert.True(t, errors.Is(err, ErrExited))
	assert.Equal(t, uint16(ProgramStart), m.pc)
}

func TestFrameBudget(t *testing.T) {
	m := newMachine(Config{Quirks: NewQuirks(), OpsPerFrame: 3, Seed: 1})

	// A run of add v1, 1 closed by a jump back to the start.
	rom := make([]byte, 0, 32)
	for n := 0; n < 12; n++ {
		rom = append(rom, 0x71, 0x01)
	}
	rom = append(rom, 0x12, 0x00)
	assert.NoError(t, m.LoadROM(rom))

	assert.NoError(t, m.Frame())
	assert.Equal(t, uint8(3), m.v[1])

	assert.NoError(t, m.Frame())
	assert.Equal(t, uint8(6), m.v[1])
}

func TestFrameTimers(t *testing.T) {
	m := testMachine()
	assert.NoError(t, m.LoadROM([]byte{0x12, 0x00})) // spin
	m.delay = 3
	m.sound = 2

	for n := 0; n < 5; n++ {
		assert.NoError(t, m.Frame())
	}

	// Timers count down to zero and stay there.
	assert.Equal(t, uint8(0), m.delay)
	assert.Equal(t, uint8(0), m.sound)
	assert.False(t, m.SoundActive())
}

func TestFrameKeyWait(t *testing.T) {
	m := newMachine(Config{Quirks: NewQuirks(), OpsPerFrame: 2, Seed: 1})
	assert.NoError(t, m.LoadROM([]byte{
		0xF3, 0x0A, // ld v3, k
		0x12, 0x02, // spin
	}))

	// The wait holds PC in place across frames.
	for n := 0; n < 4; n++ {
		assert.NoError(t, m.Frame())
		assert.Equal(t, uint16(ProgramStart), m.pc)
	}
	assert.True(t, m.waiting)

	m.SetKey(0xA, true)
	assert.NoError(t, m.Frame())
	assert.False(t, m.waiting)
	assert.Equal(t, uint8(0xA), m.v[3])
	assert.Equal(t, uint16(ProgramStart+2), m.pc)
}

func TestFrameKeyWaitNeedsEdge(t *testing.T) {
	m := newMachine(Config{Quirks: NewQuirks(), OpsPerFrame: 1, Seed: 1})
	assert.NoError(t, m.LoadROM([]byte{
		0xF3, 0x0A,
		0x12, 0x02,
	}))

	// A key already held when the wait begins does not satisfy it.
	m.SetKey(0x5, true)
	assert.NoError(t, m.Frame())
	assert.NoError(t, m.Frame())
	assert.True(t, m.waiting)

	// Releasing and pressing again produces the edge.
	m.SetKey(0x5, false)
	assert.NoError(t, m.Frame())
	m.SetKey(0x5, true)
	assert.NoError(t, m.Frame())
	assert.False(t, m.waiting)
	assert.Equal(t, uint8(0x5), m.v[3])
}

func TestBreakpoint(t *testing.T) {
	m := testMachine()
	assert.NoError(t, m.LoadROM([]byte{
		0x61, 0x01, // ld v1, 0x01
		0x62, 0x02, // ld v2, 0x02
		0x12, 0x04, // spin
	}))
	m.AddBreakpoint(ProgramStart + 2)

	assert.NoError(t, m.Frame())
	assert.True(t, m.debug)
	assert.Equal(t, uint16(ProgramStart+2), m.pc)
	assert.Equal(t, uint8(1), m.v[1])
	assert.Equal(t, uint8(0), m.v[2])

	// Debug mode stops the instruction budget but frames still run.
	assert.NoError(t, m.Frame())
	assert.Equal(t, uint8(0), m.v[2])

	m.debug = false
	assert.NoError(t, m.Frame())
	assert.Equal(t, uint8(2), m.v[2])
}

type countingDevice struct {
	ticks int
}

func (d *countingDevice) Tick(common.Machine) { d.ticks++ }
func (d *countingDevice) Cleanup()            {}

func TestFrameTicksDevices(t *testing.T) {
	m := testMachine()
	assert.NoError(t, m.LoadROM([]byte{0xF3, 0x0A})) // wait forever

	dev := new(countingDevice)
	m.AddDevice(dev)
	assert.Equal(t, 1, len(m.Devices()))

	// Devices tick every frame, waiting or not.
	for n := 0; n < 3; n++ {
		assert.NoError(t, m.Frame())
	}
	assert.Equal(t, 3, dev.ticks)
	assert.True(t, m.waiting)
}

func TestRegisterAccess(t *testing.T) {
	m := testMachine()
	m.WriteReg(3, 0x42)
	assert.Equal(t, uint8(0x42), m.ReadReg(3))

	// Register numbers wrap into the 16-register file.
	m.WriteReg(0x13, 0x99)
	assert.Equal(t, uint8(0x99), m.ReadReg(3))
}

func TestFontsInstalled(t *testing.T) {
	m := testMachine()

	// Glyph for zero: classic 0xF0 0x90 0x90 0x90 0xF0.
	assert.Equal(t, uint8(0xF0), m.mem[fontBase])
	assert.Equal(t, uint8(0x90), m.mem[fontBase+1])

	// The big font lives above the classic one.
	assert.True(t, bytes.Equal(font[:], m.mem[fontBase:fontBase+len(font)]))
	assert.True(t, bytes.Equal(highFont[:], m.mem[highFontBase:highFontBase+len(highFont)]))
}

package common

import "bufio"

// Machine is the generic interface to the interpreter core, used by the
// frontend hardware to abstract over it.
type Machine interface {
	Memory() []byte
	ReadReg(r uint8) uint8
	WriteReg(r uint8, val uint8)
	PC() uint16
	Index() uint16

	// LoadROM copies a ROM image into memory at the program start address.
	LoadROM(rom []byte) error

	// SetKey records the held state of one of the 16 keypad keys. Called
	// only by the input device.
	SetKey(key uint8, down bool)

	// Resolution is the current display size in pixels.
	Resolution() (int, int)
	Pixel(x, y int) bool

	// Redrawn reports whether the display changed since the last call,
	// clearing the flag.
	Redrawn() bool

	// SoundActive reports whether the sound timer is non-zero.
	SoundActive() bool

	// Frame runs one 60Hz frame: a batch of instructions plus one timer
	// decrement. StepOp runs a single instruction.
	Frame() error
	StepOp() error

	AddDevice(Device)
	Devices() []Device
	Debugging() *bool
	AddBreakpoint(at uint16)
	Disassemble()
	DisassembleOp(at uint16) uint16
	DebugPrompt()
	Exit()
}

// Device is the interface to all frontend hardware. Tick is called once per
// frame by the run loop.
type Device interface {
	Tick(Machine)
	Cleanup()
}

// InputReader is shared by the inputs, since os.Stdin is global.
var InputReader *bufio.Reader

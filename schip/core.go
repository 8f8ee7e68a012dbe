package schip

import (
	"math/rand"
	"os"
	"time"

	"github.com/hexpad/superchip/common"
)

const (
	// MemorySize is the byte-addressable memory space.
	MemorySize = 4096

	// ProgramStart is where ROM images are loaded and where PC starts.
	// Everything below is interpreter territory (fonts).
	ProgramStart = 0x200

	// StackDepth is the maximum call depth.
	StackDepth = 16
)

type machine struct {
	v     [16]uint8
	i     uint16
	pc    uint16
	stack []uint16
	delay uint8
	sound uint8

	// HP48 RPL flag registers, outside main memory. They survive a machine
	// reset within a session.
	rpl [8]uint8

	keys     [16]bool
	prevKeys [16]bool

	// The two run states: running, and waiting for a key-press edge after
	// Fx0A. There is no halted state; only an error ends the run loop.
	waiting bool
	waitReg uint8

	quirks      Quirks
	opsPerFrame int

	debug       bool
	breakpoints []uint16
	devices     []common.Device
	rng         *rand.Rand

	display *Display
	mem     [MemorySize]byte
}

// New returns a freshly created SUPER-CHIP machine with the font data
// installed and PC at the program start address.
func New(cfg Config) common.Machine {
	return newMachine(cfg)
}

func newMachine(cfg Config) *machine {
	m := new(machine)
	m.pc = ProgramStart
	m.stack = make([]uint16, 0, StackDepth)
	m.quirks = cfg.Quirks
	m.opsPerFrame = cfg.OpsPerFrame
	if m.opsPerFrame <= 0 {
		m.opsPerFrame = DefaultOpsPerFrame
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m.rng = rand.New(rand.NewSource(seed))

	m.display = NewDisplay(cfg.HighRes)

	copy(m.mem[fontBase:], font[:])
	copy(m.mem[highFontBase:], highFont[:])
	return m
}

// Implement the Machine interface.
func (m *machine) Memory() []byte {
	return m.mem[0:MemorySize]
}
func (m *machine) ReadReg(r uint8) uint8 {
	return m.v[r&0xF]
}
func (m *machine) WriteReg(r uint8, val uint8) {
	m.v[r&0xF] = val
}
func (m *machine) PC() uint16 {
	return m.pc
}
func (m *machine) Index() uint16 {
	return m.i
}
func (m *machine) SetKey(key uint8, down bool) {
	m.keys[key&0xF] = down
}
func (m *machine) Resolution() (int, int) {
	return m.display.Size()
}
func (m *machine) Pixel(x, y int) bool {
	return m.display.Pixel(x, y)
}
func (m *machine) Redrawn() bool {
	return m.display.TakeDirty()
}
func (m *machine) SoundActive() bool {
	return m.sound > 0
}
func (m *machine) AddDevice(dev common.Device) {
	m.devices = append(m.devices, dev)
}
func (m *machine) Devices() []common.Device {
	return m.devices
}
func (m *machine) Debugging() *bool {
	return &m.debug
}
func (m *machine) AddBreakpoint(at uint16) {
	m.breakpoints = append(m.breakpoints, at)
}
func (m *machine) Disassemble() {
	disasmROM(m.mem[:])
}
func (m *machine) DisassembleOp(at uint16) uint16 {
	if int(at)+1 >= MemorySize {
		return 2
	}
	word := uint16(m.mem[at])<<8 | uint16(m.mem[at+1])
	return disasmOp(at, word)
}
func (m *machine) DebugPrompt() {
	debugPrompt(m.pc)
}
func (m *machine) Exit() {
	os.Exit(0)
}

// LoadROM copies a ROM image into memory at the program start address. An
// image larger than the remaining memory is rejected.
func (m *machine) LoadROM(rom []byte) error {
	if len(rom) > MemorySize-ProgramStart {
		return ROMTooLargeError{Size: len(rom)}
	}
	copy(m.mem[ProgramStart:], rom)
	return nil
}

// Frame runs one 60Hz frame: device ticks, the instruction budget, then one
// timer decrement. Timers tick and devices run even while waiting for a key,
// so redraw and tone keep their cadence during the wait.
func (m *machine) Frame() error {
	for _, dev := range m.devices {
		dev.Tick(m)
	}

	if m.waiting {
		if key, ok := m.pressedEdge(); ok {
			m.v[m.waitReg] = key
			m.pc += 2
			m.waiting = false
		}
	}

	for n := 0; n < m.opsPerFrame && !m.waiting && !m.debug; n++ {
		if err := m.StepOp(); err != nil {
			return err
		}
	}

	if m.delay > 0 {
		m.delay--
	}
	if m.sound > 0 {
		m.sound--
	}

	m.prevKeys = m.keys
	return nil
}

// pressedEdge finds a key that went from up to down since the last frame.
func (m *machine) pressedEdge() (uint8, bool) {
	for k := uint8(0); k < 16; k++ {
		if m.keys[k] && !m.prevKeys[k] {
			return k, true
		}
	}
	return 0, false
}

// StepOp fetches, decodes and executes a single instruction. While waiting
// for a key it does nothing; the wait is resolved by Frame.
func (m *machine) StepOp() error {
	if m.waiting {
		return nil
	}

	opPC := m.pc
	if int(opPC)+1 >= MemorySize {
		return MemoryError{Addr: uint32(opPC), PC: opPC}
	}
	word := uint16(m.mem[opPC])<<8 | uint16(m.mem[opPC+1])

	op, err := Decode(word)
	if err != nil {
		if ue, ok := err.(UnknownOpcodeError); ok {
			ue.PC = opPC
			return ue
		}
		return err
	}

	m.pc += 2
	if err := m.exec(op, opPC); err != nil {
		return err
	}

	for _, b := range m.breakpoints {
		if b == m.pc {
			m.debug = true
		}
	}
	return nil
}

func (m *machine) push(v uint16, opPC uint16) error {
	if len(m.stack) >= StackDepth {
		return StackOverflowError{PC: opPC}
	}
	m.stack = append(m.stack, v)
	return nil
}

func (m *machine) pop(opPC uint16) (uint16, error) {
	if len(m.stack) == 0 {
		return 0, StackUnderflowError{PC: opPC}
	}
	v := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return v, nil
}

// checkRange validates an I-relative memory access of n bytes.
func (m *machine) checkRange(addr uint16, n int, opPC uint16) error {
	if int(addr)+n > MemorySize {
		return MemoryError{Addr: uint32(addr) + uint32(n) - 1, PC: opPC}
	}
	return nil
}

package main

import (
	"os"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/hexpad/superchip/common"
)

// Keypad translates host keyboard events into the 16-key hexadecimal keypad
// state. The classic layout maps the left-hand block of the keyboard onto
// the 4x4 pad:
//
//	1 2 3 4        1 2 3 C
//	q w e r   ->   4 5 6 D
//	a s d f        7 8 9 E
//	z x c v        A 0 B F
type Keypad struct{}

var keypadCodes = map[sdl.Keycode]uint8{
	sdl.K_1: 0x1, sdl.K_2: 0x2, sdl.K_3: 0x3, sdl.K_4: 0xC,
	sdl.K_q: 0x4, sdl.K_w: 0x5, sdl.K_e: 0x6, sdl.K_r: 0xD,
	sdl.K_a: 0x7, sdl.K_s: 0x8, sdl.K_d: 0x9, sdl.K_f: 0xE,
	sdl.K_z: 0xA, sdl.K_x: 0x0, sdl.K_c: 0xB, sdl.K_v: 0xF,
}

func NewKeypad() common.Device {
	return new(Keypad)
}

// Tick drains the SDL event queue, updating the machine's keypad snapshot.
// The machine handles edge detection itself by comparing frames.
func (k *Keypad) Tick(m common.Machine) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch t := event.(type) {
		case *sdl.QuitEvent:
			cleanup(m)
			os.Exit(0)

		case *sdl.KeyboardEvent:
			if t.Repeat != 0 {
				continue
			}
			down := t.Type == sdl.KEYDOWN

			if code, ok := keypadCodes[t.Keysym.Sym]; ok {
				m.SetKey(code, down)
				continue
			}

			// Emulator controls on the F-keys.
			if down && t.Keysym.Sym >= sdl.K_F1 && t.Keysym.Sym <= sdl.K_F4 {
				fKey(m, int(t.Keysym.Sym-sdl.K_F1)+1)
			}
		}
	}
}

func (k *Keypad) Cleanup() {}

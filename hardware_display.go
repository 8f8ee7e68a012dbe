package main

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/hexpad/superchip/common"
	"github.com/hexpad/superchip/schip"
)

// DisplayWindow renders the machine's pixel grid into an SDL window. The
// window is sized for high-resolution mode; in low-resolution mode each
// machine pixel covers four window pixels (before the -scale factor).
type DisplayWindow struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	texW     int
	texH     int
}

func NewDisplayWindow() common.Device {
	dw := new(DisplayWindow)

	runtime.LockOSThread() // Latch this goroutine to the same thread for SDL.
	sdl.Init(sdl.INIT_VIDEO)
	window, err := sdl.CreateWindow("SUPER-CHIP", sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED, int32(schip.HighWidth*displayScale),
		int32(schip.HighHeight*displayScale), sdl.WINDOW_SHOWN)
	if err != nil {
		panic(fmt.Errorf("failed to create window: %v", err))
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		panic(fmt.Errorf("failed to create renderer: %v", err))
	}

	dw.window = window
	dw.renderer = renderer
	return dw
}

func (dw *DisplayWindow) Tick(m common.Machine) {
	w, h := m.Resolution()

	dirty := m.Redrawn()
	if dw.texture == nil || w != dw.texW || h != dw.texH {
		if err := dw.resize(w, h); err != nil {
			panic(err)
		}
		dirty = true
	}
	if !dirty {
		return
	}

	pixels, pitch, err := dw.texture.Lock(nil)
	if err != nil {
		panic(fmt.Errorf("error locking texture: %v", err))
	}
	if pitch != w*4 {
		panic(fmt.Errorf("unexpected pitch: %d", pitch))
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			paint(pixels, w, x, y, m.Pixel(x, y))
		}
	}

	// Fully painted, now flip the texture onto the display.
	dw.texture.Unlock()
	if err := dw.renderer.Clear(); err != nil {
		panic(fmt.Errorf("failed to clear renderer: %v", err))
	}
	winW, winH := dw.window.GetSize()
	err = dw.renderer.Copy(dw.texture, &sdl.Rect{X: 0, Y: 0, W: int32(w), H: int32(h)},
		&sdl.Rect{X: 0, Y: 0, W: winW, H: winH})
	if err != nil {
		panic(fmt.Errorf("failed to copy texture: %v", err))
	}

	dw.renderer.Present()
}

// resize replaces the streaming texture after a resolution-mode switch.
func (dw *DisplayWindow) resize(w, h int) error {
	if dw.texture != nil {
		dw.texture.Destroy()
	}

	texture, err := dw.renderer.CreateTexture(sdl.PIXELFORMAT_ARGB8888,
		sdl.TEXTUREACCESS_STREAMING, int32(w), int32(h))
	if err != nil {
		return fmt.Errorf("failed to create texture: %v", err)
	}

	dw.texture = texture
	dw.texW = w
	dw.texH = h
	return nil
}

func paint(pixels []byte, w, x, y int, on bool) {
	offset := (y*w + x) * 4

	c := byte(0)
	if on {
		c = 0xff
	}
	pixels[offset] = c
	pixels[offset+1] = c
	pixels[offset+2] = c
	pixels[offset+3] = 0xff
}

func (dw *DisplayWindow) Cleanup() {
	if dw.texture != nil {
		dw.texture.Destroy()
	}
	if dw.renderer != nil {
		dw.renderer.Destroy()
	}
	if dw.window != nil {
		dw.window.Destroy()
	}
}

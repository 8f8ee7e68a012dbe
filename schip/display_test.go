package schip

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDisplayModes(t *testing.T) {
	d := NewDisplay(false)
	w, h := d.Size()
	assert.Equal(t, LowWidth, w)
	assert.Equal(t, LowHeight, h)
	assert.False(t, d.HighRes())

	d.SetHighRes(true)
	w, h = d.Size()
	assert.Equal(t, HighWidth, w)
	assert.Equal(t, HighHeight, h)
	assert.True(t, d.HighRes())
}

func TestDisplayResizeClears(t *testing.T) {
	d := NewDisplay(false)
	d.Blit(0, 0, []byte{0xFF}, false, true)
	assert.True(t, d.Pixel(0, 0))

	d.SetHighRes(true)
	assert.False(t, d.Pixel(0, 0))

	// Switching to the mode already in effect clears as well.
	d.Blit(0, 0, []byte{0xFF}, false, true)
	d.SetHighRes(true)
	assert.False(t, d.Pixel(0, 0))
}

func TestDisplayBlitCollision(t *testing.T) {
	d := NewDisplay(false)

	// First draw sets pixels: no collision.
	assert.False(t, d.Blit(4, 5, []byte{0xF0}, false, true))
	assert.True(t, d.Pixel(4, 5))
	assert.True(t, d.Pixel(7, 5))
	assert.False(t, d.Pixel(8, 5))

	// Second identical draw erases them all: collision.
	assert.True(t, d.Blit(4, 5, []byte{0xF0}, false, true))
	assert.False(t, d.Pixel(4, 5))
}

func TestDisplayBlitWraps(t *testing.T) {
	d := NewDisplay(false)

	collision := d.Blit(63, 31, []byte{0xC0}, false, false)
	assert.False(t, collision)
	assert.True(t, d.Pixel(63, 31))
	assert.True(t, d.Pixel(0, 31))

	// Row below the bottom edge wraps to the top.
	d.Clear()
	d.Blit(0, 31, []byte{0x80, 0x80}, false, false)
	assert.True(t, d.Pixel(0, 31))
	assert.True(t, d.Pixel(0, 0))
}

func TestDisplayBlitClips(t *testing.T) {
	d := NewDisplay(false)

	d.Blit(63, 31, []byte{0xC0, 0xC0}, false, true)
	assert.True(t, d.Pixel(63, 31))
	assert.False(t, d.Pixel(0, 31))
	assert.False(t, d.Pixel(0, 0))
	assert.False(t, d.Pixel(63, 0))
}

func TestDisplayBlitStartCoordinatesNormalized(t *testing.T) {
	d := NewDisplay(false)

	// Starting coordinates are taken modulo the buffer size even when
	// clipping.
	d.Blit(64+3, 32+2, []byte{0x80}, false, true)
	assert.True(t, d.Pixel(3, 2))
}

func TestDisplayBlitWide(t *testing.T) {
	d := NewDisplay(true)

	rows := make([]byte, 32)
	for i := range rows {
		rows[i] = 0xFF
	}
	assert.False(t, d.Blit(10, 10, rows, true, true))

	for y := 10; y < 26; y++ {
		for x := 10; x < 26; x++ {
			assert.True(t, d.Pixel(x, y))
		}
	}
	assert.False(t, d.Pixel(26, 10))
	assert.False(t, d.Pixel(10, 26))
}

func TestDisplayScrolls(t *testing.T) {
	d := NewDisplay(false)
	d.Blit(8, 8, []byte{0x80}, false, true)

	d.ScrollDown(2)
	assert.False(t, d.Pixel(8, 8))
	assert.True(t, d.Pixel(8, 10))

	d.ScrollUp(1)
	assert.True(t, d.Pixel(8, 9))

	d.ScrollRight()
	assert.True(t, d.Pixel(12, 9))

	d.ScrollLeft()
	assert.True(t, d.Pixel(8, 9))
	assert.False(t, d.Pixel(12, 9))
}

func TestDisplayScrollEdges(t *testing.T) {
	d := NewDisplay(false)
	d.Blit(0, 31, []byte{0x80}, false, true)

	// Pixels scrolled past the edge are discarded, not wrapped.
	d.ScrollDown(1)
	assert.False(t, d.Pixel(0, 31))
	for y := 0; y < 32; y++ {
		assert.False(t, d.Pixel(0, y))
	}
}

func TestDisplayTakeDirty(t *testing.T) {
	d := NewDisplay(false)

	// Fresh displays are dirty so the first frame paints.
	assert.True(t, d.TakeDirty())
	assert.False(t, d.TakeDirty())

	d.Blit(0, 0, []byte{0x80}, false, true)
	assert.True(t, d.TakeDirty())
	assert.False(t, d.TakeDirty())

	d.Clear()
	assert.True(t, d.TakeDirty())
}

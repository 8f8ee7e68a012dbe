package schip

// Display dimensions for the two SUPER-CHIP resolution modes.
const (
	LowWidth   = 64
	LowHeight  = 32
	HighWidth  = 128
	HighHeight = 64
)

// Display is the monochrome pixel grid. Sprite drawing XOR-composites and
// reports collisions; scrolling and resolution switches are SUPER-CHIP
// extensions. The dirty flag records whether anything changed since the
// renderer last looked.
type Display struct {
	width  int
	height int
	pix    []bool
	dirty  bool
}

// NewDisplay returns a cleared display in the given resolution mode.
func NewDisplay(highRes bool) *Display {
	d := new(Display)
	d.SetHighRes(highRes)
	return d
}

// SetHighRes switches resolution mode. The buffer is reallocated and
// cleared, even when the mode does not change.
func (d *Display) SetHighRes(highRes bool) {
	if highRes {
		d.width, d.height = HighWidth, HighHeight
	} else {
		d.width, d.height = LowWidth, LowHeight
	}
	d.pix = make([]bool, d.width*d.height)
	d.dirty = true
}

// HighRes reports whether the display is in 128x64 mode.
func (d *Display) HighRes() bool {
	return d.width == HighWidth
}

// Size is the current resolution in pixels.
func (d *Display) Size() (int, int) {
	return d.width, d.height
}

// Pixel reports whether the pixel at (x, y) is set. Out-of-range
// coordinates read as unset.
func (d *Display) Pixel(x, y int) bool {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return false
	}
	return d.pix[y*d.width+x]
}

// Clear resets all pixels to unset.
func (d *Display) Clear() {
	for i := range d.pix {
		d.pix[i] = false
	}
	d.dirty = true
}

// TakeDirty reports whether the display changed since the last call, and
// clears the flag.
func (d *Display) TakeDirty() bool {
	dirty := d.dirty
	d.dirty = false
	return dirty
}

// Blit XOR-composites a sprite at (x, y) and reports whether any pixel was
// erased. Each row is 8 pixels from one byte, or 16 pixels from two bytes
// when wide is set. The starting coordinates are normalized to the buffer
// bounds; pixels past the edge wrap around unless clip is set, in which case
// they are discarded.
func (d *Display) Blit(x, y int, sprite []byte, wide, clip bool) bool {
	rowBytes := 1
	if wide {
		rowBytes = 2
	}

	x %= d.width
	y %= d.height

	collision := false
	for row := 0; row*rowBytes < len(sprite); row++ {
		bits := uint16(sprite[row*rowBytes])
		width := 8
		if wide {
			bits = bits<<8 | uint16(sprite[row*rowBytes+1])
			width = 16
		}

		py := y + row
		if py >= d.height {
			if clip {
				break
			}
			py -= d.height
		}

		for col := 0; col < width; col++ {
			if bits&(0x8000>>(16-width+col)) == 0 {
				continue
			}

			px := x + col
			if px >= d.width {
				if clip {
					continue
				}
				px -= d.width
			}

			i := py*d.width + px
			if d.pix[i] {
				collision = true
			}
			d.pix[i] = !d.pix[i]
		}
	}

	d.dirty = true
	return collision
}

// ScrollDown shifts the whole grid down by n pixels, filling the top with
// unset pixels.
func (d *Display) ScrollDown(n int) {
	if n <= 0 {
		return
	}
	copy(d.pix[n*d.width:], d.pix)
	for i := 0; i < n*d.width; i++ {
		d.pix[i] = false
	}
	d.dirty = true
}

// ScrollUp shifts the whole grid up by n pixels, filling the bottom with
// unset pixels.
func (d *Display) ScrollUp(n int) {
	if n <= 0 {
		return
	}
	copy(d.pix, d.pix[n*d.width:])
	for i := (d.height - n) * d.width; i < len(d.pix); i++ {
		d.pix[i] = false
	}
	d.dirty = true
}

// ScrollRight shifts the grid right by 4 pixels.
func (d *Display) ScrollRight() {
	for y := 0; y < d.height; y++ {
		row := d.pix[y*d.width : (y+1)*d.width]
		copy(row[4:], row)
		for x := 0; x < 4; x++ {
			row[x] = false
		}
	}
	d.dirty = true
}

// ScrollLeft shifts the grid left by 4 pixels.
func (d *Display) ScrollLeft() {
	for y := 0; y < d.height; y++ {
		row := d.pix[y*d.width : (y+1)*d.width]
		copy(row, row[4:])
		for x := d.width - 4; x < d.width; x++ {
			row[x] = false
		}
	}
	d.dirty = true
}

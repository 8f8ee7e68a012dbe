package main

import "github.com/hexpad/superchip/common"

var deviceTypes = map[string]func() common.Device{
	"keypad":  func() common.Device { return NewKeypad() },
	"display": func() common.Device { return NewDisplayWindow() },
	"audio":   func() common.Device { return NewBeeper() },
}

var deviceDescriptions = map[string]string{
	"display": "SDL window rendering the pixel grid",
	"keypad":  "16-key hexadecimal keypad on the host keyboard",
	"audio":   "Tone generator driven by the sound timer",
}

package schip

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecodeTable(t *testing.T) {
	tests := []struct {
		name string
		word uint16
		kind OpKind
	}{
		{"cls", 0x00E0, OpCls},
		{"ret", 0x00EE, OpRet},
		{"scroll down", 0x00C4, OpScrollDown},
		{"scroll up", 0x00B2, OpScrollUp},
		{"scroll right", 0x00FB, OpScrollRight},
		{"scroll left", 0x00FC, OpScrollLeft},
		{"exit", 0x00FD, OpExit},
		{"low res", 0x00FE, OpLowRes},
		{"high res", 0x00FF, OpHighRes},
		{"sys", 0x0123, OpSys},
		{"jp", 0x1234, OpJp},
		{"call", 0x2345, OpCall},
		{"se byte", 0x3A42, OpSeByte},
		{"sne byte", 0x4A42, OpSneByte},
		{"se reg", 0x5AB0, OpSeReg},
		{"ld byte", 0x6C77, OpLdByte},
		{"add byte", 0x7C77, OpAddByte},
		{"ld reg", 0x8120, OpLdReg},
		{"or", 0x8121, OpOr},
		{"and", 0x8122, OpAnd},
		{"xor", 0x8123, OpXor},
		{"add reg", 0x8124, OpAddReg},
		{"sub", 0x8125, OpSub},
		{"shr", 0x8126, OpShr},
		{"subn", 0x8127, OpSubn},
		{"shl", 0x812E, OpShl},
		{"sne reg", 0x9AB0, OpSneReg},
		{"ld i", 0xA777, OpLdI},
		{"jp v0", 0xB777, OpJpV0},
		{"rnd", 0xC5FF, OpRnd},
		{"drw", 0xD125, OpDrw},
		{"drw big", 0xD120, OpDrw},
		{"skp", 0xE39E, OpSkp},
		{"sknp", 0xE3A1, OpSknp},
		{"ld reg dt", 0xF207, OpLdRegDT},
		{"ld key", 0xF20A, OpLdKey},
		{"ld dt reg", 0xF215, OpLdDTReg},
		{"ld st reg", 0xF218, OpLdSTReg},
		{"add i", 0xF21E, OpAddI},
		{"ld font", 0xF229, OpLdFont},
		{"ld high font", 0xF230, OpLdHighFont},
		{"bcd", 0xF233, OpBCD},
		{"save regs", 0xF255, OpSaveRegs},
		{"load regs", 0xF265, OpLoadRegs},
		{"save flags", 0xF275, OpSaveFlags},
		{"load flags", 0xF285, OpLoadFlags},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := Decode(tt.word)
			assert.NoError(t, err)
			assert.Equal(t, tt.kind, op.Kind)
			assert.Equal(t, tt.word, op.Word)
		})
	}
}

func TestDecodeOperandFields(t *testing.T) {
	op, err := Decode(0xD12A)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x1), op.X)
	assert.Equal(t, uint8(0x2), op.Y)
	assert.Equal(t, uint8(0xA), op.N)
	assert.Equal(t, uint8(0x2A), op.NN)
	assert.Equal(t, uint16(0x12A), op.NNN)
}

func TestDecodeUnknown(t *testing.T) {
	words := []uint16{0x5AB1, 0x5ABF, 0x8128, 0x812B, 0x9AB5, 0xE300, 0xE3FF,
		0xF200, 0xF24C, 0xF2FF}

	for _, word := range words {
		_, err := Decode(word)
		ue, ok := err.(UnknownOpcodeError)
		assert.True(t, ok)
		assert.Equal(t, word, ue.Word)
	}
}

// Decoding is pure: the same word always produces the same operation.
func TestDecodeDeterministic(t *testing.T) {
	for word := uint16(0); word < 0xFF; word++ {
		a, errA := Decode(word << 8)
		b, errB := Decode(word << 8)
		assert.Equal(t, a, b)
		assert.Equal(t, errA, errB)
	}
}

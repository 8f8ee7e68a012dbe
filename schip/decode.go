package schip

// OpKind identifies one instruction family from the SUPER-CHIP opcode table.
type OpKind int

const (
	OpSys OpKind = iota // 0nnn
	OpCls               // 00E0
	OpRet               // 00EE
	OpScrollDown        // 00Cn
	OpScrollUp          // 00Bn
	OpScrollRight       // 00FB
	OpScrollLeft        // 00FC
	OpExit              // 00FD
	OpLowRes            // 00FE
	OpHighRes           // 00FF
	OpJp                // 1nnn
	OpCall              // 2nnn
	OpSeByte            // 3xnn
	OpSneByte           // 4xnn
	OpSeReg             // 5xy0
	OpLdByte            // 6xnn
	OpAddByte           // 7xnn
	OpLdReg             // 8xy0
	OpOr                // 8xy1
	OpAnd               // 8xy2
	OpXor               // 8xy3
	OpAddReg            // 8xy4
	OpSub               // 8xy5
	OpShr               // 8xy6
	OpSubn              // 8xy7
	OpShl               // 8xyE
	OpSneReg            // 9xy0
	OpLdI               // Annn
	OpJpV0              // Bnnn
	OpRnd               // Cxnn
	OpDrw               // Dxyn, n=0 is the 16x16 big sprite
	OpSkp               // Ex9E
	OpSknp              // ExA1
	OpLdRegDT           // Fx07
	OpLdKey             // Fx0A
	OpLdDTReg           // Fx15
	OpLdSTReg           // Fx18
	OpAddI              // Fx1E
	OpLdFont            // Fx29
	OpLdHighFont        // Fx30
	OpBCD               // Fx33
	OpSaveRegs          // Fx55
	OpLoadRegs          // Fx65
	OpSaveFlags         // Fx75
	OpLoadFlags         // Fx85
)

// Op is a decoded instruction: the family tag plus the operand fields
// extracted from the word. Fields not used by a family are zero.
type Op struct {
	Kind OpKind
	X    uint8  // 4-bit register index
	Y    uint8  // 4-bit register index
	N    uint8  // 4-bit immediate
	NN   uint8  // 8-bit immediate
	NNN  uint16 // 12-bit address
	Word uint16
}

// Decode maps a 16-bit instruction word to its operation. It is pure: the
// same word always decodes identically. Words with no entry in the table
// return an UnknownOpcodeError (with PC zero; the executor fills it in).
func Decode(word uint16) (Op, error) {
	op := Op{
		X:    uint8(word >> 8 & 0xF),
		Y:    uint8(word >> 4 & 0xF),
		N:    uint8(word & 0xF),
		NN:   uint8(word & 0xFF),
		NNN:  word & 0xFFF,
		Word: word,
	}

	switch word >> 12 {
	case 0x0:
		switch {
		case word == 0x00E0:
			op.Kind = OpCls
		case word == 0x00EE:
			op.Kind = OpRet
		case word == 0x00FB:
			op.Kind = OpScrollRight
		case word == 0x00FC:
			op.Kind = OpScrollLeft
		case word == 0x00FD:
			op.Kind = OpExit
		case word == 0x00FE:
			op.Kind = OpLowRes
		case word == 0x00FF:
			op.Kind = OpHighRes
		case word&0xFFF0 == 0x00C0:
			op.Kind = OpScrollDown
		case word&0xFFF0 == 0x00B0:
			op.Kind = OpScrollUp
		default:
			op.Kind = OpSys
		}

	case 0x1:
		op.Kind = OpJp
	case 0x2:
		op.Kind = OpCall
	case 0x3:
		op.Kind = OpSeByte
	case 0x4:
		op.Kind = OpSneByte

	case 0x5:
		if op.N != 0 {
			return Op{}, UnknownOpcodeError{Word: word}
		}
		op.Kind = OpSeReg

	case 0x6:
		op.Kind = OpLdByte
	case 0x7:
		op.Kind = OpAddByte

	case 0x8:
		switch op.N {
		case 0x0:
			op.Kind = OpLdReg
		case 0x1:
			op.Kind = OpOr
		case 0x2:
			op.Kind = OpAnd
		case 0x3:
			op.Kind = OpXor
		case 0x4:
			op.Kind = OpAddReg
		case 0x5:
			op.Kind = OpSub
		case 0x6:
			op.Kind = OpShr
		case 0x7:
			op.Kind = OpSubn
		case 0xE:
			op.Kind = OpShl
		default:
			return Op{}, UnknownOpcodeError{Word: word}
		}

	case 0x9:
		if op.N != 0 {
			return Op{}, UnknownOpcodeError{Word: word}
		}
		op.Kind = OpSneReg

	case 0xA:
		op.Kind = OpLdI
	case 0xB:
		op.Kind = OpJpV0
	case 0xC:
		op.Kind = OpRnd
	case 0xD:
		op.Kind = OpDrw

	case 0xE:
		switch op.NN {
		case 0x9E:
			op.Kind = OpSkp
		case 0xA1:
			op.Kind = OpSknp
		default:
			return Op{}, UnknownOpcodeError{Word: word}
		}

	case 0xF:
		switch op.NN {
		case 0x07:
			op.Kind = OpLdRegDT
		case 0x0A:
			op.Kind = OpLdKey
		case 0x15:
			op.Kind = OpLdDTReg
		case 0x18:
			op.Kind = OpLdSTReg
		case 0x1E:
			op.Kind = OpAddI
		case 0x29:
			op.Kind = OpLdFont
		case 0x30:
			op.Kind = OpLdHighFont
		case 0x33:
			op.Kind = OpBCD
		case 0x55:
			op.Kind = OpSaveRegs
		case 0x65:
			op.Kind = OpLoadRegs
		case 0x75:
			op.Kind = OpSaveFlags
		case 0x85:
			op.Kind = OpLoadFlags
		default:
			return Op{}, UnknownOpcodeError{Word: word}
		}
	}

	return op, nil
}

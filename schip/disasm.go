package schip

import "fmt"

// Disassembler. Takes the loaded memory image and dumps it to stdout.
// The format is:
// ADDR: WORD    disassembly...

func debugPrompt(pc uint16) {
	fmt.Printf("%03x debug> ", pc)
}

// mnemonic renders one instruction word, or ".word" for patterns outside
// the opcode table (ROM data regions decode as anything).
func mnemonic(word uint16) string {
	op, err := Decode(word)
	if err != nil {
		return fmt.Sprintf(".word $%04x", word)
	}

	switch op.Kind {
	case OpSys:
		return fmt.Sprintf("sys $%03x", op.NNN)
	case OpCls:
		return "cls"
	case OpRet:
		return "ret"
	case OpScrollDown:
		return fmt.Sprintf("scd %d", op.N)
	case OpScrollUp:
		return fmt.Sprintf("scu %d", op.N)
	case OpScrollRight:
		return "scr"
	case OpScrollLeft:
		return "scl"
	case OpExit:
		return "exit"
	case OpLowRes:
		return "low"
	case OpHighRes:
		return "high"
	case OpJp:
		return fmt.Sprintf("jp $%03x", op.NNN)
	case OpCall:
		return fmt.Sprintf("call $%03x", op.NNN)
	case OpSeByte:
		return fmt.Sprintf("se v%x, $%02x", op.X, op.NN)
	case OpSneByte:
		return fmt.Sprintf("sne v%x, $%02x", op.X, op.NN)
	case OpSeReg:
		return fmt.Sprintf("se v%x, v%x", op.X, op.Y)
	case OpSneReg:
		return fmt.Sprintf("sne v%x, v%x", op.X, op.Y)
	case OpLdByte:
		return fmt.Sprintf("ld v%x, $%02x", op.X, op.NN)
	case OpAddByte:
		return fmt.Sprintf("add v%x, $%02x", op.X, op.NN)
	case OpLdReg:
		return fmt.Sprintf("ld v%x, v%x", op.X, op.Y)
	case OpOr:
		return fmt.Sprintf("or v%x, v%x", op.X, op.Y)
	case OpAnd:
		return fmt.Sprintf("and v%x, v%x", op.X, op.Y)
	case OpXor:
		return fmt.Sprintf("xor v%x, v%x", op.X, op.Y)
	case OpAddReg:
		return fmt.Sprintf("add v%x, v%x", op.X, op.Y)
	case OpSub:
		return fmt.Sprintf("sub v%x, v%x", op.X, op.Y)
	case OpShr:
		return fmt.Sprintf("shr v%x, v%x", op.X, op.Y)
	case OpSubn:
		return fmt.Sprintf("subn v%x, v%x", op.X, op.Y)
	case OpShl:
		return fmt.Sprintf("shl v%x, v%x", op.X, op.Y)
	case OpLdI:
		return fmt.Sprintf("ld i, $%03x", op.NNN)
	case OpJpV0:
		return fmt.Sprintf("jp v0, $%03x", op.NNN)
	case OpRnd:
		return fmt.Sprintf("rnd v%x, $%02x", op.X, op.NN)
	case OpDrw:
		return fmt.Sprintf("drw v%x, v%x, %d", op.X, op.Y, op.N)
	case OpSkp:
		return fmt.Sprintf("skp v%x", op.X)
	case OpSknp:
		return fmt.Sprintf("sknp v%x", op.X)
	case OpLdRegDT:
		return fmt.Sprintf("ld v%x, dt", op.X)
	case OpLdKey:
		return fmt.Sprintf("ld v%x, k", op.X)
	case OpLdDTReg:
		return fmt.Sprintf("ld dt, v%x", op.X)
	case OpLdSTReg:
		return fmt.Sprintf("ld st, v%x", op.X)
	case OpAddI:
		return fmt.Sprintf("add i, v%x", op.X)
	case OpLdFont:
		return fmt.Sprintf("ld f, v%x", op.X)
	case OpLdHighFont:
		return fmt.Sprintf("ld hf, v%x", op.X)
	case OpBCD:
		return fmt.Sprintf("ld b, v%x", op.X)
	case OpSaveRegs:
		return fmt.Sprintf("ld [i], v%x", op.X)
	case OpLoadRegs:
		return fmt.Sprintf("ld v%x, [i]", op.X)
	case OpSaveFlags:
		return fmt.Sprintf("ld r, v%x", op.X)
	case OpLoadFlags:
		return fmt.Sprintf("ld v%x, r", op.X)
	}

	return fmt.Sprintf(".word $%04x", word)
}

// disasmOp prints a single instruction and returns its size in bytes.
func disasmOp(at uint16, word uint16) uint16 {
	fmt.Printf("%03x: %04x    %s\n", at, word, mnemonic(word))
	return 2
}

// disasmROM dumps the program region of memory to stdout.
func disasmROM(mem []byte) {
	end := len(mem)
	for end >= ProgramStart+2 && mem[end-1] == 0 && mem[end-2] == 0 {
		end -= 2
	}

	for at := ProgramStart; at+1 < end; at += 2 {
		word := uint16(mem[at])<<8 | uint16(mem[at+1])
		disasmOp(uint16(at), word)
	}
}

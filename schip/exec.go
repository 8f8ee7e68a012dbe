package schip

// exec applies a decoded operation to the machine state. opPC is the address
// the instruction was fetched from; PC has already advanced past it. An
// instruction either fully applies its transition or returns an error before
// any mutation, so a halted run never leaves half-applied state behind.
func (m *machine) exec(op Op, opPC uint16) error {
	switch op.Kind {
	case OpSys: // 0nnn - machine code routine, RCA 1802 only
		return SysCallError{Addr: op.NNN, PC: opPC}

	case OpCls: // 00E0
		m.display.Clear()

	case OpRet: // 00EE
		addr, err := m.pop(opPC)
		if err != nil {
			return err
		}
		m.pc = addr

	case OpScrollDown: // 00Cn
		m.display.ScrollDown(int(op.N))
	case OpScrollUp: // 00Bn
		m.display.ScrollUp(int(op.N))
	case OpScrollRight: // 00FB
		m.display.ScrollRight()
	case OpScrollLeft: // 00FC
		m.display.ScrollLeft()

	case OpExit: // 00FD
		m.pc = opPC
		return ErrExited

	case OpLowRes: // 00FE
		m.display.SetHighRes(false)
	case OpHighRes: // 00FF
		m.display.SetHighRes(true)

	case OpJp: // 1nnn
		m.pc = op.NNN

	case OpCall: // 2nnn
		if err := m.push(m.pc, opPC); err != nil {
			return err
		}
		m.pc = op.NNN

	case OpSeByte: // 3xnn
		if m.v[op.X] == op.NN {
			m.pc += 2
		}
	case OpSneByte: // 4xnn
		if m.v[op.X] != op.NN {
			m.pc += 2
		}
	case OpSeReg: // 5xy0
		if m.v[op.X] == m.v[op.Y] {
			m.pc += 2
		}
	case OpSneReg: // 9xy0
		if m.v[op.X] != m.v[op.Y] {
			m.pc += 2
		}

	case OpLdByte: // 6xnn
		m.v[op.X] = op.NN
	case OpAddByte: // 7xnn - no carry flag
		m.v[op.X] += op.NN
	case OpLdReg: // 8xy0
		m.v[op.X] = m.v[op.Y]

	case OpOr: // 8xy1
		m.v[op.X] |= m.v[op.Y]
		if !m.quirks.Logic {
			m.v[0xF] = 0
		}
	case OpAnd: // 8xy2
		m.v[op.X] &= m.v[op.Y]
		if !m.quirks.Logic {
			m.v[0xF] = 0
		}
	case OpXor: // 8xy3
		m.v[op.X] ^= m.v[op.Y]
		if !m.quirks.Logic {
			m.v[0xF] = 0
		}

	case OpAddReg: // 8xy4 - VF=1 on overflow
		res := uint16(m.v[op.X]) + uint16(m.v[op.Y])
		m.v[op.X] = uint8(res)
		m.v[0xF] = uint8(res >> 8)

	case OpSub: // 8xy5 - VF=1 means no borrow
		flag := uint8(0)
		if m.v[op.X] >= m.v[op.Y] {
			flag = 1
		}
		m.v[op.X] -= m.v[op.Y]
		m.v[0xF] = flag

	case OpSubn: // 8xy7 - VF=1 means no borrow
		flag := uint8(0)
		if m.v[op.Y] >= m.v[op.X] {
			flag = 1
		}
		m.v[op.X] = m.v[op.Y] - m.v[op.X]
		m.v[0xF] = flag

	case OpShr: // 8xy6 - VF gets the bit shifted out
		src := op.Y
		if m.quirks.Shift {
			src = op.X
		}
		val := m.v[src]
		m.v[op.X] = val >> 1
		m.v[0xF] = val & 1

	case OpShl: // 8xyE - VF gets the bit shifted out
		src := op.Y
		if m.quirks.Shift {
			src = op.X
		}
		val := m.v[src]
		m.v[op.X] = val << 1
		m.v[0xF] = val >> 7

	case OpLdI: // Annn
		m.i = op.NNN

	case OpJpV0: // Bnnn - offset register is V0, or Vx under the jump quirk
		offset := m.v[0]
		if m.quirks.Jump {
			offset = m.v[op.X]
		}
		m.pc = (op.NNN + uint16(offset)) & 0xFFF

	case OpRnd: // Cxnn
		m.v[op.X] = uint8(m.rng.Intn(256)) & op.NN

	case OpDrw: // Dxyn, Dxy0 is 16x16
		return m.draw(op, opPC)

	case OpSkp: // Ex9E
		if m.keys[m.v[op.X]&0xF] {
			m.pc += 2
		}
	case OpSknp: // ExA1
		if !m.keys[m.v[op.X]&0xF] {
			m.pc += 2
		}

	case OpLdRegDT: // Fx07
		m.v[op.X] = m.delay
	case OpLdDTReg: // Fx15
		m.delay = m.v[op.X]
	case OpLdSTReg: // Fx18
		m.sound = m.v[op.X]

	case OpLdKey: // Fx0A - suspend until a key-press edge
		m.waiting = true
		m.waitReg = op.X
		m.pc = opPC

	case OpAddI: // Fx1E - VF=1 if I leaves the address space
		m.i += uint16(m.v[op.X])
		if m.i >= MemorySize {
			m.v[0xF] = 1
		} else {
			m.v[0xF] = 0
		}

	case OpLdFont: // Fx29
		m.i = fontBase + uint16(m.v[op.X]&0xF)*fontHeight
	case OpLdHighFont: // Fx30
		m.i = highFontBase + uint16(m.v[op.X]&0xF)*highFontHeight

	case OpBCD: // Fx33
		if err := m.checkRange(m.i, 3, opPC); err != nil {
			return err
		}
		m.mem[m.i] = m.v[op.X] / 100
		m.mem[m.i+1] = m.v[op.X] / 10 % 10
		m.mem[m.i+2] = m.v[op.X] % 10

	case OpSaveRegs: // Fx55
		if err := m.checkRange(m.i, int(op.X)+1, opPC); err != nil {
			return err
		}
		copy(m.mem[m.i:], m.v[:op.X+1])
		if !m.quirks.LoadStore {
			m.i += uint16(op.X) + 1
		}

	case OpLoadRegs: // Fx65
		if err := m.checkRange(m.i, int(op.X)+1, opPC); err != nil {
			return err
		}
		copy(m.v[:op.X+1], m.mem[m.i:])
		if !m.quirks.LoadStore {
			m.i += uint16(op.X) + 1
		}

	case OpSaveFlags: // Fx75
		copy(m.rpl[:], m.v[:op.X&7+1])
	case OpLoadFlags: // Fx85
		copy(m.v[:op.X&7+1], m.rpl[:])
	}

	return nil
}

// draw blits a sprite at (Vx, Vy) from memory at I. n=0 draws the 16x16
// SUPER-CHIP sprite. VF reports collision.
func (m *machine) draw(op Op, opPC uint16) error {
	wide := op.N == 0
	size := int(op.N)
	if wide {
		size = 32
	}

	if err := m.checkRange(m.i, size, opPC); err != nil {
		return err
	}
	sprite := m.mem[m.i : int(m.i)+size]

	collision := m.display.Blit(int(m.v[op.X]), int(m.v[op.Y]), sprite, wide, m.quirks.Clip)
	if collision {
		m.v[0xF] = 1
	} else {
		m.v[0xF] = 0
	}
	return nil
}

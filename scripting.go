package main

import (
	"errors"

	lua "github.com/yuin/gopher-lua"

	"github.com/hexpad/superchip/common"
	"github.com/hexpad/superchip/schip"
)

// RunScript executes a Lua automation script against the machine. Scripts
// drive the keypad and frame stepping and inspect machine state, which is
// enough to run test ROMs headless:
//
//	frames(120)
//	press(0xA)
//	frames(1)
//	release(0xA)
//	assert(reg(3) == 0xA)
func RunScript(m common.Machine, file string) error {
	L := lua.NewState()
	defer L.Close()

	L.SetGlobal("press", L.NewFunction(func(L *lua.LState) int {
		m.SetKey(uint8(L.CheckInt(1)), true)
		return 0
	}))

	L.SetGlobal("release", L.NewFunction(func(L *lua.LState) int {
		m.SetKey(uint8(L.CheckInt(1)), false)
		return 0
	}))

	L.SetGlobal("frames", L.NewFunction(func(L *lua.LState) int {
		n := L.CheckInt(1)
		for i := 0; i < n; i++ {
			if err := m.Frame(); err != nil {
				if errors.Is(err, schip.ErrExited) {
					break
				}
				L.RaiseError("frame %d: %v", i, err)
			}
		}
		return 0
	}))

	L.SetGlobal("step", L.NewFunction(func(L *lua.LState) int {
		if err := m.StepOp(); err != nil && !errors.Is(err, schip.ErrExited) {
			L.RaiseError("step: %v", err)
		}
		return 0
	}))

	L.SetGlobal("reg", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(m.ReadReg(uint8(L.CheckInt(1)))))
		return 1
	}))

	L.SetGlobal("setreg", L.NewFunction(func(L *lua.LState) int {
		m.WriteReg(uint8(L.CheckInt(1)), uint8(L.CheckInt(2)))
		return 0
	}))

	L.SetGlobal("peek", L.NewFunction(func(L *lua.LState) int {
		addr := L.CheckInt(1)
		mem := m.Memory()
		if addr < 0 || addr >= len(mem) {
			L.RaiseError("peek: address %03x out of range", addr)
		}
		L.Push(lua.LNumber(mem[addr]))
		return 1
	}))

	L.SetGlobal("pixel", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LBool(m.Pixel(L.CheckInt(1), L.CheckInt(2))))
		return 1
	}))

	L.SetGlobal("pc", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(m.PC()))
		return 1
	}))

	L.SetGlobal("quit", L.NewFunction(func(L *lua.LState) int {
		cleanup(m)
		m.Exit()
		return 0
	}))

	return L.DoFile(file)
}

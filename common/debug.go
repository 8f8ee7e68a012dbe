package common

import (
	"fmt"
	"os"
	"strconv"
)

// DebugCommand captures a self-describing debug command.
type DebugCommand interface {
	Describe() string
	Run(m Machine, args []string)
}

type debugBlob struct {
	desc string
	f    func(Machine, []string)
}

// DebugCommands is a map of command strings to command objects.
var DebugCommands = map[string]DebugCommand{
	"r": newCommand("Dump one or all (r)egisters ('r' vs. 'r <reg>')", cmdRegs),
	"q": newCommand("(Q)uit the emulator", func(Machine, []string) { os.Exit(0) }),

	"c": newCommand("(C)ontinue execution", func(m Machine, s []string) {
		*m.Debugging() = false
	}),

	"s": newCommand("(S)tep forward, run next instruction", func(m Machine, args []string) {
		if err := m.StepOp(); err != nil {
			fmt.Printf("error: %v\n", err)
		}
	}),

	"f": newCommand("Run a whole (f)rame: instruction batch plus timer tick",
		func(m Machine, args []string) {
			if err := m.Frame(); err != nil {
				fmt.Printf("error: %v\n", err)
			}
		}),

	"b": newCommand("Set a new (b)reakpoint at the given (hex) location",
		singleHexArg("No breakpoint location specified (needs hex number)",
			"Error parsing the location", func(m Machine, loc uint16) {
				m.AddBreakpoint(loc)
				fmt.Printf("Breakpoint set at PC = %03x\n", loc)
			})),

	"m": newCommand("Print a value from (m)emory",
		singleHexArg("No memory location specified", "Error parsing location",
			func(m Machine, loc uint16) {
				mem := m.Memory()
				if int(loc) >= len(mem) {
					fmt.Printf("Address %03x out of range\n", loc)
					return
				}
				x := mem[loc]
				fmt.Printf("[%03x] = %02x (%d)\n", loc, x, x)
			})),

	"i": newCommand("Disassemble the (i)nstruction at the given location, or at PC",
		func(m Machine, args []string) {
			at := m.PC()
			if len(args) > 1 {
				x, err := strconv.ParseUint(args[1], 16, 16)
				if err != nil {
					fmt.Printf("Error parsing location: %v\n", err)
					return
				}
				at = uint16(x)
			}
			for i := at; i < at+16; {
				i += m.DisassembleOp(i)
			}
		}),

	"db": newCommand("(D)ump memory to the given file in (b)inary",
		func(m Machine, args []string) {
			if len(args) < 2 {
				fmt.Println("No filename given")
				return
			}

			f, err := os.Create(args[1])
			if err != nil {
				fmt.Printf("Could not open file: %v\n", err)
				return
			}

			f.Write(m.Memory())
			f.Close()
		}),
}

func newCommand(desc string, f func(m Machine, args []string)) DebugCommand {
	d := new(debugBlob)
	d.desc = desc
	d.f = f
	return d
}

func (dbg *debugBlob) Describe() string {
	return dbg.desc
}

func (dbg *debugBlob) Run(m Machine, args []string) {
	dbg.f(m, args)
}

func cmdRegs(m Machine, args []string) {
	if len(args) > 1 {
		for _, name := range args[1:] {
			showNamedReg(m, name)
		}
		return
	}

	for r := uint8(0); r < 16; r++ {
		fmt.Printf("v%-2x %02x (%d)\n", r, m.ReadReg(r), m.ReadReg(r))
	}
	fmt.Printf("i   %03x\n", m.Index())
	fmt.Printf("pc  %03x\n", m.PC())
}

func showNamedReg(m Machine, name string) {
	switch name {
	case "i":
		fmt.Printf("i   %03x\n", m.Index())
	case "pc":
		fmt.Printf("pc  %03x\n", m.PC())
	default:
		if len(name) == 2 && name[0] == 'v' {
			if r, err := strconv.ParseUint(name[1:], 16, 4); err == nil {
				fmt.Printf("v%-2x %02x (%d)\n", r, m.ReadReg(uint8(r)), m.ReadReg(uint8(r)))
				return
			}
		}
		fmt.Printf("%% Unknown register: %s\n", name)
	}
}

func singleHexArg(notSpecifiedMsg, parseErrorMsg string,
	cmd func(m Machine, arg uint16)) func(Machine, []string) {
	return func(m Machine, args []string) {
		if len(args) <= 1 {
			fmt.Println(notSpecifiedMsg)
			return
		}

		var x uint16
		_, err := fmt.Sscanf(args[1], "%x", &x)
		if err != nil {
			fmt.Printf(parseErrorMsg+": %v\n", err)
			return
		}

		cmd(m, x)
	}
}

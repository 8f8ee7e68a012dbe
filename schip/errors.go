package schip

import (
	"errors"
	"fmt"
)

// ErrExited is returned by Frame/StepOp when the program executes the 00FD
// exit instruction. It is a clean shutdown, not a fault.
var ErrExited = errors.New("program exited")

// An UnknownOpcodeError is returned when a fetched instruction word does not
// match any entry in the SUPER-CHIP opcode table.
type UnknownOpcodeError struct {
	Word uint16
	PC   uint16
}

func (e UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode %04X at %03X", e.Word, e.PC)
}

// A MemoryError is returned when an instruction reads, writes or jumps
// outside the valid address range.
type MemoryError struct {
	Addr uint32
	PC   uint16
}

func (e MemoryError) Error() string {
	return fmt.Sprintf("memory access out of bounds: %04X at %03X", e.Addr, e.PC)
}

// A StackOverflowError is returned when a call exceeds the stack depth.
type StackOverflowError struct {
	PC uint16
}

func (e StackOverflowError) Error() string {
	return fmt.Sprintf("stack overflow at %03X", e.PC)
}

// A StackUnderflowError is returned on return with an empty stack.
type StackUnderflowError struct {
	PC uint16
}

func (e StackUnderflowError) Error() string {
	return fmt.Sprintf("stack underflow at %03X", e.PC)
}

// A ROMTooLargeError is returned at load time when the image does not fit
// between the program start address and the end of memory.
type ROMTooLargeError struct {
	Size int
}

func (e ROMTooLargeError) Error() string {
	return fmt.Sprintf("ROM of %d bytes does not fit in %d bytes of program memory",
		e.Size, MemorySize-ProgramStart)
}

// A SysCallError is returned for 0nnn machine-code routine calls, which only
// existed on the original RCA 1802 hardware.
type SysCallError struct {
	Addr uint16
	PC   uint16
}

func (e SysCallError) Error() string {
	return fmt.Sprintf("unimplemented machine code routine call to %03X at %03X", e.Addr, e.PC)
}

package emu

import (
	"errors"
	"fmt"
)

// ErrMaxInstructions is returned when the configured instruction limit is hit.
var ErrMaxInstructions = errors.New("max instructions reached")

// TruncatedInstructionError reports a fetch with fewer than 4 bytes left in
// the memory image.
type TruncatedInstructionError struct {
	PC        uint64
	Remaining uint64
}

func (e *TruncatedInstructionError) Error() string {
	return fmt.Sprintf("truncated instruction at PC=0x%X: %d of 4 bytes available",
		e.PC, e.Remaining)
}

// UnimplementedOpcodeError reports an instruction whose opcode has no
// semantics. It never stops the run.
type UnimplementedOpcodeError struct {
	Opcode uint8
	Word   uint32
	PC     uint64
}

func (e *UnimplementedOpcodeError) Error() string {
	return fmt.Sprintf("unimplemented opcode 0x%02X (word 0x%08X) at PC=0x%X",
		e.Opcode, e.Word, e.PC)
}

// AccessError reports a memory access outside the image.
type AccessError struct {
	Addr uint64
	Size uint64
	Len  uint64
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("access of %d bytes at 0x%X outside memory of %d bytes",
		e.Size, e.Addr, e.Len)
}

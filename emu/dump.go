package emu

import (
	"fmt"
	"io"
	"strings"
)

const regsPerLine = 4

// FormatRegisters renders all registers, four per line, as
// "xNN(name)=0x%016x" entries.
func FormatRegisters(r *RegFile) string {
	var sb strings.Builder

	for i := 0; i < NumRegs; i += regsPerLine {
		for j := i; j < i+regsPerLine; j++ {
			if j > i {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "x%02d(%s)=0x%016x", j, ABINames[j], r.ReadReg(uint8(j)))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// DumpRegisters writes the register dump to the emulator's stdout.
func (e *Emulator) DumpRegisters() error {
	_, err := io.WriteString(e.stdout, FormatRegisters(e.regFile))
	return err
}

// Package emu provides functional RV64 emulation.
package emu

import "fmt"

// NumRegs is the number of general-purpose registers.
const NumRegs = 32

// NominalMemorySize is the memory size the machine advertises to programs
// through the initial stack pointer (128 MiB). It does not depend on the
// length of the loaded image.
const NominalMemorySize uint64 = 128 * 1024 * 1024

// Conventional register indices.
const (
	RegZero uint8 = 0
	RegRA   uint8 = 1
	RegSP   uint8 = 2
	RegGP   uint8 = 3
	RegTP   uint8 = 4
)

// ABINames holds the calling-convention alias of each register, padded to
// four characters for the register dump.
var ABINames = [NumRegs]string{
	"zero", " ra ", " sp ", " gp ", " tp ", " t0 ", " t1 ", " t2 ",
	" s0 ", " s1 ", " a0 ", " a1 ", " a2 ", " a3 ", " a4 ", " a5 ",
	" a6 ", " a7 ", " s2 ", " s3 ", " s4 ", " s5 ", " s6 ", " s7 ",
	" s8 ", " s9 ", " s10", " s11", " t3 ", " t4 ", " t5 ", " t6 ",
}

// RegFile represents the RV64 register file.
// It contains 32 general-purpose registers (x0-x31) and the program
// counter (PC).
type RegFile struct {
	// X holds general-purpose registers x0-x31.
	// X[0] is the zero register which always reads as 0.
	X [NumRegs]uint64

	// PC is the program counter.
	PC uint64
}

// NewRegFile creates a register file in its reset state: every register is
// zero except sp, which holds NominalMemorySize.
func NewRegFile() *RegFile {
	r := &RegFile{}
	r.X[RegSP] = NominalMemorySize
	return r
}

// ReadReg reads a register value. Register 0 always returns 0.
func (r *RegFile) ReadReg(reg uint8) uint64 {
	checkIndex(reg)
	if reg == RegZero {
		return 0
	}
	return r.X[reg]
}

// WriteReg writes a value to a register. Writes to register 0 are discarded.
func (r *RegFile) WriteReg(reg uint8, value uint64) {
	checkIndex(reg)
	if reg == RegZero {
		return
	}
	r.X[reg] = value
}

// Snapshot returns a copy of all register values as observed through ReadReg.
func (r *RegFile) Snapshot() [NumRegs]uint64 {
	var regs [NumRegs]uint64
	for i := range regs {
		regs[i] = r.ReadReg(uint8(i))
	}
	return regs
}

// checkIndex panics on a register index the decoder can never produce.
func checkIndex(reg uint8) {
	if reg >= NumRegs {
		panic(fmt.Sprintf("register index %d out of range", reg))
	}
}

package emu

// ALU implements RV64 integer arithmetic.
type ALU struct {
	regFile *RegFile
}

// NewALU creates a new ALU connected to the given register file.
func NewALU(regFile *RegFile) *ALU {
	return &ALU{regFile: regFile}
}

// ADD performs 64-bit addition: xd = xs1 + xs2 (mod 2^64)
func (a *ALU) ADD(rd, rs1, rs2 uint8) {
	op1 := a.regFile.ReadReg(rs1)
	op2 := a.regFile.ReadReg(rs2)
	a.regFile.WriteReg(rd, op1+op2)
}

// ADDI performs 64-bit addition with a sign-extended immediate:
// xd = xs1 + imm (mod 2^64)
func (a *ALU) ADDI(rd, rs1 uint8, imm int64) {
	op1 := a.regFile.ReadReg(rs1)
	a.regFile.WriteReg(rd, op1+uint64(imm))
}

// Package insts provides RISC-V instruction definitions and decoding.
//
// This package implements decoding of 32-bit RV64 machine code into structured
// instruction representations. Every word is split into its fixed fields
// (opcode, rd, funct3, rs1, rs2, funct7) and the immediate of its format.
// Semantic operations currently recognized:
//   - OP-IMM: ADDI
//   - OP: ADD
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	inst := decoder.Decode(0x00500093) // ADDI x1, x0, 5
//	fmt.Printf("Op: %v, Rd: %d, Rs1: %d, Imm: %d\n", inst.Op, inst.Rd, inst.Rs1, inst.Imm)
package insts

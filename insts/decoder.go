// Package insts provides RISC-V instruction definitions and decoding.
package insts

// Op represents a semantic RISC-V operation.
type Op uint16

// Supported operations.
const (
	OpUnknown Op = iota
	OpADDI
	OpADD
)

// String returns the assembler mnemonic of the operation.
func (o Op) String() string {
	switch o {
	case OpADDI:
		return "addi"
	case OpADD:
		return "add"
	default:
		return "unknown"
	}
}

// Format represents an instruction encoding format.
type Format uint8

// Instruction formats.
const (
	FormatUnknown Format = iota
	FormatR              // Register-register
	FormatI              // Register-immediate, loads, JALR, SYSTEM
	FormatS              // Stores
	FormatB              // Conditional branches
	FormatU              // LUI, AUIPC
	FormatJ              // JAL
)

// String returns the single-letter name of the format.
func (f Format) String() string {
	switch f {
	case FormatR:
		return "R"
	case FormatI:
		return "I"
	case FormatS:
		return "S"
	case FormatB:
		return "B"
	case FormatU:
		return "U"
	case FormatJ:
		return "J"
	default:
		return "?"
	}
}

// Major opcodes, bits [6:0] of the instruction word.
const (
	OpcodeLoad   uint8 = 0x03
	OpcodeOpImm  uint8 = 0x13
	OpcodeAUIPC  uint8 = 0x17
	OpcodeStore  uint8 = 0x23
	OpcodeOp     uint8 = 0x33
	OpcodeLUI    uint8 = 0x37
	OpcodeBranch uint8 = 0x63
	OpcodeJALR   uint8 = 0x67
	OpcodeJAL    uint8 = 0x6F
	OpcodeSystem uint8 = 0x73
)

// Instruction represents a decoded RISC-V instruction.
type Instruction struct {
	Op     Op     // Semantic operation
	Format Format // Encoding format

	Word   uint32 // Raw instruction word
	Opcode uint8  // bits [6:0]
	Rd     uint8  // bits [11:7]
	Funct3 uint8  // bits [14:12]
	Rs1    uint8  // bits [19:15]
	Rs2    uint8  // bits [24:20]
	Funct7 uint8  // bits [31:25]

	// Imm is the sign-extended immediate of the instruction's format.
	// Zero for R-type and unknown formats.
	Imm int64
}

// opDecoder fills the format-specific parts of an instruction.
type opDecoder func(word uint32, inst *Instruction)

// Decoder decodes RISC-V machine code into instructions.
type Decoder struct {
	table map[uint8]opDecoder
}

// NewDecoder creates a new RISC-V instruction decoder.
func NewDecoder() *Decoder {
	d := &Decoder{}
	d.table = map[uint8]opDecoder{
		OpcodeOpImm: d.decodeOpImm,
		OpcodeOp:    d.decodeOp,
	}
	return d
}

// Decode decodes a 32-bit RISC-V instruction word. Decoding never fails:
// a word whose opcode has no defined semantics is returned with OpUnknown
// and all of its fields populated.
func (d *Decoder) Decode(word uint32) *Instruction {
	inst := &Instruction{}
	d.DecodeInto(word, inst)
	return inst
}

// DecodeInto decodes word into inst, overwriting every field. It does not
// allocate.
func (d *Decoder) DecodeInto(word uint32, inst *Instruction) {
	*inst = Instruction{
		Op:     OpUnknown,
		Word:   word,
		Opcode: uint8(word & 0x7F),         // bits [6:0]
		Rd:     uint8((word >> 7) & 0x1F),  // bits [11:7]
		Funct3: uint8((word >> 12) & 0x7),  // bits [14:12]
		Rs1:    uint8((word >> 15) & 0x1F), // bits [19:15]
		Rs2:    uint8((word >> 20) & 0x1F), // bits [24:20]
		Funct7: uint8(word >> 25),          // bits [31:25]
	}

	inst.Format = FormatOf(inst.Opcode)
	inst.Imm = immediate(inst.Format, word)

	if decode, ok := d.table[inst.Opcode]; ok {
		decode(word, inst)
	}
}

// decodeOpImm decodes the OP-IMM major opcode.
// Format: imm[11:0] | rs1 | funct3 | rd | 0010011
func (d *Decoder) decodeOpImm(_ uint32, inst *Instruction) {
	inst.Op = OpADDI
}

// decodeOp decodes the OP major opcode.
// Format: funct7 | rs2 | rs1 | funct3 | rd | 0110011
func (d *Decoder) decodeOp(_ uint32, inst *Instruction) {
	inst.Op = OpADD
}

// FormatOf returns the encoding format used by a major opcode.
func FormatOf(opcode uint8) Format {
	switch opcode {
	case OpcodeOp:
		return FormatR
	case OpcodeOpImm, OpcodeLoad, OpcodeJALR, OpcodeSystem:
		return FormatI
	case OpcodeStore:
		return FormatS
	case OpcodeBranch:
		return FormatB
	case OpcodeLUI, OpcodeAUIPC:
		return FormatU
	case OpcodeJAL:
		return FormatJ
	default:
		return FormatUnknown
	}
}

func immediate(format Format, word uint32) int64 {
	switch format {
	case FormatI:
		return ImmI(word)
	case FormatS:
		return ImmS(word)
	case FormatB:
		return ImmB(word)
	case FormatU:
		return ImmU(word)
	case FormatJ:
		return ImmJ(word)
	default:
		return 0
	}
}

// SignExtend sign-extends the low `bits` bits of value to 64 bits.
func SignExtend(value uint64, bits uint) int64 {
	shift := 64 - bits
	return int64(value<<shift) >> shift
}

// ImmI extracts the I-type immediate: imm[11:0] = word[31:20].
func ImmI(word uint32) int64 {
	return int64(int32(word) >> 20)
}

// ImmS extracts the S-type immediate: imm[11:5] = word[31:25],
// imm[4:0] = word[11:7].
func ImmS(word uint32) int64 {
	imm := (word>>25)<<5 | (word>>7)&0x1F
	return SignExtend(uint64(imm), 12)
}

// ImmB extracts the B-type immediate. Bit 0 is always zero.
// imm[12] = word[31], imm[10:5] = word[30:25], imm[4:1] = word[11:8],
// imm[11] = word[7].
func ImmB(word uint32) int64 {
	imm := (word>>31)<<12 |
		((word>>7)&0x1)<<11 |
		((word>>25)&0x3F)<<5 |
		((word>>8)&0xF)<<1
	return SignExtend(uint64(imm), 13)
}

// ImmU extracts the U-type immediate: imm[31:12] = word[31:12], low bits zero.
func ImmU(word uint32) int64 {
	return int64(int32(word & 0xFFFFF000))
}

// ImmJ extracts the J-type immediate. Bit 0 is always zero.
// imm[20] = word[31], imm[10:1] = word[30:21], imm[11] = word[20],
// imm[19:12] = word[19:12].
func ImmJ(word uint32) int64 {
	imm := (word>>31)<<20 |
		((word>>12)&0xFF)<<12 |
		((word>>20)&0x1)<<11 |
		((word>>21)&0x3FF)<<1
	return SignExtend(uint64(imm), 21)
}

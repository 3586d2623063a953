package emu

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sarchlab/zv64/cache"
	"github.com/sarchlab/zv64/insts"
)

// StepResult represents the result of a single cycle.
type StepResult struct {
	// PC is the address the instruction was fetched from.
	PC uint64

	// NextPC is the program counter after the cycle.
	NextPC uint64

	// Word is the raw instruction word.
	Word uint32

	// Inst is the decoded instruction. Nil if no instruction was executed.
	Inst *insts.Instruction

	// Halted is true if the program counter has left the memory image and
	// no instruction was executed.
	Halted bool

	// Unimplemented is set when the instruction had no semantics. The cycle
	// still completes and the run continues.
	Unimplemented error

	// Err is set if a fatal error occurred during the cycle.
	Err error
}

// effect is what executing one instruction asks of the run loop.
type effect struct {
	// redirect replaces the sequential next PC with target.
	redirect bool
	target   uint64

	unimplemented error
}

// Emulator executes RV64 instructions functionally.
type Emulator struct {
	regFile *RegFile
	memory  *Memory
	decoder *insts.Decoder
	alu     *ALU

	icache       *cache.Cache
	icacheConfig *cache.Config

	stdout    io.Writer
	logger    *slog.Logger
	observers []Observer

	initialSP        uint64
	instructionCount uint64
	maxInstructions  uint64 // 0 means no limit
}

// EmulatorOption is a functional option for configuring the Emulator.
type EmulatorOption func(*Emulator)

// WithStdout sets the writer that receives register dumps.
func WithStdout(w io.Writer) EmulatorOption {
	return func(e *Emulator) {
		e.stdout = w
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) EmulatorOption {
	return func(e *Emulator) {
		e.logger = logger
	}
}

// WithStackPointer sets the initial stack pointer value.
func WithStackPointer(sp uint64) EmulatorOption {
	return func(e *Emulator) {
		e.initialSP = sp
	}
}

// WithMaxInstructions sets the maximum number of instructions to execute.
// A value of 0 means no limit.
func WithMaxInstructions(max uint64) EmulatorOption {
	return func(e *Emulator) {
		e.maxInstructions = max
	}
}

// WithObserver registers an observer of completed cycles.
func WithObserver(o Observer) EmulatorOption {
	return func(e *Emulator) {
		e.observers = append(e.observers, o)
	}
}

// WithInstructionCache fetches instructions through a cache with the given
// configuration.
func WithInstructionCache(config cache.Config) EmulatorOption {
	return func(e *Emulator) {
		e.icacheConfig = &config
	}
}

// NewEmulator creates a new RV64 emulator with an empty memory image.
func NewEmulator(opts ...EmulatorOption) *Emulator {
	e := &Emulator{
		memory:    NewMemory(nil),
		decoder:   insts.NewDecoder(),
		stdout:    os.Stdout,
		logger:    slog.Default(),
		initialSP: NominalMemorySize,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.Reset()

	return e
}

// RegFile returns the emulator's register file.
func (e *Emulator) RegFile() *RegFile {
	return e.regFile
}

// Memory returns the emulator's memory.
func (e *Emulator) Memory() *Memory {
	return e.memory
}

// InstructionCache returns the instruction cache, or nil if none is
// configured.
func (e *Emulator) InstructionCache() *cache.Cache {
	return e.icache
}

// InstructionCount returns the number of instructions executed.
func (e *Emulator) InstructionCount() uint64 {
	return e.instructionCount
}

// LoadProgram replaces the memory image with a copy of image and sets the
// PC to 0. Registers are left untouched.
func (e *Emulator) LoadProgram(image []byte) {
	e.memory = NewMemory(image)
	e.regFile.PC = 0
	e.buildInstructionCache()
}

// Reset returns the registers, program counter and counters to their
// initial state. The memory image is kept.
func (e *Emulator) Reset() {
	e.regFile = NewRegFile()
	e.regFile.X[RegSP] = e.initialSP
	e.alu = NewALU(e.regFile)
	e.instructionCount = 0
	e.buildInstructionCache()
}

func (e *Emulator) buildInstructionCache() {
	if e.icacheConfig == nil {
		e.icache = nil
		return
	}
	e.icache = cache.New(*e.icacheConfig, e.memory)
}

// Halted reports whether the program counter has left the memory image.
func (e *Emulator) Halted() bool {
	return e.regFile.PC >= e.memory.Len()
}

// Step executes a single cycle: fetch, advance the PC by 4, decode, execute.
func (e *Emulator) Step() StepResult {
	pc := e.regFile.PC

	if e.Halted() {
		return StepResult{PC: pc, NextPC: pc, Halted: true}
	}

	if e.maxInstructions > 0 && e.instructionCount >= e.maxInstructions {
		return StepResult{PC: pc, NextPC: pc, Err: ErrMaxInstructions}
	}

	// 1. Fetch
	word, err := e.fetch(pc)
	if err != nil {
		return StepResult{PC: pc, NextPC: pc, Err: err}
	}

	e.regFile.PC = pc + 4

	// 2. Decode
	inst := e.decoder.Decode(word)

	// 3. Execute
	eff := e.execute(pc, inst)
	if eff.redirect {
		e.regFile.PC = eff.target
	}

	e.instructionCount++

	result := StepResult{
		PC:            pc,
		NextPC:        e.regFile.PC,
		Word:          word,
		Inst:          inst,
		Unimplemented: eff.unimplemented,
	}

	for _, o := range e.observers {
		o.ObserveStep(result)
	}

	return result
}

// Run executes cycles until the program counter leaves the memory image.
// It returns nil on a normal halt, or the fatal error that stopped the run.
func (e *Emulator) Run() error {
	for {
		result := e.Step()
		if result.Halted {
			return nil
		}
		if result.Err != nil {
			return result.Err
		}
	}
}

// fetch reads the little-endian instruction word at pc.
func (e *Emulator) fetch(pc uint64) (uint32, error) {
	if !e.memory.Contains(pc, 4) {
		var remaining uint64
		if pc < e.memory.Len() {
			remaining = e.memory.Len() - pc
		}
		return 0, &TruncatedInstructionError{PC: pc, Remaining: remaining}
	}

	if e.icache != nil {
		return uint32(e.icache.Read(pc, 4).Data), nil
	}

	return e.memory.Read32(pc)
}

// execute dispatches and executes a decoded instruction.
func (e *Emulator) execute(pc uint64, inst *insts.Instruction) effect {
	switch inst.Op {
	case insts.OpADDI:
		e.alu.ADDI(inst.Rd, inst.Rs1, inst.Imm)
	case insts.OpADD:
		e.alu.ADD(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpUnknown:
		err := &UnimplementedOpcodeError{
			Opcode: inst.Opcode,
			Word:   inst.Word,
			PC:     pc,
		}
		e.logger.Warn("unimplemented opcode",
			"opcode", fmt.Sprintf("0x%02X", inst.Opcode),
			"word", hex32(inst.Word),
			"pc", hex64(pc),
		)
		return effect{unimplemented: err}
	default:
		panic(fmt.Sprintf("no execution semantics for op %v", inst.Op))
	}

	return effect{}
}

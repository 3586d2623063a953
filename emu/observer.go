package emu

import (
	"log/slog"
	"slices"

	"github.com/sarchlab/zv64/insts"
)

// Observer is notified after every completed cycle.
type Observer interface {
	ObserveStep(result StepResult)
}

// LogObserver logs the program counter of every cycle at LevelTrace.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates a LogObserver writing to logger.
func NewLogObserver(logger *slog.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

// ObserveStep implements Observer.
func (o *LogObserver) ObserveStep(result StepResult) {
	Trace(o.logger, "step",
		"pc", hex64(result.PC),
		"next_pc", hex64(result.NextPC),
		"word", hex32(result.Word),
		"op", result.Inst.Op.String(),
	)
}

// Stats counts executed instructions.
type Stats struct {
	Instructions  uint64
	ByOp          map[insts.Op]uint64
	Unimplemented map[uint8]uint64 // by opcode
}

// NewStats creates an empty Stats.
func NewStats() *Stats {
	return &Stats{
		ByOp:          make(map[insts.Op]uint64),
		Unimplemented: make(map[uint8]uint64),
	}
}

// ObserveStep implements Observer.
func (s *Stats) ObserveStep(result StepResult) {
	s.Instructions++
	s.ByOp[result.Inst.Op]++
	if result.Unimplemented != nil {
		s.Unimplemented[result.Inst.Opcode]++
	}
}

// Ops returns the observed operations in ascending order.
func (s *Stats) Ops() []insts.Op {
	ops := make([]insts.Op, 0, len(s.ByOp))
	for op := range s.ByOp {
		ops = append(ops, op)
	}
	slices.Sort(ops)
	return ops
}

// UnimplementedOpcodes returns the observed unimplemented opcodes in
// ascending order.
func (s *Stats) UnimplementedOpcodes() []uint8 {
	opcodes := make([]uint8, 0, len(s.Unimplemented))
	for opcode := range s.Unimplemented {
		opcodes = append(opcodes, opcode)
	}
	slices.Sort(opcodes)
	return opcodes
}

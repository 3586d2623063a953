package emu

import (
	"context"
	"fmt"
	"log/slog"
)

// LevelTrace is the level of the per-cycle program counter trace. It sits
// just above Info, so default handlers print it.
const LevelTrace slog.Level = slog.LevelInfo + 1

// Trace logs msg at LevelTrace.
func Trace(logger *slog.Logger, msg string, args ...any) {
	logger.Log(context.Background(), LevelTrace, msg, args...)
}

func hex64(v uint64) string {
	return fmt.Sprintf("0x%X", v)
}

func hex32(v uint32) string {
	return fmt.Sprintf("0x%08X", v)
}

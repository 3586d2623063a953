// Package main provides the entry point for zv64.
// zv64 is a functional RV64 emulator that runs raw instruction images.
//
// For the full CLI, use: go run ./cmd/zv64
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("zv64 - RV64 Instruction Emulator")
	fmt.Println("")
	fmt.Println("Usage: zv64 [options] <program.bin>")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -quiet       Hide the PC trace")
	fmt.Println("  -log-json    Emit logs as JSON")
	fmt.Println("  -icache      Fetch through an instruction cache")
	fmt.Println("  -stats       Print execution statistics")
	fmt.Println("  -max-insts   Instruction limit")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/zv64' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/zv64' instead.")
	}
}

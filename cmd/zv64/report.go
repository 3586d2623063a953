package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sarchlab/zv64/cache"
	"github.com/sarchlab/zv64/emu"
)

// writeReport prints execution statistics as tables.
func writeReport(w io.Writer, stats *emu.Stats, icache *cache.Cache) {
	opTable := table.NewWriter()
	opTable.SetTitle("Instructions")
	opTable.AppendHeader(table.Row{"Op", "Count"})
	for _, op := range stats.Ops() {
		opTable.AppendRow(table.Row{op.String(), stats.ByOp[op]})
	}
	opTable.AppendFooter(table.Row{"Total", stats.Instructions})
	fmt.Fprintln(w, opTable.Render())

	if opcodes := stats.UnimplementedOpcodes(); len(opcodes) > 0 {
		unimplTable := table.NewWriter()
		unimplTable.SetTitle("Unimplemented opcodes")
		unimplTable.AppendHeader(table.Row{"Opcode", "Count"})
		for _, opcode := range opcodes {
			unimplTable.AppendRow(table.Row{fmt.Sprintf("0x%02X", opcode), stats.Unimplemented[opcode]})
		}
		fmt.Fprintln(w, unimplTable.Render())
	}

	if icache == nil {
		return
	}

	cs := icache.Stats()
	cacheTable := table.NewWriter()
	cacheTable.SetTitle("Instruction cache")
	cacheTable.AppendHeader(table.Row{"Reads", "Hits", "Misses", "Evictions", "Hit rate"})
	cacheTable.AppendRow(table.Row{
		cs.Reads, cs.Hits, cs.Misses, cs.Evictions,
		fmt.Sprintf("%.1f%%", 100*cs.HitRate()),
	})
	fmt.Fprintln(w, cacheTable.Render())
}

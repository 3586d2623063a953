// Package main provides the entry point for zv64.
// zv64 is a functional RV64 instruction emulator for raw binaries.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tebeka/atexit"

	"github.com/sarchlab/zv64/cache"
	"github.com/sarchlab/zv64/emu"
	"github.com/sarchlab/zv64/loader"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// UsageError reports a command line that does not name exactly one binary.
type UsageError struct {
	NArgs int
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("expected exactly one binary path, got %d arguments", e.NArgs)
}

type options struct {
	quiet    bool
	logJSON  bool
	icache   bool
	stats    bool
	maxInsts uint64
}

func main() {
	atexit.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one emulation session and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	opts, path, err := parseArgs(args, stderr)
	if err != nil {
		var usageErr *UsageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			printUsage(stderr)
		}
		return exitUsage
	}

	logger := newLogger(stderr, opts)

	prog, err := loader.Load(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading program: %v\n", err)
		return exitError
	}

	stats := emu.NewStats()
	emulator := emu.NewEmulator(buildOptions(opts, stdout, logger, stats)...)
	emulator.LoadProgram(prog.Image)

	if err := emulator.DumpRegisters(); err != nil {
		fmt.Fprintf(stderr, "Error writing register dump: %v\n", err)
		return exitError
	}

	runErr := emulator.Run()
	if runErr != nil {
		logger.Error("emulation stopped", "err", runErr)
	}

	if err := emulator.DumpRegisters(); err != nil {
		fmt.Fprintf(stderr, "Error writing register dump: %v\n", err)
		return exitError
	}

	if opts.stats {
		writeReport(stdout, stats, emulator.InstructionCache())
	}

	if runErr != nil {
		return exitError
	}

	return exitOK
}

func parseArgs(args []string, stderr io.Writer) (options, string, error) {
	var opts options

	fs := flag.NewFlagSet("zv64", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr) }
	fs.BoolVar(&opts.quiet, "quiet", false, "Only log warnings and errors (hides the PC trace)")
	fs.BoolVar(&opts.logJSON, "log-json", false, "Emit logs as JSON")
	fs.BoolVar(&opts.icache, "icache", false, "Fetch instructions through an instruction cache")
	fs.BoolVar(&opts.stats, "stats", false, "Print execution statistics after the run")
	fs.Uint64Var(&opts.maxInsts, "max-insts", 0, "Stop after this many instructions (0 = no limit)")

	if err := fs.Parse(args); err != nil {
		return opts, "", err
	}

	if fs.NArg() != 1 {
		return opts, "", &UsageError{NArgs: fs.NArg()}
	}

	return opts, fs.Arg(0), nil
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: zv64 [options] <program.bin>\n")
	fmt.Fprintf(w, "\nOptions:\n")
	fmt.Fprintf(w, "  -quiet       Only log warnings and errors (hides the PC trace)\n")
	fmt.Fprintf(w, "  -log-json    Emit logs as JSON\n")
	fmt.Fprintf(w, "  -icache      Fetch instructions through an instruction cache\n")
	fmt.Fprintf(w, "  -stats       Print execution statistics after the run\n")
	fmt.Fprintf(w, "  -max-insts n Stop after n instructions (0 = no limit)\n")
}

func newLogger(w io.Writer, opts options) *slog.Logger {
	level := slog.LevelInfo
	if opts.quiet {
		level = slog.LevelWarn
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if opts.logJSON {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}

func buildOptions(
	opts options,
	stdout io.Writer,
	logger *slog.Logger,
	stats *emu.Stats,
) []emu.EmulatorOption {
	emuOpts := []emu.EmulatorOption{
		emu.WithStdout(stdout),
		emu.WithLogger(logger),
		emu.WithMaxInstructions(opts.maxInsts),
		emu.WithObserver(emu.NewLogObserver(logger)),
		emu.WithObserver(stats),
	}

	if opts.icache {
		emuOpts = append(emuOpts, emu.WithInstructionCache(cache.DefaultConfig()))
	}

	return emuOpts
}

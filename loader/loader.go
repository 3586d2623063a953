// Package loader provides raw binary loading for RV64 programs.
//
// A program file carries no header or metadata: its bytes are the memory
// image, loaded verbatim at address 0.
package loader

import (
	"fmt"
	"io"
	"os"
)

// Program represents a loaded binary ready for execution.
type Program struct {
	// Path is the file the program was read from. Empty for readers.
	Path string
	// Image is the memory image, starting at address 0.
	Image []byte
}

// LoadError reports a binary that could not be opened or fully read.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads the binary at path.
func Load(path string) (*Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	prog, err := Read(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	prog.Path = path

	return prog, nil
}

// Read reads a program image from r until EOF.
func Read(r io.Reader) (*Program, error) {
	image, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	return &Program{Image: image}, nil
}

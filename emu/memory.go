package emu

import "encoding/binary"

// Memory is the emulated memory image. It is a contiguous, fixed-length
// byte buffer addressed from 0.
type Memory struct {
	data []byte
}

// NewMemory creates a memory image holding a copy of image.
func NewMemory(image []byte) *Memory {
	data := make([]byte, len(image))
	copy(data, image)
	return &Memory{data: data}
}

// Len returns the size of the image in bytes.
func (m *Memory) Len() uint64 {
	return uint64(len(m.data))
}

// Contains reports whether size bytes starting at addr lie inside the image.
func (m *Memory) Contains(addr uint64, size uint64) bool {
	end := addr + size
	return end >= addr && end <= m.Len()
}

// Read8 reads a single byte.
func (m *Memory) Read8(addr uint64) (byte, error) {
	if !m.Contains(addr, 1) {
		return 0, &AccessError{Addr: addr, Size: 1, Len: m.Len()}
	}
	return m.data[addr], nil
}

// Read32 reads a little-endian 32-bit value.
func (m *Memory) Read32(addr uint64) (uint32, error) {
	if !m.Contains(addr, 4) {
		return 0, &AccessError{Addr: addr, Size: 4, Len: m.Len()}
	}
	return binary.LittleEndian.Uint32(m.data[addr : addr+4]), nil
}

// ReadBlock returns a copy of size bytes starting at addr. Bytes past the end
// of the image read as zero. It serves as the backing store of the
// instruction cache.
func (m *Memory) ReadBlock(addr uint64, size int) []byte {
	block := make([]byte, size)
	if addr < m.Len() {
		copy(block, m.data[addr:])
	}
	return block
}

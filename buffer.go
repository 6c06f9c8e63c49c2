package exifer

import (
	"bytes"
	"encoding/binary"
	"math"
)

// ByteOrder is the integer encoding declared by the metadata block
type ByteOrder uint8

const (
	BigEndian ByteOrder = iota
	LittleEndian
)

func (o ByteOrder) String() string {
	if o == LittleEndian {
		return "little-endian"
	}
	return "big-endian"
}

// Opposite returns the other byte order
func (o ByteOrder) Opposite() ByteOrder {
	if o == LittleEndian {
		return BigEndian
	}
	return LittleEndian
}

func (o ByteOrder) binary() binary.ByteOrder {
	if o == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// Range is a half-open byte range [Start, End) within a Buffer
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the range
func (r Range) Len() int {
	return r.End - r.Start
}

// Buffer is a bounds-checked read/write view over the bytes of an image file
//
// the underlying slice is borrowed (e.g. a memory map) and is never resized - writes
// made through the Buffer land directly in the caller's bytes
type Buffer struct {
	data []byte
}

// NewBuffer wraps data in a Buffer
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Len returns the total length of the buffer
func (b *Buffer) Len() int {
	return len(b.data)
}

// Bytes returns the underlying bytes
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Slice returns the bytes covered by r, or false if r does not lie within the buffer
func (b *Buffer) Slice(r Range) ([]byte, bool) {
	if !b.contains(r) {
		return nil, false
	}
	return b.data[r.Start:r.End], true
}

// Index returns the offset of the first occurrence of pattern that lies entirely within [from, to)
func (b *Buffer) Index(pattern []byte, from, to int) int {
	from, to = b.clamp(from, to)
	if len(pattern) == 0 || to-from < len(pattern) {
		return -1
	}
	if i := bytes.Index(b.data[from:to], pattern); i >= 0 {
		return from + i
	}
	return -1
}

// IndexFold is Index with ASCII case-insensitive matching
func (b *Buffer) IndexFold(pattern []byte, from, to int) int {
	from, to = b.clamp(from, to)
	n := len(pattern)
	if n == 0 {
		return -1
	}
	for i := from; i+n <= to; i++ {
		if bytes.EqualFold(b.data[i:i+n], pattern) {
			return i
		}
	}
	return -1
}

// Uint16At decodes the 16-bit integer at off using order
func (b *Buffer) Uint16At(off int, order ByteOrder) (uint16, bool) {
	if off < 0 || off > len(b.data)-2 {
		return 0, false
	}
	return order.binary().Uint16(b.data[off : off+2]), true
}

// Uint32At decodes the 32-bit integer at off using order
func (b *Buffer) Uint32At(off int, order ByteOrder) (uint32, bool) {
	if off < 0 || off > len(b.data)-4 {
		return 0, false
	}
	return order.binary().Uint32(b.data[off : off+4]), true
}

// TerminatorAt returns the offset of the first zero byte in [from, to)
func (b *Buffer) TerminatorAt(from, to int) (int, bool) {
	from, to = b.clamp(from, to)
	if from >= to {
		return 0, false
	}
	if i := bytes.IndexByte(b.data[from:to], 0); i >= 0 {
		return from + i, true
	}
	return 0, false
}

func (b *Buffer) contains(r Range) bool {
	return r.Start >= 0 && r.Start <= r.End && r.End <= len(b.data)
}

func (b *Buffer) clamp(from, to int) (int, int) {
	if from < 0 {
		from = 0
	}
	if to > len(b.data) {
		to = len(b.data)
	}
	return from, to
}

// addOffset returns base+off, rejecting results that would overflow int
func addOffset(base int, off uint64) (int, bool) {
	if base < 0 || off > uint64(math.MaxInt-base) {
		return 0, false
	}
	return base + int(off), true
}

package elf64

import (
	"fmt"

	"github.com/hywan/weld/internal/codec"
)

// Alignment is an optional power-of-two alignment constraint. Zero or
// one on the wire both mean "no alignment requirement".
type Alignment struct {
	Value   uint64
	Present bool
}

// NoAlignment is the absent Alignment.
var NoAlignment = Alignment{}

// isPowerOfTwo reports whether v is a power of two. 1 (2^0) counts.
func isPowerOfTwo(v uint64) bool {
	return v != 0 && v&(v-1) == 0
}

// NewAlignment builds an Alignment from a raw value: zero and one give
// NoAlignment, any other power of two gives a present Alignment, and
// every other value is an error.
func NewAlignment(v uint64) (Alignment, error) {
	if v == 0 || v == 1 {
		return NoAlignment, nil
	}
	if !isPowerOfTwo(v) {
		return Alignment{}, fmt.Errorf("elf64: alignment %d is not a power of two", v)
	}
	return Alignment{Value: v, Present: true}, nil
}

// ReadAlignment decodes an 8-byte alignment field using e.
func ReadAlignment(b []byte, e codec.Endian) (Alignment, []byte, error) {
	raw, rest, err := e.Uint64(b)
	if err != nil {
		return Alignment{}, nil, err
	}
	a, err := NewAlignment(raw)
	if err != nil {
		return Alignment{}, nil, err
	}
	return a, rest, nil
}

// Write encodes the alignment as an 8-byte field using e, encoding
// absence as zero.
func (a Alignment) Write(dst []byte, e codec.Endian) {
	e.PutUint64(dst, a.Value)
}

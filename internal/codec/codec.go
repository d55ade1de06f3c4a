// Package codec provides endian-aware fixed-width read/write primitives
// over byte slices. Every higher-level ELF64 decode/encode routine takes
// an Endian value as a parameter; this package is the only place byte
// order or slice discipline is expressed.
package codec

import (
	"encoding/binary"
	"errors"
)

// ErrShortBuffer is returned when a read or skip needs more bytes than
// remain in the input slice.
var ErrShortBuffer = errors.New("codec: short buffer")

// Endian decodes and encodes fixed-width unsigned integers in one byte
// order. Read primitives consume bytes off the head of the input slice
// and return the decoded value paired with the remaining slice. Write
// primitives encode into the head of dst, which must be at least as long
// as the field width.
type Endian interface {
	Uint16(b []byte) (v uint16, rest []byte, err error)
	Uint32(b []byte) (v uint32, rest []byte, err error)
	Uint64(b []byte) (v uint64, rest []byte, err error)
	PutUint16(dst []byte, v uint16)
	PutUint32(dst []byte, v uint32)
	PutUint64(dst []byte, v uint64)
	// Order exposes the underlying encoding/binary.ByteOrder, for
	// callers (e.g. Data.Symbols) that need to decode a run of
	// fixed-size records without per-field slicing.
	Order() binary.ByteOrder
}

// Skip advances past exactly n bytes, or fails if fewer remain.
func Skip(b []byte, n int) ([]byte, error) {
	if len(b) < n {
		return nil, ErrShortBuffer
	}
	return b[n:], nil
}

// Byte consumes a single byte off the head of b.
func Byte(b []byte) (byte, []byte, error) {
	if len(b) < 1 {
		return 0, nil, ErrShortBuffer
	}
	return b[0], b[1:], nil
}

type littleEndian struct{}
type bigEndian struct{}

// LittleEndian is the little-endian Endian strategy.
var LittleEndian Endian = littleEndian{}

// BigEndian is the big-endian Endian strategy.
var BigEndian Endian = bigEndian{}

// FromByte selects a strategy from the ELF header's e_ident[EI_DATA]
// byte: 1 = little-endian, 2 = big-endian.
func FromByte(b byte) (Endian, error) {
	switch b {
	case 1:
		return LittleEndian, nil
	case 2:
		return BigEndian, nil
	default:
		return nil, errors.New("codec: unrecognised endianness discriminant")
	}
}

func (littleEndian) Uint16(b []byte) (uint16, []byte, error) {
	if len(b) < 2 {
		return 0, nil, ErrShortBuffer
	}
	return binary.LittleEndian.Uint16(b), b[2:], nil
}

func (littleEndian) Uint32(b []byte) (uint32, []byte, error) {
	if len(b) < 4 {
		return 0, nil, ErrShortBuffer
	}
	return binary.LittleEndian.Uint32(b), b[4:], nil
}

func (littleEndian) Uint64(b []byte) (uint64, []byte, error) {
	if len(b) < 8 {
		return 0, nil, ErrShortBuffer
	}
	return binary.LittleEndian.Uint64(b), b[8:], nil
}

func (littleEndian) PutUint16(dst []byte, v uint16) { binary.LittleEndian.PutUint16(dst, v) }
func (littleEndian) PutUint32(dst []byte, v uint32) { binary.LittleEndian.PutUint32(dst, v) }
func (littleEndian) PutUint64(dst []byte, v uint64) { binary.LittleEndian.PutUint64(dst, v) }
func (littleEndian) Order() binary.ByteOrder        { return binary.LittleEndian }

func (bigEndian) Uint16(b []byte) (uint16, []byte, error) {
	if len(b) < 2 {
		return 0, nil, ErrShortBuffer
	}
	return binary.BigEndian.Uint16(b), b[2:], nil
}

func (bigEndian) Uint32(b []byte) (uint32, []byte, error) {
	if len(b) < 4 {
		return 0, nil, ErrShortBuffer
	}
	return binary.BigEndian.Uint32(b), b[4:], nil
}

func (bigEndian) Uint64(b []byte) (uint64, []byte, error) {
	if len(b) < 8 {
		return 0, nil, ErrShortBuffer
	}
	return binary.BigEndian.Uint64(b), b[8:], nil
}

func (bigEndian) PutUint16(dst []byte, v uint16) { binary.BigEndian.PutUint16(dst, v) }
func (bigEndian) PutUint32(dst []byte, v uint32) { binary.BigEndian.PutUint32(dst, v) }
func (bigEndian) PutUint64(dst []byte, v uint64) { binary.BigEndian.PutUint64(dst, v) }
func (bigEndian) Order() binary.ByteOrder        { return binary.BigEndian }

package elf64

import (
	"fmt"

	"github.com/hywan/weld/internal/codec"
)

// ProgramFlags is the p_flags bitmask: which access modes a segment is
// mapped with.
type ProgramFlags uint32

const (
	ProgramFlagExecute ProgramFlags = 1 << iota
	ProgramFlagWrite
	ProgramFlagRead
)

const programFlagsKnownBits = ProgramFlagExecute | ProgramFlagWrite | ProgramFlagRead

func (f ProgramFlags) String() string {
	var r, w, x byte = '-', '-', '-'
	if f&ProgramFlagRead != 0 {
		r = 'r'
	}
	if f&ProgramFlagWrite != 0 {
		w = 'w'
	}
	if f&ProgramFlagExecute != 0 {
		x = 'x'
	}
	return fmt.Sprintf("%c%c%c", r, w, x)
}

// Has reports whether every bit in want is set.
func (f ProgramFlags) Has(want ProgramFlags) bool {
	return f&want == want
}

// ReadProgramFlags decodes the 4-byte flags field using e, rejecting any
// bit outside the declared set.
func ReadProgramFlags(b []byte, e codec.Endian) (ProgramFlags, []byte, error) {
	raw, rest, err := e.Uint32(b)
	if err != nil {
		return 0, nil, err
	}
	f := ProgramFlags(raw)
	if f&^programFlagsKnownBits != 0 {
		return 0, nil, fmt.Errorf("elf64: program flags contain unknown bits: %#x", raw)
	}
	return f, rest, nil
}

// Write encodes the raw bit pattern using e.
func (f ProgramFlags) Write(dst []byte, e codec.Endian) {
	e.PutUint32(dst, uint32(f))
}

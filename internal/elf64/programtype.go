package elf64

import (
	"fmt"

	"github.com/hywan/weld/internal/codec"
)

// ProgramType is the p_type field: what kind of segment this program
// header describes.
type ProgramType uint32

const (
	ProgramTypeNull    ProgramType = 0
	ProgramTypeLoad    ProgramType = 1
	ProgramTypeDynamic ProgramType = 2
	ProgramTypeInterp  ProgramType = 3
	ProgramTypeNote    ProgramType = 4
	ProgramTypeShlib   ProgramType = 5
	ProgramTypePhdr    ProgramType = 6
	ProgramTypeTLS     ProgramType = 7
)

var programTypeNames = map[ProgramType]string{
	ProgramTypeNull:    "Null",
	ProgramTypeLoad:    "Load",
	ProgramTypeDynamic: "Dynamic",
	ProgramTypeInterp:  "Interp",
	ProgramTypeNote:    "Note",
	ProgramTypeShlib:   "Shlib",
	ProgramTypePhdr:    "Phdr",
	ProgramTypeTLS:     "TLS",
}

func (t ProgramType) String() string {
	if name, ok := programTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ProgramType(%d)", uint32(t))
}

// ReadProgramType decodes the 4-byte program type discriminant using e.
func ReadProgramType(b []byte, e codec.Endian) (ProgramType, []byte, error) {
	raw, rest, err := e.Uint32(b)
	if err != nil {
		return 0, nil, err
	}
	if _, ok := programTypeNames[ProgramType(raw)]; !ok {
		return 0, nil, fmt.Errorf("elf64: unrecognised program type discriminant %d", raw)
	}
	return ProgramType(raw), rest, nil
}

// Write encodes the discriminant using e.
func (t ProgramType) Write(dst []byte, e codec.Endian) {
	e.PutUint32(dst, uint32(t))
}

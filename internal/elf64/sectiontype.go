package elf64

import (
	"fmt"

	"github.com/hywan/weld/internal/codec"
)

// SectionType is the sh_type field.
type SectionType uint32

const (
	SectionTypeNull         SectionType = 0
	SectionTypeProgramData  SectionType = 1
	SectionTypeSymbolTable  SectionType = 2
	SectionTypeStringTable  SectionType = 3
	SectionTypeRela         SectionType = 4
	SectionTypeHash         SectionType = 5
	SectionTypeDynamic      SectionType = 6
	SectionTypeNote         SectionType = 7
	SectionTypeNoBits       SectionType = 8
	SectionTypeRel          SectionType = 9
	SectionTypeShlib        SectionType = 10
	SectionTypeDynSym       SectionType = 11
	SectionTypeInitArray    SectionType = 14
	SectionTypeFiniArray    SectionType = 15
	SectionTypePreinitArray SectionType = 16
	SectionTypeGroup        SectionType = 17
	SectionTypeSymtabShndx  SectionType = 18
)

var sectionTypeNames = map[SectionType]string{
	SectionTypeNull:         "Null",
	SectionTypeProgramData:  "ProgramData",
	SectionTypeSymbolTable:  "SymbolTable",
	SectionTypeStringTable:  "StringTable",
	SectionTypeRela:         "Rela",
	SectionTypeHash:         "Hash",
	SectionTypeDynamic:      "Dynamic",
	SectionTypeNote:         "Note",
	SectionTypeNoBits:       "NoBits",
	SectionTypeRel:          "Rel",
	SectionTypeShlib:        "Shlib",
	SectionTypeDynSym:       "DynSym",
	SectionTypeInitArray:    "InitArray",
	SectionTypeFiniArray:    "FiniArray",
	SectionTypePreinitArray: "PreinitArray",
	SectionTypeGroup:        "Group",
	SectionTypeSymtabShndx:  "SymtabShndx",
}

func (t SectionType) String() string {
	if name, ok := sectionTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("SectionType(%d)", uint32(t))
}

// ReadSectionType decodes the 4-byte section type discriminant using e.
func ReadSectionType(b []byte, e codec.Endian) (SectionType, []byte, error) {
	raw, rest, err := e.Uint32(b)
	if err != nil {
		return 0, nil, err
	}
	if _, ok := sectionTypeNames[SectionType(raw)]; !ok {
		return 0, nil, fmt.Errorf("elf64: unrecognised section type discriminant %d", raw)
	}
	return SectionType(raw), rest, nil
}

// Write encodes the discriminant using e.
func (t SectionType) Write(dst []byte, e codec.Endian) {
	e.PutUint32(dst, uint32(t))
}

// DataKind maps a section type onto the Data tag that governs which
// interpretive operations are legal on its byte range.
func (t SectionType) DataKind() DataKind {
	switch t {
	case SectionTypeStringTable:
		return DataKindStringTable
	case SectionTypeSymbolTable, SectionTypeDynSym:
		return DataKindSymbolTable
	case SectionTypeProgramData:
		return DataKindProgramData
	default:
		return DataKindUnspecified
	}
}

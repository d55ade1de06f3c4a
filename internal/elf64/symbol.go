package elf64

import (
	"fmt"

	"github.com/hywan/weld/internal/codec"
)

// symbolRecordSize is the fixed on-disk size of one ELF64 symbol-table
// entry: name offset (4) + info (1) + reserved (1) + section index (2) +
// value (8) + size (8).
const symbolRecordSize = 24

// Symbol is a named location with scope and size.
type Symbol struct {
	Name          string // resolved lazily; empty until a strtab lookup fills it
	NameOffset    uint64
	Type          SymbolType
	Binding       SymbolBinding
	SectionIndex  SectionIndex
	Value         uint64 // address or alignment depending on containing file type
	Size          uint64
}

// ReadSymbol decodes one 24-byte ELF64 symbol-table record. The
// returned Symbol carries no resolved name; callers resolve names from
// the .strtab section separately.
func ReadSymbol(b []byte, e codec.Endian) (Symbol, []byte, error) {
	if len(b) < symbolRecordSize {
		return Symbol{}, nil, fmt.Errorf("elf64: symbol record too short: %d bytes", len(b))
	}

	nameOffset, rest, err := e.Uint32(b)
	if err != nil {
		return Symbol{}, nil, err
	}

	info, rest, err := codec.Byte(rest)
	if err != nil {
		return Symbol{}, nil, err
	}
	binding, err := ReadSymbolBinding(info)
	if err != nil {
		return Symbol{}, nil, err
	}
	typ, err := ReadSymbolType(info)
	if err != nil {
		return Symbol{}, nil, err
	}

	reserved, rest, err := codec.Byte(rest)
	if err != nil {
		return Symbol{}, nil, err
	}
	if reserved != 0 {
		return Symbol{}, nil, fmt.Errorf("elf64: symbol reserved byte is non-zero: %d", reserved)
	}

	sectionIndex, rest, err := ReadSectionIndex16(rest, e)
	if err != nil {
		return Symbol{}, nil, err
	}

	value, rest, err := e.Uint64(rest)
	if err != nil {
		return Symbol{}, nil, err
	}

	size, rest, err := e.Uint64(rest)
	if err != nil {
		return Symbol{}, nil, err
	}

	return Symbol{
		NameOffset:   uint64(nameOffset),
		Type:         typ,
		Binding:      binding,
		SectionIndex: sectionIndex,
		Value:        value,
		Size:         size,
	}, rest, nil
}

// Write encodes the symbol as a 24-byte ELF64 record using e.
func (s Symbol) Write(dst []byte, e codec.Endian) {
	e.PutUint32(dst[0:4], uint32(s.NameOffset))
	dst[4] = PackSymbolInfo(s.Binding, s.Type)
	dst[5] = 0
	s.SectionIndex.Write16(dst[6:8], e)
	e.PutUint64(dst[8:16], s.Value)
	e.PutUint64(dst[16:24], s.Size)
}

package elf64

import (
	"fmt"

	"github.com/hywan/weld/internal/codec"
)

// SectionIndex is a tagged section reference: either an ordinary array
// index, or one of the reserved pseudo-section values.
type SectionIndex struct {
	reserved reservedSectionIndex
	ordinary uint32
	isOrdinary bool
}

type reservedSectionIndex uint32

const (
	SectionIndexUndefined reservedSectionIndex = 0x0000
	SectionIndexLoProc    reservedSectionIndex = 0xFF00
	SectionIndexHiProc    reservedSectionIndex = 0xFF1F
	SectionIndexLoEnv     reservedSectionIndex = 0xFF20
	SectionIndexHiEnv     reservedSectionIndex = 0xFF3F
	SectionIndexAbsolute  reservedSectionIndex = 0xFFF1
	SectionIndexCommon    reservedSectionIndex = 0xFFF2
)

var reservedSectionIndexNames = map[reservedSectionIndex]string{
	SectionIndexUndefined: "Undefined",
	SectionIndexLoProc:    "LoProc",
	SectionIndexHiProc:    "HiProc",
	SectionIndexLoEnv:     "LoEnv",
	SectionIndexHiEnv:     "HiEnv",
	SectionIndexAbsolute:  "Absolute",
	SectionIndexCommon:    "Common",
}

// Ok builds an ordinary (non-reserved) section index.
func Ok(n uint32) SectionIndex {
	return SectionIndex{ordinary: n, isOrdinary: true}
}

// Reserved builds a reserved section index value.
func Reserved(r reservedSectionIndex) SectionIndex {
	return SectionIndex{reserved: r}
}

// Undefined is the zero SectionIndex, matching the on-disk SHN_UNDEF value.
var Undefined = Reserved(SectionIndexUndefined)

// Value returns the ordinary index and true, or (0, false) if this is a
// reserved value.
func (s SectionIndex) Value() (uint32, bool) {
	return s.ordinary, s.isOrdinary
}

// IsReserved reports whether s holds one of the named reserved values.
func (s SectionIndex) IsReserved() bool {
	return !s.isOrdinary
}

func (s SectionIndex) String() string {
	if s.isOrdinary {
		return fmt.Sprintf("Ok(%d)", s.ordinary)
	}
	if name, ok := reservedSectionIndexNames[s.reserved]; ok {
		return name
	}
	return fmt.Sprintf("SectionIndex(%#x)", uint32(s.reserved))
}

func decodeSectionIndex(raw uint32) SectionIndex {
	if name, ok := reservedSectionIndexNames[reservedSectionIndex(raw)]; ok {
		_ = name
		return Reserved(reservedSectionIndex(raw))
	}
	return Ok(raw)
}

// ReadSectionIndex16 decodes a 16-bit section index field (symbol
// tables use this width).
func ReadSectionIndex16(b []byte, e codec.Endian) (SectionIndex, []byte, error) {
	raw, rest, err := e.Uint16(b)
	if err != nil {
		return SectionIndex{}, nil, err
	}
	return decodeSectionIndex(uint32(raw)), rest, nil
}

// ReadSectionIndex32 decodes a 32-bit section index field (some section
// headers use this width).
func ReadSectionIndex32(b []byte, e codec.Endian) (SectionIndex, []byte, error) {
	raw, rest, err := e.Uint32(b)
	if err != nil {
		return SectionIndex{}, nil, err
	}
	return decodeSectionIndex(raw), rest, nil
}

func (s SectionIndex) raw() uint32 {
	if s.isOrdinary {
		return s.ordinary
	}
	return uint32(s.reserved)
}

// Write16 encodes s into a 16-bit field using e.
func (s SectionIndex) Write16(dst []byte, e codec.Endian) {
	e.PutUint16(dst, uint16(s.raw()))
}

// Write32 encodes s into a 32-bit field using e.
func (s SectionIndex) Write32(dst []byte, e codec.Endian) {
	e.PutUint32(dst, s.raw())
}

package elf64

import (
	"fmt"

	"github.com/hywan/weld/internal/codec"
)

// SectionFlags is the sh_flags bitmask.
type SectionFlags uint64

const (
	SectionFlagWritable SectionFlags = 1 << iota
	SectionFlagAllocable
	SectionFlagExecutable
	sectionFlagReservedBit3
	SectionFlagMerge
	SectionFlagStrings
	SectionFlagInfoLink
	SectionFlagLinkOrder
	SectionFlagOsNonConforming
	SectionFlagGroup
	SectionFlagThreadLocal
)

const sectionFlagsKnownBits = SectionFlagWritable | SectionFlagAllocable | SectionFlagExecutable |
	SectionFlagMerge | SectionFlagStrings | SectionFlagInfoLink | SectionFlagLinkOrder |
	SectionFlagOsNonConforming | SectionFlagGroup | SectionFlagThreadLocal

// Has reports whether every bit in want is set.
func (f SectionFlags) Has(want SectionFlags) bool {
	return f&want == want
}

// ReadSectionFlags decodes the 8-byte flags field using e, rejecting any
// bit outside the declared set.
func ReadSectionFlags(b []byte, e codec.Endian) (SectionFlags, []byte, error) {
	raw, rest, err := e.Uint64(b)
	if err != nil {
		return 0, nil, err
	}
	f := SectionFlags(raw)
	if f&^sectionFlagsKnownBits != 0 {
		return 0, nil, fmt.Errorf("elf64: section flags contain unknown bits: %#x", raw)
	}
	return f, rest, nil
}

// Write encodes the raw bit pattern using e.
func (f SectionFlags) Write(dst []byte, e codec.Endian) {
	e.PutUint64(dst, uint64(f))
}

// ToProgramFlags maps a section's access flags onto the program flags a
// loadable segment built from that section should carry: Allocable ->
// Read, Executable -> Execute, Writable -> Write.
func (f SectionFlags) ToProgramFlags() ProgramFlags {
	var pf ProgramFlags
	if f.Has(SectionFlagAllocable) {
		pf |= ProgramFlagRead
	}
	if f.Has(SectionFlagExecutable) {
		pf |= ProgramFlagExecute
	}
	if f.Has(SectionFlagWritable) {
		pf |= ProgramFlagWrite
	}
	return pf
}

package elf64

import (
	"fmt"

	"github.com/hywan/weld/internal/codec"
)

// sectionHeaderSize is the fixed on-disk size of one ELF64 section
// header.
const sectionHeaderSize = 64

// Section is a named, typed byte range in an object file, the unit a
// linker consumes.
type Section struct {
	Name       string // resolved lazily by File.ResolveSectionNames
	NameOffset uint32
	Type       SectionType
	Flags      SectionFlags
	VirtualAddress Address
	FileOffset uint64
	FileImageSize uint64
	Link       SectionIndex
	Information uint32
	Alignment  Alignment
	EntrySize  uint64
	Data       Data
}

// ReadSection decodes one 64-byte ELF64 section header, then slices the
// section's Data view out of the full file image, tagged from the
// section's type.
func ReadSection(b []byte, e codec.Endian, fileImage []byte) (Section, []byte, error) {
	if len(b) < sectionHeaderSize {
		return Section{}, nil, fmt.Errorf("elf64: section header too short: %d bytes", len(b))
	}

	nameOffset, rest, err := e.Uint32(b)
	if err != nil {
		return Section{}, nil, err
	}
	typ, rest, err := ReadSectionType(rest, e)
	if err != nil {
		return Section{}, nil, err
	}
	flags, rest, err := ReadSectionFlags(rest, e)
	if err != nil {
		return Section{}, nil, err
	}
	vaddr, rest, err := ReadAddress64(rest, e)
	if err != nil {
		return Section{}, nil, err
	}
	fileOffset, rest, err := e.Uint64(rest)
	if err != nil {
		return Section{}, nil, err
	}
	fileImageSize, rest, err := e.Uint64(rest)
	if err != nil {
		return Section{}, nil, err
	}
	link, rest, err := ReadSectionIndex32(rest, e)
	if err != nil {
		return Section{}, nil, err
	}
	info, rest, err := e.Uint32(rest)
	if err != nil {
		return Section{}, nil, err
	}
	align, rest, err := ReadAlignment(rest, e)
	if err != nil {
		return Section{}, nil, err
	}
	entrySize, rest, err := e.Uint64(rest)
	if err != nil {
		return Section{}, nil, err
	}

	data, err := sliceFileImage(fileImage, fileOffset, fileImageSize, typ.DataKind())
	if err != nil {
		return Section{}, nil, err
	}
	data.EntrySize = entrySize

	return Section{
		NameOffset:     nameOffset,
		Type:           typ,
		Flags:          flags,
		VirtualAddress: vaddr,
		FileOffset:     fileOffset,
		FileImageSize:  fileImageSize,
		Link:           link,
		Information:    info,
		Alignment:      align,
		EntrySize:      entrySize,
		Data:           data,
	}, rest, nil
}

// Write encodes the section header as a 64-byte ELF64 record using e.
func (s Section) Write(dst []byte, e codec.Endian) {
	e.PutUint32(dst[0:4], s.NameOffset)
	s.Type.Write(dst[4:8], e)
	s.Flags.Write(dst[8:16], e)
	s.VirtualAddress.Write(dst[16:24], e)
	e.PutUint64(dst[24:32], s.FileOffset)
	e.PutUint64(dst[32:40], s.FileImageSize)
	s.Link.Write32(dst[40:44], e)
	e.PutUint32(dst[44:48], s.Information)
	s.Alignment.Write(dst[48:56], e)
	e.PutUint64(dst[56:64], s.EntrySize)
}

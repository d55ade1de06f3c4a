// Package elf64 implements the ELF64 domain model: bit-exact parse/emit
// of the file, program, section, and symbol tables, the bitflag and
// discriminant types that back them, and the tagged Data byte view.
package elf64

import (
	"errors"
	"fmt"

	"github.com/hywan/weld/internal/codec"
)

// fileHeaderSize is the fixed on-disk size of the ELF64 file header.
const fileHeaderSize = 64

var magic = [4]byte{0x7F, 'E', 'L', 'F'}

const elfClass64 = 0x02

// File is the top-level ELF64 object.
type File struct {
	Endianness        Endianness
	Version           Version
	OsAbi             OsAbi
	Type              FileType
	Machine           Machine
	Flags             uint32
	EntryPoint        OptionalAddress
	Programs          []Program
	Sections          []Section
	SectionNameIndex  SectionIndex
}

// ReadFile parses a complete ELF64 file image. Parsing
// consumes the whole image; the returned rest is always empty.
func ReadFile(image []byte) (File, []byte, error) {
	if len(image) < fileHeaderSize {
		return File{}, nil, fmt.Errorf("elf64: file too short for header: %d bytes", len(image))
	}

	b := image

	var gotMagic [4]byte
	copy(gotMagic[:], b[:4])
	if gotMagic != magic {
		return File{}, nil, errors.New("elf64: bad magic")
	}
	b = b[4:]

	class, b, err := codec.Byte(b)
	if err != nil {
		return File{}, nil, err
	}
	if class != elfClass64 {
		return File{}, nil, fmt.Errorf("elf64: unsupported class %d, only ELF64 (2) is supported", class)
	}

	endianness, b, err := ReadEndianness(b)
	if err != nil {
		return File{}, nil, err
	}
	e, err := endianness.Strategy()
	if err != nil {
		return File{}, nil, err
	}

	version, b, err := ReadVersion(b)
	if err != nil {
		return File{}, nil, err
	}
	osAbi, b, err := ReadOsAbi(b)
	if err != nil {
		return File{}, nil, err
	}
	b, err = codec.Skip(b, 8)
	if err != nil {
		return File{}, nil, err
	}

	fileType, b, err := ReadFileType(b, e)
	if err != nil {
		return File{}, nil, err
	}
	machine, b, err := ReadMachine(b, e)
	if err != nil {
		return File{}, nil, err
	}
	b, err = codec.Skip(b, 4)
	if err != nil {
		return File{}, nil, err
	}

	entryPoint, b, err := ReadOptionalAddress64(b, e)
	if err != nil {
		return File{}, nil, err
	}
	programHeaderOffset, b, err := e.Uint64(b)
	if err != nil {
		return File{}, nil, err
	}
	sectionHeaderOffset, b, err := e.Uint64(b)
	if err != nil {
		return File{}, nil, err
	}
	procFlags, b, err := e.Uint32(b)
	if err != nil {
		return File{}, nil, err
	}
	b, err = codec.Skip(b, 2)
	if err != nil {
		return File{}, nil, err
	}
	programHeaderEntrySize, b, err := e.Uint16(b)
	if err != nil {
		return File{}, nil, err
	}
	programHeaderCount, b, err := e.Uint16(b)
	if err != nil {
		return File{}, nil, err
	}
	sectionHeaderEntrySize, b, err := e.Uint16(b)
	if err != nil {
		return File{}, nil, err
	}
	sectionHeaderCount, b, err := e.Uint16(b)
	if err != nil {
		return File{}, nil, err
	}
	sectionNameIndex, _, err := ReadSectionIndex16(b, e)
	if err != nil {
		return File{}, nil, err
	}

	programList, err := readPrograms(image, e, programHeaderOffset, programHeaderEntrySize, programHeaderCount)
	if err != nil {
		return File{}, nil, err
	}

	sectionList, err := readSections(image, e, sectionHeaderOffset, sectionHeaderEntrySize, sectionHeaderCount)
	if err != nil {
		return File{}, nil, err
	}

	f := File{
		Endianness:       endianness,
		Version:          version,
		OsAbi:            osAbi,
		Type:             fileType,
		Machine:          machine,
		Flags:            procFlags,
		EntryPoint:       entryPoint,
		Programs:         programList,
		Sections:         sectionList,
		SectionNameIndex: sectionNameIndex,
	}

	return f, nil, nil
}

// readPrograms reads exactly count program headers of entrySize bytes
// each, starting at offset, chunking strictly.
func readPrograms(image []byte, e codec.Endian, offset uint64, entrySize, count uint16) ([]Program, error) {
	if count == 0 {
		return nil, nil
	}
	programs := make([]Program, 0, count)
	for i := uint16(0); i < count; i++ {
		start := offset + uint64(i)*uint64(entrySize)
		end := start + uint64(entrySize)
		if end > uint64(len(image)) {
			return nil, fmt.Errorf("elf64: program header %d out of range [%d, %d)", i, start, end)
		}
		record := image[start:end]
		if uint64(len(record)) < programHeaderSize {
			return nil, fmt.Errorf("elf64: program header entry size %d smaller than required %d", entrySize, programHeaderSize)
		}
		p, _, err := ReadProgram(record, e, image)
		if err != nil {
			return nil, err
		}
		programs = append(programs, p)
	}
	return programs, nil
}

// readSections reads exactly count section headers of entrySize bytes
// each, starting at offset, symmetrically with readPrograms.
func readSections(image []byte, e codec.Endian, offset uint64, entrySize, count uint16) ([]Section, error) {
	if count == 0 {
		return nil, nil
	}
	sections := make([]Section, 0, count)
	for i := uint16(0); i < count; i++ {
		start := offset + uint64(i)*uint64(entrySize)
		end := start + uint64(entrySize)
		if end > uint64(len(image)) {
			return nil, fmt.Errorf("elf64: section header %d out of range [%d, %d)", i, start, end)
		}
		record := image[start:end]
		if uint64(len(record)) < sectionHeaderSize {
			return nil, fmt.Errorf("elf64: section header entry size %d smaller than required %d", entrySize, sectionHeaderSize)
		}
		s, _, err := ReadSection(record, e, image)
		if err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	return sections, nil
}

// ResolveSectionNames looks up the section-name string table named by
// SectionNameIndex and, for every other section, copies the
// null-terminated bytes at its NameOffset into an owned Name field. It
// mutates many sections at once via disjoint index access rather than
// aliasing.
func (f *File) ResolveSectionNames() error {
	idx, ok := f.SectionNameIndex.Value()
	if !ok {
		return nil // reserved index (e.g. Undefined): nothing to resolve against
	}
	if int(idx) >= len(f.Sections) {
		return fmt.Errorf("elf64: section name index %d out of range", idx)
	}
	if f.Sections[idx].Type != SectionTypeStringTable {
		return fmt.Errorf("elf64: section %d named as section-name string table is not a StringTable", idx)
	}
	strtab := f.Sections[idx].Data

	for i := range f.Sections {
		if uint32(i) == idx {
			continue
		}
		name, ok := strtab.StringAt(uint64(f.Sections[i].NameOffset))
		if !ok {
			return fmt.Errorf("elf64: section %d has an unresolvable name offset %d", i, f.Sections[i].NameOffset)
		}
		f.Sections[i].Name = name
	}
	return nil
}

// Strtab returns the section named ".strtab" whose type is StringTable,
// used for resolving symbol names.
func (f *File) Strtab() (*Section, bool) {
	for i := range f.Sections {
		if f.Sections[i].Type == SectionTypeStringTable && f.Sections[i].Name == ".strtab" {
			return &f.Sections[i], true
		}
	}
	return nil, false
}

// Write encodes the file header as a 64-byte ELF64 record. It does not
// emit program or section headers or their payloads; callers assemble
// those separately (this mirrors the split the file builder needs: a
// header whose field values depend on layout decided elsewhere).
func (f File) Write(dst []byte, programHeaderOffset, sectionHeaderOffset uint64, programHeaderCount, sectionHeaderCount uint16) {
	e, _ := f.Endianness.Strategy()

	copy(dst[0:4], magic[:])
	dst[4] = elfClass64
	f.Endianness.Write(dst[5:6])
	f.Version.Write(dst[6:7])
	f.OsAbi.Write(dst[7:8])
	for i := 8; i < 16; i++ {
		dst[i] = 0
	}
	f.Type.Write(dst[16:18], e)
	f.Machine.Write(dst[18:20], e)
	e.PutUint32(dst[20:24], 0)
	f.EntryPoint.Write(dst[24:32], e)
	e.PutUint64(dst[32:40], programHeaderOffset)
	e.PutUint64(dst[40:48], sectionHeaderOffset)
	e.PutUint32(dst[48:52], f.Flags)
	dst[52], dst[53] = 0, 0
	e.PutUint16(dst[54:56], programHeaderSize)
	e.PutUint16(dst[56:58], programHeaderCount)
	e.PutUint16(dst[58:60], sectionHeaderSize)
	e.PutUint16(dst[60:62], sectionHeaderCount)
	f.SectionNameIndex.Write16(dst[62:64], e)
}

// HeaderSize is the fixed ELF64 file header size, exported for callers
// (the file builder) that need to lay out bytes after it.
const HeaderSize = fileHeaderSize

// ProgramHeaderSize is the fixed ELF64 program header size.
const ProgramHeaderSize = programHeaderSize

// SectionHeaderSize is the fixed ELF64 section header size.
const SectionHeaderSize = sectionHeaderSize

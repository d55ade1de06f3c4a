package weld

import (
	"github.com/hywan/weld/internal/elf64"
)

// segment is one appended unit of loadable program data, awaiting
// placement by FileBuilder.Build.
type segment struct {
	flags elf64.ProgramFlags
	data  []byte
}

// FileBuilder assembles a minimal ELF64 executable in a single pass:
// one LOAD segment per appended section, concatenated payloads, no
// section table. This is a deliberately placeholder
// layout meant to exercise the codec end-to-end, not a general linker.
type FileBuilder struct {
	endianness elf64.Endianness
	version    elf64.Version
	osAbi      elf64.OsAbi
	machine    elf64.Machine
	flags      uint32

	segments []segment
}

// NewFileBuilder initialises a builder from an input file's identity
// fields.
func NewFileBuilder(endianness elf64.Endianness, version elf64.Version, osAbi elf64.OsAbi, machine elf64.Machine, processorFlags uint32) *FileBuilder {
	return &FileBuilder{
		endianness: endianness,
		version:    version,
		osAbi:      osAbi,
		machine:    machine,
		flags:      processorFlags,
	}
}

// AddSegment appends a loadable segment carrying data, with program
// flags mapped from the originating section's flags.
func (b *FileBuilder) AddSegment(flags elf64.ProgramFlags, data []byte) {
	b.segments = append(b.segments, segment{flags: flags, data: data})
}

// fileLoadVirtualAddress is the base virtual address the placeholder
// layout loads segments at.
const fileLoadVirtualAddress = elf64.Address(0x400000)

// segmentAlignment is the fixed alignment every emitted program header
// declares.
const segmentAlignment = 0x1000

// Build serialises the accumulated segments into a complete ELF64
// executable image.
func (b *FileBuilder) Build() ([]byte, error) {
	e, err := b.endianness.Strategy()
	if err != nil {
		return nil, err
	}

	programHeaderCount := len(b.segments)
	headerSize := elf64.HeaderSize
	programHeadersSize := programHeaderCount * elf64.ProgramHeaderSize

	payloadSize := 0
	for _, s := range b.segments {
		payloadSize += len(s.data)
	}

	total := headerSize + programHeadersSize + payloadSize
	out := make([]byte, total)

	align, err := elf64.NewAlignment(segmentAlignment)
	if err != nil {
		return nil, err
	}

	payloadCursor := headerSize + programHeadersSize
	for i, s := range b.segments {
		segSize := uint64(headerSize + programHeadersSize + len(s.data))
		p := elf64.Program{
			Type:            elf64.ProgramTypeLoad,
			Flags:           s.flags,
			FileOffset:      0,
			VirtualAddress:  fileLoadVirtualAddress,
			PhysicalAddress: elf64.Some(fileLoadVirtualAddress),
			FileImageSize:   segSize,
			MemorySize:      segSize,
			Alignment:       align,
		}
		headerStart := headerSize + i*elf64.ProgramHeaderSize
		p.Write(out[headerStart:headerStart+elf64.ProgramHeaderSize], e)

		copy(out[payloadCursor:payloadCursor+len(s.data)], s.data)
		payloadCursor += len(s.data)
	}

	entryPoint, err := fileLoadVirtualAddress.CheckedAdd(uint64(headerSize + elf64.ProgramHeaderSize))
	if err != nil {
		return nil, err
	}

	f := elf64.File{
		Endianness: b.endianness,
		Version:    b.version,
		OsAbi:      b.osAbi,
		Type:       elf64.FileTypeExecutable,
		Machine:    b.machine,
		Flags:      b.flags,
		EntryPoint: elf64.Some(entryPoint),
	}
	f.Write(out[:headerSize], uint64(headerSize), 0, uint16(programHeaderCount), 0)

	return out, nil
}

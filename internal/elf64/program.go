package elf64

import (
	"fmt"

	"github.com/hywan/weld/internal/codec"
)

// programHeaderSize is the fixed on-disk size of one ELF64 program
// header.
const programHeaderSize = 56

// Program is a segment: a byte range in a loaded image, the unit a
// loader maps into memory.
type Program struct {
	Type           ProgramType
	Flags          ProgramFlags
	FileOffset     uint64
	VirtualAddress Address
	PhysicalAddress OptionalAddress
	FileImageSize  uint64
	MemorySize     uint64
	Alignment      Alignment
	Data           Data
}

// ReadProgram decodes one 56-byte ELF64 program header, then slices the
// segment's Data view out of the full file image.
func ReadProgram(b []byte, e codec.Endian, fileImage []byte) (Program, []byte, error) {
	if len(b) < programHeaderSize {
		return Program{}, nil, fmt.Errorf("elf64: program header too short: %d bytes", len(b))
	}

	typ, rest, err := ReadProgramType(b, e)
	if err != nil {
		return Program{}, nil, err
	}
	flags, rest, err := ReadProgramFlags(rest, e)
	if err != nil {
		return Program{}, nil, err
	}
	fileOffset, rest, err := e.Uint64(rest)
	if err != nil {
		return Program{}, nil, err
	}
	vaddr, rest, err := ReadAddress64(rest, e)
	if err != nil {
		return Program{}, nil, err
	}
	paddr, rest, err := ReadOptionalAddress64(rest, e)
	if err != nil {
		return Program{}, nil, err
	}
	fileImageSize, rest, err := e.Uint64(rest)
	if err != nil {
		return Program{}, nil, err
	}
	memSize, rest, err := e.Uint64(rest)
	if err != nil {
		return Program{}, nil, err
	}
	align, rest, err := ReadAlignment(rest, e)
	if err != nil {
		return Program{}, nil, err
	}

	data, err := sliceFileImage(fileImage, fileOffset, fileImageSize, DataKindUnspecified)
	if err != nil {
		return Program{}, nil, err
	}

	return Program{
		Type:            typ,
		Flags:           flags,
		FileOffset:      fileOffset,
		VirtualAddress:  vaddr,
		PhysicalAddress: paddr,
		FileImageSize:   fileImageSize,
		MemorySize:      memSize,
		Alignment:       align,
		Data:            data,
	}, rest, nil
}

// Write encodes the program header as a 56-byte ELF64 record using e.
// It does not emit the segment's payload bytes; the caller is
// responsible for placing Data at the offset this header declares.
func (p Program) Write(dst []byte, e codec.Endian) {
	p.Type.Write(dst[0:4], e)
	p.Flags.Write(dst[4:8], e)
	e.PutUint64(dst[8:16], p.FileOffset)
	p.VirtualAddress.Write(dst[16:24], e)
	p.PhysicalAddress.Write(dst[24:32], e)
	e.PutUint64(dst[32:40], p.FileImageSize)
	e.PutUint64(dst[40:48], p.MemorySize)
	p.Alignment.Write(dst[48:56], e)
}

// sliceFileImage carves out fileImage[offset:offset+size] as a borrowed
// Data view, failing if the range falls outside the image.
func sliceFileImage(fileImage []byte, offset, size uint64, kind DataKind) (Data, error) {
	if offset > uint64(len(fileImage)) {
		return Data{}, fmt.Errorf("elf64: offset %d beyond file image of %d bytes", offset, len(fileImage))
	}
	end, err := addUint64(offset, size)
	if err != nil {
		return Data{}, err
	}
	if end > uint64(len(fileImage)) {
		return Data{}, fmt.Errorf("elf64: range [%d, %d) beyond file image of %d bytes", offset, end, len(fileImage))
	}
	return NewBorrowed(fileImage[offset:end], kind), nil
}

func addUint64(a, b uint64) (uint64, error) {
	if err := checkAddOverflow(a, b); err != nil {
		return 0, err
	}
	return a + b, nil
}

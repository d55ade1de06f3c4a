package elf64

import (
	"fmt"

	"github.com/hywan/weld/internal/codec"
)

// FileType is the e_type field: what kind of ELF object this file is.
type FileType uint16

const (
	FileTypeNone         FileType = 0
	FileTypeRelocatable  FileType = 1
	FileTypeExecutable   FileType = 2
	FileTypeSharedObject FileType = 3
	FileTypeCore         FileType = 4
)

var fileTypeNames = map[FileType]string{
	FileTypeNone:         "None",
	FileTypeRelocatable:  "RelocatableFile",
	FileTypeExecutable:   "ExecutableFile",
	FileTypeSharedObject: "SharedObjectFile",
	FileTypeCore:         "CoreFile",
}

func (t FileType) String() string {
	if name, ok := fileTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("FileType(%d)", uint16(t))
}

// ReadFileType decodes the 2-byte file type discriminant using e.
func ReadFileType(b []byte, e codec.Endian) (FileType, []byte, error) {
	raw, rest, err := e.Uint16(b)
	if err != nil {
		return 0, nil, err
	}
	if _, ok := fileTypeNames[FileType(raw)]; !ok {
		return 0, nil, fmt.Errorf("elf64: unrecognised file type discriminant %d", raw)
	}
	return FileType(raw), rest, nil
}

// Write encodes the discriminant using e.
func (t FileType) Write(dst []byte, e codec.Endian) {
	e.PutUint16(dst, uint16(t))
}

package elf64

import (
	"fmt"

	"github.com/hywan/weld/internal/codec"
)

// Endianness is the e_ident[EI_DATA] discriminant: which byte order the
// rest of the file is encoded in.
type Endianness uint8

const (
	// EndianLittle marks a little-endian file.
	EndianLittle Endianness = 1
	// EndianBig marks a big-endian file.
	EndianBig Endianness = 2
)

func (e Endianness) String() string {
	switch e {
	case EndianLittle:
		return "LittleEndian"
	case EndianBig:
		return "BigEndian"
	default:
		return fmt.Sprintf("Endianness(%d)", uint8(e))
	}
}

// ReadEndianness decodes the 1-byte endianness discriminant.
func ReadEndianness(b []byte) (Endianness, []byte, error) {
	raw, rest, err := codec.Byte(b)
	if err != nil {
		return 0, nil, err
	}
	switch Endianness(raw) {
	case EndianLittle, EndianBig:
		return Endianness(raw), rest, nil
	default:
		return 0, nil, fmt.Errorf("elf64: unrecognised endianness discriminant %d", raw)
	}
}

// Strategy resolves the byte-order strategy this discriminant selects.
func (e Endianness) Strategy() (codec.Endian, error) {
	switch e {
	case EndianLittle:
		return codec.LittleEndian, nil
	case EndianBig:
		return codec.BigEndian, nil
	default:
		return nil, fmt.Errorf("elf64: unrecognised endianness discriminant %d", uint8(e))
	}
}

// Write encodes the discriminant as its raw byte.
func (e Endianness) Write(dst []byte) {
	dst[0] = byte(e)
}

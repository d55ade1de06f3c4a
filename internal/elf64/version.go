package elf64

import (
	"fmt"

	"github.com/hywan/weld/internal/codec"
)

// Version is the ELF version discriminant. Only version 1 ("current") is
// recognised by any ELF64 consumer in practice.
type Version uint8

const (
	// VersionNone marks the invalid zero version.
	VersionNone Version = 0
	// VersionCurrent marks the only defined ELF version.
	VersionCurrent Version = 1
)

func (v Version) String() string {
	switch v {
	case VersionNone:
		return "None"
	case VersionCurrent:
		return "Current"
	default:
		return fmt.Sprintf("Version(%d)", uint8(v))
	}
}

// ReadVersion decodes the 1-byte version discriminant.
func ReadVersion(b []byte) (Version, []byte, error) {
	raw, rest, err := codec.Byte(b)
	if err != nil {
		return 0, nil, err
	}
	switch Version(raw) {
	case VersionNone, VersionCurrent:
		return Version(raw), rest, nil
	default:
		return 0, nil, fmt.Errorf("elf64: unrecognised version discriminant %d", raw)
	}
}

// Write encodes the discriminant as its raw byte.
func (v Version) Write(dst []byte) {
	dst[0] = byte(v)
}

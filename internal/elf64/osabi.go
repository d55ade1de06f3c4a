package elf64

import (
	"fmt"

	"github.com/hywan/weld/internal/codec"
)

// OsAbi is the e_ident[EI_OSABI] discriminant identifying the target OS
// ABI extensions in use.
type OsAbi uint8

const (
	OsAbiSystemV    OsAbi = 0
	OsAbiHPUX       OsAbi = 1
	OsAbiNetBSD     OsAbi = 2
	OsAbiLinux      OsAbi = 3
	OsAbiSolaris    OsAbi = 6
	OsAbiAIX        OsAbi = 7
	OsAbiIRIX       OsAbi = 8
	OsAbiFreeBSD    OsAbi = 9
	OsAbiTru64      OsAbi = 10
	OsAbiOpenBSD    OsAbi = 12
	OsAbiOpenVMS    OsAbi = 13
	OsAbiStandalone OsAbi = 255
)

var osAbiNames = map[OsAbi]string{
	OsAbiSystemV:    "SystemV",
	OsAbiHPUX:       "HPUX",
	OsAbiNetBSD:     "NetBSD",
	OsAbiLinux:      "Linux",
	OsAbiSolaris:    "Solaris",
	OsAbiAIX:        "AIX",
	OsAbiIRIX:       "IRIX",
	OsAbiFreeBSD:    "FreeBSD",
	OsAbiTru64:      "Tru64",
	OsAbiOpenBSD:    "OpenBSD",
	OsAbiOpenVMS:    "OpenVMS",
	OsAbiStandalone: "Standalone",
}

func (a OsAbi) String() string {
	if name, ok := osAbiNames[a]; ok {
		return name
	}
	return fmt.Sprintf("OsAbi(%d)", uint8(a))
}

// ReadOsAbi decodes the 1-byte OS ABI discriminant.
func ReadOsAbi(b []byte) (OsAbi, []byte, error) {
	raw, rest, err := codec.Byte(b)
	if err != nil {
		return 0, nil, err
	}
	if _, ok := osAbiNames[OsAbi(raw)]; !ok {
		return 0, nil, fmt.Errorf("elf64: unrecognised OS ABI discriminant %d", raw)
	}
	return OsAbi(raw), rest, nil
}

// Write encodes the discriminant as its raw byte.
func (a OsAbi) Write(dst []byte) {
	dst[0] = byte(a)
}

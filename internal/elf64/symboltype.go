package elf64

import "fmt"

// SymbolType is the low nibble of a symbol's st_info byte: what the
// symbol refers to.
type SymbolType uint8

const (
	SymbolTypeNoType  SymbolType = 0
	SymbolTypeObject  SymbolType = 1
	SymbolTypeFunc    SymbolType = 2
	SymbolTypeSection SymbolType = 3
	SymbolTypeFile    SymbolType = 4
	SymbolTypeCommon  SymbolType = 5
	SymbolTypeTLS     SymbolType = 6
)

var symbolTypeNames = map[SymbolType]string{
	SymbolTypeNoType:  "NoType",
	SymbolTypeObject:  "Object",
	SymbolTypeFunc:    "Function",
	SymbolTypeSection: "Section",
	SymbolTypeFile:    "File",
	SymbolTypeCommon:  "Common",
	SymbolTypeTLS:     "TLS",
}

func (t SymbolType) String() string {
	if name, ok := symbolTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("SymbolType(%d)", uint8(t))
}

// ReadSymbolType decodes the low nibble of the packed st_info byte. It
// does not consume info; SymbolBinding reads the same byte's high nibble
// independently.
func ReadSymbolType(info byte) (SymbolType, error) {
	t := SymbolType(info & 0x0F)
	if _, ok := symbolTypeNames[t]; !ok {
		return 0, fmt.Errorf("elf64: unrecognised symbol type discriminant %d", t)
	}
	return t, nil
}

// packed returns this type's contribution to a packed st_info byte.
func (t SymbolType) packed() byte {
	return byte(t) & 0x0F
}

// PackSymbolInfo combines a binding and type into one st_info byte.
func PackSymbolInfo(binding SymbolBinding, typ SymbolType) byte {
	return binding.packed() | typ.packed()
}

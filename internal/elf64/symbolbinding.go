package elf64

import "fmt"

// SymbolBinding is the high nibble of a symbol's st_info byte: its
// linkage scope.
type SymbolBinding uint8

const (
	SymbolBindingLocal  SymbolBinding = 0
	SymbolBindingGlobal SymbolBinding = 1
	SymbolBindingWeak   SymbolBinding = 2
)

var symbolBindingNames = map[SymbolBinding]string{
	SymbolBindingLocal:  "Local",
	SymbolBindingGlobal: "Global",
	SymbolBindingWeak:   "Weak",
}

func (b SymbolBinding) String() string {
	if name, ok := symbolBindingNames[b]; ok {
		return name
	}
	return fmt.Sprintf("SymbolBinding(%d)", uint8(b))
}

// ReadSymbolBinding decodes the high nibble of the packed st_info byte.
// It does not consume info; SymbolType reads the same byte's low nibble
// independently.
func ReadSymbolBinding(info byte) (SymbolBinding, error) {
	b := SymbolBinding(info >> 4)
	if _, ok := symbolBindingNames[b]; !ok {
		return 0, fmt.Errorf("elf64: unrecognised symbol binding discriminant %d", b)
	}
	return b, nil
}

// packed returns this binding's contribution to a packed st_info byte.
func (b SymbolBinding) packed() byte {
	return byte(b) << 4
}

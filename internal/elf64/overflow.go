package elf64

import (
	"fmt"
	"math"
)

// checkAddOverflow reports whether a+b would overflow uint64.
func checkAddOverflow(a, b uint64) error {
	if a > math.MaxUint64-b {
		return fmt.Errorf("elf64: address addition overflow: %d + %d exceeds uint64 max", a, b)
	}
	return nil
}

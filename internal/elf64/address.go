package elf64

import "github.com/hywan/weld/internal/codec"

// Address is a 64-bit file or virtual address.
type Address uint64

// OptionalAddress distinguishes a present Address from its absence. In
// contexts that give zero a special meaning (entry point, physical
// address), zero decodes as !Present rather than Address(0).
type OptionalAddress struct {
	Value   Address
	Present bool
}

// None is the absent OptionalAddress.
var None = OptionalAddress{}

// Some wraps a present address.
func Some(a Address) OptionalAddress {
	return OptionalAddress{Value: a, Present: true}
}

// ReadAddress64 decodes a 64-bit address field using e.
func ReadAddress64(b []byte, e codec.Endian) (Address, []byte, error) {
	v, rest, err := e.Uint64(b)
	if err != nil {
		return 0, nil, err
	}
	return Address(v), rest, nil
}

// ReadAddress32 decodes a 32-bit address field using e, zero-extended.
func ReadAddress32(b []byte, e codec.Endian) (Address, []byte, error) {
	v, rest, err := e.Uint32(b)
	if err != nil {
		return 0, nil, err
	}
	return Address(v), rest, nil
}

// ReadOptionalAddress64 decodes a 64-bit address field where zero means
// absence.
func ReadOptionalAddress64(b []byte, e codec.Endian) (OptionalAddress, []byte, error) {
	a, rest, err := ReadAddress64(b, e)
	if err != nil {
		return OptionalAddress{}, nil, err
	}
	if a == 0 {
		return None, rest, nil
	}
	return Some(a), rest, nil
}

// Write encodes the address as a 64-bit field using e.
func (a Address) Write(dst []byte, e codec.Endian) {
	e.PutUint64(dst, uint64(a))
}

// Write encodes the optional address as a 64-bit field using e, encoding
// absence as zero.
func (o OptionalAddress) Write(dst []byte, e codec.Endian) {
	if !o.Present {
		e.PutUint64(dst, 0)
		return
	}
	o.Value.Write(dst, e)
}

// CheckedAdd adds delta to a, failing rather than silently wrapping on
// overflow.
func (a Address) CheckedAdd(delta uint64) (Address, error) {
	if err := checkAddOverflow(uint64(a), delta); err != nil {
		return 0, err
	}
	return a + Address(delta), nil
}

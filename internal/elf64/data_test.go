package elf64

import (
	"testing"

	"github.com/hywan/weld/internal/codec"
	"github.com/stretchr/testify/require"
)

func TestData_StringAt_OffsetsIntoStringTable(t *testing.T) {
	raw := []byte{0x00, 'a', 'b', 'c', 0x00, 'd', 'e', 0x00}
	d := NewBorrowed(raw, DataKindStringTable)

	s, ok := d.StringAt(0)
	require.True(t, ok)
	require.Equal(t, "", s)

	s, ok = d.StringAt(1)
	require.True(t, ok)
	require.Equal(t, "abc", s)

	s, ok = d.StringAt(5)
	require.True(t, ok)
	require.Equal(t, "de", s)

	s, ok = d.StringAt(7)
	require.True(t, ok)
	require.Equal(t, "", s)

	_, ok = d.StringAt(8)
	require.False(t, ok)
}

func TestData_StringAt_WrongKindFails(t *testing.T) {
	d := NewBorrowed([]byte{0, 'a', 0}, DataKindProgramData)
	_, ok := d.StringAt(0)
	require.False(t, ok)
}

func TestData_StringAt_NoTerminatorFails(t *testing.T) {
	d := NewBorrowed([]byte{'a', 'b', 'c'}, DataKindStringTable)
	_, ok := d.StringAt(0)
	require.False(t, ok)
}

func TestData_Symbols_IteratesAndResolvesNames(t *testing.T) {
	strtab := NewBorrowed([]byte{0x00, 'f', 'o', 'o', 0x00}, DataKindStringTable)

	e := codec.LittleEndian
	rec := make([]byte, symbolRecordSize)
	sym := Symbol{NameOffset: 1, Binding: SymbolBindingGlobal, Type: SymbolTypeFunc, SectionIndex: Ok(1), Value: 0x10, Size: 4}
	sym.Write(rec, e)

	d := Data{Bytes: rec, Kind: DataKindSymbolTable}
	next := d.Symbols(e, &strtab)

	got, ok, err := next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "foo", got.Name)
	require.Equal(t, uint64(0x10), got.Value)

	_, ok, err = next()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestData_Symbols_WrongKindErrors(t *testing.T) {
	d := NewBorrowed(make([]byte, symbolRecordSize), DataKindProgramData)
	next := d.Symbols(codec.LittleEndian, nil)
	_, ok, err := next()
	require.False(t, ok)
	require.Error(t, err)
}

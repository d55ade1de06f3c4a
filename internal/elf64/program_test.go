package elf64

import (
	"testing"

	"github.com/hywan/weld/internal/codec"
	"github.com/stretchr/testify/require"
)

func TestProgram_RoundTrip(t *testing.T) {
	fileImage := make([]byte, 64)
	for i := range fileImage {
		fileImage[i] = byte(i)
	}

	e := codec.LittleEndian
	raw := make([]byte, programHeaderSize)
	ProgramTypeLoad.Write(raw[0:4], e)
	(ProgramFlagRead | ProgramFlagExecute).Write(raw[4:8], e)
	e.PutUint64(raw[8:16], 8)
	Address(0x1000).Write(raw[16:24], e)
	Some(Address(0x1000)).Write(raw[24:32], e)
	e.PutUint64(raw[32:40], 16)
	e.PutUint64(raw[40:48], 16)
	align, err := NewAlignment(16)
	require.NoError(t, err)
	align.Write(raw[48:56], e)

	p, rest, err := ReadProgram(raw, e, fileImage)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, ProgramTypeLoad, p.Type)
	require.True(t, p.Flags.Has(ProgramFlagRead))
	require.True(t, p.Flags.Has(ProgramFlagExecute))
	require.Equal(t, uint64(8), p.FileOffset)
	require.Equal(t, Address(0x1000), p.VirtualAddress)
	require.True(t, p.PhysicalAddress.Present)
	require.Equal(t, uint64(16), p.FileImageSize)
	require.Equal(t, uint64(16), p.MemorySize)
	require.Equal(t, fileImage[8:24], p.Data.Bytes)
	require.Equal(t, DataKindUnspecified, p.Data.Kind)

	out := make([]byte, programHeaderSize)
	p.Write(out, e)
	require.Equal(t, raw, out)
}

func TestProgram_OutOfRangeDataErrors(t *testing.T) {
	fileImage := []byte{1, 2, 3}
	e := codec.LittleEndian
	raw := make([]byte, programHeaderSize)
	ProgramTypeLoad.Write(raw[0:4], e)
	e.PutUint64(raw[8:16], 0)
	e.PutUint64(raw[32:40], 100)
	_, _, err := ReadProgram(raw, e, fileImage)
	require.Error(t, err)
}

func TestProgram_TooShortErrors(t *testing.T) {
	_, _, err := ReadProgram(make([]byte, programHeaderSize-1), codec.LittleEndian, nil)
	require.Error(t, err)
}

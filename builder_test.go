package weld

import (
	"testing"

	"github.com/hywan/weld/internal/codec"
	"github.com/hywan/weld/internal/elf64"
	"github.com/stretchr/testify/require"
)

func TestFileBuilder_EmptyBuild(t *testing.T) {
	b := NewFileBuilder(elf64.EndianLittle, elf64.VersionCurrent, elf64.OsAbiSystemV, elf64.MachineX86_64, 0)
	out, err := b.Build()
	require.NoError(t, err)
	require.Len(t, out, elf64.HeaderSize)
	require.Equal(t, []byte{0x7F, 'E', 'L', 'F', 0x02}, out[:5])

	f, rest, err := elf64.ReadFile(out)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, elf64.FileTypeExecutable, f.Type)
	require.Len(t, f.Programs, 0)
}

func TestFileBuilder_OneSegment(t *testing.T) {
	b := NewFileBuilder(elf64.EndianLittle, elf64.VersionCurrent, elf64.OsAbiLinux, elf64.MachineX86_64, 0)
	data := []byte{1, 2, 3, 4}
	b.AddSegment(elf64.ProgramFlagRead|elf64.ProgramFlagExecute, data)

	out, err := b.Build()
	require.NoError(t, err)

	f, rest, err := elf64.ReadFile(out)
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Len(t, f.Programs, 1)

	p := f.Programs[0]
	require.Equal(t, elf64.ProgramTypeLoad, p.Type)
	require.True(t, p.Flags.Has(elf64.ProgramFlagRead))
	require.True(t, p.Flags.Has(elf64.ProgramFlagExecute))
	require.True(t, p.PhysicalAddress.Present)
	require.True(t, f.EntryPoint.Present)

	wantEntry, err := fileLoadVirtualAddress.CheckedAdd(uint64(elf64.HeaderSize + elf64.ProgramHeaderSize))
	require.NoError(t, err)
	require.Equal(t, wantEntry, f.EntryPoint.Value)

	expectedSize := uint64(elf64.HeaderSize + elf64.ProgramHeaderSize + len(data))
	require.Equal(t, expectedSize, p.FileImageSize)
	require.Equal(t, expectedSize, p.MemorySize)
}

func TestFileBuilder_HeaderEncodesLittleEndian(t *testing.T) {
	b := NewFileBuilder(elf64.EndianLittle, elf64.VersionCurrent, elf64.OsAbiSystemV, elf64.MachineX86_64, 0)
	out, err := b.Build()
	require.NoError(t, err)

	phOffset, _, err := codec.LittleEndian.Uint64(out[32:40])
	require.NoError(t, err)
	require.EqualValues(t, elf64.HeaderSize, phOffset)
}

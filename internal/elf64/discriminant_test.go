package elf64

import (
	"testing"

	"github.com/hywan/weld/internal/codec"
	"github.com/stretchr/testify/require"
)

func TestEndianness_RoundTrip(t *testing.T) {
	for _, e := range []Endianness{EndianLittle, EndianBig} {
		buf := make([]byte, 1)
		e.Write(buf)
		got, rest, err := ReadEndianness(buf)
		require.NoError(t, err)
		require.Equal(t, e, got)
		require.Empty(t, rest)
	}
}

func TestEndianness_UnknownDiscriminantErrors(t *testing.T) {
	_, _, err := ReadEndianness([]byte{9})
	require.Error(t, err)
}

func TestEndianness_Strategy(t *testing.T) {
	s, err := EndianLittle.Strategy()
	require.NoError(t, err)
	require.Equal(t, codec.LittleEndian, s)

	s, err = EndianBig.Strategy()
	require.NoError(t, err)
	require.Equal(t, codec.BigEndian, s)
}

func TestVersion_RoundTrip(t *testing.T) {
	for _, v := range []Version{VersionNone, VersionCurrent} {
		buf := make([]byte, 1)
		v.Write(buf)
		got, rest, err := ReadVersion(buf)
		require.NoError(t, err)
		require.Equal(t, v, got)
		require.Empty(t, rest)
	}
}

func TestVersion_UnknownDiscriminantErrors(t *testing.T) {
	_, _, err := ReadVersion([]byte{7})
	require.Error(t, err)
}

func TestOsAbi_RoundTrip(t *testing.T) {
	for abi := range osAbiNames {
		buf := make([]byte, 1)
		abi.Write(buf)
		got, rest, err := ReadOsAbi(buf)
		require.NoError(t, err)
		require.Equal(t, abi, got)
		require.Empty(t, rest)
	}
}

func TestOsAbi_UnknownDiscriminantErrors(t *testing.T) {
	_, _, err := ReadOsAbi([]byte{200})
	require.Error(t, err)
}

func TestFileType_RoundTrip(t *testing.T) {
	for ft := range fileTypeNames {
		buf := make([]byte, 2)
		ft.Write(buf, codec.BigEndian)
		got, rest, err := ReadFileType(buf, codec.BigEndian)
		require.NoError(t, err)
		require.Equal(t, ft, got)
		require.Empty(t, rest)
	}
}

func TestFileType_UnknownDiscriminantErrors(t *testing.T) {
	buf := make([]byte, 2)
	codec.BigEndian.PutUint16(buf, 99)
	_, _, err := ReadFileType(buf, codec.BigEndian)
	require.Error(t, err)
}

func TestMachine_RoundTrip(t *testing.T) {
	for m := range machineNames {
		buf := make([]byte, 2)
		m.Write(buf, codec.LittleEndian)
		got, rest, err := ReadMachine(buf, codec.LittleEndian)
		require.NoError(t, err)
		require.Equal(t, m, got)
		require.Empty(t, rest)
	}
}

func TestMachine_UnknownDiscriminantErrors(t *testing.T) {
	buf := make([]byte, 2)
	codec.LittleEndian.PutUint16(buf, 9999)
	_, _, err := ReadMachine(buf, codec.LittleEndian)
	require.Error(t, err)
}

func TestProgramType_RoundTrip(t *testing.T) {
	for pt := range programTypeNames {
		buf := make([]byte, 4)
		pt.Write(buf, codec.BigEndian)
		got, rest, err := ReadProgramType(buf, codec.BigEndian)
		require.NoError(t, err)
		require.Equal(t, pt, got)
		require.Empty(t, rest)
	}
}

func TestProgramType_UnknownDiscriminantErrors(t *testing.T) {
	buf := make([]byte, 4)
	codec.BigEndian.PutUint32(buf, 999)
	_, _, err := ReadProgramType(buf, codec.BigEndian)
	require.Error(t, err)
}

func TestSectionType_RoundTrip(t *testing.T) {
	for st := range sectionTypeNames {
		buf := make([]byte, 4)
		st.Write(buf, codec.LittleEndian)
		got, rest, err := ReadSectionType(buf, codec.LittleEndian)
		require.NoError(t, err)
		require.Equal(t, st, got)
		require.Empty(t, rest)
	}
}

func TestSectionType_UnknownDiscriminantErrors(t *testing.T) {
	buf := make([]byte, 4)
	codec.LittleEndian.PutUint32(buf, 12345)
	_, _, err := ReadSectionType(buf, codec.LittleEndian)
	require.Error(t, err)
}

func TestSectionType_DataKind(t *testing.T) {
	require.Equal(t, DataKindStringTable, SectionTypeStringTable.DataKind())
	require.Equal(t, DataKindSymbolTable, SectionTypeSymbolTable.DataKind())
	require.Equal(t, DataKindSymbolTable, SectionTypeDynSym.DataKind())
	require.Equal(t, DataKindProgramData, SectionTypeProgramData.DataKind())
	require.Equal(t, DataKindUnspecified, SectionTypeNoBits.DataKind())
}

func TestSymbolBinding_RoundTrip(t *testing.T) {
	for b := range symbolBindingNames {
		info := b.packed() | SymbolTypeNoType.packed()
		got, err := ReadSymbolBinding(info)
		require.NoError(t, err)
		require.Equal(t, b, got)
	}
}

func TestSymbolBinding_UnknownDiscriminantErrors(t *testing.T) {
	_, err := ReadSymbolBinding(0xF0)
	require.Error(t, err)
}

func TestSymbolType_RoundTrip(t *testing.T) {
	for typ := range symbolTypeNames {
		info := SymbolBindingGlobal.packed() | typ.packed()
		got, err := ReadSymbolType(info)
		require.NoError(t, err)
		require.Equal(t, typ, got)
	}
}

func TestSymbolType_UnknownDiscriminantErrors(t *testing.T) {
	_, err := ReadSymbolType(0x0F)
	require.Error(t, err)
}

func TestPackSymbolInfo(t *testing.T) {
	info := PackSymbolInfo(SymbolBindingWeak, SymbolTypeObject)
	binding, err := ReadSymbolBinding(info)
	require.NoError(t, err)
	require.Equal(t, SymbolBindingWeak, binding)

	typ, err := ReadSymbolType(info)
	require.NoError(t, err)
	require.Equal(t, SymbolTypeObject, typ)
}

func TestProgramFlags_RoundTrip(t *testing.T) {
	f := ProgramFlagRead | ProgramFlagExecute
	buf := make([]byte, 4)
	f.Write(buf, codec.LittleEndian)
	got, rest, err := ReadProgramFlags(buf, codec.LittleEndian)
	require.NoError(t, err)
	require.Equal(t, f, got)
	require.Empty(t, rest)
	require.True(t, got.Has(ProgramFlagRead))
	require.False(t, got.Has(ProgramFlagWrite))
	require.Equal(t, "r-x", got.String())
}

func TestProgramFlags_RejectsUnknownBits(t *testing.T) {
	buf := make([]byte, 4)
	codec.LittleEndian.PutUint32(buf, 1<<8)
	_, _, err := ReadProgramFlags(buf, codec.LittleEndian)
	require.Error(t, err)
}

func TestSectionFlags_RoundTrip(t *testing.T) {
	f := SectionFlagAllocable | SectionFlagExecutable
	buf := make([]byte, 8)
	f.Write(buf, codec.BigEndian)
	got, rest, err := ReadSectionFlags(buf, codec.BigEndian)
	require.NoError(t, err)
	require.Equal(t, f, got)
	require.Empty(t, rest)
}

func TestSectionFlags_RejectsUnknownBits(t *testing.T) {
	buf := make([]byte, 8)
	codec.BigEndian.PutUint64(buf, 1<<3) // reserved bit
	_, _, err := ReadSectionFlags(buf, codec.BigEndian)
	require.Error(t, err)
}

func TestSectionFlags_ToProgramFlags(t *testing.T) {
	f := SectionFlagAllocable | SectionFlagExecutable | SectionFlagWritable
	pf := f.ToProgramFlags()
	require.True(t, pf.Has(ProgramFlagRead))
	require.True(t, pf.Has(ProgramFlagExecute))
	require.True(t, pf.Has(ProgramFlagWrite))
}

func TestSectionIndex_OrdinaryRoundTrip(t *testing.T) {
	idx := Ok(42)
	buf := make([]byte, 2)
	idx.Write16(buf, codec.LittleEndian)
	got, rest, err := ReadSectionIndex16(buf, codec.LittleEndian)
	require.NoError(t, err)
	require.Equal(t, idx, got)
	require.Empty(t, rest)
	v, ok := got.Value()
	require.True(t, ok)
	require.Equal(t, uint32(42), v)
}

func TestSectionIndex_ReservedRoundTrip(t *testing.T) {
	for r := range reservedSectionIndexNames {
		idx := Reserved(r)
		buf := make([]byte, 4)
		idx.Write32(buf, codec.BigEndian)
		got, rest, err := ReadSectionIndex32(buf, codec.BigEndian)
		require.NoError(t, err)
		require.Equal(t, idx, got)
		require.Empty(t, rest)
		require.True(t, got.IsReserved())
	}
}

func TestSectionIndex_Undefined(t *testing.T) {
	v, ok := Undefined.Value()
	require.False(t, ok)
	require.Equal(t, uint32(0), v)
	require.True(t, Undefined.IsReserved())
}

package elf64

import (
	"bytes"

	"github.com/hywan/weld/internal/codec"
)

// DataKind tags how a byte range should be interpreted.
type DataKind int

const (
	DataKindUnspecified DataKind = iota
	DataKindStringTable
	DataKindSymbolTable
	DataKindProgramData
)

func (k DataKind) String() string {
	switch k {
	case DataKindStringTable:
		return "StringTable"
	case DataKindSymbolTable:
		return "SymbolTable"
	case DataKindProgramData:
		return "ProgramData"
	default:
		return "Unspecified"
	}
}

// Data is a tagged byte view: a range of bytes together with the kind of
// content it holds. Data read from an input file borrows that file's
// backing buffer (Owned == false); data synthesized during output owns
// its bytes outright (Owned == true). The tag governs which interpretive
// operations are legal.
type Data struct {
	Bytes     []byte
	Kind      DataKind
	Owned     bool
	EntrySize uint64 // symbol/relocation record size, when Kind == SymbolTable
}

// NewBorrowed wraps a byte range borrowed from an input file's backing
// buffer.
func NewBorrowed(b []byte, kind DataKind) Data {
	return Data{Bytes: b, Kind: kind}
}

// NewOwned wraps a freshly allocated byte range synthesized during
// output.
func NewOwned(b []byte, kind DataKind) Data {
	return Data{Bytes: b, Kind: kind, Owned: true}
}

// StringAt returns the bytes from off up to (but not including) the
// first zero byte, or false if the offset is out of range or no
// terminator precedes the end of the range. Legal only when Kind ==
// StringTable. An offset landing exactly on a terminator yields an empty
// string, which is valid.
func (d Data) StringAt(off uint64) (string, bool) {
	if d.Kind != DataKindStringTable {
		return "", false
	}
	if off > uint64(len(d.Bytes)) {
		return "", false
	}
	rest := d.Bytes[off:]
	idx := bytes.IndexByte(rest, 0)
	if idx < 0 {
		return "", false
	}
	return string(rest[:idx]), true
}

// Symbols returns a lazy iterator over fixed-size symbol records, one
// step at a time via the returned function. Legal only when Kind ==
// SymbolTable. The returned function yields (symbol, true) per call
// until the records are exhausted, at which point it yields
// (Symbol{}, false) forever. strtab, if non-nil, resolves each
// symbol's name.
func (d Data) Symbols(e codec.Endian, strtab *Data) func() (Symbol, bool, error) {
	entrySize := d.EntrySize
	if entrySize == 0 {
		entrySize = symbolRecordSize
	}
	remaining := d.Bytes
	return func() (Symbol, bool, error) {
		if d.Kind != DataKindSymbolTable {
			return Symbol{}, false, errNotSymbolTable
		}
		if uint64(len(remaining)) < entrySize {
			return Symbol{}, false, nil
		}
		record := remaining[:entrySize]
		remaining = remaining[entrySize:]

		sym, _, err := ReadSymbol(record, e)
		if err != nil {
			return Symbol{}, false, err
		}
		if strtab != nil {
			if name, ok := strtab.StringAt(sym.NameOffset); ok {
				sym.Name = name
			}
		}
		return sym, true, nil
	}
}

var errNotSymbolTable = dataKindError{want: DataKindSymbolTable}

type dataKindError struct {
	want DataKind
}

func (e dataKindError) Error() string {
	return "elf64: Data is not tagged " + e.want.String()
}

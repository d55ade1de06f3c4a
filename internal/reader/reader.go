// Package reader provides the file access contract an ELF64 parse runs
// against: a byte view that stays valid until the handle is closed,
// backed by either a plain read or a shared read-only mapping.
package reader

import "github.com/hywan/weld/internal/wlderr"

// Reader exposes the bytes of an opened file. The returned slice from
// Bytes is valid until Close is called.
type Reader interface {
	Bytes() []byte
	Close() error
}

// Opener opens a filesystem path into a Reader. Direct and Mapped are
// interchangeable implementations; nothing downstream of Open should
// assume which one produced a given Reader.
type Opener interface {
	Open(path string) (Reader, error)
}

func errEmptyFile(path string) error {
	return wlderr.WrapFile(wlderr.KindParsingFile, path, errEmpty)
}

var errEmpty = emptyFileError{}

type emptyFileError struct{}

func (emptyFileError) Error() string { return "file is empty" }

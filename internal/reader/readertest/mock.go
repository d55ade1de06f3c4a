// Package readertest provides an in-memory reader.Reader for tests that
// need to exercise the parsing path without touching the filesystem.
package readertest

import "github.com/hywan/weld/internal/reader"

// Mock is an in-memory reader.Reader backed by a fixed byte slice.
type Mock struct {
	data   []byte
	closed bool
}

// New wraps data as a Mock reader.
func New(data []byte) *Mock {
	return &Mock{data: data}
}

// Bytes returns the wrapped data.
func (m *Mock) Bytes() []byte { return m.data }

// Close marks the mock closed. It never fails.
func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close has been called, for tests asserting
// lifecycle discipline.
func (m *Mock) Closed() bool { return m.closed }

// Opener adapts a fixed path->bytes mapping into a reader.Opener, for
// driver tests that need several distinct input files.
type Opener struct {
	Files map[string][]byte
}

// Open implements reader.Opener.
func (o Opener) Open(path string) (reader.Reader, error) {
	data, ok := o.Files[path]
	if !ok {
		return nil, &notFoundError{path: path}
	}
	return New(data), nil
}

type notFoundError struct{ path string }

func (e *notFoundError) Error() string { return "readertest: no fixture for " + e.path }

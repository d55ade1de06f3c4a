package reader

import (
	"fmt"
	"math"
	"os"

	"golang.org/x/sys/unix"

	"github.com/hywan/weld/internal/wlderr"
)

// Mapped establishes a shared read-only memory mapping over a file.
// Close unmaps it; a failed unmap is treated as fatal because it leaves
// the process unable to reason about the state of its address space.
type Mapped struct{}

// Open implements Opener.
func (Mapped) Open(path string) (Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wlderr.WrapFile(wlderr.KindParsingFile, path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, wlderr.WrapFile(wlderr.KindParsingFile, path, err)
	}

	size := fi.Size()
	if size == 0 {
		return nil, errEmptyFile(path)
	}
	if size < 0 || uint64(size) > math.MaxInt {
		return nil, wlderr.WrapFile(wlderr.KindParsingFile, path, fmt.Errorf("file length %d exceeds address width", size))
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, wlderr.WrapFile(wlderr.KindParsingFile, path, err)
	}
	return &mappedReader{data: data}, nil
}

type mappedReader struct {
	data []byte
}

func (r *mappedReader) Bytes() []byte { return r.data }

func (r *mappedReader) Close() error {
	if err := unix.Munmap(r.data); err != nil {
		panic(fmt.Sprintf("reader: munmap failed: %v", err))
	}
	return nil
}

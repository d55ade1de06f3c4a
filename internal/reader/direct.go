package reader

import (
	"os"

	"github.com/hywan/weld/internal/wlderr"
)

// Direct reads a whole file into an owned buffer via os.ReadFile.
type Direct struct{}

// Open implements Opener.
func (Direct) Open(path string) (Reader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wlderr.WrapFile(wlderr.KindParsingFile, path, err)
	}
	if len(data) == 0 {
		return nil, errEmptyFile(path)
	}
	return &directReader{data: data}, nil
}

type directReader struct {
	data []byte
}

func (r *directReader) Bytes() []byte { return r.data }

func (r *directReader) Close() error { return nil }

package reader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirect_Open_ReadsWholeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "object.o")
	want := []byte{0x7F, 'E', 'L', 'F', 2, 1, 1, 0}
	require.NoError(t, os.WriteFile(path, want, 0o644))

	r, err := Direct{}.Open(path)
	require.NoError(t, err)
	defer r.Close()

	require.Equal(t, want, r.Bytes())
}

func TestDirect_Open_RejectsEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.o")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := Direct{}.Open(path)
	require.Error(t, err)
}

func TestDirect_Open_MissingFileErrors(t *testing.T) {
	_, err := Direct{}.Open(filepath.Join(t.TempDir(), "does-not-exist.o"))
	require.Error(t, err)
}

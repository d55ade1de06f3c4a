package weld

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTargetTriple_BinaryFormat(t *testing.T) {
	cases := []struct {
		raw  string
		want BinaryFormat
	}{
		{"x86_64-unknown-linux-gnu", FormatELF},
		{"aarch64-unknown-linux-musl", FormatELF},
		{"x86_64-apple-darwin", FormatMachO},
		{"x86_64-pc-windows-msvc", FormatPE},
		{"wasm32-unknown-unknown", FormatWasm},
		{"totally-unrecognised-triple", FormatUnknown},
	}
	for _, c := range cases {
		got := ParseTargetTriple(c.raw).BinaryFormat()
		require.Equal(t, c.want, got, c.raw)
	}
}

func TestConfiguration_WorkerCountDefault(t *testing.T) {
	var c Configuration
	require.Equal(t, DefaultWorkerCount, c.workerCount())

	c.WorkerCount = 9
	require.Equal(t, 9, c.workerCount())

	c.WorkerCount = -1
	require.Equal(t, DefaultWorkerCount, c.workerCount())
}

func TestHostTarget_ResolvesToELF(t *testing.T) {
	// On every platform this repo targets with a working backend
	// (Linux), the host triple resolves to FormatELF. Only a darwin host
	// resolves to FormatMachO.
	got := HostTarget().BinaryFormat()
	if runtime.GOOS == "darwin" {
		require.Equal(t, FormatMachO, got)
		return
	}
	require.Equal(t, FormatELF, got)
}

package weld

import (
	"runtime"
	"strings"
)

// BinaryFormat names the object/executable format a TargetTriple
// resolves to. Only FormatELF has a working linker backend; the rest
// exist so target dispatch and UnsupportedBinaryFormat carry a real
// resolved format name instead of a raw, unparsed triple string.
type BinaryFormat int

const (
	FormatUnknown BinaryFormat = iota
	FormatELF
	FormatMachO
	FormatPE
	FormatWasm
)

func (f BinaryFormat) String() string {
	switch f {
	case FormatELF:
		return "elf"
	case FormatMachO:
		return "macho"
	case FormatPE:
		return "pe"
	case FormatWasm:
		return "wasm"
	default:
		return "unknown"
	}
}

// TargetTriple identifies the linker's output target, e.g.
// "x86_64-unknown-linux-gnu". BinaryFormat searches the whole triple
// string, not one component, to resolve a BinaryFormat.
type TargetTriple struct {
	Raw string
}

// HostTarget returns a TargetTriple that, on every platform weld
// currently targets with a working backend (Linux, any architecture),
// resolves to FormatELF.
func HostTarget() TargetTriple {
	if runtime.GOOS == "darwin" {
		return TargetTriple{Raw: runtime.GOARCH + "-apple-darwin"}
	}
	return TargetTriple{Raw: runtime.GOARCH + "-unknown-linux-gnu"}
}

// ParseTargetTriple wraps a raw triple string without validating its
// component count; BinaryFormat resolution tolerates partial or unusual
// triples by falling back to FormatUnknown.
func ParseTargetTriple(raw string) TargetTriple {
	return TargetTriple{Raw: raw}
}

// BinaryFormat resolves the triple to the object format a linker
// backend would need to handle it, by case-insensitive substring match
// of known architecture, vendor, OS and environment names anywhere in
// the triple (e.g. "wasm" in "wasm32-unknown-unknown").
func (t TargetTriple) BinaryFormat() BinaryFormat {
	raw := strings.ToLower(t.Raw)
	switch {
	case strings.Contains(raw, "linux"), strings.Contains(raw, "elf"),
		strings.Contains(raw, "freebsd"), strings.Contains(raw, "netbsd"),
		strings.Contains(raw, "openbsd"):
		return FormatELF
	case strings.Contains(raw, "darwin"), strings.Contains(raw, "macho"),
		strings.Contains(raw, "apple"):
		return FormatMachO
	case strings.Contains(raw, "windows"), strings.Contains(raw, "pe-"),
		strings.Contains(raw, "-pe"):
		return FormatPE
	case strings.Contains(raw, "wasm"):
		return FormatWasm
	default:
		return FormatUnknown
	}
}

func (t TargetTriple) String() string {
	if t.Raw == "" {
		return "unknown"
	}
	return t.Raw
}

// Configuration is a validated configuration record handed to Link.
// Apart from WorkerCount, which falls back to DefaultWorkerCount, it
// carries no defaults logic of its own; the CLI front end (or any other
// caller) is responsible for filling in the remaining defaults before
// calling Link.
type Configuration struct {
	// Target selects the linker backend via its BinaryFormat.
	Target TargetTriple
	// InputFiles are paths to object files to link, in link order.
	InputFiles []string
	// OutputFile is the path the linked output is written to, created
	// or truncated as needed.
	OutputFile string
	// WorkerCount sizes the ELF64 backend's worker pool. Zero or
	// negative falls back to DefaultWorkerCount.
	WorkerCount int
	// UseMmap selects the memory-mapped file reader over the direct,
	// whole-file-read reader. Default false.
	UseMmap bool
}

// DefaultWorkerCount is the worker pool size used when Configuration
// does not specify one, matching the constant the original linker
// hard-coded.
const DefaultWorkerCount = 4

func (c Configuration) workerCount() int {
	if c.WorkerCount > 0 {
		return c.WorkerCount
	}
	return DefaultWorkerCount
}

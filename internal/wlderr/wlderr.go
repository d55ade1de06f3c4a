// Package wlderr provides weld's stable error taxonomy.
//
// Every kind carries a short diagnostic code so a separate
// front-end can look up human-readable prose without this package
// knowing anything about presentation.
package wlderr

import "fmt"

// Kind identifies one of weld's enumerated failure modes.
type Kind int

const (
	// KindInvalidArgumentEncoding marks a command-line argument that is
	// not valid text.
	KindInvalidArgumentEncoding Kind = iota
	// KindProgramNameIsMissing marks a missing argv[0].
	KindProgramNameIsMissing
	// KindCommandLine marks a rejected command line (code E001).
	KindCommandLine
	// KindInvalidCode marks an unknown --explain code (code E000).
	KindInvalidCode
	// KindNoInputFile marks an empty input file list (code E002).
	KindNoInputFile
	// KindUnsupportedBinaryFormat marks a target triple that resolves to
	// a non-ELF format (code E003).
	KindUnsupportedBinaryFormat
	// KindParsingFile marks an ELF parse failure (code E004).
	KindParsingFile
	// KindParsingSymbol marks a symbol-table entry decode failure (code E005).
	KindParsingSymbol
	// KindNotRelocatable marks an object file that is not of type
	// RelocatableFile (code E006). Defined but not currently enforced;
	// see DESIGN.md.
	KindNotRelocatable
	// KindThreadPool marks a pool-construction failure.
	KindThreadPool
	// KindThreadPoolChannelClosed marks a submission to a closed pool
	// channel, which indicates an internal invariant violation.
	KindThreadPoolChannelClosed
)

// codes maps each kind to its stable diagnostic code, where one is
// defined. Kinds with no published code (InvalidArgumentEncoding,
// ProgramNameIsMissing, ThreadPool, ThreadPoolChannelClosed) map to the
// empty string.
var codes = map[Kind]string{
	KindInvalidCode:             "E000",
	KindCommandLine:             "E001",
	KindNoInputFile:             "E002",
	KindUnsupportedBinaryFormat: "E003",
	KindParsingFile:             "E004",
	KindParsingSymbol:           "E005",
	KindNotRelocatable:          "E006",
}

// descriptions is the one-line catalog entry per code, consulted by
// Describe. The full markdown diagnostic catalog is an external
// collaborator; this is just enough for --explain to resolve
// a code without the core depending on the front end.
var descriptions = map[string]string{
	"E000": "unknown diagnostic code passed to --explain",
	"E001": "the command line could not be parsed",
	"E002": "no input files were given",
	"E003": "the target triple's binary format is not supported",
	"E004": "an input file could not be parsed as ELF64",
	"E005": "a symbol-table entry could not be decoded",
	"E006": "the object file is not relocatable",
}

func (k Kind) String() string {
	switch k {
	case KindInvalidArgumentEncoding:
		return "InvalidArgumentEncoding"
	case KindProgramNameIsMissing:
		return "ProgramNameIsMissing"
	case KindCommandLine:
		return "CommandLine"
	case KindInvalidCode:
		return "InvalidCode"
	case KindNoInputFile:
		return "NoInputFile"
	case KindUnsupportedBinaryFormat:
		return "UnsupportedBinaryFormat"
	case KindParsingFile:
		return "ParsingFile"
	case KindParsingSymbol:
		return "ParsingSymbol"
	case KindNotRelocatable:
		return "NotRelocatable"
	case KindThreadPool:
		return "ThreadPool"
	case KindThreadPoolChannelClosed:
		return "ThreadPoolChannelClosed"
	default:
		return "Unknown"
	}
}

// Code returns the kind's stable diagnostic code, or "" if the kind has
// none.
func (k Kind) Code() string {
	return codes[k]
}

// Describe returns the one-line description for a diagnostic code, and
// whether the code is recognised.
func Describe(code string) (string, bool) {
	d, ok := descriptions[code]
	return d, ok
}

// WeldError is a structured weld error: a kind, optional file/symbol
// context, and an optional wrapped cause.
type WeldError struct {
	Kind   Kind
	Path   string // offending input/output file path, if any
	Symbol string // offending symbol name, if any
	Cause  error
}

// Error implements the error interface.
func (e *WeldError) Error() string {
	switch {
	case e.Path != "" && e.Symbol != "":
		return fmt.Sprintf("%s (%s): %s: %s: %v", e.Kind, e.Kind.Code(), e.Path, e.Symbol, e.Cause)
	case e.Symbol != "":
		return fmt.Sprintf("%s (%s): %s: %v", e.Kind, e.Kind.Code(), e.Symbol, e.Cause)
	case e.Path != "":
		return fmt.Sprintf("%s (%s): %s: %v", e.Kind, e.Kind.Code(), e.Path, e.Cause)
	case e.Cause != nil:
		return fmt.Sprintf("%s (%s): %v", e.Kind, e.Kind.Code(), e.Cause)
	default:
		return fmt.Sprintf("%s (%s)", e.Kind, e.Kind.Code())
	}
}

// Unwrap provides compatibility with errors.Unwrap/errors.Is/errors.As.
func (e *WeldError) Unwrap() error {
	return e.Cause
}

// New builds a bare WeldError of the given kind.
func New(kind Kind) *WeldError {
	return &WeldError{Kind: kind}
}

// Wrap builds a WeldError of the given kind around cause. Returns nil if
// cause is nil.
func Wrap(kind Kind, cause error) error {
	if cause == nil {
		return nil
	}
	return &WeldError{Kind: kind, Cause: cause}
}

// WrapFile builds a WeldError carrying the offending file path.
func WrapFile(kind Kind, path string, cause error) error {
	if cause == nil {
		return nil
	}
	return &WeldError{Kind: kind, Path: path, Cause: cause}
}

// WrapSymbol builds a WeldError carrying the offending file path and
// symbol name.
func WrapSymbol(kind Kind, path, symbol string, cause error) error {
	if cause == nil {
		return nil
	}
	return &WeldError{Kind: kind, Path: path, Symbol: symbol, Cause: cause}
}

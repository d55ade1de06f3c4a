package weld

import (
	"fmt"
	"os"

	"github.com/hywan/weld/internal/elf64"
	"github.com/hywan/weld/internal/pool"
	"github.com/hywan/weld/internal/reader"
	"github.com/hywan/weld/internal/wlderr"
)

// Link runs the linker described by cfg: it validates the input file
// list, dispatches to a backend by binary format, and writes the
// result to cfg.OutputFile.
func Link(cfg Configuration) error {
	if len(cfg.InputFiles) == 0 {
		return wlderr.New(wlderr.KindNoInputFile)
	}

	switch format := cfg.Target.BinaryFormat(); format {
	case FormatELF:
		return linkELF64(cfg)
	default:
		return &wlderr.WeldError{
			Kind:  wlderr.KindUnsupportedBinaryFormat,
			Cause: fmt.Errorf("target %s resolves to binary format %s", cfg.Target, format),
		}
	}
}

// fileSegment is what one input file's ProgramData sections contribute
// to the output builder.
type fileSegment struct {
	endianness     elf64.Endianness
	version        elf64.Version
	osAbi          elf64.OsAbi
	machine        elf64.Machine
	processorFlags uint32
	flags          elf64.ProgramFlags
	data           []byte
}

// linkELF64 submits one task per input file to a fixed-size pool. Each
// task writes exclusively to its own index of perFile, so no
// synchronization is needed across tasks (the disjoint-slice pattern
// also used by File.ResolveSectionNames). The driver blocks until every
// task has run to completion, then performs exactly one write of the
// merged output, deterministic regardless of completion order: tasks
// run to completion even after the first error, and the single write
// happens only once every task has finished.
func linkELF64(cfg Configuration) error {
	opener := fileOpener(cfg)
	p := pool.New(cfg.workerCount())

	perFile := make([][]fileSegment, len(cfg.InputFiles))

	for i, path := range cfg.InputFiles {
		i, path := i, path
		p.Submit(func() error {
			segments, err := linkOneFile(opener, path)
			if err != nil {
				return err
			}
			perFile[i] = segments
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return err
	}

	builder := (*FileBuilder)(nil)
	for _, segments := range perFile {
		for _, s := range segments {
			if builder == nil {
				builder = NewFileBuilder(s.endianness, s.version, s.osAbi, s.machine, s.processorFlags)
			}
			builder.AddSegment(s.flags, s.data)
		}
	}
	if builder == nil {
		builder = NewFileBuilder(elf64.EndianLittle, elf64.VersionCurrent, elf64.OsAbiSystemV, elf64.MachineX86_64, 0)
	}

	out, err := builder.Build()
	if err != nil {
		return err
	}

	return os.WriteFile(cfg.OutputFile, out, 0o644)
}

func fileOpener(cfg Configuration) reader.Opener {
	if cfg.UseMmap {
		return reader.Mapped{}
	}
	return reader.Direct{}
}

// linkOneFile performs the per-file pipeline steps: open, parse,
// resolve names, walk symbol tables (surfacing any decode failure),
// and collect the ProgramData sections as segments for the builder.
func linkOneFile(opener reader.Opener, path string) ([]fileSegment, error) {
	r, err := opener.Open(path)
	if err != nil {
		return nil, wlderr.WrapFile(wlderr.KindParsingFile, path, err)
	}
	defer r.Close()

	image := r.Bytes()
	f, rest, err := elf64.ReadFile(image)
	if err != nil {
		return nil, wlderr.WrapFile(wlderr.KindParsingFile, path, err)
	}
	if len(rest) != 0 {
		return nil, wlderr.WrapFile(wlderr.KindParsingFile, path, fmt.Errorf("elf64: parsing did not consume the entire file (%d bytes left over)", len(rest)))
	}

	if err := f.ResolveSectionNames(); err != nil {
		return nil, wlderr.WrapFile(wlderr.KindParsingFile, path, err)
	}

	strtab, _ := f.Strtab()
	var strtabData *elf64.Data
	if strtab != nil {
		strtabData = &strtab.Data
	}

	e, err := f.Endianness.Strategy()
	if err != nil {
		return nil, wlderr.WrapFile(wlderr.KindParsingFile, path, err)
	}

	for _, section := range f.Sections {
		if section.Data.Kind != elf64.DataKindSymbolTable {
			continue
		}
		next := section.Data.Symbols(e, strtabData)
		for {
			sym, ok, err := next()
			if err != nil {
				return nil, wlderr.WrapFile(wlderr.KindParsingSymbol, path, err)
			}
			if !ok {
				break
			}
			_ = sym
		}
	}

	var segments []fileSegment
	for _, section := range f.Sections {
		if section.Type != elf64.SectionTypeProgramData {
			continue
		}
		segments = append(segments, fileSegment{
			endianness:     f.Endianness,
			version:        f.Version,
			osAbi:          f.OsAbi,
			machine:        f.Machine,
			processorFlags: f.Flags,
			flags:          section.Flags.ToProgramFlags(),
			data:           section.Data.Bytes,
		})
	}

	return segments, nil
}

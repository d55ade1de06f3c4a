// Package weld implements a small ELF64 linker: it parses relocatable
// object files, collects their loadable sections, and emits a minimal
// executable via FileBuilder. See Configuration and Link for the
// entry point; internal/elf64 carries the bit-exact ELF64 codec this
// package builds on.
package weld

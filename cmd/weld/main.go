// Command weld links ELF64 object files into a minimal executable.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hywan/weld"
	"github.com/hywan/weld/internal/wlderr"
)

func main() {
	explain := flag.String("explain", "", "print the diagnostic for CODE and exit")
	target := flag.String("target", "", "target triple (default: host)")
	output := flag.String("o", "a.out", "output file path")
	flag.Parse()

	if *explain != "" {
		runExplain(*explain)
		return
	}

	inputs := flag.Args()
	if len(inputs) == 0 {
		log.Fatalf("%s", wlderr.New(wlderr.KindNoInputFile))
	}

	cfg := weld.Configuration{
		Target:     resolveTarget(*target),
		InputFiles: inputs,
		OutputFile: *output,
	}

	if err := weld.Link(cfg); err != nil {
		log.Fatalf("%v", err)
	}
}

func resolveTarget(raw string) weld.TargetTriple {
	if raw == "" {
		return weld.HostTarget()
	}
	return weld.ParseTargetTriple(raw)
}

func runExplain(code string) {
	desc, ok := wlderr.Describe(code)
	if !ok {
		log.Fatalf("%s: unknown diagnostic code", wlderr.New(wlderr.KindInvalidCode))
	}
	fmt.Printf("%s: %s\n", code, desc)
	os.Exit(0)
}

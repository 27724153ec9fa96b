// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/tebeka/atexit"

	"github.com/ezrec/yas/y86"
)

// predefine parses a -D NAME=VALUE argument.
func predefine(asm *y86.Assembler) func(string) error {
	return func(def string) error {
		name, text, ok := strings.Cut(def, "=")
		if !ok || len(name) == 0 {
			return fmt.Errorf("%q is not NAME=VALUE", def)
		}
		value, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return err
		}
		asm.Predefine(name, value)
		return nil
	}
}

// listing writes each instruction with its disassembly.
func listing(w io.Writer, prog *y86.Program) {
	for _, enc := range prog.Instructions {
		inst, _, err := y86.Decode(enc.Bytes)
		if err != nil {
			fmt.Fprintf(w, "%-30v # %v\n", enc, err)
			continue
		}
		fmt.Fprintf(w, "%-30v # %v\n", enc, inst)
	}
}

func main() {
	var source string
	var output string
	var list bool
	var verbose bool

	asm := y86.NewAssembler()

	log.SetFlags(0)
	log.SetPrefix("yas: ")

	flag.StringVar(&source, "f", "-", "Y86-64 assembly file to assemble")
	flag.StringVar(&output, "o", "-", "Encoded output file")
	flag.Uint64Var(&asm.Origin, "b", y86.BASE_ADDRESS, "Load address of the first instruction")
	flag.Func("D", "Predefine NAME=VALUE for $(...) expressions", predefine(asm))
	flag.BoolVar(&list, "l", false, "List disassembly to stderr")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		atexit.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	asm.Verbose = verbose

	input := io.Reader(os.Stdin)
	if source != "-" {
		inf, err := os.Open(source)
		if err != nil {
			atexit.Fatalf("%v: %v", source, err)
		}
		atexit.Register(func() { inf.Close() })
		input = inf
	}

	prog, err := asm.Parse(input)
	if err != nil {
		atexit.Fatalf("%v: %v", source, err)
	}

	if list {
		listing(os.Stderr, prog)
	}

	if output == "-" {
		_, err = prog.WriteTo(os.Stdout)
		if err != nil {
			atexit.Fatalf("%v: %v", output, err)
		}
		atexit.Exit(0)
	}

	// A partially written output is not a valid program.
	complete := false
	ouf, err := os.Create(output)
	if err != nil {
		atexit.Fatalf("%v: %v", output, err)
	}
	atexit.Register(func() {
		if !complete {
			os.Remove(output)
		}
	})

	_, err = prog.WriteTo(ouf)
	if err == nil {
		err = ouf.Close()
	} else {
		ouf.Close()
	}
	if err != nil {
		atexit.Fatalf("%v: %v", output, err)
	}
	complete = true

	atexit.Exit(0)
}

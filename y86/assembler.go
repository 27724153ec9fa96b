// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package y86

import (
	"bufio"
	"io"
	"iter"
	"log"
	"maps"
	"strings"
)

// COMMENT starts a comment that runs to the end of the line.
const COMMENT = "#"

// Predefined system symbols
var sysSymbols = Symbols{
	"LINENO":       0,
	"BASE_ADDRESS": BASE_ADDRESS,
}

// Assembler is a single pass assembler for Y86-64.
type Assembler struct {
	Verbose bool   // If set, verbosely logs the assembler actions.
	Origin  uint64 // Load address of the first instruction.
	State   State  // State after the most recently assembled line.

	predefine Symbols // Predefines
}

// NewAssembler returns an assembler loading at BASE_ADDRESS.
func NewAssembler() *Assembler {
	return &Assembler{Origin: BASE_ADDRESS}
}

// Predefine defines a new symbol or redefines an existing symbol for $(...)
// expressions.
func (asm *Assembler) Predefine(name string, value int64) {
	if asm.predefine == nil {
		asm.predefine = Symbols{name: value}
	} else {
		asm.predefine[name] = value
	}
}

// symbols returns the names visible to expressions on a line.
func (asm *Assembler) symbols(lineno int) (symbols Symbols) {
	symbols = maps.Clone(sysSymbols)
	maps.Copy(symbols, asm.predefine)
	symbols["LINENO"] = int64(lineno)
	return
}

// Reset prepares the assembler for a new run.
func (asm *Assembler) Reset() {
	asm.State = NewState(asm.Origin)
}

// Assemble parses and encodes a single trimmed source line, advancing the
// assembler state.
func (asm *Assembler) Assemble(line string, lineno int) (enc EncodedInstruction, err error) {
	inst, err := ParseInstruction(line, asm.symbols(lineno))
	if err != nil {
		return
	}

	enc, asm.State, err = Encode(inst, asm.State)
	if err != nil {
		return
	}

	enc.LineNo = lineno
	enc.Line = line

	if asm.Verbose {
		if len(enc.Bytes) == 0 {
			log.Printf("%v: %v @ %#x\n", lineno, inst, enc.Address)
		} else {
			log.Printf("%v: %v => %v\n", lineno, inst, enc)
		}
	}

	return
}

// ParseLines assembles a sequence of source lines into a Program. Assembly
// stops at the first error, and no Program is returned.
func (asm *Assembler) ParseLines(lines iter.Seq[string]) (prog *Program, err error) {
	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Reset()

	var encoded []EncodedInstruction
	for text := range lines {
		lineno += 1

		text, _, _ = strings.Cut(text, COMMENT)
		line = strings.TrimSpace(text)
		if len(line) == 0 {
			continue
		}

		var enc EncodedInstruction
		enc, err = asm.Assemble(line, lineno)
		if err != nil {
			return
		}

		// The label pseudo-op has no output.
		if len(enc.Bytes) == 0 {
			continue
		}

		encoded = append(encoded, enc)
	}

	prog = &Program{
		Instructions: encoded,
	}

	return
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	prog, err = asm.ParseLines(func(yield func(string) bool) {
		for scanner.Scan() {
			if !yield(scanner.Text()) {
				return
			}
		}
	})
	if err != nil {
		return
	}

	err = scanner.Err()
	if err != nil {
		prog = nil
	}

	return
}

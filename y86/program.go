package y86

import (
	"fmt"
	"io"
	"iter"
)

// EncodedInstruction is an assembled instruction and its load address.
type EncodedInstruction struct {
	LineNo  int    // Source line number.
	Line    string // Source text.
	Address uint64 // Load address.
	Bytes   []byte // Encoding.
}

// String returns the output form "<hex-address>: <hex-bytes>".
func (enc EncodedInstruction) String() string {
	return fmt.Sprintf("%x: %x", enc.Address, enc.Bytes)
}

// Program is the assembled output sequence, in source order.
type Program struct {
	Instructions []EncodedInstruction
}

// Debug locates the instruction covering a load address.
type Debug struct {
	*EncodedInstruction
	Offset int // Byte offset of the address within the instruction.
}

// Debug returns the instruction whose bytes include addr, if any.
func (prog *Program) Debug(addr uint64) (dbg Debug) {
	for n, enc := range prog.Instructions {
		if addr >= enc.Address && addr-enc.Address < uint64(len(enc.Bytes)) {
			dbg = Debug{
				EncodedInstruction: &prog.Instructions[n],
				Offset:             int(addr - enc.Address),
			}
			break
		}
	}

	return
}

// Image returns the memory image of the program, starting at base.
func (prog *Program) Image() (base uint64, image []byte) {
	if len(prog.Instructions) == 0 {
		return
	}

	base = prog.Instructions[0].Address
	for _, enc := range prog.Instructions {
		offset := enc.Address - base
		if need := offset + uint64(len(enc.Bytes)); need > uint64(len(image)) {
			image = append(image, make([]byte, need-uint64(len(image)))...)
		}
		copy(image[offset:], enc.Bytes)
	}

	return
}

// Lines returns the output lines of the program, without line terminators.
func (prog *Program) Lines() iter.Seq[string] {
	return func(yield func(line string) bool) {
		for _, enc := range prog.Instructions {
			if !yield(enc.String()) {
				return
			}
		}
	}
}

// WriteTo writes one output line per instruction.
func (prog *Program) WriteTo(w io.Writer) (n int64, err error) {
	for line := range prog.Lines() {
		var written int
		written, err = io.WriteString(w, line+"\n")
		n += int64(written)
		if err != nil {
			return
		}
	}

	return
}

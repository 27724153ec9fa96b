package y86

import (
	"strings"
	"unicode"
)

// Instruction is a mnemonic and its parsed operands.
type Instruction struct {
	Opcode
	Operands []Operand
}

// ParseInstruction splits a trimmed source line into its mnemonic and
// operands. The mnemonic ends at the first space, and the operands are
// separated by top-level commas.
func ParseInstruction(line string, symbols Symbols) (inst Instruction, err error) {
	mnemonic, rest := line, ""
	if n := strings.IndexFunc(line, unicode.IsSpace); n >= 0 {
		mnemonic, rest = line[:n], line[n+1:]
	}

	inst.Opcode, err = LookupOpcode(mnemonic)
	if err != nil {
		return
	}

	for n, word := range splitOperands(rest) {
		var op Operand
		op, err = ParseOperand(word, symbols)
		if err != nil {
			err = &ErrOperand{Index: n, Text: word, Err: err}
			return
		}
		inst.Operands = append(inst.Operands, op)
	}

	return
}

// String returns the instruction in source syntax.
func (inst Instruction) String() string {
	if len(inst.Operands) == 0 {
		return inst.Mnemonic
	}

	words := make([]string, len(inst.Operands))
	for n, op := range inst.Operands {
		words[n] = op.String()
	}

	return inst.Mnemonic + " " + strings.Join(words, ",")
}

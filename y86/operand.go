package y86

import (
	"fmt"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// OperandKind is the syntactic class of an operand.
type OperandKind int

const (
	OPERAND_REGISTER  = OperandKind(iota) // %reg
	OPERAND_IMMEDIATE                     // $value, value, $(expr)
	OPERAND_MEMORY                        // disp(%reg)
	OPERAND_LABEL                         // loop
)

// IMM_SIGIL marks an immediate operand.
const IMM_SIGIL = '$'

// Operand is a parsed instruction operand.
type Operand struct {
	Kind     OperandKind
	Register Register // Register, or base register of a memory operand.
	Value    int64    // Immediate value, or displacement of a memory operand.
}

// RegisterOperand makes a register operand.
func RegisterOperand(reg Register) Operand {
	return Operand{Kind: OPERAND_REGISTER, Register: reg}
}

// ImmediateOperand makes an immediate operand.
func ImmediateOperand(value int64) Operand {
	return Operand{Kind: OPERAND_IMMEDIATE, Value: value}
}

// MemoryOperand makes a displacement(base) operand.
func MemoryOperand(disp int64, base Register) Operand {
	return Operand{Kind: OPERAND_MEMORY, Register: base, Value: disp}
}

// String returns the operand in source syntax.
func (op Operand) String() string {
	switch op.Kind {
	case OPERAND_REGISTER:
		return op.Register.String()
	case OPERAND_IMMEDIATE:
		return fmt.Sprintf("$%d", op.Value)
	case OPERAND_MEMORY:
		return fmt.Sprintf("%d(%v)", op.Value, op.Register)
	case OPERAND_LABEL:
		return LABEL_NAME
	}

	return fmt.Sprintf("OperandKind(%d)", int(op.Kind))
}

// Symbols are the integer names visible to $(...) expressions.
type Symbols map[string]int64

// parseDecimal parses a 64-bit signed decimal literal.
func parseDecimal(word string) (value int64, err error) {
	value, err = strconv.ParseInt(word, 10, 64)
	if err != nil {
		err = ErrParseNumber(word)
	}
	return
}

// evalExpression does compile-time $(...) evaluations.
func evalExpression(expr string, symbols Symbols) (value int64, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, val := range symbols {
		pred[key] = starlark.MakeInt64(val)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	return
}

// ParseOperand classifies and parses a single operand token.
func ParseOperand(word string, symbols Symbols) (op Operand, err error) {
	switch {
	case len(word) == 0:
		err = ErrMalformedOperand
	case word[0] == REG_SIGIL:
		var reg Register
		reg, err = LookupRegister(word)
		op = RegisterOperand(reg)
	case strings.HasPrefix(word, "$(") && strings.HasSuffix(word, ")"):
		var value int64
		value, err = evalExpression(word[2:len(word)-1], symbols)
		op = ImmediateOperand(value)
	case word[0] == IMM_SIGIL:
		var value int64
		value, err = parseDecimal(word[1:])
		op = ImmediateOperand(value)
	case word == LABEL_NAME:
		op = Operand{Kind: OPERAND_LABEL}
	case strings.HasSuffix(word, ")"):
		op, err = parseMemory(word)
	default:
		var value int64
		value, err = parseDecimal(word)
		op = ImmediateOperand(value)
	}

	if err != nil {
		op = Operand{}
	}

	return
}

// parseMemory parses disp(%reg); an empty displacement is zero.
func parseMemory(word string) (op Operand, err error) {
	open := strings.IndexByte(word, '(')
	if open < 0 {
		err = ErrMalformedOperand
		return
	}

	base := word[open+1 : len(word)-1]
	if len(base) == 0 || base[0] != REG_SIGIL {
		err = ErrMalformedOperand
		return
	}
	reg, err := LookupRegister(base)
	if err != nil {
		return
	}

	var disp int64
	if open > 0 {
		disp, err = parseDecimal(word[:open])
		if err != nil {
			return
		}
	}

	op = MemoryOperand(disp, reg)
	return
}

// splitOperands splits operand text on commas outside parentheses.
func splitOperands(text string) (words []string) {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return
	}

	depth := 0
	start := 0
	for n, c := range text {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				words = append(words, strings.TrimSpace(text[start:n]))
				start = n + 1
			}
		}
	}

	words = append(words, strings.TrimSpace(text[start:]))
	return
}

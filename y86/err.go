package y86

import (
	"errors"

	"github.com/ezrec/yas/translate"
)

var f = translate.From

var (
	// Assembler errors
	ErrUnknownMnemonic  = errors.New(f("unknown mnemonic"))
	ErrUnknownRegister  = errors.New(f("unknown register"))
	ErrMalformedOperand = errors.New(f("malformed operand"))
	ErrOperandCount     = errors.New(f("wrong number of operands"))
	ErrOperandMismatch  = errors.New(f("operand not valid for instruction"))
	ErrUndefinedLabel   = errors.New(f("label loop undefined"))
	ErrAddressOverflow  = errors.New(f("address overflow"))

	// Decoder errors
	ErrInstructionTruncated = errors.New(f("instruction truncated"))
)

// ErrSyntax identifies the source line that failed to assemble.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrOperand identifies which operand of an instruction was rejected.
type ErrOperand struct {
	Index int
	Text  string
	Err   error
}

func (err *ErrOperand) Error() string {
	return f("operand %d '%v' %v", err.Index+1, err.Text, err.Err)
}

func (err *ErrOperand) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a 64-bit decimal number", string(err))
}

func (err ErrParseNumber) Unwrap() error {
	return ErrMalformedOperand
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

func (err ErrParseExpression) Unwrap() error {
	return ErrMalformedOperand
}

// ErrOpcode is an instruction byte that does not decode.
type ErrOpcode uint8

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%02x", uint8(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

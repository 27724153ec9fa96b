package y86

import (
	"maps"
	"slices"
)

// Format is the binary layout of an instruction.
type Format int

const (
	FORMAT_NONE  = Format(iota) // opcode
	FORMAT_RR                   // opcode, rA:rB
	FORMAT_IR                   // opcode, F:rB, imm64
	FORMAT_RM                   // opcode, rA:rB, disp64
	FORMAT_MR                   // opcode, rA:rB, disp64
	FORMAT_R                    // opcode, rA:F
	FORMAT_DEST                 // opcode, dest64
	FORMAT_LABEL                // no bytes
)

// Length returns the encoded size in bytes of an instruction in this format.
func (form Format) Length() int {
	switch form {
	case FORMAT_NONE:
		return 1
	case FORMAT_RR, FORMAT_R:
		return 2
	case FORMAT_IR, FORMAT_RM, FORMAT_MR:
		return 10
	case FORMAT_DEST:
		return 9
	case FORMAT_LABEL:
		return 0
	}

	panic("y86: unknown format")
}

// Operands returns the number of operands an instruction in this format takes.
// Jump formats accept either zero or one operand, and report one.
func (form Format) Operands() int {
	switch form {
	case FORMAT_NONE, FORMAT_LABEL:
		return 0
	case FORMAT_R, FORMAT_DEST:
		return 1
	default:
		return 2
	}
}

// Opcode is a mnemonic with its operation code and layout.
type Opcode struct {
	Mnemonic string
	Code     uint8
	Format   Format
}

// LABEL_NAME is the label pseudo-op, and the only label a jump may name.
const LABEL_NAME = "loop"

// opcodeMap maps mnemonics to opcodes. irmovq's 0x30 is followed by the
// 0xF register nibble, giving the 12-bit family code 0x30F.
var opcodeMap = map[string]Opcode{
	"halt": {"halt", 0x00, FORMAT_NONE},
	"nop":  {"nop", 0x10, FORMAT_NONE},
	"ret":  {"ret", 0x90, FORMAT_NONE},

	"rrmovq": {"rrmovq", 0x20, FORMAT_RR},
	"cmovle": {"cmovle", 0x21, FORMAT_RR},
	"cmovl":  {"cmovl", 0x22, FORMAT_RR},
	"cmove":  {"cmove", 0x23, FORMAT_RR},
	"cmovne": {"cmovne", 0x24, FORMAT_RR},
	"cmovge": {"cmovge", 0x25, FORMAT_RR},
	"cmovg":  {"cmovg", 0x26, FORMAT_RR},

	"irmovq": {"irmovq", 0x30, FORMAT_IR},
	"rmmovq": {"rmmovq", 0x40, FORMAT_RM},
	"mrmovq": {"mrmovq", 0x50, FORMAT_MR},

	"addq": {"addq", 0x60, FORMAT_RR},
	"subq": {"subq", 0x61, FORMAT_RR},
	"andq": {"andq", 0x62, FORMAT_RR},
	"xorq": {"xorq", 0x63, FORMAT_RR},

	"jmp": {"jmp", 0x70, FORMAT_DEST},
	"jle": {"jle", 0x71, FORMAT_DEST},
	"jl":  {"jl", 0x72, FORMAT_DEST},
	"je":  {"je", 0x73, FORMAT_DEST},
	"jne": {"jne", 0x74, FORMAT_DEST},
	"jge": {"jge", 0x75, FORMAT_DEST},
	"jg":  {"jg", 0x76, FORMAT_DEST},

	"call": {"call", 0x80, FORMAT_DEST},

	"pushq": {"pushq", 0xa0, FORMAT_R},
	"popq":  {"popq", 0xb0, FORMAT_R},

	LABEL_NAME: {LABEL_NAME, 0x00, FORMAT_LABEL},
}

// codeMap is the reverse of opcodeMap, for decoding.
var codeMap = map[uint8]Opcode{}

func init() {
	for _, op := range opcodeMap {
		if op.Format == FORMAT_LABEL {
			continue
		}
		codeMap[op.Code] = op
	}
}

// LookupOpcode resolves a mnemonic.
func LookupOpcode(mnemonic string) (op Opcode, err error) {
	op, ok := opcodeMap[mnemonic]
	if !ok {
		err = ErrUnknownMnemonic
	}
	return
}

// Mnemonics returns all known mnemonics in sorted order.
func Mnemonics() []string {
	return slices.Sorted(maps.Keys(opcodeMap))
}

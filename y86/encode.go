// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package y86

import (
	"encoding/binary"
)

// State is the assembler state carried from one instruction to the next.
type State struct {
	Address Address // Load address allocator.
	Label   Label   // Address recorded by the last loop pseudo-op.
}

// NewState returns the state before the first instruction loaded at base.
func NewState(base uint64) State {
	return State{Address: NewAddress(base)}
}

// Encode assembles inst at the state's current address, and returns the
// state to use for the following instruction.
func Encode(inst Instruction, state State) (enc EncodedInstruction, next State, err error) {
	next = state

	code, err := inst.encode(state.Label)
	if err != nil {
		return
	}

	if inst.Format == FORMAT_LABEL {
		next.Label = state.Label.Mark(state.Address.Current())
	}

	enc.Address, next.Address, err = state.Address.Allocate(len(code))
	if err != nil {
		next = state
		return
	}

	enc.Bytes = code
	return
}

// operand returns the n'th operand, checking that it is of an accepted kind.
func (inst Instruction) operand(n int, kinds ...OperandKind) (op Operand, err error) {
	op = inst.Operands[n]
	for _, kind := range kinds {
		if op.Kind == kind {
			return
		}
	}

	err = &ErrOperand{Index: n, Text: op.String(), Err: ErrOperandMismatch}
	return
}

// registers packs two register nibbles into a byte.
func registers(ra, rb Register) byte {
	return byte(ra&0xf)<<4 | byte(rb&0xf)
}

// encode produces the bytes of inst. Jumps without an immediate target
// resolve to label.
func (inst Instruction) encode(label Label) (code []byte, err error) {
	form := inst.Format

	count := len(inst.Operands)
	switch {
	case form == FORMAT_DEST && count <= 1:
	case count != form.Operands():
		err = ErrOperandCount
		return
	}

	code = make([]byte, 0, form.Length())
	code = append(code, inst.Code)

	var ra, rb, mem Operand
	switch form {
	case FORMAT_NONE:
	case FORMAT_LABEL:
		code = nil
	case FORMAT_RR:
		if ra, err = inst.operand(0, OPERAND_REGISTER); err != nil {
			return nil, err
		}
		if rb, err = inst.operand(1, OPERAND_REGISTER); err != nil {
			return nil, err
		}
		code = append(code, registers(ra.Register, rb.Register))
	case FORMAT_IR:
		var imm Operand
		if imm, err = inst.operand(0, OPERAND_IMMEDIATE); err != nil {
			return nil, err
		}
		if rb, err = inst.operand(1, OPERAND_REGISTER); err != nil {
			return nil, err
		}
		code = append(code, registers(REG_NONE, rb.Register))
		code = binary.LittleEndian.AppendUint64(code, uint64(imm.Value))
	case FORMAT_RM:
		if ra, err = inst.operand(0, OPERAND_REGISTER); err != nil {
			return nil, err
		}
		if mem, err = inst.operand(1, OPERAND_MEMORY); err != nil {
			return nil, err
		}
		code = append(code, registers(ra.Register, mem.Register))
		code = binary.LittleEndian.AppendUint64(code, uint64(mem.Value))
	case FORMAT_MR:
		if mem, err = inst.operand(0, OPERAND_MEMORY); err != nil {
			return nil, err
		}
		if ra, err = inst.operand(1, OPERAND_REGISTER); err != nil {
			return nil, err
		}
		code = append(code, registers(ra.Register, mem.Register))
		code = binary.LittleEndian.AppendUint64(code, uint64(mem.Value))
	case FORMAT_R:
		if ra, err = inst.operand(0, OPERAND_REGISTER); err != nil {
			return nil, err
		}
		code = append(code, registers(ra.Register, REG_NONE))
	case FORMAT_DEST:
		var target uint64
		target, err = inst.target(label)
		if err != nil {
			return nil, err
		}
		code = binary.LittleEndian.AppendUint64(code, target)
	default:
		panic("y86: unknown format")
	}

	return
}

// target resolves the destination of a jump or call.
func (inst Instruction) target(label Label) (addr uint64, err error) {
	if len(inst.Operands) == 0 {
		return label.Resolve()
	}

	dest, err := inst.operand(0, OPERAND_LABEL, OPERAND_IMMEDIATE)
	if err != nil {
		return
	}

	if dest.Kind == OPERAND_LABEL {
		return label.Resolve()
	}

	return uint64(dest.Value), nil
}

// Decode disassembles the instruction at the start of code, returning it
// and its encoded length.
func Decode(code []byte) (inst Instruction, length int, err error) {
	if len(code) == 0 {
		err = ErrInstructionTruncated
		return
	}

	op, ok := codeMap[code[0]]
	if !ok {
		err = ErrOpcode(code[0])
		return
	}

	length = op.Format.Length()
	if len(code) < length {
		err = ErrInstructionTruncated
		length = 0
		return
	}

	ra := Register(code[min(1, length-1)] >> 4)
	rb := Register(code[min(1, length-1)] & 0xf)
	word := func() int64 {
		return int64(binary.LittleEndian.Uint64(code[length-8 : length]))
	}

	inst.Opcode = op
	switch op.Format {
	case FORMAT_NONE:
	case FORMAT_RR:
		if !ra.Valid() || !rb.Valid() {
			err = ErrUnknownRegister
			break
		}
		inst.Operands = []Operand{RegisterOperand(ra), RegisterOperand(rb)}
	case FORMAT_IR:
		if ra != REG_NONE || !rb.Valid() {
			err = ErrUnknownRegister
			break
		}
		inst.Operands = []Operand{ImmediateOperand(word()), RegisterOperand(rb)}
	case FORMAT_RM:
		if !ra.Valid() || !rb.Valid() {
			err = ErrUnknownRegister
			break
		}
		inst.Operands = []Operand{RegisterOperand(ra), MemoryOperand(word(), rb)}
	case FORMAT_MR:
		if !ra.Valid() || !rb.Valid() {
			err = ErrUnknownRegister
			break
		}
		inst.Operands = []Operand{MemoryOperand(word(), rb), RegisterOperand(ra)}
	case FORMAT_R:
		if !ra.Valid() || rb != REG_NONE {
			err = ErrUnknownRegister
			break
		}
		inst.Operands = []Operand{RegisterOperand(ra)}
	case FORMAT_DEST:
		inst.Operands = []Operand{ImmediateOperand(word())}
	}

	if err != nil {
		inst = Instruction{}
		length = 0
	}

	return
}

package y86

// Register is a 4-bit register code.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_RAX = Register(0x0) // %rax
	REG_RCX = Register(0x1) // %rcx
	REG_RDX = Register(0x2) // %rdx
	REG_RBX = Register(0x3) // %rbx
	REG_RSP = Register(0x4) // %rsp
	REG_RBP = Register(0x5) // %rbp
	REG_RSI = Register(0x6) // %rsi
	REG_RDI = Register(0x7) // %rdi
	REG_R8  = Register(0x8) // %r8
	REG_R9  = Register(0x9) // %r9
	REG_R10 = Register(0xa) // %r10
	REG_R11 = Register(0xb) // %r11
	REG_R12 = Register(0xc) // %r12
	REG_R13 = Register(0xd) // %r13
	REG_R14 = Register(0xe) // %r14
)

const (
	REG_COUNT = 15  // Number of general-purpose registers.
	REG_NONE  = 0xf // Register nibble for "no register".
)

// REG_SIGIL starts every register operand.
const REG_SIGIL = '%'

var regMap = map[string]Register{}

func init() {
	for reg := range Register(REG_COUNT) {
		regMap[reg.String()] = reg
	}
}

// LookupRegister resolves a register name, including its sigil.
func LookupRegister(name string) (reg Register, err error) {
	reg, ok := regMap[name]
	if !ok {
		err = ErrUnknownRegister
	}
	return
}

// Valid returns true if the register code names a general-purpose register.
func (reg Register) Valid() bool {
	return reg >= REG_RAX && reg < REG_COUNT
}

package y86_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/yas/y86"
)

var _ = Describe("Assembler", func() {
	var (
		asm *y86.Assembler
	)

	assemble := func(lines ...string) (string, error) {
		prog, err := asm.Parse(strings.NewReader(strings.Join(lines, "\n")))
		if err != nil {
			return "", err
		}
		var out bytes.Buffer
		_, err = prog.WriteTo(&out)
		return out.String(), err
	}

	BeforeEach(func() {
		asm = y86.NewAssembler()
	})

	It("should encode an immediate move at the base address", func() {
		out, err := assemble("irmovq $10,%rax")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(Equal("100: 30f00a00000000000000\n"))
	})

	It("should encode a register add", func() {
		out, err := assemble("addq %rax,%rbx")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(Equal("100: 6003\n"))
	})

	It("should jump back to the loop address", func() {
		prog, err := asm.Parse(strings.NewReader("irmovq $3,%rcx\nloop\nsubq %rdx,%rcx\njmp\n"))
		Expect(err).ToNot(HaveOccurred())
		Expect(prog.Instructions).To(HaveLen(3))

		jmp := prog.Instructions[2]
		Expect(jmp.Bytes).To(HaveLen(9))
		Expect(binary.LittleEndian.Uint64(jmp.Bytes[1:])).To(Equal(prog.Instructions[1].Address))
	})

	It("should lay instructions out back to back", func() {
		prog, err := asm.Parse(strings.NewReader(strings.Join([]string{
			"irmovq $1,%rax",
			"pushq %rax",
			"loop",
			"mrmovq 8(%rsp),%rbx",
			"call loop",
			"ret",
		}, "\n")))
		Expect(err).ToNot(HaveOccurred())

		addr := uint64(y86.BASE_ADDRESS)
		for _, enc := range prog.Instructions {
			Expect(enc.Address).To(Equal(addr))
			addr += uint64(len(enc.Bytes))
		}
		Expect(asm.State.Address.Current()).To(Equal(addr))
	})

	It("should produce identical output on every run", func() {
		lines := []string{"irmovq $-5,%r8", "loop", "rmmovq %r8,(%rsp)", "jmp"}
		first, err := assemble(lines...)
		Expect(err).ToNot(HaveOccurred())
		second, err := assemble(lines...)
		Expect(err).ToNot(HaveOccurred())
		Expect(second).To(Equal(first))
	})

	It("should fail a jump before any loop", func() {
		_, err := assemble("nop", "jmp", "loop")
		Expect(err).To(MatchError(y86.ErrUndefinedLabel))
	})

	It("should cite the line of an unknown mnemonic", func() {
		_, err := assemble("nop", "foo %rax,%rbx", "halt")
		Expect(err).To(MatchError(y86.ErrUnknownMnemonic))

		var syntax *y86.ErrSyntax
		Expect(errors.As(err, &syntax)).To(BeTrue())
		Expect(syntax.LineNo).To(Equal(2))
		Expect(syntax.Line).To(Equal("foo %rax,%rbx"))
	})
})

// Package y86 implements a single-pass assembler for the Y86-64 teaching
// instruction set.
//
// Y86-64 has fifteen 64-bit registers (%rax-%r14), four ALU operations, six
// conditional jumps and six conditional moves, plus load/store, stack and
// call instructions. Each source line holds one instruction; the assembler
// lays the encodings out sequentially from a base address (0x100 unless
// overridden) and yields the load address and bytes of every instruction.
//
// Only one label exists: the `loop` pseudo-op records the current address,
// and jumps without an explicit target resolve to it.
package y86

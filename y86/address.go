package y86

import (
	"math"
)

// BASE_ADDRESS is the default load address of the first instruction.
const BASE_ADDRESS = 0x100

// Address allocates load addresses to instructions in source order.
// It never moves backward.
type Address struct {
	next uint64
}

// NewAddress starts allocating at base.
func NewAddress(base uint64) Address {
	return Address{next: base}
}

// Current returns the address the next instruction will be loaded at.
func (addr Address) Current() uint64 {
	return addr.next
}

// Allocate reserves length bytes, returning where they begin and the
// allocator advanced past them.
func (addr Address) Allocate(length int) (base uint64, next Address, err error) {
	if length < 0 {
		panic("y86: negative allocation")
	}

	if uint64(length) > math.MaxUint64-addr.next {
		err = ErrAddressOverflow
		next = addr
		return
	}

	base = addr.next
	next = Address{next: addr.next + uint64(length)}
	return
}

package y86

// Label holds the single address recorded by the loop pseudo-op.
type Label struct {
	addr   uint64
	marked bool
}

// Mark records addr, replacing any earlier mark.
func (label Label) Mark(addr uint64) Label {
	return Label{addr: addr, marked: true}
}

// Marked returns true once an address has been recorded.
func (label Label) Marked() bool {
	return label.marked
}

// Resolve returns the recorded address.
func (label Label) Resolve() (addr uint64, err error) {
	if !label.marked {
		err = ErrUndefinedLabel
		return
	}

	return label.addr, nil
}

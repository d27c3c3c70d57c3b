package machine

import (
	"iter"
	"slices"
)

// Registers is the closed set of general purpose registers.
type Registers struct {
	names  []string
	values map[string]int64
}

// NewRegisters creates a zeroed register file with the given names.
func NewRegisters(names ...string) (regs *Registers) {
	regs = &Registers{
		names:  slices.Clone(names),
		values: make(map[string]int64, len(names)),
	}
	regs.Reset()
	return
}

// Reset zeroes every register.
func (regs *Registers) Reset() {
	for _, name := range regs.names {
		regs.values[name] = 0
	}
}

// IsRegister returns true if name is a register of the file.
func (regs *Registers) IsRegister(name string) (ok bool) {
	_, ok = regs.values[name]
	return
}

// Names returns the register names, in declaration order.
func (regs *Registers) Names() []string {
	return slices.Clone(regs.names)
}

// Get returns the value of a register.
func (regs *Registers) Get(name string) (value int64, err error) {
	value, ok := regs.values[name]
	if !ok {
		err = ErrRegisterUnknown(name)
		return
	}
	return
}

// Set changes the value of a register. Registers are never created.
func (regs *Registers) Set(name string, value int64) (err error) {
	if !regs.IsRegister(name) {
		err = ErrRegisterUnknown(name)
		return
	}

	regs.values[name] = value
	return
}

// All iterates over the registers in declaration order.
func (regs *Registers) All() iter.Seq2[string, int64] {
	return func(yield func(string, int64) bool) {
		for _, name := range regs.names {
			if !yield(name, regs.values[name]) {
				return
			}
		}
	}
}

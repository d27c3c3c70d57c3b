package machine

import (
	"errors"

	"github.com/ezrec/regmach/asm"
	"github.com/ezrec/regmach/translate"
)

var f = translate.From

var (
	ErrDivideByZero = errors.New(f("divide by zero"))
	ErrProgramSize  = errors.New(f("program larger than memory"))
)

// Address spaces of the machine.
const (
	SPACE_MEMORY = "memory"
	SPACE_DISK   = "disk"
)

// ErrOutOfRange reports an address outside of an address space.
type ErrOutOfRange struct {
	Space   string
	Address int64
}

func (err *ErrOutOfRange) Error() string {
	return f("%v address %d out of range", err.Space, err.Address)
}

// Is matches any ErrOutOfRange.
func (err *ErrOutOfRange) Is(target error) (ok bool) {
	_, ok = target.(*ErrOutOfRange)
	return
}

// ErrTypeMismatch reports a non-numeric memory cell read as a number.
type ErrTypeMismatch struct {
	Address int64
	Cell    Cell
}

func (err *ErrTypeMismatch) Error() string {
	return f("memory address %d '%v' is not a number", err.Address, err.Cell)
}

func (err *ErrTypeMismatch) Is(target error) (ok bool) {
	_, ok = target.(*ErrTypeMismatch)
	return
}

type ErrLabelUndefined string

func (err ErrLabelUndefined) Error() string {
	return f("label %v undefined", string(err))
}

type ErrRegisterUnknown string

func (err ErrRegisterUnknown) Error() string {
	return f("register %v unknown", string(err))
}

// ErrOp names the operation that failed.
type ErrOp asm.Op

func (err ErrOp) Error() string {
	return f("op '%v'", asm.Op(err).String())
}

func (err ErrOp) Is(target error) (ok bool) {
	_, ok = target.(ErrOp)
	return
}

// ErrAddressMode reports an operand mode that does not name an address.
type ErrAddressMode asm.Mode

func (err ErrAddressMode) Error() string {
	return f("%v operand has no address", asm.Mode(err))
}

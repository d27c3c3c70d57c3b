package config

import (
	"errors"

	"github.com/ezrec/regmach/translate"
)

var f = translate.From

var (
	ErrRegistersEmpty = errors.New(f("no registers"))
	ErrNotPositive    = errors.New(f("must be positive"))
	ErrNegative       = errors.New(f("must not be negative"))
	ErrRange          = errors.New(f("out of range"))
	ErrUnknown        = errors.New(f("unknown setting"))
)

type ErrRegisterName string

func (err ErrRegisterName) Error() string {
	return f("'%v' is not a valid register name", string(err))
}

type ErrRegisterDuplicate string

func (err ErrRegisterDuplicate) Error() string {
	return f("register %v duplicated", string(err))
}

type ErrType string

func (err ErrType) Error() string {
	return f("unexpected type %v", string(err))
}

// ErrConfig locates a configuration error by setting or file name.
type ErrConfig struct {
	Name string
	Err  error
}

func (err *ErrConfig) Error() string {
	return f("config %v: %v", err.Name, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}

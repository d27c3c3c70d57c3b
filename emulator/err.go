package emulator

import (
	"github.com/ezrec/regmach/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a failed cycle.
type ErrRuntime struct {
	LineNo int    // 1-based program line.
	Ip     int64  // Address of the line.
	Line   string // Source text of the line.
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

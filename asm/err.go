package asm

import (
	"errors"
	"strings"

	"github.com/ezrec/regmach/translate"
)

var f = translate.From

var (
	// Scanner errors
	ErrUnknownCharacter = errors.New(f("unrecognized character"))
	ErrNumberRange      = errors.New(f("number out of range"))

	// Decoder errors
	ErrInstruction = errors.New(f("instruction"))
)

// ErrLex reports a character the scanner could not classify.
type ErrLex struct {
	Column int    // 1-based column of the offending text.
	Text   string // Offending text.
	Err    error
}

func (err *ErrLex) Error() string {
	return f("column %d '%v' %v", err.Column, err.Text, err.Err)
}

func (err *ErrLex) Unwrap() error {
	return err.Err
}

// ErrParse reports a token that violates the instruction grammar.
// An empty Expected list means an instruction keyword was expected.
type ErrParse struct {
	Expected []Kind
	Found    Token
}

func (err *ErrParse) Error() string {
	if len(err.Expected) == 0 {
		return f("expected instruction, found %v", err.Found)
	}

	names := make([]string, len(err.Expected))
	for n, kind := range err.Expected {
		names[n] = kind.String()
	}

	return f("expected %v, found %v", strings.Join(names, " or "), err.Found)
}

func (err *ErrParse) Unwrap() error {
	if len(err.Expected) == 0 {
		return ErrInstruction
	}
	return nil
}

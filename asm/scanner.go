// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"strconv"
	"unicode/utf8"
)

// RegisterSet classifies identifiers as register names.
type RegisterSet interface {
	IsRegister(name string) bool
}

// Registers is a RegisterSet built from a fixed list of names.
type Registers map[string]struct{}

// NewRegisters creates a RegisterSet of the named registers.
func NewRegisters(names ...string) (regs Registers) {
	regs = make(Registers, len(names))
	for _, name := range names {
		regs[name] = struct{}{}
	}
	return
}

// IsRegister returns true if the name is in the set.
func (regs Registers) IsRegister(name string) (ok bool) {
	_, ok = regs[name]
	return
}

// scanner holds the lexing state for a single line.
type scanner struct {
	line      string
	registers RegisterSet
	start     int // Start of the current lexeme.
	curr      int // Next byte to consume.
	tokens    []Token
}

// Scan lexes one source line into tokens.
//
// Whitespace is skipped and '#' comments out the remainder of the line.
// Identifiers are classified in order as a LABEL (when followed by ':'), a
// keyword, a member of registers, and finally a generic LITERAL. No EOL token
// is produced.
func Scan(line string, registers RegisterSet) (tokens []Token, err error) {
	s := &scanner{
		line:      line,
		registers: registers,
	}

	for !s.atEnd() {
		s.start = s.curr
		c := s.advance()
		switch {
		case c == ',':
			s.emit(KIND_COMMA, nil)
		case c == '=':
			s.emit(KIND_EQUALS, nil)
		case c == '[':
			s.emit(KIND_LBRACKET, nil)
		case c == ']':
			s.emit(KIND_RBRACKET, nil)
		case c == '@':
			s.emit(KIND_AT, nil)
		case c == '$':
			s.emit(KIND_DOLLAR, nil)
		case c == '#':
			s.curr = len(s.line)
		case c == ' ', c == '\t', c == '\n', c == '\r':
			// skip
		case isDigit(c):
			err = s.number()
		case isAlpha(c):
			s.identifier()
		default:
			r, _ := utf8.DecodeRuneInString(s.line[s.start:])
			err = &ErrLex{Column: s.start + 1, Text: string(r), Err: ErrUnknownCharacter}
		}
		if err != nil {
			return
		}
	}

	tokens = s.tokens

	return
}

func (s *scanner) atEnd() bool {
	return s.curr >= len(s.line)
}

func (s *scanner) advance() (c byte) {
	c = s.line[s.curr]
	s.curr++
	return
}

func (s *scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.line[s.curr]
}

// emit appends a token for the text since the start of the lexeme.
func (s *scanner) emit(kind Kind, literal any) {
	s.tokens = append(s.tokens, Token{
		Kind:    kind,
		Lexeme:  s.line[s.start:s.curr],
		Literal: literal,
	})
}

// number scans a greedy run of decimal digits.
func (s *scanner) number() (err error) {
	for isDigit(s.peek()) {
		s.advance()
	}

	text := s.line[s.start:s.curr]
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		err = &ErrLex{Column: s.start + 1, Text: text, Err: ErrNumberRange}
		return
	}

	s.emit(KIND_NUMBER, value)

	return
}

// identifier scans a greedy alphanumeric run and classifies it.
func (s *scanner) identifier() {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}

	name := s.line[s.start:s.curr]

	if s.peek() == ':' {
		s.advance()
		s.emit(KIND_LABEL, name)
		return
	}

	if kind, ok := Keywords[name]; ok {
		s.emit(kind, nil)
		return
	}

	if s.registers != nil && s.registers.IsRegister(name) {
		s.emit(KIND_REGISTER, name)
		return
	}

	s.emit(KIND_LITERAL, name)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

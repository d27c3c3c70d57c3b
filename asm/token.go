// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"fmt"
)

// Kind is the lexical class of a token.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_EOL = Kind(0) // EOL

	// Single character tokens
	KIND_COMMA    = Kind(1) // COMMA
	KIND_EQUALS   = Kind(2) // EQUALS
	KIND_LBRACKET = Kind(3) // LBRACKET
	KIND_RBRACKET = Kind(4) // RBRACKET
	KIND_AT       = Kind(5) // AT
	KIND_DOLLAR   = Kind(6) // DOLLAR

	// Literals
	KIND_LITERAL  = Kind(7)  // LITERAL
	KIND_NUMBER   = Kind(8)  // NUMBER
	KIND_LABEL    = Kind(9)  // LABEL
	KIND_REGISTER = Kind(10) // REGISTER

	// Keywords
	KIND_LOAD  = Kind(11) // LOAD
	KIND_STORE = Kind(12) // STORE
	KIND_READ  = Kind(13) // READ
	KIND_WRITE = Kind(14) // WRITE
	KIND_ADD   = Kind(15) // ADD
	KIND_SUB   = Kind(16) // SUB
	KIND_MUL   = Kind(17) // MUL
	KIND_DIV   = Kind(18) // DIV
	KIND_INC   = Kind(19) // INC
	KIND_BR    = Kind(20) // BR
	KIND_BLT   = Kind(21) // BLT
	KIND_BGT   = Kind(22) // BGT
	KIND_BLEQ  = Kind(23) // BLEQ
	KIND_BGEQ  = Kind(24) // BGEQ
	KIND_BEQ   = Kind(25) // BEQ
	KIND_BNEQ  = Kind(26) // BNEQ
	KIND_HALT  = Kind(27) // HALT
	KIND_SKIP  = Kind(28) // SKIP
	KIND_PRINT = Kind(29) // PRINT
	KIND_DUMP  = Kind(30) // DUMP
)

// IsKeyword returns true if the kind is a reserved opcode keyword.
func (kind Kind) IsKeyword() bool {
	return kind >= KIND_LOAD && kind <= KIND_DUMP
}

// Keywords maps the reserved opcode names to their token kinds.
var Keywords = map[string]Kind{
	"LOAD":  KIND_LOAD,
	"STORE": KIND_STORE,
	"READ":  KIND_READ,
	"WRITE": KIND_WRITE,
	"ADD":   KIND_ADD,
	"SUB":   KIND_SUB,
	"MUL":   KIND_MUL,
	"DIV":   KIND_DIV,
	"INC":   KIND_INC,
	"BR":    KIND_BR,
	"BLT":   KIND_BLT,
	"BGT":   KIND_BGT,
	"BLEQ":  KIND_BLEQ,
	"BGEQ":  KIND_BGEQ,
	"BEQ":   KIND_BEQ,
	"BNEQ":  KIND_BNEQ,
	"HALT":  KIND_HALT,
	"SKIP":  KIND_SKIP,
	"PRINT": KIND_PRINT,
	"DUMP":  KIND_DUMP,
}

// Token is a single lexical unit of a source line.
type Token struct {
	Kind    Kind   // Lexical class.
	Lexeme  string // Raw source text of the token.
	Literal any    // int64 for NUMBER; name for LABEL, LITERAL and REGISTER.
}

// Eol is the sentinel returned by the parser when a line runs out of tokens.
var Eol = Token{Kind: KIND_EOL}

// Number returns the decoded value of a NUMBER token.
func (tok Token) Number() (value int64, ok bool) {
	value, ok = tok.Literal.(int64)
	return
}

// Name returns the identifier of a LABEL, LITERAL or REGISTER token.
func (tok Token) Name() (name string, ok bool) {
	name, ok = tok.Literal.(string)
	return
}

// String returns the token as KIND or KIND: literal.
func (tok Token) String() string {
	if tok.Literal != nil {
		return fmt.Sprintf("%v: %v", tok.Kind, tok.Literal)
	}
	return tok.Kind.String()
}

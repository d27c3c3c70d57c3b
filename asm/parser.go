// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

// branchMap maps the branch keywords to their opcodes.
var branchMap = map[Kind]Opcode{
	KIND_BLT:  OP_BLT,
	KIND_BGT:  OP_BGT,
	KIND_BLEQ: OP_BLEQ,
	KIND_BGEQ: OP_BGEQ,
	KIND_BEQ:  OP_BEQ,
	KIND_BNEQ: OP_BNEQ,
}

// arithMap maps the register-register arithmetic keywords to their opcodes.
var arithMap = map[Kind]Opcode{
	KIND_ADD: OP_ADD,
	KIND_SUB: OP_SUB,
	KIND_MUL: OP_MUL,
	KIND_DIV: OP_DIV,
}

// parser walks the tokens of a single line.
type parser struct {
	tokens []Token
	pos    int
}

// Parse decodes the tokens of one line into an Op.
//
// An empty line, or a bare NUMBER, decodes to OP_NOP. HALT decodes to
// OP_HALT, which the execution loop treats as its stop signal.
func Parse(tokens []Token) (op Op, err error) {
	p := &parser{tokens: tokens}

	first := p.next()

	switch first.Kind {
	case KIND_EOL:
		op.Code = OP_NOP
		return
	case KIND_NUMBER:
		op.Code = OP_NOP
	case KIND_LABEL:
		op.Code = OP_LABEL
		op.Label, _ = first.Name()
	case KIND_LOAD:
		op.Code = OP_LOAD
		op.Reg, err = p.register()
		if err == nil {
			err = p.comma()
		}
		if err == nil {
			op.Operand, err = p.value()
		}
	case KIND_STORE:
		op.Code = OP_STORE
		op.Reg, err = p.register()
		if err == nil {
			err = p.comma()
		}
		if err == nil {
			op.Operand, err = p.target(true)
		}
	case KIND_READ, KIND_WRITE:
		op.Code = OP_READ
		if first.Kind == KIND_WRITE {
			op.Code = OP_WRITE
		}
		op.Reg, err = p.register()
		if err == nil {
			err = p.comma()
		}
		if err == nil {
			op.Operand, err = p.target(false)
		}
	case KIND_ADD, KIND_SUB, KIND_MUL, KIND_DIV:
		op.Code = arithMap[first.Kind]
		op.Reg, err = p.register()
		if err == nil {
			err = p.comma()
		}
		if err == nil {
			op.Reg2, err = p.register()
		}
	case KIND_INC:
		op.Code = OP_INC
		op.Reg, err = p.register()
	case KIND_BR:
		op.Code = OP_BR
		op.Label, err = p.label()
	case KIND_BLT, KIND_BGT, KIND_BLEQ, KIND_BGEQ, KIND_BEQ, KIND_BNEQ:
		op.Code = branchMap[first.Kind]
		op.Reg, err = p.register()
		if err == nil {
			err = p.comma()
		}
		if err == nil {
			op.Reg2, err = p.register()
		}
		if err == nil {
			err = p.comma()
		}
		if err == nil {
			op.Label, err = p.label()
		}
	case KIND_HALT:
		op.Code = OP_HALT
	case KIND_SKIP:
		op.Code = OP_SKIP
	case KIND_DUMP:
		op.Code = OP_DUMP
	case KIND_PRINT:
		op.Code = OP_PRINT
		var tok Token
		tok, err = p.expect(KIND_REGISTER, KIND_NUMBER)
		if err != nil {
			break
		}
		if tok.Kind == KIND_REGISTER {
			op.Reg, _ = tok.Name()
		} else {
			op.Operand.Mode = MODE_DIRECT
			op.Operand.Value, _ = tok.Number()
		}
	default:
		err = &ErrParse{Found: first}
	}

	if err == nil {
		err = p.end()
	}

	if err != nil {
		op = Op{}
	}

	return
}

// next consumes a token, or returns the EOL sentinel.
func (p *parser) next() (tok Token) {
	tok = p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return
}

// peek returns the next token without consuming it.
func (p *parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Eol
	}
	return p.tokens[p.pos]
}

// expect consumes a token of one of the given kinds.
func (p *parser) expect(kinds ...Kind) (tok Token, err error) {
	tok = p.next()
	for _, kind := range kinds {
		if tok.Kind == kind {
			return
		}
	}

	err = &ErrParse{Expected: kinds, Found: tok}
	return
}

// end requires that the line has been consumed.
func (p *parser) end() (err error) {
	_, err = p.expect(KIND_EOL)
	return
}

func (p *parser) comma() (err error) {
	_, err = p.expect(KIND_COMMA)
	return
}

func (p *parser) register() (name string, err error) {
	tok, err := p.expect(KIND_REGISTER)
	if err != nil {
		return
	}
	name, _ = tok.Name()
	return
}

func (p *parser) number() (value int64, err error) {
	tok, err := p.expect(KIND_NUMBER)
	if err != nil {
		return
	}
	value, _ = tok.Number()
	return
}

// label consumes a label reference, which scans as a generic LITERAL.
func (p *parser) label() (name string, err error) {
	tok, err := p.expect(KIND_LITERAL)
	if err != nil {
		return
	}
	name, _ = tok.Name()
	return
}

// indexed parses the remainder of '[' NUMBER ',' REGISTER ']'.
func (p *parser) indexed() (opr Operand, err error) {
	opr.Mode = MODE_INDEXED
	opr.Value, err = p.number()
	if err != nil {
		return
	}
	err = p.comma()
	if err != nil {
		return
	}
	opr.Index, err = p.register()
	if err != nil {
		return
	}
	_, err = p.expect(KIND_RBRACKET)
	return
}

// value parses any of the five addressing modes.
func (p *parser) value() (opr Operand, err error) {
	tok, err := p.expect(KIND_NUMBER, KIND_EQUALS, KIND_LBRACKET, KIND_AT, KIND_DOLLAR)
	if err != nil {
		return
	}

	switch tok.Kind {
	case KIND_NUMBER:
		opr.Mode = MODE_DIRECT
		opr.Value, _ = tok.Number()
	case KIND_EQUALS:
		opr.Mode = MODE_IMMEDIATE
		opr.Value, err = p.number()
	case KIND_LBRACKET:
		opr, err = p.indexed()
	case KIND_AT:
		opr.Mode = MODE_INDIRECT
		opr.Value, err = p.number()
	case KIND_DOLLAR:
		opr.Mode = MODE_RELATIVE
		opr.Value, err = p.number()
	}

	return
}

// target parses a writable address: direct, indexed and, when relative is
// set, '$' relative.
func (p *parser) target(relative bool) (opr Operand, err error) {
	kinds := []Kind{KIND_NUMBER, KIND_LBRACKET}
	if relative {
		kinds = append(kinds, KIND_DOLLAR)
	}

	tok, err := p.expect(kinds...)
	if err != nil {
		return
	}

	switch tok.Kind {
	case KIND_NUMBER:
		opr.Mode = MODE_DIRECT
		opr.Value, _ = tok.Number()
	case KIND_LBRACKET:
		opr, err = p.indexed()
	case KIND_DOLLAR:
		opr.Mode = MODE_RELATIVE
		opr.Value, err = p.number()
	}

	return
}

// Decode scans and parses a single source line.
func Decode(line string, registers RegisterSet) (op Op, err error) {
	tokens, err := Scan(line, registers)
	if err != nil {
		return
	}

	return Parse(tokens)
}

package asm

import (
	"fmt"
)

// Opcode identifies the operation of a decoded line.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_NOP   = Opcode(0)  // NOP
	OP_HALT  = Opcode(1)  // HALT
	OP_LOAD  = Opcode(2)  // LOAD
	OP_STORE = Opcode(3)  // STORE
	OP_READ  = Opcode(4)  // READ
	OP_WRITE = Opcode(5)  // WRITE
	OP_ADD   = Opcode(6)  // ADD
	OP_SUB   = Opcode(7)  // SUB
	OP_MUL   = Opcode(8)  // MUL
	OP_DIV   = Opcode(9)  // DIV
	OP_INC   = Opcode(10) // INC
	OP_LABEL = Opcode(11) // LABEL
	OP_BR    = Opcode(12) // BR
	OP_BLT   = Opcode(13) // BLT
	OP_BGT   = Opcode(14) // BGT
	OP_BLEQ  = Opcode(15) // BLEQ
	OP_BGEQ  = Opcode(16) // BGEQ
	OP_BEQ   = Opcode(17) // BEQ
	OP_BNEQ  = Opcode(18) // BNEQ
	OP_SKIP  = Opcode(19) // SKIP
	OP_PRINT = Opcode(20) // PRINT
	OP_DUMP  = Opcode(21) // DUMP
)

// IsBranch returns true for the conditional and unconditional branches.
func (code Opcode) IsBranch() bool {
	return code >= OP_BR && code <= OP_BNEQ
}

// Mode is an operand addressing mode.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_DIRECT    = Mode(0) // direct
	MODE_IMMEDIATE = Mode(1) // immediate
	MODE_INDEXED   = Mode(2) // indexed
	MODE_INDIRECT  = Mode(3) // indirect
	MODE_RELATIVE  = Mode(4) // relative
)

// Operand is an address expression, resolved against machine state only
// when the owning Op executes.
type Operand struct {
	Mode  Mode
	Value int64  // Literal address, offset or immediate value.
	Index string // Index register of MODE_INDEXED.
}

// String returns the operand in source syntax.
func (opr Operand) String() (text string) {
	switch opr.Mode {
	case MODE_DIRECT:
		text = fmt.Sprintf("%d", opr.Value)
	case MODE_IMMEDIATE:
		text = fmt.Sprintf("=%d", opr.Value)
	case MODE_INDEXED:
		text = fmt.Sprintf("[%d,%v]", opr.Value, opr.Index)
	case MODE_INDIRECT:
		text = fmt.Sprintf("@%d", opr.Value)
	case MODE_RELATIVE:
		text = fmt.Sprintf("$%d", opr.Value)
	default:
		text = fmt.Sprintf("?%d", opr.Value)
	}
	return
}

// Op is a decoded instruction. It carries no machine state, and decoding
// the same line twice yields two equal Ops.
type Op struct {
	Code    Opcode
	Reg     string  // Target or first source register.
	Reg2    string  // Second register of arithmetic and conditional branches.
	Operand Operand // Memory or disk operand.
	Label   string  // Label defined by LABEL, or branch target.
}

// String returns the op in source syntax.
func (op Op) String() (text string) {
	switch op.Code {
	case OP_NOP, OP_HALT, OP_SKIP, OP_DUMP:
		text = op.Code.String()
	case OP_LOAD, OP_STORE, OP_READ, OP_WRITE:
		text = fmt.Sprintf("%v %v,%v", op.Code, op.Reg, op.Operand)
	case OP_ADD, OP_SUB, OP_MUL, OP_DIV:
		text = fmt.Sprintf("%v %v,%v", op.Code, op.Reg, op.Reg2)
	case OP_INC:
		text = fmt.Sprintf("%v %v", op.Code, op.Reg)
	case OP_LABEL:
		text = op.Label + ":"
	case OP_BR:
		text = fmt.Sprintf("%v %v", op.Code, op.Label)
	case OP_BLT, OP_BGT, OP_BLEQ, OP_BGEQ, OP_BEQ, OP_BNEQ:
		text = fmt.Sprintf("%v %v,%v,%v", op.Code, op.Reg, op.Reg2, op.Label)
	case OP_PRINT:
		if len(op.Reg) != 0 {
			text = fmt.Sprintf("%v %v", op.Code, op.Reg)
		} else {
			text = fmt.Sprintf("%v %v", op.Code, op.Operand)
		}
	default:
		text = op.Code.String()
	}
	return
}

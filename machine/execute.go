// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"errors"
	"fmt"
	"log"

	"github.com/ezrec/regmach/asm"
	"github.com/ezrec/regmach/disk"
)

// Execute performs a single decoded operation against the machine.
//
// Execute does not advance the instruction pointer; a taken branch sets it
// to the address of the label line, and the caller's advance moves past it.
func (m *Machine) Execute(op asm.Op) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOp(op), err)
		}
	}()

	if m.Verbose {
		log.Printf("machine: %03d: %v", m.Ip, op)
	}

	m.Ticks++

	switch op.Code {
	case asm.OP_NOP:
		// pass
	case asm.OP_HALT:
		m.Halted = true
	case asm.OP_LOAD:
		var value int64
		value, err = m.value(op.Operand)
		if err != nil {
			return
		}
		err = m.Registers.Set(op.Reg, value)
	case asm.OP_STORE:
		var value, addr int64
		value, err = m.Registers.Get(op.Reg)
		if err != nil {
			return
		}
		addr, err = m.address(op.Operand)
		if err != nil {
			return
		}
		err = m.Memory.Poke(addr, NumberCell(value))
	case asm.OP_READ:
		var value, addr int64
		addr, err = m.address(op.Operand)
		if err != nil {
			return
		}
		value, err = m.Disk.Read(addr)
		if err != nil {
			err = diskError(addr, err)
			return
		}
		err = m.Registers.Set(op.Reg, value)
	case asm.OP_WRITE:
		var value, addr int64
		value, err = m.Registers.Get(op.Reg)
		if err != nil {
			return
		}
		addr, err = m.address(op.Operand)
		if err != nil {
			return
		}
		err = m.Disk.Write(addr, value)
		if err != nil {
			err = diskError(addr, err)
		}
	case asm.OP_ADD, asm.OP_SUB, asm.OP_MUL:
		var a, b int64
		a, b, err = m.pair(op.Reg, op.Reg2)
		if err != nil {
			return
		}
		switch op.Code {
		case asm.OP_ADD:
			a += b
		case asm.OP_SUB:
			a -= b
		case asm.OP_MUL:
			a *= b
		}
		err = m.Registers.Set(op.Reg, a)
	case asm.OP_DIV:
		err = m.divide(op.Reg, op.Reg2)
	case asm.OP_INC:
		var value int64
		value, err = m.Registers.Get(op.Reg)
		if err != nil {
			return
		}
		err = m.Registers.Set(op.Reg, value+1)
	case asm.OP_LABEL:
		m.Labels[op.Label] = m.Ip
		if m.Verbose {
			log.Printf("machine: label %v = %d", op.Label, m.Ip)
		}
	case asm.OP_BR:
		err = m.branch(op.Label)
	case asm.OP_BLT, asm.OP_BGT, asm.OP_BLEQ, asm.OP_BGEQ, asm.OP_BEQ, asm.OP_BNEQ:
		var a, b int64
		a, b, err = m.pair(op.Reg, op.Reg2)
		if err != nil {
			return
		}
		if compare(op.Code, a, b) {
			err = m.branch(op.Label)
		}
	case asm.OP_SKIP:
		if m.Sleep != nil {
			m.Sleep(m.Skip)
		}
	case asm.OP_PRINT:
		err = m.print(op)
	case asm.OP_DUMP:
		m.Sink.Print(m.Dump())
	default:
		err = asm.ErrInstruction
	}

	return
}

// address resolves a memory operand to a machine address.
func (m *Machine) address(opr asm.Operand) (addr int64, err error) {
	switch opr.Mode {
	case asm.MODE_DIRECT:
		addr = opr.Value
	case asm.MODE_INDEXED:
		var index int64
		index, err = m.Registers.Get(opr.Index)
		addr = opr.Value + index
	case asm.MODE_INDIRECT:
		addr, err = m.Memory.Int(opr.Value)
	case asm.MODE_RELATIVE:
		addr = m.Ip + opr.Value
	default:
		err = ErrAddressMode(opr.Mode)
	}
	return
}

// value resolves an operand to a number.
func (m *Machine) value(opr asm.Operand) (value int64, err error) {
	if opr.Mode == asm.MODE_IMMEDIATE {
		value = opr.Value
		return
	}

	addr, err := m.address(opr)
	if err != nil {
		return
	}

	value, err = m.Memory.Int(addr)
	return
}

func (m *Machine) pair(reg1, reg2 string) (a, b int64, err error) {
	a, err = m.Registers.Get(reg1)
	if err != nil {
		return
	}
	b, err = m.Registers.Get(reg2)
	return
}

// divide stores the quotient in reg1, then the remainder of the new reg1
// by reg2 in reg2.
func (m *Machine) divide(reg1, reg2 string) (err error) {
	a, b, err := m.pair(reg1, reg2)
	if err != nil {
		return
	}
	if b == 0 {
		err = ErrDivideByZero
		return
	}

	err = m.Registers.Set(reg1, a/b)
	if err != nil {
		return
	}

	a, b, err = m.pair(reg1, reg2)
	if err != nil {
		return
	}

	err = m.Registers.Set(reg2, a%b)
	return
}

func (m *Machine) branch(label string) (err error) {
	ip, ok := m.Labels[label]
	if !ok {
		err = ErrLabelUndefined(label)
		return
	}

	m.Ip = ip
	return
}

func compare(code asm.Opcode, a, b int64) (taken bool) {
	switch code {
	case asm.OP_BLT:
		taken = a < b
	case asm.OP_BGT:
		taken = a > b
	case asm.OP_BLEQ:
		taken = a <= b
	case asm.OP_BGEQ:
		taken = a >= b
	case asm.OP_BEQ:
		taken = a == b
	case asm.OP_BNEQ:
		taken = a != b
	}
	return
}

func (m *Machine) print(op asm.Op) (err error) {
	if len(op.Reg) != 0 {
		var value int64
		value, err = m.Registers.Get(op.Reg)
		if err != nil {
			return
		}
		m.Sink.Print(fmt.Sprintf("%v = %d", op.Reg, value))
		return
	}

	addr, err := m.address(op.Operand)
	if err != nil {
		return
	}

	cell, err := m.Memory.Peek(addr)
	if err != nil {
		return
	}

	m.Sink.Print(fmt.Sprintf("[%d] = %v", addr, cell))
	return
}

func diskError(addr int64, err error) error {
	if errors.Is(err, disk.ErrOutOfRange) {
		return &ErrOutOfRange{Space: SPACE_DISK, Address: addr}
	}
	return err
}

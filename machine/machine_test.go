package machine

import (
	"errors"
	"math"
	"slices"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/ezrec/regmach/asm"
	"github.com/ezrec/regmach/config"
)

func newTestMachine(t *testing.T, program ...string) (m *Machine) {
	m = New(nil)
	m.Sleep = nil
	err := m.Load(slices.Values(program))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return
}

// doExecute decodes and executes each line at the current instruction
// pointer, without advancing it.
func doExecute(t *testing.T, m *Machine, lines ...string) (err error) {
	for _, line := range lines {
		op, derr := m.Decode(line)
		if derr != nil {
			t.Fatalf("%v: %v", line, derr)
		}
		err = m.Execute(op)
		if err != nil {
			return
		}
	}
	return
}

func reg(m *Machine, name string) int64 {
	value, _ := m.Registers.Get(name)
	return value
}

func TestMachine(t *testing.T) {
	assert := assert.New(t)

	m := New(nil)
	assert.False(m.Verbose)
	assert.False(m.Halted)
	assert.False(m.Errored)
	assert.Equal(int64(0), m.Ip)
	assert.Equal([]string{"R1", "R2", "R3", "R4", "R5", "R6"}, m.Registers.Names())
	assert.Equal(100, m.Memory.Size())
	assert.Equal(100, m.Disk.Size())
	assert.Equal(time.Second, m.Skip)
	assert.NotNil(m.Sink)
}

func TestMachine_Config(t *testing.T) {
	assert := assert.New(t)

	cfg := config.Default()
	cfg.Registers = []string{"A", "B"}
	cfg.MemorySize = 10
	cfg.StartingAddress = 1000
	cfg.DiskSize = 4
	cfg.Skip = time.Millisecond

	m := New(cfg)
	assert.Equal([]string{"A", "B"}, m.Registers.Names())
	assert.True(m.Registers.IsRegister("A"))
	assert.False(m.Registers.IsRegister("R1"))
	assert.Equal(int64(1000), m.Ip)
	assert.Equal(10, m.Memory.Size())
	assert.Equal(4, m.Disk.Size())
	assert.Equal(time.Millisecond, m.Skip)
}

func TestMachine_Load(t *testing.T) {
	assert := assert.New(t)

	m := newTestMachine(t, "LOAD R1,=5\r\n", "HALT\n", "", "12")
	assert.Equal(TextCell("LOAD R1,=5"), m.Memory.Cells[0])
	assert.Equal(TextCell("HALT"), m.Memory.Cells[1])
	assert.Equal(TextCell(""), m.Memory.Cells[2])
	assert.Equal(TextCell("12"), m.Memory.Cells[3])
	assert.Equal(Cell{}, m.Memory.Cells[4])
	assert.Equal(NumberCell(0), m.Memory.Cells[99])

	// A reload zero fills the previous program.
	err := m.Load(slices.Values([]string{"HALT"}))
	assert.NoError(err)
	assert.Equal(TextCell("HALT"), m.Memory.Cells[0])
	assert.Equal(NumberCell(0), m.Memory.Cells[1])

	lines := make([]string, 101)
	err = m.Load(slices.Values(lines))
	assert.ErrorIs(err, ErrProgramSize)
	assert.Equal(TextCell("HALT"), m.Memory.Cells[0])
}

func TestMachine_Fetch(t *testing.T) {
	assert := assert.New(t)

	m := newTestMachine(t, "LOAD R1,=5")

	line, err := m.Fetch()
	assert.NoError(err)
	assert.Equal("LOAD R1,=5", line)

	m.Advance()
	assert.Equal(int64(1), m.Ip)
	line, err = m.Fetch()
	assert.NoError(err)
	assert.Equal("0", line)

	op, err := m.Decode(line)
	assert.NoError(err)
	assert.Equal(asm.OP_NOP, op.Code)

	m.Ip = 100
	_, err = m.Fetch()
	var oor *ErrOutOfRange
	if assert.True(errors.As(err, &oor)) {
		assert.Equal(SPACE_MEMORY, oor.Space)
		assert.Equal(int64(100), oor.Address)
	}
}

func TestMachine_Arithmetic(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line string
		r1   int64
		r2   int64
		out  int64
	}){
		{"ADD R1,R2", 7, 5, 12},
		{"ADD R1,R2", -7, 5, -2},
		{"SUB R1,R2", 7, 5, 2},
		{"SUB R1,R2", 5, 7, -2},
		{"MUL R1,R2", 7, 5, 35},
		{"MUL R1,R2", -7, 5, -35},
		{"MUL R1,R2", 0, 5, 0},
	}

	for _, entry := range table {
		m := newTestMachine(t)
		m.Registers.Set("R1", entry.r1)
		m.Registers.Set("R2", entry.r2)

		err := doExecute(t, m, entry.line)
		assert.NoError(err, entry.line)
		assert.Equal(entry.out, reg(m, "R1"), entry.line)
		assert.Equal(entry.r2, reg(m, "R2"), entry.line)
	}
}

func TestMachine_Divide(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line string
		r1   int64
		r2   int64
		out1 int64
		out2 int64
	}){
		// The remainder is taken from the updated quotient.
		{"DIV R1,R2", 17, 5, 3, 3},
		{"DIV R1,R2", 100, 7, 14, 0},
		{"DIV R1,R2", 3, 5, 0, 0},
		{"DIV R1,R2", -7, 2, -3, -1},
		{"DIV R1,R1", 9, 9, 0, 9},
	}

	for _, entry := range table {
		m := newTestMachine(t)
		m.Registers.Set("R1", entry.r1)
		m.Registers.Set("R2", entry.r2)

		err := doExecute(t, m, entry.line)
		assert.NoError(err, entry.line)
		assert.Equal(entry.out1, reg(m, "R1"), entry.line)
		assert.Equal(entry.out2, reg(m, "R2"), entry.line)
	}
}

func TestMachine_DivideByZero(t *testing.T) {
	assert := assert.New(t)

	m := newTestMachine(t)
	m.Registers.Set("R1", 10)

	err := doExecute(t, m, "DIV R1,R2")
	assert.ErrorIs(err, ErrDivideByZero)
	assert.True(errors.Is(err, ErrOp{}))
	assert.Equal(int64(10), reg(m, "R1"))
	assert.Equal(int64(0), reg(m, "R2"))
}

func TestMachine_Inc(t *testing.T) {
	assert := assert.New(t)

	for _, value := range []int64{-100, -1, 0, 1, 41, math.MaxInt64 - 1} {
		m := newTestMachine(t)
		m.Registers.Set("R3", value)

		err := doExecute(t, m, "INC R3")
		assert.NoError(err)
		assert.Equal(value+1, reg(m, "R3"), value)
	}
}

func TestMachine_LoadStore(t *testing.T) {
	assert := assert.New(t)

	m := newTestMachine(t)

	err := doExecute(t, m, "LOAD R1,=5", "STORE R1,10", "LOAD R2,10")
	assert.NoError(err)
	assert.Equal(int64(5), reg(m, "R2"))

	cell, err := m.Peek(10)
	assert.NoError(err)
	assert.Equal(NumberCell(5), cell)
	assert.Equal("5", cell.String())
}

func TestMachine_Addressing(t *testing.T) {
	assert := assert.New(t)

	m := newTestMachine(t)
	m.Poke(5, NumberCell(8))
	m.Poke(7, NumberCell(70))
	m.Poke(8, NumberCell(99))
	m.Poke(23, TextCell(" 4 "))
	m.Registers.Set("R2", 3)
	m.Ip = 20

	table := [](struct {
		line  string
		value int64
	}){
		{"LOAD R1,=3", 3},
		{"LOAD R1,7", 70},
		{"LOAD R1,[4,R2]", 70},
		{"LOAD R1,@5", 99},
		{"LOAD R1,$3", 4},
	}

	for _, entry := range table {
		m.Registers.Set("R1", 0)
		err := doExecute(t, m, entry.line)
		assert.NoError(err, entry.line)
		assert.Equal(entry.value, reg(m, "R1"), entry.line)
	}

	m.Registers.Set("R1", 11)
	err := doExecute(t, m, "STORE R1,[40,R2]", "STORE R1,$1")
	assert.NoError(err)
	assert.Equal(NumberCell(11), m.Memory.Cells[43])
	assert.Equal(NumberCell(11), m.Memory.Cells[21])
}

func TestMachine_IndexedAtExecute(t *testing.T) {
	assert := assert.New(t)

	m := newTestMachine(t)
	m.Poke(7, NumberCell(1))
	m.Poke(8, NumberCell(2))

	op, err := m.Decode("LOAD R1,[4,R2]")
	assert.NoError(err)

	m.Registers.Set("R2", 3)
	assert.NoError(m.Execute(op))
	assert.Equal(int64(1), reg(m, "R1"))

	m.Registers.Set("R2", 4)
	assert.NoError(m.Execute(op))
	assert.Equal(int64(2), reg(m, "R1"))
}

func TestMachine_StartingAddress(t *testing.T) {
	assert := assert.New(t)

	cfg := config.Default()
	cfg.StartingAddress = 1000
	cfg.MemorySize = 10

	m := New(cfg)
	m.Poke(1003, NumberCell(1004))
	m.Poke(1004, NumberCell(44))
	m.Ip = 1001

	table := [](struct {
		line  string
		value int64
	}){
		{"LOAD R1,1003", 1004},
		{"LOAD R1,@1003", 44},
		{"LOAD R1,[1000,R2]", 1004},
		{"LOAD R1,$3", 44},
	}

	m.Registers.Set("R2", 3)
	for _, entry := range table {
		err := doExecute(t, m, entry.line)
		assert.NoError(err, entry.line)
		assert.Equal(entry.value, reg(m, "R1"), entry.line)
	}

	for _, line := range []string{"LOAD R1,3", "LOAD R1,1010", "STORE R1,999", "LOAD R1,$9"} {
		err := doExecute(t, m, line)
		assert.ErrorIs(err, &ErrOutOfRange{}, line)
		var oor *ErrOutOfRange
		if assert.True(errors.As(err, &oor), line) {
			assert.Equal(SPACE_MEMORY, oor.Space, line)
		}
	}
}

func TestMachine_TypeMismatch(t *testing.T) {
	assert := assert.New(t)

	m := newTestMachine(t, "LOAD R1,=1", "  -12 ")

	err := doExecute(t, m, "LOAD R2,1")
	assert.NoError(err)
	assert.Equal(int64(-12), reg(m, "R2"))

	err = doExecute(t, m, "LOAD R2,0")
	var mismatch *ErrTypeMismatch
	if assert.True(errors.As(err, &mismatch)) {
		assert.Equal(int64(0), mismatch.Address)
		assert.Equal(TextCell("LOAD R1,=1"), mismatch.Cell)
	}
	assert.Equal(int64(-12), reg(m, "R2"))

	err = doExecute(t, m, "LOAD R2,@0")
	assert.ErrorIs(err, &ErrTypeMismatch{})
}

func TestMachine_Labels(t *testing.T) {
	assert := assert.New(t)

	m := newTestMachine(t)
	m.Ip = 4

	err := doExecute(t, m, "loop:")
	assert.NoError(err)
	assert.Equal(map[string]int64{"loop": 4}, m.Labels)

	m.Ip = 9
	err = doExecute(t, m, "BR loop")
	assert.NoError(err)
	assert.Equal(int64(4), m.Ip)

	// Redefinition overwrites.
	m.Ip = 6
	err = doExecute(t, m, "loop:")
	assert.NoError(err)
	assert.Equal(int64(6), m.Labels["loop"])

	err = doExecute(t, m, "BR missing")
	assert.ErrorIs(err, ErrLabelUndefined("missing"))
	assert.Equal(int64(6), m.Ip)

	// Untaken branches do not resolve their label.
	m.Registers.Set("R1", 1)
	err = doExecute(t, m, "BEQ R1,R2,missing")
	assert.NoError(err)
	err = doExecute(t, m, "BNEQ R1,R2,missing")
	assert.ErrorIs(err, ErrLabelUndefined("missing"))
}

func TestMachine_Branch(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		code  string
		a, b  int64
		taken bool
	}){
		{"BLT", 1, 2, true},
		{"BLT", 2, 2, false},
		{"BGT", 3, 2, true},
		{"BGT", 2, 2, false},
		{"BLEQ", 2, 2, true},
		{"BLEQ", 3, 2, false},
		{"BGEQ", 2, 2, true},
		{"BGEQ", -1, 2, false},
		{"BEQ", 5, 5, true},
		{"BEQ", 5, -5, false},
		{"BNEQ", 5, -5, true},
		{"BNEQ", 5, 5, false},
	}

	for _, entry := range table {
		m := newTestMachine(t)
		m.Labels["target"] = 42
		m.Ip = 7
		m.Registers.Set("R4", entry.a)
		m.Registers.Set("R5", entry.b)

		line := entry.code + " R4,R5,target"
		err := doExecute(t, m, line)
		assert.NoError(err, line)
		if entry.taken {
			assert.Equal(int64(42), m.Ip, line)
		} else {
			assert.Equal(int64(7), m.Ip, line)
		}
	}
}

func TestMachine_Disk(t *testing.T) {
	assert := assert.New(t)

	m := newTestMachine(t)
	m.Registers.Set("R1", 42)
	m.Registers.Set("R3", 2)

	err := doExecute(t, m, "WRITE R1,[1,R3]", "READ R2,3")
	assert.NoError(err)
	assert.Equal(int64(42), m.Disk.Data[3])
	assert.Equal(int64(42), reg(m, "R2"))

	// Disk addresses ignore the memory window.
	assert.Equal(NumberCell(0), m.Memory.Cells[3])

	for _, line := range []string{"READ R2,100", "WRITE R1,[100,R3]"} {
		err = doExecute(t, m, line)
		var oor *ErrOutOfRange
		if assert.True(errors.As(err, &oor), line) {
			assert.Equal(SPACE_DISK, oor.Space, line)
		}
	}
}

func TestMachine_UnknownRegister(t *testing.T) {
	assert := assert.New(t)

	m := newTestMachine(t)

	for _, op := range []asm.Op{
		{Code: asm.OP_INC, Reg: "R9"},
		{Code: asm.OP_ADD, Reg: "R1", Reg2: "R9"},
		{Code: asm.OP_LOAD, Reg: "R1", Operand: asm.Operand{Mode: asm.MODE_INDEXED, Index: "R9"}},
	} {
		err := m.Execute(op)
		assert.ErrorIs(err, ErrRegisterUnknown("R9"), op.String())
		assert.ErrorIs(err, ErrOp(op), op.String())
	}

	assert.False(m.Registers.IsRegister("R9"))
}

func TestMachine_AddressMode(t *testing.T) {
	assert := assert.New(t)

	m := newTestMachine(t)

	op := asm.Op{Code: asm.OP_STORE, Reg: "R1", Operand: asm.Operand{Mode: asm.MODE_IMMEDIATE, Value: 3}}
	err := m.Execute(op)
	assert.ErrorIs(err, ErrAddressMode(asm.MODE_IMMEDIATE))
}

func TestMachine_Halt(t *testing.T) {
	assert := assert.New(t)

	m := newTestMachine(t)
	m.Ip = 3

	err := doExecute(t, m, "HALT")
	assert.NoError(err)
	assert.True(m.Halted)
	assert.Equal(int64(3), m.Ip)
	assert.Equal(1, m.Ticks)

	m.Reset()
	assert.False(m.Halted)
	assert.Equal(0, m.Ticks)
}

func TestMachine_Skip(t *testing.T) {
	assert := assert.New(t)

	m := newTestMachine(t)
	m.Skip = 25 * time.Millisecond

	var slept []time.Duration
	m.Sleep = func(d time.Duration) {
		slept = append(slept, d)
	}

	before := m.String()
	err := doExecute(t, m, "SKIP", "SKIP")
	assert.NoError(err)
	assert.Equal([]time.Duration{25 * time.Millisecond, 25 * time.Millisecond}, slept)
	assert.Equal(before, m.String())
}

func TestMachine_Reset(t *testing.T) {
	assert := assert.New(t)

	m := newTestMachine(t, "HALT")
	m.Registers.Set("R1", 5)
	m.Labels["here"] = 3
	m.Ip = 9
	m.Errored = true
	m.Disk.Data[0] = 6

	m.Reset()
	assert.Equal(int64(0), reg(m, "R1"))
	assert.Empty(m.Labels)
	assert.Equal(int64(0), m.Ip)
	assert.False(m.Errored)
	assert.Equal(TextCell("HALT"), m.Memory.Cells[0])
	assert.Equal(int64(6), m.Disk.Data[0])
}

func TestMachine_String(t *testing.T) {
	assert := assert.New(t)

	m := newTestMachine(t)
	m.Registers.Set("R2", -4)
	m.Ip = 12

	text := m.String()
	assert.Contains(text, "     ip: 12\n")
	assert.Contains(text, " halted: false\n")
	assert.Contains(text, "     R2: -4\n")
}

func TestMachine_Print(t *testing.T) {
	assert := assert.New(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sink := NewMockSink(ctrl)
	gomock.InOrder(
		sink.EXPECT().Print("R2 = -4"),
		sink.EXPECT().Print("[0] = LOAD R1,=5"),
		sink.EXPECT().Print("[3] = 17"),
	)

	m := newTestMachine(t, "LOAD R1,=5")
	m.Sink = sink
	m.Registers.Set("R2", -4)
	m.Poke(3, NumberCell(17))

	err := doExecute(t, m, "PRINT R2", "PRINT 0", "PRINT 3")
	assert.NoError(err)

	err = doExecute(t, m, "PRINT 100")
	assert.ErrorIs(err, &ErrOutOfRange{})
}

func TestMachine_Dump(t *testing.T) {
	assert := assert.New(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var dumped string
	sink := NewMockSink(ctrl)
	sink.EXPECT().Print(gomock.Any()).Do(func(text string) {
		dumped = text
	}).Times(1)

	m := newTestMachine(t, "start:", "LOAD R4,=31", "DUMP")
	m.Sink = sink
	m.Registers.Set("R4", 31)
	m.Labels["start"] = 0
	m.Ip = 2

	err := doExecute(t, m, "DUMP")
	assert.NoError(err)

	for _, text := range []string{"R1", "R4", "31", "start", "LOAD R4,=31", "DUMP", "text", "number"} {
		assert.Contains(dumped, text)
	}

	status := m.Status()
	assert.Contains(status, "HALTED")
	assert.Contains(status, "TICKS")
}

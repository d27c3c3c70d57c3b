package machine

import (
	"iter"
	"strings"
)

// Memory is the flat memory window of the machine, starting at Start.
type Memory struct {
	Start int64
	Cells []Cell
}

// NewMemory allocates a memory window of size cells at start.
func NewMemory(start int64, size int) (mem *Memory) {
	mem = &Memory{
		Start: start,
		Cells: make([]Cell, size),
	}
	return
}

// Size returns the number of cells in the window.
func (mem *Memory) Size() int {
	return len(mem.Cells)
}

// Reset zero fills the window.
func (mem *Memory) Reset() {
	clear(mem.Cells)
}

// Translate converts a machine address to an index into Cells.
func (mem *Memory) Translate(addr int64) (index int, err error) {
	offset := addr - mem.Start
	if offset < 0 || offset >= int64(len(mem.Cells)) {
		err = &ErrOutOfRange{Space: SPACE_MEMORY, Address: addr}
		return
	}

	index = int(offset)
	return
}

// Peek returns the cell at addr.
func (mem *Memory) Peek(addr int64) (cell Cell, err error) {
	index, err := mem.Translate(addr)
	if err != nil {
		return
	}

	cell = mem.Cells[index]
	return
}

// Poke replaces the cell at addr.
func (mem *Memory) Poke(addr int64, cell Cell) (err error) {
	index, err := mem.Translate(addr)
	if err != nil {
		return
	}

	mem.Cells[index] = cell
	return
}

// Int returns the numeric value of the cell at addr.
func (mem *Memory) Int(addr int64) (value int64, err error) {
	cell, err := mem.Peek(addr)
	if err != nil {
		return
	}

	value, ok := cell.Int()
	if !ok {
		err = &ErrTypeMismatch{Address: addr, Cell: cell}
		return
	}

	return
}

// Load copies source lines, less their line terminators, into memory
// from the start of the window. The remainder of the window is zero filled.
func (mem *Memory) Load(lines iter.Seq[string]) (err error) {
	cells := make([]Cell, len(mem.Cells))

	var n int
	for line := range lines {
		if n >= len(cells) {
			err = ErrProgramSize
			return
		}
		cells[n] = TextCell(strings.TrimRight(line, "\r\n"))
		n++
	}

	copy(mem.Cells, cells)

	return
}

// All iterates over every address and cell of the window.
func (mem *Memory) All() iter.Seq2[int64, Cell] {
	return func(yield func(int64, Cell) bool) {
		for n, cell := range mem.Cells {
			if !yield(mem.Start+int64(n), cell) {
				return
			}
		}
	}
}

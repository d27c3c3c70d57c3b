package machine

import (
	"strconv"
	"strings"
)

// CellKind is the type of the content of a memory cell.
type CellKind int

//go:generate go tool stringer -linecomment -type=CellKind
const (
	CELL_NUMBER = CellKind(0) // number
	CELL_TEXT   = CellKind(1) // text
)

// Cell is a single memory cell. The zero value is the number 0.
type Cell struct {
	Kind   CellKind
	Number int64
	Text   string
}

// NumberCell returns a numeric cell.
func NumberCell(value int64) Cell {
	return Cell{Kind: CELL_NUMBER, Number: value}
}

// TextCell returns a source line cell.
func TextCell(text string) Cell {
	return Cell{Kind: CELL_TEXT, Text: text}
}

// Int returns the numeric value of the cell. A text cell is numeric if
// its text, less surrounding whitespace, is a base 10 integer.
func (cell Cell) Int() (value int64, ok bool) {
	switch cell.Kind {
	case CELL_NUMBER:
		value = cell.Number
		ok = true
	case CELL_TEXT:
		var err error
		value, err = strconv.ParseInt(strings.TrimSpace(cell.Text), 10, 64)
		ok = err == nil
	}
	return
}

// String returns the cell as a source line.
func (cell Cell) String() (text string) {
	switch cell.Kind {
	case CELL_TEXT:
		text = cell.Text
	default:
		text = strconv.FormatInt(cell.Number, 10)
	}
	return
}

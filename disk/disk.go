// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package disk provides the secondary store of the register machine: a
// fixed-size array of integers, addressed independently of main memory,
// that can be loaded from and saved to a text image.
package disk

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/ezrec/regmach/translate"
)

var f = translate.From

var (
	ErrOutOfRange = errors.New(f("disk address out of range"))
	ErrImageSize  = errors.New(f("disk image larger than disk"))
)

// ErrImage reports an unparsable word of a disk image.
type ErrImage struct {
	Word  int // 1-based word index in the image.
	Value string
}

func (err *ErrImage) Error() string {
	return f("disk image word %d '%v' is not a number", err.Word, err.Value)
}

// Disk is the secondary integer store.
type Disk struct {
	Data []int64
}

// New allocates a zeroed disk of size cells.
func New(size int) (disk *Disk) {
	disk = &Disk{
		Data: make([]int64, size),
	}
	return
}

// Size returns the number of cells on the disk.
func (disk *Disk) Size() int {
	return len(disk.Data)
}

// Reset zeroes every cell.
func (disk *Disk) Reset() {
	clear(disk.Data)
}

// Read returns the value at addr.
func (disk *Disk) Read(addr int64) (value int64, err error) {
	if addr < 0 || addr >= int64(len(disk.Data)) {
		err = ErrOutOfRange
		return
	}

	value = disk.Data[addr]
	return
}

// Write stores value at addr.
func (disk *Disk) Write(addr int64, value int64) (err error) {
	if addr < 0 || addr >= int64(len(disk.Data)) {
		err = ErrOutOfRange
		return
	}

	disk.Data[addr] = value
	return
}

// Unmarshal loads whitespace separated decimal integers from a reader into
// the disk, starting at address 0. Cells past the end of the image are zeroed.
func (disk *Disk) Unmarshal(file io.Reader) (err error) {
	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanWords)

	data := make([]int64, len(disk.Data))

	var n int
	for scanner.Scan() {
		word := scanner.Text()
		if n >= len(data) {
			err = ErrImageSize
			return
		}
		var value int64
		value, err = strconv.ParseInt(word, 10, 64)
		if err != nil {
			err = &ErrImage{Word: n + 1, Value: word}
			return
		}
		data[n] = value
		n++
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	copy(disk.Data, data)

	return
}

// Marshal writes every cell of the disk to a writer, one value per line.
func (disk *Disk) Marshal(file io.Writer) (err error) {
	w := bufio.NewWriter(file)
	for _, value := range disk.Data {
		_, err = fmt.Fprintln(w, value)
		if err != nil {
			return
		}
	}

	err = w.Flush()

	return
}

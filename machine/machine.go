// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"fmt"
	"iter"
	"log"
	"os"
	"time"

	"github.com/ezrec/regmach/asm"
	"github.com/ezrec/regmach/config"
	"github.com/ezrec/regmach/disk"
)

// Machine is the complete state of a register machine.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Registers *Registers // General purpose registers.

	Ip      int64 // Current instruction pointer.
	Halted  bool  // Set by HALT.
	Errored bool  // Set when a cycle fails.

	Memory *Memory          // Program and data store.
	Disk   *disk.Disk       // Secondary store for READ and WRITE.
	Labels map[string]int64 // Labels resolved so far.

	Sink  Sink                // Destination of PRINT and DUMP.
	Skip  time.Duration       // Pause performed by SKIP.
	Sleep func(time.Duration) // Pause implementation, time.Sleep by default.

	Ticks int // Executed operations since reset.
}

// New creates a machine shaped by cfg. A nil cfg selects config.Default().
func New(cfg *config.Config) (m *Machine) {
	if cfg == nil {
		cfg = config.Default()
	}

	m = &Machine{
		Registers: NewRegisters(cfg.Registers...),
		Memory:    NewMemory(cfg.StartingAddress, cfg.MemorySize),
		Disk:      disk.New(cfg.DiskSize),
		Labels:    map[string]int64{},
		Sink:      &WriterSink{Writer: os.Stdout},
		Skip:      cfg.Skip,
		Sleep:     time.Sleep,
	}
	m.Reset()

	return
}

// Reset the machine state.
// - Clears the registers and label table.
// - Clears the halt and error flags.
// - Points the instruction pointer at the start of memory.
//
// Memory and disk contents are untouched.
func (m *Machine) Reset() {
	if m.Verbose {
		log.Printf("machine: reset")
	}

	m.Registers.Reset()
	clear(m.Labels)
	m.Ip = m.Memory.Start
	m.Halted = false
	m.Errored = false
	m.Ticks = 0
}

// Load a program into memory, and reset the machine.
func (m *Machine) Load(lines iter.Seq[string]) (err error) {
	err = m.Memory.Load(lines)
	if err != nil {
		return
	}

	m.Reset()

	return
}

// Peek returns the memory cell at addr.
func (m *Machine) Peek(addr int64) (cell Cell, err error) {
	return m.Memory.Peek(addr)
}

// Poke replaces the memory cell at addr.
func (m *Machine) Poke(addr int64, cell Cell) (err error) {
	return m.Memory.Poke(addr, cell)
}

// Fetch returns the source line at the instruction pointer.
func (m *Machine) Fetch() (line string, err error) {
	cell, err := m.Memory.Peek(m.Ip)
	if err != nil {
		return
	}

	line = cell.String()
	return
}

// Decode scans and parses a source line against the register file.
func (m *Machine) Decode(line string) (op asm.Op, err error) {
	return asm.Decode(line, m.Registers)
}

// Advance moves the instruction pointer to the next address.
func (m *Machine) Advance() {
	m.Ip++
}

// String returns the current machine state as a string.
func (m *Machine) String() (text string) {
	status := func(flag bool) string {
		if flag {
			return "true"
		}
		return "false"
	}

	text += fmt.Sprintf("% 7s: %d\n", "ip", m.Ip)
	text += fmt.Sprintf("% 7s: %v\n", "halted", status(m.Halted))
	text += fmt.Sprintf("% 7s: %v\n", "errored", status(m.Errored))
	for name, value := range m.Registers.All() {
		text += fmt.Sprintf("% 7s: %d\n", name, value)
	}

	return
}

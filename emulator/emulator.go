// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs the fetch, decode, execute and advance cycle of a
// register machine.
package emulator

import (
	"iter"
	"log"

	"github.com/ezrec/regmach/asm"
	"github.com/ezrec/regmach/config"
	"github.com/ezrec/regmach/machine"
)

// decoded is a line, and the op it decoded to.
type decoded struct {
	Line string
	Op   asm.Op
}

// Emulator state.
type Emulator struct {
	Verbose          bool // If set, enables verbose logging.
	*machine.Machine      // Reference to the machine state.

	// Frozen decodes each address once, and replays the decoded op on every
	// later visit. Stores into already visited lines are not seen.
	Frozen bool

	frozen map[int64]decoded
}

// NewEmulator creates a new emulator. A nil cfg selects config.Default().
func NewEmulator(cfg *config.Config) (emu *Emulator) {
	if cfg == nil {
		cfg = config.Default()
	}

	emu = &Emulator{
		Machine: machine.New(cfg),
		Frozen:  cfg.Frozen,
		frozen:  map[int64]decoded{},
	}

	return
}

// Load a program, and reset the emulator.
func (emu *Emulator) Load(lines iter.Seq[string]) (err error) {
	err = emu.Machine.Load(lines)
	if err != nil {
		return
	}

	emu.Reset()

	return
}

// Reset the machine state and forget any frozen decodes.
func (emu *Emulator) Reset() {
	emu.Machine.Verbose = emu.Verbose
	emu.Machine.Reset()
	clear(emu.frozen)
}

// LineNo returns the 1-based program line at the instruction pointer.
func (emu *Emulator) LineNo() int {
	return int(emu.Ip-emu.Memory.Start) + 1
}

// decode fetches and decodes the line at the instruction pointer.
func (emu *Emulator) decode() (line string, op asm.Op, err error) {
	if emu.Frozen {
		if dec, ok := emu.frozen[emu.Ip]; ok {
			line, op = dec.Line, dec.Op
			return
		}
	}

	line, err = emu.Fetch()
	if err != nil {
		return
	}

	op, err = emu.Decode(line)
	if err != nil {
		return
	}

	if emu.Frozen {
		emu.frozen[emu.Ip] = decoded{Line: line, Op: op}
	}

	return
}

// Tick performs a single cycle of the emulator.
// done is set once the machine has halted or failed.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.Halted || emu.Errored {
		done = true
		return
	}

	// Set machine verbosity
	emu.Machine.Verbose = emu.Verbose

	lineno := emu.LineNo()
	ip := emu.Ip
	var line string
	defer func() {
		if err != nil {
			emu.Errored = true
			done = true
			err = &ErrRuntime{LineNo: lineno, Ip: ip, Line: line, Err: err}
			if emu.Verbose {
				log.Printf("emulator: %v", err)
			}
		}
	}()

	line, op, err := emu.decode()
	if err != nil {
		return
	}

	err = emu.Execute(op)
	if err != nil {
		return
	}

	if emu.Halted {
		if emu.Verbose {
			log.Printf("emulator: halted at %d after %d ticks", emu.Ip, emu.Ticks)
		}
		done = true
		return
	}

	emu.Advance()

	return
}

// Run ticks the emulator until it halts or fails.
func (emu *Emulator) Run() (err error) {
	for {
		var done bool
		done, err = emu.Tick()
		if done || err != nil {
			return
		}
	}
}

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package config describes the shape of a register machine: its register
// names, memory window, disk size and timing. A configuration may be loaded
// from a Starlark file whose globals override the defaults:
//
//	registers = ["A", "B", "C"]
//	memory_size = defaults["memory_size"] * 2
//	starting_address = 100
//	disk_size = 16
//	skip_ms = 10
//	frozen = False
package config

import (
	"os"
	"slices"
	"strings"
	"time"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/regmach/asm"
)

// Config is the shape of a register machine.
type Config struct {
	Registers       []string      // Names of the general purpose registers.
	MemorySize      int           // Cells in the memory window.
	StartingAddress int64         // Address of the first memory cell.
	DiskSize        int           // Cells in the disk store.
	Skip            time.Duration // Pause performed by SKIP.
	Frozen          bool          // Decode each address once and replay it.
}

// Default returns the default machine shape: R1..R6, 100 cells of memory
// at address 0, a 100 cell disk, and a one second SKIP.
func Default() (cfg *Config) {
	cfg = &Config{
		Registers:       []string{"R1", "R2", "R3", "R4", "R5", "R6"},
		MemorySize:      100,
		StartingAddress: 0,
		DiskSize:        100,
		Skip:            time.Second,
	}
	return
}

// Validate checks the configuration for consistency.
func (cfg *Config) Validate() (err error) {
	if len(cfg.Registers) == 0 {
		return &ErrConfig{Name: "registers", Err: ErrRegistersEmpty}
	}

	for n, name := range cfg.Registers {
		if !isIdentifier(name) {
			return &ErrConfig{Name: "registers", Err: ErrRegisterName(name)}
		}
		if _, ok := asm.Keywords[name]; ok {
			return &ErrConfig{Name: "registers", Err: ErrRegisterName(name)}
		}
		if slices.Contains(cfg.Registers[:n], name) {
			return &ErrConfig{Name: "registers", Err: ErrRegisterDuplicate(name)}
		}
	}

	switch {
	case cfg.MemorySize <= 0:
		err = &ErrConfig{Name: "memory_size", Err: ErrNotPositive}
	case cfg.DiskSize <= 0:
		err = &ErrConfig{Name: "disk_size", Err: ErrNotPositive}
	case cfg.StartingAddress < 0:
		err = &ErrConfig{Name: "starting_address", Err: ErrNegative}
	case cfg.Skip < 0:
		err = &ErrConfig{Name: "skip_ms", Err: ErrNegative}
	}

	return
}

// isIdentifier returns true if the name scans as a single identifier.
func isIdentifier(name string) bool {
	if len(name) == 0 {
		return false
	}
	for n, c := range name {
		alpha := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		digit := c >= '0' && c <= '9'
		if !alpha && !(digit && n > 0) {
			return false
		}
	}
	return true
}

// predeclared returns the Starlark environment for a configuration file.
func (cfg *Config) predeclared() starlark.StringDict {
	regs := make([]starlark.Value, len(cfg.Registers))
	for n, name := range cfg.Registers {
		regs[n] = starlark.String(name)
	}

	defaults := starlark.NewDict(6)
	defaults.SetKey(starlark.String("registers"), starlark.Tuple(regs))
	defaults.SetKey(starlark.String("memory_size"), starlark.MakeInt(cfg.MemorySize))
	defaults.SetKey(starlark.String("starting_address"), starlark.MakeInt64(cfg.StartingAddress))
	defaults.SetKey(starlark.String("disk_size"), starlark.MakeInt(cfg.DiskSize))
	defaults.SetKey(starlark.String("skip_ms"), starlark.MakeInt64(cfg.Skip.Milliseconds()))
	defaults.SetKey(starlark.String("frozen"), starlark.Bool(cfg.Frozen))
	defaults.Freeze()

	return starlark.StringDict{
		"defaults": defaults,
		"keywords": keywordList(),
	}
}

func keywordList() *starlark.List {
	var names []string
	for name := range asm.Keywords {
		names = append(names, name)
	}
	slices.Sort(names)

	values := make([]starlark.Value, len(names))
	for n, name := range names {
		values[n] = starlark.String(name)
	}

	list := starlark.NewList(values)
	list.Freeze()
	return list
}

// Load executes a Starlark configuration. src may be anything accepted by
// starlark.ExecFileOptions: nil to read filename, a string, or a []byte.
func Load(filename string, src any) (cfg *Config, err error) {
	cfg = Default()

	thread := &starlark.Thread{Name: filename}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, cfg.predeclared())
	if err != nil {
		err = &ErrConfig{Name: filename, Err: err}
		cfg = nil
		return
	}

	for _, name := range globals.Keys() {
		value := globals[name]
		switch name {
		case "registers":
			cfg.Registers, err = toStrings(value)
		case "memory_size":
			cfg.MemorySize, err = toInt(value)
		case "starting_address":
			cfg.StartingAddress, err = toInt64(value)
		case "disk_size":
			cfg.DiskSize, err = toInt(value)
		case "skip_ms":
			var ms int64
			ms, err = toInt64(value)
			cfg.Skip = time.Duration(ms) * time.Millisecond
		case "frozen":
			cfg.Frozen, err = toBool(value)
		default:
			if strings.HasPrefix(name, "_") {
				continue
			}
			if _, ok := value.(*starlark.Function); ok {
				continue
			}
			err = ErrUnknown
		}
		if err != nil {
			err = &ErrConfig{Name: name, Err: err}
			cfg = nil
			return
		}
	}

	err = cfg.Validate()
	if err != nil {
		cfg = nil
	}

	return
}

// LoadFile loads a Starlark configuration file from disk.
func LoadFile(path string) (cfg *Config, err error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return
	}

	return Load(path, src)
}

func toInt64(value starlark.Value) (i64 int64, err error) {
	i, ok := value.(starlark.Int)
	if !ok {
		err = ErrType(value.Type())
		return
	}
	i64, ok = i.Int64()
	if !ok {
		err = ErrRange
	}
	return
}

func toInt(value starlark.Value) (i int, err error) {
	i, err = starlark.AsInt32(value)
	if err != nil {
		if _, ok := value.(starlark.Int); ok {
			err = ErrRange
		} else {
			err = ErrType(value.Type())
		}
	}
	return
}

func toBool(value starlark.Value) (b bool, err error) {
	v, ok := value.(starlark.Bool)
	if !ok {
		err = ErrType(value.Type())
		return
	}
	b = bool(v)
	return
}

func toStrings(value starlark.Value) (names []string, err error) {
	iterable, ok := value.(starlark.Iterable)
	if !ok {
		err = ErrType(value.Type())
		return
	}

	iter := iterable.Iterate()
	defer iter.Done()

	var item starlark.Value
	for iter.Next(&item) {
		name, ok := starlark.AsString(item)
		if !ok {
			err = ErrType(item.Type())
			return
		}
		names = append(names, name)
	}

	return
}

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/regmach/disk"
	"github.com/ezrec/regmach/emulator"
	"github.com/ezrec/regmach/machine"
)

type runOptions struct {
	disk   string
	frozen bool
	stats  bool
}

func newRunCommand(root *rootOptions) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Run a program until it halts",
		Long: `Run a program, one line per cycle, until it halts or fails.
PRINT and DUMP output is written to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runProgram(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.disk, "disk", "d", "", "Disk image, loaded before and saved after the run")
	cmd.Flags().BoolVarP(&opts.frozen, "frozen", "f", false, "Decode each line once")
	cmd.Flags().BoolVarP(&opts.stats, "stats", "s", false, "Print machine status after the run")

	return cmd
}

func runProgram(cmd *cobra.Command, root *rootOptions, opts *runOptions, path string) (err error) {
	cfg, err := root.loadConfig()
	if err != nil {
		return
	}
	if opts.frozen {
		cfg.Frozen = true
	}

	lines, err := readProgram(path)
	if err != nil {
		return
	}

	emu := emulator.NewEmulator(cfg)
	emu.Verbose = root.verbose
	emu.Sink = &machine.WriterSink{Writer: cmd.OutOrStdout()}

	if len(opts.disk) != 0 {
		err = loadDisk(emu.Disk, opts.disk)
		if err != nil {
			return
		}
	}

	err = emu.Load(lines)
	if err != nil {
		err = &exitError{Code: EXIT_RUNTIME, Err: fmt.Errorf("%v: %w", path, err)}
		return
	}

	err = emu.Run()

	if opts.stats {
		fmt.Fprintln(cmd.ErrOrStderr(), emu.Status())
	}

	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
		return
	}

	if len(opts.disk) != 0 {
		err = saveDisk(emu.Disk, opts.disk)
	}

	return
}

// loadDisk loads a disk image. A missing image leaves the disk blank.
func loadDisk(store *disk.Disk, path string) (err error) {
	inf, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		err = nil
		return
	}
	if err != nil {
		err = &exitError{Code: EXIT_NOT_FILE, Err: err}
		return
	}
	defer inf.Close()

	err = store.Unmarshal(inf)
	if err != nil {
		err = &exitError{Code: EXIT_NOT_FILE, Err: fmt.Errorf("%v: %w", path, err)}
	}

	return
}

func saveDisk(store *disk.Disk, path string) (err error) {
	ouf, err := os.Create(path)
	if err != nil {
		err = &exitError{Code: EXIT_NOT_FILE, Err: err}
		return
	}

	err = store.Marshal(ouf)
	if cerr := ouf.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		err = &exitError{Code: EXIT_NOT_FILE, Err: err}
	}

	return
}

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command regmach runs register machine programs, or prints the tokens
// the scanner finds in them.
//
// Exit status:
//
//	0  program halted
//	1  usage error
//	2  program or disk image is not a readable file
//	3  scan or parse error
//	4  runtime error
//	5  configuration error
package main

import (
	"errors"
	"iter"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/ezrec/regmach/asm"
	"github.com/ezrec/regmach/config"
	"github.com/ezrec/regmach/emulator"
)

// Process exit codes.
const (
	EXIT_OK       = 0
	EXIT_USAGE    = 1
	EXIT_NOT_FILE = 2
	EXIT_SYNTAX   = 3
	EXIT_RUNTIME  = 4
	EXIT_CONFIG   = 5
)

var errNotFile = errors.New("not a regular file")

// exitError selects the exit code of a failure.
type exitError struct {
	Code int
	Err  error
}

func (err *exitError) Error() string {
	return err.Err.Error()
}

func (err *exitError) Unwrap() error {
	return err.Err
}

// exitCode maps an error to the process exit code.
func exitCode(err error) (code int) {
	var lex *asm.ErrLex
	var parse *asm.ErrParse
	var exit *exitError
	var runtime *emulator.ErrRuntime

	switch {
	case err == nil:
		code = EXIT_OK
	case errors.As(err, &lex), errors.As(err, &parse):
		code = EXIT_SYNTAX
	case errors.As(err, &exit):
		code = exit.Code
	case errors.As(err, &runtime):
		code = EXIT_RUNTIME
	default:
		code = EXIT_USAGE
	}

	return
}

type rootOptions struct {
	config  string
	verbose bool
}

// loadConfig returns the configuration selected by --config.
func (opts *rootOptions) loadConfig() (cfg *config.Config, err error) {
	if len(opts.config) == 0 {
		cfg = config.Default()
		return
	}

	cfg, err = config.LoadFile(opts.config)
	if err != nil {
		err = &exitError{Code: EXIT_CONFIG, Err: err}
	}

	return
}

// readProgram reads a program source file as a sequence of lines.
func readProgram(path string) (lines iter.Seq[string], err error) {
	info, err := os.Stat(path)
	if err == nil && !info.Mode().IsRegular() {
		err = errNotFile
	}
	if err != nil {
		err = &exitError{Code: EXIT_NOT_FILE, Err: err}
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		err = &exitError{Code: EXIT_NOT_FILE, Err: err}
		return
	}

	lines = strings.Lines(string(data))
	return
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "regmach",
		Short:         "Register machine emulator",
		Long:          `Run, or scan, line oriented register machine assembly programs.`,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.config, "config", "c", "", "Starlark machine configuration file")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose mode")

	cmd.AddCommand(newRunCommand(opts), newScanCommand(opts))

	return cmd
}

func main() {
	err := newRootCommand().Execute()
	if err != nil {
		log.Printf("regmach: %v", err)
	}

	atexit.Exit(exitCode(err))
}

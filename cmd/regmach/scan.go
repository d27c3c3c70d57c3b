package main

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/ezrec/regmach/asm"
)

type scanOptions struct {
	decode bool
	color  bool
}

func newScanCommand(root *rootOptions) *cobra.Command {
	opts := &scanOptions{}

	cmd := &cobra.Command{
		Use:   "scan FILE",
		Short: "Print the tokens of every line of a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cmd.SilenceUsage = true

			cfg, err := root.loadConfig()
			if err != nil {
				return
			}

			lines, err := readProgram(args[0])
			if err != nil {
				return
			}

			err = scanProgram(cmd.OutOrStdout(), asm.NewRegisters(cfg.Registers...), lines, opts)
			if err != nil {
				err = fmt.Errorf("%v: %w", args[0], err)
			}
			return
		},
	}

	cmd.Flags().BoolVarP(&opts.decode, "decode", "d", false, "Also print the decoded instruction")
	cmd.Flags().BoolVar(&opts.color, "color", false, "Colorize the token dump")

	return cmd
}

// scanProgram dumps the tokens, and optionally the decoded op, of each line.
func scanProgram(w io.Writer, registers asm.RegisterSet, lines iter.Seq[string], opts *scanOptions) (err error) {
	printer := pp.New()
	printer.SetOutput(w)
	printer.SetColoringEnabled(opts.color)

	var lineno int
	for line := range lines {
		lineno++
		line = strings.TrimRight(line, "\r\n")

		var tokens []asm.Token
		tokens, err = asm.Scan(line, registers)
		if err != nil {
			err = fmt.Errorf("line %d: %w", lineno, err)
			return
		}

		fmt.Fprintf(w, "%03d: %v\n", lineno, line)
		printer.Println(tokens)

		if opts.decode {
			var op asm.Op
			op, err = asm.Parse(tokens)
			if err != nil {
				err = fmt.Errorf("line %d: %w", lineno, err)
				return
			}
			fmt.Fprintf(w, "%03d= %v\n", lineno, op)
		}
	}

	return
}

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package machine holds the state of the register machine and executes
// decoded operations against it.
//
// Memory is the program store: each cell holds either a source line, as
// loaded, or a number written by STORE. Every memory address, whatever the
// addressing mode that produced it, is translated through the machine's
// starting address before indexing; addresses outside the window are
// errors, never wrapped.
//
// Labels are resolved lazily. A label is only known once execution has
// passed over its defining line, so a branch forward to a label that has
// not yet been reached fails with ErrLabelUndefined.
package machine

// Package asm implements the scanner and decoder for the register machine's
// assembly dialect.
//
// A program is a sequence of lines, one instruction per line. Scan lexes a
// single line into tokens, classifying identifiers against the machine's
// register set, and Parse decodes those tokens into an Op: an immutable
// descriptor naming the opcode and its already-resolved operands. Ops are
// interpreted by the machine package; decoding never touches machine state.
//
// Operands of LOAD may use five addressing modes:
//
//	N       direct     memory[N]
//	=N      immediate  N
//	[N,Rj]  indexed    memory[N + Rj]
//	@N      indirect   memory[memory[N]]
//	$N      relative   memory[ip + N]
package asm

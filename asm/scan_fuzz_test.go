package asm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzScan(f *testing.F) {
	seeds := []string{
		"",
		"LOAD R1,=10",
		"LOAD R1,[4,R2]",
		"STORE R1,$-1",
		"loop: BR loop",
		"BLEQ R1,R2,done # compare",
		"PRINT 99999999999999999999999",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, line string) {
		assert := assert.New(t)

		tokens, err := Scan(line, testRegisters)
		if err != nil {
			var lex *ErrLex
			assert.True(errors.As(err, &lex))
			assert.Nil(tokens)
			return
		}

		for _, tok := range tokens {
			assert.NotEqual(KIND_EOL, tok.Kind)
			assert.NotEmpty(tok.Lexeme)
		}

		// Decoding must never panic, whatever the token stream.
		_, _ = Parse(tokens)
	})
}

package machine

import (
	"fmt"
	"io"
	"strings"
)

//go:generate go tool mockgen -write_package_comment=false -package=$GOPACKAGE -destination=mock_sink_test.go github.com/ezrec/regmach/machine Sink

// Sink receives the diagnostic output of PRINT and DUMP.
type Sink interface {
	Print(text string)
}

// WriterSink writes each diagnostic as a line to Writer.
type WriterSink struct {
	Writer io.Writer
}

// Print writes text, terminated by a single newline.
func (sink *WriterSink) Print(text string) {
	fmt.Fprintln(sink.Writer, strings.TrimRight(text, "\n"))
}

package appcore

import (
	"io"

	"fibseq/internal/fib"
	"fibseq/internal/writers"
)

// TermWriterFactory starts writers for one output format and bit width.
type TermWriterFactory struct {
	Format string
	Width  int
}

// NewTermWriterFactory returns a factory for format at width bits.
func NewTermWriterFactory(format string, width int) TermWriterFactory {
	return TermWriterFactory{Format: format, Width: width}
}

// Start launches the writer goroutine; see writers.StartTermWriter.
func (w TermWriterFactory) Start(out io.Writer, bufSize int) (chan<- fib.Term, <-chan error) {
	return writers.StartTermWriter(out, w.Format, w.Width, bufSize)
}

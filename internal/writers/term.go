package writers

import (
	"io"

	"fibseq/internal/fib"
)

// StartTermWriter spins up a writer goroutine for computed terms.
// The returned error channel yields exactly one value once in is closed
// and the writer is done. On a write error the remaining input is
// drained so producers never block.
func StartTermWriter(out io.Writer, format string, width int, bufSize int) (chan<- fib.Term, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan fib.Term, bufSize)
	errCh := make(chan error, 1)

	go func() {
		err := WriteTerms(format, out, width, in)
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}

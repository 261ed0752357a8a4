package writers

import (
	"io"
	"strconv"

	"fibseq/internal/fib"
)

func init() { RegisterTerm("text", WriteText) }

// WriteText prints the decimal value of each term, one per line.
func WriteText(w io.Writer, _ int, in <-chan fib.Term) error {
	var buf []byte
	for t := range in {
		buf = strconv.AppendInt(buf[:0], t.Value, 10)
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"fibseq/internal/fib"
)

// TermWriterFunc drains in and serializes every term to w. width is the
// bit width the values were computed in.
type TermWriterFunc func(w io.Writer, width int, in <-chan fib.Term) error

// TermWriters maps an output format to its handler. Formats register
// themselves in init() blocks (text.go, json.go).
var TermWriters = map[string]TermWriterFunc{}

// RegisterTerm adds or replaces (last wins) the writer for format.
func RegisterTerm(format string, fn TermWriterFunc) { TermWriters[format] = fn }

// Formats lists the registered output formats, sorted.
func Formats() []string {
	out := make([]string, 0, len(TermWriters))
	for k := range TermWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// WriteTerms dispatches to the writer registered for format.
func WriteTerms(format string, w io.Writer, width int, in <-chan fib.Term) error {
	fn, ok := TermWriters[format]
	if !ok {
		return fmt.Errorf("unknown term format %q (no writer registered)", format)
	}
	return fn(w, width, in)
}

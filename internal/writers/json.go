package writers

import (
	"encoding/json"
	"io"

	"fibseq/internal/fib"
	"fibseq/internal/jsonlutil"
	"fibseq/pkg/api"
)

func init() {
	RegisterTerm("json", WriteJSON)
	RegisterTerm("jsonl", WriteJSONL)
}

// ToAPITerm converts a computed term to the stable wire schema (v1).
func ToAPITerm(t fib.Term, width int) api.TermV1 {
	return api.TermV1{Index: t.Index, Value: t.Value, Width: width}
}

// WriteJSON writes a single indented JSON array of v1 terms.
func WriteJSON(w io.Writer, width int, in <-chan fib.Term) error {
	list := make([]api.TermV1, 0)
	for t := range in {
		list = append(list, ToAPITerm(t, width))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}

// WriteJSONL streams each term as one JSON line (v1).
func WriteJSONL(w io.Writer, width int, in <-chan fib.Term) error {
	return jsonlutil.Stream[fib.Term](w, in,
		func(enc *json.Encoder, t fib.Term) error {
			return enc.Encode(ToAPITerm(t, width))
		},
		IsBrokenPipe,
	)
}

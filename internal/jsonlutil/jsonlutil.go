// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
)

// Reuse a 64 KiB buffered writer across JSONL streams to avoid per-run mallocs.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// Stream encodes every value received on in as one JSON line on out.
//   - encode: fn to encode one value (convert to wire type & enc.Encode)
//   - isBroken: recognizer for broken/closed pipe errors to suppress them
func Stream[T any](out io.Writer, in <-chan T, encode func(*json.Encoder, T) error, isBroken func(error) bool) error {
	bw := bwPool.Get().(*bufio.Writer)
	bw.Reset(out)
	defer func() {
		bw.Reset(io.Discard)
		bwPool.Put(bw)
	}()

	enc := json.NewEncoder(bw)
	for v := range in {
		if err := encode(enc, v); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil && !isBroken(err) {
		return err
	}
	return nil
}

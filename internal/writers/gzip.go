package writers

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

// Compress wraps out in a gzip stream when enabled. The returned close
// func flushes the gzip trailer; it does not close out.
func Compress(out io.Writer, enabled bool) (io.Writer, func() error) {
	if !enabled {
		return out, func() error { return nil }
	}
	zw := gzip.NewWriter(out)
	return zw, zw.Close
}

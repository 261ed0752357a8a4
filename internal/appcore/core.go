// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"fibseq/internal/fib"
	"fibseq/internal/profiling"
	"fibseq/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitOutput   = 3
	ExitCanceled = 130
)

// Options selects the index range and representation for one run.
type Options struct {
	From  int
	To    int
	Width int
	Gzip  bool
}

// WriterFactory starts the goroutine that serializes terms to out.
type WriterFactory interface {
	Start(out io.Writer, bufSize int) (chan<- fib.Term, <-chan error)
}

// Run computes fib(From)..fib(To) at the configured width and streams the
// terms to the writer. prof may be nil.
func Run(
	parent context.Context,
	stdout io.Writer,
	log logrus.FieldLogger,
	o Options,
	prof *profiling.Session,
	wf WriterFactory,
) int {
	term, err := fib.ForWidth(o.Width)
	if err != nil {
		log.Error(err)
		return ExitUsage
	}
	if n, ok := fib.FirstWrap(o.Width); ok && o.To >= n {
		log.Warnf("fib(%d) and later overflow %d-bit integers; values wrap", n, o.Width)
	}

	outw := bufio.NewWriter(stdout)
	zw, closeZ := writers.Compress(outw, o.Gzip)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	inCh, writeErr := wf.Start(zw, 64)
	perr := produce(ctx, o, term, prof, inCh)
	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		log.Error(werr)
		return ExitOutput
	}
	if e := closeZ(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		log.Error(fmt.Errorf("gzip: %w", e))
		return ExitOutput
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		log.Error(e)
		return ExitOutput
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return ExitCanceled
		}
		log.Error(perr)
		return ExitOutput
	}
	log.WithFields(logrus.Fields{"from": o.From, "to": o.To, "width": o.Width}).Debug("done")
	return ExitOK
}

func produce(ctx context.Context, o Options, term fib.Func, prof *profiling.Session, out chan<- fib.Term) error {
	tagged := fib.Func(func(n int) int64 {
		var v int64
		prof.Do(ctx, n, func(context.Context) { v = term(n) })
		return v
	})
	return tagged.Each(o.From, o.To, func(t fib.Term) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case out <- t:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
}

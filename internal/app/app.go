// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"fibseq/internal/appcore"
	"fibseq/internal/cli"
	"fibseq/internal/cmdutil"
	"fibseq/internal/config"
	"fibseq/internal/profiling"
	"fibseq/internal/version"
	"fibseq/internal/writers"
)

// RunContext parses argv, resolves configuration and prints the requested
// terms. It returns the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("fibseq")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return printUsage(fs, stdout, stderr, appcore.ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return printUsage(fs, stdout, stderr, appcore.ExitUsage)
	}

	if opts.Version {
		_, err := fmt.Fprintf(stdout, "fibseq version %s\n", version.Version)
		return outputCode(err, stderr, appcore.ExitOK)
	}

	settings, err := config.Load(opts.EnvFile, opts)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return appcore.ExitUsage
	}
	log, err := cmdutil.NewLogger(stderr, settings.LogLevel, opts.Quiet)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return appcore.ExitUsage
	}

	prof, err := profiling.Start(profiling.Config{
		ServerAddress:   settings.ProfileServer,
		ApplicationName: settings.ProfileApp,
		Width:           opts.Width,
		Logger:          log,
	})
	if err != nil {
		log.WithError(err).Error("continuing without profiling")
		prof = nil
	}
	defer func() {
		if err := prof.Stop(); err != nil {
			log.WithError(err).Error("stop profiler")
		}
	}()

	coreOpts := appcore.Options{From: opts.From, To: opts.To, Width: opts.Width, Gzip: opts.Gzip}
	return appcore.Run(parent, stdout, log, coreOpts, prof, appcore.NewTermWriterFactory(opts.Output, opts.Width))
}

// Run is RunContext without cancellation.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func printUsage(fs *flag.FlagSet, stdout, stderr io.Writer, code int) int {
	outw := bufio.NewWriter(stdout)
	fs.SetOutput(outw)
	fs.Usage()
	return outputCode(outw.Flush(), stderr, code)
}

func outputCode(err error, stderr io.Writer, code int) int {
	if err == nil || writers.IsBrokenPipe(err) {
		return code
	}
	_, _ = fmt.Fprintln(stderr, err)
	return appcore.ExitOutput
}

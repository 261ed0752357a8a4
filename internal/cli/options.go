// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"fibseq/internal/cliutil"
	"fibseq/internal/fib"
	"fibseq/internal/version"
	"fibseq/internal/writers"
)

// Defaults reproduce the classic run: fib(1)..fib(14), fib(0) skipped.
const (
	DefaultFrom  = 1
	DefaultTo    = 14
	DefaultWidth = 32
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Range
	From  int
	To    int
	Width int

	// Output
	Output string
	Gzip   bool

	// Ambient; empty strings defer to the environment (see internal/config)
	LogLevel      string
	EnvFile       string
	ProfileServer string
	ProfileApp    string
	Quiet         bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: print the Fibonacci sequence

License: MIT
Version: %s

Usage: %s [flags] [TO]

Prints fib(FROM)..fib(TO), one value per line. Values are computed in
fixed-width signed integers and wrap silently on overflow.

`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// A single positional argument is accepted as TO.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Range
	fs.IntVar(&opt.From, "from", DefaultFrom, "first index printed [1]")
	fs.IntVar(&opt.To, "to", DefaultTo, "last index printed, inclusive [14]")
	fs.IntVar(&opt.Width, "width", DefaultWidth, "integer width in bits: 8 | 16 | 32 | 64 [32]")
	fs.IntVar(&opt.Width, "w", DefaultWidth, "alias of --width")

	// Output
	fs.StringVar(&opt.Output, "output", "text", "output format: "+strings.Join(writers.Formats(), " | ")+" [text]")
	fs.StringVar(&opt.Output, "o", "text", "alias of --output")
	fs.BoolVar(&opt.Gzip, "gzip", false, "gzip-compress standard output [false]")

	// Misc
	fs.StringVar(&opt.LogLevel, "log-level", "", "log level: debug | info | warn | error [$FIBSEQ_LOG_LEVEL or warn]")
	fs.StringVar(&opt.EnvFile, "env-file", "", "load settings from a dotenv file")
	fs.StringVar(&opt.ProfileServer, "profile-server", "", "pyroscope server address; empty disables profiling [$FIBSEQ_PROFILE_SERVER]")
	fs.StringVar(&opt.ProfileApp, "profile-app", "", "pyroscope application name [$FIBSEQ_PROFILE_APP or fibseq]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")
	fs.BoolVar(&help, "help", false, "show this help message [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	switch len(posArgs) {
	case 0:
	case 1:
		toSet := false
		fs.Visit(func(f *flag.Flag) {
			if f.Name == "to" {
				toSet = true
			}
		})
		if toSet {
			return opt, errors.New("positional TO conflicts with --to")
		}
		n, err := cliutil.ParseIndex(posArgs[0])
		if err != nil {
			return opt, err
		}
		opt.To = n
	default:
		return opt, fmt.Errorf("expected at most one positional argument, got %d", len(posArgs))
	}

	return opt, Validate(opt)
}

// Validate applies CLI invariants.
func Validate(o Options) error {
	if o.From < 0 {
		return errors.New("--from must be >= 0")
	}
	if o.To < 0 {
		return errors.New("--to must be >= 0")
	}
	if o.From > o.To {
		return fmt.Errorf("--from (%d) exceeds --to (%d)", o.From, o.To)
	}
	if _, err := fib.ForWidth(o.Width); err != nil {
		return fmt.Errorf("invalid --width: %w", err)
	}
	if _, ok := writers.TermWriters[o.Output]; !ok {
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	return nil
}

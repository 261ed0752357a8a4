// internal/cliutil/cliutil.go
package cliutil

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

// BoolFlags returns names of flags that don't require a value.
func BoolFlags(fs *flag.FlagSet) map[string]bool {
	m := map[string]bool{}
	fs.VisitAll(func(f *flag.Flag) {
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			m[f.Name] = true
		}
	})
	return m
}

// SplitFlagsAndPositionals separates flag-like args from positionals so
// `fibseq 20 --output json` parses the same as `fibseq --output json 20`.
// '--' ends flag parsing; '--x=y' is kept whole.
func SplitFlagsAndPositionals(fs *flag.FlagSet, argv []string) (flagArgs, posArgs []string) {
	boolFlags := BoolFlags(fs)
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		if arg == "--" {
			posArgs = append(posArgs, argv[i+1:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" || isNumber(arg) {
			posArgs = append(posArgs, arg)
			continue
		}
		flagArgs = append(flagArgs, arg)
		if strings.Contains(arg, "=") {
			continue
		}
		name := strings.TrimLeft(arg, "-")
		if !boolFlags[name] && i+1 < len(argv) {
			flagArgs = append(flagArgs, argv[i+1])
			i++
		}
	}
	return
}

// isNumber lets negative positionals through so validation can reject
// them with a useful message instead of "flag provided but not defined".
func isNumber(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

// ParseIndex parses a positional term index.
func ParseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad index %q: not an integer", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("bad index %q: must be >= 0", s)
	}
	return n, nil
}

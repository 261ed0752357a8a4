// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the stderr logger shared by the app and the profiler.
// quiet raises the level to error so warnings are dropped.
func NewLogger(dst io.Writer, level string, quiet bool) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if quiet && lvl > logrus.ErrorLevel {
		lvl = logrus.ErrorLevel
	}
	log := logrus.New()
	log.SetOutput(dst)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	return log, nil
}

// Package profiling runs an optional continuous-profiling session so long
// ranges can be inspected per term index in Pyroscope.
package profiling

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/grafana/pyroscope-go"
)

// Config selects the upload target. An empty ServerAddress disables profiling.
type Config struct {
	ServerAddress   string
	ApplicationName string
	Width           int
	Logger          pyroscope.Logger
}

// Session is a running (or disabled) profiling session. The zero value is
// a usable disabled session.
type Session struct {
	profiler *pyroscope.Profiler
}

// Start begins profiling when cfg.ServerAddress is set.
func Start(cfg Config) (*Session, error) {
	if cfg.ServerAddress == "" {
		return &Session{}, nil
	}
	if u, err := url.Parse(cfg.ServerAddress); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("start profiler: server address %q is not an http(s) URL", cfg.ServerAddress)
	}
	p, err := pyroscope.Start(pyroscope.Config{
		ApplicationName: cfg.ApplicationName,
		ServerAddress:   cfg.ServerAddress,
		Logger:          cfg.Logger,
		Tags:            map[string]string{"width": strconv.Itoa(cfg.Width)},
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocObjects,
			pyroscope.ProfileAllocSpace,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("start profiler: %w", err)
	}
	return &Session{profiler: p}, nil
}

// Enabled reports whether profiles are being uploaded.
func (s *Session) Enabled() bool { return s != nil && s.profiler != nil }

// Do runs fn with the term index attached as a profiling label.
func (s *Session) Do(ctx context.Context, index int, fn func(context.Context)) {
	if !s.Enabled() {
		fn(ctx)
		return
	}
	pyroscope.TagWrapper(ctx, pyroscope.Labels("index", strconv.Itoa(index)), fn)
}

// Stop uploads pending profiles, waits for the upload, and ends the session.
func (s *Session) Stop() error {
	if !s.Enabled() {
		return nil
	}
	s.profiler.Flush(true)
	return s.profiler.Stop()
}

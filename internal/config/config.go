// Package config resolves ambient settings from flags, the environment and
// an optional dotenv file. Precedence: flags > environment > dotenv > defaults.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"fibseq/internal/cli"
)

// Environment variable names.
const (
	EnvLogLevel      = "FIBSEQ_LOG_LEVEL"
	EnvProfileServer = "FIBSEQ_PROFILE_SERVER"
	EnvProfileApp    = "FIBSEQ_PROFILE_APP"
)

const (
	DefaultLogLevel   = "warn"
	DefaultProfileApp = "fibseq"
)

// Settings are the resolved ambient settings for one run.
type Settings struct {
	LogLevel      string
	ProfileServer string // empty disables profiling
	ProfileApp    string
}

// Load reads envFile (if any) into the process environment without
// overriding variables that are already set, then resolves Settings.
func Load(envFile string, opts cli.Options) (Settings, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Settings{}, fmt.Errorf("load env file: %w", err)
		}
	}
	return Resolve(os.Getenv, opts), nil
}

// Resolve applies flag values over the environment looked up via getenv.
func Resolve(getenv func(string) string, opts cli.Options) Settings {
	return Settings{
		LogLevel:      pick(opts.LogLevel, getenv(EnvLogLevel), DefaultLogLevel),
		ProfileServer: pick(opts.ProfileServer, getenv(EnvProfileServer), ""),
		ProfileApp:    pick(opts.ProfileApp, getenv(EnvProfileApp), DefaultProfileApp),
	}
}

func pick(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

package cmd

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// newLogger builds the console logger; --verbose lowers the level to debug
// so skipped stages show up too.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Str("app", "arc-deploy").Logger().Level(level)
}

// Package logger configures zerolog from command line options.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger holds the logging options.
type Logger struct {
	Level  string `long:"log-level"  env:"HGT_LOG_LEVEL"  description:"Log level" choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error" choice:"disabled" default:"info"`
	Format string `long:"log-format" env:"HGT_LOG_FORMAT" description:"Log format" choice:"console" choice:"json" default:"console"`
}

// Setup sets the global logger to write to stderr.
func (l Logger) Setup() {
	log.Logger = l.New(os.Stderr)
}

// New returns a new zerolog.Logger that writes to w.
func (l Logger) New(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(l.Level)
	if err != nil || l.Level == "" {
		level = zerolog.InfoLevel
	}

	if l.Format != "json" {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

package cli

import (
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var zerologGlobalMu sync.Mutex //nolint:gochecknoglobals // Protects zerolog global state

// selectLevel returns the log level for the verbosity flags.
func selectLevel(verbose, quiet bool) zerolog.Level {
	switch {
	case verbose:
		return zerolog.DebugLevel
	case quiet:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// InitLogger builds a console logger writing to w and installs it as the
// zerolog global logger so library code logging through zerolog/log ends up
// in the same place.
func InitLogger(verbose, quiet bool, w io.Writer) zerolog.Logger {
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	logger := zerolog.New(console).Level(selectLevel(verbose, quiet)).With().Timestamp().Logger()

	zerologGlobalMu.Lock()
	defer zerologGlobalMu.Unlock()
	log.Logger = logger

	return logger
}

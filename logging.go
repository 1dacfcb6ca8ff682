package foamshot

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the process-wide zerolog.Logger, level set by -v count
// or the FOAMSHOT_LOG env var (trace/debug/info/warn/error), defaulting
// to info.
func NewLogger(verbosity int) zerolog.Logger {
	level := zerolog.InfoLevel
	if env := os.Getenv("FOAMSHOT_LOG"); env != "" {
		if lvl, err := zerolog.ParseLevel(env); err == nil {
			level = lvl
		}
	} else if verbosity > 0 {
		level = zerolog.DebugLevel
		if verbosity > 1 {
			level = zerolog.TraceLevel
		}
	}

	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

package cli

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/natefinch/lumberjack"
	"github.com/rs/zerolog"
)

// parseLevel maps a --log-level value to a zerolog level.
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	case "off", "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// newLogger returns the root logger. With a log file it writes JSON lines
// through a rotating lumberjack writer; otherwise it writes human-readable
// lines to fallback. A nil fallback discards output.
func newLogger(level, file string, fallback io.Writer) (zerolog.Logger, io.Closer) {
	var w io.Writer
	var closer io.Closer = nopCloser{}
	switch {
	case file != "":
		lj := &lumberjack.Logger{Filename: file, MaxSize: 10, MaxBackups: 3, MaxAge: 28}
		w, closer = lj, lj
	case fallback != nil:
		w = zerolog.ConsoleWriter{Out: fallback, TimeFormat: time.RFC3339}
	default:
		return zerolog.Nop(), closer
	}
	return zerolog.New(w).Level(parseLevel(level)).With().Timestamp().Logger(), closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Env helpers
func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

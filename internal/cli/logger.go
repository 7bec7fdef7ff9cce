package cli

import (
	"io"
	"os"
	"time"

	"github.com/alexanderramin/sprintline/internal/config"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds the process logger. Console output is human-readable on a
// terminal and JSON otherwise; when cfg.File is set every entry is also
// written to a rotating file. The returned closer releases that file.
func NewLogger(cfg config.LogConfig, console io.Writer, isTTY bool) (zerolog.Logger, io.Closer) {
	out := selectOutput(cfg.Format, console, isTTY)
	var closer io.Closer = nopCloser{}

	if cfg.File != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
		out = zerolog.MultiLevelWriter(out, lj)
		closer = lj
	}

	logger := zerolog.New(out).Level(cfg.Level).With().Timestamp().Logger()
	return logger, closer
}

func selectOutput(format string, w io.Writer, isTTY bool) io.Writer {
	switch format {
	case config.FormatJSON:
		return w
	case config.FormatConsole:
		return zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: !isTTY}
	}
	if isTTY && os.Getenv("NO_COLOR") == "" {
		return zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return w
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const (
	colorRed     = 31
	colorGreen   = 32
	colorYellow  = 33
	colorMagenta = 35
)

// SetConsoleWriter sends human readable output to stderr, keeping stdout for results.
func SetConsoleWriter() {
	log = zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
		w.FormatLevel = consoleFormatLevel(false)
		w.TimeFormat = "15:04:05.000"
	}))
}

func SetJsonWriter() {
	log = zerolog.New(os.Stderr)
}

// SetFormat selects the console or json writer.
func SetFormat(format string) error {
	switch strings.ToLower(format) {
	case "console", "":
		SetConsoleWriter()
	case "json":
		SetJsonWriter()
	default:
		return fmt.Errorf("unknown log format %q (want console or json)", format)
	}
	return nil
}

func colorize(s interface{}, c int, disabled bool) string {
	if disabled {
		return fmt.Sprintf("%s", s)
	}
	return fmt.Sprintf("\x1b[%dm%v\x1b[0m", c, s)
}

func consoleFormatLevel(noColor bool) zerolog.Formatter {
	return func(i interface{}) string {
		ll, _ := i.(string)
		switch strings.ToLower(ll) {
		case "trace":
			return colorize("TRC", colorMagenta, noColor)
		case "debug":
			return colorize("DBG", colorYellow, noColor)
		case "info":
			return colorize("INF", colorGreen, noColor)
		case "warn":
			return colorize("WRN", colorRed, noColor)
		case "error":
			return colorize("ERR", colorRed, noColor)
		case "fatal":
			return colorize("FTL", colorRed, noColor)
		case "panic":
			return colorize("PNC", colorRed, noColor)
		}
		return colorize("???", colorRed, noColor)
	}
}

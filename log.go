package movieclip

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var logger = newLogger(os.Stderr)

// newLogger creates a [log.Logger] writing to w with the package prefix.
func newLogger(w io.Writer) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		Prefix: "movieclip",
		Level:  log.WarnLevel,
	})
	return l
}

// Logger returns the package logger.
func Logger() *log.Logger {
	return logger
}

// SetLogger replaces the package logger. A nil logger restores the default
// stderr logger.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = newLogger(os.Stderr)
	}
	logger = l
}

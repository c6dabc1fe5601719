// Package logging builds the file logger; the terminal belongs to the UI.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

type Config struct {
	Path  string
	Debug bool
}

// Open creates a logger appending to cfg.Path. The returned closer releases
// the file.
func Open(cfg Config) (*log.Logger, io.Closer, error) {
	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", cfg.Path, err)
	}
	return New(f, cfg.Debug), f, nil
}

func New(w io.Writer, debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "ledger",
	})
}

// Component returns a child logger tagged with the component name.
func Component(l *log.Logger, name string) *log.Logger {
	return l.WithPrefix("ledger/" + name)
}

// Discard is a logger that writes nowhere, for tests and one-shot commands.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

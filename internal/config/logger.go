package config

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the application logger described by c.Log.
func (c *Config) NewLogger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	out := w
	if c.Log.Format != "json" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// Package logging builds the zerolog logger shared by the server.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/benbeisheim/chessmaster-backend/internal/config"
)

// New returns a logger writing to w at the configured level. Pretty output is
// meant for a terminal; otherwise one JSON object is written per line.
func New(cfg config.LogConfig, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Package telemetry constructs the process-wide zerolog logger.
package telemetry

import (
	"io"

	"github.com/rs/zerolog"
)

// NewLogger builds the root logger writing to w. Development gets the human
// console writer; everything else emits JSON lines.
func NewLogger(w io.Writer, env string) zerolog.Logger {
	if env == "development" {
		w = zerolog.ConsoleWriter{Out: w}
	}
	return zerolog.New(w).With().Timestamp().Logger()
}

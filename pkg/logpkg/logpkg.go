// Package logpkg builds the application root logger.
package logpkg

import (
	"io"
	"os"
	"time"

	"github.com/go-petr/pet-ledger/pkg/configpkg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// New returns the root logger configured for the given environment.
// Development gets a human readable console writer with caller info.
func New(config configpkg.Config) zerolog.Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	var (
		output   io.Writer = os.Stderr
		logLevel           = zerolog.InfoLevel // default to INFO
	)

	log := zerolog.New(output).
		Level(logLevel).
		With().
		Timestamp().
		Logger()

	if config.Environment == "development" {
		log = log.
			Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			Level(zerolog.TraceLevel).
			With().
			Caller().
			Logger()
	}

	return log
}

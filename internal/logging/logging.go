package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/outofforest/wordtree/internal/config"
)

// New creates logger writing to out according to the configuration.
func New(out io.Writer, conf config.LoggingConfig) zerolog.Logger {
	if conf.Format == config.LogFormatJSON {
		return zerolog.New(out).Level(conf.Level).With().Timestamp().Logger()
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.TimeOnly,
		NoColor:    true,
	}).Level(conf.Level).With().Timestamp().Logger()
}

package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Logger = zerolog.Logger

// New builds the process logger and installs it as the zerolog global.
// The local env writes human readable output.
func New(env string) Logger {
	var out io.Writer = os.Stdout
	level := zerolog.InfoLevel
	if env == "local" {
		out = zerolog.ConsoleWriter{Out: os.Stdout}
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	log.Logger = logger
	return logger
}

func Nop() Logger {
	return zerolog.Nop()
}

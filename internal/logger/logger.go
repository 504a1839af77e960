package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// SetupLogger настраивает глобальный уровень и возвращает консольный логгер
func SetupLogger(debug bool) *zerolog.Logger {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	zlog := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
	return &zlog
}

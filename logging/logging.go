package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const logFileName = "glowpoint.log"

// Setup configures the global logger. Console output is always on; the
// debug log file is opt-in because it grows quickly with pointer traffic.
func Setup(fileLogging bool) zerolog.Logger {
	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	var w io.Writer = console
	if fileLogging {
		logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			log.Error().Err(err).Msg("Failed to open log file, console only")
		} else {
			w = zerolog.MultiLevelWriter(console, logFile)
		}
	}

	logger := zerolog.New(w).With().Timestamp().Logger()
	log.Logger = logger
	return logger
}

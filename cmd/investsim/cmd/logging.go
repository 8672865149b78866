package cmd

import (
	"io"

	"github.com/phuslu/log"

	"github.com/rpgo/investsim/internal/calculation"
)

// cliLogger adapts a phuslu logger to the engine's Logger interface.
type cliLogger struct {
	logger *log.Logger
}

func newCLILogger(level string, w io.Writer) calculation.Logger {
	if level == "" {
		level = "info"
	}
	return cliLogger{logger: &log.Logger{
		Level:  log.ParseLevel(level),
		Writer: &log.ConsoleWriter{Writer: w},
	}}
}

func (c cliLogger) Debugf(format string, args ...any) { c.logger.Debug().Msgf(format, args...) }
func (c cliLogger) Infof(format string, args ...any)  { c.logger.Info().Msgf(format, args...) }
func (c cliLogger) Warnf(format string, args ...any)  { c.logger.Warn().Msgf(format, args...) }
func (c cliLogger) Errorf(format string, args ...any) { c.logger.Error().Msgf(format, args...) }

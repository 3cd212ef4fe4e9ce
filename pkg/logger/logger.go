// Package logger arma el logger estructurado del servicio: JSON en
// producción, consola legible en desarrollo.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Config controla salida y nivel mínimo.
type Config struct {
	Env   string // development -> consola legible; cualquier otro -> JSON
	Level string // debug, info, warn, error
}

// Logger envuelve zerolog detrás del subconjunto de niveles que usa la
// aplicación, para inyectarlo en los casos de uso sin exponer la librería.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger según la configuración.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zl := zerolog.New(w).
		Level(parseLevel(cfg.Level)).
		With().Timestamp().
		Logger()
	return &Logger{zl: zl}
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Info, Warn, Error y Fatal delegan en zerolog; el evento se completa con
// campos y Msg en el sitio de llamada.
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

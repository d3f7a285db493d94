package logging

import (
	"strings"

	"github.com/rs/zerolog"
	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
)

// WailsLoggerAdapter routes the Wails runtime's own output through a Logger.
// It satisfies github.com/wailsapp/wails/v2/pkg/logger.Logger.
type WailsLoggerAdapter struct {
	logger Logger
}

// NewWailsLoggerAdapter creates an adapter; a nil logger falls back to the default one
func NewWailsLoggerAdapter(logger Logger) *WailsLoggerAdapter {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &WailsLoggerAdapter{logger: logger}
}

// Wails terminates lines itself; strip the trailing newline so entries stay one-line JSON
func clean(message string) string {
	return strings.TrimRight(message, "\r\n")
}

func (w *WailsLoggerAdapter) Print(message string) {
	w.logger.Info(clean(message), "source", "wails")
}

func (w *WailsLoggerAdapter) Trace(message string) {
	w.logger.Debug(clean(message), "source", "wails", "level_hint", "trace")
}

func (w *WailsLoggerAdapter) Debug(message string) {
	w.logger.Debug(clean(message), "source", "wails")
}

func (w *WailsLoggerAdapter) Info(message string) {
	w.logger.Info(clean(message), "source", "wails")
}

func (w *WailsLoggerAdapter) Warning(message string) {
	w.logger.Warn(clean(message), "source", "wails")
}

func (w *WailsLoggerAdapter) Error(message string) {
	w.logger.Error(clean(message), "source", "wails")
}

// Fatal is logged as an error; Wails decides whether to exit
func (w *WailsLoggerAdapter) Fatal(message string) {
	w.logger.Error(clean(message), "source", "wails", "level_hint", "fatal")
}

// WailsLevel maps a textual level onto the Wails runtime's log level
func WailsLevel(level string) wailslogger.LogLevel {
	switch ParseLevel(level) {
	case zerolog.TraceLevel:
		return wailslogger.TRACE
	case zerolog.DebugLevel:
		return wailslogger.DEBUG
	case zerolog.WarnLevel:
		return wailslogger.WARNING
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return wailslogger.ERROR
	default:
		return wailslogger.INFO
	}
}

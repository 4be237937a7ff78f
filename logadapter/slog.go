package logadapter

import (
	"context"
	"fmt"
	"log/slog"
)

// SlogLogger forwards client log output to a log/slog logger.
type SlogLogger struct {
	logger *slog.Logger
}

// Slog wraps logger. A nil logger is replaced by slog.Default.
func Slog(logger *slog.Logger) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}

	return &SlogLogger{logger: logger.With("component", "notion")}
}

func (l *SlogLogger) Errorf(format string, v ...any) { l.log(slog.LevelError, format, v...) }
func (l *SlogLogger) Warnf(format string, v ...any)  { l.log(slog.LevelWarn, format, v...) }
func (l *SlogLogger) Debugf(format string, v ...any) { l.log(slog.LevelDebug, format, v...) }

func (l *SlogLogger) log(level slog.Level, format string, v ...any) {
	ctx := context.Background()
	if !l.logger.Enabled(ctx, level) {
		return
	}

	l.logger.Log(ctx, level, fmt.Sprintf(format, v...))
}

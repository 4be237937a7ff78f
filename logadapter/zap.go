package logadapter

import "go.uber.org/zap"

// ZapLogger forwards client log output to a zap logger.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// Zap wraps logger. A nil logger is replaced by zap.NewNop.
func Zap(logger *zap.Logger) *ZapLogger {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ZapLogger{sugar: logger.Named("notion").Sugar()}
}

func (l *ZapLogger) Errorf(format string, v ...any) { l.sugar.Errorf(format, v...) }
func (l *ZapLogger) Warnf(format string, v ...any)  { l.sugar.Warnf(format, v...) }
func (l *ZapLogger) Debugf(format string, v ...any) { l.sugar.Debugf(format, v...) }

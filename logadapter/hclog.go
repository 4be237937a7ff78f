package logadapter

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
)

// HclogLogger forwards client log output to an hclog logger.
type HclogLogger struct {
	logger hclog.Logger
}

// Hclog wraps logger. A nil logger is replaced by hclog.NewNullLogger.
func Hclog(logger hclog.Logger) *HclogLogger {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &HclogLogger{logger: logger.Named("notion")}
}

func (l *HclogLogger) Errorf(format string, v ...any) { l.logger.Error(fmt.Sprintf(format, v...)) }
func (l *HclogLogger) Warnf(format string, v ...any)  { l.logger.Warn(fmt.Sprintf(format, v...)) }
func (l *HclogLogger) Debugf(format string, v ...any) { l.logger.Debug(fmt.Sprintf(format, v...)) }

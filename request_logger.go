package client

import (
	"fmt"
	"strings"
)

// RequestLogger is the interface used by [Client] for logging HTTP requests
// and errors. It has the same method set as resty's logger, and the client
// hands it to resty as well. Implement it directly or use one of the
// adapters in the logadapter package, then supply it via [WithRequestLogger].
type RequestLogger interface {
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Debugf(format string, v ...any)
}

// NoopLogger is a [RequestLogger] that silently discards all log messages.
// It is the default logger used when no logger is provided to [New].
type NoopLogger struct{}

func (l *NoopLogger) Errorf(_ string, _ ...any) {}
func (l *NoopLogger) Warnf(_ string, _ ...any)  {}
func (l *NoopLogger) Debugf(_ string, _ ...any) {}

// redactingLogger replaces every occurrence of the integration token in
// formatted messages before handing them to the wrapped logger. It sits
// between the client (and resty) and the caller's logger.
type redactingLogger struct {
	next   RequestLogger
	secret string
}

func newRedactingLogger(next RequestLogger, secret string) RequestLogger {
	if strings.TrimSpace(secret) == "" {
		return next
	}

	return &redactingLogger{next: next, secret: secret}
}

func (l *redactingLogger) Errorf(format string, v ...any) {
	l.next.Errorf("%s", l.redact(format, v))
}

func (l *redactingLogger) Warnf(format string, v ...any) {
	l.next.Warnf("%s", l.redact(format, v))
}

func (l *redactingLogger) Debugf(format string, v ...any) {
	l.next.Debugf("%s", l.redact(format, v))
}

func (l *redactingLogger) redact(format string, v []any) string {
	return strings.ReplaceAll(fmt.Sprintf(format, v...), l.secret, "[REDACTED]")
}

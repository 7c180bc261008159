package logger

import "go.uber.org/zap"

// ZapLogger implements the [Logger] interface on top of a zap logger.
// Trace records are logged at zap's debug level, which has no lower
// neighbor.
type ZapLogger struct {
	logger *zap.SugaredLogger
}

var _ Logger = (*ZapLogger)(nil)

// NewZapLogger returns a new [ZapLogger].
// It will panic if the logger is nil.
func NewZapLogger(logger *zap.Logger) *ZapLogger {
	if logger == nil {
		panic("nil logger")
	}
	// skip this adapter's frame so call sites are attributed correctly
	return &ZapLogger{logger: logger.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

// Trace logs at the debug level.
func (l *ZapLogger) Trace(msg string, args ...any) {
	l.logger.Debugw(msg, args...)
}

// Debug logs at the debug level.
func (l *ZapLogger) Debug(msg string, args ...any) {
	l.logger.Debugw(msg, args...)
}

// Info logs at the info level.
func (l *ZapLogger) Info(msg string, args ...any) {
	l.logger.Infow(msg, args...)
}

// Warn logs at the warn level.
func (l *ZapLogger) Warn(msg string, args ...any) {
	l.logger.Warnw(msg, args...)
}

// Error logs at the error level.
func (l *ZapLogger) Error(msg string, args ...any) {
	l.logger.Errorw(msg, args...)
}

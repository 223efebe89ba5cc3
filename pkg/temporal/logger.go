package temporal

import (
	"go.temporal.io/sdk/log"
	"go.uber.org/zap"
)

// Logger routes SDK logging through zap.
type Logger struct {
	s *zap.SugaredLogger
}

var (
	_ log.Logger     = (*Logger)(nil)
	_ log.WithLogger = (*Logger)(nil)
)

func NewLogger(l *zap.Logger) *Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return &Logger{s: l.Named("temporal").WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

func (l *Logger) Debug(msg string, keyvals ...interface{}) { l.s.Debugw(msg, keyvals...) }
func (l *Logger) Info(msg string, keyvals ...interface{})  { l.s.Infow(msg, keyvals...) }
func (l *Logger) Warn(msg string, keyvals ...interface{})  { l.s.Warnw(msg, keyvals...) }
func (l *Logger) Error(msg string, keyvals ...interface{}) { l.s.Errorw(msg, keyvals...) }

func (l *Logger) With(keyvals ...interface{}) log.Logger {
	return &Logger{s: l.s.With(keyvals...)}
}

package logger

import "go.uber.org/zap"

func ProvideLoggerMiddleware() *Middleware { return &Middleware{log: accessLogger()} }
func ProvideLogger() *zap.Logger           { return NewLog("system.log") }

// NewMiddleware returns an access-log middleware writing to l instead of http-access.log.
func NewMiddleware(l *zap.Logger) *Middleware { return &Middleware{log: l} }

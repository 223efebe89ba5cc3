package logger

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

func logDir() string {
	dir := strings.TrimSpace(os.Getenv("LOG_DIR"))
	if dir == "" {
		dir = "log"
	}
	_ = os.MkdirAll(dir, 0o755)
	return dir
}

func level() zapcore.Level {
	lvl := zap.InfoLevel
	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		if err := lvl.UnmarshalText([]byte(strings.ToLower(v))); err != nil {
			lvl = zap.InfoLevel
		}
	}
	return lvl
}

// NewLog builds a JSON logger tee'd to stdout and a rotating file log/<n>.
func NewLog(n string) *zap.Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	console := zapcore.Lock(os.Stdout)

	w := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(logDir(), n),
		MaxSize:    50, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
	})

	lvl := level()
	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(cfg), w, lvl),
		zapcore.NewCore(zapcore.NewJSONEncoder(cfg), console, lvl),
	)
	return zap.New(core)
}

// accessLogger opens http-access.log once, on first use, so importing the
// package has no side effects.
var accessLogger = sync.OnceValue(func() *zap.Logger {
	return NewLog("http-access.log")
})

// Package logger is a process-wide leveled logger backed by zap.
package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu        sync.RWMutex
	atom      = zap.NewAtomicLevelAt(zap.InfoLevel)
	zapLogger = build("console", []string{"stderr"})
)

func build(encoding string, outputPaths []string) *zap.SugaredLogger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.MessageKey = "message"
	encoderConfig.LevelKey = "level"
	encoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
	cfg := zap.Config{
		Level:            atom,
		Encoding:         encoding,
		OutputPaths:      outputPaths,
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    encoderConfig,
	}
	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}

// InitLogger rebuilds the logger with the given encoding ("console" or "json")
// and output paths (file paths, "stdout" or "stderr").
func InitLogger(encoding string, outputPaths ...string) {
	if len(outputPaths) == 0 {
		outputPaths = []string{"stderr"}
	}
	l := build(encoding, outputPaths)
	mu.Lock()
	old := zapLogger
	zapLogger = l
	mu.Unlock()
	_ = old.Sync()
}

// SetLogger replaces the underlying logger, mostly useful in tests.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	zapLogger = l.WithOptions(zap.AddCallerSkip(1)).Sugar()
	mu.Unlock()
}

func GetLevel() string {
	return atom.Level().String()
}

// SetLevel accepts debug, info, warn or error. An empty level means debug.
func SetLevel(lvl string) error {
	if lvl == "" {
		lvl = "debug"
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(lvl)); err != nil {
		return err
	}
	atom.SetLevel(l)
	Debugf("Set logger level to %v", l)
	return nil
}

func sugar() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return zapLogger
}

func Sync() error {
	return sugar().Sync()
}

func Debug(args ...interface{}) {
	sugar().Debug(args...)
}

func Info(args ...interface{}) {
	sugar().Info(args...)
}

func Error(args ...interface{}) {
	sugar().Error(args...)
}

func Debugf(template string, args ...interface{}) {
	sugar().Debugf(template, args...)
}

func Infof(template string, args ...interface{}) {
	sugar().Infof(template, args...)
}

func Warnf(template string, args ...interface{}) {
	sugar().Warnf(template, args...)
}

func Errorf(template string, args ...interface{}) {
	sugar().Errorf(template, args...)
}

// Infow logs a message with structured key/value pairs.
func Infow(msg string, keysAndValues ...interface{}) {
	sugar().Infow(msg, keysAndValues...)
}

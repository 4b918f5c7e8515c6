package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"tycord/config"
)

// Logger wraps a zap sugared logger so call sites stay key/value based.
type Logger struct {
	sugar *zap.SugaredLogger
}

var levels = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

func NewLogger(cfg *config.Config) (*Logger, error) {
	level, ok := levels[cfg.LoggerMode.Level]
	if !ok {
		level = zapcore.DebugLevel
	}

	var zapCfg zap.Config
	if cfg.LoggerMode.Prod {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	l, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	return &Logger{sugar: l.Sugar()}, nil
}

func (l *Logger) Debug(msg string, keysAndValues ...any) {
	if l.sugar == nil {
		return
	}
	l.sugar.Debugw(msg, keysAndValues...)
}

func (l *Logger) Info(msg string, keysAndValues ...any) {
	if l.sugar == nil {
		return
	}
	l.sugar.Infow(msg, keysAndValues...)
}

func (l *Logger) Warn(msg string, keysAndValues ...any) {
	if l.sugar == nil {
		return
	}
	l.sugar.Warnw(msg, keysAndValues...)
}

func (l *Logger) Error(msg string, keysAndValues ...any) {
	if l.sugar == nil {
		return
	}
	l.sugar.Errorw(msg, keysAndValues...)
}

func (l *Logger) Errorf(format string, args ...any) {
	if l.sugar == nil {
		return
	}
	l.sugar.Errorf(format, args...)
}

func (l *Logger) Fatal(msg string, keysAndValues ...any) {
	if l.sugar == nil {
		return
	}
	l.sugar.Fatalw(msg, keysAndValues...)
}

package logx

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Config controls the process-wide logger
type Config struct {
	Level Level
	JSON  bool
}

var (
	mu     sync.RWMutex
	level  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	logger = build(Config{Level: LevelInfo}).Sugar()
)

// Configure replaces the process-wide logger
func Configure(cfg Config) {
	l := build(cfg)

	mu.Lock()
	old := logger
	logger = l.Sugar()
	mu.Unlock()

	_ = old.Sync()
}

// SetLevel changes the minimum level without rebuilding the logger
func SetLevel(l Level) {
	level.SetLevel(toZapLevel(l))
}

func build(cfg Config) *zap.Logger {
	level.SetLevel(toZapLevel(cfg.Level))

	zcfg := zap.Config{
		Level:            level,
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	if cfg.JSON {
		zcfg.Encoding = "json"
		zcfg.EncoderConfig = zap.NewProductionEncoderConfig()
	}
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := zcfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func toZapLevel(l Level) zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func get() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// With returns a child logger carrying structured key/value pairs
func With(keysAndValues ...any) *zap.SugaredLogger {
	return get().Desugar().WithOptions(zap.AddCallerSkip(-1)).Sugar().With(keysAndValues...)
}

func Sync() error { return get().Sync() }

func Debug(args ...any)                 { get().Debug(args...) }
func Debugf(format string, args ...any) { get().Debugf(format, args...) }
func Info(args ...any)                  { get().Info(args...) }
func Infof(format string, args ...any)  { get().Infof(format, args...) }
func Warn(args ...any)                  { get().Warn(args...) }
func Warnf(format string, args ...any)  { get().Warnf(format, args...) }
func Error(args ...any)                 { get().Error(args...) }
func Errorf(format string, args ...any) { get().Errorf(format, args...) }
func Fatalf(format string, args ...any) { get().Fatalf(format, args...) }

package logging

import (
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"evcharge-admin-backend/config"
)

// New configures a zap logger. LOG_LEVEL, when set, wins over the config file.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	levelStr := cfg.Level
	if env := strings.TrimSpace(os.Getenv("LOG_LEVEL")); env != "" {
		levelStr = env
	}
	var level zapcore.Level
	if err := level.Set(strings.ToLower(levelStr)); err != nil {
		level = zapcore.InfoLevel
	}

	encoding := "json"
	if cfg.Development {
		encoding = "console"
	}

	zcfg := zap.Config{
		Level:       zap.NewAtomicLevelAt(level),
		Development: cfg.Development,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:         encoding,
		EncoderConfig:    encoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return zcfg.Build()
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.LowercaseLevelEncoder,
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.UTC().Format(time.RFC3339Nano))
		},
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

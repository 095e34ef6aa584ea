// SPDX-License-Identifier: MIT

// Package logutil builds the zap logger used by the hclust command.
package logutil

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"

	timeLayout = "2006/01/02 15:04:05.000000 -0700"
)

var (
	// ErrUnsupportedFormat indicates a log format other than console or json.
	ErrUnsupportedFormat = errors.New("logutil: unsupported log format")

	// ErrUnsupportedLevel indicates a level zap does not know.
	ErrUnsupportedLevel = errors.New("logutil: unsupported log level")
)

// LogConfig is the [log] section of the configuration file.
// An empty Filename logs to stderr; otherwise the file is rotated by size.
type LogConfig struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	Filename   string `toml:"filename"`
	MaxSize    int    `toml:"max_size"`    // megabytes before rotation
	MaxDays    int    `toml:"max_days"`    // 0 keeps old files forever
	MaxBackups int    `toml:"max_backups"` // 0 keeps all rotated files
}

// DefaultLogConfig logs at info level in console format to stderr.
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:   zapcore.InfoLevel.String(),
		Format:  FormatConsole,
		MaxSize: 64,
	}
}

// Validate checks level and format without building anything.
func (cfg *LogConfig) Validate() error {
	if _, err := cfg.getLevel(); err != nil {
		return err
	}
	_, err := getLoggerEncoder(cfg.Format)

	return err
}

// Setup returns a logger for cfg. Call Sync on it before exit.
func Setup(cfg LogConfig) (*zap.Logger, error) {
	level, err := cfg.getLevel()
	if err != nil {
		return nil, err
	}
	encoder, err := getLoggerEncoder(cfg.Format)
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(encoder, cfg.getSyncer(), level)

	return zap.New(core, cfg.getOptions()...), nil
}

func (cfg *LogConfig) getLevel() (zap.AtomicLevel, error) {
	var l zapcore.Level
	name := strings.TrimSpace(cfg.Level)
	if name == "" {
		name = zapcore.InfoLevel.String()
	}
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return zap.AtomicLevel{}, fmt.Errorf("%w: %q", ErrUnsupportedLevel, cfg.Level)
	}

	return zap.NewAtomicLevelAt(l), nil
}

func (cfg *LogConfig) getOptions() []zap.Option {
	return []zap.Option{zap.AddStacktrace(zapcore.FatalLevel), zap.AddCaller()}
}

func (cfg *LogConfig) getSyncer() zapcore.WriteSyncer {
	if cfg.Filename == "" {
		return getConsoleSyncer()
	}

	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxAge:     cfg.MaxDays,
		MaxBackups: cfg.MaxBackups,
		LocalTime:  true,
	})
}

func getConsoleSyncer() zapcore.WriteSyncer {
	return zapcore.Lock(os.Stderr)
}

func getLoggerEncoder(format string) (zapcore.Encoder, error) {
	encCfg := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "name",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     encodeTime,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		return zapcore.NewJSONEncoder(encCfg), nil
	case FormatConsole, "":
		return zapcore.NewConsoleEncoder(encCfg), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func encodeTime(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format(timeLayout))
}

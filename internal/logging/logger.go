// Package logging is the leveled, structured diagnostics sink. Lines are
// JSON objects with ts, level, msg, component and any extra fields.
package logging

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	z *zap.Logger
}

// ParseLevel maps debug, info, warn/warning and error. Anything else is info.
func ParseLevel(levelStr string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func NewLogger(levelStr string) *Logger {
	return NewLoggerWithWriter(levelStr, os.Stdout)
}

func NewLoggerWithWriter(levelStr string, w io.Writer) *Logger {
	enc := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		MessageKey:     "msg",
		NameKey:        "logger",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(w), ParseLevel(levelStr))
	return &Logger{z: zap.New(core)}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{z: zap.NewNop()}
}

func (l *Logger) WithComponent(name string) *Logger {
	if l == nil {
		return Nop()
	}
	return &Logger{z: l.z.With(zap.String("component", name))}
}

func (l *Logger) Debug(format string, args ...any) { l.logf(zapcore.DebugLevel, format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.logf(zapcore.InfoLevel, format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.logf(zapcore.WarnLevel, format, args...) }
func (l *Logger) Error(format string, args ...any) { l.logf(zapcore.ErrorLevel, format, args...) }

func (l *Logger) Debugw(msg string, fields map[string]any) { l.logw(zapcore.DebugLevel, msg, fields) }
func (l *Logger) Infow(msg string, fields map[string]any)  { l.logw(zapcore.InfoLevel, msg, fields) }
func (l *Logger) Warnw(msg string, fields map[string]any)  { l.logw(zapcore.WarnLevel, msg, fields) }
func (l *Logger) Errorw(msg string, fields map[string]any) { l.logw(zapcore.ErrorLevel, msg, fields) }

// Sync flushes buffered output.
func (l *Logger) Sync() error {
	if l == nil {
		return nil
	}
	return l.z.Sync()
}

func (l *Logger) logf(level zapcore.Level, format string, args ...any) {
	if l == nil || !l.z.Core().Enabled(level) {
		return
	}
	if ce := l.z.Check(level, fmt.Sprintf(format, args...)); ce != nil {
		ce.Write()
	}
}

func (l *Logger) logw(level zapcore.Level, msg string, fields map[string]any) {
	if l == nil {
		return
	}
	ce := l.z.Check(level, msg)
	if ce == nil {
		return
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	zf := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		zf = append(zf, zap.Any(k, fields[k]))
	}
	ce.Write(zf...)
}

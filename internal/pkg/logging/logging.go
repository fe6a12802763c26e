package logging

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

// Logger is the minimal structured logging interface used across the service.
type Logger interface {
	Info(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Debug(msg string, fields map[string]interface{})
}

// Level controls which records a JSONLogger emits.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps a config string to a Level. Unknown values default to info.
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// JSONLogger writes one JSON object per record.
type JSONLogger struct {
	mu      sync.Mutex
	out     io.Writer
	level   Level
	service string
}

// NewJSONLogger creates a logger writing to stdout.
func NewJSONLogger(service string, level Level) *JSONLogger {
	return &JSONLogger{out: os.Stdout, level: level, service: service}
}

// NewJSONLoggerTo creates a logger writing to the given writer. Used in tests.
func NewJSONLoggerTo(w io.Writer, service string, level Level) *JSONLogger {
	return &JSONLogger{out: w, level: level, service: service}
}

func (l *JSONLogger) log(level Level, levelName, msg string, fields map[string]interface{}) {
	if level < l.level {
		return
	}
	record := make(map[string]interface{}, len(fields)+4)
	for k, v := range fields {
		record[k] = v
	}
	record["time"] = time.Now().UTC().Format(time.RFC3339Nano)
	record["level"] = levelName
	record["service"] = l.service
	record["message"] = msg

	line, err := json.Marshal(record)
	if err != nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.out.Write(append(line, '\n'))
}

func (l *JSONLogger) Info(msg string, fields map[string]interface{}) {
	l.log(LevelInfo, "info", msg, fields)
}

func (l *JSONLogger) Error(msg string, fields map[string]interface{}) {
	l.log(LevelError, "error", msg, fields)
}

func (l *JSONLogger) Warn(msg string, fields map[string]interface{}) {
	l.log(LevelWarn, "warn", msg, fields)
}

func (l *JSONLogger) Debug(msg string, fields map[string]interface{}) {
	l.log(LevelDebug, "debug", msg, fields)
}

// NoOpLogger discards everything. Default for tests.
type NoOpLogger struct{}

func (NoOpLogger) Info(msg string, fields map[string]interface{})  {}
func (NoOpLogger) Error(msg string, fields map[string]interface{}) {}
func (NoOpLogger) Warn(msg string, fields map[string]interface{})  {}
func (NoOpLogger) Debug(msg string, fields map[string]interface{}) {}

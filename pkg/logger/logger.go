// Package logger provides leveled, structured logging for the scanfix CLI.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

// Level represents the severity of a log message.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name to a Level, defaulting to InfoLevel.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Config holds the logger configuration.
type Config struct {
	Level    Level
	UseColor bool
	JSON     bool
}

// Logger is a leveled logger writing to stderr by default.
type Logger struct {
	config Config
	out    *log.Logger
}

var defaultLogger *Logger

// Initialize sets up the package-level default logger.
func Initialize(config Config) {
	defaultLogger = &Logger{
		config: config,
		out:    log.New(os.Stderr, "", 0),
	}
}

// Field is a structured key/value attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an int field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a bool field.
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Err creates an error field.
func Err(err error) Field {
	return Field{Key: "error", Value: err.Error()}
}

type entry struct {
	Time    time.Time              `json:"time"`
	Level   string                 `json:"level"`
	Message string                 `json:"message"`
	Fields  map[string]interface{} `json:"fields,omitempty"`
}

// Log writes a message at the given level with optional fields.
func (l *Logger) Log(level Level, message string, fields ...Field) {
	if level < l.config.Level {
		return
	}

	e := entry{
		Time:    time.Now(),
		Level:   level.String(),
		Message: message,
	}
	if len(fields) > 0 {
		e.Fields = make(map[string]interface{}, len(fields))
		for _, f := range fields {
			e.Fields[f.Key] = f.Value
		}
	}

	if l.config.JSON {
		b, _ := json.Marshal(e)
		l.out.Print(string(b))
		return
	}
	l.out.Print(l.formatPretty(e))
}

func (l *Logger) formatPretty(e entry) string {
	var b strings.Builder

	b.WriteString(e.Time.Format("2006-01-02 15:04:05"))

	level := e.Level
	if l.config.UseColor {
		switch e.Level {
		case "DEBUG":
			level = "\033[36mDEBUG\033[0m"
		case "INFO":
			level = "\033[32mINFO\033[0m"
		case "WARN":
			level = "\033[33mWARN\033[0m"
		case "ERROR":
			level = "\033[31mERROR\033[0m"
		}
	}
	b.WriteString(fmt.Sprintf(" [%s] scanfix: %s", level, e.Message))

	if len(e.Fields) > 0 {
		b.WriteString(" {")
		first := true
		for k, v := range e.Fields {
			if !first {
				b.WriteString(", ")
			}
			b.WriteString(fmt.Sprintf("%s=%v", k, v))
			first = false
		}
		b.WriteString("}")
	}

	return b.String()
}

// SetOutput redirects the default logger's output, primarily for tests.
func SetOutput(w io.Writer) {
	if defaultLogger != nil {
		defaultLogger.out.SetOutput(w)
	}
}

// Debug logs at debug level using the default logger.
func Debug(message string, fields ...Field) {
	if defaultLogger != nil {
		defaultLogger.Log(DebugLevel, message, fields...)
	}
}

// Info logs at info level using the default logger.
func Info(message string, fields ...Field) {
	if defaultLogger != nil {
		defaultLogger.Log(InfoLevel, message, fields...)
	} else {
		fmt.Fprintf(os.Stderr, "[INFO] scanfix: %s\n", message)
	}
}

// Warn logs at warn level using the default logger.
func Warn(message string, fields ...Field) {
	if defaultLogger != nil {
		defaultLogger.Log(WarnLevel, message, fields...)
	}
}

// Error logs at error level using the default logger.
func Error(message string, fields ...Field) {
	if defaultLogger != nil {
		defaultLogger.Log(ErrorLevel, message, fields...)
	}
}

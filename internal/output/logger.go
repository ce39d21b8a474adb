package output

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// LogLevel represents the importance level of a log message
type LogLevel int

const (
	LogLevelTrace LogLevel = iota
	LogLevelDebug
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

var levelNames = map[LogLevel]string{
	LogLevelTrace: "TRACE",
	LogLevelDebug: "DEBUG",
	LogLevelInfo:  "INFO",
	LogLevelWarn:  "WARN",
	LogLevelError: "ERROR",
}

func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseLogLevel accepts the lower- or upper-case level name. Empty means info.
func ParseLogLevel(s string) (LogLevel, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	switch name {
	case "":
		return LogLevelInfo, nil
	case "WARNING":
		return LogLevelWarn, nil
	}
	for level, n := range levelNames {
		if n == name {
			return level, nil
		}
	}
	return LogLevelInfo, fmt.Errorf("unknown log level %q", s)
}

// MarshalJSON writes the level by name.
func (l LogLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON reads a level written by MarshalJSON.
func (l *LogLevel) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	level, err := ParseLogLevel(name)
	if err != nil {
		return err
	}
	*l = level
	return nil
}

// LogFormat represents the output format for logs
type LogFormat int

const (
	LogFormatText LogFormat = iota
	LogFormatJSON
)

// LogEntry is one line of the log.
type LogEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     LogLevel       `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// Logger writes structured entries to one or more writers. The shell owns the
// terminal, so in practice the writer is a file opened by CreateFileLogger.
type Logger struct {
	level     LogLevel
	format    LogFormat
	outputs   []io.Writer
	fields    map[string]any
	formatter *Formatter
	now       func() time.Time
	closer    io.Closer
}

// NewLogger creates a text logger on stderr at info level.
func NewLogger() *Logger {
	return &Logger{
		level:     LogLevelInfo,
		format:    LogFormatText,
		outputs:   []io.Writer{os.Stderr},
		fields:    make(map[string]any),
		formatter: NewFormatter(os.Stderr),
		now:       time.Now,
	}
}

func (l *Logger) SetLevel(level LogLevel) *Logger {
	l.level = level
	return l
}

func (l *Logger) SetFormat(format LogFormat) *Logger {
	l.format = format
	return l
}

// SetOutputs replaces all output writers
func (l *Logger) SetOutputs(outputs ...io.Writer) *Logger {
	l.outputs = outputs
	return l
}

// SetFormatter changes the formatter used to colour text entries
func (l *Logger) SetFormatter(formatter *Formatter) *Logger {
	l.formatter = formatter
	return l
}

// Enabled reports whether entries at level are written.
func (l *Logger) Enabled(level LogLevel) bool {
	return level >= l.level
}

// WithField returns a child logger that adds key to every entry.
// The child shares outputs but never closes them.
func (l *Logger) WithField(key string, value any) *Logger {
	child := *l
	child.fields = maps.Clone(l.fields)
	if child.fields == nil {
		child.fields = make(map[string]any)
	}
	child.fields[key] = value
	child.closer = nil
	return &child
}

// Component tags every entry with the subsystem that wrote it.
func (l *Logger) Component(name string) *Logger {
	return l.WithField("component", name)
}

// WithError adds an error field
func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l
	}
	return l.WithField("error", err.Error())
}

func (l *Logger) log(level LogLevel, message string, fields ...map[string]any) {
	if !l.Enabled(level) {
		return
	}

	entry := LogEntry{
		Timestamp: l.now(),
		Level:     level,
		Message:   message,
		Fields:    maps.Clone(l.fields),
	}
	for _, f := range fields {
		if entry.Fields == nil {
			entry.Fields = make(map[string]any)
		}
		maps.Copy(entry.Fields, f)
	}
	if len(entry.Fields) == 0 {
		entry.Fields = nil
	}

	var line string
	switch l.format {
	case LogFormatJSON:
		data, err := json.Marshal(entry)
		if err != nil {
			data, _ = json.Marshal(LogEntry{Timestamp: entry.Timestamp, Level: LogLevelError, Message: "unencodable log entry: " + err.Error()})
		}
		line = string(data) + "\n"
	default:
		line = l.formatText(entry)
	}

	for _, w := range l.outputs {
		io.WriteString(w, line)
	}
}

func (l *Logger) formatText(entry LogEntry) string {
	parts := []string{entry.Timestamp.Format("15:04:05"), l.formatLogLevel(entry.Level), entry.Message}
	if len(entry.Fields) > 0 {
		parts = append(parts, l.formatFields(entry.Fields))
	}
	return strings.Join(parts, " ") + "\n"
}

// formatLogLevel renders the level tag, with a glyph when colors are on
func (l *Logger) formatLogLevel(level LogLevel) string {
	if !l.formatter.colorOutput {
		return fmt.Sprintf("[%s]", level)
	}

	theme := l.formatter.theme
	switch level {
	case LogLevelTrace, LogLevelDebug:
		return l.formatter.colorize(fmt.Sprintf("· [%s]", level), theme.Muted, StyleDim)
	case LogLevelInfo:
		return l.formatter.colorize(fmt.Sprintf("ℹ [%s]", level), theme.Info, StyleNormal)
	case LogLevelWarn:
		return l.formatter.colorize(fmt.Sprintf("⚠ [%s]", level), theme.Warning, StyleBold)
	default:
		return l.formatter.colorize(fmt.Sprintf("✗ [%s]", level), theme.Error, StyleBold)
	}
}

// formatFields prints key=value pairs in key order
func (l *Logger) formatFields(fields map[string]any) string {
	theme := l.formatter.theme
	pairs := make([]string, 0, len(fields))

	for _, k := range slices.Sorted(maps.Keys(fields)) {
		pair := fmt.Sprintf("%s=%v", k, fields[k])
		switch k {
		case "error":
			pair = l.formatter.colorize(pair, theme.Error, StyleNormal)
		case "duration":
			pair = l.formatter.colorize(pair, theme.Success, StyleNormal)
		case "component", "menu", "user":
			pair = l.formatter.colorize(pair, theme.Primary, StyleNormal)
		}
		pairs = append(pairs, pair)
	}

	return l.formatter.colorize("["+strings.Join(pairs, " ")+"]", theme.Secondary, StyleDim)
}

// LogDuration records how long an operation took, escalating slow ones
func (l *Logger) LogDuration(operation string, duration time.Duration, fields ...map[string]any) {
	durationFields := map[string]any{
		"operation": operation,
		"duration":  duration.String(),
	}
	for _, f := range fields {
		maps.Copy(durationFields, f)
	}

	switch {
	case duration > 2*time.Second:
		l.Warn("Slow operation", durationFields)
	case duration > 250*time.Millisecond:
		l.Info("Operation completed", durationFields)
	default:
		l.Debug("Operation completed", durationFields)
	}
}

func (l *Logger) Trace(message string, fields ...map[string]any) {
	l.log(LogLevelTrace, message, fields...)
}

func (l *Logger) Debug(message string, fields ...map[string]any) {
	l.log(LogLevelDebug, message, fields...)
}

func (l *Logger) Info(message string, fields ...map[string]any) {
	l.log(LogLevelInfo, message, fields...)
}

func (l *Logger) Warn(message string, fields ...map[string]any) {
	l.log(LogLevelWarn, message, fields...)
}

func (l *Logger) Error(message string, fields ...map[string]any) {
	l.log(LogLevelError, message, fields...)
}

// CreateFileLogger creates a logger that appends to filename. Call Close
// when done to release the file.
func CreateFileLogger(filename string, level LogLevel, format LogFormat) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := NewLogger().
		SetLevel(level).
		SetFormat(format).
		SetOutputs(file).
		SetFormatter(NewFormatter(file))
	logger.closer = file

	return logger, nil
}

// NewNopLogger discards everything.
func NewNopLogger() *Logger {
	return NewLogger().SetOutputs(io.Discard)
}

// Close releases the log file, if the logger owns one.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}

var globalLogger = NewLogger()

// SetGlobalLogger replaces the logger returned by GetGlobalLogger.
func SetGlobalLogger(logger *Logger) {
	globalLogger = logger
}

// GetGlobalLogger returns the process-wide logger. Until the shell installs
// its file logger this writes text to stderr.
func GetGlobalLogger() *Logger {
	return globalLogger
}

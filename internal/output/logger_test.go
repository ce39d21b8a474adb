package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLogger_Basic(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger().SetOutputs(&buf)
	logger.formatter.SetColorOutput(false)

	logger.Info("Test message")
	output := buf.String()

	if !strings.Contains(output, "Test message") {
		t.Error("Log message not found in output")
	}
	if !strings.Contains(output, "[INFO]") {
		t.Error("Log level not found in output")
	}
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		level    LogLevel
		logFunc  func(*Logger)
		expected string
	}{
		{LogLevelTrace, func(l *Logger) { l.Trace("trace") }, "TRACE"},
		{LogLevelDebug, func(l *Logger) { l.Debug("debug") }, "DEBUG"},
		{LogLevelInfo, func(l *Logger) { l.Info("info") }, "INFO"},
		{LogLevelWarn, func(l *Logger) { l.Warn("warn") }, "WARN"},
		{LogLevelError, func(l *Logger) { l.Error("error") }, "ERROR"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		logger := NewLogger().SetLevel(LogLevelTrace).SetOutputs(&buf)
		logger.formatter.SetColorOutput(false)

		tt.logFunc(logger)
		output := buf.String()

		if !strings.Contains(output, tt.expected) {
			t.Errorf("Expected level %s not found in output: %s", tt.expected, output)
		}
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger().SetLevel(LogLevelWarn).SetOutputs(&buf)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()

	if strings.Contains(output, "debug message") {
		t.Error("Debug message should be filtered out")
	}
	if strings.Contains(output, "info message") {
		t.Error("Info message should be filtered out")
	}
	if !strings.Contains(output, "warn message") {
		t.Error("Warn message should be included")
	}
	if !strings.Contains(output, "error message") {
		t.Error("Error message should be included")
	}
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger().SetOutputs(&buf)
	logger.formatter.SetColorOutput(false)

	logger.WithField("key", "value").Info("message")
	output := buf.String()

	if !strings.Contains(output, "key=value") {
		t.Error("Field not found in output")
	}
}

func TestLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger().SetFormat(LogFormatJSON).SetOutputs(&buf)

	logger.Info("test message")
	output := buf.String()

	var entry LogEntry
	if err := json.Unmarshal([]byte(output), &entry); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}

	if entry.Message != "test message" {
		t.Errorf("Expected message 'test message', got '%s'", entry.Message)
	}
	if entry.Level != LogLevelInfo {
		t.Errorf("Expected level INFO, got %v", entry.Level)
	}
}

func TestLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger().SetFormat(LogFormatText).SetOutputs(&buf)
	logger.formatter.SetColorOutput(false)

	logger.Info("test message")
	output := buf.String()

	if !strings.Contains(output, "test message") {
		t.Error("Message not found in text output")
	}
	if !strings.Contains(output, "[INFO]") {
		t.Error("Level not found in text output")
	}
}

func TestLogger_WithError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger().SetFormat(LogFormatJSON).SetOutputs(&buf)

	testErr := fmt.Errorf("test error")
	logger.WithError(testErr).Error("something failed")
	output := buf.String()

	var entry LogEntry
	if err := json.Unmarshal([]byte(output), &entry); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}

	if entry.Fields["error"] != testErr.Error() {
		t.Error("Error field not found or incorrect")
	}
}

func TestLogger_PersistentFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger().SetOutputs(&buf).WithField("persistent", "value")
	logger.formatter.SetColorOutput(false)

	logger.Info("first message")
	logger.Info("second message")

	output := buf.String()
	lines := strings.Split(strings.TrimSpace(output), "\n")

	if len(lines) != 2 {
		t.Errorf("Expected 2 log lines, got %d", len(lines))
	}

	for i, line := range lines {
		if !strings.Contains(line, "persistent=value") {
			t.Errorf("Line %d missing persistent field: %s", i+1, line)
		}
	}
}

func TestLogger_MultipleOutputs(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	logger := NewLogger().SetOutputs(&buf1, &buf2)
	logger.formatter.SetColorOutput(false)

	logger.Info("test message")

	output1 := buf1.String()
	output2 := buf2.String()

	if output1 != output2 {
		t.Error("Outputs to multiple writers should be identical")
	}
	if !strings.Contains(output1, "test message") {
		t.Error("Message not found in first output")
	}
	if !strings.Contains(output2, "test message") {
		t.Error("Message not found in second output")
	}
}

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LogLevelTrace, "TRACE"},
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("LogLevel(%d).String() = %s, expected %s", tt.level, got, tt.expected)
		}
	}
}

func TestCreateFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "seer.log")

	logger, err := CreateFileLogger(path, LogLevelDebug, LogFormatJSON)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	logger.Debug("reading saved", map[string]any{"component": "store"})
	if err := logger.Close(); err != nil {
		t.Fatalf("Unexpected close error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	var entry LogEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}
	if entry.Level != LogLevelDebug || entry.Fields["component"] != "store" {
		t.Errorf("Unexpected entry: %+v", entry)
	}
}

func TestCreateFileLogger_BadDirectory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := CreateFileLogger(filepath.Join(blocker, "seer.log"), LogLevelInfo, LogFormatJSON); err == nil {
		t.Error("Expected error when the log directory is a file")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    LogLevel
		wantErr bool
	}{
		{"debug", LogLevelDebug, false},
		{"INFO", LogLevelInfo, false},
		{"", LogLevelInfo, false},
		{"warning", LogLevelWarn, false},
		{" error ", LogLevelError, false},
		{"trace", LogLevelTrace, false},
		{"fatal", LogLevelInfo, true},
		{"loud", LogLevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLogLevel(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLogLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, expected %v", tt.input, got, tt.want)
		}
	}
}

func TestLogger_FieldsSorted(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger().SetOutputs(&buf)
	logger.formatter.SetColorOutput(false)

	logger.Info("menu closed", map[string]any{"user": "ada", "menu": "main", "component": "menu"})

	if !strings.Contains(buf.String(), "[component=menu menu=main user=ada]") {
		t.Errorf("Expected sorted fields, got: %s", buf.String())
	}
}

func TestLogger_LogDuration(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger().SetLevel(LogLevelInfo).SetOutputs(&buf)
	logger.formatter.SetColorOutput(false)

	logger.LogDuration("load users", time.Millisecond)
	if buf.Len() != 0 {
		t.Errorf("Expected fast operations at debug level, got: %s", buf.String())
	}

	logger.LogDuration("load users", 3*time.Second)
	if !strings.Contains(buf.String(), "[WARN] Slow operation") {
		t.Errorf("Expected slow operation warning, got: %s", buf.String())
	}
}

func TestNewNopLogger(t *testing.T) {
	logger := NewNopLogger()
	logger.Error("nobody hears this")
	if err := logger.Close(); err != nil {
		t.Errorf("Expected nil close error, got %v", err)
	}
}

func TestLogger_Component(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger().SetFormat(LogFormatJSON).SetOutputs(&buf)

	store := logger.Component("store")
	store.WithField("collection", "users").Info("loaded")
	logger.Info("plain")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(lines))
	}

	var tagged, plain LogEntry
	if err := json.Unmarshal([]byte(lines[0]), &tagged); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &plain); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}

	if tagged.Fields["component"] != "store" || tagged.Fields["collection"] != "users" {
		t.Errorf("Expected component and collection fields, got %v", tagged.Fields)
	}
	if plain.Fields != nil {
		t.Errorf("Parent logger must not inherit child fields, got %v", plain.Fields)
	}
}

func TestLogger_ChildDoesNotClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seer.log")
	logger, err := CreateFileLogger(path, LogLevelInfo, LogFormatText)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	child := logger.Component("menu")
	if err := child.Close(); err != nil {
		t.Fatalf("Unexpected close error: %v", err)
	}
	logger.Info("still open")
	if err := logger.Close(); err != nil {
		t.Fatalf("Unexpected close error: %v", err)
	}

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "still open") {
		t.Error("Closing a child must not close the parent's file")
	}
}

func TestLogger_TextTimestamp(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger().SetOutputs(&buf)
	logger.formatter.SetColorOutput(false)
	logger.now = func() time.Time { return time.Date(2026, 10, 19, 21, 4, 5, 0, time.UTC) }

	logger.Info("tick")
	if !strings.HasPrefix(buf.String(), "21:04:05 [INFO] tick") {
		t.Errorf("Unexpected text entry: %q", buf.String())
	}
}

func TestLogger_Enabled(t *testing.T) {
	logger := NewNopLogger().SetLevel(LogLevelWarn)
	if logger.Enabled(LogLevelInfo) {
		t.Error("Info should be disabled at warn level")
	}
	if !logger.Enabled(LogLevelError) {
		t.Error("Error should be enabled at warn level")
	}
}

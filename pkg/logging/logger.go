// Package logging writes structured JSONL event logs.
// Logging is opt-in: the app runs with a nil *Logger unless MONIKA_LOG_DIR
// is set, and every method on a nil Logger is a no-op so the render loop
// never pays for disabled logging.
package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Level represents log severity
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// Category represents the subsystem generating the log
type Category string

const (
	CategorySession  Category = "session"
	CategoryInput    Category = "input"
	CategoryUpdate   Category = "update"
	CategoryKeystore Category = "keystore"
)

// Event represents a structured log event
type Event struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     Level          `json:"level"`
	Category  Category       `json:"category"`
	EventType string         `json:"type"`
	Details   map[string]any `json:"details,omitempty"`
	Message   string         `json:"message,omitempty"`
}

// Logger writes structured events to a JSONL file
type Logger struct {
	file *os.File
	mu   sync.Mutex
}

// NewLogger creates a logger writing to <baseDir>/monika.jsonl
func NewLogger(baseDir string) (*Logger, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(
		filepath.Join(baseDir, "monika.jsonl"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND,
		0o644,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &Logger{file: file}, nil
}

// FromEnv creates a logger if MONIKA_LOG_DIR is set, otherwise returns nil.
func FromEnv() (*Logger, error) {
	dir := os.Getenv("MONIKA_LOG_DIR")
	if dir == "" {
		return nil, nil
	}
	return NewLogger(dir)
}

// Log writes a structured event
func (l *Logger) Log(level Level, category Category, eventType, message string, details map[string]any) {
	if l == nil {
		return
	}

	event := Event{
		Timestamp: time.Now().UTC(),
		Level:     level,
		Category:  category,
		EventType: eventType,
		Details:   details,
		Message:   message,
	}

	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.file.Write(append(data, '\n'))
}

// Info logs an info-level event
func (l *Logger) Info(category Category, eventType, message string, details map[string]any) {
	l.Log(LevelInfo, category, eventType, message, details)
}

// Error logs an error-level event
func (l *Logger) Error(category Category, eventType, message string, details map[string]any) {
	l.Log(LevelError, category, eventType, message, details)
}

// Close closes the underlying file
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

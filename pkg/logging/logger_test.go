package logging

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLoggerWritesJSONL(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogger(dir)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	logger.Info(CategorySession, "session.begin", "terminal session started", nil)
	logger.Error(CategoryInput, "input.closed", "event source closed",
		map[string]any{"pending": 0})
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "monika.jsonl"))
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var ev Event
		if err := json.Unmarshal(scanner.Bytes(), &ev); err != nil {
			t.Fatalf("bad JSONL line %q: %v", scanner.Text(), err)
		}
		events = append(events, ev)
	}

	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Level != LevelInfo || events[0].EventType != "session.begin" {
		t.Errorf("first event = %+v", events[0])
	}
	if events[1].Level != LevelError || events[1].Category != CategoryInput {
		t.Errorf("second event = %+v", events[1])
	}
	if events[0].Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
}

func TestNilLoggerIsNoOp(t *testing.T) {
	var logger *Logger
	logger.Info(CategorySession, "x", "y", nil)
	logger.Error(CategorySession, "x", "y", nil)
	if err := logger.Close(); err != nil {
		t.Errorf("nil Close = %v", err)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("MONIKA_LOG_DIR", "")
	logger, err := FromEnv()
	if err != nil || logger != nil {
		t.Fatalf("FromEnv with unset dir = (%v, %v), want (nil, nil)", logger, err)
	}

	dir := t.TempDir()
	t.Setenv("MONIKA_LOG_DIR", dir)
	logger, err = FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if logger == nil {
		t.Fatal("FromEnv returned nil logger with dir set")
	}
	logger.Close()
}

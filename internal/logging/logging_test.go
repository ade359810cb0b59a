package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "trace.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})
	return path
}

func TestTraceWritesJSONWhenEnabled(t *testing.T) {
	path := useTempLog(t)
	SetTraceEnabled(true)

	Trace("focus.transition", map[string]interface{}{"to": "name"})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read trace log: %v", err)
	}
	var entry struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry); err != nil {
		t.Fatalf("decode trace entry: %v", err)
	}
	if entry.Event != "focus.transition" {
		t.Fatalf("expected event focus.transition, got %q", entry.Event)
	}
	if entry.Payload["to"] != "name" {
		t.Fatalf("expected payload to=name, got %v", entry.Payload["to"])
	}
}

func TestTraceSkippedWhenDisabled(t *testing.T) {
	path := useTempLog(t)
	SetTraceEnabled(false)

	Trace("focus.transition", nil)

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file when tracing is disabled, stat err=%v", err)
	}
	if TraceEnabled() {
		t.Fatalf("expected tracing reported as disabled")
	}
}

func TestErrorAppendsToLog(t *testing.T) {
	path := useTempLog(t)

	Error(nil)
	Error(errors.New("boom"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "boom") {
		t.Fatalf("expected error text in log, got %q", string(data))
	}
	if strings.Count(string(data), "\n") != 1 {
		t.Fatalf("expected exactly one log line, got %q", string(data))
	}
}

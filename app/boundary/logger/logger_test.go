package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"
)

func TestLogger_DiagnosticsWithoutDebugMode(t *testing.T) {
	var console bytes.Buffer
	l := New(false, t.TempDir(), &console)

	l.Log("file", "Opening file")
	l.Log(TypeError, "Could not open file: boom")

	if got := l.Diagnostics(); len(got) != 1 || got[0] != "Could not open file: boom" {
		t.Fatalf("unexpected diagnostics: %v", got)
	}
	if console.Len() != 0 {
		t.Errorf("console should stay untouched before Flush, got %q", console.String())
	}

	l.Flush()

	if console.String() != "Could not open file: boom\n" {
		t.Errorf("console = %q", console.String())
	}
	if len(l.Diagnostics()) != 0 {
		t.Error("diagnostics should be cleared after Flush")
	}
	if _, err := os.Stat(l.FilePath()); !os.IsNotExist(err) {
		t.Errorf("log file should not be written without debug mode: %v", err)
	}
}

func TestLogger_DebugModeWritesJSON(t *testing.T) {
	l := New(true, t.TempDir(), nil)

	l.Log("system", "Editor starting")
	l.Log(TypeError, "Could not save file: disk full")
	l.Flush()
	l.Log("system", "Editor shutting down")
	l.Flush()

	data, err := os.ReadFile(l.FilePath())
	if err != nil {
		t.Fatalf("log file was not written: %v", err)
	}

	var entries []LogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("invalid log file: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[1].Type != TypeError || entries[1].Message != "Could not save file: disk full" {
		t.Errorf("unexpected entry: %+v", entries[1])
	}
	if entries[2].Message != "Editor shutting down" {
		t.Errorf("entries were not appended: %+v", entries[2])
	}
}

func TestLogger_BufferLimitFlushesOnlyFile(t *testing.T) {
	var console bytes.Buffer
	l := New(true, t.TempDir(), &console)
	l.maxBuffer = 2

	l.Log(TypeError, "first")
	l.Log("system", "second")

	if _, err := os.Stat(l.FilePath()); err != nil {
		t.Fatalf("log file should be written when the buffer is full: %v", err)
	}
	if console.Len() != 0 {
		t.Errorf("diagnostics must wait for Flush, got %q", console.String())
	}
}

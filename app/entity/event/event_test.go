package event

import (
	"errors"
	"testing"
)

func TestNewFileEvent(t *testing.T) {
	err := errors.New("permission denied")
	e := NewFileEvent(FileSave, "/tmp/notes.txt", err)

	if e.Type != TypeFile {
		t.Errorf("Type = %v, want %v", e.Type, TypeFile)
	}
	payload, ok := e.Payload.(FileEvent)
	if !ok {
		t.Fatalf("payload type = %T", e.Payload)
	}
	if payload.Op != FileSave || payload.Path != "/tmp/notes.txt" || payload.Err != err {
		t.Errorf("payload = %+v", payload)
	}
}

func TestNewQuitEvent(t *testing.T) {
	e := NewQuitEvent()
	if e.Type != TypeQuit {
		t.Errorf("Type = %v, want %v", e.Type, TypeQuit)
	}
	if _, ok := e.Payload.(QuitEvent); !ok {
		t.Errorf("payload type = %T", e.Payload)
	}
}

func TestNewCommandEvent(t *testing.T) {
	e := NewCommandEvent("new", false)
	payload := e.Payload.(CommandEvent)
	if e.Type != TypeCommand || payload.Command != "new" || payload.Handled {
		t.Errorf("unexpected event: %+v", e)
	}
}

func TestSingleTypeHandler(t *testing.T) {
	called := 0
	h := NewSingleTypeHandler(TypeQuit, func(Event) (bool, error) {
		called++
		return true, nil
	})

	if types := h.GetHandledEventTypes(); len(types) != 1 || types[0] != TypeQuit {
		t.Errorf("handled types = %v", types)
	}
	if ok, _ := h.HandleEvent(NewFileEvent(FileOpen, "a.txt", nil)); ok || called != 0 {
		t.Error("file event should be ignored")
	}
	if ok, _ := h.HandleEvent(NewQuitEvent()); !ok || called != 1 {
		t.Error("quit event should be handled")
	}
}

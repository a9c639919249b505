package window

import "testing"

func TestWindow_Title(t *testing.T) {
	w := New("GW NOTEPAD")

	if got := w.Title(); got != "GW NOTEPAD" {
		t.Errorf("initial title = %q", got)
	}
	if _, ok := w.Path(); ok {
		t.Error("a new window should have no path")
	}

	w.SetPath("/tmp/a.txt")
	if got := w.Title(); got != "GW NOTEPAD - /tmp/a.txt" {
		t.Errorf("title = %q", got)
	}
	if p, ok := w.Path(); !ok || p != "/tmp/a.txt" {
		t.Errorf("Path() = %q, %v", p, ok)
	}
}

func TestWindow_Close(t *testing.T) {
	w := New("GW NOTEPAD")
	if w.IsClosed() {
		t.Fatal("window should start open")
	}

	w.Close()
	w.Close() // 2回目もパニックしない

	if !w.IsClosed() {
		t.Error("window should be closed")
	}
	select {
	case <-w.Done():
	default:
		t.Error("Done channel should be closed")
	}
}

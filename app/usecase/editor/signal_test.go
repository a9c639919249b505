package editor

import (
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/wasya-io/gw-notepad/app/entity/event"
	"github.com/wasya-io/gw-notepad/app/entity/window"
)

func TestWatchSignals_ClosesWindowOnly(t *testing.T) {
	bus := event.NewBus()
	e := &Editor{
		window:      window.New("GW NOTEPAD"),
		cleanupChan: make(chan struct{}),
		eventBus:    bus,
	}

	sigChan := make(chan os.Signal, 1)
	done := make(chan struct{})
	go func() {
		e.watchSignals(sigChan)
		close(done)
	}()

	sigChan <- syscall.SIGTERM

	select {
	case <-e.window.Done():
	case <-time.After(time.Second):
		t.Fatal("window was not closed on SIGTERM")
	}
	<-done

	// バスの停止はメインループの Cleanup に任せる
	resp := bus.Publish(event.NewQuitEvent()).Payload.(event.ResponseEvent)
	if resp.Error != nil {
		t.Errorf("bus should still be running, got %v", resp.Error)
	}
}

func TestWatchSignals_ReturnsAfterCleanup(t *testing.T) {
	e := &Editor{
		window:      window.New("GW NOTEPAD"),
		cleanupChan: make(chan struct{}),
	}

	done := make(chan struct{})
	go func() {
		e.watchSignals(make(chan os.Signal))
		close(done)
	}()

	close(e.cleanupChan)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop after cleanup")
	}
	if e.window.IsClosed() {
		t.Error("window should stay open without a signal")
	}
}

package editor

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/wasya-io/gw-notepad/app/config"
	"github.com/wasya-io/gw-notepad/app/entity/contents"
	"github.com/wasya-io/gw-notepad/app/entity/core"
	"github.com/wasya-io/gw-notepad/app/entity/core/term"
	"github.com/wasya-io/gw-notepad/app/entity/event"
	"github.com/wasya-io/gw-notepad/app/entity/screen"
	"github.com/wasya-io/gw-notepad/app/entity/window"
	"github.com/wasya-io/gw-notepad/app/usecase/controller"
)

// Editor はエディタの状態を管理する構造体
type Editor struct {
	screen      *screen.Screen
	controller  *controller.Controller
	buffer      *contents.Contents
	window      *window.Window
	config      *config.Config
	termState   *term.TerminalState
	cleanupOnce sync.Once
	cleanupChan chan struct{}
	logger      core.Logger
	eventBus    *event.Bus
}

// New は新しいEditorインスタンスを作成する
// testMode では端末の設定とシグナル処理を行わない
func New(
	testMode bool,
	conf *config.Config,
	logger core.Logger,
	buffer *contents.Contents,
	window *window.Window,
	screen *screen.Screen,
	controller *controller.Controller,
	eventBus *event.Bus,
) (*Editor, error) {
	e := &Editor{
		screen:      screen,
		controller:  controller,
		buffer:      buffer,
		window:      window,
		config:      conf,
		cleanupChan: make(chan struct{}),
		logger:      logger,
		eventBus:    eventBus,
	}

	if !testMode {
		termState, err := term.EnableRawMode()
		if err != nil {
			return nil, err
		}
		e.termState = termState
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			defer signal.Stop(sigChan)
			e.watchSignals(sigChan)
		}()
	}

	return e, nil
}

// watchSignals はシグナルを受けたらウィンドウを閉じる
// 別ゴルーチンから触ってよいのはウィンドウの Close だけで、後処理は Run を抜けたメインループ側で行う
func (e *Editor) watchSignals(sigChan <-chan os.Signal) {
	select {
	case <-sigChan:
		e.window.Close()
	case <-e.cleanupChan:
	}
}

// Cleanup は終了時の後処理を行う
func (e *Editor) Cleanup() {
	e.cleanupOnce.Do(func() {
		if e.eventBus != nil {
			e.eventBus.Shutdown()
		}

		// 端末の状態を復元してから画面をクリアする
		if e.termState != nil {
			if err := e.termState.DisableRawMode(); err != nil {
				e.logger.Log("error", fmt.Sprintf("Failed to restore terminal: %v", err))
			}
			e.termState = nil
			if err := e.screen.Reset(); err != nil {
				e.logger.Log("error", fmt.Sprintf("Failed to clear screen: %v", err))
			}
		}

		close(e.cleanupChan)

		// 診断メッセージは端末を戻した後に出力する
		e.logger.Flush()
	})
}

// Run はウィンドウが閉じられるまでメインループを実行する
func (e *Editor) Run() error {
	defer e.Cleanup()

	e.logger.Log("system", "Editor starting")
	defer e.logger.Log("system", "Editor shutting down")

	// 初期表示
	if err := e.controller.RefreshScreen(); err != nil {
		return err
	}

	for {
		select {
		case <-e.window.Done():
			return nil
		default:
			if err := e.controller.Process(); err != nil {
				e.logger.Log("error", fmt.Sprintf("Main loop error: %v", err))
				return err
			}
		}
	}
}

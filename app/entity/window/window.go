package window

import "sync"

// Window はアプリケーションウィンドウのタイトルと開閉状態を管理する
// 現在のファイルパスはタイトルに反映される
type Window struct {
	appName   string
	path      string
	hasPath   bool
	done      chan struct{}
	closeOnce sync.Once
}

func New(appName string) *Window {
	return &Window{
		appName: appName,
		done:    make(chan struct{}),
	}
}

// Title は "<AppName>" または "<AppName> - <path>" を返す
func (w *Window) Title() string {
	if !w.hasPath {
		return w.appName
	}
	return w.appName + " - " + w.path
}

// Path は現在のファイルパスを返す。まだ開いても保存してもいなければ false
func (w *Window) Path() (string, bool) {
	return w.path, w.hasPath
}

// SetPath は現在のファイルパスを更新する
func (w *Window) SetPath(path string) {
	w.path = path
	w.hasPath = true
}

// Close はウィンドウを閉じる。何度呼んでもよい
func (w *Window) Close() {
	w.closeOnce.Do(func() {
		close(w.done)
	})
}

// Done はウィンドウが閉じられると閉じるチャネルを返す
func (w *Window) Done() <-chan struct{} {
	return w.done
}

// IsClosed はウィンドウが閉じられたかどうかを返す
func (w *Window) IsClosed() bool {
	select {
	case <-w.done:
		return true
	default:
		return false
	}
}

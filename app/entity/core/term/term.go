package term

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

const (
	mouseOn  = "\x1b[?1000h\x1b[?1002h\x1b[?1015h\x1b[?1006h"
	mouseOff = "\x1b[?1000l\x1b[?1002l\x1b[?1015l\x1b[?1006l"
)

// TerminalState は端末の元の状態を保持する構造体
type TerminalState struct {
	origTermios *unix.Termios
}

var globalTermState *TerminalState

// initTerminal は端末をrawモードに設定し、マウス入力を有効にする
func initTerminal() error {
	// パニックハンドラを設定
	defer func() {
		if r := recover(); r != nil {
			// パニック時に必ず端末状態を復元
			if globalTermState != nil {
				globalTermState.DisableRawMode()
			}
			panic(r) // 元のパニックを再スロー
		}
	}()

	// 現在の端末設定を取得
	term, err := unix.IoctlGetTermios(int(os.Stdin.Fd()), unix.TCGETS)
	if err != nil {
		return fmt.Errorf("get termios: %w", err)
	}

	term.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP | unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	term.Oflag &^= unix.OPOST
	term.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	term.Cflag &^= unix.CSIZE | unix.PARENB
	term.Cflag |= unix.CS8

	// 入力がなくても0.1秒で読み取りから戻り、メインループが終了要求を確認できるようにする
	term.Cc[unix.VTIME] = 1
	term.Cc[unix.VMIN] = 0

	// マウスサポートを有効化（メニューバーのクリックに使う）
	if _, err := os.Stdout.WriteString(mouseOn); err != nil {
		return fmt.Errorf("enable mouse: %w", err)
	}

	if err := unix.IoctlSetTermios(int(os.Stdin.Fd()), unix.TCSETS, term); err != nil {
		return fmt.Errorf("set termios: %w", err)
	}

	return nil
}

// GetWinSize は端末の行数と列数を返す
func GetWinSize() (screenRows, screenCols int, err error) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("get window size: %w", err)
	}
	return int(ws.Row), int(ws.Col), nil
}

// EnableRawMode は端末をRawモードに設定する
func EnableRawMode() (*TerminalState, error) {
	term := &TerminalState{}

	// 現在の設定を保存
	termios, err := unix.IoctlGetTermios(int(os.Stdin.Fd()), unix.TCGETS)
	if err != nil {
		return nil, fmt.Errorf("get termios: %w", err)
	}
	term.origTermios = termios

	globalTermState = term

	if err := initTerminal(); err != nil {
		return nil, err
	}

	return term, nil
}

// DisableRawMode は端末の設定を元の状態に戻す
func (term *TerminalState) DisableRawMode() error {
	os.Stdout.WriteString(mouseOff)

	if term.origTermios != nil {
		if err := unix.IoctlSetTermios(int(os.Stdin.Fd()), unix.TCSETS, term.origTermios); err != nil {
			return fmt.Errorf("restore termios: %w", err)
		}
		globalTermState = nil
		term.origTermios = nil
	}
	return nil
}

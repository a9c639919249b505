package parser

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/wasya-io/gw-notepad/app/entity/core"
	"github.com/wasya-io/gw-notepad/app/entity/key"
)

// ErrUnknownInput は解釈できない入力を表す。呼び出し側は読み飛ばしてよい
var ErrUnknownInput = errors.New("unknown input")

// ErrIncompleteInput は読み取りの末尾で文字やエスケープシーケンスが途切れていることを表す
// 残りのバイトは次の Parse で続きとして扱われる
var ErrIncompleteInput = fmt.Errorf("incomplete input: %w", ErrUnknownInput)

type StandardInputParser struct {
	logger  core.Logger
	pending []byte
}

type InputParser interface {
	Parse(buf []byte, n int) ([]key.KeyEvent, error)
}

func NewStandardInputParser(logger core.Logger) *StandardInputParser {
	return &StandardInputParser{
		logger: logger,
	}
}

// Parse はバイトデータを先頭から最後まで解析してキーイベントを返す
// 解釈できないバイトは読み飛ばし、イベントが1つも得られなかった場合だけエラーを返す
func (p *StandardInputParser) Parse(buf []byte, n int) ([]key.KeyEvent, error) {
	if n <= 0 || len(buf) < n {
		return nil, ErrUnknownInput
	}

	data := buf[:n]
	if len(p.pending) > 0 {
		data = append(p.pending, data...)
		p.pending = nil
	}

	var events []key.KeyEvent
	var firstErr error
	skip := func(err error) {
		if firstErr == nil {
			firstErr = err
		}
	}

	for i := 0; i < len(data); {
		b := data[i]

		// エスケープシーケンスの処理
		if b == '\x1b' {
			size, complete := escapeLength(data[i:])
			if !complete {
				p.pending = append([]byte{}, data[i:]...)
				break
			}
			event, err := p.parseEscapeSequence(data[i : i+size])
			if err != nil {
				skip(err)
			} else {
				events = append(events, event)
			}
			i += size
			continue
		}

		if b < utf8.RuneSelf {
			if event, ok := p.parseControlKey(b); ok {
				events = append(events, event)
			} else if event, ok := p.parseSpecialKey(b); ok {
				events = append(events, event)
			} else if b >= 32 && b < 127 {
				events = append(events, key.KeyEvent{Type: key.KeyEventChar, Rune: rune(b)})
			} else {
				skip(fmt.Errorf("byte 0x%02x: %w", b, ErrUnknownInput))
			}
			i++
			continue
		}

		// UTF-8文字の処理（貼り付けなどで複数文字が届く場合もある）
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			if !utf8.FullRune(data[i:]) {
				p.pending = append([]byte{}, data[i:]...)
				break
			}
			skip(fmt.Errorf("byte 0x%02x: %w", b, ErrUnknownInput))
			i++
			continue
		}
		events = append(events, key.KeyEvent{Type: key.KeyEventChar, Rune: r})
		i += size
	}

	if len(events) > 0 {
		return events, nil
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return nil, ErrIncompleteInput
}

// escapeLength は先頭のエスケープシーケンスのバイト数を返す
// CSI の終端バイトがまだ届いていなければ complete は false
func escapeLength(data []byte) (size int, complete bool) {
	if len(data) == 1 || data[1] != '[' {
		// 単独の ESC キー
		return 1, true
	}
	for j := 2; j < len(data); j++ {
		// パラメータと中間バイトの後に終端バイトが来る
		if data[j] < 0x20 || data[j] > 0x3f {
			return j + 1, true
		}
	}
	return len(data), false
}

// parseControlKey はコントロールキーの解析を行う
func (p *StandardInputParser) parseControlKey(b byte) (key.KeyEvent, bool) {
	switch b {
	case 3: // Ctrl+C
		return key.KeyEvent{Type: key.KeyEventControl, Key: key.KeyCtrlC}, true
	case 14: // Ctrl+N
		return key.KeyEvent{Type: key.KeyEventControl, Key: key.KeyCtrlN}, true
	case 15: // Ctrl+O
		return key.KeyEvent{Type: key.KeyEventControl, Key: key.KeyCtrlO}, true
	case 17: // Ctrl+Q
		return key.KeyEvent{Type: key.KeyEventControl, Key: key.KeyCtrlQ}, true
	case 19: // Ctrl+S
		return key.KeyEvent{Type: key.KeyEventControl, Key: key.KeyCtrlS}, true
	}
	return key.KeyEvent{}, false
}

// parseSpecialKey は特殊キーの解析を行う
func (p *StandardInputParser) parseSpecialKey(b byte) (key.KeyEvent, bool) {
	switch b {
	case 127, 8: // Backspace, Ctrl+H
		return key.KeyEvent{Type: key.KeyEventSpecial, Key: key.KeyBackspace}, true
	case '\r': // Enter
		return key.KeyEvent{Type: key.KeyEventSpecial, Key: key.KeyEnter}, true
	case '\t': // Tab
		return key.KeyEvent{Type: key.KeyEventSpecial, Key: key.KeyTab}, true
	}
	return key.KeyEvent{}, false
}

// parseEscapeSequence はエスケープシーケンスの解析を行う
func (p *StandardInputParser) parseEscapeSequence(buf []byte) (key.KeyEvent, error) {
	n := len(buf)
	if n == 1 {
		return key.KeyEvent{Type: key.KeyEventSpecial, Key: key.KeyEsc}, nil
	}

	if n >= 3 && buf[1] == '[' {
		switch buf[2] {
		case 'A':
			return key.KeyEvent{Type: key.KeyEventSpecial, Key: key.KeyArrowUp}, nil
		case 'B':
			return key.KeyEvent{Type: key.KeyEventSpecial, Key: key.KeyArrowDown}, nil
		case 'C':
			return key.KeyEvent{Type: key.KeyEventSpecial, Key: key.KeyArrowRight}, nil
		case 'D':
			return key.KeyEvent{Type: key.KeyEventSpecial, Key: key.KeyArrowLeft}, nil
		case 'Z':
			return key.KeyEvent{Type: key.KeyEventSpecial, Key: key.KeyShiftTab}, nil
		case '<':
			return p.parseMouseEvent(buf)
		case '2':
			// F10: ESC [ 2 1 ~
			if n >= 5 && buf[3] == '1' && buf[4] == '~' {
				return key.KeyEvent{Type: key.KeyEventSpecial, Key: key.KeyF10}, nil
			}
		}
	}

	return key.KeyEvent{}, fmt.Errorf("escape sequence %q: %w", buf[:n], ErrUnknownInput)
}

// parseMouseEvent はSGR形式のマウスイベントの解析を行う
// ボタンを離したイベント（末尾が 'm'）は扱わない
func (p *StandardInputParser) parseMouseEvent(buf []byte) (key.KeyEvent, error) {
	n := len(buf)
	if n >= 6 && buf[2] == '<' && buf[n-1] == 'M' {
		var cb, cx, cy int
		if _, err := fmt.Sscanf(string(buf[3:n-1]), "%d;%d;%d", &cb, &cx, &cy); err == nil {
			event := key.KeyEvent{
				Type:     key.KeyEventMouse,
				MouseRow: cy - 1,
				MouseCol: cx - 1,
			}
			switch cb {
			case 64: // スクロールアップ
				event.Key, event.MouseAction = key.KeyMouseWheel, key.MouseScrollUp
				return event, nil
			case 65: // スクロールダウン
				event.Key, event.MouseAction = key.KeyMouseWheel, key.MouseScrollDown
				return event, nil
			case 0: // 左クリック
				event.Key, event.MouseAction = key.KeyMouseClick, key.MouseLeftClick
				return event, nil
			case 1: // 中クリック
				event.Key, event.MouseAction = key.KeyMouseClick, key.MouseMiddleClick
				return event, nil
			case 2: // 右クリック
				event.Key, event.MouseAction = key.KeyMouseClick, key.MouseRightClick
				return event, nil
			}
		}
	}
	return key.KeyEvent{}, fmt.Errorf("mouse event %q: %w", buf[:n], ErrUnknownInput)
}

package key

type KeyEvent struct {
	Type        KeyEventType
	Rune        rune        // 通常の文字入力の場合
	Key         Key         // 特殊キーの場合
	MouseRow    int         // マウスイベントの行位置
	MouseCol    int         // マウスイベントの列位置
	MouseAction MouseAction // マウスイベントの種類
}

// KeyEventType はキーイベントの種類を表す
type KeyEventType int

const (
	KeyEventChar KeyEventType = iota + 1 // 1から開始
	KeyEventSpecial
	KeyEventControl
	KeyEventMouse
)

// Key は特殊キーの種類を表す
type Key int

const (
	KeyNone Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyBackspace
	KeyEnter
	KeyCtrlC
	KeyCtrlN
	KeyCtrlO
	KeyCtrlQ
	KeyCtrlS
	KeyEsc
	KeyTab
	KeyShiftTab
	KeyF10
	KeyMouseWheel
	KeyMouseClick
)

// Label はメニューに表示するショートカット名を返す
func (k Key) Label() string {
	switch k {
	case KeyCtrlC:
		return "Ctrl+C"
	case KeyCtrlN:
		return "Ctrl+N"
	case KeyCtrlO:
		return "Ctrl+O"
	case KeyCtrlQ:
		return "Ctrl+Q"
	case KeyCtrlS:
		return "Ctrl+S"
	case KeyF10:
		return "F10"
	}
	return ""
}

// MouseAction はマウスアクションの種類を表す
type MouseAction int

const (
	MouseScrollUp MouseAction = iota + 1
	MouseScrollDown
	MouseLeftClick
	MouseRightClick
	MouseMiddleClick
)

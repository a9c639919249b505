package cursor

import "github.com/wasya-io/gw-notepad/app/entity/contents"

// Movement はカーソル移動の種類を表す型
type Movement byte

const (
	CursorUp       Movement = 'A'
	CursorDown     Movement = 'B'
	CursorRight    Movement = 'C'
	CursorLeft     Movement = 'D'
	MouseWheelUp   Movement = 'U' // マウスホイールでの上方向スクロール
	MouseWheelDown Movement = 'V' // マウスホイールでの下方向スクロール
)

// wheelStep はマウスホイール1回で移動する行数
const wheelStep = 3

type Cursor struct {
	x, y int
}

func NewCursor() *Cursor {
	return &Cursor{}
}

func (c *Cursor) ToPosition() contents.Position {
	return contents.Position{X: c.x, Y: c.y}
}

func (c *Cursor) SetCursor(x, y int) {
	c.x, c.y = x, y
}

func (c *Cursor) Row() int {
	return c.y
}

func (c *Cursor) Col() int {
	return c.x
}

// Move はバッファの内容に合わせてカーソルを移動する
// 上下移動では画面上の列位置をできるだけ保つ
func (c *Cursor) Move(movement Movement, buffer *contents.Contents) {
	if buffer == nil || buffer.GetLineCount() == 0 {
		return
	}
	currentRow := buffer.GetRow(c.y)
	if currentRow == nil {
		return
	}

	switch movement {
	case CursorUp:
		c.moveVertical(-1, currentRow, buffer)
	case CursorDown:
		c.moveVertical(1, currentRow, buffer)
	case MouseWheelUp:
		c.moveVertical(-wheelStep, currentRow, buffer)
	case MouseWheelDown:
		c.moveVertical(wheelStep, currentRow, buffer)
	case CursorLeft:
		if c.x > 0 {
			c.x--
		} else if c.y > 0 {
			c.y--
			c.x = buffer.GetRow(c.y).GetRuneCount()
		}
	case CursorRight:
		if c.x < currentRow.GetRuneCount() {
			c.x++
		} else if c.y < buffer.GetLineCount()-1 {
			c.y++
			c.x = 0
		}
	}
}

func (c *Cursor) moveVertical(delta int, currentRow *contents.Row, buffer *contents.Contents) {
	targetY := c.y + delta
	if targetY < 0 {
		targetY = 0
	}
	if targetY > buffer.GetLineCount()-1 {
		targetY = buffer.GetLineCount() - 1
	}
	if targetY == c.y {
		return
	}

	visualX := currentRow.OffsetToScreenPosition(c.x)
	c.y = targetY
	if targetRow := buffer.GetRow(c.y); targetRow != nil {
		c.x = targetRow.ScreenPositionToOffset(visualX)
	}
}

// Clamp はカーソルをバッファの範囲内に収める
func (c *Cursor) Clamp(buffer *contents.Contents) {
	if c.y >= buffer.GetLineCount() {
		c.y = buffer.GetLineCount() - 1
	}
	if c.y < 0 {
		c.y = 0
	}
	if row := buffer.GetRow(c.y); row != nil && c.x > row.GetRuneCount() {
		c.x = row.GetRuneCount()
	}
	if c.x < 0 {
		c.x = 0
	}
}

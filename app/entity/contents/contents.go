package contents

import (
	"fmt"
	"strings"

	"github.com/wasya-io/gw-notepad/app/entity/core"
)

// lineSeparator はドキュメントテキストを行に分割する区切り
// 分割と結合で元のテキストに戻るよう "\r" は行の内容として残す
const lineSeparator = "\n"

// Contents はテキストバッファを管理する構造体
type Contents struct {
	logger   core.Logger
	lines    []string
	isDirty  bool
	rowCache map[int]*Row
}

// NewContents は空のバッファを作成する
func NewContents(logger core.Logger) *Contents {
	return &Contents{
		logger:   logger,
		lines:    []string{""},
		isDirty:  false,
		rowCache: make(map[int]*Row),
	}
}

// LoadContent はバッファに内容をロードする
func (b *Contents) LoadContent(lines []string) {
	if len(lines) == 0 {
		lines = []string{""}
	}
	b.lines = append([]string{}, lines...)
	b.isDirty = false
	b.rowCache = make(map[int]*Row)
	if b.logger != nil {
		b.logger.Log("contents", fmt.Sprintf("loaded %d lines", len(b.lines)))
	}
}

// SetText はドキュメントテキスト全体を置き換える
func (b *Contents) SetText(text string) {
	b.LoadContent(strings.Split(text, lineSeparator))
}

// Text はドキュメントテキスト全体を返す
func (b *Contents) Text() string {
	return strings.Join(b.lines, lineSeparator)
}

// GetContentLine は指定行の内容を取得する
func (b *Contents) GetContentLine(lineNum int) string {
	if lineNum >= 0 && lineNum < len(b.lines) {
		return b.lines[lineNum]
	}
	return ""
}

// GetAllLines はバッファの全内容を[]string形式で取得する
func (b *Contents) GetAllLines() []string {
	return append([]string{}, b.lines...)
}

// InsertChar は指定位置に文字を挿入する
func (b *Contents) InsertChar(pos Position, ch rune) {
	row := b.GetRow(pos.Y)
	if row == nil {
		return
	}

	row.InsertChar(pos.X, ch)
	b.lines[pos.Y] = row.GetContent()
	b.isDirty = true
}

// InsertText は指定位置に複数行を含むテキストを挿入し、挿入後の位置を返す
func (b *Contents) InsertText(pos Position, text string) Position {
	if text == "" || pos.Y < 0 || pos.Y >= len(b.lines) {
		return pos
	}

	current := []rune(b.lines[pos.Y])
	if pos.X > len(current) {
		pos.X = len(current)
	}
	head, tail := string(current[:pos.X]), string(current[pos.X:])

	parts := strings.Split(text, lineSeparator)
	last := len(parts) - 1
	end := Position{X: len([]rune(parts[last])), Y: pos.Y + last}
	if last == 0 {
		end.X += pos.X
	}

	parts[0] = head + parts[0]
	parts[last] = parts[last] + tail

	lines := make([]string, 0, len(b.lines)+last)
	lines = append(lines, b.lines[:pos.Y]...)
	lines = append(lines, parts...)
	lines = append(lines, b.lines[pos.Y+1:]...)
	b.lines = lines

	b.invalidateFrom(pos.Y)
	b.isDirty = true
	return end
}

// DeleteChar は指定位置の直前の文字を削除する
// 行頭の場合は前の行と結合する
func (b *Contents) DeleteChar(pos Position) {
	if pos.Y < 0 || pos.Y >= len(b.lines) {
		return
	}

	if pos.X == 0 {
		if pos.Y == 0 {
			return
		}
		b.lines[pos.Y-1] += b.lines[pos.Y]
		b.lines = append(b.lines[:pos.Y], b.lines[pos.Y+1:]...)
		b.invalidateFrom(pos.Y - 1)
		b.isDirty = true
		return
	}

	row := b.GetRow(pos.Y)
	if row != nil {
		row.DeleteChar(pos.X - 1)
		b.lines[pos.Y] = row.GetContent()
		b.isDirty = true
	}
}

// DeleteLine は指定行を削除し、削除した行の内容を返す
// 最後の1行は削除せず空にする
func (b *Contents) DeleteLine(y int) string {
	if y < 0 || y >= len(b.lines) {
		return ""
	}

	removed := b.lines[y]
	if len(b.lines) == 1 {
		b.lines[0] = ""
	} else {
		b.lines = append(b.lines[:y], b.lines[y+1:]...)
	}
	b.invalidateFrom(y)
	b.isDirty = true
	return removed
}

// InsertNewline は指定位置で改行を挿入する
func (b *Contents) InsertNewline(pos Position) {
	if pos.Y < 0 || pos.Y >= len(b.lines) {
		return
	}

	currentRunes := []rune(b.lines[pos.Y])
	if pos.X > len(currentRunes) {
		pos.X = len(currentRunes)
	}
	firstPart := string(currentRunes[:pos.X])
	secondPart := string(currentRunes[pos.X:])

	b.lines[pos.Y] = firstPart
	b.lines = append(b.lines, "")
	copy(b.lines[pos.Y+2:], b.lines[pos.Y+1:])
	b.lines[pos.Y+1] = secondPart

	b.invalidateFrom(pos.Y)
	b.isDirty = true
}

// GetLineCount は行数を返す
func (b *Contents) GetLineCount() int {
	return len(b.lines)
}

// IsDirty は未保存の変更があるかどうかを返す
func (b *Contents) IsDirty() bool {
	return b.isDirty
}

// SetDirty はダーティフラグを設定する
func (b *Contents) SetDirty(dirty bool) {
	b.isDirty = dirty
}

// GetRow は指定された行のRowオブジェクトを取得する
func (b *Contents) GetRow(y int) *Row {
	if y < 0 || y >= len(b.lines) {
		return nil
	}

	if row, ok := b.rowCache[y]; ok && row != nil {
		return row
	}

	row := NewRow(b.lines[y])
	b.rowCache[y] = row
	return row
}

// invalidateFrom は y 行目以降の行キャッシュを破棄する
func (b *Contents) invalidateFrom(y int) {
	for i := range b.rowCache {
		if i >= y {
			delete(b.rowCache, i)
		}
	}
}

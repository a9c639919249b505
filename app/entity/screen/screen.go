package screen

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/wasya-io/gw-notepad/app/boundary/writer"
	"github.com/wasya-io/gw-notepad/app/entity/contents"
	"github.com/wasya-io/gw-notepad/app/entity/cursor"
	"github.com/wasya-io/gw-notepad/app/entity/menu"
)

const (
	// エスケープシーケンス
	escape             = "\x1b" // ESC
	clearSequence      = "[2J"  // 画面クリア
	clearLineSequence  = "[2K"  // 行クリア
	cursorHomeSequence = "[H"   // カーソルを原点に移動
	hideCursorSequence = "[?25l"
	showCursorSequence = "[?25h"

	// textTop はテキスト領域の先頭行（タイトルバーとメニューバーの下）
	textTop = 2
	// chromeRows はテキスト領域以外の行数（タイトル、メニュー、ステータス、メッセージ）
	chromeRows = 4
)

var (
	barStyle      = lipgloss.NewStyle().Reverse(true)
	selectedStyle = lipgloss.NewStyle().Bold(true)
)

// View は1回の再描画に必要な状態
type View struct {
	Title     string
	Path      string
	Contents  *contents.Contents
	Bar       *menu.Bar
	Navigator *menu.Navigator
	Prompt    string // Prompting のときメッセージバーに表示する入力行
	Prompting bool
}

type Screen struct {
	scrollOffset position
	rowLines     int
	colLines     int
	builder      *contents.Builder
	writer       writer.ScreenWriter
	message      contents.Message
	cursor       *cursor.Cursor
	lastTitle    string
	now          func() time.Time
}

type position struct {
	x, y int
}

func NewScreen(
	builder *contents.Builder,
	writer writer.ScreenWriter,
	message contents.Message,
	cursor *cursor.Cursor,
	rows, cols int,
) *Screen {
	return &Screen{
		rowLines: rows,
		colLines: cols,
		builder:  builder,
		writer:   writer,
		message:  message,
		cursor:   cursor,
		now:      time.Now,
	}
}

func (s *Screen) SetRowOffset(y int) {
	s.scrollOffset.y = y
}

func (s *Screen) SetColOffset(x int) {
	s.scrollOffset.x = x
}

func (s *Screen) SetCursorPosition(x, y int) {
	s.cursor.SetCursor(x, y)
}

func (s *Screen) GetOffset() (int, int) {
	return s.scrollOffset.x, s.scrollOffset.y
}

func (s *Screen) GetCursor() *cursor.Cursor {
	return s.cursor
}

// TextRows はテキスト領域の行数を返す
func (s *Screen) TextRows() int {
	if s.rowLines-chromeRows < 1 {
		return 1
	}
	return s.rowLines - chromeRows
}

// TextTop はテキスト領域の先頭行を返す
func (s *Screen) TextTop() int {
	return textTop
}

// Resize は端末サイズの変更を反映する
func (s *Screen) Resize(rows, cols int) {
	s.rowLines = rows
	s.colLines = cols
}

// MoveCursor は指定された方向にカーソルを移動する
func (s *Screen) MoveCursor(movement cursor.Movement, buffer *contents.Contents) {
	s.cursor.Move(movement, buffer)
}

// SetMessage はステータスメッセージを設定する
func (s *Screen) SetMessage(format string, args ...interface{}) {
	s.message.SetMessage(format, args...)
}

// ClearMessage はステータスメッセージを消す
func (s *Screen) ClearMessage() {
	s.message.Clear()
}

// Reset は画面をクリアしてカーソルを原点に戻す
func (s *Screen) Reset() error {
	return s.writer.Write(escape + clearSequence + escape + cursorHomeSequence)
}

// Redraw は画面を再描画する
func (s *Screen) Redraw(view View) error {
	buffer := view.Contents
	s.cursor.Clamp(buffer)
	s.scroll(buffer)

	s.builder.Clear()
	s.builder.Write(escape + hideCursorSequence)

	// 端末のウィンドウタイトルは変わったときだけ送る
	if view.Title != s.lastTitle {
		s.builder.Write(escape + "]0;" + view.Title + "\x07")
		s.lastTitle = view.Title
	}

	s.builder.Write(escape + cursorHomeSequence)
	s.drawTitleBar(view.Title)
	s.drawMenuBar(view.Bar, view.Navigator)
	s.drawRows(buffer)
	s.drawStatusBar(buffer, view.Path)
	s.drawMessageBar(view)
	s.drawDropdown(view.Bar, view.Navigator)

	// カーソル位置の設定
	if view.Prompting {
		s.builder.MoveCursor(s.rowLines-1, min(runewidth.StringWidth(view.Prompt), s.colLines-1))
	} else {
		pos := s.cursor.ToPosition()
		screenX, screenY := s.getScreenPosition(pos.X, pos.Y, buffer)
		s.builder.MoveCursor(textTop+screenY, screenX)
	}
	s.builder.Write(escape + showCursorSequence)

	// バッファの内容を一括で画面に反映
	return s.writer.Write(s.builder.Build())
}

// scroll はカーソルが表示範囲に入るようにオフセットを調整する
func (s *Screen) scroll(buffer *contents.Contents) {
	pos := s.cursor.ToPosition()
	if pos.Y < s.scrollOffset.y {
		s.scrollOffset.y = pos.Y
	}
	if pos.Y >= s.scrollOffset.y+s.TextRows() {
		s.scrollOffset.y = pos.Y - s.TextRows() + 1
	}

	visualX := 0
	if row := buffer.GetRow(pos.Y); row != nil {
		visualX = row.OffsetToScreenPosition(pos.X)
	}
	if visualX < s.scrollOffset.x {
		s.scrollOffset.x = visualX
	}
	if visualX >= s.scrollOffset.x+s.colLines {
		s.scrollOffset.x = visualX - s.colLines + 1
	}
}

// getScreenPosition はバッファ上の位置からテキスト領域内の位置を計算する
func (s *Screen) getScreenPosition(x, y int, buffer *contents.Contents) (int, int) {
	screenY := y - s.scrollOffset.y

	var screenX int
	if row := buffer.GetRow(y); row != nil {
		screenX = row.OffsetToScreenPosition(x) - s.scrollOffset.x
	}
	return screenX, screenY
}

// drawTitleBar はウィンドウタイトルを中央寄せで描画する
func (s *Screen) drawTitleBar(title string) {
	title = runewidth.Truncate(title, s.colLines, "…")
	padding := (s.colLines - runewidth.StringWidth(title)) / 2
	line := strings.Repeat(" ", padding) + title
	s.builder.Write(escape + clearLineSequence)
	s.builder.Write(barStyle.Render(s.padLine(line)) + "\r\n")
}

// drawMenuBar はメニュータイトルを描画する。開いているメニューは強調する
func (s *Screen) drawMenuBar(bar *menu.Bar, nav *menu.Navigator) {
	s.builder.Write(escape + clearLineSequence)
	if bar == nil {
		s.builder.Write("\r\n")
		return
	}

	open := -1
	if nav != nil {
		open, _ = nav.OpenIndex()
	}

	var line strings.Builder
	for i, m := range bar.Menus {
		title := " " + m.Title + " "
		if i == open {
			title = selectedStyle.Render(title)
		} else {
			title = barStyle.Render(title)
		}
		line.WriteString(title)
		line.WriteString(barStyle.Render(" "))
	}
	used := 0
	for _, m := range bar.Menus {
		used += runewidth.StringWidth(m.Title) + 3
	}
	if rest := s.colLines - used; rest > 0 {
		line.WriteString(barStyle.Render(strings.Repeat(" ", rest)))
	}
	s.builder.Write(line.String() + "\r\n")
}

// drawRows はテキスト領域を描画する
func (s *Screen) drawRows(buffer *contents.Contents) {
	for y := 0; y < s.TextRows(); y++ {
		filerow := y + s.scrollOffset.y
		s.builder.Write(escape + clearLineSequence)

		if filerow < buffer.GetLineCount() {
			if row := buffer.GetRow(filerow); row != nil {
				s.builder.Write(s.drawTextRow(row))
			}
		}
		s.builder.Write("\r\n")
	}
}

// drawTextRow はテキスト行を描画する。制御文字は空白で表示する
func (s *Screen) drawTextRow(row *contents.Row) string {
	var builder strings.Builder
	colOffset := s.scrollOffset.x
	currentPos := 0

	for i, char := range row.GetRunes() {
		width := row.GetRuneWidth(i)

		// colOffsetより前の文字はスキップ
		if currentPos < colOffset {
			currentPos += width
			continue
		}

		// 画面幅を超える場合は描画終了
		if currentPos-colOffset+width > s.colLines {
			break
		}

		if char < ' ' || char == 0x7f {
			char = ' '
		}
		builder.WriteRune(char)
		currentPos += width
	}

	return builder.String()
}

// drawStatusBar はファイル名、変更状態、カーソル位置を描画する
func (s *Screen) drawStatusBar(buffer *contents.Contents, path string) {
	status := path
	if status == "" {
		status = "[No Name]"
	}
	if buffer.IsDirty() {
		status += " [+]"
	}

	pos := s.cursor.ToPosition()
	location := fmt.Sprintf("Ln %d, Col %d", pos.Y+1, pos.X+1)

	room := s.colLines - runewidth.StringWidth(location) - 1
	if room < 0 {
		room = 0
	}
	status = runewidth.FillRight(runewidth.Truncate(status, room, "…"), room)

	s.builder.Write(escape + clearLineSequence)
	s.builder.Write(barStyle.Render(s.padLine(status+" "+location)) + "\r\n")
}

// drawMessageBar はメッセージバーを描画する
func (s *Screen) drawMessageBar(view View) {
	s.builder.Write(escape + clearLineSequence)

	if view.Prompting {
		s.builder.Write(runewidth.Truncate(view.Prompt, s.colLines, ""))
		return
	}

	// 表示時間を過ぎたメッセージは消去
	if s.message.Get() != "" && s.message.Expired(s.now()) {
		s.message.Clear()
	}
	if s.message.Get() != "" {
		s.builder.Write(runewidth.Truncate(s.message.String(), s.colLines, ""))
	}
}

// drawDropdown は開いているメニューの項目をテキスト領域の上に重ねて描画する
func (s *Screen) drawDropdown(bar *menu.Bar, nav *menu.Navigator) {
	if bar == nil || nav == nil || !nav.IsOpen() {
		return
	}
	open, selected := nav.OpenIndex()
	items := bar.Menus[open].Items
	if len(items) == 0 {
		return
	}

	labelWidth, shortcutWidth := 0, 0
	for _, item := range items {
		labelWidth = max(labelWidth, runewidth.StringWidth(item.Label))
		shortcutWidth = max(shortcutWidth, runewidth.StringWidth(item.ShortcutLabel()))
	}
	width := labelWidth + 2
	if shortcutWidth > 0 {
		width += shortcutWidth + 2
	}

	left := bar.TitleColumns()[open] - 1
	if left+width > s.colLines {
		left = max(0, s.colLines-width)
	}

	for i, item := range items {
		if i >= s.TextRows() {
			break
		}
		var line string
		if item.Separator {
			line = strings.Repeat("─", width)
		} else {
			line = " " + runewidth.FillRight(item.Label, labelWidth)
			if shortcutWidth > 0 {
				line += "  " + runewidth.FillRight(item.ShortcutLabel(), shortcutWidth)
			}
			line += " "
		}
		line = runewidth.Truncate(line, s.colLines-left, "")

		s.builder.MoveCursor(textTop+i, left)
		if i == selected {
			s.builder.Write(selectedStyle.Render(line))
		} else {
			s.builder.Write(barStyle.Render(line))
		}
	}
}

// padLine は行を画面幅に合わせてパディングする
func (s *Screen) padLine(line string) string {
	return runewidth.FillRight(runewidth.Truncate(line, s.colLines, ""), s.colLines)
}

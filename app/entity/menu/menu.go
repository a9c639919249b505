// menu パッケージはメニューバーの構成とコマンドの割り当てを定義します。
package menu

import (
	"fmt"

	"github.com/wasya-io/gw-notepad/app/entity/key"
)

// CommandID はメニューから実行できるコマンドの識別子
type CommandID string

const (
	CmdNew   CommandID = "new"
	CmdOpen  CommandID = "open"
	CmdSave  CommandID = "save"
	CmdExit  CommandID = "exit"
	CmdCut   CommandID = "cut"
	CmdCopy  CommandID = "copy"
	CmdPaste CommandID = "paste"
)

// Item はメニューの1項目
type Item struct {
	Command   CommandID
	Label     string
	Shortcut  key.Key // key.KeyNone ならショートカットなし
	StatusTip string
	Separator bool
}

// ShortcutLabel はショートカットの表示名を返す
func (i Item) ShortcutLabel() string {
	return i.Shortcut.Label()
}

// Menu はメニューバー上の1つのメニュー
type Menu struct {
	Title string
	Items []Item
}

// Bar はメニューバー全体
type Bar struct {
	Menus []Menu
}

// separator はメニュー項目の区切り線
var separator = Item{Separator: true}

// DefaultBar は File / Edit / Help からなるメニューバーを返す
func DefaultBar() *Bar {
	return &Bar{
		Menus: []Menu{
			{
				Title: "File",
				Items: []Item{
					{Command: CmdNew, Label: "New", Shortcut: key.KeyCtrlN, StatusTip: "Create a new document"},
					{Command: CmdOpen, Label: "Open...", Shortcut: key.KeyCtrlO, StatusTip: "Open an existing document"},
					{Command: CmdSave, Label: "Save", Shortcut: key.KeyCtrlS, StatusTip: "Save the current document"},
					separator,
					{Command: CmdExit, Label: "Exit", Shortcut: key.KeyCtrlQ, StatusTip: "Close the application"},
				},
			},
			{
				Title: "Edit",
				Items: []Item{
					{Command: CmdCut, Label: "Cut"},
					{Command: CmdCopy, Label: "Copy"},
					{Command: CmdPaste, Label: "Paste"},
				},
			},
			{
				Title: "Help",
			},
		},
	}
}

// Lookup はショートカットキーに割り当てられたコマンドを探す
func (b *Bar) Lookup(k key.Key) (CommandID, bool) {
	if k == key.KeyNone {
		return "", false
	}
	for _, m := range b.Menus {
		for _, item := range m.Items {
			if !item.Separator && item.Shortcut == k {
				return item.Command, true
			}
		}
	}
	return "", false
}

// TitleColumns はメニューバー上の各メニュータイトルの開始列を返す
func (b *Bar) TitleColumns() []int {
	cols := make([]int, len(b.Menus))
	col := 1
	for i, m := range b.Menus {
		cols[i] = col
		col += len([]rune(m.Title)) + 3
	}
	return cols
}

// MenuAt は画面上の列にあるメニューのインデックスを返す
func (b *Bar) MenuAt(col int) (int, bool) {
	for i, start := range b.TitleColumns() {
		end := start + len([]rune(b.Menus[i].Title))
		if col >= start-1 && col <= end {
			return i, true
		}
	}
	return 0, false
}

// Handler はコマンドの処理
type Handler func() error

// Table はコマンドと処理の対応表
type Table struct {
	handlers map[CommandID]Handler
}

func NewTable() *Table {
	return &Table{handlers: make(map[CommandID]Handler)}
}

// Bind はコマンドに処理を割り当てる
func (t *Table) Bind(id CommandID, h Handler) {
	t.handlers[id] = h
}

// Bound はコマンドに処理が割り当てられているかを返す
func (t *Table) Bound(id CommandID) bool {
	_, ok := t.handlers[id]
	return ok
}

// Dispatch はコマンドを実行する
// 処理が割り当てられていないコマンドは何もせず false を返す
func (t *Table) Dispatch(id CommandID) (bool, error) {
	h, ok := t.handlers[id]
	if !ok {
		return false, nil
	}
	if err := h(); err != nil {
		return true, fmt.Errorf("command %s: %w", id, err)
	}
	return true, nil
}

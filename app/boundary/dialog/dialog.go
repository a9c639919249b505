package dialog

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

//go:generate mockgen -source=dialog.go -destination=mock/mock_dialog.go

// ErrCancelled はユーザーがダイアログをキャンセルしたことを表す
var ErrCancelled = errors.New("dialog cancelled")

// Filter はファイル選択ダイアログの絞り込み条件
type Filter struct {
	Name       string
	Extensions []string // "*" は全ファイル
}

// ダイアログごとのフィルタ一覧
var (
	OpenFilters = []Filter{
		{Name: "Text Files", Extensions: []string{"txt"}},
		{Name: "Go Files", Extensions: []string{"go"}},
		{Name: "All Files", Extensions: []string{"*"}},
	}
	SaveFilters = []Filter{
		{Name: "Text Files", Extensions: []string{"txt"}},
		{Name: "All Files", Extensions: []string{"*"}},
	}
)

// String は "Text Files (*.txt)" 形式の表示名を返す
func (f Filter) String() string {
	patterns := make([]string, 0, len(f.Extensions))
	for _, ext := range f.Extensions {
		patterns = append(patterns, "*."+ext)
	}
	return fmt.Sprintf("%s (%s)", f.Name, strings.Join(patterns, " "))
}

// Match はファイル名がフィルタに一致するかを返す
func (f Filter) Match(name string) bool {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	for _, e := range f.Extensions {
		if e == "*" || strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

// Chooser はファイルパスをユーザーに選ばせる
// キャンセルされた場合は ErrCancelled を返す
type Chooser interface {
	ChooseOpen(title string, filters []Filter) (string, error)
	ChooseSave(title string, filters []Filter) (string, error)
}

// Prompter は端末上で1行の入力を受け付ける
// キャンセルされた場合は ErrCancelled を返す
type Prompter interface {
	Prompt(title string, completion *Completion) (string, error)
}

// fileops パッケージはファイル選択ダイアログとファイル入出力をつなぐOpen/Save操作を提供します。
package fileops

import (
	"fmt"

	"github.com/wasya-io/gw-notepad/app/boundary/dialog"
	"github.com/wasya-io/gw-notepad/app/boundary/filemanager"
	"github.com/wasya-io/gw-notepad/app/entity/contents"
)

// ダイアログのタイトル
const (
	OpenTitle = "Open File"
	SaveTitle = "Save File"
)

// Op はファイル操作の種類
type Op string

const (
	OpOpen Op = "open"
	OpSave Op = "save"
)

// Outcome はファイル操作の結果の種類
type Outcome int

const (
	Cancelled Outcome = iota
	Succeeded
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "cancelled"
	}
}

// Result はファイル操作の結果
// Succeeded のとき Path は読み書きしたパス、Failed のとき Err に原因が入る
type Result struct {
	Op      Op
	Outcome Outcome
	Path    string
	Err     error
}

// Operations はドキュメントのOpen/Saveを行う
type Operations struct {
	chooser  dialog.Chooser
	files    filemanager.FileManager
	contents *contents.Contents
}

func New(chooser dialog.Chooser, files filemanager.FileManager, contents *contents.Contents) *Operations {
	return &Operations{
		chooser:  chooser,
		files:    files,
		contents: contents,
	}
}

// SetChooser はファイル選択ダイアログの実装を差し替える
func (o *Operations) SetChooser(chooser dialog.Chooser) {
	o.chooser = chooser
}

// Open はファイルを選ばせて、その内容でドキュメント全体を置き換える
// 読み込みに失敗した場合はドキュメントを変更しない
func (o *Operations) Open() Result {
	path, err := o.chooser.ChooseOpen(OpenTitle, dialog.OpenFilters)
	if dialog.IsCancelled(err) || (err == nil && path == "") {
		return Result{Op: OpOpen, Outcome: Cancelled}
	}
	if err != nil {
		return Result{Op: OpOpen, Outcome: Failed, Err: fmt.Errorf("choose file: %w", err)}
	}

	text, err := o.files.Read(path)
	if err != nil {
		return Result{Op: OpOpen, Outcome: Failed, Path: path, Err: err}
	}

	o.contents.SetText(text)
	return Result{Op: OpOpen, Outcome: Succeeded, Path: path}
}

// Save は保存先を選ばせて、ドキュメント全体を書き込む
// 既存のファイルは確認なしで上書きする
func (o *Operations) Save() Result {
	path, err := o.chooser.ChooseSave(SaveTitle, dialog.SaveFilters)
	if dialog.IsCancelled(err) || (err == nil && path == "") {
		return Result{Op: OpSave, Outcome: Cancelled}
	}
	if err != nil {
		return Result{Op: OpSave, Outcome: Failed, Err: fmt.Errorf("choose file: %w", err)}
	}

	path = filemanager.ResolveSavePath(path)
	if err := o.files.Write(path, o.contents.Text()); err != nil {
		return Result{Op: OpSave, Outcome: Failed, Path: path, Err: err}
	}

	o.contents.SetDirty(false)
	return Result{Op: OpSave, Outcome: Succeeded, Path: path}
}

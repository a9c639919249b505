package dialog

import (
	"errors"

	sqdialog "github.com/sqweek/dialog"
)

// NativeChooser はOSネイティブのファイル選択ダイアログを使うChooser
type NativeChooser struct{}

func NewNativeChooser() *NativeChooser {
	return &NativeChooser{}
}

func (NativeChooser) ChooseOpen(title string, filters []Filter) (string, error) {
	return finish(build(title, filters).Load())
}

func (NativeChooser) ChooseSave(title string, filters []Filter) (string, error) {
	return finish(build(title, filters).Save())
}

func build(title string, filters []Filter) *sqdialog.FileBuilder {
	b := sqdialog.File().Title(title)
	for _, f := range filters {
		b = b.Filter(f.Name, f.Extensions...)
	}
	return b
}

func finish(path string, err error) (string, error) {
	if errors.Is(err, sqdialog.ErrCancelled) {
		return "", ErrCancelled
	}
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", ErrCancelled
	}
	return path, nil
}

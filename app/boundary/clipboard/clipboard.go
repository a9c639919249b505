package clipboard

import "github.com/atotto/clipboard"

//go:generate mockgen -source=clipboard.go -destination=mock/mock_clipboard.go

// Clipboard はシステムのクリップボードへのアクセスを表す
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// SystemClipboard はOSのクリップボードを使うClipboard
type SystemClipboard struct{}

func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

func (SystemClipboard) ReadAll() (string, error) {
	return clipboard.ReadAll()
}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Unsupported はクリップボードのコマンドが見つからない環境かどうかを返す
func Unsupported() bool {
	return clipboard.Unsupported
}

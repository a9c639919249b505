package filemanager

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

//go:generate mockgen -source=filemanager.go -destination=mock/mock_filemanager.go

// DefaultExtension は拡張子の無いファイル名に付与する拡張子
const DefaultExtension = ".txt"

// FileManager はテキストファイル全体の読み書きを行う
type FileManager interface {
	Read(path string) (string, error)
	Write(path string, text string) error
}

// Reason はファイル操作が失敗した理由の分類
type Reason int

const (
	ReasonUnknown Reason = iota
	ReasonNotFound
	ReasonPermission
	ReasonIsDirectory
	ReasonDecode
)

func (r Reason) String() string {
	switch r {
	case ReasonNotFound:
		return "not found"
	case ReasonPermission:
		return "permission denied"
	case ReasonIsDirectory:
		return "is a directory"
	case ReasonDecode:
		return "invalid UTF-8"
	default:
		return "unknown"
	}
}

// エラー定義
var (
	ErrNoFilename  = errors.New("no filename specified")
	ErrIsDirectory = errors.New("is a directory")
)

// FileError はファイル操作の失敗を表す
type FileError struct {
	Op     string // "open" または "save"
	Path   string
	Reason Reason
	Err    error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// StandardFileManager はOSのファイルシステムを使うFileManager
type StandardFileManager struct{}

// NewFileManager は新しいFileManagerを作成する
func NewFileManager() *StandardFileManager {
	return &StandardFileManager{}
}

// Read はファイル全体をUTF-8テキストとして読み込む
func (fm *StandardFileManager) Read(path string) (string, error) {
	if path == "" {
		return "", &FileError{Op: "open", Path: path, Reason: ReasonUnknown, Err: ErrNoFilename}
	}

	file, err := os.Open(path)
	if err != nil {
		return "", newFileError("open", path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", newFileError("open", path, err)
	}
	if info.IsDir() {
		return "", &FileError{Op: "open", Path: path, Reason: ReasonIsDirectory, Err: ErrIsDirectory}
	}

	data, err := io.ReadAll(transform.NewReader(file, encoding.UTF8Validator))
	if err != nil {
		return "", newFileError("open", path, err)
	}

	return string(data), nil
}

// Write はテキスト全体をファイルに書き込む。既存のファイルは確認なしで上書きする
func (fm *StandardFileManager) Write(path string, text string) (err error) {
	if path == "" {
		return &FileError{Op: "save", Path: path, Reason: ReasonUnknown, Err: ErrNoFilename}
	}

	file, err := os.Create(path)
	if err != nil {
		return newFileError("save", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = newFileError("save", path, cerr)
		}
	}()

	if _, err := io.WriteString(file, text); err != nil {
		return newFileError("save", path, err)
	}

	return nil
}

// ResolveSavePath は保存先のパスを決定する
// パスのどこにも "." が無い場合だけ DefaultExtension を付与する
func ResolveSavePath(path string) string {
	if path == "" || strings.Contains(path, ".") {
		return path
	}
	return path + DefaultExtension
}

func newFileError(op, path string, err error) *FileError {
	return &FileError{Op: op, Path: path, Reason: classify(err), Err: err}
}

func classify(err error) Reason {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ReasonNotFound
	case errors.Is(err, fs.ErrPermission):
		return ReasonPermission
	case errors.Is(err, encoding.ErrInvalidUTF8):
		return ReasonDecode
	case errors.Is(err, ErrIsDirectory):
		return ReasonIsDirectory
	}

	// os.Create にディレクトリを渡した場合は EISDIR が返る
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) && strings.Contains(pathErr.Err.Error(), "is a directory") {
		return ReasonIsDirectory
	}
	return ReasonUnknown
}

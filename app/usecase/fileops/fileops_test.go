package fileops_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/wasya-io/gw-notepad/app/boundary/dialog"
	mock_dialog "github.com/wasya-io/gw-notepad/app/boundary/dialog/mock"
	"github.com/wasya-io/gw-notepad/app/boundary/filemanager"
	mock_filemanager "github.com/wasya-io/gw-notepad/app/boundary/filemanager/mock"
	"github.com/wasya-io/gw-notepad/app/entity/contents"
	"github.com/wasya-io/gw-notepad/app/usecase/fileops"
)

func TestOpenSave_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	chooser := mock_dialog.NewMockChooser(ctrl)

	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	original := "first line\r\n日本語\n\ttabbed\n\n"
	if err := os.WriteFile(src, []byte(original), 0o644); err != nil {
		t.Fatal(err)
	}

	buffer := contents.NewContents(nil)
	ops := fileops.New(chooser, filemanager.NewFileManager(), buffer)

	gomock.InOrder(
		chooser.EXPECT().ChooseOpen(fileops.OpenTitle, dialog.OpenFilters).Return(src, nil),
		chooser.EXPECT().ChooseSave(fileops.SaveTitle, dialog.SaveFilters).Return(dst, nil),
	)

	if res := ops.Open(); res.Outcome != fileops.Succeeded || res.Path != src {
		t.Fatalf("Open() = %+v", res)
	}
	if buffer.Text() != original {
		t.Fatalf("buffer = %q", buffer.Text())
	}

	buffer.InsertChar(contents.Position{}, '#')
	buffer.DeleteChar(contents.Position{X: 1})
	if res := ops.Save(); res.Outcome != fileops.Succeeded || res.Path != dst {
		t.Fatalf("Save() = %+v", res)
	}
	if buffer.IsDirty() {
		t.Error("save should clear the dirty flag")
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != original {
		t.Errorf("saved content = %q, want %q", got, original)
	}
}

func TestSave_Extension(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name   string
		chosen string
		want   string
	}{
		{"拡張子なし", filepath.Join(dir, "notes"), filepath.Join(dir, "notes.txt")},
		{"拡張子あり", filepath.Join(dir, "notes.md"), filepath.Join(dir, "notes.md")},
		{"途中のドット", filepath.Join(dir, "report.v2"), filepath.Join(dir, "report.v2")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			chooser := mock_dialog.NewMockChooser(ctrl)
			files := mock_filemanager.NewMockFileManager(ctrl)

			buffer := contents.NewContents(nil)
			buffer.SetText("body")

			chooser.EXPECT().ChooseSave(gomock.Any(), gomock.Any()).Return(tt.chosen, nil)
			files.EXPECT().Write(tt.want, "body").Return(nil)

			res := fileops.New(chooser, files, buffer).Save()
			if res.Outcome != fileops.Succeeded || res.Path != tt.want {
				t.Errorf("Save() = %+v", res)
			}
		})
	}
}

func TestCancel_LeavesStateUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	chooser := mock_dialog.NewMockChooser(ctrl)
	files := mock_filemanager.NewMockFileManager(ctrl)

	buffer := contents.NewContents(nil)
	buffer.SetText("keep me")
	ops := fileops.New(chooser, files, buffer)

	chooser.EXPECT().ChooseOpen(gomock.Any(), gomock.Any()).Return("", dialog.ErrCancelled)
	chooser.EXPECT().ChooseSave(gomock.Any(), gomock.Any()).Return("", nil)

	if res := ops.Open(); res.Outcome != fileops.Cancelled || res.Err != nil {
		t.Errorf("Open() = %+v", res)
	}
	if res := ops.Save(); res.Outcome != fileops.Cancelled || res.Err != nil {
		t.Errorf("Save() = %+v", res)
	}
	if buffer.Text() != "keep me" {
		t.Errorf("buffer changed: %q", buffer.Text())
	}
}

func TestOpen_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	chooser := mock_dialog.NewMockChooser(ctrl)

	missing := filepath.Join(t.TempDir(), "missing.txt")
	buffer := contents.NewContents(nil)
	buffer.SetText("unchanged")

	chooser.EXPECT().ChooseOpen(gomock.Any(), gomock.Any()).Return(missing, nil)

	res := fileops.New(chooser, filemanager.NewFileManager(), buffer).Open()
	if res.Outcome != fileops.Failed {
		t.Fatalf("Open() = %+v", res)
	}

	var fileErr *filemanager.FileError
	if !errors.As(res.Err, &fileErr) || fileErr.Reason != filemanager.ReasonNotFound {
		t.Errorf("error = %v, want not found", res.Err)
	}
	if buffer.Text() != "unchanged" {
		t.Errorf("buffer changed: %q", buffer.Text())
	}
}

func TestSave_WriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	chooser := mock_dialog.NewMockChooser(ctrl)

	dir := t.TempDir()
	buffer := contents.NewContents(nil)
	buffer.InsertChar(contents.Position{}, 'x')

	// ディレクトリ名にドットを含めると拡張子が付かず、ディレクトリそのものへの書き込みになる
	target := filepath.Join(dir, "folder.d")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatal(err)
	}
	chooser.EXPECT().ChooseSave(gomock.Any(), gomock.Any()).Return(target, nil)

	res := fileops.New(chooser, filemanager.NewFileManager(), buffer).Save()
	if res.Outcome != fileops.Failed || res.Err == nil {
		t.Fatalf("Save() = %+v", res)
	}
	if !buffer.IsDirty() {
		t.Error("failed save should keep the dirty flag")
	}
}

func TestSetChooser(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mock_dialog.NewMockChooser(ctrl)
	second := mock_dialog.NewMockChooser(ctrl)

	ops := fileops.New(first, mock_filemanager.NewMockFileManager(ctrl), contents.NewContents(nil))
	ops.SetChooser(second)

	second.EXPECT().ChooseOpen(gomock.Any(), gomock.Any()).Return("", dialog.ErrCancelled)
	if res := ops.Open(); res.Outcome != fileops.Cancelled {
		t.Errorf("Open() = %+v", res)
	}
}

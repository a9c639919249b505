package screen

import (
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	mock_writer "github.com/wasya-io/gw-notepad/app/boundary/writer/mock"
	"github.com/wasya-io/gw-notepad/app/entity/contents"
	"github.com/wasya-io/gw-notepad/app/entity/cursor"
	"github.com/wasya-io/gw-notepad/app/entity/menu"
)

type screenFixture struct {
	screen  *Screen
	message *contents.StandardMessage
	buffer  *contents.Contents
	output  *[]string
}

func newScreenFixture(t *testing.T, rows, cols int) screenFixture {
	ctrl := gomock.NewController(t)
	w := mock_writer.NewMockScreenWriter(ctrl)

	var output []string
	w.EXPECT().Write(gomock.Any()).DoAndReturn(func(s string) error {
		output = append(output, s)
		return nil
	}).AnyTimes()

	message := contents.NewMessage(5 * time.Second)
	s := NewScreen(contents.NewBuilder(), w, message, cursor.NewCursor(), rows, cols)
	return screenFixture{
		screen:  s,
		message: message,
		buffer:  contents.NewContents(nil),
		output:  &output,
	}
}

func (f screenFixture) last() string {
	out := *f.output
	return out[len(out)-1]
}

func TestScreen_RedrawChrome(t *testing.T) {
	f := newScreenFixture(t, 10, 60)
	f.buffer.SetText("hello\nworld")

	view := View{
		Title:    "GW NOTEPAD",
		Contents: f.buffer,
		Bar:      menu.DefaultBar(),
	}
	if err := f.screen.Redraw(view); err != nil {
		t.Fatal(err)
	}

	out := f.last()
	for _, want := range []string{
		"\x1b]0;GW NOTEPAD\x07",
		"GW NOTEPAD",
		"File",
		"Edit",
		"Help",
		"hello",
		"world",
		"[No Name]",
		"Ln 1, Col 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q", want)
		}
	}
	if strings.Contains(out, "[+]") {
		t.Error("clean buffer should not be marked as modified")
	}
}

func TestScreen_TitleSequenceOnlyOnChange(t *testing.T) {
	f := newScreenFixture(t, 10, 60)
	view := View{Title: "GW NOTEPAD", Contents: f.buffer, Bar: menu.DefaultBar()}

	f.screen.Redraw(view)
	f.screen.Redraw(view)
	if strings.Contains(f.last(), "\x1b]0;") {
		t.Error("unchanged title should not be sent again")
	}

	view.Title = "GW NOTEPAD - /tmp/a.txt"
	view.Path = "/tmp/a.txt"
	f.buffer.InsertChar(contents.Position{}, 'x')
	f.screen.Redraw(view)
	out := f.last()
	if !strings.Contains(out, "\x1b]0;GW NOTEPAD - /tmp/a.txt\x07") {
		t.Error("new title was not sent")
	}
	if !strings.Contains(out, "/tmp/a.txt [+]") {
		t.Error("status bar should show the path and the modified mark")
	}
}

func TestScreen_ScrollFollowsCursor(t *testing.T) {
	f := newScreenFixture(t, 8, 20) // テキスト領域は4行
	lines := make([]string, 20)
	for i := range lines {
		lines[i] = strings.Repeat("x", 30)
	}
	f.buffer.SetText(strings.Join(lines, "\n"))

	f.screen.SetCursorPosition(25, 10)
	f.screen.Redraw(View{Contents: f.buffer})

	x, y := f.screen.GetOffset()
	if y != 7 {
		t.Errorf("row offset = %d, want 7", y)
	}
	if x != 6 {
		t.Errorf("col offset = %d, want 6", x)
	}

	f.screen.SetCursorPosition(0, 0)
	f.screen.Redraw(View{Contents: f.buffer})
	if x, y := f.screen.GetOffset(); x != 0 || y != 0 {
		t.Errorf("offset = (%d, %d), want (0, 0)", x, y)
	}
}

func TestScreen_MessageExpires(t *testing.T) {
	f := newScreenFixture(t, 10, 60)
	start := time.Now()
	f.screen.now = func() time.Time { return start }

	f.screen.SetMessage("Could not open file: %s", "boom")
	f.message.MessageTime = start
	f.screen.Redraw(View{Contents: f.buffer})
	if !strings.Contains(f.last(), "Could not open file: boom") {
		t.Error("message should be shown")
	}

	f.screen.now = func() time.Time { return start.Add(6 * time.Second) }
	f.screen.Redraw(View{Contents: f.buffer})
	if strings.Contains(f.last(), "Could not open file") {
		t.Error("expired message should be cleared")
	}
}

func TestScreen_Dropdown(t *testing.T) {
	f := newScreenFixture(t, 12, 60)
	bar := menu.DefaultBar()
	nav := menu.NewNavigator(bar)
	nav.OpenMenu(0)

	f.screen.Redraw(View{Contents: f.buffer, Bar: bar, Navigator: nav})
	out := f.last()
	for _, want := range []string{"New", "Open...", "Ctrl+O", "Save", "Ctrl+S", "Exit", "Ctrl+Q"} {
		if !strings.Contains(out, want) {
			t.Errorf("dropdown does not contain %q", want)
		}
	}

	nav.Close()
	f.screen.Redraw(View{Contents: f.buffer, Bar: bar, Navigator: nav})
	if strings.Contains(f.last(), "Ctrl+O") {
		t.Error("closed menu should not be drawn")
	}
}

func TestScreen_Prompt(t *testing.T) {
	f := newScreenFixture(t, 10, 60)
	f.screen.Redraw(View{
		Contents:  f.buffer,
		Prompt:    "Open File [Text Files (*.txt)]: notes",
		Prompting: true,
	})
	out := f.last()
	if !strings.Contains(out, "Open File [Text Files (*.txt)]: notes") {
		t.Error("prompt should be shown in the message bar")
	}
	// カーソルは入力行の末尾（10行目、38列目）
	if !strings.Contains(out, "\x1b[10;38H") {
		t.Error("cursor should be placed after the prompt input")
	}
}

func TestScreen_ControlCharactersDrawnAsSpaces(t *testing.T) {
	f := newScreenFixture(t, 10, 60)
	f.buffer.SetText("a\tb")
	f.screen.Redraw(View{Contents: f.buffer})
	if !strings.Contains(f.last(), "a b") {
		t.Error("tab should be drawn as a space")
	}
}

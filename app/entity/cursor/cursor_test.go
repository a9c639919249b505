package cursor

import (
	"testing"

	"github.com/wasya-io/gw-notepad/app/entity/contents"
)

func newBuffer(text string) *contents.Contents {
	c := contents.NewContents(nil)
	c.SetText(text)
	return c
}

func TestCursor_Move(t *testing.T) {
	buffer := newBuffer("first\nsecond\nあいう")

	tests := []struct {
		name     string
		startX   int
		startY   int
		movement Movement
		wantX    int
		wantY    int
	}{
		{"右へ移動", 0, 0, CursorRight, 1, 0},
		{"行末から次の行頭へ", 5, 0, CursorRight, 0, 1},
		{"行頭から前の行末へ", 0, 1, CursorLeft, 5, 0},
		{"先頭では左に動かない", 0, 0, CursorLeft, 0, 0},
		{"上で列を保つ", 3, 1, CursorUp, 3, 0},
		{"短い行へ下移動", 6, 1, CursorDown, 3, 2},
		{"全角の表示幅を考慮", 2, 2, CursorUp, 4, 1},
		{"最終行では下に動かない", 1, 2, CursorDown, 1, 2},
		{"ホイールで先頭に制限", 2, 1, MouseWheelUp, 2, 0},
		{"ホイールで末尾に制限", 0, 0, MouseWheelDown, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor()
			c.SetCursor(tt.startX, tt.startY)
			c.Move(tt.movement, buffer)
			if c.Col() != tt.wantX || c.Row() != tt.wantY {
				t.Errorf("got (%d,%d), want (%d,%d)", c.Col(), c.Row(), tt.wantX, tt.wantY)
			}
		})
	}
}

func TestCursor_Clamp(t *testing.T) {
	buffer := newBuffer("ab\nc")
	c := NewCursor()
	c.SetCursor(10, 10)
	c.Clamp(buffer)
	if c.Col() != 1 || c.Row() != 1 {
		t.Errorf("got (%d,%d), want (1,1)", c.Col(), c.Row())
	}
}

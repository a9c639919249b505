package contents

import (
	"reflect"
	"testing"
	"time"
)

func TestContents_TextRoundTrip(t *testing.T) {
	texts := []string{
		"",
		"single line",
		"trailing newline\n",
		"windows\r\nline endings\r\n",
		"\n\nblank lines\n\n",
		"日本語\tタブ\n",
	}

	for _, text := range texts {
		c := NewContents(nil)
		c.SetText(text)
		if got := c.Text(); got != text {
			t.Errorf("SetText/Text changed content: got %q, want %q", got, text)
		}
		if c.IsDirty() {
			t.Error("SetText should leave the buffer clean")
		}
	}
}

func TestContents_NewIsEmpty(t *testing.T) {
	c := NewContents(nil)
	if c.Text() != "" || c.GetLineCount() != 1 {
		t.Errorf("new buffer should hold one empty line, got %q (%d lines)", c.Text(), c.GetLineCount())
	}
}

func TestContents_InsertCharAndNewline(t *testing.T) {
	c := NewContents(nil)
	c.SetText("ac")

	c.InsertChar(Position{X: 1, Y: 0}, 'b')
	c.InsertNewline(Position{X: 2, Y: 0})

	if got := c.Text(); got != "ab\nc" {
		t.Errorf("Text() = %q, want %q", got, "ab\nc")
	}
	if !c.IsDirty() {
		t.Error("buffer should be dirty after editing")
	}
	if row := c.GetRow(1); row == nil || row.GetContent() != "c" {
		t.Error("row cache was not invalidated after newline")
	}
}

func TestContents_DeleteChar(t *testing.T) {
	c := NewContents(nil)
	c.SetText("abc\ndef")

	c.DeleteChar(Position{X: 2, Y: 0}) // "b" を削除
	if got := c.Text(); got != "ac\ndef" {
		t.Fatalf("Text() = %q", got)
	}

	c.DeleteChar(Position{X: 0, Y: 1}) // 行の結合
	if got := c.Text(); got != "acdef" {
		t.Fatalf("Text() = %q", got)
	}

	c.DeleteChar(Position{X: 0, Y: 0}) // 先頭では何もしない
	if got := c.Text(); got != "acdef" {
		t.Fatalf("Text() = %q", got)
	}
}

func TestContents_InsertText(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		pos     Position
		text    string
		want    string
		wantEnd Position
	}{
		{"同じ行", "abcd", Position{X: 2, Y: 0}, "XY", "abXYcd", Position{X: 4, Y: 0}},
		{"複数行", "abcd", Position{X: 2, Y: 0}, "X\nY", "abX\nYcd", Position{X: 1, Y: 1}},
		{"末尾の改行", "one\ntwo", Position{X: 0, Y: 1}, "line\n", "one\nline\ntwo", Position{X: 0, Y: 2}},
		{"行末を超える位置", "ab", Position{X: 10, Y: 0}, "c", "abc", Position{X: 3, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewContents(nil)
			c.SetText(tt.initial)
			end := c.InsertText(tt.pos, tt.text)
			if got := c.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
			if end != tt.wantEnd {
				t.Errorf("end = %+v, want %+v", end, tt.wantEnd)
			}
		})
	}
}

func TestContents_DeleteLine(t *testing.T) {
	c := NewContents(nil)
	c.SetText("one\ntwo\nthree")

	if removed := c.DeleteLine(1); removed != "two" {
		t.Errorf("DeleteLine returned %q", removed)
	}
	if got := c.GetAllLines(); !reflect.DeepEqual(got, []string{"one", "three"}) {
		t.Errorf("lines = %v", got)
	}

	c.SetText("only")
	c.DeleteLine(0)
	if c.GetLineCount() != 1 || c.Text() != "" {
		t.Errorf("deleting the last line should leave an empty buffer, got %q", c.Text())
	}
}

func TestRow_WideCharacters(t *testing.T) {
	row := NewRow("aあb")

	if row.GetWidth() != 4 {
		t.Errorf("width = %d, want 4", row.GetWidth())
	}
	if got := row.OffsetToScreenPosition(2); got != 3 {
		t.Errorf("OffsetToScreenPosition(2) = %d, want 3", got)
	}
	if got := row.ScreenPositionToOffset(2); got != 1 {
		t.Errorf("ScreenPositionToOffset(2) = %d, want 1", got)
	}

	row.InsertChar(1, 'い')
	if row.GetContent() != "aいあb" || row.GetRuneCount() != 4 || row.GetWidth() != 6 {
		t.Errorf("after insert: %q count=%d width=%d", row.GetContent(), row.GetRuneCount(), row.GetWidth())
	}
	row.DeleteChar(0)
	if row.GetContent() != "いあb" {
		t.Errorf("after delete: %q", row.GetContent())
	}
}

func TestMessage_Expired(t *testing.T) {
	m := NewMessage(5 * time.Second)
	m.SetMessage("Saved %s", "a.txt")

	if m.String() != "Saved a.txt" {
		t.Errorf("String() = %q", m.String())
	}
	if m.Expired(m.MessageTime.Add(4 * time.Second)) {
		t.Error("message should still be visible")
	}
	if !m.Expired(m.MessageTime.Add(5 * time.Second)) {
		t.Error("message should expire after the duration")
	}

	m.SetMessage("100% done")
	if m.String() != "100% done" {
		t.Errorf("message without args should not be formatted: %q", m.String())
	}
}

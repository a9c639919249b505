package contents

import "golang.org/x/text/width"

// Row は1行のテキストデータと関連情報を保持する
type Row struct {
	chars      string
	runeSlice  []rune
	widths     []int
	positions  []int
	totalWidth int
}

// NewRow は新しいRow構造体を作成する
func NewRow(chars string) *Row {
	r := &Row{}
	r.setRunes([]rune(chars))
	return r
}

// GetContent は行の内容を文字列として返す
func (r *Row) GetContent() string {
	return r.chars
}

// InsertChar は指定位置に文字を挿入する
func (r *Row) InsertChar(at int, ch rune) {
	if at < 0 {
		at = 0
	}
	if at > len(r.runeSlice) {
		at = len(r.runeSlice)
	}

	runes := make([]rune, 0, len(r.runeSlice)+1)
	runes = append(runes, r.runeSlice[:at]...)
	runes = append(runes, ch)
	runes = append(runes, r.runeSlice[at:]...)
	r.setRunes(runes)
}

// DeleteChar は指定位置の文字を削除する
func (r *Row) DeleteChar(at int) {
	if at < 0 || at >= len(r.runeSlice) {
		return
	}
	runes := append(append([]rune{}, r.runeSlice[:at]...), r.runeSlice[at+1:]...)
	r.setRunes(runes)
}

// ScreenPositionToOffset は画面上の位置から文字列中のオフセットを取得する
func (r *Row) ScreenPositionToOffset(screenPos int) int {
	if screenPos >= r.totalWidth {
		return len(r.runeSlice)
	}
	if screenPos < 0 {
		return 0
	}

	for i := range r.runeSlice {
		start := r.positions[i]
		end := start + r.widths[i]
		if screenPos >= start && screenPos < end {
			return i
		}
	}
	return len(r.runeSlice)
}

// OffsetToScreenPosition は文字列中のオフセットから画面上の位置を取得する
func (r *Row) OffsetToScreenPosition(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset >= len(r.runeSlice) {
		return r.totalWidth
	}
	return r.positions[offset]
}

// GetRuneCount は行の文字数を返す
func (r *Row) GetRuneCount() int {
	return len(r.runeSlice)
}

func (r *Row) GetRunes() []rune {
	return r.runeSlice
}

// GetRuneWidth は指定された位置の文字の表示幅を返す
func (r *Row) GetRuneWidth(offset int) int {
	if offset < 0 || offset >= len(r.widths) {
		return 0
	}
	return r.widths[offset]
}

// GetWidth は行全体の表示幅を返す
func (r *Row) GetWidth() int {
	return r.totalWidth
}

// setRunes は内容を置き換えて文字幅情報を再計算する
func (r *Row) setRunes(runes []rune) {
	r.runeSlice = runes
	r.chars = string(runes)
	r.widths = make([]int, len(runes))
	r.positions = make([]int, len(runes)+1)

	r.totalWidth = 0
	for i, ch := range runes {
		w := getCharWidth(ch)
		r.widths[i] = w
		r.positions[i] = r.totalWidth
		r.totalWidth += w
	}
	r.positions[len(runes)] = r.totalWidth
}

// getCharWidth は文字の表示幅を返す
func getCharWidth(ch rune) int {
	p := width.LookupRune(ch)
	switch p.Kind() {
	case width.EastAsianFullwidth, width.EastAsianWide:
		return 2
	default:
		return 1
	}
}

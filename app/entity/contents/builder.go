package contents

import (
	"fmt"
	"strings"
)

type Builder struct {
	buffer strings.Builder
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Clear() {
	b.buffer.Reset()
}

func (b *Builder) Write(s string) {
	b.buffer.WriteString(s)
}

// MoveCursor はカーソルを指定位置（0始まり）に移動するシーケンスを書き込む
func (b *Builder) MoveCursor(row, col int) {
	b.buffer.WriteString(fmt.Sprintf("\x1b[%d;%dH", row+1, col+1))
}

func (b *Builder) Build() string {
	return b.buffer.String()
}

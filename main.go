package main

import (
	"fmt"
	"os"
	"runtime/debug"
)

func main() {
	// グローバルなパニックハンドラを設定
	defer func() {
		if r := recover(); r != nil {
			// 端末をリセットするエスケープシーケンス
			fmt.Print("\x1b[?1000l\x1b[?1002l\x1b[?1015l\x1b[?1006l") // マウスモードを無効化
			fmt.Print("\x1b[2J\x1b[H")                                // 画面をクリア
			fmt.Print("\x1b[?25h")                                    // カーソルを表示

			fmt.Fprintf(os.Stderr, "Editor crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s", debug.Stack())
			os.Exit(1)
		}
	}()

	ed, err := NewEditor()
	if err != nil {
		die(err)
	}

	if err := ed.Run(); err != nil {
		die(err)
	}
}

func die(err error) {
	fmt.Print("\x1b[2J") // 画面をクリア
	fmt.Print("\x1b[H")  // カーソルを左上に移動
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

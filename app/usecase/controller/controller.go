package controller

import (
	"errors"
	"fmt"

	"github.com/wasya-io/gw-notepad/app/boundary/clipboard"
	"github.com/wasya-io/gw-notepad/app/boundary/dialog"
	"github.com/wasya-io/gw-notepad/app/boundary/filemanager"
	"github.com/wasya-io/gw-notepad/app/boundary/provider/input"
	"github.com/wasya-io/gw-notepad/app/boundary/reader"
	"github.com/wasya-io/gw-notepad/app/entity/contents"
	"github.com/wasya-io/gw-notepad/app/entity/core"
	"github.com/wasya-io/gw-notepad/app/entity/cursor"
	"github.com/wasya-io/gw-notepad/app/entity/event"
	"github.com/wasya-io/gw-notepad/app/entity/key"
	"github.com/wasya-io/gw-notepad/app/entity/menu"
	"github.com/wasya-io/gw-notepad/app/entity/screen"
	"github.com/wasya-io/gw-notepad/app/entity/window"
	"github.com/wasya-io/gw-notepad/app/usecase/command"
	"github.com/wasya-io/gw-notepad/app/usecase/fileops"
	"github.com/wasya-io/gw-notepad/app/usecase/parser"
)

// menuRow はメニューバーの画面上の行
const menuRow = 1

type Controller struct {
	screen        *screen.Screen
	contents      *contents.Contents
	window        *window.Window
	fileOps       *fileops.Operations
	clipboard     clipboard.Clipboard
	inputProvider input.Provider
	logger        core.Logger
	eventBus      *event.Bus
	bar           *menu.Bar
	navigator     *menu.Navigator
	commands      *menu.Table
	eventBuffer   []key.KeyEvent
	tabWidth      int
	tipShown      bool
	prompting     bool
	promptLine    string
}

func NewController(
	screen *screen.Screen,
	contents *contents.Contents,
	window *window.Window,
	files filemanager.FileManager,
	clipboard clipboard.Clipboard,
	inputProvider input.Provider,
	logger core.Logger,
	eventBus *event.Bus,
	tabWidth int,
) *Controller {
	bar := menu.DefaultBar()
	c := &Controller{
		screen:        screen,
		contents:      contents,
		window:        window,
		clipboard:     clipboard,
		inputProvider: inputProvider,
		logger:        logger,
		eventBus:      eventBus,
		bar:           bar,
		navigator:     menu.NewNavigator(bar),
		commands:      menu.NewTable(),
		tabWidth:      tabWidth,
	}
	// ダイアログの既定はメッセージバーのプロンプト
	c.fileOps = fileops.New(dialog.NewPromptChooser(c), files, contents)

	c.bindCommands()
	c.registerEventHandlers()

	return c
}

// UseChooser はファイル選択ダイアログの実装を差し替える
func (c *Controller) UseChooser(chooser dialog.Chooser) {
	c.fileOps.SetChooser(chooser)
}

// bindCommands はメニューのコマンドに処理を割り当てる
// New は割り当てない
func (c *Controller) bindCommands() {
	c.commands.Bind(menu.CmdOpen, func() error {
		c.publishFileResult(c.fileOps.Open())
		return nil
	})
	c.commands.Bind(menu.CmdSave, func() error {
		c.publishFileResult(c.fileOps.Save())
		return nil
	})
	c.commands.Bind(menu.CmdExit, func() error {
		c.PublishQuitEvent()
		return nil
	})
	c.commands.Bind(menu.CmdCut, c.cutLine)
	c.commands.Bind(menu.CmdCopy, c.copyLine)
	c.commands.Bind(menu.CmdPaste, c.paste)
}

// registerEventHandlers はイベントハンドラーを登録します
func (c *Controller) registerEventHandlers() {
	// ファイル操作の結果をタイトルとログに反映する
	fileHandler := event.NewSingleTypeHandler(event.TypeFile, func(e event.Event) (bool, error) {
		fileEvent, ok := e.Payload.(event.FileEvent)
		if !ok {
			return false, nil
		}

		if fileEvent.Err != nil {
			switch fileEvent.Op {
			case event.FileOpen:
				c.logger.Log("error", fmt.Sprintf("Could not open file: %v", fileEvent.Err))
			case event.FileSave:
				c.logger.Log("error", fmt.Sprintf("Could not save file: %v", fileEvent.Err))
			}
			return true, nil
		}

		c.window.SetPath(fileEvent.Path)
		switch fileEvent.Op {
		case event.FileOpen:
			c.screen.SetCursorPosition(0, 0)
			c.screen.SetRowOffset(0)
			c.screen.SetColOffset(0)
			c.setStatusMessage("Opened %s", fileEvent.Path)
		case event.FileSave:
			c.setStatusMessage("Saved %s", fileEvent.Path)
		}
		c.logger.Log("file", fmt.Sprintf("%s succeeded: '%s'", fileEvent.Op, fileEvent.Path))
		return true, nil
	})

	// 終了イベントのハンドラー。未保存の変更があっても確認しない
	quitHandler := event.NewSingleTypeHandler(event.TypeQuit, func(e event.Event) (bool, error) {
		c.logger.Log("system", "Shutting down editor")
		c.window.Close()
		return true, nil
	})

	commandHandler := event.NewSingleTypeHandler(event.TypeCommand, func(e event.Event) (bool, error) {
		if commandEvent, ok := e.Payload.(event.CommandEvent); ok && !commandEvent.Handled {
			c.logger.Log("command", fmt.Sprintf("Command %s has no action", commandEvent.Command))
		}
		return true, nil
	})

	c.eventBus.Subscribe(fileHandler)
	c.eventBus.Subscribe(quitHandler)
	c.eventBus.Subscribe(commandHandler)
	c.eventBus.SetDefaultHandler(event.HandlerFunc(func(e event.Event) (bool, error) {
		c.logger.Log("event", fmt.Sprintf("Unhandled event: %s", e.Type))
		return false, nil
	}))
}

// publishFileResult はファイル操作の結果をイベントとして発行する
// 失敗はログに残すだけで呼び出し元には返さない
func (c *Controller) publishFileResult(res fileops.Result) {
	op := event.FileOpen
	if res.Op == fileops.OpSave {
		op = event.FileSave
	}

	switch res.Outcome {
	case fileops.Cancelled:
		c.logger.Log("file", fmt.Sprintf("%s cancelled", res.Op))
	case fileops.Succeeded:
		c.eventBus.Publish(event.NewFileEvent(op, res.Path, nil))
	case fileops.Failed:
		c.eventBus.Publish(event.NewFileEvent(op, res.Path, res.Err))
	}
}

// PublishQuitEvent は終了イベントを発行します
func (c *Controller) PublishQuitEvent() {
	c.logger.Log("event", "Publishing quit event")
	c.eventBus.Publish(event.NewQuitEvent())
}

// dispatch はメニューのコマンドを実行する
func (c *Controller) dispatch(id menu.CommandID) error {
	handled, err := c.commands.Dispatch(id)
	c.eventBus.Publish(event.NewCommandEvent(string(id), handled))
	return err
}

func (c *Controller) RefreshScreen() error {
	return c.screen.Redraw(screen.View{
		Title:     c.window.Title(),
		Path:      c.currentPath(),
		Contents:  c.contents,
		Bar:       c.bar,
		Navigator: c.navigator,
		Prompt:    c.promptLine,
		Prompting: c.prompting,
	})
}

func (c *Controller) currentPath() string {
	path, _ := c.window.Path()
	return path
}

// Process はキー入力を1つ処理する
func (c *Controller) Process() error {
	ev, err := c.readEvent()
	if errors.Is(err, parser.ErrUnknownInput) || errors.Is(err, reader.ErrNoInput) {
		// 解釈できない入力は読み飛ばす
		return nil
	}
	if err != nil {
		c.logger.Log("error", fmt.Sprintf("readEvent error: %v", err))
		return err
	}

	cmd := c.createCommand(ev)

	// 画面更新を必ず行う（コマンドの有無に関わらず）
	defer c.RefreshScreen()

	if cmd != nil {
		if err := cmd.Execute(); err != nil {
			c.logger.Log("error", fmt.Sprintf("command failed: %v", err))
		}
	}

	return nil
}

// readEvent はイベントを読み取る
func (c *Controller) readEvent() (key.KeyEvent, error) {
	// バッファにイベントがある場合はそれを返す
	if len(c.eventBuffer) > 0 {
		ev := c.eventBuffer[0]
		c.eventBuffer = c.eventBuffer[1:]
		return ev, nil
	}

	ev, remainingEvents, err := c.inputProvider.GetInputEvents()
	if err != nil {
		return key.KeyEvent{}, err
	}

	// 残りのイベントがある場合はバッファに追加
	if len(remainingEvents) > 0 {
		c.eventBuffer = append(c.eventBuffer, remainingEvents...)
	}

	return ev, nil
}

// createCommand はキーイベントからコマンドを作成する
func (c *Controller) createCommand(ev key.KeyEvent) command.Command {
	if ev.Type == key.KeyEventMouse {
		return c.createMouseCommand(ev)
	}

	if c.navigator.IsOpen() {
		if cmd, ok := c.createMenuCommand(ev); ok {
			return cmd
		}
	}

	switch ev.Type {
	case key.KeyEventChar:
		return command.NewInsertCharCommand(ev.Rune, func(r rune) error {
			c.insertChar(r)
			return nil
		})
	case key.KeyEventSpecial:
		return c.createSpecialKeyCommand(ev.Key)
	case key.KeyEventControl:
		return c.createControlKeyCommand(ev.Key)
	}
	return nil
}

// createMenuCommand はメニューが開いているときのキー操作を処理する
// メニューで扱わないキーは false を返し、メニューを閉じて通常の処理に回す
func (c *Controller) createMenuCommand(ev key.KeyEvent) (command.Command, bool) {
	if ev.Type == key.KeyEventSpecial {
		switch ev.Key {
		case key.KeyEsc, key.KeyF10:
			return command.NewCommand(func() error {
				c.closeMenu()
				return nil
			}), true
		case key.KeyArrowLeft:
			return c.navigate(c.navigator.Left), true
		case key.KeyArrowRight:
			return c.navigate(c.navigator.Right), true
		case key.KeyArrowUp:
			return c.navigate(c.navigator.Up), true
		case key.KeyArrowDown:
			return c.navigate(c.navigator.Down), true
		case key.KeyEnter:
			return command.NewCommand(c.triggerMenuItem), true
		}
	}
	c.closeMenu()
	return nil, false
}

func (c *Controller) navigate(move func()) command.Command {
	return command.NewCommand(func() error {
		move()
		c.showStatusTip()
		return nil
	})
}

// triggerMenuItem は選択中のメニュー項目を実行する
func (c *Controller) triggerMenuItem() error {
	item, ok := c.navigator.Current()
	c.closeMenu()
	if !ok {
		return nil
	}
	return c.dispatch(item.Command)
}

func (c *Controller) openMenu(i int) {
	c.navigator.OpenMenu(i)
	c.showStatusTip()
}

func (c *Controller) closeMenu() {
	c.navigator.Close()
	if c.tipShown {
		c.screen.ClearMessage()
		c.tipShown = false
	}
}

// showStatusTip は選択中の項目の説明をメッセージバーに表示する
func (c *Controller) showStatusTip() {
	item, ok := c.navigator.Current()
	if ok && item.StatusTip != "" {
		c.screen.SetMessage(item.StatusTip)
		c.tipShown = true
		return
	}
	if c.tipShown {
		c.screen.ClearMessage()
		c.tipShown = false
	}
}

// createMouseCommand はマウスイベントに対応するコマンドを作成する
func (c *Controller) createMouseCommand(ev key.KeyEvent) command.Command {
	switch ev.Key {
	case key.KeyMouseWheel:
		movement := cursor.MouseWheelDown
		if ev.MouseAction == key.MouseScrollUp {
			movement = cursor.MouseWheelUp
		}
		return command.NewCommand(func() error {
			c.closeMenu()
			c.moveCursor(movement)
			return nil
		})
	case key.KeyMouseClick:
		if ev.MouseAction != key.MouseLeftClick {
			c.logger.Log("mouse", fmt.Sprintf("Unhandled mouse click event: %v", ev.MouseAction))
			return nil
		}
		return command.NewCommand(func() error {
			c.logger.Log("mouse", fmt.Sprintf("Mouse left click at row: %d, col: %d", ev.MouseRow, ev.MouseCol))
			return c.handleMouseClick(ev.MouseRow, ev.MouseCol)
		})
	}
	return nil
}

// handleMouseClick はクリック位置に応じてメニューの開閉、項目の実行、カーソル移動を行う
func (c *Controller) handleMouseClick(row, col int) error {
	if row == menuRow {
		i, ok := c.bar.MenuAt(col)
		open, _ := c.navigator.OpenIndex()
		if !ok || (c.navigator.IsOpen() && open == i) {
			c.closeMenu()
			return nil
		}
		c.openMenu(i)
		return nil
	}

	if c.navigator.IsOpen() {
		// ドロップダウンの項目は開いているメニュータイトルの下に並ぶ
		if c.navigator.Select(row - c.screen.TextTop()) {
			return c.triggerMenuItem()
		}
		c.closeMenu()
		return nil
	}

	textRow := row - c.screen.TextTop()
	if textRow < 0 || textRow >= c.screen.TextRows() {
		return nil
	}
	c.moveCursorTo(textRow, col)
	return nil
}

// moveCursorTo はテキスト領域内の画面位置にカーソルを移動する
func (c *Controller) moveCursorTo(row, col int) {
	offsetCol, offsetRow := c.screen.GetOffset()

	bufferRow := row + offsetRow
	if bufferRow >= c.contents.GetLineCount() {
		bufferRow = c.contents.GetLineCount() - 1
	}
	if bufferRow < 0 {
		bufferRow = 0
	}

	targetRow := c.contents.GetRow(bufferRow)
	if targetRow == nil {
		return
	}

	// 画面上の列位置を文字位置に変換（全角文字を考慮）
	bufferCol := targetRow.ScreenPositionToOffset(col + offsetCol)
	c.screen.SetCursorPosition(bufferCol, bufferRow)
}

// createSpecialKeyCommand は特殊キーに対応するコマンドを作成する
func (c *Controller) createSpecialKeyCommand(k key.Key) command.Command {
	switch k {
	case key.KeyArrowLeft:
		return c.moveCommand(cursor.CursorLeft)
	case key.KeyArrowRight:
		return c.moveCommand(cursor.CursorRight)
	case key.KeyArrowUp:
		return c.moveCommand(cursor.CursorUp)
	case key.KeyArrowDown:
		return c.moveCommand(cursor.CursorDown)
	case key.KeyBackspace:
		return command.NewCommand(func() error {
			c.deleteChar()
			return nil
		})
	case key.KeyEnter:
		return command.NewCommand(func() error {
			c.insertNewline()
			return nil
		})
	case key.KeyTab:
		return command.NewCommand(func() error {
			// タブは空白に展開
			for i := 0; i < c.tabWidth; i++ {
				c.insertChar(' ')
			}
			return nil
		})
	case key.KeyF10:
		return command.NewCommand(func() error {
			c.openMenu(0)
			return nil
		})
	}
	return nil
}

// createControlKeyCommand はショートカットキーに対応するコマンドを作成する
func (c *Controller) createControlKeyCommand(k key.Key) command.Command {
	id, ok := c.bar.Lookup(k)
	if !ok {
		c.logger.Log("command", fmt.Sprintf("No shortcut bound to key %d", k))
		return nil
	}
	return command.NewMenuCommand(id, c.dispatch)
}

func (c *Controller) moveCommand(movement cursor.Movement) command.Command {
	return command.NewCommand(func() error {
		c.moveCursor(movement)
		return nil
	})
}

func (c *Controller) moveCursor(movement cursor.Movement) {
	c.screen.MoveCursor(movement, c.contents)
}

func (c *Controller) insertChar(ch rune) {
	pos := c.screen.GetCursor().ToPosition()
	c.contents.InsertChar(pos, ch)
	c.screen.SetCursorPosition(pos.X+1, pos.Y)
}

func (c *Controller) deleteChar() {
	pos := c.screen.GetCursor().ToPosition()

	if pos.X > 0 {
		c.contents.DeleteChar(pos)
		c.screen.SetCursorPosition(pos.X-1, pos.Y)
	} else if pos.Y > 0 {
		// 行頭での削除（前の行との結合）
		if prevRow := c.contents.GetRow(pos.Y - 1); prevRow != nil {
			targetX := prevRow.GetRuneCount()
			c.contents.DeleteChar(pos)
			c.screen.SetCursorPosition(targetX, pos.Y-1)
		}
	}
}

func (c *Controller) insertNewline() {
	pos := c.screen.GetCursor().ToPosition()
	c.contents.InsertNewline(pos)
	c.screen.SetCursorPosition(0, pos.Y+1)
}

// copyLine はカーソル行を改行付きでクリップボードにコピーする
func (c *Controller) copyLine() error {
	pos := c.screen.GetCursor().ToPosition()
	if err := c.clipboard.WriteAll(c.contents.GetContentLine(pos.Y) + "\n"); err != nil {
		c.logger.Log("error", fmt.Sprintf("Could not copy to clipboard: %v", err))
		return nil
	}
	return nil
}

// cutLine はカーソル行をクリップボードにコピーしてから削除する
func (c *Controller) cutLine() error {
	pos := c.screen.GetCursor().ToPosition()
	if err := c.clipboard.WriteAll(c.contents.GetContentLine(pos.Y) + "\n"); err != nil {
		c.logger.Log("error", fmt.Sprintf("Could not cut to clipboard: %v", err))
		return nil
	}
	c.contents.DeleteLine(pos.Y)
	c.screen.SetCursorPosition(0, pos.Y)
	c.screen.GetCursor().Clamp(c.contents)
	return nil
}

// paste はクリップボードの内容をカーソル位置に挿入する
func (c *Controller) paste() error {
	text, err := c.clipboard.ReadAll()
	if err != nil {
		c.logger.Log("error", fmt.Sprintf("Could not paste from clipboard: %v", err))
		return nil
	}
	if text == "" {
		return nil
	}
	end := c.contents.InsertText(c.screen.GetCursor().ToPosition(), text)
	c.screen.SetCursorPosition(end.X, end.Y)
	return nil
}

// setStatusMessage はステータスメッセージを設定する
func (c *Controller) setStatusMessage(format string, args ...interface{}) {
	c.tipShown = false
	c.screen.SetMessage(format, args...)
}

// Prompt はメッセージバーでパスの入力を受け付ける
// Tab で補完、Shift+Tab でフィルタ切り替え、Esc と Ctrl+C でキャンセル
func (c *Controller) Prompt(title string, completion *dialog.Completion) (string, error) {
	var input []rune
	c.prompting = true
	defer func() {
		c.prompting = false
		c.promptLine = ""
	}()

	for {
		c.promptLine = completion.Label(title) + string(input)
		if err := c.RefreshScreen(); err != nil {
			c.logger.Log("error", fmt.Sprintf("Failed to refresh screen: %v", err))
		}

		ev, err := c.readEvent()
		if errors.Is(err, parser.ErrUnknownInput) || errors.Is(err, reader.ErrNoInput) {
			continue
		}
		if err != nil {
			return "", err
		}

		switch ev.Type {
		case key.KeyEventChar:
			input = append(input, ev.Rune)
		case key.KeyEventSpecial:
			switch ev.Key {
			case key.KeyEnter:
				return string(input), nil
			case key.KeyBackspace:
				if len(input) > 0 {
					input = input[:len(input)-1]
				}
			case key.KeyTab:
				input = []rune(completion.Complete(string(input)))
			case key.KeyShiftTab:
				completion.NextFilter()
			case key.KeyEsc:
				return "", dialog.ErrCancelled
			}
		case key.KeyEventControl:
			if ev.Key == key.KeyCtrlC {
				return "", dialog.ErrCancelled
			}
		}
	}
}

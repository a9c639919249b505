package command

import "github.com/wasya-io/gw-notepad/app/entity/menu"

type (
	// Command はキー入力1つ分の処理
	Command interface {
		Execute() error
	}

	StandardCommand struct {
		fn func() error
	}

	InsertCharCommand struct {
		char rune
		fn   func(rune) error
	}

	// MenuCommand はショートカットやメニューから実行されるコマンド
	MenuCommand struct {
		id       menu.CommandID
		dispatch func(menu.CommandID) error
	}
)

func NewCommand(execute func() error) StandardCommand {
	return StandardCommand{fn: execute}
}

func (c StandardCommand) Execute() error {
	return c.fn()
}

func NewInsertCharCommand(char rune, execute func(rune) error) InsertCharCommand {
	return InsertCharCommand{char: char, fn: execute}
}

func (c InsertCharCommand) Execute() error {
	return c.fn(c.char)
}

func NewMenuCommand(id menu.CommandID, dispatch func(menu.CommandID) error) MenuCommand {
	return MenuCommand{id: id, dispatch: dispatch}
}

func (c MenuCommand) Execute() error {
	return c.dispatch(c.id)
}

// ID は実行するメニューコマンドを返す
func (c MenuCommand) ID() menu.CommandID {
	return c.id
}

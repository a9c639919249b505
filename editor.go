package main

import (
	"fmt"
	"os"
	"time"

	"github.com/wasya-io/gw-notepad/app/boundary/clipboard"
	"github.com/wasya-io/gw-notepad/app/boundary/dialog"
	"github.com/wasya-io/gw-notepad/app/boundary/filemanager"
	"github.com/wasya-io/gw-notepad/app/boundary/logger"
	"github.com/wasya-io/gw-notepad/app/boundary/provider/input"
	"github.com/wasya-io/gw-notepad/app/boundary/reader"
	"github.com/wasya-io/gw-notepad/app/boundary/writer"
	"github.com/wasya-io/gw-notepad/app/config"
	"github.com/wasya-io/gw-notepad/app/entity/contents"
	"github.com/wasya-io/gw-notepad/app/entity/core/term"
	"github.com/wasya-io/gw-notepad/app/entity/cursor"
	"github.com/wasya-io/gw-notepad/app/entity/event"
	"github.com/wasya-io/gw-notepad/app/entity/screen"
	"github.com/wasya-io/gw-notepad/app/entity/window"
	"github.com/wasya-io/gw-notepad/app/usecase/controller"
	"github.com/wasya-io/gw-notepad/app/usecase/editor"
	"github.com/wasya-io/gw-notepad/app/usecase/parser"
)

// 端末サイズが取れないときの既定値
const (
	fallbackRows = 24
	fallbackCols = 80
)

func NewEditor() (*editor.Editor, error) {
	conf := config.LoadConfig()
	logger := logger.New(conf.DebugMode, conf.LogDir, os.Stderr)

	eventBus := event.NewBus()

	c := contents.NewContents(logger)
	w := window.New(conf.AppName)
	fileManager := filemanager.NewFileManager()

	// インプットプロバイダの初期化
	parser := parser.NewStandardInputParser(logger)
	reader := reader.NewStandardKeyReader(logger)
	inputProvider := input.NewStandardInputProvider(logger, reader, parser)

	screenRows, screenCols, err := term.GetWinSize()
	if err != nil {
		logger.Log("system", fmt.Sprintf("%v, using %dx%d", err, fallbackRows, fallbackCols))
		screenRows, screenCols = fallbackRows, fallbackCols
	}

	builder := contents.NewBuilder()
	writer := writer.NewStandardScreenWriter()
	message := contents.NewMessage(time.Duration(conf.StatusMessageDuration) * time.Second)
	cursor := cursor.NewCursor()
	screen := screen.NewScreen(builder, writer, message, cursor, screenRows, screenCols)

	if clipboard.Unsupported() {
		logger.Log("system", "No clipboard utility found, Cut/Copy/Paste will fail")
	}

	controller := controller.NewController(
		screen,
		c,
		w,
		fileManager,
		clipboard.NewSystemClipboard(),
		inputProvider,
		logger,
		eventBus,
		conf.TabWidth,
	)
	if conf.UseNativeDialog(os.Getenv) {
		controller.UseChooser(dialog.NewNativeChooser())
	}

	return editor.New(
		false,
		conf,
		logger,
		c,
		w,
		screen,
		controller,
		eventBus,
	)
}

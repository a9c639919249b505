package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// AppName はウィンドウタイトルに表示するアプリケーション名
	AppName = "GW NOTEPAD"

	defaultTabWidth              = 4
	defaultStatusMessageDuration = 5
)

// DialogBackend はファイル選択ダイアログの実装を表す
type DialogBackend string

const (
	DialogAuto   DialogBackend = "auto"   // 表示環境があればネイティブ、なければプロンプト
	DialogNative DialogBackend = "native" // OSネイティブのファイル選択ダイアログ
	DialogPrompt DialogBackend = "prompt" // メッセージバー上の入力プロンプト
)

// Config はエディタの設定を保持する構造体
type Config struct {
	AppName               string
	TabWidth              int
	DebugMode             bool
	LogDir                string
	StatusMessageDuration int // ステータスメッセージの表示時間（秒）
	Dialog                DialogBackend
}

// LoadConfig は.envファイルと環境変数から設定を読み込む
func LoadConfig() *Config {
	// .envファイルが無くてもエラーにはしない
	godotenv.Load()

	config := &Config{
		AppName:               AppName,
		TabWidth:              defaultTabWidth,
		DebugMode:             false,
		LogDir:                ".",
		StatusMessageDuration: defaultStatusMessageDuration,
		Dialog:                DialogAuto,
	}

	if tabWidth := os.Getenv("TAB_WIDTH"); tabWidth != "" {
		if width, err := strconv.Atoi(tabWidth); err == nil && width > 0 {
			config.TabWidth = width
		}
	}

	if debug := os.Getenv("DEBUG"); debug != "" {
		config.DebugMode = debug == "true" || debug == "1"
	}

	if dir := os.Getenv("LOG_DIR"); dir != "" {
		config.LogDir = dir
	}

	if duration := os.Getenv("STATUS_MESSAGE_DURATION"); duration != "" {
		if val, err := strconv.Atoi(duration); err == nil && val > 0 {
			config.StatusMessageDuration = val
		}
	}

	switch backend := DialogBackend(strings.ToLower(os.Getenv("DIALOG"))); backend {
	case DialogNative, DialogPrompt:
		config.Dialog = backend
	}

	return config
}

// UseNativeDialog はネイティブのファイル選択ダイアログを使うかどうかを返す
func (c *Config) UseNativeDialog(getenv func(string) string) bool {
	switch c.Dialog {
	case DialogNative:
		return true
	case DialogPrompt:
		return false
	}
	return getenv("DISPLAY") != "" || getenv("WAYLAND_DISPLAY") != ""
}

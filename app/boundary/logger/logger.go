package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// TypeError は診断メッセージとして扱うログ種別
const TypeError = "error"

// LogEntry はログのエントリを表す構造体
type LogEntry struct {
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
	Type      string `json:"type"`
}

// Logger はロギング機能を提供する構造体
//
// デバッグモードでは全エントリをJSONファイルに書き出す。
// "error" 種別のメッセージはデバッグモードに関係なく診断メッセージとして保持し、
// Flush 時にコンソールへ出力する（Rawモード中の画面を壊さないため）。
type Logger struct {
	debugMode   bool
	entries     []LogEntry
	diagnostics []string
	filePath    string
	maxBuffer   int
	startTime   time.Time
	console     io.Writer
}

// New は新しいLoggerインスタンスを作成する
func New(debugMode bool, logDir string, console io.Writer) *Logger {
	startTime := time.Now()
	if logDir == "" {
		logDir = "."
	}
	return &Logger{
		debugMode: debugMode,
		entries:   make([]LogEntry, 0),
		filePath:  filepath.Join(logDir, fmt.Sprintf("log-%s.json", startTime.Format("20060102-150405"))),
		maxBuffer: 100,
		startTime: startTime,
		console:   console,
	}
}

// Log はメッセージをログに記録する
func (l *Logger) Log(messageType string, message string) {
	if messageType == TypeError {
		l.diagnostics = append(l.diagnostics, message)
	}

	if !l.debugMode {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now().Format(time.RFC3339),
		Message:   message,
		Type:      messageType,
	}
	l.entries = append(l.entries, entry)

	// バッファが一定量に達したらファイルにだけ書き出す
	if len(l.entries) >= l.maxBuffer {
		l.flushEntries()
	}
}

// Flush は現在のログエントリをファイルに、診断メッセージをコンソールに書き出す
func (l *Logger) Flush() {
	l.flushEntries()

	if l.console != nil {
		for _, d := range l.diagnostics {
			fmt.Fprintln(l.console, d)
		}
	}
	l.diagnostics = nil
}

// Diagnostics はまだ出力されていない診断メッセージを返す
func (l *Logger) Diagnostics() []string {
	return append([]string{}, l.diagnostics...)
}

// FilePath はデバッグログの出力先を返す
func (l *Logger) FilePath() string {
	return l.filePath
}

func (l *Logger) flushEntries() {
	if len(l.entries) == 0 {
		return
	}

	// 既存のログに追記できるよう、ファイルがあれば読み込んでから書き直す
	all := make([]LogEntry, 0, len(l.entries))
	if data, err := os.ReadFile(l.filePath); err == nil {
		json.Unmarshal(data, &all)
	}
	all = append(all, l.entries...)

	data, err := json.MarshalIndent(all, "", "  ")
	if err == nil {
		os.WriteFile(l.filePath, data, 0644)
	}

	l.entries = []LogEntry{}
}

// event パッケージはアプリケーション内でのイベント処理を定義します。
package event

// EventType はイベントの種類を表す型です。
type EventType string

// 定義済みイベントタイプ
const (
	TypeFile     EventType = "file"     // ファイル操作の結果
	TypeQuit     EventType = "quit"     // 終了イベント
	TypeCommand  EventType = "command"  // コマンド実行イベント
	TypeResponse EventType = "response" // 応答イベント
)

// FileOp はファイル操作の種類です。
type FileOp string

const (
	FileOpen FileOp = "open"
	FileSave FileOp = "save"
)

// Event はアプリケーション内で発生するイベントを表します。
type Event struct {
	Type    EventType   // イベントの種類
	Payload interface{} // イベントデータ
}

// FileEvent はファイル操作の結果を表すペイロードです。
// Err が nil なら成功です。
type FileEvent struct {
	Op   FileOp
	Path string
	Err  error
}

// QuitEvent は終了イベントのペイロードを表します。
type QuitEvent struct{}

// CommandEvent はメニューコマンドの実行を表すペイロードです。
type CommandEvent struct {
	Command string
	Handled bool
}

// ResponseEvent はイベント処理結果のペイロードを表します。
type ResponseEvent struct {
	Success bool   // 成功したかどうか
	Message string // メッセージ
	Error   error  // エラー情報
}

// NewEvent は新しいイベントを作成します。
func NewEvent(eventType EventType, payload interface{}) Event {
	return Event{
		Type:    eventType,
		Payload: payload,
	}
}

// NewFileEvent は新しいファイル操作イベントを作成します。
func NewFileEvent(op FileOp, path string, err error) Event {
	return NewEvent(TypeFile, FileEvent{Op: op, Path: path, Err: err})
}

// NewQuitEvent は新しい終了イベントを作成します。
func NewQuitEvent() Event {
	return NewEvent(TypeQuit, QuitEvent{})
}

// NewCommandEvent は新しいコマンド実行イベントを作成します。
func NewCommandEvent(command string, handled bool) Event {
	return NewEvent(TypeCommand, CommandEvent{Command: command, Handled: handled})
}

// NewResponseEvent は新しい応答イベントを作成します。
func NewResponseEvent(success bool, message string, err error) Event {
	return NewEvent(TypeResponse, ResponseEvent{
		Success: success,
		Message: message,
		Error:   err,
	})
}

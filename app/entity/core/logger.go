package core

//go:generate mockgen -source=logger.go -destination=mock/mock_logger.go

// Logger はアプリケーション全体で使うロガーのインターフェース
// messageType が "error" のものは診断メッセージとして常に記録される
type Logger interface {
	Log(messageType string, message string)
	Flush()
}

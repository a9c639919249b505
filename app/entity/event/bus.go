package event

import (
	"errors"
	"fmt"
)

// ErrBusClosed はシャットダウン後に発行されたイベントへの応答に入るエラーです。
var ErrBusClosed = errors.New("bus is shut down")

// Bus はイベントの発行と購読を管理するイベントバスです。
// ハンドラーは Publish を呼んだゴルーチン上で同期的に呼び出されます。
type Bus struct {
	handlers       map[EventType][]Handler
	defaultHandler Handler
	closed         bool
}

// NewBus は新しいイベントバスを作成します。
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe はイベントタイプに対するハンドラーを登録します。
func (b *Bus) Subscribe(handler Handler) {
	for _, eventType := range handler.GetHandledEventTypes() {
		b.handlers[eventType] = append(b.handlers[eventType], handler)
	}
}

// SetDefaultHandler はどのハンドラーにも処理されなかったイベントを処理するデフォルトハンドラーを設定します。
func (b *Bus) SetDefaultHandler(handler Handler) {
	b.defaultHandler = handler
}

// Publish はイベントをハンドラーに配送し、処理結果を応答イベントとして返します。
func (b *Bus) Publish(event Event) Event {
	if b.closed {
		return NewResponseEvent(false, "", ErrBusClosed)
	}

	var handled bool
	var errs []error

	// 登録されたハンドラーにイベントを配送
	for _, handler := range b.handlers[event.Type] {
		success, err := handler.HandleEvent(event)
		if err != nil {
			errs = append(errs, fmt.Errorf("handler error: %w", err))
		}
		if success {
			handled = true
		}
	}

	// 誰も処理しなかった場合はデフォルトハンドラーに配送
	if !handled && b.defaultHandler != nil {
		b.defaultHandler.HandleEvent(event)
	}

	err := errors.Join(errs...)
	return NewResponseEvent(handled && err == nil, string(event.Type), err)
}

// Shutdown はイベントバスを終了します。以降のイベントは配送されません。
func (b *Bus) Shutdown() {
	b.closed = true
}

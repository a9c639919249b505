package contents

import (
	"fmt"
	"time"
)

type Message interface {
	String() string
	Clear()
	SetMessage(format string, args ...interface{})
	Get() string
	Expired(now time.Time) bool
}

type StandardMessage struct {
	Message     string
	Args        []interface{}
	MessageTime time.Time
	Duration    time.Duration
}

func NewMessage(duration time.Duration) *StandardMessage {
	return &StandardMessage{
		Duration: duration,
	}
}

func (m *StandardMessage) String() string {
	if len(m.Args) == 0 {
		return m.Message
	}
	return fmt.Sprintf(m.Message, m.Args...)
}

func (m *StandardMessage) Clear() {
	m.Message = ""
	m.Args = nil
}

func (m *StandardMessage) SetMessage(format string, args ...interface{}) {
	m.Message = format
	m.Args = append([]interface{}{}, args...)
	m.MessageTime = time.Now()
}

func (m *StandardMessage) Get() string {
	return m.Message
}

// Expired は表示時間を過ぎたかどうかを返す。Durationが0なら期限なし
func (m *StandardMessage) Expired(now time.Time) bool {
	if m.Duration <= 0 {
		return false
	}
	return now.Sub(m.MessageTime) >= m.Duration
}

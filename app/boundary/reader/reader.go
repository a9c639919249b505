package reader

import (
	"errors"
	"fmt"
	"os"

	"github.com/wasya-io/gw-notepad/app/entity/core"
	"golang.org/x/sys/unix"
)

// ErrNoInput は入力が0バイトだったことを表す
var ErrNoInput = errors.New("no input")

type KeyReader interface {
	Read() ([]byte, int, error)
}

type StandardKeyReader struct {
	logger core.Logger
	fd     int
}

func NewStandardKeyReader(logger core.Logger) *StandardKeyReader {
	return &StandardKeyReader{logger: logger, fd: int(os.Stdin.Fd())}
}

// Read は端末から読み取る。raw モードでは VTIME の間に入力がなければ0バイトで戻る
func (kr *StandardKeyReader) Read() ([]byte, int, error) {
	buf := make([]byte, 32)
	n, err := unix.Read(kr.fd, buf)
	if errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN) {
		// シグナルで中断された読み取りは入力なしとして扱う
		return nil, 0, ErrNoInput
	}
	if err != nil {
		kr.logger.Log("error", fmt.Sprintf("stdin read failed: %v", err))
		return nil, 0, fmt.Errorf("input error: %w", err)
	}
	if n == 0 {
		return nil, n, ErrNoInput
	}

	return buf, n, nil
}

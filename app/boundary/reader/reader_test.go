package reader

import (
	"errors"
	"testing"

	"golang.org/x/sys/unix"
)

func pipeReader(t *testing.T) (*StandardKeyReader, int) {
	t.Helper()
	fds := make([]int, 2)
	if err := unix.Pipe(fds); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		unix.Close(fds[0])
	})
	return &StandardKeyReader{fd: fds[0]}, fds[1]
}

func TestStandardKeyReader_Read(t *testing.T) {
	kr, w := pipeReader(t)
	defer unix.Close(w)

	if _, err := unix.Write(w, []byte("ab日")); err != nil {
		t.Fatal(err)
	}

	buf, n, err := kr.Read()
	if err != nil {
		t.Fatal(err)
	}
	if string(buf[:n]) != "ab日" {
		t.Errorf("got %q", buf[:n])
	}
}

func TestStandardKeyReader_NoInput(t *testing.T) {
	kr, w := pipeReader(t)
	unix.Close(w)

	// 0バイトの読み取りはエラーではなく入力なし
	if _, n, err := kr.Read(); !errors.Is(err, ErrNoInput) || n != 0 {
		t.Errorf("Read() = %d, %v, want ErrNoInput", n, err)
	}
}

package writer

import (
	"io"
	"os"
)

//go:generate mockgen -source=writer.go -destination=mock/mock_writer.go

type ScreenWriter interface {
	Write(s string) error
}

type StandardScreenWriter struct {
	out io.Writer
}

func NewStandardScreenWriter() *StandardScreenWriter {
	return &StandardScreenWriter{out: os.Stdout}
}

func (w *StandardScreenWriter) Write(s string) error {
	_, err := io.WriteString(w.out, s)
	return err
}

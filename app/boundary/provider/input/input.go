package input

import (
	"fmt"

	"github.com/wasya-io/gw-notepad/app/boundary/reader"
	"github.com/wasya-io/gw-notepad/app/entity/core"
	"github.com/wasya-io/gw-notepad/app/entity/key"
	"github.com/wasya-io/gw-notepad/app/usecase/parser"
)

//go:generate mockgen -source=input.go -destination=mock/mock_input.go

type Provider interface {
	GetInputEvents() (key.KeyEvent, []key.KeyEvent, error)
}

type StandardInputProvider struct {
	logger core.Logger
	reader reader.KeyReader
	parser parser.InputParser
}

func NewStandardInputProvider(logger core.Logger, reader reader.KeyReader, parser parser.InputParser) *StandardInputProvider {
	return &StandardInputProvider{
		logger: logger,
		reader: reader,
		parser: parser,
	}
}

func (p *StandardInputProvider) GetInputEvents() (key.KeyEvent, []key.KeyEvent, error) {
	buf, n, err := p.reader.Read()
	if err != nil {
		return key.KeyEvent{}, nil, fmt.Errorf("input error: %w", err)
	}
	events, err := p.parser.Parse(buf, n)
	if err != nil {
		p.logger.Log("input", fmt.Sprintf("unparsed input %q: %v", buf[:n], err))
		return key.KeyEvent{}, nil, fmt.Errorf("input error: %w", err)
	}
	return events[0], events[1:], nil
}

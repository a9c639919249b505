package dialog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// PromptChooser はメッセージバーのプロンプトでパスを入力させるChooser
type PromptChooser struct {
	prompter Prompter
}

func NewPromptChooser(prompter Prompter) *PromptChooser {
	return &PromptChooser{prompter: prompter}
}

func (p *PromptChooser) ChooseOpen(title string, filters []Filter) (string, error) {
	return p.choose(title, filters)
}

func (p *PromptChooser) ChooseSave(title string, filters []Filter) (string, error) {
	return p.choose(title, filters)
}

func (p *PromptChooser) choose(title string, filters []Filter) (string, error) {
	path, err := p.prompter.Prompt(title, NewCompletion(filters))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(path) == "" {
		return "", ErrCancelled
	}
	return path, nil
}

// Completion はプロンプト入力中のパス補完とフィルタの切り替えを管理する
type Completion struct {
	filters []Filter
	active  int
	readDir func(name string) ([]os.DirEntry, error)
}

func NewCompletion(filters []Filter) *Completion {
	return &Completion{
		filters: filters,
		readDir: os.ReadDir,
	}
}

// ActiveFilter は現在選択されているフィルタを返す
func (c *Completion) ActiveFilter() (Filter, bool) {
	if len(c.filters) == 0 {
		return Filter{}, false
	}
	return c.filters[c.active], true
}

// NextFilter は次のフィルタに切り替える
func (c *Completion) NextFilter() {
	if len(c.filters) == 0 {
		return
	}
	c.active = (c.active + 1) % len(c.filters)
}

// Label はプロンプトに表示するラベルを返す
func (c *Completion) Label(title string) string {
	if f, ok := c.ActiveFilter(); ok {
		return fmt.Sprintf("%s [%s]: ", title, f)
	}
	return title + ": "
}

// Candidates は入力に続く候補をアクティブなフィルタで絞り込んで返す
// ディレクトリは常に候補に含め、末尾に区切り文字を付ける
func (c *Completion) Candidates(input string) ([]string, error) {
	dir, prefix := filepath.Split(input)
	readFrom := dir
	if readFrom == "" {
		readFrom = "."
	}

	entries, err := c.readDir(readFrom)
	if err != nil {
		return nil, err
	}

	filter, hasFilter := c.ActiveFilter()
	candidates := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(prefix, ".") {
			continue
		}
		if entry.IsDir() {
			candidates = append(candidates, dir+name+string(filepath.Separator))
			continue
		}
		if hasFilter && !filter.Match(name) {
			continue
		}
		candidates = append(candidates, dir+name)
	}
	sort.Strings(candidates)
	return candidates, nil
}

// Complete は候補の共通接頭辞まで入力を補完する
func (c *Completion) Complete(input string) string {
	candidates, err := c.Candidates(input)
	if err != nil || len(candidates) == 0 {
		return input
	}

	common := candidates[0]
	for _, cand := range candidates[1:] {
		common = commonPrefix(common, cand)
	}
	if len(common) < len(input) {
		return input
	}
	return common
}

func commonPrefix(a, b string) string {
	ar, br := []rune(a), []rune(b)
	n := 0
	for n < len(ar) && n < len(br) && ar[n] == br[n] {
		n++
	}
	return string(ar[:n])
}

// IsCancelled はエラーがキャンセルを表すかを返す
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

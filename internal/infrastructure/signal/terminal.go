package signal

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/tint/internal/ports"
)

// Package-level function variables replaced in tests.
var (
	isTerminalFunc        = term.IsTerminal
	hasDarkBackgroundFunc = func(f *os.File) bool {
		return lipgloss.NewRenderer(f).HasDarkBackground()
	}
)

// TerminalSignal asks the terminal for its background colour. It only
// answers when the file is attached to a terminal. The query reads the reply
// from the terminal, so it runs at most once per TerminalSignal and the
// answer is reused.
type TerminalSignal struct {
	file *os.File

	once sync.Once
	dark bool
	ok   bool
}

// NewTerminalSignal queries f, usually os.Stdout.
func NewTerminalSignal(f *os.File) *TerminalSignal {
	return &TerminalSignal{file: f}
}

// PrefersDark implements ports.SystemSignal.
func (s *TerminalSignal) PrefersDark() (bool, bool) {
	if s == nil || s.file == nil {
		return false, false
	}
	s.once.Do(func() {
		if !isTerminalFunc(int(s.file.Fd())) {
			return
		}
		s.dark, s.ok = hasDarkBackgroundFunc(s.file), true
	})
	return s.dark, s.ok
}

// Default combines the environment with the terminal query on stdout.
func Default() ports.SystemSignal {
	return Chain{NewEnvSignal(), NewTerminalSignal(os.Stdout)}
}

var _ ports.SystemSignal = (*TerminalSignal)(nil)

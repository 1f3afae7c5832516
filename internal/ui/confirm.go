package ui

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/babarot/trashcan/internal/trash/core"
	"github.com/babarot/trashcan/internal/ui/components/confirm"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// Prompter asks yes/no questions on the terminal
type Prompter struct {
	in  io.Reader
	out io.Writer

	// typed requires "YES" to be typed in full
	typed bool

	isTerminal func() bool
}

var _ core.Confirmer = (*Prompter)(nil)

type PrompterOption func(*Prompter)

// WithIO replaces stdin and stderr, mostly for tests
func WithIO(in io.Reader, out io.Writer) PrompterOption {
	return func(p *Prompter) {
		p.in = in
		p.out = out
		p.isTerminal = func() bool { return true }
	}
}

// Typed makes the prompt require the whole word instead of a single key
func Typed() PrompterOption {
	return func(p *Prompter) {
		p.typed = true
	}
}

// NewPrompter creates a Prompter reading stdin and drawing on stderr
func NewPrompter(opts ...PrompterOption) *Prompter {
	p := &Prompter{
		in:  os.Stdin,
		out: os.Stderr,
		isTerminal: func() bool {
			fd := os.Stdin.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Confirm shows prompt and waits for the answer. Without a terminal there
// is no one to ask, so nothing irreversible happens.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	if !p.isTerminal() {
		slog.Warn("cannot ask for confirmation, declining", "prompt", prompt)
		fmt.Fprintf(p.out, "%s (declined: stdin is not a terminal, use -f to skip confirmation)\n", prompt)
		return false, nil
	}

	m := confirm.New()
	if p.typed {
		m = confirm.NewTyped()
	}
	m.Prompt = prompt

	prog := tea.NewProgram(&m, tea.WithInput(p.in), tea.WithOutput(p.out))
	if _, err := prog.Run(); err != nil {
		slog.Error("confirm failed", "error", err)
		return false, err
	}

	return m.Selected().IsAccepted(), nil
}

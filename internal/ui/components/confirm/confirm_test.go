package confirm

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m *Model, msgs ...tea.Msg) {
	m.Init()
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func TestImmediate(t *testing.T) {
	tests := []struct {
		name string
		msgs []tea.Msg
		want Decision
	}{
		{"yes", []tea.Msg{runes("y")}, Accepted},
		{"upper yes", []tea.Msg{runes("Y")}, Accepted},
		{"no", []tea.Msg{runes("n")}, Denied},
		{"enter takes default", []tea.Msg{tea.KeyMsg{Type: tea.KeyEnter}}, Denied},
		{"escape", []tea.Msg{tea.KeyMsg{Type: tea.KeyEsc}}, Denied},
		{"other keys are ignored", []tea.Msg{runes("x"), runes("y")}, Accepted},
		{"nothing yet", nil, Undecided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			m.Prompt = "Permanently delete 2 item(s)?"
			send(&m, tt.msgs...)
			if got := m.Selected(); got != tt.want {
				t.Errorf("Selected() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestImmediateView(t *testing.T) {
	m := New()
	m.Prompt = "Delete?"
	m.ShowHelp = false
	send(&m)
	if view := m.View(); !strings.Contains(view, "Delete?") || !strings.Contains(view, "y/N") {
		t.Errorf("unexpected view %q", view)
	}

	m.Update(runes("y"))
	if view := m.View(); !strings.HasSuffix(view, "Delete? y\n") {
		t.Errorf("answered view = %q", view)
	}
}

func TestTyped(t *testing.T) {
	tests := []struct {
		name string
		msgs []tea.Msg
		want Decision
	}{
		{"full word", []tea.Msg{runes("Y"), runes("E"), runes("S"), tea.KeyMsg{Type: tea.KeyEnter}}, Accepted},
		{"single y is not enough", []tea.Msg{runes("y"), tea.KeyMsg{Type: tea.KeyEnter}}, Denied},
		{"wrong letters are dropped", []tea.Msg{runes("Y"), runes("X"), runes("E"), runes("S"), tea.KeyMsg{Type: tea.KeyEnter}}, Accepted},
		{"escape", []tea.Msg{runes("Y"), tea.KeyMsg{Type: tea.KeyEsc}}, Denied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewTyped()
			m.Prompt = "Empty the trash?"
			send(&m, tt.msgs...)
			if got := m.Selected(); got != tt.want {
				t.Errorf("Selected() = %v, want %v", got, tt.want)
			}
		})
	}
}

package confirm

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the key bindings of the prompt
type KeyMap struct {
	Accept key.Binding
	Deny   key.Binding
	Enter  key.Binding
	Cancel key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view. It's part
// of the key.Map interface.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Accept, k.Deny, k.Cancel}
}

// FullHelp returns keybindings for the expanded help view. It's part of the
// key.Map interface.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newKeyMap(m *Model) KeyMap {
	accept := strings.ToLower(m.AcceptedDecisionText[:1])
	deny := strings.ToLower(m.DeniedDecisionText[:1])
	return KeyMap{
		Accept: key.NewBinding(
			key.WithKeys(accept, strings.ToUpper(accept)),
			key.WithHelp(accept, "yes"),
		),
		Deny: key.NewBinding(
			key.WithKeys(deny, strings.ToUpper(deny)),
			key.WithHelp(deny, "no"),
		),
		Enter: key.NewBinding(key.WithKeys(tea.KeyEnter.String())),
		Cancel: key.NewBinding(
			key.WithKeys(tea.KeyEsc.String(), tea.KeyCtrlC.String()),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// placeholder renders "y/N" with the default in upper case
func placeholder(m *Model) string {
	accept, deny := m.AcceptedDecisionText, m.DeniedDecisionText
	switch m.DefaultValue {
	case Accepted:
		accept = strings.ToUpper(accept)
	case Denied:
		deny = strings.ToUpper(deny)
	}
	return accept + "/" + deny
}

func writePrefix(b *strings.Builder, m *Model) {
	if m.PromptPrefix == "" {
		return
	}
	render := m.Styles.PromptPrefix.Inline(true).Render
	b.WriteString(render(m.PromptPrefix))
	if !strings.HasSuffix(m.PromptPrefix, " ") {
		b.WriteString(render(" "))
	}
}

// writeAnswered shows the question together with the answer once decided
func writeAnswered(b *strings.Builder, m *Model) string {
	if m.Prompt != "" {
		render := m.Styles.Prompt.Inline(true).Render
		b.WriteString(render(m.Prompt))
		b.WriteString(render(" "))
	}
	b.WriteString(m.Value())
	b.WriteRune('\n')
	return b.String()
}

// immediateRenderer decides on a single key press
type immediateRenderer struct {
	m      *Model
	keyMap KeyMap
	help   help.Model
}

func (i *immediateRenderer) Init() tea.Cmd {
	i.keyMap = newKeyMap(i.m)
	i.help = help.New()
	return nil
}

func (i *immediateRenderer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		i.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, i.keyMap.Cancel):
			return i.m.decide(Denied)
		case key.Matches(msg, i.keyMap.Accept):
			return i.m.decide(Accepted)
		case key.Matches(msg, i.keyMap.Deny):
			return i.m.decide(Denied)
		case key.Matches(msg, i.keyMap.Enter) && i.m.DefaultValue != Undecided:
			return i.m.decide(i.m.DefaultValue)
		}
	}
	return i.m, nil
}

func (i *immediateRenderer) View() string {
	var b strings.Builder
	writePrefix(&b, i.m)
	if i.m.done {
		return writeAnswered(&b, i.m)
	}

	b.WriteString(i.m.Styles.Prompt.Inline(true).Render(i.m.Prompt))
	b.WriteString(" ")
	b.WriteString(i.m.Styles.Placeholder.Inline(true).Render(placeholder(i.m)))
	if i.m.ShowHelp {
		b.WriteString("\n")
		b.WriteString(i.help.View(i.keyMap))
	}
	return b.String()
}

// typedRenderer only accepts AcceptedDecisionText typed in full
type typedRenderer struct {
	m      *Model
	keyMap KeyMap
	text   textinput.Model
}

func (t *typedRenderer) Init() tea.Cmd {
	t.keyMap = newKeyMap(t.m)

	input := textinput.New()
	input.Placeholder = t.m.AcceptedDecisionText
	input.Prompt = strings.TrimSuffix(t.m.Prompt, " ") + " "
	input.PromptStyle = t.m.Styles.Prompt
	input.PlaceholderStyle = t.m.Styles.Placeholder
	input.TextStyle = t.m.Styles.Text
	input.CharLimit = len(t.m.AcceptedDecisionText)
	input.Focus()
	t.text = input
	return textinput.Blink
}

func (t *typedRenderer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, t.keyMap.Cancel):
			return t.m.decide(Denied)
		case key.Matches(msg, t.keyMap.Enter):
			if t.text.Value() == t.m.AcceptedDecisionText {
				return t.m.decide(Accepted)
			}
			return t.m.decide(Denied)
		case msg.Type == tea.KeyBackspace:
			t.text, cmd = t.text.Update(msg)
		case t.accepts(msg.String()):
			t.text, cmd = t.text.Update(msg)
		}
		return t.m, cmd
	}

	t.text, cmd = t.text.Update(msg)
	return t.m, cmd
}

// accepts only lets through the next character of the accepted text
func (t *typedRenderer) accepts(s string) bool {
	typed := t.text.Value()
	want := t.m.AcceptedDecisionText
	return len(typed) < len(want) && s == want[len(typed):len(typed)+1]
}

func (t *typedRenderer) View() string {
	var b strings.Builder
	writePrefix(&b, t.m)
	if t.m.done {
		return writeAnswered(&b, t.m)
	}

	b.WriteString(t.text.View())
	b.WriteString(" ")
	if t.text.Value() == t.m.AcceptedDecisionText {
		b.WriteString(t.m.Styles.Valid.Render("✓"))
	} else {
		b.WriteString(t.m.Styles.Invalid.Render("✗"))
	}
	return b.String()
}

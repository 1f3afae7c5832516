package confirm

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jimschubert/answer/colors"
)

// Decision is an enumeration of decisions available in the confirmation bubble
type Decision int

const (
	// Undecided indicates the user has not answered yet
	Undecided Decision = iota

	// Accepted indicates a positive response
	Accepted

	// Denied indicates a negative response (or a cancelled prompt)
	Denied
)

// String satisfies the fmt.Stringer interface
func (d Decision) String() string {
	return [...]string{
		"undecided",
		"accepted",
		"denied",
	}[d]
}

// IsAccepted is a helper to indicate the positive confirmation state was selected
func (d Decision) IsAccepted() bool {
	return d == Accepted
}

// Rendering selects how the user answers
type Rendering int

const (
	// ImmediateInput answers on a single key press: Prompt? y/N
	ImmediateInput Rendering = iota

	// TypedInput requires AcceptedDecisionText to be typed exactly and
	// confirmed with enter, for operations that wipe many entries at once
	TypedInput
)

// Styles holds relevant styles used for rendering
type Styles struct {
	PromptPrefix lipgloss.Style
	Prompt       lipgloss.Style
	Text         lipgloss.Style
	Placeholder  lipgloss.Style
	Valid        lipgloss.Style
	Invalid      lipgloss.Style
}

// Model represents the bubble tea model for the confirm bubble
type Model struct {
	// PromptPrefix is displayed before the prompt, separately styled
	PromptPrefix string

	// Prompt is the question shown to the user
	Prompt string

	// AcceptedDecisionText is typed (or its first letter pressed) to accept
	AcceptedDecisionText string

	// DeniedDecisionText is typed (or its first letter pressed) to deny
	DeniedDecisionText string

	// DefaultValue is the decision taken on enter without an answer
	DefaultValue Decision

	Rendering Rendering
	Styles    Styles

	// ShowHelp shows the key bindings below the prompt
	ShowHelp bool

	selected Decision
	renderer tea.Model
	done     bool
}

// New creates a new model with default settings.
func New() Model {
	return Model{
		PromptPrefix:         "? ",
		AcceptedDecisionText: "y",
		DeniedDecisionText:   "n",
		DefaultValue:         Denied,
		Styles: Styles{
			PromptPrefix: lipgloss.NewStyle().Foreground(lipgloss.Color(colors.PromptPrefix)),
			Placeholder:  lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Placeholder)),
			Valid:        lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff00")),
			Invalid:      lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")),
		},
		ShowHelp: true,
	}
}

// NewTyped creates a model that only accepts "YES" typed in full
func NewTyped() Model {
	m := New()
	m.Rendering = TypedInput
	m.AcceptedDecisionText = "YES"
	m.DeniedDecisionText = "no"
	return m
}

// Selected retrieves the user-selected Decision value
func (m *Model) Selected() Decision {
	return m.selected
}

// Value returns the Decision using the texts defined by the caller
func (m *Model) Value() string {
	switch m.selected {
	case Accepted:
		return m.AcceptedDecisionText
	case Denied:
		return m.DeniedDecisionText
	}
	return ""
}

// Init satisfies the tea.Model interface
func (m *Model) Init() tea.Cmd {
	m.selected = Undecided
	m.done = false

	switch m.Rendering {
	case TypedInput:
		m.renderer = &typedRenderer{m: m}
	default:
		m.renderer = &immediateRenderer{m: m}
	}
	return m.renderer.Init()
}

// Update satisfies the tea.Model interface
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.renderer.Update(msg)
}

// View satisfies the tea.Model interface
func (m *Model) View() string {
	return m.renderer.View()
}

// decide records the decision and ends the program
func (m *Model) decide(d Decision) (tea.Model, tea.Cmd) {
	m.selected = d
	m.done = true
	return m, tea.Quit
}

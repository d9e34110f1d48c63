// Package repl is the interactive read loop: each submitted line is
// printed back with its truth table, or with a diagnostic.
package repl

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	Prompt = ">>> "
	Banner = "Welcome to ttbl!\nPress <Ctrl-D> to exit\n"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8B5CF6")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true)
)

// Model is the Bubble Tea model of the read loop.
type Model struct {
	input     textinput.Model
	evaluator Evaluator

	// history holds submitted lines of this session, oldest first
	history      []string
	historyIndex int // -1 while editing a new line
	draft        string

	quitting bool
}

// New creates a read loop model evaluating lines with e.
func New(e Evaluator) Model {
	ti := textinput.New()
	ti.Prompt = Prompt
	ti.PromptStyle = promptStyle
	ti.Placeholder = "p and {q or not r}"
	ti.CharLimit = 4096
	ti.Focus()

	return Model{
		input:        ti,
		evaluator:    e,
		historyIndex: -1,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.Printf("%s", Banner))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyPress(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlD:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyCtrlC:
		// Ctrl+C drops the current line; on an empty line it exits
		if m.input.Value() == "" {
			m.quitting = true
			return m, tea.Quit
		}
		m.input.Reset()
		m.historyIndex = -1
		return m, nil

	case tea.KeyEnter:
		return m.submit()

	case tea.KeyUp:
		m.recall(1)
		return m, nil

	case tea.KeyDown:
		m.recall(-1)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()
	m.historyIndex = -1
	m.draft = ""

	output, _ := m.evaluator.Process(line)
	if output == "" {
		return m, tea.Println(Prompt + line)
	}

	if len(m.history) == 0 || m.history[len(m.history)-1] != line {
		m.history = append(m.history, line)
	}

	return m, tea.Println(Prompt + line + "\n" + output + "\n")
}

// recall moves through history; step 1 goes to older lines.
func (m *Model) recall(step int) {
	if len(m.history) == 0 {
		return
	}

	if m.historyIndex == -1 {
		if step < 0 {
			return
		}
		m.draft = m.input.Value()
	}

	index := m.historyIndex + step
	switch {
	case index < 0:
		m.historyIndex = -1
		m.input.SetValue(m.draft)
	case index >= len(m.history):
		return
	default:
		m.historyIndex = index
		m.input.SetValue(m.history[len(m.history)-1-index])
	}

	m.input.CursorEnd()
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.input.View() + "\n" + hintStyle.Render("enter: evaluate • ↑/↓: history • ctrl+d: quit")
}

// Run starts the read loop on the terminal and blocks until it exits.
func Run(e Evaluator, opts ...tea.ProgramOption) error {
	p := tea.NewProgram(New(e), opts...)
	_, err := p.Run()
	return err
}

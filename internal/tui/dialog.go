// Package tui provides the Bubble Tea error dialog for bings-everyday-wallpaper.
package tui

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// DefaultTitle is shown at the top of the error dialog.
const DefaultTitle = "Bings-everyday-wallpaper panic !"

// ErrNoTerminal is returned by Present when stdin or stderr is not a terminal.
var ErrNoTerminal = errors.New("interactive dialog needs a terminal")

// Styles for the dialog
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8F9FA"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FF6B6B")).
			Padding(1, 2)
)

const (
	maxMessageWidth = 72
	minMessageWidth = 20
)

type keyMap struct {
	Dismiss key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Dismiss}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Dismiss}}
}

var keys = keyMap{
	Dismiss: key.NewBinding(
		key.WithKeys("enter", "esc", "q", "ctrl+c"),
		key.WithHelp("enter", "dismiss"),
	),
}

// Model is the Bubble Tea model of the error dialog.
type Model struct {
	title   string
	message string
	help    help.Model
	width   int
	closed  bool
}

// NewModel creates a dialog model showing message under title.
func NewModel(title, message string) Model {
	return Model{
		title:   title,
		message: message,
		help:    help.New(),
		width:   maxMessageWidth,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width - 8
		if m.width > maxMessageWidth {
			m.width = maxMessageWidth
		}
		if m.width < minMessageWidth {
			m.width = minMessageWidth
		}
		m.help.Width = m.width

	case tea.KeyMsg:
		if key.Matches(msg, keys.Dismiss) {
			m.closed = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the dialog.
func (m Model) View() string {
	if m.closed {
		return ""
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.title),
		"",
		messageStyle.Width(m.width).Render(m.message),
		"",
		m.help.View(keys),
	)
	return boxStyle.Render(body) + "\n"
}

// Dialog presents error messages in a modal terminal dialog.
type Dialog struct {
	title      string
	in         io.Reader
	out        io.Writer
	isTerminal func() bool
}

// NewDialog creates a Dialog reading keys from stdin and drawing on stderr.
func NewDialog(title string) *Dialog {
	return &Dialog{
		title: title,
		in:    os.Stdin,
		out:   os.Stderr,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
		},
	}
}

// Present shows message and blocks until the user dismisses it.
func (d *Dialog) Present(message string) error {
	if !d.isTerminal() {
		return ErrNoTerminal
	}

	p := tea.NewProgram(NewModel(d.title, message), tea.WithInput(d.in), tea.WithOutput(d.out))
	_, err := p.Run()
	return err
}

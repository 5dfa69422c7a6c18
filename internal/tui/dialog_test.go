package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_View(t *testing.T) {
	m := NewModel(DefaultTitle, `network error: fetch metadata "https://cn.bing.com": HTTP 503`)

	view := m.View()

	assert.Contains(t, view, DefaultTitle)
	assert.Contains(t, view, "HTTP 503")
	assert.Contains(t, view, "dismiss")
}

func TestModel_Dismiss(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		quit bool
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, true},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, true},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, true},
		{"other key", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated, cmd := NewModel("t", "m").Update(tt.msg)
			if !tt.quit {
				assert.Nil(t, cmd)
				assert.NotEmpty(t, updated.View())
				return
			}
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
			assert.Empty(t, updated.View())
		})
	}
}

func TestModel_WindowSizeWrapsMessage(t *testing.T) {
	long := strings.Repeat("word ", 40)
	updated, _ := NewModel("t", long).Update(tea.WindowSizeMsg{Width: 40, Height: 20})

	for _, line := range strings.Split(updated.View(), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 40)
	}
}

func TestDialog_Present_NoTerminal(t *testing.T) {
	var out bytes.Buffer
	d := &Dialog{
		title:      DefaultTitle,
		in:         strings.NewReader(""),
		out:        &out,
		isTerminal: func() bool { return false },
	}

	err := d.Present("boom")

	assert.ErrorIs(t, err, ErrNoTerminal)
	assert.Zero(t, out.Len())
}

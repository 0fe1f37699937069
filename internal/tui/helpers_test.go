package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todopoints/internal/app"
	"github.com/runoshun/todopoints/internal/domain"
	"github.com/runoshun/todopoints/internal/testutil"
)

// newTestModel returns a sized Model over an in-memory store, with both screens loaded.
func newTestModel(t *testing.T) (*Model, *app.Container) {
	t.Helper()
	lipgloss.SetColorProfile(termenv.TrueColor)

	values := testutil.NewMemoryValueStore()
	c := app.NewWithDeps(app.Config{Backend: domain.BackendFile}, values, values, nil, nil)

	m := New(c)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	run(t, m, m.loadTasks())
	run(t, m, m.loadCatalog())
	return m, c
}

// run executes cmd and feeds its messages back into the model until none remain.
func run(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	for i := 0; cmd != nil; i++ {
		require.Less(t, i, 10, "command chain did not settle")
		msg := cmd()
		if msg == nil {
			return
		}
		_, cmd = m.Update(msg)
	}
}

// press sends a key to the model and returns the resulting command without running it.
func press(m *Model, k string) tea.Cmd {
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

// typeText types each rune into the focused input.
func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

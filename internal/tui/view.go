package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/todopoints/internal/domain"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeNormal, ModeInput, ModeConfirm, ModeAlert:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the active screen with its dialogs.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n")
	} else if m.notice != "" {
		b.WriteString(m.styles.NoticeMsg.Render(m.notice) + "\n\n")
	}

	var body string
	if m.screen == ScreenStore {
		body = m.viewStore()
	} else {
		body = m.viewTasks()
	}
	b.WriteString(m.styles.Frame.Render(body))

	switch m.mode {
	case ModeNormal, ModeHelp:
	case ModeInput:
		b.WriteString("\n")
		b.WriteString(m.viewInput())
	case ModeConfirm:
		b.WriteString("\n")
		b.WriteString(m.viewConfirmDialog())
	case ModeAlert:
		b.WriteString("\n")
		b.WriteString(m.viewAlert())
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return b.String()
}

// viewHeader renders the screen tabs on the left and the balance on the right.
func (m *Model) viewHeader() string {
	tasksTab := m.styles.Tab.Render("Tasks")
	storeTab := m.styles.Tab.Render("Store")
	if m.screen == ScreenStore {
		storeTab = m.styles.TabActive.Render("Store")
	} else {
		tasksTab = m.styles.TabActive.Render("Tasks")
	}
	left := m.styles.HeaderText.Render("todopoints") + "  " + tasksTab + storeTab

	right := m.styles.Points.Render(fmt.Sprintf("%d points", m.balance))

	headerWidth := m.width - 6
	if headerWidth < 40 {
		headerWidth = 40
	}
	spacing := headerWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}

	return m.styles.Header.Render(left + strings.Repeat(" ", spacing) + right)
}

// viewTasks renders the task screen.
func (m *Model) viewTasks() string {
	var b strings.Builder
	if len(m.tasks) == 0 {
		b.WriteString(m.styles.EmptyMsg.Render("No tasks yet. Press a to add one."))
	} else {
		b.WriteString(m.taskList.View())
	}
	if m.dropped > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Footer.Render(fmt.Sprintf("%d malformed records skipped", m.dropped)))
	}
	return b.String()
}

// viewStore renders the store screen.
func (m *Model) viewStore() string {
	if len(m.items) == 0 {
		return m.styles.EmptyMsg.Render("Loading store...")
	}
	current := "default"
	if it := domain.SelectedItem(m.items); it != nil {
		current = it.ColorName
	}
	theme := m.styles.Footer.Render("Theme: ") +
		lipgloss.NewStyle().Foreground(lipgloss.Color(string(m.theme))).Render(current)
	return m.storeList.View() + "\n\n" + theme
}

// viewConfirmDialog renders the completion or deletion dialog.
func (m *Model) viewConfirmDialog() string {
	var question string
	switch m.confirmAction {
	case ConfirmComplete:
		question = "Have you completed: " + escapeNewlines(m.confirmTask.Text) + "?"
	case ConfirmDelete:
		question = "Delete: " + escapeNewlines(m.confirmTask.Text) + "?"
	case ConfirmNone:
		return ""
	}

	title := m.styles.DialogTitle.Render(question)
	hint := m.styles.DialogPrompt.Render("[y] yes  [n] no")
	content := lipgloss.JoinVertical(lipgloss.Left, title, "", hint)
	return m.styles.Dialog.Render(content)
}

// viewAlert renders an informational dialog.
func (m *Model) viewAlert() string {
	hint := m.styles.DialogPrompt.Render("press any key")
	content := lipgloss.JoinVertical(lipgloss.Left, m.alert, "", hint)
	return m.styles.Alert.Render(content)
}

// viewInput renders the new task input.
func (m *Model) viewInput() string {
	label := m.styles.InputPrompt.Render("New task")
	hint := m.styles.DialogPrompt.Render("enter to add, esc to cancel")
	content := lipgloss.JoinVertical(lipgloss.Left, label, m.input.View(), "", hint)
	return m.styles.Input.Render(content)
}

// viewFooter renders the short help line.
func (m *Model) viewFooter() string {
	if m.screen == ScreenStore {
		return m.help.ShortHelpView(m.keys.storeHelp())
	}
	return m.help.View(m.keys)
}

// viewHelp renders the full help overlay.
func (m *Model) viewHelp() string {
	title := m.styles.DialogTitle.Render("Keys")
	body := m.help.FullHelpView(m.keys.FullHelp())
	rules := m.styles.Footer.Render(fmt.Sprintf(
		"Completing a task earns %d points. Spend them in the store on color themes.",
		domain.PointsPerTask,
	))
	return m.styles.Help.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", rules))
}

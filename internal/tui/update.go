package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/todopoints/internal/domain"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateLayoutSizes()
		return m, nil

	case MsgTasksLoaded:
		m.setTasks(msg.Tasks)
		m.setBalance(msg.Balance)
		m.dropped = msg.Dropped
		return m, nil

	case MsgCatalogLoaded:
		m.setItems(msg.Items)
		m.setBalance(msg.Balance)
		m.setTheme(msg.Theme)
		return m, nil

	case MsgTaskAdded:
		m.setTasks(msg.Tasks)
		if n := len(msg.Tasks); n > 0 {
			m.taskList.Select(n - 1)
		}
		return m, nil

	case MsgConfirmRequested:
		m.mode = ModeConfirm
		m.confirmTask = msg.Task
		m.confirmIndex = msg.Index
		m.confirmAction = ConfirmComplete
		if msg.Action == domain.ActionConfirmDelete {
			m.confirmAction = ConfirmDelete
		}
		return m, nil

	case MsgTaskCompleted:
		m.resetConfirm()
		m.setBalance(msg.Balance)
		if msg.Awarded > 0 {
			m.notice = fmt.Sprintf("+%d points", msg.Awarded)
		}
		return m, m.loadTasks()

	case MsgTaskDeleted:
		m.resetConfirm()
		m.setTasks(msg.Tasks)
		return m, nil

	case MsgItemPurchased:
		m.setBalance(msg.Balance)
		m.notice = fmt.Sprintf("Purchased %s", msg.Item.ColorName)
		return m, m.loadCatalog()

	case MsgItemSelected:
		m.setItems(msg.Items)
		m.setTheme(msg.Theme)
		return m, nil

	case MsgAlert:
		m.mode = ModeAlert
		m.alert = msg.Text
		return m, nil

	case MsgError:
		m.err = msg.Err
		m.resetConfirm()
		return m, nil

	case MsgClearError:
		m.err = nil
		return m, nil
	}

	return m, nil
}

// resetConfirm closes the confirmation dialog.
func (m *Model) resetConfirm() {
	m.mode = ModeNormal
	m.confirmAction = ConfirmNone
	m.confirmTask = domain.Task{}
	m.confirmIndex = 0
}

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c quits from any mode
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeInput:
		return m.handleInputMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeAlert:
		m.mode = ModeNormal
		m.alert = ""
		return m, nil
	case ModeHelp:
		if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Cancel) || key.Matches(msg, m.keys.Quit) {
			m.mode = ModeNormal
		}
		return m, nil
	case ModeNormal:
		return m.handleNormalMode(msg)
	}
	return m, nil
}

// handleNormalMode handles keys in normal mode.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Switch):
		m.screen = m.screen.Next()
		return m, m.resume(m.screen)
	}

	if m.screen == ScreenStore {
		return m.handleStoreKeys(msg)
	}
	return m.handleTaskKeys(msg)
}

func (m *Model) handleTaskKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Add):
		m.mode = ModeInput
		m.input.Reset()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Enter):
		_, index, ok := m.SelectedTask()
		if !ok {
			return m, nil
		}
		return m, m.requestComplete(index)

	case key.Matches(msg, m.keys.Up):
		m.taskList.CursorUp()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.taskList.CursorDown()
		return m, nil
	}
	return m, nil
}

func (m *Model) handleStoreKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		it, ok := m.SelectedStoreItem()
		if !ok || it.Selected {
			return m, nil
		}
		return m, m.activateItem(it)

	case key.Matches(msg, m.keys.Up):
		m.storeList.CursorUp()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.storeList.CursorDown()
		return m, nil
	}
	return m, nil
}

// handleInputMode handles keys while the new task input is focused.
func (m *Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = ModeNormal
		m.input.Blur()
		m.input.Reset()
		return m, nil

	case tea.KeyEnter:
		text := strings.TrimSpace(m.input.Value())
		m.mode = ModeNormal
		m.input.Blur()
		m.input.Reset()
		if text == "" {
			return m, nil
		}
		return m, m.addTask(text)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleConfirmMode handles keys in the confirmation dialog.
func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		index := m.confirmIndex
		action := m.confirmAction
		m.mode = ModeNormal
		switch action {
		case ConfirmComplete:
			return m, m.confirmComplete(index)
		case ConfirmDelete:
			return m, m.confirmDelete(index)
		case ConfirmNone:
		}
		m.resetConfirm()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.resetConfirm()
		return m, nil
	}
	return m, nil
}

package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/todopoints/internal/app"
	"github.com/runoshun/todopoints/internal/domain"
	"github.com/runoshun/todopoints/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	err       error

	// State (slices)
	tasks []domain.Task
	items []domain.StoreItem

	// Components
	keys      KeyMap
	styles    Styles
	help      help.Model
	taskList  list.Model
	storeList list.Model
	input     textinput.Model

	// Dialog state
	confirmTask domain.Task
	alert       string
	notice      string
	theme       domain.Color

	// Numeric state (smaller types last)
	screen        Screen
	mode          Mode
	confirmAction ConfirmAction
	confirmIndex  int
	balance       int
	dropped       int
	width         int
	height        int
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 200

	styles := DefaultStyles().WithTheme(domain.DefaultThemeColor)

	return &Model{
		container: c,
		keys:      DefaultKeyMap(),
		styles:    styles,
		help:      help.New(),
		taskList:  newList(newTaskDelegate(styles)),
		storeList: newList(newStoreDelegate(styles, 0)),
		input:     ti,
		theme:     domain.DefaultThemeColor,
		screen:    ScreenTasks,
		mode:      ModeNormal,
	}
}

func newList(delegate list.ItemDelegate) list.Model {
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return l
}

// Init initializes the model and returns the initial command.
// Both screens are loaded so the header shows the theme from the start.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadTasks(),
		m.loadCatalog(),
	)
}

// loadTasks returns a command that reloads tasks and the balance.
func (m *Model) loadTasks() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.LoadTasksUseCase().Execute(context.Background(), usecase.LoadTasksInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{Tasks: out.Tasks, Balance: out.Balance, Dropped: out.Dropped}
	}
}

// loadCatalog returns a command that reloads the store state and the balance.
func (m *Model) loadCatalog() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.LoadCatalogUseCase().Execute(context.Background(), usecase.LoadCatalogInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgCatalogLoaded{Theme: out.Theme, Items: out.Items, Balance: out.Balance}
	}
}

// resume reloads the state behind the given screen.
func (m *Model) resume(s Screen) tea.Cmd {
	if s == ScreenStore {
		return m.loadCatalog()
	}
	return m.loadTasks()
}

// addTask returns a command that appends a task.
// Empty text is ignored without an error.
func (m *Model) addTask(text string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.AddTaskUseCase().Execute(context.Background(), usecase.AddTaskInput{Text: text})
		if errors.Is(err, domain.ErrEmptyText) {
			return nil
		}
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskAdded{Tasks: out.Tasks}
	}
}

// requestComplete returns a command that asks which confirmation to show.
func (m *Model) requestComplete(index int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.RequestCompleteUseCase().Execute(context.Background(), usecase.RequestCompleteInput{Index: index})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgConfirmRequested{Task: out.Task, Action: out.Action, Index: index}
	}
}

// confirmComplete returns a command that marks the task completed.
func (m *Model) confirmComplete(index int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ConfirmCompleteUseCase().Execute(context.Background(), usecase.ConfirmCompleteInput{Index: index})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskCompleted{Task: out.Task, Awarded: out.Awarded, Balance: out.Balance}
	}
}

// confirmDelete returns a command that removes a completed task.
func (m *Model) confirmDelete(index int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ConfirmDeleteUseCase().Execute(context.Background(), usecase.ConfirmDeleteInput{Index: index})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskDeleted{Tasks: out.Tasks}
	}
}

// activateItem returns a command that buys an unpurchased item or selects a purchased one.
func (m *Model) activateItem(it domain.StoreItem) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if !it.Purchased {
			out, err := m.container.PurchaseItemUseCase().Execute(ctx, usecase.PurchaseItemInput{Name: it.ColorName})
			if errors.Is(err, domain.ErrInsufficientFunds) {
				return MsgAlert{Text: fmt.Sprintf("You don't have enough points to purchase %s.", it.ColorName)}
			}
			if err != nil {
				return MsgError{Err: err}
			}
			return MsgItemPurchased{Item: out.Item, Balance: out.Balance}
		}
		out, err := m.container.SelectItemUseCase().Execute(ctx, usecase.SelectItemInput{Name: it.ColorName})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgItemSelected{Theme: out.Theme, Items: out.Items}
	}
}

// SelectedTask returns the highlighted task and its index, or false if the list is empty.
func (m *Model) SelectedTask() (domain.Task, int, bool) {
	ti, ok := m.taskList.SelectedItem().(taskItem)
	if !ok {
		return domain.Task{}, 0, false
	}
	return ti.task, ti.index, true
}

// SelectedStoreItem returns the highlighted store item, or false if none.
func (m *Model) SelectedStoreItem() (domain.StoreItem, bool) {
	si, ok := m.storeList.SelectedItem().(storeItem)
	if !ok {
		return domain.StoreItem{}, false
	}
	return si.item, true
}

// setTasks replaces the task list, keeping the cursor in range.
func (m *Model) setTasks(tasks []domain.Task) {
	m.tasks = tasks
	cursor := m.taskList.Index()
	m.taskList.SetItems(toTaskItems(tasks))
	if cursor >= len(tasks) {
		cursor = len(tasks) - 1
	}
	if cursor >= 0 {
		m.taskList.Select(cursor)
	}
}

// setItems replaces the catalog rows.
func (m *Model) setItems(items []domain.StoreItem) {
	m.items = items
	cursor := m.storeList.Index()
	m.storeList.SetItems(toStoreItems(items))
	if cursor < len(items) {
		m.storeList.Select(cursor)
	}
}

// setBalance updates the balance shown in the header and the store delegate.
func (m *Model) setBalance(balance int) {
	m.balance = balance
	m.storeList.SetDelegate(newStoreDelegate(m.styles, balance))
}

// setTheme re-tints the styles with the active theme color.
func (m *Model) setTheme(c domain.Color) {
	if c == "" {
		c = domain.DefaultThemeColor
	}
	m.theme = c
	m.styles = DefaultStyles().WithTheme(c)
	m.taskList.SetDelegate(newTaskDelegate(m.styles))
	m.storeList.SetDelegate(newStoreDelegate(m.styles, m.balance))
}

// updateLayoutSizes resizes the lists for the current window.
func (m *Model) updateLayoutSizes() {
	// header, frame border, footer and app padding
	listHeight := m.height - 10
	if listHeight < 3 {
		listHeight = 3
	}
	listWidth := m.width - 8
	if listWidth < 20 {
		listWidth = 20
	}
	m.taskList.SetSize(listWidth, listHeight)
	m.storeList.SetSize(listWidth, listHeight)
	m.input.Width = listWidth - 6
}

// Screen returns the active screen.
func (m *Model) Screen() Screen {
	return m.screen
}

// Mode returns the current UI mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// Balance returns the balance last read from storage.
func (m *Model) Balance() int {
	return m.balance
}

// Theme returns the active theme color.
func (m *Model) Theme() domain.Color {
	return m.theme
}

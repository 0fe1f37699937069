package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/runoshun/todopoints/internal/domain"
)

type taskItem struct {
	task  domain.Task
	index int // 0-based position in the stored list
}

func (t taskItem) FilterValue() string {
	return t.task.Text
}

// escapeNewlines replaces newline characters with spaces for single-line display.
func escapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

type taskDelegate struct {
	styles Styles
}

func newTaskDelegate(styles Styles) taskDelegate {
	return taskDelegate{styles: styles}
}

func (d taskDelegate) Height() int {
	return 1
}

func (d taskDelegate) Spacing() int {
	return 0
}

func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(taskItem)
	if !ok {
		return
	}
	task := ti.task
	selected := index == m.Index()

	indicatorChar := " "
	if selected {
		indicatorChar = ">"
	}

	idxStr := fmt.Sprintf("%3d", ti.index+1)
	statusIcon := StatusIcon(task.Completed)

	const prefixWidth = 10
	listWidth := m.Width()
	maxTitleLen := listWidth - prefixWidth - 2
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}

	title := escapeNewlines(task.Text)
	if runewidth.StringWidth(title) > maxTitleLen {
		title = runewidth.Truncate(title, maxTitleLen-3, "...")
	}

	titleStyle := d.styles.TaskTitle
	if task.Completed {
		titleStyle = d.styles.TaskTitleDone
	}
	indicator := d.styles.SelectionIndicator
	idPart := d.styles.TaskIndex
	iconPart := d.styles.StatusStyle(task.Completed)
	if selected {
		indicator = indicator.Bold(true)
		idPart = idPart.Bold(true)
		iconPart = iconPart.Bold(true)
		titleStyle = titleStyle.Bold(true)
	}

	line := "  " + indicator.Render(indicatorChar) + " " + idPart.Render(idxStr) + "  " +
		iconPart.Render(statusIcon) + " " + titleStyle.Render(title)
	lineWidth := lipgloss.Width(line)
	if lineWidth < listWidth {
		line += strings.Repeat(" ", listWidth-lineWidth)
	}
	_, _ = fmt.Fprint(w, line)
}

type storeItem struct {
	item domain.StoreItem
}

func (s storeItem) FilterValue() string {
	return s.item.ColorName
}

// storeDelegate renders catalog rows. The balance dims items the user cannot afford.
type storeDelegate struct {
	styles  Styles
	balance int
}

func newStoreDelegate(styles Styles, balance int) storeDelegate {
	return storeDelegate{styles: styles, balance: balance}
}

func (d storeDelegate) Height() int {
	return 1
}

func (d storeDelegate) Spacing() int {
	return 0
}

func (d storeDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// nameWidth is the column width of the color name.
const nameWidth = 10

func (d storeDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	si, ok := item.(storeItem)
	if !ok {
		return
	}
	it := si.item
	selected := index == m.Index()

	indicatorChar := " "
	if selected {
		indicatorChar = ">"
	}

	swatch := d.styles.Swatch.Foreground(lipgloss.Color(string(it.ColorCode))).Render("■")
	name := truncate.StringWithTail(it.ColorName, nameWidth, "…")
	name += strings.Repeat(" ", nameWidth-runewidth.StringWidth(name))
	nameStyle := d.styles.ItemName
	if selected {
		nameStyle = nameStyle.Bold(true)
	}

	state := it.State()
	var label string
	switch state {
	case domain.ItemUnpurchased:
		label = d.styles.ItemPrice.Render(fmt.Sprintf("%d pts", it.Price))
		if it.Price > d.balance {
			label = d.styles.ItemAffordNot.Render(fmt.Sprintf("%d pts", it.Price))
		}
	case domain.ItemPurchased, domain.ItemSelected:
		label = d.styles.ItemStateStyle(state).Render(state.String())
	}

	line := "  " + d.styles.SelectionIndicator.Render(indicatorChar) + " " + swatch + " " +
		nameStyle.Render(name) + "  " + label
	lineWidth := lipgloss.Width(line)
	if lineWidth < m.Width() {
		line += strings.Repeat(" ", m.Width()-lineWidth)
	}
	_, _ = fmt.Fprint(w, line)
}

// toTaskItems converts tasks into list items, remembering their positions.
func toTaskItems(tasks []domain.Task) []list.Item {
	items := make([]list.Item, 0, len(tasks))
	for i, t := range tasks {
		items = append(items, taskItem{task: t, index: i})
	}
	return items
}

// toStoreItems converts catalog items into list items.
func toStoreItems(catalog []domain.StoreItem) []list.Item {
	items := make([]list.Item, 0, len(catalog))
	for _, it := range catalog {
		items = append(items, storeItem{item: it})
	}
	return items
}

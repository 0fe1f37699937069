package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/runoshun/todopoints/internal/domain"
)

func renderTask(t *testing.T, task domain.Task, width int) string {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)

	d := newTaskDelegate(DefaultStyles())
	items := []list.Item{taskItem{task: task, index: 2}}
	l := list.New(items, d, width, 5)

	var buf bytes.Buffer
	d.Render(&buf, l, 0, items[0])
	return buf.String()
}

func TestTaskDelegate_Render(t *testing.T) {
	out := renderTask(t, domain.Task{Text: "Buy milk"}, 60)

	assert.Contains(t, out, ">")
	assert.Contains(t, out, "3")
	assert.Contains(t, out, "○")
	assert.Contains(t, out, "Buy milk")
	assert.Equal(t, 60, lipgloss.Width(out))
}

func TestTaskDelegate_RenderCompleted(t *testing.T) {
	out := renderTask(t, domain.Task{Text: "Walk dog", Completed: true}, 60)
	assert.Contains(t, out, "✓")
}

func TestTaskDelegate_TruncatesLongText(t *testing.T) {
	out := renderTask(t, domain.Task{Text: strings.Repeat("long ", 20)}, 30)
	assert.Contains(t, out, "...")
	assert.LessOrEqual(t, lipgloss.Width(out), 30)
}

func TestTaskDelegate_EscapesNewlines(t *testing.T) {
	out := renderTask(t, domain.Task{Text: "line one\nline two"}, 60)
	assert.NotContains(t, out, "\n")
	assert.Contains(t, out, "line one line two")
}

func renderStoreItem(t *testing.T, it domain.StoreItem, balance int) string {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)

	d := newStoreDelegate(DefaultStyles(), balance)
	items := []list.Item{storeItem{item: it}}
	l := list.New(items, d, 50, 5)

	var buf bytes.Buffer
	d.Render(&buf, l, 0, items[0])
	return buf.String()
}

func TestStoreDelegate_Render(t *testing.T) {
	tests := []struct {
		name string
		want string
		item domain.StoreItem
	}{
		{
			name: "unpurchased shows price",
			item: domain.StoreItem{ColorName: "Blue", ColorCode: domain.ColorBlue, Price: 80},
			want: "80 pts",
		},
		{
			name: "purchased offers select",
			item: domain.StoreItem{ColorName: "Red", ColorCode: domain.ColorRed, Price: 50, Purchased: true},
			want: "select",
		},
		{
			name: "selected",
			item: domain.StoreItem{ColorName: "Gold", ColorCode: domain.ColorGold, Price: 200, Purchased: true, Selected: true},
			want: "selected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := renderStoreItem(t, tt.item, 100)
			assert.Contains(t, out, tt.item.ColorName)
			assert.Contains(t, out, tt.want)
			assert.Contains(t, out, "■")
		})
	}
}

func TestToTaskItems_KeepsPositions(t *testing.T) {
	items := toTaskItems([]domain.Task{{Text: "a"}, {Text: "a"}})
	assert.Len(t, items, 2)
	assert.Equal(t, 1, items[1].(taskItem).index)
	assert.Equal(t, "a", items[1].FilterValue())
}

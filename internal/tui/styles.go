package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/todopoints/internal/domain"
)

// Colors defines the fixed color palette for the TUI.
// The theme color bought in the store is applied on top via Styles.WithTheme.
var Colors = struct {
	// Base colors
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color

	// Title/text colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color

	// Task state colors
	Open lipgloss.Color
	Done lipgloss.Color

	// Store state colors
	Price    lipgloss.Color
	Owned    lipgloss.Color
	Selected lipgloss.Color
}{
	Primary: lipgloss.Color("#6C5CE7"), // Purple
	Muted:   lipgloss.Color("#636E72"), // Gray
	Error:   lipgloss.Color("#D63031"), // Red
	Success: lipgloss.Color("#00B894"), // Green
	Warning: lipgloss.Color("#FDCB6E"), // Yellow

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)

	Open: lipgloss.Color("#74B9FF"), // Light blue
	Done: lipgloss.Color("#00B894"), // Green

	Price:    lipgloss.Color("#FDCB6E"),
	Owned:    lipgloss.Color("#A29BFE"),
	Selected: lipgloss.Color("#00B894"),
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App   lipgloss.Style
	Frame lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style
	Points     lipgloss.Style
	Tab        lipgloss.Style
	TabActive  lipgloss.Style

	// Task list
	TaskTitle          lipgloss.Style
	TaskTitleDone      lipgloss.Style
	TaskIndex          lipgloss.Style
	StatusOpen         lipgloss.Style
	StatusDone         lipgloss.Style
	SelectionIndicator lipgloss.Style

	// Store
	Swatch        lipgloss.Style
	ItemName      lipgloss.Style
	ItemPrice     lipgloss.Style
	ItemOwned     lipgloss.Style
	ItemSelected  lipgloss.Style
	ItemAffordNot lipgloss.Style

	// Help
	Help lipgloss.Style

	// Footer
	Footer lipgloss.Style

	// Dialog
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogPrompt lipgloss.Style
	Alert        lipgloss.Style

	// Input
	Input       lipgloss.Style
	InputPrompt lipgloss.Style

	// Messages
	ErrorMsg  lipgloss.Style
	NoticeMsg lipgloss.Style
	EmptyMsg  lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary).
			Padding(0, 1),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		HeaderText: lipgloss.NewStyle().
			Bold(true),

		Points: lipgloss.NewStyle().
			Foreground(Colors.Warning).
			Bold(true),

		Tab: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Padding(0, 1),

		TabActive: lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Padding(0, 1),

		TaskTitle: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		TaskTitleDone: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Strikethrough(true),

		TaskIndex: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		StatusOpen: lipgloss.NewStyle().
			Foreground(Colors.Open),

		StatusDone: lipgloss.NewStyle().
			Foreground(Colors.Done),

		SelectionIndicator: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected),

		Swatch: lipgloss.NewStyle(),

		ItemName: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		ItemPrice: lipgloss.NewStyle().
			Foreground(Colors.Price),

		ItemOwned: lipgloss.NewStyle().
			Foreground(Colors.Owned),

		ItemSelected: lipgloss.NewStyle().
			Foreground(Colors.Selected).
			Bold(true),

		ItemAffordNot: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Help: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Dialog: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		DialogPrompt: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Alert: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Warning),

		Input: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),

		NoticeMsg: lipgloss.NewStyle().
			Foreground(Colors.Success),

		EmptyMsg: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true),
	}
}

// WithTheme returns a copy of the styles tinted with the active theme color.
// The header, the frame border and dialog borders follow the theme.
func (s Styles) WithTheme(c domain.Color) Styles {
	if c == "" {
		c = domain.DefaultThemeColor
	}
	color := lipgloss.Color(string(c))
	s.Header = s.Header.Foreground(color)
	s.Frame = s.Frame.BorderForeground(color)
	s.Dialog = s.Dialog.BorderForeground(color)
	s.DialogTitle = s.DialogTitle.Foreground(color)
	s.Input = s.Input.BorderForeground(color)
	s.InputPrompt = s.InputPrompt.Foreground(color)
	return s
}

// StatusStyle returns the style for a task's completion state.
func (s Styles) StatusStyle(completed bool) lipgloss.Style {
	if completed {
		return s.StatusDone
	}
	return s.StatusOpen
}

// StatusIcon returns an icon for a task's completion state.
func StatusIcon(completed bool) string {
	if completed {
		return "✓"
	}
	return "○"
}

// ItemStateStyle returns the style for a store item's state label.
func (s Styles) ItemStateStyle(state domain.ItemState) lipgloss.Style {
	switch state {
	case domain.ItemSelected:
		return s.ItemSelected
	case domain.ItemPurchased:
		return s.ItemOwned
	case domain.ItemUnpurchased:
		return s.ItemPrice
	}
	return s.ItemName
}

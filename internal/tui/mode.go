// Package tui provides the terminal user interface for todopoints.
package tui

// Screen is one of the two top-level views.
type Screen int

const (
	ScreenTasks Screen = iota // Task list
	ScreenStore               // Color theme store
)

// String returns the string representation of the screen.
func (s Screen) String() string {
	switch s {
	case ScreenTasks:
		return "tasks"
	case ScreenStore:
		return "store"
	}
	return "unknown"
}

// Next returns the screen reached by switching from s.
func (s Screen) Next() Screen {
	if s == ScreenTasks {
		return ScreenStore
	}
	return ScreenTasks
}

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal  Mode = iota // Default navigation mode
	ModeInput               // New task text input
	ModeConfirm             // Confirmation dialog
	ModeAlert               // Informational dialog, any key dismisses
	ModeHelp                // Help overlay
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInput:
		return "input"
	case ModeConfirm:
		return "confirm"
	case ModeAlert:
		return "alert"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	return m == ModeInput
}

// ConfirmAction represents the type of action requiring confirmation.
type ConfirmAction int

const (
	ConfirmNone     ConfirmAction = iota
	ConfirmComplete               // Mark task as completed
	ConfirmDelete                 // Delete completed task
)

// String returns a human-readable description of the action.
func (a ConfirmAction) String() string {
	switch a {
	case ConfirmNone:
		return ""
	case ConfirmComplete:
		return "complete"
	case ConfirmDelete:
		return "delete"
	}
	return ""
}

package tui

import "github.com/runoshun/todopoints/internal/domain"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when the task list is reloaded from storage.
// Fields are ordered to minimize memory padding.
type MsgTasksLoaded struct {
	Tasks   []domain.Task
	Balance int
	Dropped int
}

func (MsgTasksLoaded) sealed() {}

// MsgCatalogLoaded is sent when the store state is reloaded from storage.
type MsgCatalogLoaded struct {
	Theme   domain.Color
	Items   []domain.StoreItem
	Balance int
}

func (MsgCatalogLoaded) sealed() {}

// MsgTaskAdded is sent when a task is appended.
type MsgTaskAdded struct {
	Tasks []domain.Task
}

func (MsgTaskAdded) sealed() {}

// MsgConfirmRequested is sent when an activated task needs a confirmation.
type MsgConfirmRequested struct {
	Task   domain.Task
	Action domain.TaskAction
	Index  int
}

func (MsgConfirmRequested) sealed() {}

// MsgTaskCompleted is sent when a completion is confirmed.
type MsgTaskCompleted struct {
	Task    domain.Task
	Awarded int
	Balance int
}

func (MsgTaskCompleted) sealed() {}

// MsgTaskDeleted is sent when a deletion is confirmed.
type MsgTaskDeleted struct {
	Tasks []domain.Task
}

func (MsgTaskDeleted) sealed() {}

// MsgItemPurchased is sent when a store item is bought.
type MsgItemPurchased struct {
	Item    domain.StoreItem
	Balance int
}

func (MsgItemPurchased) sealed() {}

// MsgItemSelected is sent when a purchased item becomes the theme.
type MsgItemSelected struct {
	Theme domain.Color
	Items []domain.StoreItem
}

func (MsgItemSelected) sealed() {}

// MsgAlert shows an informational dialog.
type MsgAlert struct {
	Text string
}

func (MsgAlert) sealed() {}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgClearError is sent to clear the error message.
type MsgClearError struct{}

func (MsgClearError) sealed() {}

package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/runoshun/todopoints/internal/domain"
	"github.com/runoshun/todopoints/internal/usecase/shared"
)

// ConfirmDeleteInput contains the parameters for ConfirmDelete.
type ConfirmDeleteInput struct {
	Index int  // 0-based position in the list
	Force bool // Delete even if the task is not completed
}

// ConfirmDeleteOutput contains the result of deleting a task.
type ConfirmDeleteOutput struct {
	Tasks []domain.Task // Remaining tasks
	Task  domain.Task   // The removed task
}

// ConfirmDelete removes a task from the list. Points are never deducted.
type ConfirmDelete struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewConfirmDelete creates a new ConfirmDelete use case.
func NewConfirmDelete(tasks domain.TaskRepository, logger domain.Logger) *ConfirmDelete {
	return &ConfirmDelete{tasks: tasks, logger: logger}
}

// Execute removes the task at the given index.
// Open tasks are only deleted with Force.
func (uc *ConfirmDelete) Execute(_ context.Context, in ConfirmDeleteInput) (*ConfirmDeleteOutput, error) {
	tasks, task, err := shared.LoadTaskAt(uc.tasks, in.Index)
	if err != nil {
		return nil, err
	}

	if !task.Completed && !in.Force {
		return nil, fmt.Errorf("cannot delete open task %q: %w", task.Text, domain.ErrInvalidState)
	}

	tasks = slices.Delete(tasks, in.Index, in.Index+1)
	if err := uc.tasks.Save(tasks); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}

	uc.logger.Info("task", fmt.Sprintf("deleted %q", task.Text))

	return &ConfirmDeleteOutput{Tasks: tasks, Task: task}, nil
}

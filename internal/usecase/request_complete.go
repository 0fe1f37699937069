package usecase

import (
	"context"

	"github.com/runoshun/todopoints/internal/domain"
	"github.com/runoshun/todopoints/internal/usecase/shared"
)

// RequestCompleteInput contains the parameters for RequestComplete.
type RequestCompleteInput struct {
	Index int // 0-based position in the list
}

// RequestCompleteOutput tells the caller which confirmation to show.
type RequestCompleteOutput struct {
	Task   domain.Task
	Action domain.TaskAction
}

// RequestComplete decides whether activating a task asks for completion or deletion.
// It never changes state.
type RequestComplete struct {
	tasks domain.TaskRepository
}

// NewRequestComplete creates a new RequestComplete use case.
func NewRequestComplete(tasks domain.TaskRepository) *RequestComplete {
	return &RequestComplete{tasks: tasks}
}

// Execute returns the action for the task at the given index.
func (uc *RequestComplete) Execute(_ context.Context, in RequestCompleteInput) (*RequestCompleteOutput, error) {
	_, task, err := shared.LoadTaskAt(uc.tasks, in.Index)
	if err != nil {
		return nil, err
	}
	return &RequestCompleteOutput{Task: task, Action: task.ActionFor()}, nil
}

// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todopoints/internal/domain"
)

// AddTaskInput contains the parameters for adding a task.
type AddTaskInput struct {
	Text string // Task text (required, trimmed)
}

// AddTaskOutput contains the result of adding a task.
type AddTaskOutput struct {
	Tasks []domain.Task // Full list after the append
	Task  domain.Task   // The created task
	Index int           // Position of the created task
}

// AddTask appends a new task to the end of the list.
type AddTask struct {
	tasks  domain.TaskRepository
	logger domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(tasks domain.TaskRepository, logger domain.Logger) *AddTask {
	return &AddTask{tasks: tasks, logger: logger}
}

// Execute validates the text and persists the extended list.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	task, err := domain.NewTask(in.Text)
	if err != nil {
		return nil, err
	}

	snap, err := uc.tasks.Load()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	tasks := append(snap.Tasks, task)
	if err := uc.tasks.Save(tasks); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}

	uc.logger.Info("task", fmt.Sprintf("added %q", task.Text))

	return &AddTaskOutput{
		Tasks: tasks,
		Task:  task,
		Index: len(tasks) - 1,
	}, nil
}

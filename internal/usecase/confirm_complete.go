package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todopoints/internal/domain"
	"github.com/runoshun/todopoints/internal/usecase/shared"
)

// ConfirmCompleteInput contains the parameters for ConfirmComplete.
type ConfirmCompleteInput struct {
	Index int // 0-based position in the list
}

// ConfirmCompleteOutput contains the result of completing a task.
// Fields are ordered to minimize memory padding.
type ConfirmCompleteOutput struct {
	Task    domain.Task
	Awarded int  // Points awarded by this call; 0 if the task was already completed
	Balance int  // Balance after the call
	Already bool // True if the task was completed before the call
}

// ConfirmComplete marks a task completed and awards points.
// Confirming an already completed task succeeds without a second award.
type ConfirmComplete struct {
	tasks  domain.TaskRepository
	points domain.PointBalance
	logger domain.Logger
}

// NewConfirmComplete creates a new ConfirmComplete use case.
func NewConfirmComplete(tasks domain.TaskRepository, points domain.PointBalance, logger domain.Logger) *ConfirmComplete {
	return &ConfirmComplete{tasks: tasks, points: points, logger: logger}
}

// Execute completes the task at the given index.
func (uc *ConfirmComplete) Execute(_ context.Context, in ConfirmCompleteInput) (*ConfirmCompleteOutput, error) {
	tasks, task, err := shared.LoadTaskAt(uc.tasks, in.Index)
	if err != nil {
		return nil, err
	}

	if task.Completed {
		balance, err := uc.points.Balance()
		if err != nil {
			return nil, fmt.Errorf("read balance: %w", err)
		}
		return &ConfirmCompleteOutput{Task: task, Balance: balance, Already: true}, nil
	}

	task.Completed = true
	tasks[in.Index] = task
	if err := uc.tasks.Save(tasks); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}

	balance, err := uc.points.Award(domain.PointsPerTask)
	if err != nil {
		return nil, fmt.Errorf("award points: %w", err)
	}

	uc.logger.Info("task", fmt.Sprintf("completed %q, balance %d", task.Text, balance))

	return &ConfirmCompleteOutput{
		Task:    task,
		Awarded: domain.PointsPerTask,
		Balance: balance,
	}, nil
}

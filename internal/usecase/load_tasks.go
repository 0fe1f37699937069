package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todopoints/internal/domain"
)

// LoadTasksInput contains the parameters for LoadTasks.
type LoadTasksInput struct{}

// LoadTasksOutput is the reconstructed task list state.
// Fields are ordered to minimize memory padding.
type LoadTasksOutput struct {
	Tasks   []domain.Task
	Balance int
	Dropped int               // Malformed records skipped
	Format  domain.TaskFormat // How the list is stored
}

// LoadTasks reconstructs the task list and point balance from storage.
type LoadTasks struct {
	tasks  domain.TaskRepository
	points domain.PointBalance
	logger domain.Logger
}

// NewLoadTasks creates a new LoadTasks use case.
func NewLoadTasks(tasks domain.TaskRepository, points domain.PointBalance, logger domain.Logger) *LoadTasks {
	return &LoadTasks{tasks: tasks, points: points, logger: logger}
}

// Execute loads tasks and balance.
func (uc *LoadTasks) Execute(_ context.Context, _ LoadTasksInput) (*LoadTasksOutput, error) {
	snap, err := uc.tasks.Load()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	balance, err := uc.points.Balance()
	if err != nil {
		return nil, fmt.Errorf("read balance: %w", err)
	}

	if snap.Dropped > 0 {
		uc.logger.Warn("task", fmt.Sprintf("skipped %d malformed task records", snap.Dropped))
	}

	return &LoadTasksOutput{
		Tasks:   snap.Tasks,
		Balance: balance,
		Dropped: snap.Dropped,
		Format:  snap.Format,
	}, nil
}

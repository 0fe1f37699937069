package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todopoints/internal/domain"
)

// MigrateTasksInput contains parameters for MigrateTasks.
type MigrateTasksInput struct {
	// DryRun reports what would be converted without writing.
	DryRun bool
}

// MigrateTasksOutput contains migration results.
// Fields are ordered to minimize memory padding.
type MigrateTasksOutput struct {
	From      domain.TaskFormat // Format found in storage
	Converted int               // Records written in the ordered format
	Dropped   int               // Malformed legacy records discarded
	Migrated  bool              // True if the stored value was rewritten
}

// MigrateTasks rewrites a legacy task set as an ordered list.
// The set carries no order, so records are kept in lexicographic order.
type MigrateTasks struct {
	tasks     domain.TaskRepository
	storeInit domain.StoreInitializer
	logger    domain.Logger
}

// NewMigrateTasks creates a new MigrateTasks use case.
func NewMigrateTasks(tasks domain.TaskRepository, storeInit domain.StoreInitializer, logger domain.Logger) *MigrateTasks {
	return &MigrateTasks{tasks: tasks, storeInit: storeInit, logger: logger}
}

// Execute converts the stored task list if it is still a legacy set.
// Running it again is a no-op.
func (uc *MigrateTasks) Execute(_ context.Context, in MigrateTasksInput) (*MigrateTasksOutput, error) {
	if err := uc.storeInit.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize store: %w", err)
	}

	snap, err := uc.tasks.Load()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	out := &MigrateTasksOutput{From: snap.Format}
	if snap.Format != domain.TaskFormatLegacySet {
		return out, nil
	}

	out.Converted = len(snap.Tasks)
	out.Dropped = snap.Dropped
	if in.DryRun {
		return out, nil
	}

	if err := uc.tasks.Save(snap.Tasks); err != nil {
		return nil, fmt.Errorf("save migrated tasks: %w", err)
	}
	out.Migrated = true

	uc.logger.Info("migrate", fmt.Sprintf("converted %d task records, dropped %d", out.Converted, out.Dropped))
	return out, nil
}

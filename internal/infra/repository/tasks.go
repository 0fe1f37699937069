// Package repository maps domain aggregates onto namespaced key-value storage.
package repository

import (
	"fmt"

	"github.com/runoshun/todopoints/internal/domain"
)

// TaskRepository implements domain.TaskRepository on the "tasks" namespace.
type TaskRepository struct {
	kv domain.KVStore
}

// NewTaskRepository creates a TaskRepository.
func NewTaskRepository(provider domain.KVProvider) *TaskRepository {
	return &TaskRepository{kv: provider.Namespace(domain.NamespaceTasks)}
}

// Load reads the task list.
// Both the ordered list and the legacy set are accepted; legacy sets come back
// in lexicographic record order because that is all a set can offer.
func (r *TaskRepository) Load() (*domain.TaskSnapshot, error) {
	kind, err := r.kv.Kind(domain.KeyTasks)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	switch kind {
	case domain.KindNone:
		return &domain.TaskSnapshot{Tasks: []domain.Task{}, Format: domain.TaskFormatNone}, nil

	case domain.KindStringList:
		records, _, err := r.kv.GetStringList(domain.KeyTasks)
		if err != nil {
			return nil, fmt.Errorf("load tasks: %w", err)
		}
		tasks, dropped := domain.DecodeTaskList(records)
		return &domain.TaskSnapshot{Tasks: tasks, Format: domain.TaskFormatList, Dropped: dropped}, nil

	case domain.KindStringSet:
		records, _, err := r.kv.GetStringSet(domain.KeyTasks)
		if err != nil {
			return nil, fmt.Errorf("load tasks: %w", err)
		}
		tasks, dropped := domain.DecodeLegacyTaskSet(records)
		return &domain.TaskSnapshot{Tasks: tasks, Format: domain.TaskFormatLegacySet, Dropped: dropped}, nil
	}

	return nil, fmt.Errorf("load tasks: %s: %w", kind, domain.ErrWrongValueKind)
}

// Save writes the whole list in the ordered format.
func (r *TaskRepository) Save(tasks []domain.Task) error {
	if err := r.kv.SetStringList(domain.KeyTasks, domain.EncodeTaskList(tasks)); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}

var _ domain.TaskRepository = (*TaskRepository)(nil)

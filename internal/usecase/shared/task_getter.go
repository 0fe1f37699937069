// Package shared holds helpers used by several use cases.
package shared

import (
	"fmt"

	"github.com/runoshun/todopoints/internal/domain"
)

// LoadTaskAt loads the task list and returns it with the task at index.
// This centralizes the common pattern of:
//
//	snap, err := repo.Load()
//	if err != nil { return fmt.Errorf("load tasks: %w", err) }
//	if index out of range { return domain.ErrTaskNotFound }
func LoadTaskAt(repo domain.TaskRepository, index int) ([]domain.Task, domain.Task, error) {
	snap, err := repo.Load()
	if err != nil {
		return nil, domain.Task{}, fmt.Errorf("load tasks: %w", err)
	}
	if index < 0 || index >= len(snap.Tasks) {
		return nil, domain.Task{}, fmt.Errorf("index %d of %d: %w", index, len(snap.Tasks), domain.ErrTaskNotFound)
	}
	return snap.Tasks, snap.Tasks[index], nil
}

// LookupItem returns the catalog entry for name or domain.ErrItemNotFound.
func LookupItem(name string) (domain.CatalogEntry, error) {
	entry, ok := domain.LookupCatalog(name)
	if !ok {
		return domain.CatalogEntry{}, fmt.Errorf("%q: %w", name, domain.ErrItemNotFound)
	}
	return entry, nil
}

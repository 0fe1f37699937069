package repository

import (
	"fmt"

	"github.com/runoshun/todopoints/internal/domain"
)

// StoreStateRepository implements domain.StoreStateRepository on the "store" namespace.
type StoreStateRepository struct {
	kv domain.KVStore
}

// NewStoreStateRepository creates a StoreStateRepository.
func NewStoreStateRepository(provider domain.KVProvider) *StoreStateRepository {
	return &StoreStateRepository{kv: provider.Namespace(domain.NamespaceStore)}
}

// Load reads the purchased set and the selected item name.
func (r *StoreStateRepository) Load() (*domain.StoreState, error) {
	purchased, _, err := r.kv.GetStringSet(domain.KeyPurchasedItems)
	if err != nil {
		return nil, fmt.Errorf("load purchased items: %w", err)
	}
	selected, _, err := r.kv.GetString(domain.KeySelectedItem)
	if err != nil {
		return nil, fmt.Errorf("load selected item: %w", err)
	}
	return &domain.StoreState{Purchased: purchased, Selected: selected}, nil
}

// SavePurchased replaces the purchased set.
func (r *StoreStateRepository) SavePurchased(names []string) error {
	if err := r.kv.SetStringSet(domain.KeyPurchasedItems, names); err != nil {
		return fmt.Errorf("save purchased items: %w", err)
	}
	return nil
}

// SaveSelected stores the selected item name. An empty name clears the selection.
func (r *StoreStateRepository) SaveSelected(name string) error {
	var err error
	if name == "" {
		err = r.kv.Remove(domain.KeySelectedItem)
	} else {
		err = r.kv.SetString(domain.KeySelectedItem, name)
	}
	if err != nil {
		return fmt.Errorf("save selected item: %w", err)
	}
	return nil
}

var _ domain.StoreStateRepository = (*StoreStateRepository)(nil)

package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todopoints/internal/domain"
)

// LoadCatalogInput contains the parameters for LoadCatalog.
type LoadCatalogInput struct{}

// LoadCatalogOutput is the store as the user sees it.
type LoadCatalogOutput struct {
	Theme   domain.Color
	Items   []domain.StoreItem // Catalog order
	Balance int
}

// LoadCatalog merges persisted purchase state into the fixed catalog.
type LoadCatalog struct {
	state  domain.StoreStateRepository
	points domain.PointBalance
}

// NewLoadCatalog creates a new LoadCatalog use case.
func NewLoadCatalog(state domain.StoreStateRepository, points domain.PointBalance) *LoadCatalog {
	return &LoadCatalog{state: state, points: points}
}

// Execute loads the catalog, the balance and the active theme.
func (uc *LoadCatalog) Execute(_ context.Context, _ LoadCatalogInput) (*LoadCatalogOutput, error) {
	items, err := loadItems(uc.state)
	if err != nil {
		return nil, err
	}

	balance, err := uc.points.Balance()
	if err != nil {
		return nil, fmt.Errorf("read balance: %w", err)
	}

	return &LoadCatalogOutput{
		Theme:   domain.ThemeColor(items),
		Items:   items,
		Balance: balance,
	}, nil
}

func loadItems(state domain.StoreStateRepository) ([]domain.StoreItem, error) {
	st, err := state.Load()
	if err != nil {
		return nil, fmt.Errorf("load store state: %w", err)
	}
	return domain.BuildStoreItems(st.Purchased, st.Selected), nil
}

package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/runoshun/todopoints/internal/domain"
	"github.com/runoshun/todopoints/internal/usecase/shared"
)

// SelectItemInput contains the parameters for SelectItem.
type SelectItemInput struct {
	Name string // Catalog color name
}

// SelectItemOutput contains the result of a selection.
type SelectItemOutput struct {
	Theme domain.Color
	Items []domain.StoreItem
}

// SelectItem makes a purchased item the active theme.
type SelectItem struct {
	state  domain.StoreStateRepository
	logger domain.Logger
}

// NewSelectItem creates a new SelectItem use case.
func NewSelectItem(state domain.StoreStateRepository, logger domain.Logger) *SelectItem {
	return &SelectItem{state: state, logger: logger}
}

// Execute selects the named item. The item must be purchased.
func (uc *SelectItem) Execute(_ context.Context, in SelectItemInput) (*SelectItemOutput, error) {
	entry, err := shared.LookupItem(in.Name)
	if err != nil {
		return nil, err
	}

	st, err := uc.state.Load()
	if err != nil {
		return nil, fmt.Errorf("load store state: %w", err)
	}
	if !slices.Contains(st.Purchased, entry.ColorName) {
		return nil, fmt.Errorf("%s is not purchased: %w", entry.ColorName, domain.ErrInvalidState)
	}

	if st.Selected != entry.ColorName {
		if err := uc.state.SaveSelected(entry.ColorName); err != nil {
			return nil, fmt.Errorf("save selected item: %w", err)
		}
		uc.logger.Info("store", fmt.Sprintf("selected %s", entry.ColorName))
	}

	items := domain.BuildStoreItems(st.Purchased, entry.ColorName)
	return &SelectItemOutput{Theme: domain.ThemeColor(items), Items: items}, nil
}

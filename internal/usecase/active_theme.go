package usecase

import (
	"context"

	"github.com/runoshun/todopoints/internal/domain"
)

// ActiveThemeInput contains the parameters for ActiveTheme.
type ActiveThemeInput struct{}

// ActiveThemeOutput contains the active theme.
type ActiveThemeOutput struct {
	Item  *domain.StoreItem // Selected item, nil for the default theme
	Color domain.Color
}

// ActiveTheme reports the color of the selected item.
type ActiveTheme struct {
	state domain.StoreStateRepository
}

// NewActiveTheme creates a new ActiveTheme use case.
func NewActiveTheme(state domain.StoreStateRepository) *ActiveTheme {
	return &ActiveTheme{state: state}
}

// Execute returns the selected item's color, or the default theme color.
func (uc *ActiveTheme) Execute(_ context.Context, _ ActiveThemeInput) (*ActiveThemeOutput, error) {
	items, err := loadItems(uc.state)
	if err != nil {
		return nil, err
	}
	return &ActiveThemeOutput{
		Item:  domain.SelectedItem(items),
		Color: domain.ThemeColor(items),
	}, nil
}

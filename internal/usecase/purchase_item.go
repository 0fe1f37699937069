package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/runoshun/todopoints/internal/domain"
	"github.com/runoshun/todopoints/internal/usecase/shared"
)

// PurchaseItemInput contains the parameters for PurchaseItem.
type PurchaseItemInput struct {
	Name string // Catalog color name
}

// PurchaseItemOutput contains the result of a purchase.
type PurchaseItemOutput struct {
	Item    domain.StoreItem
	Balance int // Balance after the purchase
}

// PurchaseItem spends points on a catalog item.
type PurchaseItem struct {
	state  domain.StoreStateRepository
	points domain.PointBalance
	logger domain.Logger
}

// NewPurchaseItem creates a new PurchaseItem use case.
func NewPurchaseItem(state domain.StoreStateRepository, points domain.PointBalance, logger domain.Logger) *PurchaseItem {
	return &PurchaseItem{state: state, points: points, logger: logger}
}

// Execute buys the named item.
// Nothing changes if the item is unknown, already owned, or unaffordable.
func (uc *PurchaseItem) Execute(_ context.Context, in PurchaseItemInput) (*PurchaseItemOutput, error) {
	entry, err := shared.LookupItem(in.Name)
	if err != nil {
		return nil, err
	}

	st, err := uc.state.Load()
	if err != nil {
		return nil, fmt.Errorf("load store state: %w", err)
	}
	if slices.Contains(st.Purchased, entry.ColorName) {
		return nil, fmt.Errorf("%s is already purchased: %w", entry.ColorName, domain.ErrInvalidState)
	}

	balance, err := uc.points.Spend(entry.Price)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			uc.logger.Debug("store", fmt.Sprintf("cannot afford %s (%d), balance %d", entry.ColorName, entry.Price, balance))
			return nil, err
		}
		return nil, fmt.Errorf("spend points: %w", err)
	}

	purchased := append(st.Purchased, entry.ColorName)
	if err := uc.state.SavePurchased(purchased); err != nil {
		// Give the points back so the balance matches what is owned
		if _, refundErr := uc.points.Award(entry.Price); refundErr != nil {
			uc.logger.Error("store", fmt.Sprintf("refund %d points failed: %v", entry.Price, refundErr))
		}
		return nil, fmt.Errorf("save purchased items: %w", err)
	}

	uc.logger.Info("store", fmt.Sprintf("purchased %s for %d, balance %d", entry.ColorName, entry.Price, balance))

	return &PurchaseItemOutput{
		Item: domain.StoreItem{
			ColorName: entry.ColorName,
			ColorCode: entry.ColorCode,
			Price:     entry.Price,
			Purchased: true,
			Selected:  st.Selected == entry.ColorName,
		},
		Balance: balance,
	}, nil
}

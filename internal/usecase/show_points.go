package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todopoints/internal/domain"
)

// ShowPointsInput contains the parameters for ShowPoints.
type ShowPointsInput struct{}

// ShowPointsOutput contains the balance.
type ShowPointsOutput struct {
	Balance int
}

// ShowPoints reads the point balance.
type ShowPoints struct {
	points domain.PointBalance
}

// NewShowPoints creates a new ShowPoints use case.
func NewShowPoints(points domain.PointBalance) *ShowPoints {
	return &ShowPoints{points: points}
}

// Execute returns the current balance.
func (uc *ShowPoints) Execute(_ context.Context, _ ShowPointsInput) (*ShowPointsOutput, error) {
	balance, err := uc.points.Balance()
	if err != nil {
		return nil, fmt.Errorf("read balance: %w", err)
	}
	return &ShowPointsOutput{Balance: balance}, nil
}

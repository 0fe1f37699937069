package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todopoints/internal/domain"
)

// InitStoreInput contains the input parameters for InitStore.
type InitStoreInput struct {
	Location string // Where the store lives, for reporting
}

// InitStoreOutput contains the output from InitStore.
type InitStoreOutput struct {
	Location string
}

// InitStore prepares the storage backend.
// It is safe to run on an existing store.
type InitStore struct {
	storeInit domain.StoreInitializer
	logger    domain.Logger
}

// NewInitStore creates a new InitStore use case.
func NewInitStore(storeInit domain.StoreInitializer, logger domain.Logger) *InitStore {
	return &InitStore{storeInit: storeInit, logger: logger}
}

// Execute initializes the store.
func (uc *InitStore) Execute(_ context.Context, in InitStoreInput) (*InitStoreOutput, error) {
	if err := uc.storeInit.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize store: %w", err)
	}
	uc.logger.Info("init", "store ready at "+in.Location)
	return &InitStoreOutput{Location: in.Location}, nil
}

package repository

import (
	"fmt"
	"sync"

	"github.com/runoshun/todopoints/internal/domain"
)

// PointBalance implements domain.PointBalance.
// The balance lives under tasks/points, next to the task list that earns it.
type PointBalance struct {
	kv domain.KVStore
	mu sync.Mutex
}

// NewPointBalance creates a PointBalance.
func NewPointBalance(provider domain.KVProvider) *PointBalance {
	return &PointBalance{kv: provider.Namespace(domain.NamespaceTasks)}
}

// Balance returns the current balance. A missing key means zero.
func (p *PointBalance) Balance() (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.read()
}

// Award adds points and returns the new balance.
func (p *PointBalance) Award(points int) (int, error) {
	if points < 0 {
		return 0, domain.ErrNegativeAmount
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	current, err := p.read()
	if err != nil {
		return 0, err
	}
	next := current + points
	if err := p.kv.SetInt(domain.KeyPoints, next); err != nil {
		return current, fmt.Errorf("award points: %w", err)
	}
	return next, nil
}

// Spend deducts points and returns the new balance.
func (p *PointBalance) Spend(points int) (int, error) {
	if points < 0 {
		return 0, domain.ErrNegativeAmount
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	current, err := p.read()
	if err != nil {
		return 0, err
	}
	if current < points {
		return current, fmt.Errorf("need %d, have %d: %w", points, current, domain.ErrInsufficientFunds)
	}
	next := current - points
	if err := p.kv.SetInt(domain.KeyPoints, next); err != nil {
		return current, fmt.Errorf("spend points: %w", err)
	}
	return next, nil
}

func (p *PointBalance) read() (int, error) {
	n, _, err := p.kv.GetInt(domain.KeyPoints)
	if err != nil {
		return 0, fmt.Errorf("read points: %w", err)
	}
	return n, nil
}

var _ domain.PointBalance = (*PointBalance)(nil)

package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/HailNail/MindArc/internal/domain/entities"
	"github.com/HailNail/MindArc/internal/domain/repositories"
)

type OrderRepositoryMemory struct {
	mu     sync.RWMutex
	orders map[string]*entities.Order
}

func NewOrderRepositoryMemory() *OrderRepositoryMemory {
	return &OrderRepositoryMemory{
		orders: make(map[string]*entities.Order),
	}
}

func (r *OrderRepositoryMemory) Create(_ context.Context, order *entities.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[order.ID]; exists {
		return repositories.ErrAlreadyExists
	}

	orderCopy := *order
	r.orders[order.ID] = &orderCopy
	return nil
}

func (r *OrderRepositoryMemory) GetByID(_ context.Context, id string) (*entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, exists := r.orders[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	orderCopy := *order
	return &orderCopy, nil
}

func (r *OrderRepositoryMemory) Update(_ context.Context, order *entities.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[order.ID]; !exists {
		return repositories.ErrNotFound
	}

	orderCopy := *order
	r.orders[order.ID] = &orderCopy
	return nil
}

func (r *OrderRepositoryMemory) List(_ context.Context, userID string, skip, limit int64) ([]entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]entities.Order, 0, len(r.orders))
	for _, order := range r.orders {
		if userID == "" || order.UserID == userID {
			orders = append(orders, *order)
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	if skip >= int64(len(orders)) {
		return nil, nil
	}
	orders = orders[skip:]
	if limit > 0 && limit < int64(len(orders)) {
		orders = orders[:limit]
	}
	return orders, nil
}

func (r *OrderRepositoryMemory) Count(_ context.Context, userID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if userID == "" {
		return int64(len(r.orders)), nil
	}
	count := int64(0)
	for _, order := range r.orders {
		if order.UserID == userID {
			count++
		}
	}
	return count, nil
}

package repositories

import (
	"context"

	"github.com/HailNail/MindArc/internal/domain/entities"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entities.Order) error
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	Update(ctx context.Context, order *entities.Order) error
	// List returns orders newest first. An empty userID lists orders
	// across all users.
	List(ctx context.Context, userID string, skip, limit int64) ([]entities.Order, error)
	Count(ctx context.Context, userID string) (int64, error)
}

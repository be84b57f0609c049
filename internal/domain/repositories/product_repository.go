package repositories

import (
	"context"

	"github.com/HailNail/MindArc/internal/domain/entities"
)

// ProductFilter narrows a catalog listing. Zero values mean "no
// constraint". MaxPrice of zero disables the price bound.
type ProductFilter struct {
	CategoryIDs []string
	MinPrice    float64
	MaxPrice    float64
}

type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) error
	GetByID(ctx context.Context, id string) (*entities.Product, error)
	Update(ctx context.Context, product *entities.Product) error
	Delete(ctx context.Context, id string) error
	// Search matches the keyword as a case-insensitive substring of the
	// product name, newest first. It returns the page and the total
	// number of matches.
	Search(ctx context.Context, keyword string, skip, limit int64) ([]entities.Product, int64, error)
	List(ctx context.Context) ([]entities.Product, error)
	TopRated(ctx context.Context, limit int64) ([]entities.Product, error)
	Newest(ctx context.Context, limit int64) ([]entities.Product, error)
	Filter(ctx context.Context, filter ProductFilter) ([]entities.Product, error)
	Count(ctx context.Context) (int64, error)
	CountByCategory(ctx context.Context, categoryID string) (int64, error)
}

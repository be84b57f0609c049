package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/HailNail/MindArc/internal/domain/entities"
	"github.com/HailNail/MindArc/internal/domain/repositories"
)

type ProductRepositoryMemory struct {
	mu       sync.RWMutex
	products map[string]*entities.Product
}

func NewProductRepositoryMemory() *ProductRepositoryMemory {
	return &ProductRepositoryMemory{
		products: make(map[string]*entities.Product),
	}
}

func (r *ProductRepositoryMemory) Create(_ context.Context, product *entities.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[product.ID]; exists {
		return repositories.ErrAlreadyExists
	}

	productCopy := *product
	r.products[product.ID] = &productCopy
	return nil
}

func (r *ProductRepositoryMemory) GetByID(_ context.Context, id string) (*entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, exists := r.products[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	productCopy := *product
	return &productCopy, nil
}

func (r *ProductRepositoryMemory) Update(_ context.Context, product *entities.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[product.ID]; !exists {
		return repositories.ErrNotFound
	}

	productCopy := *product
	r.products[product.ID] = &productCopy
	return nil
}

func (r *ProductRepositoryMemory) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *ProductRepositoryMemory) Search(_ context.Context, keyword string, skip, limit int64) ([]entities.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := r.sortedNewestFirst(func(p *entities.Product) bool {
		return keyword == "" || strings.Contains(strings.ToLower(p.Name), strings.ToLower(keyword))
	})
	total := int64(len(matched))

	return paginate(matched, skip, limit), total, nil
}

func (r *ProductRepositoryMemory) List(_ context.Context) ([]entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNewestFirst(nil), nil
}

func (r *ProductRepositoryMemory) TopRated(_ context.Context, limit int64) ([]entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := r.sortedNewestFirst(nil)
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Rating > products[j].Rating
	})
	return paginate(products, 0, limit), nil
}

func (r *ProductRepositoryMemory) Newest(_ context.Context, limit int64) ([]entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return paginate(r.sortedNewestFirst(nil), 0, limit), nil
}

func (r *ProductRepositoryMemory) Filter(_ context.Context, filter repositories.ProductFilter) ([]entities.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNewestFirst(func(p *entities.Product) bool {
		if len(filter.CategoryIDs) > 0 && !contains(filter.CategoryIDs, p.CategoryID) {
			return false
		}
		if filter.MaxPrice > 0 && (p.Price < filter.MinPrice || p.Price > filter.MaxPrice) {
			return false
		}
		return true
	}), nil
}

func (r *ProductRepositoryMemory) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.products)), nil
}

func (r *ProductRepositoryMemory) CountByCategory(_ context.Context, categoryID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := int64(0)
	for _, product := range r.products {
		if product.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (r *ProductRepositoryMemory) sortedNewestFirst(keep func(*entities.Product) bool) []entities.Product {
	products := make([]entities.Product, 0, len(r.products))
	for _, product := range r.products {
		if keep == nil || keep(product) {
			products = append(products, *product)
		}
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products
}

func paginate(products []entities.Product, skip, limit int64) []entities.Product {
	if skip >= int64(len(products)) {
		return nil
	}
	products = products[skip:]
	if limit > 0 && limit < int64(len(products)) {
		products = products[:limit]
	}
	return products
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/HailNail/MindArc/internal/domain/entities"
	"github.com/HailNail/MindArc/internal/domain/repositories"
)

type CategoryRepositoryMemory struct {
	mu         sync.RWMutex
	categories map[string]*entities.Category
}

func NewCategoryRepositoryMemory() *CategoryRepositoryMemory {
	return &CategoryRepositoryMemory{
		categories: make(map[string]*entities.Category),
	}
}

func (r *CategoryRepositoryMemory) Create(_ context.Context, category *entities.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.categories[category.ID]; exists {
		return repositories.ErrAlreadyExists
	}
	for _, existing := range r.categories {
		if existing.Name == category.Name {
			return repositories.ErrAlreadyExists
		}
	}

	categoryCopy := *category
	r.categories[category.ID] = &categoryCopy
	return nil
}

func (r *CategoryRepositoryMemory) GetByID(_ context.Context, id string) (*entities.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category, exists := r.categories[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	categoryCopy := *category
	return &categoryCopy, nil
}

func (r *CategoryRepositoryMemory) GetByName(_ context.Context, name string) (*entities.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, category := range r.categories {
		if category.Name == name {
			categoryCopy := *category
			return &categoryCopy, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *CategoryRepositoryMemory) Update(_ context.Context, category *entities.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.categories[category.ID]; !exists {
		return repositories.ErrNotFound
	}

	categoryCopy := *category
	r.categories[category.ID] = &categoryCopy
	return nil
}

func (r *CategoryRepositoryMemory) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.categories[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(r.categories, id)
	return nil
}

func (r *CategoryRepositoryMemory) List(_ context.Context) ([]entities.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]entities.Category, 0, len(r.categories))
	for _, category := range r.categories {
		categories = append(categories, *category)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}

package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/HailNail/MindArc/internal/domain/entities"
	"github.com/HailNail/MindArc/internal/domain/repositories"
	"github.com/HailNail/MindArc/internal/infrastructure/memory"
)

func newCatalogFixture(t *testing.T) (*CatalogUseCase, *memory.CategoryRepositoryMemory, *memory.ProductRepositoryMemory) {
	t.Helper()
	categoryRepo := memory.NewCategoryRepositoryMemory()
	productRepo := memory.NewProductRepositoryMemory()
	return NewCatalogUseCase(categoryRepo, productRepo), categoryRepo, productRepo
}

func seedProduct(t *testing.T, repo *memory.ProductRepositoryMemory, id, name, categoryID string, createdAt time.Time) {
	t.Helper()
	err := repo.Create(context.Background(), &entities.Product{
		ID:         id,
		Name:       name,
		Brand:      "Acme",
		CategoryID: categoryID,
		Price:      10,
		CreatedAt:  createdAt,
	})
	assert.NoError(t, err)
}

func TestCatalogUseCase_CreateCategory(t *testing.T) {
	useCase, _, _ := newCatalogFixture(t)

	category, err := useCase.CreateCategory(context.Background(), "Lamps")
	assert.NoError(t, err)
	assert.NotEmpty(t, category.ID)
	assert.Equal(t, "Lamps", category.Name)
}

func TestCatalogUseCase_CreateCategory_Duplicate(t *testing.T) {
	useCase, _, _ := newCatalogFixture(t)
	ctx := context.Background()

	_, err := useCase.CreateCategory(ctx, "Lamps")
	assert.NoError(t, err)

	_, err = useCase.CreateCategory(ctx, "Lamps")
	assert.ErrorIs(t, err, ErrCategoryExists)
}

func TestCatalogUseCase_CreateCategory_NameRequired(t *testing.T) {
	useCase, _, _ := newCatalogFixture(t)

	_, err := useCase.CreateCategory(context.Background(), "")
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestCatalogUseCase_DeleteCategory_InUse(t *testing.T) {
	useCase, _, productRepo := newCatalogFixture(t)
	ctx := context.Background()

	category, err := useCase.CreateCategory(ctx, "Lamps")
	assert.NoError(t, err)

	seedProduct(t, productRepo, "prod-1", "Desk Lamp", category.ID, time.Now())

	_, err = useCase.DeleteCategory(ctx, category.ID)
	assert.ErrorIs(t, err, ErrCategoryInUse)

	// The category survives the refused delete.
	kept, err := useCase.GetCategory(ctx, category.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Lamps", kept.Name)
}

func TestCatalogUseCase_DeleteCategory(t *testing.T) {
	useCase, _, _ := newCatalogFixture(t)
	ctx := context.Background()

	category, err := useCase.CreateCategory(ctx, "Lamps")
	assert.NoError(t, err)

	deleted, err := useCase.DeleteCategory(ctx, category.ID)
	assert.NoError(t, err)
	assert.Equal(t, category.ID, deleted.ID)
	assert.Equal(t, "Lamps", deleted.Name)

	_, err = useCase.GetCategory(ctx, category.ID)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCatalogUseCase_DeleteCategory_NotFound(t *testing.T) {
	useCase, _, _ := newCatalogFixture(t)

	_, err := useCase.DeleteCategory(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCatalogUseCase_ListCategories_WithCounts(t *testing.T) {
	useCase, _, productRepo := newCatalogFixture(t)
	ctx := context.Background()

	lamps, err := useCase.CreateCategory(ctx, "Lamps")
	assert.NoError(t, err)
	_, err = useCase.CreateCategory(ctx, "Chairs")
	assert.NoError(t, err)

	seedProduct(t, productRepo, "prod-1", "Desk Lamp", lamps.ID, time.Now())
	seedProduct(t, productRepo, "prod-2", "Floor Lamp", lamps.ID, time.Now())

	categories, err := useCase.ListCategories(ctx)
	assert.NoError(t, err)
	assert.Len(t, categories, 2)

	counts := make(map[string]int64)
	for _, c := range categories {
		counts[c.Name] = c.ProductCount
	}
	assert.Equal(t, int64(2), counts["Lamps"])
	assert.Equal(t, int64(0), counts["Chairs"])
}

func TestCatalogUseCase_CreateProduct_MissingFields(t *testing.T) {
	useCase, _, _ := newCatalogFixture(t)

	_, err := useCase.CreateProduct(context.Background(), ProductInput{
		Name:        "Desk Lamp",
		Description: "warm light",
		// Brand and CategoryID missing.
	})
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestCatalogUseCase_UpdateProduct_KeepsImageWhenOmitted(t *testing.T) {
	useCase, _, productRepo := newCatalogFixture(t)
	ctx := context.Background()

	assert.NoError(t, productRepo.Create(ctx, &entities.Product{
		ID:          "prod-1",
		Name:        "Desk Lamp",
		Image:       "https://cdn.example.com/lamp.jpg",
		Brand:       "Acme",
		CategoryID:  "cat-1",
		Description: "warm light",
		Price:       25,
	}))

	updated, err := useCase.UpdateProduct(ctx, "prod-1", ProductInput{
		Name:        "Desk Lamp v2",
		Brand:       "Acme",
		CategoryID:  "cat-1",
		Description: "warmer light",
		Price:       30,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Desk Lamp v2", updated.Name)
	assert.Equal(t, "https://cdn.example.com/lamp.jpg", updated.Image)
}

func TestCatalogUseCase_SearchProducts_Pagination(t *testing.T) {
	useCase, _, productRepo := newCatalogFixture(t)
	ctx := context.Background()

	base := time.Now()
	for i := 0; i < 8; i++ {
		seedProduct(t, productRepo, fmt.Sprintf("prod-%02d", i), fmt.Sprintf("Lamp %02d", i), "cat-1", base.Add(time.Duration(i)*time.Minute))
	}
	seedProduct(t, productRepo, "prod-chair", "Chair", "cat-2", base)

	page, err := useCase.SearchProducts(ctx, "lamp", 1)
	assert.NoError(t, err)
	assert.Len(t, page.Products, 6)
	assert.Equal(t, int64(1), page.Page)
	assert.Equal(t, int64(2), page.Pages)
	assert.True(t, page.HasMore)
	// Newest first.
	assert.Equal(t, "Lamp 07", page.Products[0].Name)

	page, err = useCase.SearchProducts(ctx, "lamp", 2)
	assert.NoError(t, err)
	assert.Len(t, page.Products, 2)
	assert.False(t, page.HasMore)
}

func TestCatalogUseCase_SearchProducts_EmptyKeywordMatchesAll(t *testing.T) {
	useCase, _, productRepo := newCatalogFixture(t)

	seedProduct(t, productRepo, "prod-1", "Desk Lamp", "cat-1", time.Now())

	page, err := useCase.SearchProducts(context.Background(), "", 0)
	assert.NoError(t, err)
	assert.Len(t, page.Products, 1)
	assert.Equal(t, int64(1), page.Page)
}

func TestCatalogUseCase_TopAndNewProducts(t *testing.T) {
	useCase, _, productRepo := newCatalogFixture(t)
	ctx := context.Background()

	base := time.Now()
	for i := 0; i < 7; i++ {
		product := &entities.Product{
			ID:         fmt.Sprintf("prod-%d", i),
			Name:       fmt.Sprintf("Lamp %d", i),
			Brand:      "Acme",
			CategoryID: "cat-1",
			Rating:     float64(i),
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}
		assert.NoError(t, productRepo.Create(ctx, product))
	}

	top, err := useCase.TopProducts(ctx)
	assert.NoError(t, err)
	assert.Len(t, top, 4)
	assert.Equal(t, "Lamp 6", top[0].Name)

	newest, err := useCase.NewProducts(ctx)
	assert.NoError(t, err)
	assert.Len(t, newest, 5)
	assert.Equal(t, "Lamp 6", newest[0].Name)
	assert.Equal(t, "Lamp 2", newest[4].Name)
}

func TestCatalogUseCase_FilterProducts(t *testing.T) {
	useCase, _, productRepo := newCatalogFixture(t)
	ctx := context.Background()

	assert.NoError(t, productRepo.Create(ctx, &entities.Product{ID: "prod-1", Name: "Cheap Lamp", CategoryID: "cat-1", Price: 15}))
	assert.NoError(t, productRepo.Create(ctx, &entities.Product{ID: "prod-2", Name: "Pricey Lamp", CategoryID: "cat-1", Price: 250}))
	assert.NoError(t, productRepo.Create(ctx, &entities.Product{ID: "prod-3", Name: "Chair", CategoryID: "cat-2", Price: 40}))

	products, err := useCase.FilterProducts(ctx, repositories.ProductFilter{
		CategoryIDs: []string{"cat-1"},
		MinPrice:    10,
		MaxPrice:    100,
	})
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "Cheap Lamp", products[0].Name)
}

func TestCatalogUseCase_AddReview(t *testing.T) {
	useCase, _, productRepo := newCatalogFixture(t)
	ctx := context.Background()

	assert.NoError(t, productRepo.Create(ctx, &entities.Product{
		ID: "prod-1", Name: "Desk Lamp", Brand: "Acme", CategoryID: "cat-1",
	}))

	product, err := useCase.AddReview(ctx, "prod-1", "user123", "maru", 4, "nice glow")
	assert.NoError(t, err)
	assert.Len(t, product.Reviews, 1)
	assert.Equal(t, 1, product.NumReviews)
	assert.Equal(t, 4.0, product.Rating)

	// Repeat reviews from the same user are counted again.
	product, err = useCase.AddReview(ctx, "prod-1", "user123", "maru", 2, "dimmer than expected")
	assert.NoError(t, err)
	assert.Len(t, product.Reviews, 2)
	assert.Equal(t, 2, product.NumReviews)
	assert.Equal(t, 3.0, product.Rating)
}

func TestCatalogUseCase_AddReview_InvalidRating(t *testing.T) {
	useCase, _, productRepo := newCatalogFixture(t)
	ctx := context.Background()

	assert.NoError(t, productRepo.Create(ctx, &entities.Product{ID: "prod-1", Name: "Desk Lamp"}))

	_, err := useCase.AddReview(ctx, "prod-1", "user123", "maru", 0, "")
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = useCase.AddReview(ctx, "prod-1", "user123", "maru", 6, "")
	assert.ErrorIs(t, err, ErrInvalidRating)
}

func TestCatalogUseCase_AddReview_UnknownProduct(t *testing.T) {
	useCase, _, _ := newCatalogFixture(t)

	_, err := useCase.AddReview(context.Background(), "ghost", "user123", "maru", 5, "")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

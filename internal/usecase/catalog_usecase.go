package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/HailNail/MindArc/internal/domain/entities"
	"github.com/HailNail/MindArc/internal/domain/repositories"
)

const searchPageSize = 6

// CatalogUseCase manages categories, products and their embedded
// reviews.
type CatalogUseCase struct {
	categoryRepo repositories.CategoryRepository
	productRepo  repositories.ProductRepository
}

func NewCatalogUseCase(categoryRepo repositories.CategoryRepository, productRepo repositories.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

func (uc *CatalogUseCase) CreateCategory(ctx context.Context, name string) (*entities.Category, error) {
	if name == "" {
		return nil, ErrNameRequired
	}

	_, err := uc.categoryRepo.GetByName(ctx, name)
	if err == nil {
		return nil, ErrCategoryExists
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up category: %w", err)
	}

	category := &entities.Category{
		ID:   uuid.New().String(),
		Name: name,
	}
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repositories.ErrAlreadyExists) {
			return nil, ErrCategoryExists
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

func (uc *CatalogUseCase) UpdateCategory(ctx context.Context, categoryID, name string) (*entities.Category, error) {
	category, err := uc.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	if name != "" {
		category.Name = name
	}
	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

// DeleteCategory refuses while any product still references the
// category.
func (uc *CatalogUseCase) DeleteCategory(ctx context.Context, categoryID string) (*entities.Category, error) {
	category, err := uc.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	inUse, err := uc.productRepo.CountByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to count products in category: %w", err)
	}
	if inUse > 0 {
		return nil, ErrCategoryInUse
	}

	if err := uc.categoryRepo.Delete(ctx, categoryID); err != nil {
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}
	return category, nil
}

func (uc *CatalogUseCase) GetCategory(ctx context.Context, categoryID string) (*entities.Category, error) {
	category, err := uc.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

// ListCategories returns every category with its product count.
func (uc *CatalogUseCase) ListCategories(ctx context.Context) ([]entities.CategoryWithCount, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	result := make([]entities.CategoryWithCount, len(categories))
	for i, category := range categories {
		count, err := uc.productRepo.CountByCategory(ctx, category.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count products in category: %w", err)
		}
		result[i] = entities.CategoryWithCount{Category: category, ProductCount: count}
	}
	return result, nil
}

// ProductInput carries the admin-editable product fields.
type ProductInput struct {
	Name         string
	Image        string
	Brand        string
	Quantity     int
	CategoryID   string
	Description  string
	Price        float64
	CountInStock int
}

func (in ProductInput) validate() error {
	if in.Name == "" || in.Brand == "" || in.Description == "" || in.CategoryID == "" {
		return ErrMissingFields
	}
	if in.Price < 0 || in.CountInStock < 0 {
		return ErrMissingFields
	}
	return nil
}

func (uc *CatalogUseCase) CreateProduct(ctx context.Context, in ProductInput) (*entities.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entities.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Image:        in.Image,
		Brand:        in.Brand,
		Quantity:     in.Quantity,
		CategoryID:   in.CategoryID,
		Description:  in.Description,
		Reviews:      []entities.Review{},
		Price:        in.Price,
		CountInStock: in.CountInStock,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

func (uc *CatalogUseCase) UpdateProduct(ctx context.Context, productID string, in ProductInput) (*entities.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	product.Name = in.Name
	product.Brand = in.Brand
	product.Quantity = in.Quantity
	product.CategoryID = in.CategoryID
	product.Description = in.Description
	product.Price = in.Price
	product.CountInStock = in.CountInStock
	if in.Image != "" {
		product.Image = in.Image
	}
	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

func (uc *CatalogUseCase) DeleteProduct(ctx context.Context, productID string) (*entities.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if err := uc.productRepo.Delete(ctx, productID); err != nil {
		return nil, fmt.Errorf("failed to delete product: %w", err)
	}
	return product, nil
}

func (uc *CatalogUseCase) GetProduct(ctx context.Context, productID string) (*entities.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

// ProductPage is one page of a storefront keyword search.
type ProductPage struct {
	Products []entities.Product
	Page     int64
	Pages    int64
	HasMore  bool
}

func (uc *CatalogUseCase) SearchProducts(ctx context.Context, keyword string, page int64) (*ProductPage, error) {
	if page < 1 {
		page = 1
	}
	skip := searchPageSize * (page - 1)

	products, total, err := uc.productRepo.Search(ctx, keyword, skip, searchPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	pages := (total + searchPageSize - 1) / searchPageSize
	return &ProductPage{
		Products: products,
		Page:     page,
		Pages:    pages,
		HasMore:  page < pages,
	}, nil
}

// ListAllProducts is the admin inventory listing, newest first.
func (uc *CatalogUseCase) ListAllProducts(ctx context.Context) ([]entities.Product, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (uc *CatalogUseCase) TopProducts(ctx context.Context) ([]entities.Product, error) {
	products, err := uc.productRepo.TopRated(ctx, 4)
	if err != nil {
		return nil, fmt.Errorf("failed to list top products: %w", err)
	}
	return products, nil
}

func (uc *CatalogUseCase) NewProducts(ctx context.Context) ([]entities.Product, error) {
	products, err := uc.productRepo.Newest(ctx, 5)
	if err != nil {
		return nil, fmt.Errorf("failed to list new products: %w", err)
	}
	return products, nil
}

func (uc *CatalogUseCase) FilterProducts(ctx context.Context, filter repositories.ProductFilter) ([]entities.Product, error) {
	products, err := uc.productRepo.Filter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to filter products: %w", err)
	}
	return products, nil
}

func (uc *CatalogUseCase) CountProducts(ctx context.Context) (int64, error) {
	count, err := uc.productRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// AddReview appends a review to the product and recomputes the
// aggregate rating. Repeat reviews from the same user are accepted.
func (uc *CatalogUseCase) AddReview(ctx context.Context, productID, userID, username string, rating int, comment string) (*entities.Product, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	product.Reviews = append(product.Reviews, entities.Review{
		ID:        uuid.New().String(),
		Name:      username,
		Rating:    rating,
		Comment:   comment,
		UserID:    userID,
		CreatedAt: time.Now(),
	})
	product.RecalculateRating()
	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to save review: %w", err)
	}
	return product, nil
}

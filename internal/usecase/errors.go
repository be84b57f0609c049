package usecase

import "errors"

var (
	ErrEmptyItems         = errors.New("no order items")
	ErrInvalidItem        = errors.New("invalid item")
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("user already exists")
	ErrMissingFields      = errors.New("please fill all the inputs")
	ErrNameRequired       = errors.New("name is required")
	ErrCategoryExists     = errors.New("category already exists")
	ErrCategoryInUse      = errors.New("cannot delete category because it is assigned to one or more products")
	ErrInvalidRating      = errors.New("rating must be between 1 and 5")
	ErrAdminUndeletable   = errors.New("cannot delete admin user")
)

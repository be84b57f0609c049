package entities

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CategoryWithCount augments a category with the number of products
// currently assigned to it, for the admin listing.
type CategoryWithCount struct {
	Category
	ProductCount int64 `json:"productCount"`
}

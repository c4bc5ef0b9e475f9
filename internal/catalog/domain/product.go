package domain

// CategoryID tags a product with the category it is listed under.
type CategoryID string

// AllCategories selects the whole catalog.
const AllCategories CategoryID = "all"

type Category struct {
	ID   CategoryID
	Name string
}

type Product struct {
	ID          int64
	Name        string
	Price       int64
	Category    CategoryID
	Image       string
	Description string
}

package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is the fixed product list and its category table. It is built once
// and never mutated; accessors hand out copies.
type Catalog struct {
	products   []Product
	categories []Category
	names      map[CategoryID]string
}

func NewCatalog(products []Product, categories []Category) (Catalog, error) {
	names := make(map[CategoryID]string, len(categories))
	for i, c := range categories {
		if strings.TrimSpace(string(c.ID)) == "" {
			return Catalog{}, fmt.Errorf("%w: category %d has empty id", ErrInvalidCatalog, i)
		}
		if _, dup := names[c.ID]; dup {
			return Catalog{}, fmt.Errorf("%w: duplicate category %q", ErrInvalidCatalog, c.ID)
		}
		names[c.ID] = c.Name
	}

	seen := make(map[int64]struct{}, len(products))
	for _, p := range products {
		if p.ID <= 0 {
			return Catalog{}, fmt.Errorf("%w: product id must be positive, got %d", ErrInvalidCatalog, p.ID)
		}
		if _, dup := seen[p.ID]; dup {
			return Catalog{}, fmt.Errorf("%w: duplicate product id %d", ErrInvalidCatalog, p.ID)
		}
		seen[p.ID] = struct{}{}

		if strings.TrimSpace(p.Name) == "" {
			return Catalog{}, fmt.Errorf("%w: product %d has empty name", ErrInvalidCatalog, p.ID)
		}
		if p.Price < 0 {
			return Catalog{}, fmt.Errorf("%w: product %d has negative price %d", ErrInvalidCatalog, p.ID, p.Price)
		}
		if _, ok := names[p.Category]; !ok || p.Category == AllCategories {
			return Catalog{}, fmt.Errorf("%w: product %d has unknown category %q", ErrInvalidCatalog, p.ID, p.Category)
		}
	}

	return Catalog{
		products:   append([]Product(nil), products...),
		categories: append([]Category(nil), categories...),
		names:      names,
	}, nil
}

func (c Catalog) Products() []Product {
	return append([]Product(nil), c.products...)
}

func (c Catalog) Categories() []Category {
	return append([]Category(nil), c.categories...)
}

func (c Catalog) Product(id int64) (Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// CategoryName returns the display label for id.
func (c Catalog) CategoryName(id CategoryID) (string, bool) {
	name, ok := c.names[id]
	return name, ok
}

// Visible applies VisibleProducts to the catalog.
func (c Catalog) Visible(selected CategoryID) []Product {
	return VisibleProducts(c.products, selected)
}

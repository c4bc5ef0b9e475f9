package domain

// VisibleProducts returns the products listed under selected, in catalog
// order. AllCategories returns everything. An id that matches no product
// yields an empty slice rather than an error.
//
// The result never aliases products.
func VisibleProducts(products []Product, selected CategoryID) []Product {
	if selected == AllCategories {
		out := make([]Product, len(products))
		copy(out, products)
		return out
	}

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Category == selected {
			out = append(out, p)
		}
	}
	return out
}

package domain

import (
	cart "github.com/dwikikusuma/storefront/internal/cart/domain"
	catalog "github.com/dwikikusuma/storefront/internal/catalog/domain"
)

// PreviewLines is how many cart lines the summary shows before collapsing
// the rest into a count.
const PreviewLines = 3

// View is everything the presentation layer reads for one render.
type View struct {
	Selected   catalog.CategoryID
	Categories []catalog.Category
	Products   []catalog.Product
	Cart       cart.Cart
	Currency   string
}

func (v View) TotalItems() int {
	return v.Cart.TotalItems()
}

func (v View) TotalPrice() int64 {
	return v.Cart.TotalPrice()
}

func (v View) TotalPriceDisplay() string {
	return catalog.FormatPrice(v.Cart.TotalPrice(), v.Currency)
}

// Preview returns the summary lines and the number of lines not shown.
func (v View) Preview() ([]cart.CartItem, int) {
	return v.Cart.Preview(PreviewLines)
}

package domain

import (
	catalog "github.com/dwikikusuma/storefront/internal/catalog/domain"
)

type CartItem struct {
	catalog.Product
	Quantity int
}

func (i CartItem) LineTotal() int64 {
	return i.Price * int64(i.Quantity)
}

// Cart holds at most one item per product id, in the order products were
// first added. The zero value is an empty cart. Methods never modify the
// receiver.
type Cart struct {
	items []CartItem
}

// Add returns a cart with p added: the quantity of an existing line goes up
// by one, otherwise a new line with quantity 1 is appended.
func (c Cart) Add(p catalog.Product) Cart {
	items := make([]CartItem, len(c.items), len(c.items)+1)
	copy(items, c.items)

	for i := range items {
		if items[i].ID == p.ID {
			items[i].Quantity++
			return Cart{items: items}
		}
	}

	return Cart{items: append(items, CartItem{Product: p, Quantity: 1})}
}

func (c Cart) Items() []CartItem {
	return append([]CartItem(nil), c.items...)
}

func (c Cart) Len() int {
	return len(c.items)
}

func (c Cart) Item(productID int64) (CartItem, bool) {
	for _, it := range c.items {
		if it.ID == productID {
			return it, true
		}
	}
	return CartItem{}, false
}

func (c Cart) TotalItems() int {
	var total int
	for _, it := range c.items {
		total += it.Quantity
	}
	return total
}

func (c Cart) TotalPrice() int64 {
	var total int64
	for _, it := range c.items {
		total += it.LineTotal()
	}
	return total
}

// Preview returns the first n lines and how many lines were left out.
func (c Cart) Preview(n int) ([]CartItem, int) {
	if n < 0 {
		n = 0
	}
	if n >= len(c.items) {
		return c.Items(), 0
	}
	return append([]CartItem(nil), c.items[:n]...), len(c.items) - n
}

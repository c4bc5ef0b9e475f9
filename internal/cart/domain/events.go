package domain

import "time"

// ItemAdded records one successful add-to-cart.
type ItemAdded struct {
	ProductID  int64     `json:"product_id"`
	Quantity   int       `json:"quantity"`
	TotalItems int       `json:"total_items"`
	TotalPrice int64     `json:"total_price"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewItemAdded(c Cart, productID int64, at time.Time) ItemAdded {
	it, _ := c.Item(productID)
	return ItemAdded{
		ProductID:  productID,
		Quantity:   it.Quantity,
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
		OccurredAt: at.UTC(),
	}
}

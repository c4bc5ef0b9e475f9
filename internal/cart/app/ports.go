package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
	catalog "github.com/dwikikusuma/storefront/internal/catalog/domain"
)

// CartRepo owns the session cart. Update applies fn atomically with respect
// to other updates.
type CartRepo interface {
	Get(ctx context.Context) (domain.Cart, error)
	Update(ctx context.Context, fn func(domain.Cart) domain.Cart) (domain.Cart, error)
}

type ProductReader interface {
	GetProduct(ctx context.Context, productID int64) (catalog.Product, error)
}

type EventPublisher interface {
	PublishItemAdded(ctx context.Context, ev domain.ItemAdded) error
}

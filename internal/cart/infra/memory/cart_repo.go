package memory

import (
	"context"
	"sync"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
)

// CartRepo keeps the session cart in process memory. Updates are serialised
// by a mutex so concurrent adds are never lost.
type CartRepo struct {
	mu   sync.RWMutex
	cart domain.Cart
}

func NewCartRepo() *CartRepo {
	return &CartRepo{}
}

func (r *CartRepo) Get(ctx context.Context) (domain.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.cart, nil
}

func (r *CartRepo) Update(ctx context.Context, fn func(domain.Cart) domain.Cart) (domain.Cart, error) {
	if err := ctx.Err(); err != nil {
		return domain.Cart{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.cart = fn(r.cart)
	return r.cart, nil
}

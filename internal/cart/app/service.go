package app

import (
	"context"
	"fmt"
	"time"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/rs/zerolog"
)

type Service struct {
	repo     CartRepo
	products ProductReader
	events   EventPublisher
	log      zerolog.Logger
	now      func() time.Time
}

type Option func(*Service)

func WithEvents(p EventPublisher) Option {
	return func(s *Service) { s.events = p }
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Service) { s.log = l }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo CartRepo, products ProductReader, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		products: products,
		log:      zerolog.Nop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) GetCart(ctx context.Context) (domain.Cart, error) {
	return s.repo.Get(ctx)
}

// AddToCart resolves productID against the catalog and adds one unit of it.
// Event publication is best-effort and never fails the add.
func (s *Service) AddToCart(ctx context.Context, productID int64) (domain.Cart, error) {
	p, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("lookup product %d: %w", productID, err)
	}

	cart, err := s.repo.Update(ctx, func(c domain.Cart) domain.Cart {
		return c.Add(p)
	})
	if err != nil {
		return domain.Cart{}, err
	}

	if s.events != nil {
		ev := domain.NewItemAdded(cart, p.ID, s.now())
		if err := s.events.PublishItemAdded(ctx, ev); err != nil {
			s.log.Warn().Err(err).Int64("product_id", p.ID).Msg("publish item added failed")
		}
	}

	s.log.Debug().
		Int64("product_id", p.ID).
		Int("total_items", cart.TotalItems()).
		Int64("total_price", cart.TotalPrice()).
		Msg("item added to cart")

	return cart, nil
}

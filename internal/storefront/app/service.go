package app

import (
	"context"
	"strings"
	"sync"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	catalog "github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/dwikikusuma/storefront/internal/storefront/domain"
	"github.com/rs/zerolog"
)

// Service is the single session: the selected category and the cart.
type Service struct {
	catalog  *catalogapp.Service
	cart     *cartapp.Service
	currency string
	log      zerolog.Logger

	mu       sync.RWMutex
	selected catalog.CategoryID
}

func NewService(catalogSvc *catalogapp.Service, cartSvc *cartapp.Service, currency string, log zerolog.Logger) *Service {
	if currency == "" {
		currency = catalog.DefaultCurrency
	}
	return &Service{
		catalog:  catalogSvc,
		cart:     cartSvc,
		currency: currency,
		log:      log,
		selected: catalog.AllCategories,
	}
}

func (s *Service) Selected() catalog.CategoryID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// SelectCategory changes the filter. Unknown ids are accepted and simply
// show no products; an empty id resets to all.
func (s *Service) SelectCategory(ctx context.Context, id catalog.CategoryID) (domain.View, error) {
	id = catalog.CategoryID(strings.TrimSpace(string(id)))
	if id == "" {
		id = catalog.AllCategories
	}

	if _, known, err := s.catalog.CategoryName(ctx, id); err != nil {
		return domain.View{}, err
	} else if !known {
		s.log.Debug().Str("category", string(id)).Msg("unknown category selected")
	}

	s.mu.Lock()
	s.selected = id
	s.mu.Unlock()

	return s.View(ctx)
}

func (s *Service) AddToCart(ctx context.Context, productID int64) (domain.View, error) {
	if _, err := s.cart.AddToCart(ctx, productID); err != nil {
		return domain.View{}, err
	}
	return s.View(ctx)
}

func (s *Service) View(ctx context.Context) (domain.View, error) {
	selected := s.Selected()

	categories, err := s.catalog.ListCategories(ctx)
	if err != nil {
		return domain.View{}, err
	}
	products, err := s.catalog.ListProducts(ctx, selected)
	if err != nil {
		return domain.View{}, err
	}
	c, err := s.cart.GetCart(ctx)
	if err != nil {
		return domain.View{}, err
	}

	return domain.View{
		Selected:   selected,
		Categories: categories,
		Products:   products,
		Cart:       c,
		Currency:   s.currency,
	}, nil
}

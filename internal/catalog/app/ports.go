package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
)

type ProductRepo interface {
	Catalog(ctx context.Context) (domain.Catalog, error)
}

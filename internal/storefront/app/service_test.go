package app_test

import (
	"context"
	"testing"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	"github.com/dwikikusuma/storefront/internal/cart/infra/adapter"
	cartmem "github.com/dwikikusuma/storefront/internal/cart/infra/memory"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	catalog "github.com/dwikikusuma/storefront/internal/catalog/domain"
	catalogmem "github.com/dwikikusuma/storefront/internal/catalog/infra/memory"
	"github.com/dwikikusuma/storefront/internal/storefront/app"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T) *app.Service {
	t.Helper()
	repo, err := catalogmem.NewProductRepo()
	require.NoError(t, err)

	catalogSvc := catalogapp.NewService(repo)
	cartSvc := cartapp.NewService(cartmem.NewCartRepo(), adapter.NewCatalogServiceReader(catalogSvc))
	return app.NewService(catalogSvc, cartSvc, repo.Currency(), zerolog.Nop())
}

func TestView_Initial(t *testing.T) {
	svc := newSession(t)

	v, err := svc.View(context.Background())
	require.NoError(t, err)

	assert.Equal(t, catalog.AllCategories, v.Selected)
	assert.Len(t, v.Categories, 4)
	assert.Len(t, v.Products, 6)
	assert.Equal(t, 0, v.TotalItems())
	assert.Equal(t, "0.00 RUB", v.TotalPriceDisplay())
}

func TestSelectCategory(t *testing.T) {
	svc := newSession(t)
	ctx := context.Background()

	v, err := svc.SelectCategory(ctx, "fashion")
	require.NoError(t, err)
	assert.Equal(t, catalog.CategoryID("fashion"), v.Selected)
	require.Len(t, v.Products, 2)
	for _, p := range v.Products {
		assert.Equal(t, catalog.CategoryID("fashion"), p.Category)
	}

	v, err = svc.SelectCategory(ctx, "garden")
	require.NoError(t, err)
	assert.Equal(t, catalog.CategoryID("garden"), v.Selected)
	assert.Empty(t, v.Products)

	v, err = svc.SelectCategory(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, catalog.AllCategories, v.Selected)
	assert.Len(t, v.Products, 6)
}

func TestAddToCart_KeepsSelection(t *testing.T) {
	svc := newSession(t)
	ctx := context.Background()

	_, err := svc.SelectCategory(ctx, "home")
	require.NoError(t, err)

	_, err = svc.AddToCart(ctx, 1)
	require.NoError(t, err)
	v, err := svc.AddToCart(ctx, 3)
	require.NoError(t, err)

	assert.Equal(t, catalog.CategoryID("home"), v.Selected)
	assert.Len(t, v.Products, 2)
	assert.Equal(t, 2, v.TotalItems())
	assert.Equal(t, int64(21980), v.TotalPrice())
	assert.Equal(t, "219.80 RUB", v.TotalPriceDisplay())
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	svc := newSession(t)

	_, err := svc.AddToCart(context.Background(), 99)

	assert.ErrorIs(t, err, catalogapp.ErrNotFound)
}

func TestView_Preview(t *testing.T) {
	svc := newSession(t)
	ctx := context.Background()

	for _, id := range []int64{1, 2, 3, 4, 5} {
		_, err := svc.AddToCart(ctx, id)
		require.NoError(t, err)
	}

	v, err := svc.View(ctx)
	require.NoError(t, err)

	head, rest := v.Preview()
	require.Len(t, head, 3)
	assert.Equal(t, int64(1), head[0].ID)
	assert.Equal(t, 2, rest)
}
